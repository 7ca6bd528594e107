// Package rol define el tipo enumerado de roles de la aplicación y su única
// función de canonicalización. El resto del código consume solo el enum;
// nada fuera de este paquete vuelve a interpretar strings crudos de rol.
package rol

import "strings"

// Rol rol canónico de un usuario.
type Rol string

const (
	Administrador Rol = "administrador"
	Recepcion     Rol = "recepcion"
	Housekeeping  Rol = "housekeeping"
	Mantenimiento Rol = "mantenimiento"
	Empleado      Rol = "empleado"
	Desconocido   Rol = ""
)

// Normalizar mapea los strings históricos del backend (y sus variantes en
// inglés) al rol canónico. Valores no reconocidos devuelven Desconocido.
func Normalizar(crudo string) Rol {
	switch strings.ToLower(strings.TrimSpace(crudo)) {
	case "administrador", "admin", "manager":
		return Administrador
	case "recepcion", "recepción", "receptionist":
		return Recepcion
	case "housekeeper", "housekeeping", "limpieza":
		return Housekeeping
	case "mantenimiento", "maintenance":
		return Mantenimiento
	case "empleado", "employee", "staff":
		return Empleado
	default:
		return Desconocido
	}
}

// EsAdministrador azúcar para el chequeo más frecuente.
func EsAdministrador(crudo string) bool {
	return Normalizar(crudo) == Administrador
}

// String implementa fmt.Stringer.
func (r Rol) String() string { return string(r) }
