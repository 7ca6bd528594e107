package dto

// CreateVehiculoRequest body para POST /api/vehiculos.
type CreateVehiculoRequest struct {
	Matricula string `json:"matricula"`
	Marca     string `json:"marca"`
	Modelo    string `json:"modelo"`
	ClienteID string `json:"cliente_id"`
}

// VehiculoResponse vehículo con el nombre del cliente resuelto.
type VehiculoResponse struct {
	ID            string `json:"id"`
	Matricula     string `json:"matricula"`
	Marca         string `json:"marca"`
	Modelo        string `json:"modelo"`
	ClienteNombre string `json:"cliente_nombre"`
}

// CreateProveedorRequest body para POST /api/proveedores.
type CreateProveedorRequest struct {
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Direccion string `json:"direccion"`
	Contacto  string `json:"contacto"`
	Notas     string `json:"notas"`
}

// ProveedorResponse proveedor para listados.
type ProveedorResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Direccion string `json:"direccion"`
	Contacto  string `json:"contacto"`
	Notas     string `json:"notas"`
}
