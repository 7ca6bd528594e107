package entity

import "time"

// Proveedor de mercancía del almacén.
type Proveedor struct {
	ID        string
	Nombre    string
	Telefono  string
	Email     string
	Direccion string
	Contacto  string
	Notas     string
	CreatedAt time.Time
}
