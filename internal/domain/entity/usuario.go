package entity

import "time"

// Usuario cuenta de acceso al panel de administración.
// Rol guarda el valor canónico de internal/domain/rol; nunca el string
// crudo que llegó en el alta.
type Usuario struct {
	ID           string
	Nombre       string
	Email        string
	Rol          string
	PasswordHash string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
