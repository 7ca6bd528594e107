package entity

import "time"

// Cliente dueño de uno o más vehículos.
type Cliente struct {
	ID        string
	Nombre    string
	Telefono  string
	Email     string
	CreatedAt time.Time
}

// Vehiculo vehículo registrado para servicios de lavado.
type Vehiculo struct {
	ID        string
	Matricula string
	Marca     string
	Modelo    string
	ClienteID *string
	CreatedAt time.Time
}
