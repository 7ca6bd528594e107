package entity

import "time"

// Maquinaria activo físico del hotel (lavadoras, calderas, ascensores...).
// FechaGarantiaFin en nil significa garantía desconocida; el estado de garantía
// nunca se persiste, se deriva con el clasificador de internal/domain/garantia.
type Maquinaria struct {
	ID               string
	Nombre           string
	Tipo             string
	Marca            string
	Modelo           string
	NumeroSerie      string
	Ubicacion        string
	Estado           string
	FechaCompra      *time.Time
	FechaGarantiaFin *time.Time
	Notas            string
	CreatedAt        time.Time
}
