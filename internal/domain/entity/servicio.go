package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Servicio del catálogo de SpecialWash (lavado exterior, tapicería...).
// PrecioBase y PorcentajeIVA son los valores que se precargan al registrar
// un servicio realizado; cada registro puede sobrescribirlos.
type Servicio struct {
	ID            string
	Nombre        string
	Descripcion   string
	PrecioBase    decimal.Decimal
	PorcentajeIVA decimal.Decimal
	Activo        bool
	CreatedAt     time.Time
}

// ServicioRealizado servicio prestado sobre un vehículo concreto.
// Los totales (con y sin IVA) no se persisten: se derivan siempre con
// internal/domain/precio para que una corrección de descuento o IVA
// no deje importes inconsistentes almacenados.
type ServicioRealizado struct {
	ID             string
	VehiculoID     string
	ServicioID     string
	Fecha          time.Time
	Cantidad       int
	PrecioUnitario decimal.Decimal
	PorcentajeIVA  decimal.Decimal
	Descuento      decimal.Decimal
	Facturado      bool
	Observaciones  string
	CreatedAt      time.Time
}
