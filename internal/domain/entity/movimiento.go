package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entrada registro de entrada de mercancía al almacén.
// Los importes llegan ya desglosados desde el albarán del proveedor;
// PrecioConIVA = PrecioSinIVA + ValorIVA.
type Entrada struct {
	ID            string
	Fecha         time.Time
	ProductoID    string
	ProveedorID   *string
	Cantidad      int
	NumeroAlbaran string
	PrecioSinIVA  decimal.Decimal
	PorcentajeIVA decimal.Decimal
	ValorIVA      decimal.Decimal
	PrecioConIVA  decimal.Decimal
	Observaciones string
	CreatedAt     time.Time
}

// Salida registro de consumo o salida de producto del almacén.
type Salida struct {
	ID            string
	Fecha         time.Time
	ProductoID    string
	UsuarioID     string
	Cantidad      int
	Observaciones string
	CreatedAt     time.Time
}
