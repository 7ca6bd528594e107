package entity

import "time"

// Producto representa un artículo del almacén de SpecialWash.
// StockActual y StockMinimo son unidades enteras; StockMinimo en nil significa
// que el producto no participa en las alertas de bajo stock.
type Producto struct {
	ID          string
	Nombre      string
	Categoria   string
	StockActual int
	StockMinimo *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
