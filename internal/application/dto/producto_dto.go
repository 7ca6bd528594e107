package dto

// CreateProductoRequest body para POST /api/productos.
type CreateProductoRequest struct {
	Nombre      string `json:"nombre"`
	Categoria   string `json:"categoria"`
	StockActual int    `json:"stock_actual"`
	StockMinimo *int   `json:"stock_minimo"`
}

// UpdateProductoRequest body para PUT /api/productos/:id.
// Punteros: nil significa "no tocar ese campo".
type UpdateProductoRequest struct {
	Nombre      *string `json:"nombre"`
	Categoria   *string `json:"categoria"`
	StockActual *int    `json:"stock_actual"`
	StockMinimo *int    `json:"stock_minimo"`
}

// ProductoResponse producto con sus campos derivados de stock ya calculados.
type ProductoResponse struct {
	ID               string `json:"id"`
	Nombre           string `json:"nombre"`
	Categoria        string `json:"categoria"`
	StockActual      int    `json:"stock_actual"`
	StockMinimo      *int   `json:"stock_minimo"`
	BajoStock        bool   `json:"bajo_stock"`
	CantidadSugerida int    `json:"cantidad_sugerida"`
}

// PedidoFilaDTO fila de la hoja de pedido de bajo stock.
type PedidoFilaDTO struct {
	ProductoID       string `json:"producto_id"`
	Nombre           string `json:"nombre"`
	Categoria        string `json:"categoria"`
	StockActual      int    `json:"stock_actual"`
	StockMinimo      int    `json:"stock_minimo"`
	CantidadSugerida int    `json:"cantidad_sugerida"`
}

// PedidoDTO hoja de pedido completa.
type PedidoDTO struct {
	Filas          []PedidoFilaDTO `json:"filas"`
	TotalProductos int             `json:"total_productos"`
	TotalUnidades  int             `json:"total_unidades"`
}
