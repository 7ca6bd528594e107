package dto

// ReporteRequest parámetros comunes de los informes de movimientos.
// Fechas en formato YYYY-MM-DD; vacías = sin límite por ese lado.
type ReporteRequest struct {
	Desde      string `query:"desde"`
	Hasta      string `query:"hasta"`
	ProductoID string `query:"producto_id"`
	Texto      string `query:"q"`
}

// EntradaFilaDTO fila del informe de entradas con referencias ya resueltas.
type EntradaFilaDTO struct {
	ID              string `json:"id"`
	Fecha           string `json:"fecha"`
	ProductoID      string `json:"producto_id"`
	ProductoNombre  string `json:"producto_nombre"`
	ProveedorNombre string `json:"proveedor_nombre"`
	NumeroAlbaran   string `json:"numero_albaran"`
	Cantidad        int    `json:"cantidad"`
	PrecioSinIVA    string `json:"precio_sin_iva"`
	PorcentajeIVA   string `json:"porcentaje_iva"`
	ValorIVA        string `json:"valor_iva"`
	PrecioConIVA    string `json:"precio_con_iva"`
}

// SalidaFilaDTO fila del informe de salidas.
type SalidaFilaDTO struct {
	ID             string `json:"id"`
	Fecha          string `json:"fecha"`
	ProductoID     string `json:"producto_id"`
	ProductoNombre string `json:"producto_nombre"`
	UsuarioNombre  string `json:"usuario_nombre"`
	Cantidad       int    `json:"cantidad"`
	Observaciones  string `json:"observaciones"`
}

// TotalesReporteDTO totales del conjunto filtrado, redondeados a 2 decimales
// solo aquí, en la frontera de presentación.
type TotalesReporteDTO struct {
	Registros int    `json:"registros"`
	Cantidad  int    `json:"cantidad"`
	Neto      string `json:"neto"`
	IVA       string `json:"iva"`
	Bruto     string `json:"bruto"`
}

// ReporteEntradasDTO respuesta de GET /api/movimientos/entradas.
type ReporteEntradasDTO struct {
	Filas   []EntradaFilaDTO  `json:"filas"`
	Totales TotalesReporteDTO `json:"totales"`
}

// ReporteSalidasDTO respuesta de GET /api/movimientos/salidas.
type ReporteSalidasDTO struct {
	Filas   []SalidaFilaDTO   `json:"filas"`
	Totales TotalesReporteDTO `json:"totales"`
}

// RegistrarEntradaRequest body para POST /api/movimientos/entradas.
type RegistrarEntradaRequest struct {
	ProductoID    string  `json:"producto_id"`
	ProveedorID   string  `json:"proveedor_id"`
	Fecha         string  `json:"fecha"`
	Cantidad      int     `json:"cantidad"`
	NumeroAlbaran string  `json:"numero_albaran"`
	PrecioSinIVA  float64 `json:"precio_sin_iva"`
	PorcentajeIVA float64 `json:"porcentaje_iva"`
	Observaciones string  `json:"observaciones"`
}

// RegistrarSalidaRequest body para POST /api/movimientos/salidas.
type RegistrarSalidaRequest struct {
	ProductoID    string `json:"producto_id"`
	Fecha         string `json:"fecha"`
	Cantidad      int    `json:"cantidad"`
	Observaciones string `json:"observaciones"`
}
