package dto

// ServiciosRequest filtros de GET /api/servicios-realizados.
type ServiciosRequest struct {
	Desde      string `query:"desde"`
	Hasta      string `query:"hasta"`
	VehiculoID string `query:"vehiculo_id"`
	Texto      string `query:"q"`
	Facturado  string `query:"facturado"` // "", "true", "false"
}

// ServicioFilaDTO servicio realizado con sus importes derivados.
type ServicioFilaDTO struct {
	ID             string `json:"id"`
	Fecha          string `json:"fecha"`
	VehiculoID     string `json:"vehiculo_id"`
	Matricula      string `json:"matricula"`
	ServicioNombre string `json:"servicio_nombre"`
	Cantidad       int    `json:"cantidad"`
	PrecioUnitario string `json:"precio_unitario"`
	PorcentajeIVA  string `json:"porcentaje_iva"`
	Descuento      string `json:"descuento"`
	TotalSinIVA    string `json:"total_sin_iva"`
	TotalConIVA    string `json:"total_con_iva"`
	Facturado      bool   `json:"facturado"`
}

// ReporteServiciosDTO respuesta del listado de servicios realizados.
type ReporteServiciosDTO struct {
	Filas   []ServicioFilaDTO `json:"filas"`
	Totales TotalesReporteDTO `json:"totales"`
}

// RegistrarServicioRequest body para POST /api/servicios-realizados.
type RegistrarServicioRequest struct {
	VehiculoID     string  `json:"vehiculo_id"`
	ServicioID     string  `json:"servicio_id"`
	Fecha          string  `json:"fecha"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
	PorcentajeIVA  float64 `json:"porcentaje_iva"`
	Descuento      float64 `json:"descuento"`
	Observaciones  string  `json:"observaciones"`
}
