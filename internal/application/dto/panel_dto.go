package dto

// PanelDTO resumen del panel de administración: alertas de garantía,
// productos bajo mínimo y totales de entradas del mes en curso.
type PanelDTO struct {
	Alertas        ResumenAlertasDTO `json:"alertas_garantia"`
	ProductosBajos int               `json:"productos_bajo_stock"`
	EntradasMes    TotalesReporteDTO `json:"entradas_mes"`
	MesEtiqueta    string            `json:"mes_etiqueta"`
}

// ChatRequest body de POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse respuesta del asistente de mantenimiento.
type ChatResponse struct {
	Reply string `json:"reply"`
}
