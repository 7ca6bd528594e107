package dto

// AlertaFilaDTO activo con garantía vencida o próxima, listo para pintar.
type AlertaFilaDTO struct {
	ID               string `json:"id"`
	Nombre           string `json:"nombre"`
	Marca            string `json:"marca"`
	Modelo           string `json:"modelo"`
	Ubicacion        string `json:"ubicacion"`
	FechaGarantiaFin string `json:"fecha_garantia_fin"` // YYYY-MM-DD, vacío si desconocida
	Estado           string `json:"estado"`             // expired | soon
	Etiqueta         string `json:"etiqueta"`           // "Vencida" | "Vence en N días"
	DiasRestantes    int    `json:"dias_restantes"`
}

// ResumenAlertasDTO respuesta de GET /api/maquinaria/alertas.
type ResumenAlertasDTO struct {
	Total    int             `json:"total"`
	Vencidas int             `json:"vencidas"`
	Proximas int             `json:"proximas"`
	Preview  []AlertaFilaDTO `json:"preview"`
}

// MaquinariaResponse activo con su clasificación de garantía derivada.
type MaquinariaResponse struct {
	ID               string `json:"id"`
	Nombre           string `json:"nombre"`
	Tipo             string `json:"tipo"`
	Marca            string `json:"marca"`
	Modelo           string `json:"modelo"`
	NumeroSerie      string `json:"numero_serie"`
	Ubicacion        string `json:"ubicacion"`
	Estado           string `json:"estado"`
	FechaCompra      string `json:"fecha_compra,omitempty"`
	FechaGarantiaFin string `json:"fecha_garantia_fin,omitempty"`
	Garantia         string `json:"garantia"`          // unknown | expired | soon | ok
	GarantiaEtiqueta string `json:"garantia_etiqueta"` // texto mostrable
}

// CreateMaquinariaRequest body para POST /api/maquinaria.
// Las fechas llegan como YYYY-MM-DD; vacías significan desconocidas.
type CreateMaquinariaRequest struct {
	Nombre           string `json:"nombre"`
	Tipo             string `json:"tipo"`
	Marca            string `json:"marca"`
	Modelo           string `json:"modelo"`
	NumeroSerie      string `json:"numero_serie"`
	Ubicacion        string `json:"ubicacion"`
	Estado           string `json:"estado"`
	FechaCompra      string `json:"fecha_compra"`
	FechaGarantiaFin string `json:"fecha_garantia_fin"`
	Notas            string `json:"notas"`
}
