package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/application/inventario"
	"github.com/specialwash/gestion-api/internal/application/reporte"
	"github.com/specialwash/gestion-api/internal/domain"
)

// MovimientoHandler maneja entradas y salidas del almacén (protegido).
type MovimientoHandler struct {
	registrarUC *inventario.RegistrarMovimientoUseCase
	historialUC *reporte.HistorialUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(registrarUC *inventario.RegistrarMovimientoUseCase, historialUC *reporte.HistorialUseCase) *MovimientoHandler {
	return &MovimientoHandler{registrarUC: registrarUC, historialUC: historialUC}
}

// ListEntradas godoc
// @Summary      Informe de entradas filtrado y totalizado
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        desde        query  string  false  "Fecha inicial YYYY-MM-DD (inclusive)"
// @Param        hasta        query  string  false  "Fecha final YYYY-MM-DD (inclusive)"
// @Param        producto_id  query  string  false  "Filtrar por producto"
// @Param        q            query  string  false  "Texto libre (ignora mayúsculas y tildes)"
// @Success      200  {object}  dto.ReporteEntradasDTO
// @Router       /api/movimientos/entradas [get]
func (h *MovimientoHandler) ListEntradas(c *fiber.Ctx) error {
	var in dto.ReporteRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.historialUC.Entradas(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListSalidas godoc
// @Summary      Informe de salidas filtrado y totalizado
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        desde        query  string  false  "Fecha inicial YYYY-MM-DD (inclusive)"
// @Param        hasta        query  string  false  "Fecha final YYYY-MM-DD (inclusive)"
// @Param        producto_id  query  string  false  "Filtrar por producto"
// @Param        q            query  string  false  "Texto libre (ignora mayúsculas y tildes)"
// @Success      200  {object}  dto.ReporteSalidasDTO
// @Router       /api/movimientos/salidas [get]
func (h *MovimientoHandler) ListSalidas(c *fiber.Ctx) error {
	var in dto.ReporteRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.historialUC.Salidas(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RegistrarEntrada godoc
// @Summary      Registrar entrada de mercancía (incrementa stock)
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarEntradaRequest  true  "Entrada"
// @Success      201
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/entradas [post]
func (h *MovimientoHandler) RegistrarEntrada(c *fiber.Ctx) error {
	var in dto.RegistrarEntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	e, err := h.registrarUC.RegistrarEntrada(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id y cantidad > 0 son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":             e.ID,
		"fecha":          e.Fecha.Format("2006-01-02"),
		"producto_id":    e.ProductoID,
		"cantidad":       e.Cantidad,
		"precio_con_iva": e.PrecioConIVA.StringFixed(2),
	})
}

// RegistrarSalida godoc
// @Summary      Registrar salida de producto (decrementa stock)
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarSalidaRequest  true  "Salida"
// @Success      201
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movimientos/salidas [post]
func (h *MovimientoHandler) RegistrarSalida(c *fiber.Ctx) error {
	var in dto.RegistrarSalidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.registrarUC.RegistrarSalida(c.Context(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id y cantidad > 0 son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la salida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":          s.ID,
		"fecha":       s.Fecha.Format("2006-01-02"),
		"producto_id": s.ProductoID,
		"cantidad":    s.Cantidad,
	})
}
