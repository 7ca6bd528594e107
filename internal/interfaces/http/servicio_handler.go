package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/application/servicios"
	"github.com/specialwash/gestion-api/internal/domain"
)

// ServicioHandler maneja los servicios realizados de SpecialWash (protegido).
type ServicioHandler struct {
	uc *servicios.UseCase
}

// NewServicioHandler construye el handler.
func NewServicioHandler(uc *servicios.UseCase) *ServicioHandler {
	return &ServicioHandler{uc: uc}
}

// List godoc
// @Summary      Listar servicios realizados con importes derivados y totales
// @Tags         servicios
// @Security     Bearer
// @Produce      json
// @Param        desde        query  string  false  "Fecha inicial YYYY-MM-DD (inclusive)"
// @Param        hasta        query  string  false  "Fecha final YYYY-MM-DD (inclusive)"
// @Param        vehiculo_id  query  string  false  "Filtrar por vehículo"
// @Param        q            query  string  false  "Texto libre (matrícula, servicio...)"
// @Param        facturado    query  string  false  "true | false"
// @Success      200  {object}  dto.ReporteServiciosDTO
// @Router       /api/servicios-realizados [get]
func (h *ServicioHandler) List(c *fiber.Ctx) error {
	var in dto.ServiciosRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.Listar(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Registrar godoc
// @Summary      Registrar un servicio realizado
// @Tags         servicios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarServicioRequest  true  "Servicio realizado"
// @Success      201
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/servicios-realizados [post]
func (h *ServicioHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarServicioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sr, err := h.uc.Registrar(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "vehiculo_id, servicio_id y cantidad > 0 son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vehículo o servicio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":        sr.ID,
		"fecha":     sr.Fecha.Format("2006-01-02"),
		"facturado": sr.Facturado,
	})
}

// MarcarFacturado godoc
// @Summary      Cambiar el estado de facturación de un servicio realizado
// @Tags         servicios
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del servicio realizado"
// @Param        body  body  object  true  "{\"facturado\": true}"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/servicios-realizados/{id}/facturado [put]
func (h *ServicioHandler) MarcarFacturado(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in struct {
		Facturado bool `json:"facturado"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.MarcarFacturado(id, in.Facturado); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "servicio realizado no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
