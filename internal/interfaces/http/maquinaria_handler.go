package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/specialwash/gestion-api/internal/application/alertas"
	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/application/usecase"
	"github.com/specialwash/gestion-api/internal/domain"
)

// MaquinariaHandler maneja las peticiones HTTP para Maquinaria (protegido).
type MaquinariaHandler struct {
	uc        *usecase.MaquinariaUseCase
	alertasUC *alertas.UseCase
}

// NewMaquinariaHandler construye el handler.
func NewMaquinariaHandler(uc *usecase.MaquinariaUseCase, alertasUC *alertas.UseCase) *MaquinariaHandler {
	return &MaquinariaHandler{uc: uc, alertasUC: alertasUC}
}

// Create godoc
// @Summary      Crear máquina
// @Tags         maquinaria
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaquinariaRequest  true  "Datos de la máquina"
// @Success      201   {object}  dto.MaquinariaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/maquinaria [post]
func (h *MaquinariaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaquinariaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "número de serie ya registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener máquina por ID
// @Tags         maquinaria
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la máquina"
// @Success      200  {object}  dto.MaquinariaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/maquinaria/{id} [get]
func (h *MaquinariaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "máquina no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar maquinaria con su estado de garantía derivado
// @Tags         maquinaria
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MaquinariaResponse
// @Router       /api/maquinaria [get]
func (h *MaquinariaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar máquina
// @Tags         maquinaria
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la máquina"
// @Param        body  body  dto.CreateMaquinariaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MaquinariaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/maquinaria/{id} [put]
func (h *MaquinariaHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CreateMaquinariaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "máquina no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar máquina
// @Tags         maquinaria
// @Security     Bearer
// @Param        id  path  string  true  "ID de la máquina"
// @Success      204
// @Router       /api/maquinaria/{id} [delete]
func (h *MaquinariaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Alertas godoc
// @Summary      Resumen de garantías vencidas o próximas a vencer
// @Tags         maquinaria
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResumenAlertasDTO
// @Router       /api/maquinaria/alertas [get]
func (h *MaquinariaHandler) Alertas(c *fiber.Ctx) error {
	out, err := h.alertasUC.Resumen()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
