package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/specialwash/gestion-api/internal/application/analytics"
	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/application/usecase"
	"github.com/specialwash/gestion-api/internal/domain"
)

// PanelHandler maneja el panel de administración y el asistente de mantenimiento.
type PanelHandler struct {
	panelUC *analytics.PanelUseCase
	chatUC  *usecase.ChatUseCase
}

// NewPanelHandler construye el handler.
func NewPanelHandler(panelUC *analytics.PanelUseCase, chatUC *usecase.ChatUseCase) *PanelHandler {
	return &PanelHandler{panelUC: panelUC, chatUC: chatUC}
}

// Resumen godoc
// @Summary      Resumen del panel: alertas de garantía, bajo stock y entradas del mes
// @Tags         panel
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PanelDTO
// @Router       /api/panel [get]
func (h *PanelHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.panelUC.Resumen()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Chat godoc
// @Summary      Consultar al asistente de mantenimiento
// @Tags         panel
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "Consulta"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/chat [post]
func (h *PanelHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.chatUC.Preguntar(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message es requerido"})
		}
		// Sin API key configurada o proveedor caído: el asistente no está disponible.
		if strings.Contains(err.Error(), "no configurado") {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: "asistente no disponible"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_ERROR", Message: "el asistente no pudo responder"})
	}
	return c.JSON(out)
}
