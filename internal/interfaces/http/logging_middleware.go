package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/specialwash/gestion-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, estado y duración.
// Los errores ya convertidos en respuesta por los handlers no se repiten
// aquí; solo se refleja el status final.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		ev := log.Info()
		status := c.Response().StatusCode()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		ev.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(inicio)).
			Msg("request")
		return err
	}
}
