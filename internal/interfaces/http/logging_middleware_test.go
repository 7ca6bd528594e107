package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	httpiface "github.com/specialwash/gestion-api/internal/interfaces/http"
	"github.com/specialwash/gestion-api/pkg/logger"
)

func TestRequestLogger_NoAlteraLaRespuesta(t *testing.T) {
	app := fiber.New()
	app.Use(httpiface.RequestLogger(logger.NewNop()))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/no-existe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
