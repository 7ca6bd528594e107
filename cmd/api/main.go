package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/specialwash/gestion-api/internal/application/alertas"
	"github.com/specialwash/gestion-api/internal/application/analytics"
	"github.com/specialwash/gestion-api/internal/application/auth"
	"github.com/specialwash/gestion-api/internal/application/inventario"
	"github.com/specialwash/gestion-api/internal/application/reporte"
	"github.com/specialwash/gestion-api/internal/application/servicios"
	"github.com/specialwash/gestion-api/internal/application/usecase"
	infraai "github.com/specialwash/gestion-api/internal/infrastructure/ai"
	"github.com/specialwash/gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/specialwash/gestion-api/internal/interfaces/http"
	"github.com/specialwash/gestion-api/pkg/config"
	"github.com/specialwash/gestion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	maquinariaRepo := postgres.NewMaquinariaRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	servicioRepo := postgres.NewServicioRepository(pool)
	servicioRealizadoRepo := postgres.NewServicioRealizadoRepository(pool)
	vehiculoRepo := postgres.NewVehiculoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ahora := time.Now

	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productoUC := usecase.NewProductoUseCase(productoRepo)
	pedidoUC := inventario.NewPedidoUseCase(productoRepo)
	registrarUC := inventario.NewRegistrarMovimientoUseCase(txRunner, productoRepo, ahora)
	historialUC := reporte.NewHistorialUseCase(movimientoRepo, productoRepo, proveedorRepo, usuarioRepo)
	maquinariaUC := usecase.NewMaquinariaUseCase(maquinariaRepo, ahora)
	alertasUC := alertas.NewUseCase(maquinariaRepo, ahora)
	serviciosUC := servicios.NewUseCase(servicioRealizadoRepo, servicioRepo, vehiculoRepo, ahora)
	vehiculoUC := usecase.NewVehiculoUseCase(vehiculoRepo, clienteRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	panelUC := analytics.NewPanelUseCase(alertasUC, historialUC, productoRepo, ahora)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.MaxTokens)
	chatUC := usecase.NewChatUseCase(anthropicSvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SpecialWash Gestión API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductoUC:   productoUC,
		PedidoUC:     pedidoUC,
		RegistrarUC:  registrarUC,
		HistorialUC:  historialUC,
		MaquinariaUC: maquinariaUC,
		AlertasUC:    alertasUC,
		ServiciosUC:  serviciosUC,
		VehiculoUC:   vehiculoUC,
		ProveedorUC:  proveedorUC,
		PanelUC:      panelUC,
		ChatUC:       chatUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
