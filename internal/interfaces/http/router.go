package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/specialwash/gestion-api/internal/application/alertas"
	"github.com/specialwash/gestion-api/internal/application/analytics"
	"github.com/specialwash/gestion-api/internal/application/auth"
	"github.com/specialwash/gestion-api/internal/application/inventario"
	"github.com/specialwash/gestion-api/internal/application/reporte"
	"github.com/specialwash/gestion-api/internal/application/servicios"
	"github.com/specialwash/gestion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	ProductoUC   *usecase.ProductoUseCase
	PedidoUC     *inventario.PedidoUseCase
	RegistrarUC  *inventario.RegistrarMovimientoUseCase
	HistorialUC  *reporte.HistorialUseCase
	MaquinariaUC *usecase.MaquinariaUseCase
	AlertasUC    *alertas.UseCase
	ServiciosUC  *servicios.UseCase
	VehiculoUC   *usecase.VehiculoUseCase
	ProveedorUC  *usecase.ProveedorUseCase
	PanelUC      *analytics.PanelUseCase
	ChatUC       *usecase.ChatUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	soloAdmin := RequireRole("administrador")

	// Productos del almacén (protegido; alta/baja solo administrador)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC, deps.PedidoUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/pedido-bajo-stock", productoHandler.PedidoBajoStock)
	productos.Post("/", soloAdmin, productoHandler.Create)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", soloAdmin, productoHandler.Update)
	productos.Delete("/:id", soloAdmin, productoHandler.Delete)

	// Maquinaria del hotel y alertas de garantía (protegido)
	maquinaria := protected.Group("/maquinaria")
	maquinariaHandler := NewMaquinariaHandler(deps.MaquinariaUC, deps.AlertasUC)
	maquinaria.Get("/", maquinariaHandler.List)
	maquinaria.Get("/alertas", maquinariaHandler.Alertas)
	maquinaria.Post("/", RequireRole("administrador", "mantenimiento"), maquinariaHandler.Create)
	maquinaria.Get("/:id", maquinariaHandler.GetByID)
	maquinaria.Put("/:id", RequireRole("administrador", "mantenimiento"), maquinariaHandler.Update)
	maquinaria.Delete("/:id", soloAdmin, maquinariaHandler.Delete)

	// Movimientos de almacén: informes y registro (protegido)
	movimientos := protected.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.RegistrarUC, deps.HistorialUC)
	movimientos.Get("/entradas", movimientoHandler.ListEntradas)
	movimientos.Post("/entradas", movimientoHandler.RegistrarEntrada)
	movimientos.Get("/salidas", movimientoHandler.ListSalidas)
	movimientos.Post("/salidas", movimientoHandler.RegistrarSalida)

	// Servicios realizados de SpecialWash (protegido)
	serviciosGroup := protected.Group("/servicios-realizados")
	servicioHandler := NewServicioHandler(deps.ServiciosUC)
	serviciosGroup.Get("/", servicioHandler.List)
	serviciosGroup.Post("/", servicioHandler.Registrar)
	serviciosGroup.Put("/:id/facturado", servicioHandler.MarcarFacturado)

	// Vehículos (protegido)
	vehiculos := protected.Group("/vehiculos")
	vehiculoHandler := NewVehiculoHandler(deps.VehiculoUC)
	vehiculos.Get("/", vehiculoHandler.List)
	vehiculos.Post("/", vehiculoHandler.Create)
	vehiculos.Delete("/:id", soloAdmin, vehiculoHandler.Delete)

	// Proveedores (protegido)
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Post("/", soloAdmin, proveedorHandler.Create)
	proveedores.Delete("/:id", soloAdmin, proveedorHandler.Delete)

	// Panel de administración y asistente (protegido)
	panelHandler := NewPanelHandler(deps.PanelUC, deps.ChatUC)
	protected.Get("/panel", panelHandler.Resumen)
	protected.Post("/chat", panelHandler.Chat)
}
