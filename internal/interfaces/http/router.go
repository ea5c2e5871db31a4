package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/trasteros-pro/internal/application/analytics"
	"github.com/tu-usuario/trasteros-pro/internal/application/auth"
	"github.com/tu-usuario/trasteros-pro/internal/application/informes"
	"github.com/tu-usuario/trasteros-pro/internal/application/usecase"
	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InquilinoUC *usecase.InquilinoUseCase
	TrasteroUC  *usecase.TrasteroUseCase
	PagoUC      *usecase.PagoUseCase
	GastoUC     *usecase.GastoUseCase
	DashboardUC *analytics.DashboardUseCase
	InformeUC   *informes.InformeUseCase
	SessionUC   *auth.SessionUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// Control de acceso por rol:
//   - dashboard e informes: propietario y administrador.
//   - alta/edición/baja de inquilinos y trasteros: propietario e inmobiliaria.
//   - pagos y gastos: cualquier usuario autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	gestion := RequireRole(entity.RolPropietario, entity.RolInmobiliaria)
	panel := RequireRole(entity.RolPropietario, entity.RolAdministrador)

	// Auth (login público; el resto requiere token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.SessionUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inquilinos
	inquilinos := protected.Group("/inquilinos")
	inquilinoHandler := NewInquilinoHandler(deps.InquilinoUC)
	inquilinos.Get("/", inquilinoHandler.List)
	inquilinos.Get("/historial", inquilinoHandler.Historial)
	inquilinos.Post("/", gestion, inquilinoHandler.Create)
	inquilinos.Patch("/:id", gestion, inquilinoHandler.Update)
	inquilinos.Delete("/:id", gestion, inquilinoHandler.Delete)

	// Trasteros
	trasteros := protected.Group("/trasteros")
	trasteroHandler := NewTrasteroHandler(deps.TrasteroUC)
	trasteros.Get("/", trasteroHandler.List)
	trasteros.Patch("/:id", gestion, trasteroHandler.Update)
	trasteros.Post("/:id/quitar-inquilino", gestion, trasteroHandler.QuitarInquilino)

	// Pagos
	pagos := protected.Group("/pagos")
	pagoHandler := NewPagoHandler(deps.PagoUC)
	pagos.Get("/", pagoHandler.List)
	pagos.Post("/", pagoHandler.Registrar)

	// Gastos
	gastos := protected.Group("/gastos")
	gastoHandler := NewGastoHandler(deps.GastoUC)
	gastos.Get("/", gastoHandler.List)
	gastos.Post("/", gastoHandler.Create)
	gastos.Delete("/:id", gastoHandler.Delete)

	// Dashboard (propietario y administrador)
	dashboard := protected.Group("/dashboard", panel)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/resumen", dashboardHandler.Resumen)

	// Informes (propietario y administrador)
	informesGroup := protected.Group("/informes", panel)
	informeHandler := NewInformeHandler(deps.InformeUC)
	informesGroup.Get("/mensual", informeHandler.Mensual)
}
