package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestione-fascicoli/internal/application/analytics"
	"github.com/jhoicas/gestione-fascicoli/internal/application/auth"
	"github.com/jhoicas/gestione-fascicoli/internal/application/usecase"
	"github.com/jhoicas/gestione-fascicoli/internal/infrastructure/cache"
	"github.com/jhoicas/gestione-fascicoli/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC  *usecase.CustomerUseCase
	FascicoloUC *usecase.FascicoloUseCase
	DashboardUC *appanalytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	Views       *cache.ViewCache // nil = sin caché de vistas
	JWTSecret   string
	Log         *logger.Logger // nil = sin log en handlers
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/api/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Dashboard (requiere Bearer Token). Las vistas GET pasan por la caché.
	dashboard := app.Group("/dashboard", AuthMiddleware(deps.JWTSecret))
	views := ViewCacheMiddleware(deps.Views)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", views, dashboardHandler.GetSummary)

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	dashboard.Get("/customers", views, customerHandler.List)
	dashboard.Get("/customers/options", views, customerHandler.Options)
	dashboard.Post("/customers", customerHandler.Create)

	fascicoloHandler := NewFascicoloHandler(deps.FascicoloUC)
	dashboard.Get("/fascicoli", views, fascicoloHandler.List)
	dashboard.Get("/fascicoli/:id", views, fascicoloHandler.GetByID)
	dashboard.Post("/fascicoli", fascicoloHandler.Create)
	dashboard.Put("/fascicoli/:id", fascicoloHandler.Update)
	dashboard.Delete("/fascicoli/:id", fascicoloHandler.Delete)
}
