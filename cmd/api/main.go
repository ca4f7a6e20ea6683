package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/gestione-fascicoli/internal/application/analytics"
	"github.com/jhoicas/gestione-fascicoli/internal/application/auth"
	"github.com/jhoicas/gestione-fascicoli/internal/application/usecase"
	"github.com/jhoicas/gestione-fascicoli/internal/application/validation"
	"github.com/jhoicas/gestione-fascicoli/internal/infrastructure/cache"
	"github.com/jhoicas/gestione-fascicoli/internal/infrastructure/identity"
	"github.com/jhoicas/gestione-fascicoli/internal/infrastructure/metrics"
	"github.com/jhoicas/gestione-fascicoli/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gestione-fascicoli/internal/interfaces/http"
	"github.com/jhoicas/gestione-fascicoli/pkg/config"
	"github.com/jhoicas/gestione-fascicoli/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("delete_fascicoli", cfg.Features.DeleteFascicoli).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: el login responderá con error de configuración")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	recorder := metrics.New("fascicoli")
	views, err := cache.NewViewCache(cfg.Cache.ViewSize, recorder)
	if err != nil {
		log.Fatal().Err(err).Msg("caché de vistas")
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	fascicoloRepo := postgres.NewFascicoloRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	validator := validation.New(validation.WithPasswordMatch(cfg.Auth.RequirePasswordMatch))

	customerUC := usecase.NewCustomerUseCase(customerRepo, validator, views, recorder, log.Named("customers"))
	fascicoloUC := usecase.NewFascicoloUseCase(fascicoloRepo, validator, views, log.Named("fascicoli"), usecase.FascicoloConfig{
		DeleteEnabled: cfg.Features.DeleteFascicoli,
		Metrics:       recorder,
	})
	dashboardUC := appanalytics.NewDashboardUseCase(customerRepo, fascicoloRepo, log.Named("dashboard"))

	provider := identity.NewCredentialsProvider(userRepo, identity.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	})
	authUC := auth.NewAuthUseCase(userRepo, validator, provider, log.Named("auth"), auth.Config{
		BcryptCost: cfg.Auth.BcryptCost,
		Metrics:    recorder,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestione Fascicoli API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(recorder.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:  customerUC,
		FascicoloUC: fascicoloUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		Views:       views,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log.Named("http"),
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
