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

	appanalytics "github.com/tu-usuario/trasteros-pro/internal/application/analytics"
	"github.com/tu-usuario/trasteros-pro/internal/application/auth"
	"github.com/tu-usuario/trasteros-pro/internal/application/informes"
	"github.com/tu-usuario/trasteros-pro/internal/application/seed"
	"github.com/tu-usuario/trasteros-pro/internal/application/usecase"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
	"github.com/tu-usuario/trasteros-pro/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/trasteros-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/trasteros-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/trasteros-pro/internal/infrastructure/records"
	httpRouter "github.com/tu-usuario/trasteros-pro/internal/interfaces/http"
	"github.com/tu-usuario/trasteros-pro/pkg/config"
	"github.com/tu-usuario/trasteros-pro/pkg/logger"
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

	// Almacén de documentos: PostgreSQL si hay base de datos configurada; si
	// no, almacén en memoria (modo degradado: los datos viven lo que viva el
	// proceso).
	var store repository.RecordStore
	if cfg.DB.Configurada() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		pgStore := postgres.NewRecordStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema del almacén de documentos")
		}
		store = pgStore
		log.Info().Msg("almacén de documentos: PostgreSQL")
	} else {
		store = memory.NewRecordStore()
		log.Warn().Msg("sin base de datos configurada: almacén en memoria, los datos no persisten")
	}

	// Siembra inicial: colecciones por defecto y datos de demostración.
	if err := seed.Bootstrap(ctx, store); err != nil {
		log.Fatal().Err(err).Msg("bootstrap de colecciones")
	}

	inquilinosRepo := records.NewInquilinoRepository(store)
	historialRepo := records.NewHistorialRepository(store)
	trasterosRepo := records.NewTrasteroRepository(store)
	pagosRepo := records.NewPagoRepository(store)
	gastosRepo := records.NewGastoRepository(store)
	usersRepo := records.NewUserRepository(store)

	sembrado, err := seed.Demo(ctx, inquilinosRepo, trasterosRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("datos de demostración")
	}
	if sembrado {
		log.Info().Msg("datos de demostración sembrados")
	}

	inquilinoUC := usecase.NewInquilinoUseCase(inquilinosRepo, historialRepo)
	trasteroUC := usecase.NewTrasteroUseCase(trasterosRepo, inquilinosRepo, historialRepo)
	pagoUC := usecase.NewPagoUseCase(pagosRepo, trasterosRepo)
	gastoUC := usecase.NewGastoUseCase(gastosRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(trasterosRepo, inquilinosRepo, pagosRepo, gastosRepo)
	informeUC := informes.NewInformeUseCase(dashboardUC, gastosRepo, infrapdf.NewMarotoPDFGenerator())
	sessionUC := auth.NewSessionUseCase(usersRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Trasteros Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InquilinoUC: inquilinoUC,
		TrasteroUC:  trasteroUC,
		PagoUC:      pagoUC,
		GastoUC:     gastoUC,
		DashboardUC: dashboardUC,
		InformeUC:   informeUC,
		SessionUC:   sessionUC,
		JWTSecret:   cfg.JWT.Secret,
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
