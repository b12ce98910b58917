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

	appanalytics "github.com/RaGnaRoK-thor/invsys/internal/application/analytics"
	"github.com/RaGnaRoK-thor/invsys/internal/application/auth"
	"github.com/RaGnaRoK-thor/invsys/internal/application/usecase"
	"github.com/RaGnaRoK-thor/invsys/internal/infrastructure/sqlite"
	httpRouter "github.com/RaGnaRoK-thor/invsys/internal/interfaces/http"
	"github.com/RaGnaRoK-thor/invsys/pkg/config"
	"github.com/RaGnaRoK-thor/invsys/pkg/logger"
	"github.com/RaGnaRoK-thor/invsys/pkg/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos SQLite")
	}
	defer db.Close()

	// Idempotente: seguro en cada arranque del proceso.
	if err := sqlite.InitSchema(db); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	sessions := session.New(sessionTTL)
	defer sessions.Close()

	userRepo := sqlite.NewUserRepository(db)
	supplierRepo := sqlite.NewSupplierRepository(db)
	categoryRepo := sqlite.NewCategoryRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	analyticsRepo := sqlite.NewAnalyticsRepository(db)

	authUC := auth.NewAuthUseCase(userRepo, sessions)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

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
		Title:    "InvSys API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SupplierUC:  supplierUC,
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		DashboardUC: dashboardUC,
		Sessions:    sessions,
		CookieName:  cfg.Session.CookieName,
		SessionTTL:  sessionTTL,
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
