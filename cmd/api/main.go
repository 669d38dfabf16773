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

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/auth"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/usage"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/usecase"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/infrastructure/metrics"
	infrapdf "github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/infrastructure/pdf"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/infrastructure/postgres"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/infrastructure/storage"
	httpRouter "github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/interfaces/http"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/pkg/config"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando API")

	if cfg.DB.AutoMigrate {
		version, err := postgres.Migrate(cfg.DB.ConnectionString())
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Uint("version", version).Msg("esquema al día")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	photos, err := storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.MaxUploadMB)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de subidas")
	}
	m := metrics.New()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	visitRepo := postgres.NewVisitRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	subRepo := postgres.NewSubscriptionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, subRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	employeeUC := usecase.NewEmployeeUseCase(
		employeeRepo, visitRepo, companyRepo,
		photos, infrapdf.NewCardPDFGenerator(), cfg.Web.PublicBaseURL,
	)
	aggregator := usage.NewAggregator(employeeRepo, visitRepo, visitRepo, m, log)
	usageUC := usecase.NewUsageUseCase(usage.NewViewUseCase(companyRepo, subRepo, aggregator))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    (cfg.Storage.MaxUploadMB + 1) << 20,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(m.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs (solo si se generó docs/swagger.json)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Sharek API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", m.Handler())
	app.Static(storage.PublicPrefix, photos.Dir())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         usecase.NewUserUseCase(userRepo),
		CompanyUC:      usecase.NewCompanyUseCase(companyRepo),
		EmployeeUC:     employeeUC,
		VisitUC:        usecase.NewVisitUseCase(visitRepo, employeeRepo),
		SubscriptionUC: usecase.NewSubscriptionUseCase(planRepo, subRepo),
		UsageUC:        usageUC,
		OnVisit:        m.VisitRecorded,
		JWTSecret:      cfg.JWT.Secret,
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

	log.Info().Msg("API detenida")
}
