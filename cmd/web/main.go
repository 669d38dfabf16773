package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/card"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/infrastructure/backendapi"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/infrastructure/metrics"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/infrastructure/useragent"
	httpRouter "github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/interfaces/http"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/interfaces/web"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/pkg/config"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/pkg/logger"
)

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
		Str("api", cfg.Web.APIBaseURL).
		Msg("iniciando frontend")

	api := backendapi.New(cfg.Web.APIBaseURL, time.Duration(cfg.Web.APITimeoutSeconds)*time.Second)
	m := metrics.New()

	// Las visitas se registran con el cliente sin token: POST /api/visits es público.
	recorder := card.NewVisitRecorder(api.Visits(), useragent.NewParser(), log, card.WithMetrics(m))

	app, err := web.NewApp(web.Deps{
		API:           api,
		Visits:        recorder,
		UsageMetrics:  m,
		Log:           log,
		SessionTTL:    time.Duration(cfg.Web.SessionHours) * time.Hour,
		AssetsBaseURL: cfg.Web.APIBaseURL,
		Middlewares:   []fiber.Handler{httpRouter.RequestLogger(log), m.Middleware()},
		Extra: func(app *fiber.App) {
			app.Get("/metrics", m.Handler())
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cargar vistas")
	}

	go func() {
		if err := app.Listen(cfg.Web.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor web finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando frontend...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	// Visitas en vuelo: terminan o agotan su propio timeout.
	recorder.Wait()

	log.Info().Msg("frontend detenido")
}
