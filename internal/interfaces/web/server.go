// Package web es el frontend renderizado en servidor: tarjetas públicas, login,
// selección de plan y panel de uso. No tiene base de datos; todo pasa por backendapi.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/card"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/usage"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/infrastructure/backendapi"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/pkg/logger"
)

//go:embed views
var viewsFS embed.FS

// Deps dependencias del frontend.
type Deps struct {
	API           *backendapi.Client
	Visits        card.VisitDispatcher
	UsageMetrics  usage.Metrics // opcional
	Log           *logger.Logger
	SessionTTL    time.Duration
	AssetsBaseURL string // prefijo para rutas relativas de la API (fotos)
	Middlewares   []fiber.Handler
	Extra         func(app *fiber.App) // rutas técnicas (/metrics) antes de las comodín
}

// NewApp construye la aplicación Fiber del frontend con sus vistas embebidas.
func NewApp(deps Deps) (*fiber.App, error) {
	engine, err := newEngine(deps.AssetsBaseURL)
	if err != nil {
		return nil, err
	}
	app := fiber.New(fiber.Config{
		AppName:      "Sharek Web",
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorPage(deps.Log),
	})
	app.Use(recover.New())
	for _, mw := range deps.Middlewares {
		app.Use(mw)
	}

	ttl := deps.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	store := session.New(session.Config{
		Expiration:     ttl,
		KeyLookup:      "cookie:sharek_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	h := &handlers{
		api:      deps.API,
		resolver: card.NewResolver(deps.API.Employees(), deps.Visits),
		metrics:  deps.UsageMetrics,
		log:      deps.Log.Component("web"),
		store:    store,
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.Extra != nil {
		deps.Extra(app)
	}

	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/login") })
	app.Get("/login", h.loginForm)
	app.Post("/login", h.login)
	app.Post("/logout", h.logout)

	authed := h.requireSession()
	app.Get("/plans", authed, h.plans)
	app.Post("/plans/:id/subscribe", authed, h.subscribe)
	app.Get("/usage", authed, h.usage)

	// Tarjetas públicas: al final para no tapar las rutas anteriores.
	app.Get("/:designId/:uniqueUrl", h.card)
	app.Get("/:uniqueUrl", h.card)
	return app, nil
}

func newEngine(assetsBaseURL string) (*html.Engine, error) {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	base := strings.TrimRight(assetsBaseURL, "/")
	engine.AddFunc("asset", func(p string) string {
		if strings.HasPrefix(p, "/") {
			return base + p
		}
		return p
	})
	engine.AddFunc("date", func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	})
	return engine, nil
}

// errorPage vista genérica para errores no manejados por los handlers.
func errorPage(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if fe, ok := err.(*fiber.Error); ok {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
		}
		if code == fiber.StatusNotFound {
			return c.Status(code).Render("not_found", fiber.Map{"Message": cardNotFoundMessage})
		}
		return c.Status(code).Render("error", fiber.Map{"Message": "Ocurrió un error inesperado"})
	}
}
