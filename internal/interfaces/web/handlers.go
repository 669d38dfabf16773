package web

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/card"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/usage"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/subscription"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/infrastructure/backendapi"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/pkg/logger"
)

const (
	cardNotFoundMessage = "La tarjeta que buscas no existe o fue eliminada"
	usageErrorMessage   = "No se pudo cargar el panel de uso"
)

// Diseños que el frontend sabe renderizar.
var knownDesigns = map[string]bool{"classic": true, "modern": true, "minimal": true}

type handlers struct {
	api      *backendapi.Client
	resolver *card.Resolver
	metrics  usage.Metrics
	log      *logger.Logger
	store    *session.Store
}

// card sirve /:designId/:uniqueUrl y /:uniqueUrl.
func (h *handlers) card(c *fiber.Ctx) error {
	designID := c.Params("designId")
	uniqueURL := c.Params("uniqueUrl")
	meta := card.NewRequestMeta(c.Get(fiber.HeaderUserAgent), c.Query("source"), c.Get(fiber.HeaderXForwardedFor), c.Context().RemoteIP().String())

	emp, tpl, err := h.resolver.Resolve(c.UserContext(), designID, uniqueURL, meta)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).Render("not_found", fiber.Map{"Message": cardNotFoundMessage})
	case err != nil:
		h.log.Error().Err(err).Str("unique_url", uniqueURL).Msg("no se pudo cargar la tarjeta")
		return c.Status(fiber.StatusServiceUnavailable).Render("error", fiber.Map{"Message": "No se pudo cargar la tarjeta"})
	}

	if !knownDesigns[tpl] {
		h.log.Warn().Str("design", tpl).Str("unique_url", uniqueURL).Msg("diseño desconocido, se usa classic")
		tpl = "classic"
	}
	return c.Render("designs/"+tpl, fiber.Map{"Employee": emp, "Title": emp.Name})
}

func (h *handlers) loginForm(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{"Title": "Iniciar sesión", "Email": ""})
}

func (h *handlers) login(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{"Title": "Iniciar sesión", "Error": "Email y contraseña son obligatorios", "Email": email})
	}

	out, err := h.api.Login(c.UserContext(), email, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Title": "Iniciar sesión", "Error": "Credenciales inválidas", "Email": email})
		}
		h.log.Error().Err(err).Msg("login contra la API falló")
		return c.Status(fiber.StatusServiceUnavailable).Render("login", fiber.Map{"Title": "Iniciar sesión", "Error": "Servicio no disponible, intente más tarde", "Email": email})
	}

	if err := h.saveSession(c, sessionInfo{Token: out.Token, CompanyID: out.User.CompanyID}); err != nil {
		return err
	}
	state := subscription.AccessState{HasSubscription: out.Access.HasSubscription, IsExpired: out.Access.IsExpired}
	return c.Redirect(subscription.LandingPath(state), fiber.StatusSeeOther)
}

func (h *handlers) logout(c *fiber.Ctx) error {
	if err := h.destroySession(c); err != nil {
		h.log.Warn().Err(err).Msg("no se pudo cerrar la sesión")
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (h *handlers) plans(c *fiber.Ctx) error {
	list, err := h.api.Subscriptions().ListPlans(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("no se pudieron cargar los planes")
		return c.Status(fiber.StatusServiceUnavailable).Render("error", fiber.Map{"Message": "No se pudieron cargar los planes"})
	}
	return c.Render("plans", fiber.Map{"Title": "Planes", "Plans": list})
}

func (h *handlers) subscribe(c *fiber.Ctx) error {
	sess := currentSession(c)
	_, err := h.api.WithToken(sess.Token).Subscriptions().Subscribe(c.UserContext(), c.Params("id"))
	switch {
	case err == nil:
		return c.Redirect(subscription.UsagePath, fiber.StatusSeeOther)
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Redirect("/login", fiber.StatusSeeOther)
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).Render("error", fiber.Map{"Message": "El plan seleccionado no existe"})
	}
	h.log.Error().Err(err).Str("company_id", sess.CompanyID).Msg("no se pudo contratar el plan")
	return c.Status(fiber.StatusServiceUnavailable).Render("error", fiber.Map{"Message": "No se pudo contratar el plan"})
}

// usage arma el panel con adaptadores backendapi que llevan el token de la sesión.
func (h *handlers) usage(c *fiber.Ctx) error {
	sess := currentSession(c)
	client := h.api.WithToken(sess.Token)
	agg := usage.NewAggregator(client.Employees(), client.Employees(), client.Visits(), h.metrics, h.log)
	view, err := usage.NewViewUseCase(client.Companies(), client.Subscriptions(), agg).GetView(c.UserContext(), sess.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		h.log.Error().Err(err).Str("company_id", sess.CompanyID).Msg("panel de uso")
		return c.Status(fiber.StatusServiceUnavailable).Render("error", fiber.Map{"Message": usageErrorMessage})
	}
	return c.Render("usage", fiber.Map{"Title": "Panel de uso", "View": view})
}
