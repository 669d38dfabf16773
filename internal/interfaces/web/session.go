package web

import (
	"github.com/gofiber/fiber/v2"
)

const (
	sessToken     = "token"
	sessCompanyID = "company_id"
	localSession  = "web_session"
)

// sessionInfo estado de la sesión leído una sola vez por petición.
type sessionInfo struct {
	Token     string
	CompanyID string
}

// requireSession exige login. Lee la sesión y la deja en Locals como valor explícito.
func (h *handlers) requireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := h.store.Get(c)
		if err != nil {
			h.log.Warn().Err(err).Msg("sesión ilegible")
			return c.Redirect("/login")
		}
		token, _ := sess.Get(sessToken).(string)
		companyID, _ := sess.Get(sessCompanyID).(string)
		if token == "" || companyID == "" {
			return c.Redirect("/login")
		}
		c.Locals(localSession, sessionInfo{Token: token, CompanyID: companyID})
		return c.Next()
	}
}

func currentSession(c *fiber.Ctx) sessionInfo {
	s, _ := c.Locals(localSession).(sessionInfo)
	return s
}

// saveSession guarda token y empresa tras un login correcto.
func (h *handlers) saveSession(c *fiber.Ctx, info sessionInfo) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(sessToken, info.Token)
	sess.Set(sessCompanyID, info.CompanyID)
	return sess.Save()
}

func (h *handlers) destroySession(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
