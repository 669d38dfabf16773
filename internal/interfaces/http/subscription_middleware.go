package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/dto"
)

// accessChecker contrato mínimo para consultar la compuerta de suscripción.
// Lo implementa *usecase.SubscriptionUseCase.
type accessChecker interface {
	Access(ctx context.Context, companyID string) (*dto.AccessResponse, error)
}

// RequireActiveSubscription bloquea operaciones de escritura de empresas sin plan vigente.
// Debe usarse DESPUÉS de AuthMiddleware. Las lecturas (panel, listados) no pasan por aquí.
//
//   - 402 Payment Required → sin suscripción o vencida.
//   - 503 Service Unavailable → fallo al consultar la suscripción.
func RequireActiveSubscription(checker accessChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyID := GetCompanyID(c)
		if companyID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "company_id no encontrado en el token",
			})
		}

		access, err := checker.Access(c.UserContext(), companyID)
		if err != nil {
			requestLogger(c).Warn().Err(err).Str("company_id", companyID).Msg("no se pudo verificar la suscripción")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SUBSCRIPTION_CHECK_FAILED",
				Message: "no se pudo verificar la suscripción, intente más tarde",
			})
		}
		if !access.HasSubscription {
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{
				Code:    "SUBSCRIPTION_REQUIRED",
				Message: "contrate un plan para continuar",
			})
		}
		if access.IsExpired {
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{
				Code:    "SUBSCRIPTION_EXPIRED",
				Message: "la suscripción está vencida, renueve su plan",
			})
		}
		return c.Next()
	}
}
