package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/usecase"
)

// UsageHandler panel de uso de la empresa.
type UsageHandler struct {
	uc *usecase.UsageUseCase
}

func NewUsageHandler(uc *usecase.UsageUseCase) *UsageHandler {
	return &UsageHandler{uc: uc}
}

// Get godoc
// @Summary      Panel de uso
// @Description  Empresa, suscripción, estado de acceso y visitas por perfil.
// @Tags         usage
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UsageResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/usage [get]
func (h *UsageHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
