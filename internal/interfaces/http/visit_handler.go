package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/dto"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/usecase"
)

// VisitRecordedHook se invoca tras persistir una visita (métricas).
type VisitRecordedHook func(source string)

// VisitHandler registro y consulta de visitas.
type VisitHandler struct {
	uc       *usecase.VisitUseCase
	recorded VisitRecordedHook
}

// NewVisitHandler construye el handler. recorded puede ser nil.
func NewVisitHandler(uc *usecase.VisitUseCase, recorded VisitRecordedHook) *VisitHandler {
	return &VisitHandler{uc: uc, recorded: recorded}
}

// Create godoc
// @Summary      Registrar visita
// @Description  Público. El frontend lo llama al servir una tarjeta.
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVisitRequest  true  "visita"
// @Success      201   {object}  dto.VisitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/visits [post]
func (h *VisitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVisitRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	if h.recorded != nil {
		h.recorded(out.Source)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Visitas de la empresa
// @Tags         visits
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.VisitListResponse
// @Router       /api/visits [get]
func (h *VisitHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
