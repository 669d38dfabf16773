package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/dto"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/usecase"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
)

// EmployeeHandler CRUD de perfiles de tarjeta y sus recursos derivados.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear perfil
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateEmployeeRequest  true  "datos del perfil"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar perfiles
// @Description  Paginado por limit/offset; con all=true devuelve todos.
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int     false  "máximo 100"
// @Param        offset  query  int     false  "desplazamiento"
// @Param        all     query  bool    false  "sin paginar"
// @Success      200     {object}  dto.EmployeeListResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("all") {
		out, err := h.uc.ListAll(c.UserContext(), GetCompanyID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener perfil
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del perfil"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar perfil
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID del perfil"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar perfil
// @Tags         employees
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del perfil"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CountVisits godoc
// @Summary      Conteo de visitas del perfil
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del perfil"
// @Success      200  {object}  dto.VisitCountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/visits/count [get]
func (h *EmployeeHandler) CountVisits(c *fiber.Ctx) error {
	out, err := h.uc.CountVisits(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UploadPhoto godoc
// @Summary      Subir foto del perfil
// @Tags         employees
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true  "ID del perfil"
// @Param        photo  formData  file    true  "imagen jpg, png o webp"
// @Success      200    {object}  dto.EmployeeResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/photo [post]
func (h *EmployeeHandler) UploadPhoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo 'photo' requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, fmt.Errorf("%w: no se pudo leer el archivo", domain.ErrInvalidInput))
	}
	defer f.Close()

	out, err := h.uc.UploadPhoto(c.UserContext(), GetCompanyID(c), c.Params("id"), fh.Filename, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CardPDF godoc
// @Summary      Tarjeta imprimible con QR
// @Tags         employees
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del perfil"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/card.pdf [get]
func (h *EmployeeHandler) CardPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.CardPDF(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(data)
}

// GetCard godoc
// @Summary      Tarjeta pública
// @Description  Búsqueda por URL pública, sin registrar visita.
// @Tags         cards
// @Produce      json
// @Param        uniqueUrl  path  string  true  "URL pública"
// @Success      200        {object}  dto.EmployeeResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/cards/{uniqueUrl} [get]
func (h *EmployeeHandler) GetCard(c *fiber.Ctx) error {
	out, err := h.uc.GetPublic(c.UserContext(), c.Params("uniqueUrl"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
