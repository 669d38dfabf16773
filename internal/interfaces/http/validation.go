package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/dto"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/pkg/slug"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance devuelve el validador compartido con las reglas propias registradas.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// slug: minúsculas, dígitos y guiones (URL pública de la tarjeta)
		if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || slug.Valid(s)
		}); err != nil {
			panic(fmt.Sprintf("registrar regla slug: %v", err))
		}
		validate = v
	})
	return validate
}

// validateStruct valida el DTO y responde 400 VALIDATION con el primer campo que falla.
// Devuelve true si la petición puede continuar.
func validateStruct(c *fiber.Ctx, in any) (bool, error) {
	err := validatorInstance().Struct(in)
	if err == nil {
		return true, nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: fmt.Sprintf("campo '%s' no cumple la regla '%s'", fe.Field(), fe.Tag()),
		})
	}
	return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
}

// parseAndValidate combina BodyParser y validateStruct.
func parseAndValidate(c *fiber.Ctx, in any) (bool, error) {
	if err := c.BodyParser(in); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return validateStruct(c, in)
}
