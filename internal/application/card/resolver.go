// Package card resuelve las tarjetas públicas de los empleados y registra sus visitas.
package card

import (
	"context"
	"fmt"
	"strings"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
)

// Resolver obtiene el empleado de una tarjeta y elige su plantilla.
// Cada resolución exitosa despacha exactamente una visita; una fallida, ninguna.
type Resolver struct {
	employees EmployeeFinder
	visits    VisitDispatcher
}

// NewResolver construye el resolvedor.
func NewResolver(employees EmployeeFinder, visits VisitDispatcher) *Resolver {
	return &Resolver{employees: employees, visits: visits}
}

// Resolve busca el empleado por uniqueURL y devuelve la plantilla a renderizar.
// domain.ErrNotFound si no existe; otros errores vienen envueltos del almacén.
func (r *Resolver) Resolve(ctx context.Context, designID, uniqueURL string, meta RequestMeta) (*entity.Employee, string, error) {
	uniqueURL = strings.TrimSpace(uniqueURL)
	if uniqueURL == "" {
		return nil, "", domain.ErrNotFound
	}

	emp, err := r.employees.GetByUniqueURL(ctx, uniqueURL)
	if err != nil {
		return nil, "", fmt.Errorf("card: buscar empleado %q: %w", uniqueURL, err)
	}
	if emp == nil {
		return nil, "", domain.ErrNotFound
	}

	templateID := SelectTemplate(designID, emp.DesignID)
	r.visits.Dispatch(emp.ID, meta)
	return emp, templateID, nil
}

// SelectTemplate: diseño de la ruta, si no el del empleado, si no "classic".
func SelectTemplate(pathDesign, employeeDesign string) string {
	if d := strings.TrimSpace(pathDesign); d != "" {
		return d
	}
	if d := strings.TrimSpace(employeeDesign); d != "" {
		return d
	}
	return entity.DefaultDesign
}
