package backendapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/dto"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
)

// EmployeeAPI perfiles y tarjetas públicas.
type EmployeeAPI struct{ c *Client }

// GetByUniqueURL busca la tarjeta pública. (nil, nil) si no existe.
func (a *EmployeeAPI) GetByUniqueURL(ctx context.Context, uniqueURL string) (*entity.Employee, error) {
	var out dto.EmployeeResponse
	err := a.c.do(ctx, http.MethodGet, "/api/cards/"+url.PathEscape(uniqueURL), nil, &out)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return employeeFromDTO(out), nil
}

// ListAllByCompany lista todos los perfiles de la empresa del token.
// La API deduce la empresa del token; companyID solo documenta el alcance.
func (a *EmployeeAPI) ListAllByCompany(ctx context.Context, companyID string) ([]*entity.Employee, error) {
	var out dto.EmployeeListResponse
	if err := a.c.do(ctx, http.MethodGet, "/api/employees?all=true", nil, &out); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}
	list := make([]*entity.Employee, 0, len(out.Items))
	for _, item := range out.Items {
		e := employeeFromDTO(item)
		if e.CompanyID == "" {
			e.CompanyID = companyID
		}
		list = append(list, e)
	}
	return list, nil
}

// CountByEmployee devuelve el conteo de visitas de un perfil.
func (a *EmployeeAPI) CountByEmployee(ctx context.Context, employeeID string) (int, error) {
	var out dto.VisitCountResponse
	if err := a.c.do(ctx, http.MethodGet, "/api/employees/"+url.PathEscape(employeeID)+"/visits/count", nil, &out); err != nil {
		if errors.Is(err, errNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return out.Visits, nil
}

// VisitAPI registro y listado de visitas.
type VisitAPI struct{ c *Client }

// Create envía la visita ya enriquecida con los datos del cliente.
func (a *VisitAPI) Create(ctx context.Context, v *entity.Visit) error {
	in := dto.CreateVisitRequest{
		EmployeeID: v.EmployeeID,
		Source:     v.Source,
		OS:         v.OS,
		Browser:    v.Browser,
		DeviceType: v.DeviceType,
		IPAddress:  v.IPAddress,
	}
	err := a.c.do(ctx, http.MethodPost, "/api/visits", in, nil)
	if errors.Is(err, errNotFound) {
		return errors.New("backendapi: empleado inexistente al registrar visita")
	}
	return err
}

// ListByCompany lista las visitas de la empresa del token.
func (a *VisitAPI) ListByCompany(ctx context.Context, companyID string) ([]*entity.Visit, error) {
	var out dto.VisitListResponse
	if err := a.c.do(ctx, http.MethodGet, "/api/visits", nil, &out); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}
	list := make([]*entity.Visit, 0, len(out.Items))
	for _, v := range out.Items {
		list = append(list, &entity.Visit{
			ID:         v.ID,
			EmployeeID: v.EmployeeID,
			CompanyID:  companyID,
			Source:     v.Source,
			OS:         v.OS,
			Browser:    v.Browser,
			DeviceType: v.DeviceType,
			IPAddress:  v.IPAddress,
			CreatedAt:  v.CreatedAt,
		})
	}
	return list, nil
}

// CompanyAPI empresa del token.
type CompanyAPI struct{ c *Client }

// GetByID obtiene la empresa del token. (nil, nil) si la API responde 404.
func (a *CompanyAPI) GetByID(ctx context.Context, _ string) (*entity.Company, error) {
	var out dto.CompanyResponse
	if err := a.c.do(ctx, http.MethodGet, "/api/companies/me", nil, &out); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity.Company{
		ID:        out.ID,
		Name:      out.Name,
		Email:     out.Email,
		Phone:     out.Phone,
		Address:   out.Address,
		Website:   out.Website,
		LogoURL:   out.LogoURL,
		Status:    out.Status,
		CreatedAt: out.CreatedAt,
		UpdatedAt: out.UpdatedAt,
	}, nil
}

// SubscriptionAPI planes y suscripciones.
type SubscriptionAPI struct{ c *Client }

// GetCurrentByCompany obtiene la suscripción vigente normalizada. (nil, nil) si no hay.
func (a *SubscriptionAPI) GetCurrentByCompany(ctx context.Context, _ string) (*entity.Subscription, error) {
	raw, err := a.c.doRaw(ctx, http.MethodGet, "/api/subscriptions/current", nil)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return DecodeSubscription(raw)
}

// ListPlans catálogo público de planes.
func (a *SubscriptionAPI) ListPlans(ctx context.Context) ([]dto.PlanResponse, error) {
	var out []dto.PlanResponse
	if err := a.c.do(ctx, http.MethodGet, "/api/plans", nil, &out); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

// Subscribe contrata el plan para la empresa del token.
func (a *SubscriptionAPI) Subscribe(ctx context.Context, planID string) (*entity.Subscription, error) {
	raw, err := a.c.doRaw(ctx, http.MethodPost, "/api/subscriptions", dto.PurchaseRequest{PlanID: planID})
	if errors.Is(err, errNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return DecodeSubscription(raw)
}

func employeeFromDTO(e dto.EmployeeResponse) *entity.Employee {
	return &entity.Employee{
		ID:        e.ID,
		CompanyID: e.CompanyID,
		Name:      e.Name,
		JobTitle:  e.JobTitle,
		Email:     e.Email,
		Phone:     e.Phone,
		WhatsApp:  e.WhatsApp,
		Website:   e.Website,
		About:     e.About,
		PhotoURL:  e.PhotoURL,
		DesignID:  e.DesignID,
		UniqueURL: e.UniqueURL,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
