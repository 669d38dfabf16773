package usecase

import (
	"context"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/dto"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/usage"
)

// UsageUseCase expone el panel de uso como DTO para la API JSON.
type UsageUseCase struct {
	view *usage.ViewUseCase
}

// NewUsageUseCase construye el caso de uso sobre la vista agregada.
func NewUsageUseCase(view *usage.ViewUseCase) *UsageUseCase {
	return &UsageUseCase{view: view}
}

// Get devuelve el panel de uso de la empresa.
func (uc *UsageUseCase) Get(ctx context.Context, companyID string) (*dto.UsageResponse, error) {
	v, err := uc.view.GetView(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := &dto.UsageResponse{
		Company:      *entityToCompanyResponse(v.Company),
		Subscription: entityToSubscriptionResponse(v.Subscription),
		Access:       dto.AccessResponse{HasSubscription: v.Access.HasSubscription, IsExpired: v.Access.IsExpired},
		Employees:    make([]dto.EmployeeResponse, 0, len(v.Employees)),
		TotalVisits:  v.TotalVisits,
	}
	for _, eu := range v.Employees {
		r := entityToEmployeeResponse(eu.Employee)
		n := eu.Visits
		r.Visits = &n
		out.Employees = append(out.Employees, *r)
	}
	return out, nil
}
