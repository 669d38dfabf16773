package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/subscription"
)

// View todo lo que necesita el panel de uso.
type View struct {
	Company      *entity.Company
	Subscription *entity.Subscription
	Access       subscription.AccessState
	Employees    []EmployeeUsage
	TotalVisits  int
}

// ViewUseCase arma el panel de uso: empresa, suscripción + compuerta, y agregado de empleados.
// Empresa, suscripción y listado de empleados son datos primarios: si fallan, falla todo.
type ViewUseCase struct {
	companies     CompanyFinder
	subscriptions SubscriptionFinder
	aggregator    *Aggregator
	now           func() time.Time
}

// NewViewUseCase construye el caso de uso.
func NewViewUseCase(companies CompanyFinder, subscriptions SubscriptionFinder, aggregator *Aggregator) *ViewUseCase {
	return &ViewUseCase{
		companies:     companies,
		subscriptions: subscriptions,
		aggregator:    aggregator,
		now:           time.Now,
	}
}

// GetView devuelve la vista del panel. La ausencia de suscripción no es un error:
// se refleja en Access para que la vista muestre el aviso de renovación.
func (uc *ViewUseCase) GetView(ctx context.Context, companyID string) (*View, error) {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("usage: obtener empresa: %w: %w", domain.ErrUpstreamUnavailable, err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	sub, err := uc.subscriptions.GetCurrentByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("usage: obtener suscripción: %w: %w", domain.ErrUpstreamUnavailable, err)
	}

	agg, err := uc.aggregator.Aggregate(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return &View{
		Company:      company,
		Subscription: sub,
		Access:       subscription.ComputeAccessState(sub, uc.now()),
		Employees:    agg.Employees,
		TotalVisits:  agg.TotalVisits,
	}, nil
}
