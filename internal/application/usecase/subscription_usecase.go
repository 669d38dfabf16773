package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/dto"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/repository"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/subscription"
)

// SubscriptionUseCase catálogo de planes y contratación.
type SubscriptionUseCase struct {
	plans repository.PlanRepository
	subs  repository.SubscriptionRepository
	now   func() time.Time
}

// NewSubscriptionUseCase construye el caso de uso.
func NewSubscriptionUseCase(plans repository.PlanRepository, subs repository.SubscriptionRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{plans: plans, subs: subs, now: time.Now}
}

// ListPlans devuelve los planes activos.
func (uc *SubscriptionUseCase) ListPlans(ctx context.Context) ([]dto.PlanResponse, error) {
	list, err := uc.plans.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlanResponse, 0, len(list))
	for _, p := range list {
		if !p.IsActive {
			continue
		}
		out = append(out, dto.PlanResponse{
			ID:           p.ID,
			Name:         p.Name,
			Price:        p.Price,
			Currency:     p.Currency,
			DurationDays: p.DurationDays,
			MaxEmployees: p.MaxEmployees,
		})
	}
	return out, nil
}

// Purchase contrata un plan desde ahora. DurationDays 0 deja la suscripción sin vencimiento.
func (uc *SubscriptionUseCase) Purchase(ctx context.Context, companyID string, in dto.PurchaseRequest) (*dto.SubscriptionResponse, error) {
	plan, err := uc.plans.GetByID(ctx, in.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	sub := &entity.Subscription{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		PlanID:    plan.ID,
		Plan:      plan.Name,
		StartDate: now,
		CreatedAt: now,
	}
	if plan.DurationDays > 0 {
		end := now.AddDate(0, 0, plan.DurationDays)
		sub.EndDate = &end
	}
	if err := uc.subs.Create(ctx, sub); err != nil {
		return nil, err
	}
	return entityToSubscriptionResponse(sub), nil
}

// Current devuelve la suscripción más reciente. domain.ErrNotFound si la empresa nunca contrató.
func (uc *SubscriptionUseCase) Current(ctx context.Context, companyID string) (*dto.SubscriptionResponse, error) {
	sub, err := uc.subs.GetCurrentByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !sub.Present() {
		return nil, domain.ErrNotFound
	}
	return entityToSubscriptionResponse(sub), nil
}

// Access evalúa la compuerta de suscripción para la empresa.
func (uc *SubscriptionUseCase) Access(ctx context.Context, companyID string) (*dto.AccessResponse, error) {
	sub, err := uc.subs.GetCurrentByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	st := subscription.ComputeAccessState(sub, uc.now())
	return &dto.AccessResponse{HasSubscription: st.HasSubscription, IsExpired: st.IsExpired}, nil
}

func entityToSubscriptionResponse(s *entity.Subscription) *dto.SubscriptionResponse {
	if s == nil {
		return nil
	}
	return &dto.SubscriptionResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		PlanID:    s.PlanID,
		Plan:      s.Plan,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
	}
}
