package repository

import (
	"context"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
)

// PlanRepository catálogo de planes (solo lectura desde la aplicación).
type PlanRepository interface {
	List(ctx context.Context) ([]*entity.Plan, error)
	GetByID(ctx context.Context, id string) (*entity.Plan, error)
}

// SubscriptionRepository define el puerto de persistencia para Subscription.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entity.Subscription) error
	// GetCurrentByCompany devuelve la suscripción más reciente de la empresa o (nil, nil).
	GetCurrentByCompany(ctx context.Context, companyID string) (*entity.Subscription, error)
}
