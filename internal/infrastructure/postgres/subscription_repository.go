package postgres

import (
	"context"
	"fmt"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/repository"
)

var (
	_ repository.PlanRepository         = (*PlanRepo)(nil)
	_ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)
)

// PlanRepo catálogo de planes (sembrado por migración).
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador.
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

const planColumns = `id, name, price, currency, duration_days, max_employees, is_active, created_at`

// List devuelve todos los planes ordenados por precio.
func (r *PlanRepo) List(ctx context.Context) ([]*entity.Plan, error) {
	rows, err := r.q.Query(ctx, `SELECT `+planColumns+` FROM plans ORDER BY price, name`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var list []*entity.Plan
	for rows.Next() {
		var p entity.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Currency, &p.DurationDays, &p.MaxEmployees, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID obtiene un plan por ID.
func (r *PlanRepo) GetByID(ctx context.Context, id string) (*entity.Plan, error) {
	var p entity.Plan
	err := r.q.QueryRow(ctx, `SELECT `+planColumns+` FROM plans WHERE id = $1`, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Currency, &p.DurationDays, &p.MaxEmployees, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &p, nil
}

// SubscriptionRepo contrataciones de planes.
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository construye el adaptador.
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

// Create inserta una suscripción. plan_id inexistente -> domain.ErrNotFound.
func (r *SubscriptionRepo) Create(ctx context.Context, s *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, company_id, plan_id, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, s.ID, s.CompanyID, s.PlanID, s.StartDate, s.EndDate, s.CreatedAt)
	if err != nil {
		if constraintName(err) == "subscriptions_plan_id_fkey" {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

// GetCurrentByCompany devuelve la suscripción más reciente de la empresa con el nombre del plan.
func (r *SubscriptionRepo) GetCurrentByCompany(ctx context.Context, companyID string) (*entity.Subscription, error) {
	query := `
		SELECT s.id, s.company_id, s.plan_id, p.name, s.start_date, s.end_date, s.created_at
		FROM subscriptions s
		JOIN plans p ON p.id = s.plan_id
		WHERE s.company_id = $1
		ORDER BY s.start_date DESC, s.created_at DESC
		LIMIT 1`
	var s entity.Subscription
	err := r.q.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.PlanID, &s.Plan, &s.StartDate, &s.EndDate, &s.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get current subscription: %w", err)
	}
	return &s, nil
}
