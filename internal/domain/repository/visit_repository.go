package repository

import (
	"context"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
)

// VisitRepository define el puerto de persistencia para Visit (append-only).
type VisitRepository interface {
	Create(ctx context.Context, visit *entity.Visit) error
	CountByEmployee(ctx context.Context, employeeID string) (int, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Visit, error)
}
