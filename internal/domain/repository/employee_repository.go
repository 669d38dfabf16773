package repository

import (
	"context"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByUniqueURL(ctx context.Context, uniqueURL string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id string) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Employee, error)
	// ListAllByCompany devuelve todos los empleados, sin límite de página.
	ListAllByCompany(ctx context.Context, companyID string) ([]*entity.Employee, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
}
