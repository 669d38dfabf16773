package usage

import (
	"context"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
)

// EmployeeLister devuelve todos los empleados de una empresa, sin paginar.
type EmployeeLister interface {
	ListAllByCompany(ctx context.Context, companyID string) ([]*entity.Employee, error)
}

// VisitCounter cuenta las visitas de un empleado.
type VisitCounter interface {
	CountByEmployee(ctx context.Context, employeeID string) (int, error)
}

// VisitLister devuelve las visitas de una empresa.
type VisitLister interface {
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Visit, error)
}

// CompanyFinder obtiene la empresa. (nil, nil) si no existe.
type CompanyFinder interface {
	GetByID(ctx context.Context, id string) (*entity.Company, error)
}

// SubscriptionFinder obtiene la suscripción vigente o más reciente. (nil, nil) si no hay.
type SubscriptionFinder interface {
	GetCurrentByCompany(ctx context.Context, companyID string) (*entity.Subscription, error)
}

// Metrics contadores opcionales de conteos degradados: por empleado y total de la empresa.
type Metrics interface {
	VisitCountFailed()
	VisitTotalFailed()
}
