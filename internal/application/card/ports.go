package card

import (
	"context"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
)

// EmployeeFinder busca el perfil público por su URL única. (nil, nil) si no existe.
type EmployeeFinder interface {
	GetByUniqueURL(ctx context.Context, uniqueURL string) (*entity.Employee, error)
}

// VisitWriter persiste una visita.
type VisitWriter interface {
	Create(ctx context.Context, visit *entity.Visit) error
}

// ClientParser deriva OS, navegador y tipo de dispositivo de un user-agent. Nunca falla.
type ClientParser interface {
	Parse(userAgent string) entity.ClientInfo
}

// VisitDispatcher lanza el registro de una visita sin bloquear al llamador.
type VisitDispatcher interface {
	Dispatch(employeeID string, meta RequestMeta)
}

// VisitMetrics contadores opcionales del registro de visitas.
type VisitMetrics interface {
	VisitRecorded(source string)
	VisitWriteFailed()
}
