package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/dto"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/repository"
)

// VisitUseCase registra y consulta visitas a tarjetas.
type VisitUseCase struct {
	visits    repository.VisitRepository
	employees repository.EmployeeRepository
}

// NewVisitUseCase construye el caso de uso.
func NewVisitUseCase(visits repository.VisitRepository, employees repository.EmployeeRepository) *VisitUseCase {
	return &VisitUseCase{visits: visits, employees: employees}
}

// Create registra una visita. La empresa se toma del empleado, nunca del cliente.
// Campos vacíos o desconocidos toman su valor por defecto en lugar de rechazar la petición.
func (uc *VisitUseCase) Create(ctx context.Context, in dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	emp, err := uc.employees.GetByID(ctx, strings.TrimSpace(in.EmployeeID))
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	v := &entity.Visit{
		ID:         uuid.New().String(),
		EmployeeID: emp.ID,
		CompanyID:  emp.CompanyID,
		Source:     entity.VisitSourceLink,
		OS:         orDefault(in.OS, entity.UnknownClient),
		Browser:    orDefault(in.Browser, entity.UnknownClient),
		DeviceType: normalizeDevice(in.DeviceType),
		IPAddress:  strings.TrimSpace(in.IPAddress),
		CreatedAt:  time.Now(),
	}
	if in.Source == entity.VisitSourceQR {
		v.Source = entity.VisitSourceQR
	}
	if err := uc.visits.Create(ctx, v); err != nil {
		return nil, err
	}
	return entityToVisitResponse(v), nil
}

// ListByCompany devuelve todas las visitas de la empresa.
func (uc *VisitUseCase) ListByCompany(ctx context.Context, companyID string) (*dto.VisitListResponse, error) {
	list, err := uc.visits.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VisitResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *entityToVisitResponse(v))
	}
	return &dto.VisitListResponse{Items: items, Total: len(items)}, nil
}

func orDefault(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

func normalizeDevice(s string) string {
	switch d := strings.ToLower(strings.TrimSpace(s)); d {
	case entity.DeviceMobile, entity.DeviceTablet, entity.DeviceDesktop, entity.DeviceBot:
		return d
	default:
		return entity.DeviceDesktop
	}
}

func entityToVisitResponse(v *entity.Visit) *dto.VisitResponse {
	return &dto.VisitResponse{
		ID:         v.ID,
		EmployeeID: v.EmployeeID,
		Source:     v.Source,
		OS:         v.OS,
		Browser:    v.Browser,
		DeviceType: v.DeviceType,
		IPAddress:  v.IPAddress,
		CreatedAt:  v.CreatedAt,
	}
}
