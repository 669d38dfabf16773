package usecase

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/dto"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/repository"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/pkg/slug"
)

// EmployeeUseCase gestiona los perfiles de tarjeta de una empresa.
// Todas las operaciones autenticadas reciben el companyID del token: un ID de otra empresa es ErrNotFound.
type EmployeeUseCase struct {
	repo          repository.EmployeeRepository
	visits        repository.VisitRepository
	companies     repository.CompanyRepository
	photos        PhotoStorage
	pdf           CardPDFGenerator
	publicBaseURL string
}

// NewEmployeeUseCase construye el caso de uso. photos y pdf pueden ser nil si la instancia no los expone.
func NewEmployeeUseCase(
	repo repository.EmployeeRepository,
	visits repository.VisitRepository,
	companies repository.CompanyRepository,
	photos PhotoStorage,
	pdf CardPDFGenerator,
	publicBaseURL string,
) *EmployeeUseCase {
	return &EmployeeUseCase{
		repo:          repo,
		visits:        visits,
		companies:     companies,
		photos:        photos,
		pdf:           pdf,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Create da de alta un perfil. Si no viene UniqueURL se genera desde el nombre con un sufijo corto.
func (uc *EmployeeUseCase) Create(ctx context.Context, companyID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	uniqueURL, err := uc.resolveUniqueURL(ctx, in.UniqueURL, in.Name, "")
	if err != nil {
		return nil, err
	}
	now := time.Now()
	emp := &entity.Employee{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      strings.TrimSpace(in.Name),
		JobTitle:  in.JobTitle,
		Email:     in.Email,
		Phone:     in.Phone,
		WhatsApp:  in.WhatsApp,
		Website:   in.Website,
		About:     in.About,
		DesignID:  strings.TrimSpace(in.DesignID),
		UniqueURL: uniqueURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, emp); err != nil {
		return nil, err
	}
	return entityToEmployeeResponse(emp), nil
}

// GetByID obtiene un perfil de la empresa.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return entityToEmployeeResponse(emp), nil
}

// GetPublic obtiene un perfil por su URL pública. Sin efectos secundarios.
func (uc *EmployeeUseCase) GetPublic(ctx context.Context, uniqueURL string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByUniqueURL(ctx, strings.TrimSpace(uniqueURL))
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	return entityToEmployeeResponse(emp), nil
}

// List lista perfiles con paginación.
func (uc *EmployeeUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &dto.EmployeeListResponse{
		Items: toEmployeeResponses(list),
		Page:  &dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// ListAll devuelve todos los perfiles de la empresa, sin paginar.
func (uc *EmployeeUseCase) ListAll(ctx context.Context, companyID string) (*dto.EmployeeListResponse, error) {
	list, err := uc.repo.ListAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &dto.EmployeeListResponse{Items: toEmployeeResponses(list)}, nil
}

// Update aplica los campos presentes.
func (uc *EmployeeUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.UniqueURL != nil && *in.UniqueURL != emp.UniqueURL {
		u, err := uc.resolveUniqueURL(ctx, *in.UniqueURL, emp.Name, emp.ID)
		if err != nil {
			return nil, err
		}
		emp.UniqueURL = u
	}
	if in.Name != nil {
		emp.Name = strings.TrimSpace(*in.Name)
	}
	if in.JobTitle != nil {
		emp.JobTitle = *in.JobTitle
	}
	if in.Email != nil {
		emp.Email = *in.Email
	}
	if in.Phone != nil {
		emp.Phone = *in.Phone
	}
	if in.WhatsApp != nil {
		emp.WhatsApp = *in.WhatsApp
	}
	if in.Website != nil {
		emp.Website = *in.Website
	}
	if in.About != nil {
		emp.About = *in.About
	}
	if in.DesignID != nil {
		emp.DesignID = strings.TrimSpace(*in.DesignID)
	}
	emp.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, emp); err != nil {
		return nil, err
	}
	return entityToEmployeeResponse(emp), nil
}

// Delete elimina un perfil de la empresa.
func (uc *EmployeeUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.owned(ctx, companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// CountVisits devuelve el número de visitas registradas para el perfil.
func (uc *EmployeeUseCase) CountVisits(ctx context.Context, companyID, id string) (*dto.VisitCountResponse, error) {
	if _, err := uc.owned(ctx, companyID, id); err != nil {
		return nil, err
	}
	n, err := uc.visits.CountByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.VisitCountResponse{EmployeeID: id, Visits: n}, nil
}

// UploadPhoto guarda la foto del perfil y actualiza PhotoURL.
func (uc *EmployeeUseCase) UploadPhoto(ctx context.Context, companyID, id, filename string, r io.Reader) (*dto.EmployeeResponse, error) {
	if uc.photos == nil {
		return nil, fmt.Errorf("%w: almacenamiento de fotos no configurado", domain.ErrUpstreamUnavailable)
	}
	emp, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	photoURL, err := uc.photos.Save(ctx, emp.ID, filename, r)
	if err != nil {
		return nil, err
	}
	emp.PhotoURL = photoURL
	emp.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, emp); err != nil {
		return nil, err
	}
	return entityToEmployeeResponse(emp), nil
}

// CardPDF genera la tarjeta imprimible. Devuelve los bytes y un nombre de archivo sugerido.
func (uc *EmployeeUseCase) CardPDF(ctx context.Context, companyID, id string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("%w: generador de PDF no configurado", domain.ErrUpstreamUnavailable)
	}
	emp, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, "", err
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, "", err
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}
	data, err := uc.pdf.GenerateCardPDF(ctx, emp, company, uc.CardURL(emp))
	if err != nil {
		return nil, "", err
	}
	return data, "tarjeta-" + emp.UniqueURL + ".pdf", nil
}

// CardURL URL pública de la tarjeta que se codifica en el QR (visita de origen qr).
func (uc *EmployeeUseCase) CardURL(emp *entity.Employee) string {
	design := emp.DesignID
	if design == "" {
		design = entity.DefaultDesign
	}
	return fmt.Sprintf("%s/%s/%s?source=%s",
		uc.publicBaseURL, url.PathEscape(design), url.PathEscape(emp.UniqueURL), entity.VisitSourceQR)
}

func (uc *EmployeeUseCase) owned(ctx context.Context, companyID, id string) (*entity.Employee, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return emp, nil
}

// resolveUniqueURL valida la URL pedida o genera una. selfID excluye al propio perfil al comprobar duplicados.
func (uc *EmployeeUseCase) resolveUniqueURL(ctx context.Context, requested, name, selfID string) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested != "" {
		if !slug.Valid(requested) {
			return "", fmt.Errorf("%w: unique_url solo admite minúsculas, dígitos y guiones", domain.ErrInvalidInput)
		}
		existing, err := uc.repo.GetByUniqueURL(ctx, requested)
		if err != nil {
			return "", err
		}
		if existing != nil && existing.ID != selfID {
			return "", domain.ErrDuplicate
		}
		return requested, nil
	}
	base := slug.Make(name)
	for i := 0; i < 3; i++ {
		candidate := slug.WithSuffix(base, uuid.New().String()[:6])
		existing, err := uc.repo.GetByUniqueURL(ctx, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
	}
	return "", domain.ErrDuplicate
}

func toEmployeeResponses(list []*entity.Employee) []dto.EmployeeResponse {
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *entityToEmployeeResponse(e))
	}
	return items
}

func entityToEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:        e.ID,
		CompanyID: e.CompanyID,
		Name:      e.Name,
		JobTitle:  e.JobTitle,
		Email:     e.Email,
		Phone:     e.Phone,
		WhatsApp:  e.WhatsApp,
		Website:   e.Website,
		About:     e.About,
		PhotoURL:  e.PhotoURL,
		DesignID:  e.DesignID,
		UniqueURL: e.UniqueURL,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

