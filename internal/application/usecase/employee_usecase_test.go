package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/dto"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/usecase"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/pkg/slug"
)

func strPtr(s string) *string { return &s }

type employeeFixture struct {
	uc      *usecase.EmployeeUseCase
	repo    *memEmployees
	visits  *memVisits
	storage *fakeStorage
	pdf     *fakePDF
}

func newEmployeeFixture(list ...*entity.Employee) employeeFixture {
	f := employeeFixture{
		repo:    newMemEmployees(list...),
		visits:  &memVisits{},
		storage: &fakeStorage{},
		pdf:     &fakePDF{},
	}
	companies := &memCompanies{byID: map[string]*entity.Company{"c1": {ID: "c1", Name: "Acme"}}}
	f.uc = usecase.NewEmployeeUseCase(f.repo, f.visits, companies, f.storage, f.pdf, "https://sharek.app/")
	return f
}

func TestEmployeeCreate_GeneraURLDesdeNombre(t *testing.T) {
	f := newEmployeeFixture()

	out, err := f.uc.Create(context.Background(), "c1", dto.CreateEmployeeRequest{Name: "José Pérez"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.UniqueURL, "jose-perez-"), out.UniqueURL)
	assert.True(t, slug.Valid(out.UniqueURL))
	assert.Equal(t, "c1", out.CompanyID)
}

func TestEmployeeCreate_URLDuplicada(t *testing.T) {
	f := newEmployeeFixture(&entity.Employee{ID: "e1", CompanyID: "c2", UniqueURL: "ana"})

	_, err := f.uc.Create(context.Background(), "c1", dto.CreateEmployeeRequest{Name: "Ana", UniqueURL: "ana"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestEmployeeCreate_URLInvalida(t *testing.T) {
	f := newEmployeeFixture()

	_, err := f.uc.Create(context.Background(), "c1", dto.CreateEmployeeRequest{Name: "Ana", UniqueURL: "Ana López"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeGetByID_OtraEmpresaEsNotFound(t *testing.T) {
	f := newEmployeeFixture(&entity.Employee{ID: "e1", CompanyID: "c2"})

	_, err := f.uc.GetByID(context.Background(), "c1", "e1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeUpdate_CamposParciales(t *testing.T) {
	f := newEmployeeFixture(&entity.Employee{ID: "e1", CompanyID: "c1", Name: "Ana", JobTitle: "Ventas", UniqueURL: "ana"})

	out, err := f.uc.Update(context.Background(), "c1", "e1", dto.UpdateEmployeeRequest{DesignID: strPtr("modern")})
	require.NoError(t, err)
	assert.Equal(t, "modern", out.DesignID)
	assert.Equal(t, "Ventas", out.JobTitle)
	assert.Equal(t, "ana", out.UniqueURL)
}

func TestEmployeeUpdate_MismaURLNoEsDuplicado(t *testing.T) {
	f := newEmployeeFixture(&entity.Employee{ID: "e1", CompanyID: "c1", Name: "Ana", UniqueURL: "ana"})

	_, err := f.uc.Update(context.Background(), "c1", "e1", dto.UpdateEmployeeRequest{UniqueURL: strPtr("ana")})
	assert.NoError(t, err)
}

func TestEmployeeList_PaginaConTotal(t *testing.T) {
	f := newEmployeeFixture(
		&entity.Employee{ID: "e1", CompanyID: "c1"},
		&entity.Employee{ID: "e2", CompanyID: "c1"},
		&entity.Employee{ID: "e3", CompanyID: "c1"},
		&entity.Employee{ID: "x1", CompanyID: "c2"},
	)

	out, err := f.uc.List(context.Background(), "c1", dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	require.NotNil(t, out.Page)
	assert.Equal(t, 3, out.Page.Total)

	all, err := f.uc.ListAll(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)
	assert.Nil(t, all.Page)
}

func TestEmployeeDelete(t *testing.T) {
	f := newEmployeeFixture(&entity.Employee{ID: "e1", CompanyID: "c1"})

	require.NoError(t, f.uc.Delete(context.Background(), "c1", "e1"))
	_, err := f.uc.GetByID(context.Background(), "c1", "e1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeCountVisits(t *testing.T) {
	f := newEmployeeFixture(&entity.Employee{ID: "e1", CompanyID: "c1"})
	_ = f.visits.Create(context.Background(), &entity.Visit{ID: "v1", EmployeeID: "e1", CompanyID: "c1"})
	_ = f.visits.Create(context.Background(), &entity.Visit{ID: "v2", EmployeeID: "e1", CompanyID: "c1"})

	out, err := f.uc.CountVisits(context.Background(), "c1", "e1")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Visits)
}

func TestEmployeeUploadPhoto(t *testing.T) {
	f := newEmployeeFixture(&entity.Employee{ID: "e1", CompanyID: "c1"})

	out, err := f.uc.UploadPhoto(context.Background(), "c1", "e1", "yo.jpg", strings.NewReader("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/e1.jpg", out.PhotoURL)
	assert.Equal(t, "e1", f.storage.key)
	assert.Equal(t, []byte("jpeg"), f.storage.body)
}

func TestEmployeeCardPDF_QRApuntaALaTarjeta(t *testing.T) {
	f := newEmployeeFixture(&entity.Employee{ID: "e1", CompanyID: "c1", UniqueURL: "ana"})

	data, name, err := f.uc.CardPDF(context.Background(), "c1", "e1")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "tarjeta-ana.pdf", name)
	assert.Equal(t, "https://sharek.app/classic/ana?source=qr", f.pdf.cardURL)
}

func TestEmployeeGetPublic(t *testing.T) {
	f := newEmployeeFixture(&entity.Employee{ID: "e1", CompanyID: "c1", UniqueURL: "ana"})

	out, err := f.uc.GetPublic(context.Background(), " ana ")
	require.NoError(t, err)
	assert.Equal(t, "e1", out.ID)

	_, err = f.uc.GetPublic(context.Background(), "nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
