package usecase_test

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
)

// memEmployees repositorio en memoria para los casos de uso.
type memEmployees struct {
	mu   sync.Mutex
	byID map[string]*entity.Employee
}

func newMemEmployees(list ...*entity.Employee) *memEmployees {
	m := &memEmployees{byID: map[string]*entity.Employee{}}
	for _, e := range list {
		m.byID[e.ID] = e
	}
	return m
}

func (m *memEmployees) Create(_ context.Context, e *entity.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[e.ID] = e
	return nil
}

func (m *memEmployees) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (m *memEmployees) GetByUniqueURL(_ context.Context, u string) (*entity.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.byID {
		if e.UniqueURL == u {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memEmployees) Update(_ context.Context, e *entity.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[e.ID] = e
	return nil
}

func (m *memEmployees) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

func (m *memEmployees) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Employee, error) {
	all, _ := m.ListAllByCompany(ctx, companyID)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *memEmployees) ListAllByCompany(_ context.Context, companyID string) ([]*entity.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Employee
	for _, e := range m.byID {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memEmployees) CountByCompany(ctx context.Context, companyID string) (int, error) {
	all, _ := m.ListAllByCompany(ctx, companyID)
	return len(all), nil
}

type memVisits struct {
	mu    sync.Mutex
	saved []*entity.Visit
}

func (m *memVisits) Create(_ context.Context, v *entity.Visit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, v)
	return nil
}

func (m *memVisits) CountByEmployee(_ context.Context, employeeID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, v := range m.saved {
		if v.EmployeeID == employeeID {
			n++
		}
	}
	return n, nil
}

func (m *memVisits) ListByCompany(_ context.Context, companyID string) ([]*entity.Visit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Visit
	for _, v := range m.saved {
		if v.CompanyID == companyID {
			out = append(out, v)
		}
	}
	return out, nil
}

type memCompanies struct {
	byID map[string]*entity.Company
}

func (m *memCompanies) Create(_ context.Context, c *entity.Company) error {
	m.byID[c.ID] = c
	return nil
}

func (m *memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if c, ok := m.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *memCompanies) GetByEmail(_ context.Context, email string) (*entity.Company, error) {
	for _, c := range m.byID {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCompanies) Update(_ context.Context, c *entity.Company) error {
	m.byID[c.ID] = c
	return nil
}

type memPlans struct {
	list []*entity.Plan
}

func (m *memPlans) List(context.Context) ([]*entity.Plan, error) { return m.list, nil }

func (m *memPlans) GetByID(_ context.Context, id string) (*entity.Plan, error) {
	for _, p := range m.list {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

type memSubs struct {
	saved []*entity.Subscription
}

func (m *memSubs) Create(_ context.Context, s *entity.Subscription) error {
	m.saved = append(m.saved, s)
	return nil
}

func (m *memSubs) GetCurrentByCompany(_ context.Context, companyID string) (*entity.Subscription, error) {
	for i := len(m.saved) - 1; i >= 0; i-- {
		if m.saved[i].CompanyID == companyID {
			return m.saved[i], nil
		}
	}
	return nil, nil
}

type fakeStorage struct {
	key, filename string
	body          []byte
}

func (f *fakeStorage) Save(_ context.Context, key, filename string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.key, f.filename, f.body = key, filename, b
	return "/uploads/" + key + ".jpg", nil
}

type fakePDF struct {
	cardURL string
}

func (f *fakePDF) GenerateCardPDF(_ context.Context, _ *entity.Employee, _ *entity.Company, cardURL string) ([]byte, error) {
	f.cardURL = cardURL
	return []byte("%PDF-1.4"), nil
}
