package card_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/card"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/infrastructure/useragent"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmployees struct {
	byURL map[string]*entity.Employee
	err   error
}

func (f *fakeEmployees) GetByUniqueURL(_ context.Context, uniqueURL string) (*entity.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byURL[uniqueURL], nil
}

type fakeVisits struct {
	mu     sync.Mutex
	saved  []*entity.Visit
	err    error
	panics bool
}

func (f *fakeVisits) Create(_ context.Context, v *entity.Visit) error {
	if f.panics {
		panic("almacén roto")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, v)
	return nil
}

func (f *fakeVisits) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saved)
}

type spyDispatcher struct {
	calls []string
}

func (s *spyDispatcher) Dispatch(employeeID string, _ card.RequestMeta) {
	s.calls = append(s.calls, employeeID)
}

type countingMetrics struct {
	mu       sync.Mutex
	recorded map[string]int
	failed   int
}

func (m *countingMetrics) VisitRecorded(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recorded == nil {
		m.recorded = map[string]int{}
	}
	m.recorded[source]++
}

func (m *countingMetrics) VisitWriteFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed++
}

func newEmployees() *fakeEmployees {
	return &fakeEmployees{byURL: map[string]*entity.Employee{
		"ana-perez": {ID: "e1", CompanyID: "c1", Name: "Ana Pérez", UniqueURL: "ana-perez", DesignID: "modern"},
		"luis-gil":  {ID: "e2", CompanyID: "c1", Name: "Luis Gil", UniqueURL: "luis-gil"},
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolver
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_SeleccionDePlantilla(t *testing.T) {
	cases := []struct {
		name     string
		design   string
		url      string
		expected string
	}{
		{"diseño de la ruta manda", "minimal", "ana-perez", "minimal"},
		{"ruta vacía usa el del empleado", "", "ana-perez", "modern"},
		{"ruta con espacios usa el del empleado", "  ", "ana-perez", "modern"},
		{"ambos vacíos usa classic", "", "luis-gil", "classic"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spy := &spyDispatcher{}
			r := card.NewResolver(newEmployees(), spy)

			emp, tpl, err := r.Resolve(context.Background(), tc.design, tc.url, card.RequestMeta{})
			require.NoError(t, err)
			assert.Equal(t, tc.url, emp.UniqueURL)
			assert.Equal(t, tc.expected, tpl)
			assert.Equal(t, []string{emp.ID}, spy.calls, "una visita por resolución exitosa")
		})
	}
}

func TestResolve_NoEncontrado_SinVisitas(t *testing.T) {
	spy := &spyDispatcher{}
	r := card.NewResolver(newEmployees(), spy)

	for _, url := range []string{"no-existe", "", "   "} {
		_, _, err := r.Resolve(context.Background(), "classic", url, card.RequestMeta{})
		assert.ErrorIs(t, err, domain.ErrNotFound, "url %q", url)
	}
	assert.Empty(t, spy.calls)
}

func TestResolve_ErrorDelAlmacen_SinVisitas(t *testing.T) {
	spy := &spyDispatcher{}
	upstream := errors.New("conexión rechazada")
	r := card.NewResolver(&fakeEmployees{err: upstream}, spy)

	_, _, err := r.Resolve(context.Background(), "", "ana-perez", card.RequestMeta{})
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, spy.calls)
}

func TestSelectTemplate(t *testing.T) {
	assert.Equal(t, "modern", card.SelectTemplate("", "modern"))
	assert.Equal(t, "classic", card.SelectTemplate("", ""))
	assert.Equal(t, "minimal", card.SelectTemplate("minimal", "modern"))
}

// ──────────────────────────────────────────────────────────────────────────────
// RequestMeta
// ──────────────────────────────────────────────────────────────────────────────

func TestNewRequestMeta(t *testing.T) {
	cases := []struct {
		name                    string
		hint, forwarded, remote string
		wantSource, wantIP      string
	}{
		{"qr literal", "qr", "", "10.0.0.1:5000", "qr", "10.0.0.1"},
		{"QR en mayúsculas es link", "QR", "", "", "link", ""},
		{"pista vacía es link", "", "", "10.0.0.1", "link", "10.0.0.1"},
		{"otra pista es link", "email", "", "", "link", ""},
		{"forwarded-for gana", "link", "203.0.113.7, 10.0.0.2", "10.0.0.1:5000", "link", "203.0.113.7"},
		{"forwarded-for vacío cae al peer", "", " , ", "[::1]:443", "link", "::1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := card.NewRequestMeta("ua", tc.hint, tc.forwarded, tc.remote)
			assert.Equal(t, tc.wantSource, meta.Source)
			assert.Equal(t, tc.wantIP, meta.IPAddress)
			assert.Equal(t, "ua", meta.UserAgent)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// VisitRecorder
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_UserAgentVacio_UsaDefaults(t *testing.T) {
	visits := &fakeVisits{}
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := card.NewVisitRecorder(visits, useragent.NewParser(), logger.Nop(), card.WithClock(func() time.Time { return fixed }))

	rec.Record(context.Background(), "e1", card.NewRequestMeta("", "", "", ""))

	require.Len(t, visits.saved, 1)
	v := visits.saved[0]
	assert.Equal(t, "e1", v.EmployeeID)
	assert.Equal(t, "unknown", v.OS)
	assert.Equal(t, "unknown", v.Browser)
	assert.Equal(t, "desktop", v.DeviceType)
	assert.Equal(t, "link", v.Source)
	assert.Equal(t, "", v.IPAddress)
	assert.Equal(t, fixed, v.CreatedAt)
	assert.NotEmpty(t, v.ID)
}

func TestRecord_FalloAlPersistir_NoPropaga(t *testing.T) {
	visits := &fakeVisits{err: errors.New("tabla bloqueada")}
	metrics := &countingMetrics{}
	rec := card.NewVisitRecorder(visits, useragent.NewParser(), logger.Nop(), card.WithMetrics(metrics))

	assert.NotPanics(t, func() {
		rec.Record(context.Background(), "e1", card.RequestMeta{Source: "qr"})
	})
	assert.Equal(t, 0, visits.count())
	assert.Equal(t, 1, metrics.failed)
}

func TestDispatch_PersisteUnaVez(t *testing.T) {
	visits := &fakeVisits{}
	metrics := &countingMetrics{}
	rec := card.NewVisitRecorder(visits, useragent.NewParser(), logger.Nop(), card.WithMetrics(metrics))

	rec.Dispatch("e1", card.RequestMeta{Source: "qr"})
	rec.Wait()

	require.Equal(t, 1, visits.count())
	assert.Equal(t, "qr", visits.saved[0].Source)
	assert.Equal(t, 1, metrics.recorded["qr"])
}

func TestDispatch_PanicoAislado(t *testing.T) {
	metrics := &countingMetrics{}
	rec := card.NewVisitRecorder(&fakeVisits{panics: true}, useragent.NewParser(), logger.Nop(), card.WithMetrics(metrics))

	assert.NotPanics(t, func() {
		rec.Dispatch("e1", card.RequestMeta{})
		rec.Wait()
	})
	assert.Equal(t, 1, metrics.failed)
}

func TestResolverConRecorder_FlujoCompleto(t *testing.T) {
	visits := &fakeVisits{}
	rec := card.NewVisitRecorder(visits, useragent.NewParser(), logger.Nop())
	r := card.NewResolver(newEmployees(), rec)

	_, _, err := r.Resolve(context.Background(), "", "ana-perez", card.NewRequestMeta("", "qr", "", "1.2.3.4:80"))
	require.NoError(t, err)
	_, _, err = r.Resolve(context.Background(), "", "nadie", card.RequestMeta{})
	require.ErrorIs(t, err, domain.ErrNotFound)
	rec.Wait()

	require.Equal(t, 1, visits.count())
	assert.Equal(t, "e1", visits.saved[0].EmployeeID)
	assert.Equal(t, "qr", visits.saved[0].Source)
	assert.Equal(t, "1.2.3.4", visits.saved[0].IPAddress)
}
