package backendapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/dto"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/infrastructure/backendapi"
)

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de suscripciones
// ──────────────────────────────────────────────────────────────────────────────

func TestDecodeSubscription_Formas(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantNil     bool
		wantPresent bool
		wantPlan    string
		wantPlanID  string
	}{
		{name: "null", body: `null`, wantNil: true},
		{name: "vacío", body: ``, wantNil: true},
		{name: "solo id", body: `{"id": 42}`, wantPresent: true},
		{name: "planId camel", body: `{"planId": "pro"}`, wantPresent: true, wantPlanID: "pro"},
		{name: "plan_id snake", body: `{"plan_id": "basic"}`, wantPresent: true, wantPlanID: "basic"},
		{name: "plan como texto", body: `{"plan": "Profesional"}`, wantPresent: true, wantPlan: "Profesional"},
		{name: "plan como objeto", body: `{"plan": {"id": 7, "name": "Empresa"}}`, wantPresent: true, wantPlan: "Empresa", wantPlanID: "7"},
		{name: "sobre subscription", body: `{"subscription": {"plan_id": "pro"}}`, wantPresent: true, wantPlanID: "pro"},
		{name: "sobre data", body: `{"data": {"plan": "Básico"}}`, wantPresent: true, wantPlan: "Básico"},
		{name: "sobre con null", body: `{"subscription": null}`, wantNil: true},
		{name: "sobre null y data con id", body: `{"subscription": null, "data": {"id": "x"}}`, wantPresent: true},
		{name: "ambos sobres null", body: `{"subscription": null, "data": null}`, wantNil: true},
		{name: "id cero es ausente", body: `{"id": 0}`},
		{name: "id texto cero es presente", body: `{"id": "0"}`, wantPresent: true},
		{name: "plan objeto vacío", body: `{"plan": {}}`, wantPresent: true, wantPlan: "sin nombre"},
		{name: "plan true", body: `{"plan": true}`, wantPresent: true, wantPlan: "sin nombre"},
		{name: "plan false", body: `{"plan": false}`},
		{name: "plan texto vacío", body: `{"plan": ""}`},
		{name: "objeto sin identificadores", body: `{"start_date": "2026-01-01T00:00:00Z"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := backendapi.DecodeSubscription([]byte(tt.body))
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, sub)
				return
			}
			require.NotNil(t, sub)
			assert.Equal(t, tt.wantPresent, sub.Present())
			assert.Equal(t, tt.wantPlan, sub.Plan)
			assert.Equal(t, tt.wantPlanID, sub.PlanID)
		})
	}
}

func TestDecodeSubscription_Fechas(t *testing.T) {
	sub, err := backendapi.DecodeSubscription([]byte(`{"id":"s1","start_date":"2026-01-01T00:00:00Z","end_date":"2026-02-01T00:00:00Z"}`))
	require.NoError(t, err)
	require.NotNil(t, sub.EndDate)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), sub.EndDate.UTC())
	assert.Equal(t, 2026, sub.StartDate.Year())

	perpetua, err := backendapi.DecodeSubscription([]byte(`{"id":"s1","end_date":null}`))
	require.NoError(t, err)
	assert.Nil(t, perpetua.EndDate)
}

func TestDecodeSubscription_FechaConEspacio(t *testing.T) {
	sub, err := backendapi.DecodeSubscription([]byte(`{"id":"s1","end_date":"2020-01-01 10:00:00"}`))
	require.NoError(t, err)
	require.NotNil(t, sub.EndDate)
	assert.Equal(t, time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC), sub.EndDate.UTC())
}

func TestDecodeSubscription_FechaIlegibleEsUpstream(t *testing.T) {
	for _, body := range []string{
		`{"id":"s1","end_date":"01/02/2020"}`,
		`{"id":"s1","start_date":"ayer"}`,
		`{"data":{"plan":"pro","expires_at":"pronto"}}`,
	} {
		sub, err := backendapi.DecodeSubscription([]byte(body))
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable, body)
		assert.Nil(t, sub, body)
	}
}

func TestDecodeSubscription_FormaInvalida(t *testing.T) {
	_, err := backendapi.DecodeSubscription([]byte(`[1,2]`))
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cliente HTTP
// ──────────────────────────────────────────────────────────────────────────────

func newServer(t *testing.T, mux *http.ServeMux) *backendapi.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return backendapi.New(srv.URL+"/", 2*time.Second)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_EnviaBearerYDecodifica(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/employees", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "true", r.URL.Query().Get("all"))
		writeJSON(w, http.StatusOK, dto.EmployeeListResponse{Items: []dto.EmployeeResponse{{ID: "e1"}, {ID: "e2", CompanyID: "c9"}}})
	})
	c := newServer(t, mux).WithToken("tok-1")

	list, err := c.Employees().ListAllByCompany(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c1", list[0].CompanyID)
	assert.Equal(t, "c9", list[1].CompanyID)
}

func TestClient_TarjetaInexistenteEsNil(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cards/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "no existe"})
	})
	c := newServer(t, mux)

	emp, err := c.Employees().GetByUniqueURL(context.Background(), "nadie")
	require.NoError(t, err)
	assert.Nil(t, emp)
}

func TestClient_Error500EsUpstream(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/employees/e1/visits/count", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "boom"})
	})
	c := newServer(t, mux)

	_, err := c.Employees().CountByEmployee(context.Background(), "e1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.Contains(t, err.Error(), "boom")
}

func TestClient_401EsUnauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/companies/me", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	c := newServer(t, mux)

	_, err := c.Companies().GetByID(context.Background(), "c1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_SinServidorEsUpstream(t *testing.T) {
	c := backendapi.New("http://127.0.0.1:1", 500*time.Millisecond)

	_, err := c.Visits().ListByCompany(context.Background(), "c1")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestClient_SuscripcionActualNormaliza(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/subscriptions/current", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"plan":{"id":"pro","name":"Profesional"},"end_date":null}}`))
	})
	c := newServer(t, mux)

	sub, err := c.Subscriptions().GetCurrentByCompany(context.Background(), "c1")
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, "pro", sub.PlanID)
	assert.Nil(t, sub.EndDate)
}

func TestClient_SinSuscripcion404EsNil(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/subscriptions/current", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	c := newServer(t, mux)

	sub, err := c.Subscriptions().GetCurrentByCompany(context.Background(), "c1")
	require.NoError(t, err)
	assert.Nil(t, sub)
}

func TestClient_CrearVisita(t *testing.T) {
	var got dto.CreateVisitRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/api/visits", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})
	c := newServer(t, mux)

	err := c.Visits().Create(context.Background(), &entity.Visit{EmployeeID: "e1", Source: "qr", DeviceType: "mobile"})
	require.NoError(t, err)
	assert.Equal(t, "e1", got.EmployeeID)
	assert.Equal(t, "qr", got.Source)
}

func TestClient_LoginInvalido(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales"})
	})
	c := newServer(t, mux)

	_, err := c.Login(context.Background(), "a@b.com", "x")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
