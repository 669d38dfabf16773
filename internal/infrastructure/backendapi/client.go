// Package backendapi es el cliente HTTP del frontend hacia la API JSON.
// Traduce las respuestas a entidades de dominio y los fallos a errores de dominio:
// 404 en lecturas -> (nil, nil); 401 -> domain.ErrUnauthorized; resto -> domain.ErrUpstreamUnavailable.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/dto"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
)

const maxErrorBody = 4 << 10

// errNotFound marca un 404 para que cada lectura lo traduzca a (nil, nil).
var errNotFound = errors.New("backendapi: 404")

// Client cliente de la API. Es inmutable: WithToken devuelve una copia con el Bearer del usuario.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New construye el cliente. timeout <= 0 usa 15s.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// WithToken devuelve un cliente que envía Authorization: Bearer <token>.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// Employees operaciones sobre perfiles y tarjetas.
func (c *Client) Employees() *EmployeeAPI { return &EmployeeAPI{c: c} }

// Visits operaciones sobre visitas.
func (c *Client) Visits() *VisitAPI { return &VisitAPI{c: c} }

// Companies operaciones sobre la empresa del token.
func (c *Client) Companies() *CompanyAPI { return &CompanyAPI{c: c} }

// Subscriptions planes, suscripción vigente y contratación.
func (c *Client) Subscriptions() *SubscriptionAPI { return &SubscriptionAPI{c: c} }

// Login intercambia credenciales por token + estado de acceso.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return &out, nil
}

// do ejecuta la petición y decodifica el cuerpo JSON en out (si no es nil).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	raw, err := c.doRaw(ctx, method, path, in)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decodificar %s %s: %w", domain.ErrUpstreamUnavailable, method, path, err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, in any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("backendapi: codificar petición: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("backendapi: construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrUpstreamUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, domain.ErrUnauthorized
	case resp.StatusCode >= 400:
		msg := readErrorMessage(resp.Body)
		return nil, fmt.Errorf("%w: %s %s -> %d %s", domain.ErrUpstreamUnavailable, method, path, resp.StatusCode, msg)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: leer %s %s: %w", domain.ErrUpstreamUnavailable, method, path, err)
	}
	return raw, nil
}

// readErrorMessage extrae el message de un dto.ErrorResponse; si no, el texto recortado.
func readErrorMessage(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	var er dto.ErrorResponse
	if json.Unmarshal(b, &er) == nil && er.Message != "" {
		return er.Message
	}
	return strings.TrimSpace(string(b))
}
