package backendapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
)

// DecodeSubscription normaliza las variantes de suscripción que puede devolver la API:
//
//	null
//	{"id": ...} | {"planId": ...} | {"plan_id": ...}
//	{"plan": "pro"} | {"plan": {"id": ..., "name": ...}}
//	cualquiera de las anteriores dentro de {"subscription": ...} o {"data": ...}
//
// Un cuerpo vacío o null devuelve (nil, nil). Los IDs numéricos se aceptan como texto.
// Un sobre null se salta y se prueba el siguiente.
//
// Presencia con las reglas de verdad de JSON: 0, false, "" y null cuentan como ausentes;
// cualquier otro plan sin nombre ni ID (true, {}) se conserva como unnamedPlan.
//
// Una fecha no vacía que no se puede interpretar es un error: tratarla como ausente
// convertiría la suscripción en perpetua.
func DecodeSubscription(raw []byte) (*entity.Subscription, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: suscripción con forma desconocida: %w", domain.ErrUpstreamUnavailable, err)
	}

	if !hasAny(fields, "id", "plan", "planId", "plan_id") {
		wrapped := false
		for _, envelope := range []string{"subscription", "data"} {
			inner, ok := fields[envelope]
			if !ok {
				continue
			}
			wrapped = true
			if isNull(inner) {
				continue
			}
			return DecodeSubscription(inner)
		}
		if wrapped {
			return nil, nil
		}
	}

	sub := &entity.Subscription{
		ID:        scalar(fields["id"]),
		CompanyID: scalar(first(fields, "company_id", "companyId")),
		PlanID:    scalar(first(fields, "plan_id", "planId")),
	}

	if p, ok := fields["plan"]; ok {
		var obj struct {
			ID   json.RawMessage `json:"id"`
			Name string          `json:"name"`
		}
		if name := scalar(p); name != "" {
			sub.Plan = name
		} else if json.Unmarshal(p, &obj) == nil {
			sub.Plan = strings.TrimSpace(obj.Name)
			if sub.PlanID == "" {
				sub.PlanID = scalar(obj.ID)
			}
		}
		if sub.Plan == "" && sub.PlanID == "" && truthy(p) {
			sub.Plan = unnamedPlan
		}
	}

	start, err := timeField(first(fields, "start_date", "startDate"))
	if err != nil {
		return nil, err
	}
	if start != nil {
		sub.StartDate = *start
	}
	if sub.EndDate, err = timeField(first(fields, "end_date", "endDate", "expires_at")); err != nil {
		return nil, err
	}
	created, err := timeField(first(fields, "created_at", "createdAt"))
	if err != nil {
		return nil, err
	}
	if created != nil {
		sub.CreatedAt = *created
	}
	return sub, nil
}

// unnamedPlan marca un plan presente que no trae nombre ni ID.
const unnamedPlan = "sin nombre"

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

func hasAny(fields map[string]json.RawMessage, keys ...string) bool {
	for _, k := range keys {
		if _, ok := fields[k]; ok {
			return true
		}
	}
	return false
}

func first(fields map[string]json.RawMessage, keys ...string) json.RawMessage {
	for _, k := range keys {
		if v, ok := fields[k]; ok {
			return v
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// truthy aplica las reglas de verdad de JSON: null, false, 0 y "" son falsos.
func truthy(raw json.RawMessage) bool {
	if isNull(raw) {
		return false
	}
	var v any
	if json.Unmarshal(raw, &v) != nil {
		return false
	}
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	}
	return true
}

// scalar devuelve un string o número JSON como texto; cualquier otra cosa como "".
// El número 0 cuenta como ausente.
func scalar(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if json.Unmarshal(raw, &n) == nil {
		if f, err := n.Float64(); err == nil && f == 0 {
			return ""
		}
		if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return strconv.FormatInt(i, 10)
		}
		return n.String()
	}
	return ""
}

func timeField(raw json.RawMessage) (*time.Time, error) {
	s := scalar(raw)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: fecha de suscripción ilegible: %q", domain.ErrUpstreamUnavailable, s)
}
