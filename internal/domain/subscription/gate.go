// Package subscription contiene las reglas puras de acceso según el estado de la suscripción.
package subscription

import (
	"time"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
)

// Rutas de destino tras el login.
const (
	PlansPath = "/plans"
	UsagePath = "/usage"
)

// AccessState resultado de evaluar una suscripción.
type AccessState struct {
	HasSubscription bool `json:"has_subscription"`
	IsExpired       bool `json:"is_expired"`
}

// ComputeAccessState evalúa la suscripción en el instante now. Sin I/O.
//
//   - HasSubscription: sub no es nil y trae alguno de Plan, PlanID o ID.
//   - IsExpired: EndDate definido y estrictamente anterior a now. EndDate nil = perpetua.
func ComputeAccessState(sub *entity.Subscription, now time.Time) AccessState {
	var st AccessState
	if sub == nil {
		return st
	}
	st.HasSubscription = sub.Present()
	st.IsExpired = sub.EndDate != nil && sub.EndDate.Before(now)
	return st
}

// LandingPath decide adónde enviar al usuario después de iniciar sesión.
// Una suscripción vencida sigue llevando al panel: allí se muestra el aviso de renovación.
func LandingPath(st AccessState) string {
	if !st.HasSubscription {
		return PlansPath
	}
	return UsagePath
}

// NeedsRenewal indica si el panel debe mostrar el aviso de renovación.
func (s AccessState) NeedsRenewal() bool {
	return !s.HasSubscription || s.IsExpired
}
