package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan plan comercial que una empresa puede contratar.
type Plan struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	Currency     string
	DurationDays int // 0 = sin vencimiento
	MaxEmployees int // 0 = ilimitado
	IsActive     bool
	CreatedAt    time.Time
}

// Subscription contratación de un Plan por una Company.
// EndDate nil significa suscripción perpetua.
type Subscription struct {
	ID        string
	CompanyID string
	PlanID    string
	Plan      string // nombre del plan
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
}

// Present informa si el registro identifica realmente una suscripción:
// basta con cualquiera de Plan, PlanID o ID.
func (s *Subscription) Present() bool {
	if s == nil {
		return false
	}
	return s.Plan != "" || s.PlanID != "" || s.ID != ""
}
