package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanResponse salida de un plan.
type PlanResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency"`
	DurationDays int             `json:"duration_days"`
	MaxEmployees int             `json:"max_employees"`
}

// PurchaseRequest contratación de un plan.
type PurchaseRequest struct {
	PlanID string `json:"plan_id" form:"plan_id" validate:"required"`
}

// SubscriptionResponse salida de una suscripción. EndDate nil = perpetua.
type SubscriptionResponse struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	PlanID    string     `json:"plan_id"`
	Plan      string     `json:"plan"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// AccessResponse resultado de la compuerta de suscripción.
type AccessResponse struct {
	HasSubscription bool `json:"has_subscription"`
	IsExpired       bool `json:"is_expired"`
}
