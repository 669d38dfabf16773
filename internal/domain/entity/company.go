package entity

import "time"

// Estados válidos de Company.
const (
	CompanyActive    = "active"
	CompanySuspended = "suspended"
)

// Company representa una organización/tenant del sistema. Es dueña de sus empleados y suscripciones.
type Company struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Website   string
	LogoURL   string
	Status    string // active, suspended
	CreatedAt time.Time
	UpdatedAt time.Time
}
