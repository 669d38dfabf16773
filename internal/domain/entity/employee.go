package entity

import "time"

// DefaultDesign plantilla usada cuando ni la ruta ni el empleado indican un diseño.
const DefaultDesign = "classic"

// Employee es el perfil de tarjeta digital de una persona de la empresa.
// UniqueURL es el slug público y estable de su tarjeta.
type Employee struct {
	ID        string
	CompanyID string
	Name      string
	JobTitle  string
	Email     string
	Phone     string
	WhatsApp  string
	Website   string
	About     string
	PhotoURL  string
	DesignID  string // plantilla preferida; vacío = sin preferencia
	UniqueURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
