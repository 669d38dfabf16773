package dto

import "time"

// CreateEmployeeRequest alta de un perfil de tarjeta.
// UniqueURL es opcional: si viene vacío se genera a partir del nombre.
type CreateEmployeeRequest struct {
	Name      string `json:"name" form:"name" validate:"required,min=1,max=200"`
	JobTitle  string `json:"job_title" form:"job_title" validate:"omitempty,max=200"`
	Email     string `json:"email" form:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" form:"phone" validate:"omitempty,max=40"`
	WhatsApp  string `json:"whatsapp" form:"whatsapp" validate:"omitempty,max=40"`
	Website   string `json:"website" form:"website" validate:"omitempty,url"`
	About     string `json:"about" form:"about" validate:"omitempty,max=2000"`
	DesignID  string `json:"design_id" form:"design_id" validate:"omitempty,max=50"`
	UniqueURL string `json:"unique_url" form:"unique_url" validate:"omitempty,min=3,max=64,slug"`
}

// UpdateEmployeeRequest actualización parcial de un perfil.
type UpdateEmployeeRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	JobTitle  *string `json:"job_title" validate:"omitempty,max=200"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=40"`
	WhatsApp  *string `json:"whatsapp" validate:"omitempty,max=40"`
	Website   *string `json:"website" validate:"omitempty,url"`
	About     *string `json:"about" validate:"omitempty,max=2000"`
	DesignID  *string `json:"design_id" validate:"omitempty,max=50"`
	UniqueURL *string `json:"unique_url" validate:"omitempty,min=3,max=64,slug"`
}

// EmployeeResponse salida de un perfil. Visits solo se rellena en vistas agregadas.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	JobTitle  string    `json:"job_title"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	WhatsApp  string    `json:"whatsapp"`
	Website   string    `json:"website"`
	About     string    `json:"about"`
	PhotoURL  string    `json:"photo_url"`
	DesignID  string    `json:"design_id"`
	UniqueURL string    `json:"unique_url"`
	Visits    *int      `json:"visits,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmployeeListResponse lista de empleados (paginada o completa).
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  *PageResponse      `json:"page,omitempty"`
}

// VisitCountResponse conteo de visitas de un empleado.
type VisitCountResponse struct {
	EmployeeID string `json:"employee_id"`
	Visits     int    `json:"visits"`
}
