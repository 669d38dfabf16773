package dto

import "time"

// CreateVisitRequest registro de una visita enviado por el frontend público.
// Los campos de cliente ya llegan derivados del user-agent; vacíos toman el valor por defecto.
type CreateVisitRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=64"`
	Source     string `json:"source" validate:"omitempty,max=20"`
	OS         string `json:"os" validate:"omitempty,max=100"`
	Browser    string `json:"browser" validate:"omitempty,max=100"`
	DeviceType string `json:"device_type" validate:"omitempty,max=20"`
	IPAddress  string `json:"ip_address" validate:"omitempty,max=64"`
}

// VisitResponse salida de una visita.
type VisitResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Source     string    `json:"source"`
	OS         string    `json:"os"`
	Browser    string    `json:"browser"`
	DeviceType string    `json:"device_type"`
	IPAddress  string    `json:"ip_address"`
	CreatedAt  time.Time `json:"created_at"`
}

// VisitListResponse visitas de la empresa.
type VisitListResponse struct {
	Items []VisitResponse `json:"items"`
	Total int             `json:"total"`
}
