package entity

import "time"

// Orígenes de una visita.
const (
	VisitSourceQR   = "qr"
	VisitSourceLink = "link"
)

// Valores por defecto cuando el user-agent no permite detectar el cliente.
const (
	UnknownClient = "unknown"
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
)

// Visit registro inmutable de una vista de tarjeta. Solo se inserta, nunca se modifica.
type Visit struct {
	ID         string
	EmployeeID string
	CompanyID  string // desnormalizado para los totales por empresa
	Source     string // qr | link
	OS         string
	Browser    string
	DeviceType string
	IPAddress  string // best-effort, puede venir vacío
	CreatedAt  time.Time
}

// ClientInfo datos del cliente derivados del user-agent.
type ClientInfo struct {
	OS         string
	Browser    string
	DeviceType string
}
