package dto

import "time"

// RegisterRequest alta de una empresa junto con su usuario administrador.
type RegisterRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=1,max=200"`
	Name        string `json:"name" validate:"omitempty,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Phone       string `json:"phone" validate:"omitempty,max=40"`
}

// RegisterResponse empresa y usuario creados.
type RegisterResponse struct {
	Company CompanyResponse `json:"company"`
	User    UserResponse    `json:"user"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token Bearer, usuario, estado de la suscripción y ruta sugerida.
type LoginResponse struct {
	Token    string         `json:"token"`
	User     UserResponse   `json:"user"`
	Access   AccessResponse `json:"access"`
	Redirect string         `json:"redirect"`
}
