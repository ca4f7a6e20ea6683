package dto

// RegisterRequest entrada validada para el registro de usuarios.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// Session sesión emitida por el proveedor de identidad tras un login correcto.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// LoginResponse salida del login: mensaje de error o sesión.
type LoginResponse struct {
	Message string   `json:"message,omitempty"`
	Session *Session `json:"session,omitempty"`
}
