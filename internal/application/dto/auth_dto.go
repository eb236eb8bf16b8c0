package dto

// RegisterRequest entrada para registro: nombre completo, email y password en texto (se hashea en el use case).
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CheckAuthResponse estado de la sesión actual.
type CheckAuthResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserType      string `json:"user_type,omitempty"`
	UserID        int64  `json:"user_id,omitempty"`
	Email         string `json:"email,omitempty"`
	FullName      string `json:"full_name,omitempty"`
}
