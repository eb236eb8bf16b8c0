package entity

import "time"

// SessionUser datos del usuario autenticado guardados en la sesión.
type SessionUser struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	UserType string `json:"user_type"`
}

// Session sesión persistida en la base de datos, identificada por un id opaco.
type Session struct {
	ID        string
	User      SessionUser
	ExpiresAt time.Time
}

// Expired indica si la sesión ya no es válida en el instante now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
