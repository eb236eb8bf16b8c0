package entity

import "time"

// Tipos de usuario válidos.
const (
	UserTypeCustomer = "customer"
	UserTypeAdmin    = "admin"
)

// User representa un cliente o administrador de la tienda.
type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	UserType     string // customer, admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
