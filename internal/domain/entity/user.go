package entity

import "time"

// User usuario del panel de administración (login con email y contraseña).
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // bcrypt
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
