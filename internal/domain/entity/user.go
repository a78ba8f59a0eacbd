package entity

import "time"

// User usuario de la aplicación (autenticación con username + password bcrypt).
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
