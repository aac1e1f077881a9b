package models

import (
	"time"

	"github.com/gocql/gocql"
)

type User struct {
	ID           gocql.UUID `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	Name         string     `json:"name" db:"name"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         string     `json:"role" db:"role"` // "admin" ou "viewer"
	Provider     string     `json:"provider" db:"provider"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}
