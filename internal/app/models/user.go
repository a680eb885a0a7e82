package models

import "github.com/google/uuid"

// User defines the user model based on the 'users' table
type User struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name" example:"User"`
	Email    string    `json:"email" db:"email" example:"user@nextmail.com"`
	Password string    `json:"-" db:"password"` // bcrypt hash
	Admin    bool      `json:"admin" db:"admin"`
}
