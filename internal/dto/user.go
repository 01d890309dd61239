package dto

import (
	"time"
)

// User is the transport representation of an account
type User struct {
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// InviteUserRequest creates a new account with a generated temporary password
type InviteUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

// InviteUserResponse returns the generated temporary password exactly once
type InviteUserResponse struct {
	UserID            string `json:"user_id"`
	TemporaryPassword string `json:"temporary_password"`
}

// UpdateUserRequest changes an account's role and active flag
type UpdateUserRequest struct {
	Role   string `json:"role" binding:"required"`
	Active *bool  `json:"active" binding:"required"`
}
