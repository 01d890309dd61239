package dto

import (
	"time"
)

// Environment represents an environment entity in the developer portal
type Environment struct {
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	ColorCode string    `json:"color_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EnvironmentRequest is the create/update payload for an environment
type EnvironmentRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=255"`
	ColorCode string `json:"color_code"`
}
