package dto

import (
	"time"
)

// Project represents a project entity in the developer portal
type Project struct {
	UUID          string    `json:"uuid"`
	EnvironmentID string    `json:"environment_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Team          string    `json:"team,omitempty"`
	Status        string    `json:"status,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProjectRequest is the create/update payload for a project
type ProjectRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
	Team        string `json:"team"`
	Status      string `json:"status"`
}
