package model

import (
	"time"
)

// Project represents a project inside an environment. The owning environment
// is immutable after creation.
type Project struct {
	UUID          string    `json:"uuid" db:"uuid"`
	EnvironmentID string    `json:"environment_id" db:"environment_id"` // FK to Environment.UUID
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description" db:"description"`
	Team          string    `json:"team" db:"team"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Project model
func (Project) TableName() string {
	return "projects"
}
