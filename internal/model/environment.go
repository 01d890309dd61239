package model

import (
	"time"
)

// Environment represents a top-level environment (e.g. qa, staging, prod)
// that owns zero or more projects.
type Environment struct {
	UUID      string    `json:"uuid" db:"uuid"`
	Name      string    `json:"name" db:"name"`
	ColorCode string    `json:"color_code" db:"color_code"` // hex color or simple color name (qa=green, prod=red)
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Environment model
func (Environment) TableName() string {
	return "environments"
}
