package dto

import (
	"time"
)

// AuditLogEntry is the denormalized reporting view of one audit row, joined
// with the user, project and environment it refers to.
type AuditLogEntry struct {
	UUID            string    `json:"uuid"`
	UserID          string    `json:"user_id,omitempty"`
	UserEmail       string    `json:"user_email,omitempty"`
	UserName        string    `json:"user_name,omitempty"`
	EnvironmentID   string    `json:"environment_id,omitempty"`
	EnvironmentName string    `json:"environment_name,omitempty"`
	ProjectID       string    `json:"project_id,omitempty"`
	ProjectName     string    `json:"project_name,omitempty"`
	Action          string    `json:"action"`
	CredentialKey   string    `json:"credential_key"`
	IPAddress       string    `json:"ip_address,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
