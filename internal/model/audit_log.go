package model

import (
	"time"
)

// AuditLog represents one immutable audit trail entry. Entries are only ever
// inserted; the credential key is captured as text so the entry survives
// deletion of the credential row itself.
type AuditLog struct {
	UUID          string    `json:"uuid" db:"uuid"`
	UserID        string    `json:"user_id" db:"user_id"`
	EnvironmentID string    `json:"environment_id" db:"environment_id"`
	ProjectID     string    `json:"project_id" db:"project_id"`
	Action        string    `json:"action" db:"action"` // VIEW_/CREATE_/UPDATE_/DELETE_CREDENTIAL
	CredentialKey string    `json:"credential_key" db:"credential_key"`
	IPAddress     string    `json:"ip_address" db:"ip_address"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for the AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
