package model

import (
	"time"
)

// AuditLogDetails is the denormalized read model for audit reporting: one
// audit row joined with the user, project and environment it refers to. The
// joined fields are empty when the referenced row has since been deleted.
type AuditLogDetails struct {
	UUID            string
	UserID          string
	UserEmail       string
	UserName        string
	EnvironmentID   string
	EnvironmentName string
	ProjectID       string
	ProjectName     string
	Action          string
	CredentialKey   string
	IPAddress       string
	CreatedAt       time.Time
}
