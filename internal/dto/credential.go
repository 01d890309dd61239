package dto

import (
	"time"
)

// Credential is the transport representation of a credential. Value carries
// the fixed mask on every surface except the reveal endpoint.
type Credential struct {
	UUID        string    `json:"uuid"`
	ProjectID   string    `json:"project_id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	UpdatedBy   string    `json:"updated_by,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CredentialRequest is the create/update payload for a credential
type CredentialRequest struct {
	Key         string `json:"key" binding:"required,min=1,max=255"`
	Value       string `json:"value"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ImportResult reports how many records a bulk import created
type ImportResult struct {
	Created int `json:"created"`
}
