package model

import (
	"time"
)

// Credential represents an encrypted credential owned by a project. The
// ValueEncrypted column only ever holds cipher output (base64 of
// nonce || ciphertext || tag); plaintext is never persisted.
type Credential struct {
	UUID           string    `json:"uuid" db:"uuid"`
	ProjectID      string    `json:"project_id" db:"project_id"` // FK to Project.UUID, immutable after creation
	Key            string    `json:"key" db:"key"`
	ValueEncrypted string    `json:"-" db:"value_encrypted"`
	Type           string    `json:"type" db:"type"` // SECRET or FILE
	Description    string    `json:"description" db:"description"`
	UpdatedBy      string    `json:"updated_by" db:"updated_by"` // FK to User.UUID
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Credential model
func (Credential) TableName() string {
	return "credentials"
}
