package repository

import (
	"database/sql"
	"errors"
	"time"

	"devportal-api/src/internal/database"
	"devportal-api/src/internal/model"
)

// CredentialRepo implements CredentialRepository
type CredentialRepo struct {
	db *database.DB
}

// NewCredentialRepo creates a new credential repository
func NewCredentialRepo(db *database.DB) CredentialRepository {
	return &CredentialRepo{db: db}
}

// CreateCredential inserts a new credential. The unique index on
// (project_id, key) makes a concurrent duplicate insert fail here even when
// the service-level existence check raced.
func (r *CredentialRepo) CreateCredential(credential *model.Credential) error {
	query := `
		INSERT INTO credentials (uuid, project_id, key, value_encrypted, type, description, updated_by, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, credential.UUID, credential.ProjectID, credential.Key,
		credential.ValueEncrypted, credential.Type, credential.Description,
		nullable(credential.UpdatedBy), credential.UpdatedAt)
	return err
}

// GetCredentialByUUID retrieves a credential by ID
func (r *CredentialRepo) GetCredentialByUUID(uuid string) (*model.Credential, error) {
	credential := &model.Credential{}
	var updatedBy sql.NullString
	query := `
		SELECT uuid, project_id, key, value_encrypted, type, description, updated_by, updated_at
		FROM credentials
		WHERE uuid = ?
	`
	err := r.db.QueryRow(query, uuid).Scan(
		&credential.UUID, &credential.ProjectID, &credential.Key, &credential.ValueEncrypted,
		&credential.Type, &credential.Description, &updatedBy, &credential.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	credential.UpdatedBy = updatedBy.String
	return credential, nil
}

// GetCredentialsByProjectID retrieves all credentials for a project
func (r *CredentialRepo) GetCredentialsByProjectID(projectID string) ([]*model.Credential, error) {
	query := `
		SELECT uuid, project_id, key, value_encrypted, type, description, updated_by, updated_at
		FROM credentials
		WHERE project_id = ?
		ORDER BY key ASC
	`
	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var credentials []*model.Credential
	for rows.Next() {
		credential := &model.Credential{}
		var updatedBy sql.NullString
		err := rows.Scan(&credential.UUID, &credential.ProjectID, &credential.Key,
			&credential.ValueEncrypted, &credential.Type, &credential.Description,
			&updatedBy, &credential.UpdatedAt)
		if err != nil {
			return nil, err
		}
		credential.UpdatedBy = updatedBy.String
		credentials = append(credentials, credential)
	}

	return credentials, rows.Err()
}

// UpdateCredential modifies an existing credential. The project_id column is
// deliberately not part of the SET list: ownership is immutable.
func (r *CredentialRepo) UpdateCredential(credential *model.Credential) error {
	credential.UpdatedAt = time.Now()
	query := `
		UPDATE credentials
		SET key = ?, value_encrypted = ?, type = ?, description = ?, updated_by = ?, updated_at = ?
		WHERE uuid = ?
	`
	_, err := r.db.Exec(query, credential.Key, credential.ValueEncrypted, credential.Type,
		credential.Description, nullable(credential.UpdatedBy), credential.UpdatedAt, credential.UUID)
	return err
}

// DeleteCredential removes a credential
func (r *CredentialRepo) DeleteCredential(uuid string) error {
	query := `DELETE FROM credentials WHERE uuid = ?`
	_, err := r.db.Exec(query, uuid)
	return err
}

// ExistsByProjectAndKey checks whether a credential with the given key exists
// in the project, compared case-insensitively
func (r *CredentialRepo) ExistsByProjectAndKey(projectID, key string) (bool, error) {
	var count int
	query := `SELECT COUNT(1) FROM credentials WHERE project_id = ? AND LOWER(key) = LOWER(?)`
	if err := r.db.QueryRow(query, projectID, key).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// nullable converts an empty string to a SQL NULL for optional FK columns
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
