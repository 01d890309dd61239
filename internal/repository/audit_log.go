package repository

import (
	"database/sql"

	"devportal-api/src/internal/database"
	"devportal-api/src/internal/model"
)

// AuditLogRepo implements AuditLogRepository. The audit trail is append-only:
// this type exposes no update or delete operation, and none may be added.
type AuditLogRepo struct {
	db *database.DB
}

// NewAuditLogRepo creates a new audit log repository
func NewAuditLogRepo(db *database.DB) AuditLogRepository {
	return &AuditLogRepo{db: db}
}

// CreateAuditLog appends one audit entry
func (r *AuditLogRepo) CreateAuditLog(entry *model.AuditLog) error {
	query := `
		INSERT INTO audit_logs (uuid, user_id, environment_id, project_id, action, credential_key, ip_address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, entry.UUID, nullable(entry.UserID), nullable(entry.EnvironmentID),
		nullable(entry.ProjectID), entry.Action, entry.CredentialKey, entry.IPAddress, entry.CreatedAt)
	return err
}

// ListAuditLogs retrieves all audit entries newest-first, denormalized with
// the user, project and environment details they refer to. LEFT JOINs keep
// entries visible after the referenced rows are deleted.
func (r *AuditLogRepo) ListAuditLogs() ([]*model.AuditLogDetails, error) {
	query := `
		SELECT a.uuid, a.user_id, u.email, u.name,
		       a.environment_id, e.name,
		       a.project_id, p.name,
		       a.action, a.credential_key, a.ip_address, a.created_at
		FROM audit_logs a
		LEFT JOIN users u ON u.uuid = a.user_id
		LEFT JOIN environments e ON e.uuid = a.environment_id
		LEFT JOIN projects p ON p.uuid = a.project_id
		ORDER BY a.created_at DESC, a.uuid DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.AuditLogDetails
	for rows.Next() {
		entry := &model.AuditLogDetails{}
		var userID, userEmail, userName, envID, envName, projectID, projectName, ip sql.NullString
		err := rows.Scan(&entry.UUID, &userID, &userEmail, &userName,
			&envID, &envName, &projectID, &projectName,
			&entry.Action, &entry.CredentialKey, &ip, &entry.CreatedAt)
		if err != nil {
			return nil, err
		}
		entry.UserID = userID.String
		entry.UserEmail = userEmail.String
		entry.UserName = userName.String
		entry.EnvironmentID = envID.String
		entry.EnvironmentName = envName.String
		entry.ProjectID = projectID.String
		entry.ProjectName = projectName.String
		entry.IPAddress = ip.String
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
