package repository

import (
	"devportal-api/src/internal/model"
)

// EnvironmentRepository defines the interface for environment data access
type EnvironmentRepository interface {
	CreateEnvironment(env *model.Environment) error
	GetEnvironmentByUUID(uuid string) (*model.Environment, error)
	ListEnvironments() ([]*model.Environment, error)
	UpdateEnvironment(env *model.Environment) error
	DeleteEnvironment(uuid string) error
	ExistsByName(name string) (bool, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	CreateProject(project *model.Project) error
	GetProjectByUUID(uuid string) (*model.Project, error)
	GetProjectsByEnvironmentID(envID string) ([]*model.Project, error)
	UpdateProject(project *model.Project) error
	DeleteProject(uuid string) error
	ExistsByEnvironmentAndName(envID, name string) (bool, error)
}

// CredentialRepository defines the interface for credential data access
type CredentialRepository interface {
	CreateCredential(credential *model.Credential) error
	GetCredentialByUUID(uuid string) (*model.Credential, error)
	GetCredentialsByProjectID(projectID string) ([]*model.Credential, error)
	UpdateCredential(credential *model.Credential) error
	DeleteCredential(uuid string) error
	ExistsByProjectAndKey(projectID, key string) (bool, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	CreateUser(user *model.User) error
	GetUserByUUID(uuid string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	ListUsers() ([]*model.User, error)
	UpdateUser(user *model.User) error
	ExistsByRole(role string) (bool, error)
}

// AuditLogRepository defines the interface for the append-only audit trail.
// There is deliberately no update or delete operation.
type AuditLogRepository interface {
	CreateAuditLog(entry *model.AuditLog) error
	ListAuditLogs() ([]*model.AuditLogDetails, error)
}
