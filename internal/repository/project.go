package repository

import (
	"database/sql"
	"errors"
	"time"

	"devportal-api/src/internal/database"
	"devportal-api/src/internal/model"
)

// ProjectRepo implements ProjectRepository
type ProjectRepo struct {
	db *database.DB
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(db *database.DB) ProjectRepository {
	return &ProjectRepo{db: db}
}

// CreateProject inserts a new project
func (r *ProjectRepo) CreateProject(project *model.Project) error {
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()

	query := `
		INSERT INTO projects (uuid, environment_id, name, description, team, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, project.UUID, project.EnvironmentID, project.Name,
		project.Description, project.Team, project.Status, project.CreatedAt, project.UpdatedAt)
	return err
}

// GetProjectByUUID retrieves a project by ID
func (r *ProjectRepo) GetProjectByUUID(uuid string) (*model.Project, error) {
	project := &model.Project{}
	query := `
		SELECT uuid, environment_id, name, description, team, status, created_at, updated_at
		FROM projects
		WHERE uuid = ?
	`
	err := r.db.QueryRow(query, uuid).Scan(
		&project.UUID, &project.EnvironmentID, &project.Name, &project.Description,
		&project.Team, &project.Status, &project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return project, nil
}

// GetProjectsByEnvironmentID retrieves all projects for an environment
func (r *ProjectRepo) GetProjectsByEnvironmentID(envID string) ([]*model.Project, error) {
	query := `
		SELECT uuid, environment_id, name, description, team, status, created_at, updated_at
		FROM projects
		WHERE environment_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, envID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		project := &model.Project{}
		err := rows.Scan(&project.UUID, &project.EnvironmentID, &project.Name, &project.Description,
			&project.Team, &project.Status, &project.CreatedAt, &project.UpdatedAt)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// UpdateProject modifies an existing project. The environment_id column is
// deliberately not part of the SET list: ownership is immutable.
func (r *ProjectRepo) UpdateProject(project *model.Project) error {
	project.UpdatedAt = time.Now()
	query := `
		UPDATE projects
		SET name = ?, description = ?, team = ?, status = ?, updated_at = ?
		WHERE uuid = ?
	`
	_, err := r.db.Exec(query, project.Name, project.Description, project.Team,
		project.Status, project.UpdatedAt, project.UUID)
	return err
}

// DeleteProject removes a project
func (r *ProjectRepo) DeleteProject(uuid string) error {
	query := `DELETE FROM projects WHERE uuid = ?`
	_, err := r.db.Exec(query, uuid)
	return err
}

// ExistsByEnvironmentAndName checks whether a project with the given name
// exists in the environment, compared case-insensitively
func (r *ProjectRepo) ExistsByEnvironmentAndName(envID, name string) (bool, error) {
	var count int
	query := `SELECT COUNT(1) FROM projects WHERE environment_id = ? AND LOWER(name) = LOWER(?)`
	if err := r.db.QueryRow(query, envID, name).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
