package repository

import (
	"database/sql"
	"errors"
	"time"

	"devportal-api/src/internal/database"
	"devportal-api/src/internal/model"
)

// EnvironmentRepo implements EnvironmentRepository
type EnvironmentRepo struct {
	db *database.DB
}

// NewEnvironmentRepo creates a new environment repository
func NewEnvironmentRepo(db *database.DB) EnvironmentRepository {
	return &EnvironmentRepo{db: db}
}

// CreateEnvironment inserts a new environment
func (r *EnvironmentRepo) CreateEnvironment(env *model.Environment) error {
	env.CreatedAt = time.Now()
	env.UpdatedAt = time.Now()

	query := `
		INSERT INTO environments (uuid, name, color_code, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, env.UUID, env.Name, env.ColorCode, env.CreatedAt, env.UpdatedAt)
	return err
}

// GetEnvironmentByUUID retrieves an environment by ID
func (r *EnvironmentRepo) GetEnvironmentByUUID(uuid string) (*model.Environment, error) {
	env := &model.Environment{}
	query := `
		SELECT uuid, name, color_code, created_at, updated_at
		FROM environments
		WHERE uuid = ?
	`
	err := r.db.QueryRow(query, uuid).Scan(
		&env.UUID, &env.Name, &env.ColorCode, &env.CreatedAt, &env.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return env, nil
}

// ListEnvironments retrieves all environments
func (r *EnvironmentRepo) ListEnvironments() ([]*model.Environment, error) {
	query := `
		SELECT uuid, name, color_code, created_at, updated_at
		FROM environments
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var envs []*model.Environment
	for rows.Next() {
		env := &model.Environment{}
		err := rows.Scan(&env.UUID, &env.Name, &env.ColorCode, &env.CreatedAt, &env.UpdatedAt)
		if err != nil {
			return nil, err
		}
		envs = append(envs, env)
	}

	return envs, rows.Err()
}

// UpdateEnvironment modifies an existing environment
func (r *EnvironmentRepo) UpdateEnvironment(env *model.Environment) error {
	env.UpdatedAt = time.Now()
	query := `
		UPDATE environments
		SET name = ?, color_code = ?, updated_at = ?
		WHERE uuid = ?
	`
	_, err := r.db.Exec(query, env.Name, env.ColorCode, env.UpdatedAt, env.UUID)
	return err
}

// DeleteEnvironment removes an environment
func (r *EnvironmentRepo) DeleteEnvironment(uuid string) error {
	query := `DELETE FROM environments WHERE uuid = ?`
	_, err := r.db.Exec(query, uuid)
	return err
}

// ExistsByName checks whether an environment with the given name exists,
// compared case-insensitively
func (r *EnvironmentRepo) ExistsByName(name string) (bool, error) {
	var count int
	query := `SELECT COUNT(1) FROM environments WHERE LOWER(name) = LOWER(?)`
	if err := r.db.QueryRow(query, name).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
