package repository

import (
	"database/sql"
	"errors"
	"time"

	"devportal-api/src/internal/database"
	"devportal-api/src/internal/model"
)

// UserRepo implements UserRepository
type UserRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &UserRepo{db: db}
}

// CreateUser inserts a new user
func (r *UserRepo) CreateUser(user *model.User) error {
	user.CreatedAt = time.Now()

	query := `
		INSERT INTO users (uuid, name, email, password_hash, role, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, user.UUID, user.Name, user.Email, user.PasswordHash,
		user.Role, user.Active, user.CreatedAt)
	return err
}

// GetUserByUUID retrieves a user by ID
func (r *UserRepo) GetUserByUUID(uuid string) (*model.User, error) {
	return r.getUser(`WHERE uuid = ?`, uuid)
}

// GetUserByEmail retrieves a user by email, compared case-insensitively
func (r *UserRepo) GetUserByEmail(email string) (*model.User, error) {
	return r.getUser(`WHERE LOWER(email) = LOWER(?)`, email)
}

func (r *UserRepo) getUser(where string, arg any) (*model.User, error) {
	user := &model.User{}
	query := `
		SELECT uuid, name, email, password_hash, role, active, created_at
		FROM users
	` + where
	err := r.db.QueryRow(query, arg).Scan(
		&user.UUID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.Active, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// ListUsers retrieves all users
func (r *UserRepo) ListUsers() ([]*model.User, error) {
	query := `
		SELECT uuid, name, email, password_hash, role, active, created_at
		FROM users
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user := &model.User{}
		err := rows.Scan(&user.UUID, &user.Name, &user.Email, &user.PasswordHash,
			&user.Role, &user.Active, &user.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// UpdateUser modifies an existing user
func (r *UserRepo) UpdateUser(user *model.User) error {
	query := `
		UPDATE users
		SET name = ?, email = ?, password_hash = ?, role = ?, active = ?
		WHERE uuid = ?
	`
	_, err := r.db.Exec(query, user.Name, user.Email, user.PasswordHash,
		user.Role, user.Active, user.UUID)
	return err
}

// ExistsByRole checks whether any user with the given role exists
func (r *UserRepo) ExistsByRole(role string) (bool, error) {
	var count int
	query := `SELECT COUNT(1) FROM users WHERE role = ?`
	if err := r.db.QueryRow(query, role).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
