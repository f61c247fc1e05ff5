package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"elearn-api/internal/domain"
	"elearn-api/internal/repository/models"
	"elearn-api/internal/util"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id "ID", email "EMAIL", password_hash "PASSWORD_HASH", firstname "FIRSTNAME",
	lastname "LASTNAME", roles "ROLES", created_at "CREATED_AT", updated_at "UPDATED_AT"`

// UserDatabaseAdapter implements domain.UserRepository using sqlx.
type UserDatabaseAdapter struct {
	db *sqlx.DB
}

func NewUserDatabaseAdapter(db *sqlx.DB) domain.UserRepository {
	return &UserDatabaseAdapter{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Firstname:    m.Firstname.String,
		Lastname:     m.Lastname.String,
		Roles:        []string(m.Roles),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Firstname:    util.StringToNullString(u.Firstname),
		Lastname:     util.StringToNullString(u.Lastname),
		Roles:        models.StringSlice(u.Roles),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// CreateUser assigns an ID when missing and inserts the user.
func (a *UserDatabaseAdapter) CreateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return fmt.Errorf("cannot create nil user")
	}
	if user.ID == "" {
		user.ID = util.NewULID()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	m := fromDomainUser(user)
	query := `INSERT INTO users (id, email, password_hash, firstname, lastname, roles, created_at, updated_at)
		VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`

	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		m.ID, m.Email, m.PasswordHash, m.Firstname, m.Lastname, m.Roles, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (a *UserDatabaseAdapter) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER(:1)`
	return a.getUser(ctx, query, email)
}

func (a *UserDatabaseAdapter) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = :1`
	return a.getUser(ctx, query, userID)
}

func (a *UserDatabaseAdapter) getUser(ctx context.Context, query string, arg string) (*domain.User, error) {
	var m models.User
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toDomainUser(&m), nil
}
