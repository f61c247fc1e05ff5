package domain

import (
	"context"
	"strings"
	"time"
)

// RoleUser is the only role granted through self registration.
const RoleUser = "ROLE_USER"

// User represents a registered platform account
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Firstname    string
	Lastname     string
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User instance with the default role
func NewUser(email, passwordHash, firstname, lastname string) *User {
	now := time.Now()
	return &User{
		Email:        strings.TrimSpace(email),
		PasswordHash: passwordHash,
		Firstname:    strings.TrimSpace(firstname),
		Lastname:     strings.TrimSpace(lastname),
		Roles:        []string{RoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// UserRepository defines the interface for user data persistence.
// Lookups return (nil, nil) when no user matches.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
}
