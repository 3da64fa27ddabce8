// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"saaskit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the email is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserListFilter narrows an administrative user listing.
type UserListFilter struct {
	Search string // Case-insensitive match on email, first name or last name.
	Page   entity.Page
}

// UserRepository defines the persistence operations on accounts.
type UserRepository interface {
	// CreateUser persists a new user. Returns ErrUserAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user with its subscription loaded.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user with its subscription loaded.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListUsers returns one page of users, newest first, and the total match count.
	ListUsers(ctx context.Context, filter UserListFilter) ([]*entity.User, int64, error)

	// UpdateUser applies patch and returns the updated user.
	UpdateUser(ctx context.Context, id uuid.UUID, patch *entity.UserPatch) (*entity.User, error)

	// DeleteUser hard-deletes a user; owned rows are removed by cascade.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
