package usecase

import (
	"context"

	"saaskit/internal/domain/entity"

	"github.com/google/uuid"
)

// Pagination describes one page of a listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// UpdateProfileInput changes the caller's own names. Nil fields are left as is.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
}

// ChangePasswordInput replaces the caller's password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// ListUsersInput filters the admin user listing.
type ListUsersInput struct {
	Page   int
	Limit  int
	Search string
}

// AdminUpdateUserInput is what an admin may change on any account.
type AdminUpdateUserInput struct {
	FirstName *string
	LastName  *string
	Role      *entity.Role
	IsActive  *bool
}

// UserList is a page of users.
type UserList struct {
	Users      []*entity.User `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

// UserUsecase covers self-service profile operations and user administration.
type UserUsecase interface {
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
	DeleteAccount(ctx context.Context, userID uuid.UUID) error

	ListUsers(ctx context.Context, input *ListUsersInput) (*UserList, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *AdminUpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, actorID, id uuid.UUID) error
}
