package usecase

import (
	"context"

	"saaskit/internal/domain/entity"

	"github.com/google/uuid"
)

type CreateProjectInput struct {
	Name        string
	Description string
}

type UpdateProjectInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

type ListProjectsInput struct {
	UserID *uuid.UUID // Admin listing only; owner listings ignore it.
	Page   int
	Limit  int
	Search string
}

type ProjectList struct {
	Projects   []*entity.Project `json:"projects"`
	Pagination Pagination        `json:"pagination"`
}

// ProjectUsecase manages projects. Every owner-scoped method answers
// not-found for projects of other users.
type ProjectUsecase interface {
	ListProjects(ctx context.Context, ownerID uuid.UUID, input *ListProjectsInput) (*ProjectList, error)
	CreateProject(ctx context.Context, ownerID uuid.UUID, input *CreateProjectInput) (*entity.Project, error)
	GetProject(ctx context.Context, ownerID, id uuid.UUID) (*entity.Project, error)
	UpdateProject(ctx context.Context, ownerID, id uuid.UUID, input *UpdateProjectInput) (*entity.Project, error)
	DeleteProject(ctx context.Context, ownerID, id uuid.UUID) error

	ListAllProjects(ctx context.Context, input *ListProjectsInput) (*ProjectList, error)
}
