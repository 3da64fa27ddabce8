package repository

import (
	"context"

	"saaskit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProjectNotFound is returned when no project matches the lookup.
var ErrProjectNotFound = errors.New("project not found")

// ProjectListFilter narrows a project listing.
type ProjectListFilter struct {
	UserID *uuid.UUID // Owner filter; nil lists across all owners.
	Search string     // Case-insensitive match on name or description.
	Page   entity.Page
}

// ProjectRepository persists user-owned projects.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project *entity.Project) error
	FindProjectByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	// ListProjects returns one page, newest first, and the total match count.
	ListProjects(ctx context.Context, filter ProjectListFilter) ([]*entity.Project, int64, error)
	CountProjectsByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateProject(ctx context.Context, id uuid.UUID, patch *entity.ProjectPatch) (*entity.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}
