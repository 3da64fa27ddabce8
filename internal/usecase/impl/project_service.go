package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"saaskit/config"
	deliverycontext "saaskit/internal/delivery/context"
	"saaskit/internal/domain/entity"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/domain/repository"
	"saaskit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// projectService implements the ProjectUsecase interface.
type projectService struct {
	projectRepo      repository.ProjectRepository
	subRepo          repository.SubscriptionRepository
	freeProjectLimit int
	logger           *slog.Logger
}

// ProjectServiceParams holds dependencies for ProjectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	ProjectRepo repository.ProjectRepository
	SubRepo     repository.SubscriptionRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	limit := 0
	if params.Config != nil && params.Config.Billing != nil {
		limit = params.Config.Billing.FreeProjectLimit
	}

	return &projectService{
		projectRepo:      params.ProjectRepo,
		subRepo:          params.SubRepo,
		freeProjectLimit: limit,
		logger:           params.Logger,
	}
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *projectService) ListProjects(ctx context.Context, ownerID uuid.UUID, input *usecase.ListProjectsInput) (*usecase.ProjectList, error) {
	return srv.list(ctx, &ownerID, input)
}

func (srv *projectService) ListAllProjects(ctx context.Context, input *usecase.ListProjectsInput) (*usecase.ProjectList, error) {
	return srv.list(ctx, input.UserID, input)
}

func (srv *projectService) list(ctx context.Context, ownerID *uuid.UUID, input *usecase.ListProjectsInput) (*usecase.ProjectList, error) {
	page := normalizePage(input.Page, input.Limit)

	projects, total, err := srv.projectRepo.ListProjects(ctx, repository.ProjectListFilter{
		UserID: ownerID,
		Search: strings.TrimSpace(input.Search),
		Page:   page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return &usecase.ProjectList{Projects: projects, Pagination: newPagination(page, total)}, nil
}

// CreateProject adds a project for ownerID within the plan's project allowance.
func (srv *projectService) CreateProject(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateProjectInput) (*entity.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	if err := srv.checkProjectAllowance(ctx, ownerID); err != nil {
		return nil, err
	}

	project := &entity.Project{
		UserID:      ownerID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		IsActive:    true,
	}
	if err := srv.projectRepo.CreateProject(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	srv.log(ctx).Info("Project created", slog.Any("projectID", project.ID), slog.Any("userID", ownerID))

	return project, nil
}

// checkProjectAllowance rejects the creation when the owner is on the free
// tier and already holds the configured number of projects.
func (srv *projectService) checkProjectAllowance(ctx context.Context, ownerID uuid.UUID) error {
	if srv.freeProjectLimit <= 0 {
		return nil
	}

	sub, err := srv.subRepo.FindSubscriptionByUserID(ctx, ownerID)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return errors.Wrap(err, "failed to load subscription")
	}
	if hasPaidEntitlement(sub) {
		return nil
	}

	count, err := srv.projectRepo.CountProjectsByUserID(ctx, ownerID)
	if err != nil {
		return errors.Wrap(err, "failed to count projects")
	}
	if count >= int64(srv.freeProjectLimit) {
		return errors.Wrap(domainerrors.ErrPlanLimitReached.WithDetails(
			fmt.Sprintf("the FREE plan allows %d projects", srv.freeProjectLimit)), "create project")
	}

	return nil
}

// hasPaidEntitlement reports whether sub lifts the free tier limits.
// PAST_DUE keeps the entitlement while the provider retries payment.
func hasPaidEntitlement(sub *entity.Subscription) bool {
	if sub == nil || !sub.Plan.IsPaid() {
		return false
	}

	switch sub.Status {
	case entity.StatusActive, entity.StatusPastDue:
		return true
	case entity.StatusInactive, entity.StatusCanceled:
		return false
	default:
		return false
	}
}

// ownedProject loads a project and hides it from anyone but its owner.
func (srv *projectService) ownedProject(ctx context.Context, ownerID, id uuid.UUID) (*entity.Project, error) {
	project, err := srv.projectRepo.FindProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProjectNotFound, "get project")
		}

		return nil, errors.Wrap(err, "failed to find project")
	}
	if project.UserID != ownerID {
		return nil, errors.Wrap(domainerrors.ErrProjectNotFound, "get project")
	}

	return project, nil
}

func (srv *projectService) GetProject(ctx context.Context, ownerID, id uuid.UUID) (*entity.Project, error) {
	return srv.ownedProject(ctx, ownerID, id)
}

func (srv *projectService) UpdateProject(ctx context.Context, ownerID, id uuid.UUID, input *usecase.UpdateProjectInput) (*entity.Project, error) {
	if _, err := srv.ownedProject(ctx, ownerID, id); err != nil {
		return nil, err
	}

	patch := &entity.ProjectPatch{
		Name:        trimmedPtr(input.Name),
		Description: trimmedPtr(input.Description),
		IsActive:    input.IsActive,
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name cannot be empty")
	}

	project, err := srv.projectRepo.UpdateProject(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProjectNotFound, "update project")
		}

		return nil, errors.Wrap(err, "failed to update project")
	}

	return project, nil
}

func (srv *projectService) DeleteProject(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := srv.ownedProject(ctx, ownerID, id); err != nil {
		return err
	}

	if err := srv.projectRepo.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return errors.Wrap(domainerrors.ErrProjectNotFound, "delete project")
		}

		return errors.Wrap(err, "failed to delete project")
	}

	srv.log(ctx).Info("Project deleted", slog.Any("projectID", id), slog.Any("userID", ownerID))

	return nil
}
