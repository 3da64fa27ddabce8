package handler

import (
	"log/slog"
	"net/http"

	"saaskit/internal/delivery/http/response"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/errors"
	"saaskit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProjectHandlerParams holds dependencies for ProjectHandler, injected by Fx.
type ProjectHandlerParams struct {
	fx.In

	ProjectUC usecase.ProjectUsecase
	Logger    *slog.Logger
}

// ProjectHandler serves the caller's projects and the admin project listing.
type ProjectHandler struct {
	projectUC usecase.ProjectUsecase
	logger    *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler.
func NewProjectHandler(params ProjectHandlerParams) *ProjectHandler {
	return &ProjectHandler{
		projectUC: params.ProjectUC,
		logger:    params.Logger,
	}
}

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	IsActive    *bool   `json:"isActive"`
}

type ListAllProjectsQuery struct {
	PageQuery
	UserID string `query:"userId" validate:"omitempty,uuid"`
}

// ListProjects lists the caller's projects.
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var query PageQuery
	if err := bindRequest(c, &query); err != nil {
		return err
	}

	list, err := h.projectUC.ListProjects(c.Request().Context(), userID, &usecase.ListProjectsInput{
		Page:   query.Page,
		Limit:  query.Limit,
		Search: query.Search,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list, "")
}

// CreateProject creates a project owned by the caller, within their plan limit.
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateProjectRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	project, err := h.projectUC.CreateProject(c.Request().Context(), userID, &usecase.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"project": project}, "Project created successfully")
}

// GetProject returns one of the caller's projects.
func (h *ProjectHandler) GetProject(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domainerrors.ErrProjectNotFound)
	if err != nil {
		return err
	}

	project, err := h.projectUC.GetProject(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"project": project}, "")
}

// UpdateProject updates one of the caller's projects.
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domainerrors.ErrProjectNotFound)
	if err != nil {
		return err
	}

	var req UpdateProjectRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	project, err := h.projectUC.UpdateProject(c.Request().Context(), userID, id, &usecase.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"project": project}, "Project updated successfully")
}

// DeleteProject deletes one of the caller's projects.
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domainerrors.ErrProjectNotFound)
	if err != nil {
		return err
	}

	if err := h.projectUC.DeleteProject(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Project deleted successfully")
}

// ListAllProjects is the admin listing across owners.
func (h *ProjectHandler) ListAllProjects(c echo.Context) error {
	var query ListAllProjectsQuery
	if err := bindRequest(c, &query); err != nil {
		return err
	}

	input := &usecase.ListProjectsInput{
		Page:   query.Page,
		Limit:  query.Limit,
		Search: query.Search,
	}
	if query.UserID != "" {
		ownerID, err := uuid.Parse(query.UserID)
		if err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("userId: must be a valid UUID"), err.Error())
		}
		input.UserID = &ownerID
	}

	list, err := h.projectUC.ListAllProjects(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list, "")
}
