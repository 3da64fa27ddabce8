package impl

import (
	"context"
	"fmt"
	"testing"

	"saaskit/config"
	"saaskit/internal/domain/entity"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/domain/repository"
	mockRepo "saaskit/internal/mocks/repository"
	"saaskit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProjectService(t *testing.T, freeLimit int) (usecase.ProjectUsecase, *memStore) {
	t.Helper()

	cfg := newTestConfig()
	cfg.Billing = &config.BillingConfig{FreeProjectLimit: freeLimit}
	store := newMemStore()

	srv := NewProjectService(ProjectServiceParams{
		ProjectRepo: store,
		SubRepo:     store,
		Config:      cfg,
		Logger:      discardLogger(),
	})

	return srv, store
}

func TestProjectService_CreateProject(t *testing.T) {
	srv, store := createTestProjectService(t, 3)
	ctx := context.Background()
	user := seedUser(t, store, "alice@example.com", entity.PlanFree, entity.StatusActive)

	project, err := srv.CreateProject(ctx, user.ID, &usecase.CreateProjectInput{Name: "  Website  ", Description: " Landing page "})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, project.ID)
	assert.Equal(t, "Website", project.Name)
	assert.Equal(t, "Landing page", project.Description)
	assert.True(t, project.IsActive)

	_, err = srv.CreateProject(ctx, user.ID, &usecase.CreateProjectInput{Name: "   "})
	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestProjectService_CreateProject_PlanLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		plan      entity.Plan
		status    entity.SubscriptionStatus
		wantLimit bool
	}{
		{"free plan hits the limit", 2, entity.PlanFree, entity.StatusActive, true},
		{"canceled pro falls back to free", 2, entity.PlanPro, entity.StatusCanceled, true},
		{"active pro is unlimited", 2, entity.PlanPro, entity.StatusActive, false},
		{"past due pro keeps the entitlement", 2, entity.PlanPro, entity.StatusPastDue, false},
		{"zero disables the limit", 0, entity.PlanFree, entity.StatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, store := createTestProjectService(t, tt.limit)
			ctx := context.Background()
			user := seedUser(t, store, "alice@example.com", tt.plan, tt.status)

			for i := range 2 {
				_, err := srv.CreateProject(ctx, user.ID, &usecase.CreateProjectInput{Name: fmt.Sprintf("p%d", i)})
				require.NoError(t, err)
			}

			_, err := srv.CreateProject(ctx, user.ID, &usecase.CreateProjectInput{Name: "one more"})
			if tt.wantLimit {
				requireAppError(t, err, domainerrors.ErrPlanLimitReached)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestProjectService_OwnerScoping(t *testing.T) {
	srv, store := createTestProjectService(t, 0)
	ctx := context.Background()
	alice := seedUser(t, store, "alice@example.com", entity.PlanFree, entity.StatusActive)
	bob := seedUser(t, store, "bob@example.com", entity.PlanFree, entity.StatusActive)

	project, err := srv.CreateProject(ctx, alice.ID, &usecase.CreateProjectInput{Name: "Secret"})
	require.NoError(t, err)

	_, err = srv.GetProject(ctx, bob.ID, project.ID)
	requireAppError(t, err, domainerrors.ErrProjectNotFound)

	_, err = srv.UpdateProject(ctx, bob.ID, project.ID, &usecase.UpdateProjectInput{Name: strPtr("Mine now")})
	requireAppError(t, err, domainerrors.ErrProjectNotFound)

	requireAppError(t, srv.DeleteProject(ctx, bob.ID, project.ID), domainerrors.ErrProjectNotFound)

	got, err := srv.GetProject(ctx, alice.ID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Secret", got.Name)

	_, err = srv.GetProject(ctx, alice.ID, uuid.New())
	requireAppError(t, err, domainerrors.ErrProjectNotFound)
}

func TestProjectService_UpdateAndDelete(t *testing.T) {
	srv, store := createTestProjectService(t, 0)
	ctx := context.Background()
	user := seedUser(t, store, "alice@example.com", entity.PlanFree, entity.StatusActive)

	project, err := srv.CreateProject(ctx, user.ID, &usecase.CreateProjectInput{Name: "Website"})
	require.NoError(t, err)

	inactive := false
	updated, err := srv.UpdateProject(ctx, user.ID, project.ID, &usecase.UpdateProjectInput{
		Description: strPtr(" v2 "),
		IsActive:    &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Website", updated.Name)
	assert.Equal(t, "v2", updated.Description)
	assert.False(t, updated.IsActive)

	_, err = srv.UpdateProject(ctx, user.ID, project.ID, &usecase.UpdateProjectInput{Name: strPtr("  ")})
	requireAppError(t, err, domainerrors.ErrValidationFailed)

	require.NoError(t, srv.DeleteProject(ctx, user.ID, project.ID))
	_, err = srv.GetProject(ctx, user.ID, project.ID)
	requireAppError(t, err, domainerrors.ErrProjectNotFound)
}

func TestProjectService_Listing(t *testing.T) {
	srv, store := createTestProjectService(t, 0)
	ctx := context.Background()
	alice := seedUser(t, store, "alice@example.com", entity.PlanFree, entity.StatusActive)
	bob := seedUser(t, store, "bob@example.com", entity.PlanFree, entity.StatusActive)

	for i := range 3 {
		_, err := srv.CreateProject(ctx, alice.ID, &usecase.CreateProjectInput{Name: fmt.Sprintf("alpha %d", i)})
		require.NoError(t, err)
	}
	_, err := srv.CreateProject(ctx, bob.ID, &usecase.CreateProjectInput{Name: "beta", Description: "Alpha-adjacent"})
	require.NoError(t, err)

	own, err := srv.ListProjects(ctx, alice.ID, &usecase.ListProjectsInput{UserID: &bob.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), own.Pagination.Total)
	for _, p := range own.Projects {
		assert.Equal(t, alice.ID, p.UserID)
	}

	all, err := srv.ListAllProjects(ctx, &usecase.ListProjectsInput{Search: "alpha"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), all.Pagination.Total)

	bobs, err := srv.ListAllProjects(ctx, &usecase.ListProjectsInput{UserID: &bob.ID})
	require.NoError(t, err)
	require.Len(t, bobs.Projects, 1)
	assert.Equal(t, "beta", bobs.Projects[0].Name)

	paged, err := srv.ListProjects(ctx, alice.ID, &usecase.ListProjectsInput{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, paged.Projects, 1)
	assert.Equal(t, 2, paged.Pagination.Pages)
}

func TestProjectService_RepositoryFailures(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	newService := func(t *testing.T) (usecase.ProjectUsecase, *mockRepo.MockProjectRepository, *entity.User) {
		store := newMemStore()
		projects := mockRepo.NewMockProjectRepository(t)
		cfg := newTestConfig()
		cfg.Billing = &config.BillingConfig{FreeProjectLimit: 3}
		srv := NewProjectService(ProjectServiceParams{
			ProjectRepo: projects,
			SubRepo:     store,
			Config:      cfg,
			Logger:      discardLogger(),
		})

		return srv, projects, seedUser(t, store, "alice@example.com", entity.PlanFree, entity.StatusActive)
	}

	t.Run("count failure blocks creation", func(t *testing.T) {
		srv, projects, user := newService(t)
		projects.EXPECT().CountProjectsByUserID(mock.Anything, user.ID).Return(0, dbErr)

		_, err := srv.CreateProject(ctx, user.ID, &usecase.CreateProjectInput{Name: "Website"})

		require.ErrorIs(t, err, dbErr)
		projects.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
	})

	t.Run("list passes the owner filter", func(t *testing.T) {
		srv, projects, user := newService(t)
		projects.EXPECT().
			ListProjects(mock.Anything, mock.MatchedBy(func(filter repository.ProjectListFilter) bool {
				return filter.UserID != nil && *filter.UserID == user.ID && filter.Search == "web"
			})).
			Return(nil, 0, dbErr)

		_, err := srv.ListProjects(ctx, user.ID, &usecase.ListProjectsInput{Search: " web "})

		require.ErrorIs(t, err, dbErr)
	})
}
