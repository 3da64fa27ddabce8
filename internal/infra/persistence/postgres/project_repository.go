package postgres

import (
	"context"
	"strings"

	"saaskit/internal/domain/entity"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/domain/repository"
	"saaskit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (repo *projectRepository) CreateProject(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError("create project", err)
	}

	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

func (repo *projectRepository) FindProjectByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	return toProjectDomain(&projectM), nil
}

func (repo *projectRepository) ListProjects(ctx context.Context, filter repository.ProjectListFilter) ([]*entity.Project, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.UserID != nil {
			db = db.Where("user_id = ?", *filter.UserID)
		}
		if strings.TrimSpace(filter.Search) != "" {
			pattern := likePattern(filter.Search)
			db = db.Where("(name ILIKE ? OR description ILIKE ?)", pattern, pattern)
		}

		return db
	}

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ProjectModel{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count projects")
	}

	var projectMs []model.ProjectModel
	if err := repo.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at DESC").
		Offset(filter.Page.Offset()).
		Limit(filter.Page.Limit).
		Find(&projectMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(projectMs))
	for i := range projectMs {
		projects = append(projects, toProjectDomain(&projectMs[i]))
	}

	return projects, total, nil
}

func (repo *projectRepository) CountProjectsByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count projects")
	}

	return count, nil
}

func (repo *projectRepository) UpdateProject(ctx context.Context, id uuid.UUID, patch *entity.ProjectPatch) (*entity.Project, error) {
	updates := projectPatchColumns(patch)
	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).Model(&model.ProjectModel{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError("update project", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrProjectNotFound
		}
	}

	return repo.FindProjectByID(ctx, id)
}

func (repo *projectRepository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProjectModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError("delete project", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}
