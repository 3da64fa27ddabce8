package postgres

import (
	"context"
	"time"

	"saaskit/internal/domain/entity"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/domain/repository"
	"saaskit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository is the constructor for passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (repo *passwordResetRepository) CreateResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	tokenM := &model.PasswordResetTokenModel{
		ID:        token.ID,
		Token:     token.Token,
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt,
		Used:      token.Used,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError("create password reset token", err)
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

func (repo *passwordResetRepository) FindResetToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	var tokenM model.PasswordResetTokenModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("token = ?", token).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset token")
	}

	return toResetTokenDomain(&tokenM), nil
}

func (repo *passwordResetRepository) DeleteResetTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.PasswordResetTokenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError("delete password reset tokens", err)
	}

	return nil
}

// MarkResetTokenUsed is a conditional update, so two concurrent redemptions
// of the same token cannot both succeed.
func (repo *passwordResetRepository) MarkResetTokenUsed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PasswordResetTokenModel{}).
		Where("id = ? AND used = ?", id, false).
		Update("used", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError("mark password reset token used", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetTokenAlreadyUsed
	}

	return nil
}

func (repo *passwordResetRepository) DeleteStaleResetTokens(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("used = ? OR expires_at <= ?", true, now).
		Delete(&model.PasswordResetTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError("delete stale password reset tokens", result.Error)
	}

	return result.RowsAffected, nil
}
