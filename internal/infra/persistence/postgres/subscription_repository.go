package postgres

import (
	"context"

	"saaskit/internal/domain/entity"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/domain/repository"
	"saaskit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// CreateSubscription persists a new subscription row.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, sub *entity.Subscription) error {
	subM := fromSubscriptionDomain(sub)

	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadySubscribed.WrapMessage("subscription already exists for user")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError("create subscription", err)
	}

	sub.ID = subM.ID
	sub.CreatedAt = subM.CreatedAt
	sub.UpdatedAt = subM.UpdatedAt

	return nil
}

// UpsertSubscription is an INSERT ... ON CONFLICT (user_id) DO UPDATE, so
// replaying it with the same input converges on the same row.
func (repo *subscriptionRepository) UpsertSubscription(ctx context.Context, sub *entity.Subscription) error {
	subM := fromSubscriptionDomain(sub)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"plan", "status", "stripe_customer_id", "updated_at"}),
		}).
		Create(subM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError("upsert subscription", err)
	}

	return nil
}

func (repo *subscriptionRepository) FindSubscriptionByUserID(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *subscriptionRepository) FindSubscriptionByCustomerID(ctx context.Context, customerID string) (*entity.Subscription, error) {
	return repo.findOne(ctx, "stripe_customer_id = ?", customerID)
}

func (repo *subscriptionRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Subscription, error) {
	var subM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).Where(query, args...).First(&subM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return toSubscriptionDomain(&subM), nil
}

func (repo *subscriptionRepository) FindSubscriptionsByProviderID(ctx context.Context, providerSubscriptionID string) ([]*entity.Subscription, error) {
	var subMs []model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("stripe_subscription_id = ?", providerSubscriptionID).
		Find(&subMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by provider id")
	}

	subs := make([]*entity.Subscription, 0, len(subMs))
	for i := range subMs {
		subs = append(subs, toSubscriptionDomain(&subMs[i]))
	}

	return subs, nil
}

func (repo *subscriptionRepository) UpdateSubscriptionByUserID(ctx context.Context, userID uuid.UUID, patch *entity.SubscriptionPatch) error {
	updates := subscriptionPatchColumns(patch)
	if len(updates) == 0 {
		_, err := repo.FindSubscriptionByUserID(ctx, userID)

		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError("update subscription", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

func (repo *subscriptionRepository) UpdateSubscriptionsByProviderID(ctx context.Context, providerSubscriptionID string, patch *entity.SubscriptionPatch) (int64, error) {
	updates := subscriptionPatchColumns(patch)
	if len(updates) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("stripe_subscription_id = ?", providerSubscriptionID).
		Updates(updates)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError("update subscriptions by provider id", result.Error)
	}

	return result.RowsAffected, nil
}
