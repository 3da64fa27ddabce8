package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel mirrors the 'subscriptions' table. user_id is unique: one row per user.
type SubscriptionModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID               uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Plan                 string    `gorm:"type:varchar(20);not null;default:FREE"`
	Status               string    `gorm:"type:varchar(20);not null;default:INACTIVE"`
	StripeCustomerID     *string   `gorm:"type:varchar(255);uniqueIndex"`
	StripeSubscriptionID *string   `gorm:"type:varchar(255);index"`
	CurrentPeriodStart   *time.Time
	CurrentPeriodEnd     *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
