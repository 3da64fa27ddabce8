package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Plan is the billing tier of a subscription.
type Plan string

const (
	PlanFree Plan = "FREE"
	PlanPro  Plan = "PRO"
)

// IsValid checks if the Plan is a valid value.
func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanPro:
		return true
	default:
		return false
	}
}

// IsPaid reports whether the plan is sold through the billing provider.
func (p Plan) IsPaid() bool {
	switch p {
	case PlanPro:
		return true
	case PlanFree:
		return false
	default:
		return false
	}
}

// ParsePlan converts a case-insensitive string into a Plan.
func ParsePlan(s string) (Plan, bool) {
	plan := Plan(strings.ToUpper(strings.TrimSpace(s)))

	return plan, plan.IsValid()
}

// SubscriptionStatus is the local view of the provider's subscription state.
//
//	INACTIVE -> ACTIVE -> CANCELED -> ACTIVE
//	ACTIVE <-> PAST_DUE
type SubscriptionStatus string

const (
	StatusInactive SubscriptionStatus = "INACTIVE"
	StatusActive   SubscriptionStatus = "ACTIVE"
	StatusCanceled SubscriptionStatus = "CANCELED"
	StatusPastDue  SubscriptionStatus = "PAST_DUE"
)

// IsValid checks if the status is a valid value.
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case StatusInactive, StatusActive, StatusCanceled, StatusPastDue:
		return true
	default:
		return false
	}
}

// Subscription is the one-per-user billing record.
type Subscription struct {
	ID                   uuid.UUID          `json:"id"`
	UserID               uuid.UUID          `json:"userId"`
	Plan                 Plan               `json:"plan"`
	Status               SubscriptionStatus `json:"status"`
	StripeCustomerID     *string            `json:"stripeCustomerId,omitempty"`
	StripeSubscriptionID *string            `json:"stripeSubscriptionId,omitempty"`
	CurrentPeriodStart   *time.Time         `json:"currentPeriodStart,omitempty"`
	CurrentPeriodEnd     *time.Time         `json:"currentPeriodEnd,omitempty"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

// IsActive reports whether the subscription is in good standing.
func (s *Subscription) IsActive() bool {
	return s != nil && s.Status == StatusActive
}

// NewFreeSubscription returns the row every account starts with.
func NewFreeSubscription(userID uuid.UUID) *Subscription {
	return &Subscription{
		ID:     uuid.New(),
		UserID: userID,
		Plan:   PlanFree,
		Status: StatusActive,
	}
}

// SubscriptionPatch lists the subscription columns a reconciliation step may overwrite.
// Nil fields are left untouched.
type SubscriptionPatch struct {
	Plan                 *Plan
	Status               *SubscriptionStatus
	StripeCustomerID     *string
	StripeSubscriptionID *string
	CurrentPeriodStart   *time.Time
	CurrentPeriodEnd     *time.Time
}

// ApplyTo copies the non-nil fields onto sub.
func (p *SubscriptionPatch) ApplyTo(sub *Subscription) {
	if p.Plan != nil {
		sub.Plan = *p.Plan
	}
	if p.Status != nil {
		sub.Status = *p.Status
	}
	if p.StripeCustomerID != nil {
		sub.StripeCustomerID = p.StripeCustomerID
	}
	if p.StripeSubscriptionID != nil {
		sub.StripeSubscriptionID = p.StripeSubscriptionID
	}
	if p.CurrentPeriodStart != nil {
		sub.CurrentPeriodStart = p.CurrentPeriodStart
	}
	if p.CurrentPeriodEnd != nil {
		sub.CurrentPeriodEnd = p.CurrentPeriodEnd
	}
}
