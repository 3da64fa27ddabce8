package postgres

import (
	"saaskit/internal/domain/entity"
	"saaskit/internal/infra/persistence/model"
)

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    derefString(m.FirstName),
		LastName:     derefString(m.LastName),
		Role:         entity.Role(m.Role),
		IsActive:     m.IsActive,
		Subscription: toSubscriptionDomain(m.Subscription),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    optionalString(u.FirstName),
		LastName:     optionalString(u.LastName),
		Role:         string(u.Role),
		IsActive:     u.IsActive,
	}
}

func userPatchColumns(p *entity.UserPatch) map[string]any {
	updates := make(map[string]any)
	if p.FirstName != nil {
		updates["first_name"] = optionalString(*p.FirstName)
	}
	if p.LastName != nil {
		updates["last_name"] = optionalString(*p.LastName)
	}
	if p.Role != nil {
		updates["role"] = string(*p.Role)
	}
	if p.IsActive != nil {
		updates["is_active"] = *p.IsActive
	}
	if p.PasswordHash != nil {
		updates["password_hash"] = *p.PasswordHash
	}

	return updates
}

func toRefreshTokenDomain(m *model.RefreshTokenModel) *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        m.ID,
		UserID:    m.UserID,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

func toResetTokenDomain(m *model.PasswordResetTokenModel) *entity.PasswordResetToken {
	return &entity.PasswordResetToken{
		ID:        m.ID,
		Token:     m.Token,
		UserID:    m.UserID,
		ExpiresAt: m.ExpiresAt,
		Used:      m.Used,
		CreatedAt: m.CreatedAt,
	}
}

func toSubscriptionDomain(m *model.SubscriptionModel) *entity.Subscription {
	if m == nil {
		return nil
	}

	return &entity.Subscription{
		ID:                   m.ID,
		UserID:               m.UserID,
		Plan:                 entity.Plan(m.Plan),
		Status:               entity.SubscriptionStatus(m.Status),
		StripeCustomerID:     m.StripeCustomerID,
		StripeSubscriptionID: m.StripeSubscriptionID,
		CurrentPeriodStart:   m.CurrentPeriodStart,
		CurrentPeriodEnd:     m.CurrentPeriodEnd,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func fromSubscriptionDomain(s *entity.Subscription) *model.SubscriptionModel {
	return &model.SubscriptionModel{
		ID:                   s.ID,
		UserID:               s.UserID,
		Plan:                 string(s.Plan),
		Status:               string(s.Status),
		StripeCustomerID:     s.StripeCustomerID,
		StripeSubscriptionID: s.StripeSubscriptionID,
		CurrentPeriodStart:   s.CurrentPeriodStart,
		CurrentPeriodEnd:     s.CurrentPeriodEnd,
	}
}

func subscriptionPatchColumns(p *entity.SubscriptionPatch) map[string]any {
	updates := make(map[string]any)
	if p.Plan != nil {
		updates["plan"] = string(*p.Plan)
	}
	if p.Status != nil {
		updates["status"] = string(*p.Status)
	}
	if p.StripeCustomerID != nil {
		updates["stripe_customer_id"] = *p.StripeCustomerID
	}
	if p.StripeSubscriptionID != nil {
		updates["stripe_subscription_id"] = *p.StripeSubscriptionID
	}
	if p.CurrentPeriodStart != nil {
		updates["current_period_start"] = *p.CurrentPeriodStart
	}
	if p.CurrentPeriodEnd != nil {
		updates["current_period_end"] = *p.CurrentPeriodEnd
	}

	return updates
}

func toProjectDomain(m *model.ProjectModel) *entity.Project {
	return &entity.Project{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: derefString(m.Description),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromProjectDomain(p *entity.Project) *model.ProjectModel {
	return &model.ProjectModel{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: optionalString(p.Description),
		IsActive:    p.IsActive,
	}
}

func projectPatchColumns(p *entity.ProjectPatch) map[string]any {
	updates := make(map[string]any)
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Description != nil {
		updates["description"] = optionalString(*p.Description)
	}
	if p.IsActive != nil {
		updates["is_active"] = *p.IsActive
	}

	return updates
}
