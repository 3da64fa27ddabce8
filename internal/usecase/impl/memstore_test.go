package impl

import (
	"context"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	"saaskit/internal/domain/entity"
	"saaskit/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// memStore is an in-memory stand-in for every repository. Execute snapshots
// the maps and restores them when the callback fails.
type memStore struct {
	mu            sync.Mutex
	users         map[uuid.UUID]*entity.User
	refreshTokens map[uuid.UUID]*entity.RefreshToken
	resetTokens   map[uuid.UUID]*entity.PasswordResetToken
	subs          map[uuid.UUID]*entity.Subscription // keyed by user id
	projects      map[uuid.UUID]*entity.Project
}

func newMemStore() *memStore {
	return &memStore{
		users:         map[uuid.UUID]*entity.User{},
		refreshTokens: map[uuid.UUID]*entity.RefreshToken{},
		resetTokens:   map[uuid.UUID]*entity.PasswordResetToken{},
		subs:          map[uuid.UUID]*entity.Subscription{},
		projects:      map[uuid.UUID]*entity.Project{},
	}
}

var (
	_ repository.UserRepository          = (*memStore)(nil)
	_ repository.RefreshTokenRepository  = (*memStore)(nil)
	_ repository.PasswordResetRepository = (*memStore)(nil)
	_ repository.SubscriptionRepository  = (*memStore)(nil)
	_ repository.ProjectRepository       = (*memStore)(nil)
	_ repository.TransactionManager      = (*memStore)(nil)
	_ repository.RepositoryFactory       = (*memStore)(nil)
)

// --- transactions ---

func (s *memStore) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	users, refresh, reset := maps.Clone(s.users), maps.Clone(s.refreshTokens), maps.Clone(s.resetTokens)
	subs, projects := maps.Clone(s.subs), maps.Clone(s.projects)
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.users, s.refreshTokens, s.resetTokens, s.subs, s.projects = users, refresh, reset, subs, projects
		s.mu.Unlock()

		return err
	}

	return nil
}

func (s *memStore) NewUserRepository() repository.UserRepository                   { return s }
func (s *memStore) NewRefreshTokenRepository() repository.RefreshTokenRepository   { return s }
func (s *memStore) NewPasswordResetRepository() repository.PasswordResetRepository { return s }
func (s *memStore) NewSubscriptionRepository() repository.SubscriptionRepository   { return s }
func (s *memStore) NewProjectRepository() repository.ProjectRepository             { return s }

// --- users ---

func (s *memStore) CreateUser(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return repository.ErrUserAlreadyExists
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	stored.Subscription = nil
	s.users[user.ID] = &stored

	return nil
}

func (s *memStore) userCopy(user *entity.User) *entity.User {
	cp := *user
	if sub, ok := s.subs[user.ID]; ok {
		subCp := *sub
		cp.Subscription = &subCp
	}

	return &cp
}

func (s *memStore) FindUserByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return s.userCopy(user), nil
}

func (s *memStore) FindUserByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, user := range s.users {
		if user.Email == email {
			return s.userCopy(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (s *memStore) ListUsers(_ context.Context, filter repository.UserListFilter) ([]*entity.User, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(filter.Search)
	var matched []*entity.User
	for _, user := range s.users {
		text := strings.ToLower(user.Email + " " + user.FirstName + " " + user.LastName)
		if search == "" || strings.Contains(text, search) {
			matched = append(matched, s.userCopy(user))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	return paginate(matched, filter.Page), int64(len(matched)), nil
}

func (s *memStore) UpdateUser(_ context.Context, id uuid.UUID, patch *entity.UserPatch) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	cp := *user
	if patch.FirstName != nil {
		cp.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		cp.LastName = *patch.LastName
	}
	if patch.Role != nil {
		cp.Role = *patch.Role
	}
	if patch.IsActive != nil {
		cp.IsActive = *patch.IsActive
	}
	if patch.PasswordHash != nil {
		cp.PasswordHash = *patch.PasswordHash
	}
	cp.UpdatedAt = time.Now()
	s.users[id] = &cp

	return s.userCopy(&cp), nil
}

func (s *memStore) DeleteUser(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return repository.ErrUserNotFound
	}

	delete(s.users, id)
	delete(s.subs, id)
	for tokenID, token := range s.refreshTokens {
		if token.UserID == id {
			delete(s.refreshTokens, tokenID)
		}
	}
	for tokenID, token := range s.resetTokens {
		if token.UserID == id {
			delete(s.resetTokens, tokenID)
		}
	}
	for projectID, project := range s.projects {
		if project.UserID == id {
			delete(s.projects, projectID)
		}
	}

	return nil
}

// --- refresh tokens ---

func (s *memStore) CreateRefreshToken(_ context.Context, token *entity.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[token.UserID]; !ok {
		return repository.ErrUserNotFound
	}

	token.CreatedAt = time.Now()
	cp := *token
	s.refreshTokens[token.ID] = &cp

	return nil
}

func (s *memStore) FindRefreshTokenByID(_ context.Context, id uuid.UUID) (*entity.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.refreshTokens[id]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}
	cp := *token

	return &cp, nil
}

func (s *memStore) DeleteRefreshToken(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.refreshTokens[id]; !ok {
		return repository.ErrRefreshTokenNotFound
	}
	delete(s.refreshTokens, id)

	return nil
}

func (s *memStore) DeleteRefreshTokensByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, token := range s.refreshTokens {
		if token.UserID == userID {
			delete(s.refreshTokens, id)
			n++
		}
	}

	return n, nil
}

func (s *memStore) DeleteExpiredRefreshTokens(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, token := range s.refreshTokens {
		if token.IsExpired(now) {
			delete(s.refreshTokens, id)
			n++
		}
	}

	return n, nil
}

func (s *memStore) refreshTokenCount(userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, token := range s.refreshTokens {
		if token.UserID == userID {
			n++
		}
	}

	return n
}

// --- password reset tokens ---

func (s *memStore) CreateResetToken(_ context.Context, token *entity.PasswordResetToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token.ID = uuid.New()
	token.CreatedAt = time.Now()
	cp := *token
	s.resetTokens[token.ID] = &cp

	return nil
}

func (s *memStore) FindResetToken(_ context.Context, token string) (*entity.PasswordResetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.resetTokens {
		if t.Token == token {
			cp := *t

			return &cp, nil
		}
	}

	return nil, repository.ErrResetTokenNotFound
}

func (s *memStore) DeleteResetTokensByUserID(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.resetTokens {
		if t.UserID == userID {
			delete(s.resetTokens, id)
		}
	}

	return nil
}

func (s *memStore) MarkResetTokenUsed(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.resetTokens[id]
	if !ok || t.Used {
		return repository.ErrResetTokenAlreadyUsed
	}
	cp := *t
	cp.Used = true
	s.resetTokens[id] = &cp

	return nil
}

func (s *memStore) DeleteStaleResetTokens(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, t := range s.resetTokens {
		if !t.IsActionable(now) {
			delete(s.resetTokens, id)
			n++
		}
	}

	return n, nil
}

// --- subscriptions ---

func (s *memStore) CreateSubscription(_ context.Context, sub *entity.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[sub.UserID]; !ok {
		return repository.ErrUserNotFound
	}
	if _, ok := s.subs[sub.UserID]; ok {
		return repository.ErrSubscriptionNotFound
	}
	cp := *sub
	s.subs[sub.UserID] = &cp

	return nil
}

func (s *memStore) UpsertSubscription(_ context.Context, sub *entity.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[sub.UserID]; !ok {
		return repository.ErrUserNotFound
	}
	if sub.StripeCustomerID != nil {
		for userID, other := range s.subs {
			if userID != sub.UserID && other.StripeCustomerID != nil && *other.StripeCustomerID == *sub.StripeCustomerID {
				return errors.New("duplicate key value violates unique constraint on stripe_customer_id")
			}
		}
	}

	existing, ok := s.subs[sub.UserID]
	if !ok {
		cp := *sub
		s.subs[sub.UserID] = &cp

		return nil
	}

	cp := *existing
	cp.Plan = sub.Plan
	cp.Status = sub.Status
	cp.StripeCustomerID = sub.StripeCustomerID
	s.subs[sub.UserID] = &cp

	return nil
}

func (s *memStore) FindSubscriptionByUserID(_ context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subs[userID]
	if !ok {
		return nil, repository.ErrSubscriptionNotFound
	}
	cp := *sub

	return &cp, nil
}

func (s *memStore) FindSubscriptionByCustomerID(_ context.Context, customerID string) (*entity.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.subs {
		if sub.StripeCustomerID != nil && *sub.StripeCustomerID == customerID {
			cp := *sub

			return &cp, nil
		}
	}

	return nil, repository.ErrSubscriptionNotFound
}

func (s *memStore) FindSubscriptionsByProviderID(_ context.Context, providerSubscriptionID string) ([]*entity.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subs []*entity.Subscription
	for _, sub := range s.subs {
		if sub.StripeSubscriptionID != nil && *sub.StripeSubscriptionID == providerSubscriptionID {
			cp := *sub
			subs = append(subs, &cp)
		}
	}

	return subs, nil
}

func (s *memStore) UpdateSubscriptionByUserID(_ context.Context, userID uuid.UUID, patch *entity.SubscriptionPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subs[userID]
	if !ok {
		return repository.ErrSubscriptionNotFound
	}
	cp := *sub
	patch.ApplyTo(&cp)
	s.subs[userID] = &cp

	return nil
}

func (s *memStore) UpdateSubscriptionsByProviderID(_ context.Context, providerSubscriptionID string, patch *entity.SubscriptionPatch) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for userID, sub := range s.subs {
		if sub.StripeSubscriptionID != nil && *sub.StripeSubscriptionID == providerSubscriptionID {
			cp := *sub
			patch.ApplyTo(&cp)
			s.subs[userID] = &cp
			n++
		}
	}

	return n, nil
}

func (s *memStore) subscriptionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.subs)
}

// --- projects ---

func (s *memStore) CreateProject(_ context.Context, project *entity.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[project.UserID]; !ok {
		return repository.ErrUserNotFound
	}

	project.ID = uuid.New()
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt
	cp := *project
	s.projects[project.ID] = &cp

	return nil
}

func (s *memStore) FindProjectByID(_ context.Context, id uuid.UUID) (*entity.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}
	cp := *project

	return &cp, nil
}

func (s *memStore) ListProjects(_ context.Context, filter repository.ProjectListFilter) ([]*entity.Project, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(filter.Search)
	var matched []*entity.Project
	for _, project := range s.projects {
		if filter.UserID != nil && project.UserID != *filter.UserID {
			continue
		}
		text := strings.ToLower(project.Name + " " + project.Description)
		if search != "" && !strings.Contains(text, search) {
			continue
		}
		cp := *project
		matched = append(matched, &cp)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	return paginate(matched, filter.Page), int64(len(matched)), nil
}

func (s *memStore) CountProjectsByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, project := range s.projects {
		if project.UserID == userID {
			n++
		}
	}

	return n, nil
}

func (s *memStore) UpdateProject(_ context.Context, id uuid.UUID, patch *entity.ProjectPatch) (*entity.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}
	cp := *project
	if patch.Name != nil {
		cp.Name = *patch.Name
	}
	if patch.Description != nil {
		cp.Description = *patch.Description
	}
	if patch.IsActive != nil {
		cp.IsActive = *patch.IsActive
	}
	s.projects[id] = &cp
	out := cp

	return &out, nil
}

func (s *memStore) DeleteProject(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return repository.ErrProjectNotFound
	}
	delete(s.projects, id)

	return nil
}

func paginate[T any](items []T, page entity.Page) []T {
	start := page.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := min(start+page.Limit, len(items))

	return items[start:end]
}
