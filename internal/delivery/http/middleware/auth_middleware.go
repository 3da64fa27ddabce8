package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "saaskit/internal/delivery/context"
	"saaskit/internal/domain/entity"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/domain/repository"
	"saaskit/internal/errors"
	"saaskit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Keys under which Authenticate stores the caller in echo.Context.
const (
	ContextKeyUserID       = "userID"
	ContextKeyEmail        = "email"
	ContextKeyRole         = "role"
	ContextKeySubscription = "subscription"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokens   usecase.TokenManager
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens usecase.TokenManager, userRepo repository.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, userRepo: userRepo, logger: logger}
}

// Authenticate validates the bearer access token and loads the account behind it.
// Deleted or disabled accounts are rejected even while their token is unexpired.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrUnauthorized, "authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return errors.Wrap(domainerrors.ErrInvalidToken.WithDetails("must be a Bearer token"), "invalid authorization header")
		}

		identity, err := m.tokens.VerifyAccessToken(strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix)))
		if err != nil {
			return errors.WithStack(err)
		}

		ctx := c.Request().Context()
		user, err := m.userRepo.FindUserByID(ctx, identity.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUnauthorized, "token owner no longer exists")
			}

			return errors.Wrap(err, "failed to load token owner")
		}
		if !user.IsActive {
			return errors.Wrap(domainerrors.ErrAccountDisabled, "token owner is disabled")
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyEmail, user.Email)
		c.Set(ContextKeyRole, user.Role)
		c.Set(ContextKeySubscription, user.Subscription)

		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", user.ID.String()))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}

// RequireRole checks the role stored by Authenticate, so it must run after it.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok {
				return errors.Wrap(domainerrors.ErrUnauthorized, "role information missing")
			}
			if role != requiredRole {
				if requiredRole == entity.RoleAdmin {
					return errors.WithStack(domainerrors.ErrAdminRequired)
				}

				return errors.Wrap(domainerrors.ErrForbidden, "requires role "+requiredRole.String())
			}

			return next(c)
		}
	}
}

// RequirePlan admits callers whose subscription is ACTIVE on plan. PAST_DUE
// and CANCELED rows are refused. Must run after Authenticate.
func (m *AuthMiddleware) RequirePlan(plan entity.Plan) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := GetUserID(c); !ok {
				return errors.Wrap(domainerrors.ErrUnauthorized, "user information missing")
			}

			sub, _ := c.Get(ContextKeySubscription).(*entity.Subscription)
			if sub == nil || sub.Plan != plan || !sub.IsActive() {
				return errors.WithStack(domainerrors.ErrPlanRequired.WithDetails("requires an active " + string(plan) + " plan"))
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRole returns the authenticated user's role.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(ContextKeyRole).(entity.Role)

	return role, ok
}
