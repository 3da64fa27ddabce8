package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"saaskit/config"
	"saaskit/internal/delivery/http/middleware"
	"saaskit/internal/delivery/http/response"
	"saaskit/internal/delivery/http/router"
	"saaskit/internal/delivery/http/router/handler"
	"saaskit/internal/domain/entity"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/domain/repository"
	"saaskit/internal/domain/service"
	mockRepo "saaskit/internal/mocks/repository"
	mockUC "saaskit/internal/mocks/usecase"
	"saaskit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	echo     *echo.Echo
	auth     *mockUC.MockAuthUsecase
	users    *mockUC.MockUserUsecase
	projects *mockUC.MockProjectUsecase
	subs     *mockUC.MockSubscriptionUsecase
	tokens   *mockUC.MockTokenManager
	userRepo *mockRepo.MockUserRepository
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Stripe = &config.StripeConfig{MaxWebhookBodySize: "1MB"}
	cfg.CORS.AllowOrigins = []string{"http://localhost:3000"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &apiFixture{
		auth:     mockUC.NewMockAuthUsecase(t),
		users:    mockUC.NewMockUserUsecase(t),
		projects: mockUC.NewMockProjectUsecase(t),
		subs:     mockUC.NewMockSubscriptionUsecase(t),
		tokens:   mockUC.NewMockTokenManager(t),
		userRepo: mockRepo.NewMockUserRepository(t),
	}

	f.echo = NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		Config:              cfg,
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.auth, Logger: logger}),
		UserHandler:         handler.NewUserHandler(handler.UserHandlerParams{UserUC: f.users, Logger: logger}),
		ProjectHandler:      handler.NewProjectHandler(handler.ProjectHandlerParams{ProjectUC: f.projects, Logger: logger}),
		SubscriptionHandler: handler.NewSubscriptionHandler(handler.SubscriptionHandlerParams{SubscriptionUC: f.subs, Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(f.tokens, f.userRepo, logger),
	}).RegisterRoutes(f.echo)

	return f
}

// signIn makes "Bearer <token>" resolve to user.
func (f *apiFixture) signIn(token string, user *entity.User) {
	f.tokens.EXPECT().VerifyAccessToken(token).
		Return(&service.Identity{UserID: user.ID, Email: user.Email, Role: user.Role}, nil)
	f.userRepo.EXPECT().FindUserByID(mock.Anything, user.ID).Return(user, nil)
}

func (f *apiFixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())

	return envelope
}

func assertErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) response.Response {
	t.Helper()

	assert.Equal(t, status, rec.Code, rec.Body.String())
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.NotEmpty(t, envelope.Message)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, code, envelope.Error.Code)

	return envelope
}

func newUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Email:    "jane@example.com",
		Role:     role,
		IsActive: true,
		Subscription: &entity.Subscription{
			Plan:   entity.PlanFree,
			Status: entity.StatusActive,
		},
	}
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newAPIFixture(t)
		user := newUser(entity.RoleUser)

		f.auth.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Email:     "jane@example.com",
			Password:  "correct horse",
			FirstName: "Jane",
		}).Return(&usecase.AuthOutput{
			User:      user,
			TokenPair: usecase.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
		}, nil)

		rec := f.do(http.MethodPost, "/api/v1/auth/register",
			`{"email":"jane@example.com","password":"correct horse","firstName":"Jane"}`, "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		var body struct {
			Success bool `json:"success"`
			Data    struct {
				User         entity.User `json:"user"`
				AccessToken  string      `json:"accessToken"`
				RefreshToken string      `json:"refreshToken"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, user.ID, body.Data.User.ID)
		assert.Equal(t, "access", body.Data.AccessToken)
		assert.Equal(t, "refresh", body.Data.RefreshToken)
		assert.NotContains(t, rec.Body.String(), "passwordHash")
	})

	t.Run("invalid email is a validation error", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/auth/register", `{"email":"nope","password":"x"}`, "")

		envelope := assertErrorEnvelope(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, envelope.Error.Details, "email")
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/auth/register", `{"email":`, "")

		assertErrorEnvelope(t, rec, http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("email taken", func(t *testing.T) {
		f := newAPIFixture(t)

		f.auth.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email registered"))

		rec := f.do(http.MethodPost, "/api/v1/auth/register", `{"email":"jane@example.com","password":"correct horse"}`, "")

		assertErrorEnvelope(t, rec, http.StatusBadRequest, "USER_ALREADY_EXISTS")
	})
}

func TestLoginFailureIsUnauthorized(t *testing.T) {
	f := newAPIFixture(t)

	f.auth.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "jane@example.com", Password: "wrong"}).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"))

	rec := f.do(http.MethodPost, "/api/v1/auth/login", `{"email":"jane@example.com","password":"wrong"}`, "")

	assertErrorEnvelope(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
}

func TestRefresh(t *testing.T) {
	f := newAPIFixture(t)

	f.auth.EXPECT().Refresh(mock.Anything, "old").Return(&usecase.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

	rec := f.do(http.MethodPost, "/api/v1/auth/refresh", `{"refreshToken":"old"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"refreshToken":"r2"`)
}

func TestPasswordResetRoutes(t *testing.T) {
	t.Run("forgot password always succeeds", func(t *testing.T) {
		f := newAPIFixture(t)

		f.auth.EXPECT().ForgotPassword(mock.Anything, "ghost@example.com").Return(nil)

		rec := f.do(http.MethodPost, "/api/v1/auth/forgot-password", `{"email":"ghost@example.com"}`, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeEnvelope(t, rec).Success)
	})

	t.Run("mail failure hides details", func(t *testing.T) {
		f := newAPIFixture(t)

		f.auth.EXPECT().ForgotPassword(mock.Anything, "jane@example.com").
			Return(errors.Wrap(domainerrors.ErrMailSendFailed, "smtp: connection refused"))

		rec := f.do(http.MethodPost, "/api/v1/auth/forgot-password", `{"email":"jane@example.com"}`, "")

		envelope := assertErrorEnvelope(t, rec, http.StatusInternalServerError, "MAIL_SEND_FAILED")
		assert.Empty(t, envelope.Error.Details)
		assert.NotContains(t, rec.Body.String(), "smtp")
	})

	t.Run("token comes from the path", func(t *testing.T) {
		f := newAPIFixture(t)

		f.auth.EXPECT().ResetPassword(mock.Anything, &usecase.ResetPasswordInput{Token: "abc123", Password: "new password"}).
			Return(errors.Wrap(domainerrors.ErrResetTokenInvalid, "used"))

		rec := f.do(http.MethodPost, "/api/v1/auth/reset-password/abc123", `{"password":"new password"}`, "")

		assertErrorEnvelope(t, rec, http.StatusBadRequest, "RESET_TOKEN_INVALID")
	})
}

func TestAuthentication(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/auth/me", "", "")

		assertErrorEnvelope(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	t.Run("expired token", func(t *testing.T) {
		f := newAPIFixture(t)

		f.tokens.EXPECT().VerifyAccessToken("stale").Return(nil, errors.Wrap(domainerrors.ErrExpiredToken, "expired"))

		rec := f.do(http.MethodGet, "/api/v1/auth/me", "", "stale")

		assertErrorEnvelope(t, rec, http.StatusUnauthorized, "EXPIRED_TOKEN")
	})

	t.Run("deleted user", func(t *testing.T) {
		f := newAPIFixture(t)
		userID := uuid.New()

		f.tokens.EXPECT().VerifyAccessToken("tok").Return(&service.Identity{UserID: userID, Role: entity.RoleUser}, nil)
		f.userRepo.EXPECT().FindUserByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

		rec := f.do(http.MethodGet, "/api/v1/auth/me", "", "tok")

		assertErrorEnvelope(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	t.Run("disabled user", func(t *testing.T) {
		f := newAPIFixture(t)
		user := newUser(entity.RoleUser)
		user.IsActive = false
		f.signIn("tok", user)

		rec := f.do(http.MethodGet, "/api/v1/auth/me", "", "tok")

		assertErrorEnvelope(t, rec, http.StatusUnauthorized, "ACCOUNT_DISABLED")
	})

	t.Run("me", func(t *testing.T) {
		f := newAPIFixture(t)
		user := newUser(entity.RoleUser)
		f.signIn("tok", user)
		f.auth.EXPECT().Me(mock.Anything, user.ID).Return(user, nil)

		rec := f.do(http.MethodGet, "/api/v1/auth/me", "", "tok")

		assert.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Data struct {
				User entity.User `json:"user"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, entity.RoleUser, body.Data.User.Role)
		require.NotNil(t, body.Data.User.Subscription)
		assert.Equal(t, entity.PlanFree, body.Data.User.Subscription.Plan)
		assert.Equal(t, entity.StatusActive, body.Data.User.Subscription.Status)
	})

	t.Run("logout revokes for the caller", func(t *testing.T) {
		f := newAPIFixture(t)
		user := newUser(entity.RoleUser)
		f.signIn("tok", user)
		f.auth.EXPECT().Logout(mock.Anything, user.ID).Return(nil)

		rec := f.do(http.MethodPost, "/api/v1/auth/logout", "", "tok")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminRoutes(t *testing.T) {
	t.Run("regular users are forbidden", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn("tok", newUser(entity.RoleUser))

		rec := f.do(http.MethodGet, "/api/v1/users", "", "tok")

		assertErrorEnvelope(t, rec, http.StatusForbidden, "ADMIN_REQUIRED")
	})

	t.Run("list users", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn("tok", newUser(entity.RoleAdmin))
		f.users.EXPECT().ListUsers(mock.Anything, &usecase.ListUsersInput{Page: 2, Limit: 5, Search: "jan"}).
			Return(&usecase.UserList{Users: []*entity.User{}, Pagination: usecase.Pagination{Page: 2, Limit: 5}}, nil)

		rec := f.do(http.MethodGet, "/api/v1/users?page=2&limit=5&search=jan", "", "tok")

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("limit out of range", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn("tok", newUser(entity.RoleAdmin))

		rec := f.do(http.MethodGet, "/api/v1/users?limit=1000", "", "tok")

		assertErrorEnvelope(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("admin cannot delete self", func(t *testing.T) {
		f := newAPIFixture(t)
		admin := newUser(entity.RoleAdmin)
		f.signIn("tok", admin)
		f.users.EXPECT().DeleteUser(mock.Anything, admin.ID, admin.ID).
			Return(errors.WithStack(domainerrors.ErrCannotDeleteSelf))

		rec := f.do(http.MethodDelete, "/api/v1/users/"+admin.ID.String(), "", "tok")

		assertErrorEnvelope(t, rec, http.StatusBadRequest, "CANNOT_DELETE_SELF")
	})

	t.Run("role is parsed case-insensitively", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn("tok", newUser(entity.RoleAdmin))
		target := newUser(entity.RoleUser)
		f.users.EXPECT().UpdateUser(mock.Anything, target.ID, mock.MatchedBy(func(input *usecase.AdminUpdateUserInput) bool {
			return input.Role != nil && *input.Role == entity.RoleAdmin && input.IsActive == nil
		})).Return(target, nil)

		rec := f.do(http.MethodPut, "/api/v1/users/"+target.ID.String(), `{"role":"admin"}`, "tok")

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn("tok", newUser(entity.RoleAdmin))

		rec := f.do(http.MethodGet, "/api/v1/users/not-a-uuid", "", "tok")

		assertErrorEnvelope(t, rec, http.StatusNotFound, "USER_NOT_FOUND")
	})
}

func TestProjectRoutes(t *testing.T) {
	t.Run("create over the plan limit", func(t *testing.T) {
		f := newAPIFixture(t)
		user := newUser(entity.RoleUser)
		f.signIn("tok", user)
		f.projects.EXPECT().CreateProject(mock.Anything, user.ID, &usecase.CreateProjectInput{Name: "Fourth"}).
			Return(nil, errors.WithStack(domainerrors.ErrPlanLimitReached.WithDetails("limit 3")))

		rec := f.do(http.MethodPost, "/api/v1/projects", `{"name":"Fourth"}`, "tok")

		envelope := assertErrorEnvelope(t, rec, http.StatusForbidden, "PLAN_LIMIT_REACHED")
		assert.Equal(t, "limit 3", envelope.Error.Details)
	})

	t.Run("create", func(t *testing.T) {
		f := newAPIFixture(t)
		user := newUser(entity.RoleUser)
		f.signIn("tok", user)
		project := &entity.Project{ID: uuid.New(), UserID: user.ID, Name: "First", IsActive: true}
		f.projects.EXPECT().CreateProject(mock.Anything, user.ID, mock.Anything).Return(project, nil)

		rec := f.do(http.MethodPost, "/api/v1/projects", `{"name":"First"}`, "tok")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), project.ID.String())
	})

	t.Run("all is admin only and not an id", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn("tok", newUser(entity.RoleAdmin))
		ownerID := uuid.New()
		f.projects.EXPECT().ListAllProjects(mock.Anything, mock.MatchedBy(func(input *usecase.ListProjectsInput) bool {
			return input.UserID != nil && *input.UserID == ownerID
		})).Return(&usecase.ProjectList{Projects: []*entity.Project{}}, nil)

		rec := f.do(http.MethodGet, "/api/v1/projects/all?userId="+ownerID.String(), "", "tok")

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("foreign project is not found", func(t *testing.T) {
		f := newAPIFixture(t)
		user := newUser(entity.RoleUser)
		f.signIn("tok", user)
		projectID := uuid.New()
		f.projects.EXPECT().GetProject(mock.Anything, user.ID, projectID).
			Return(nil, errors.WithStack(domainerrors.ErrProjectNotFound))

		rec := f.do(http.MethodGet, "/api/v1/projects/"+projectID.String(), "", "tok")

		assertErrorEnvelope(t, rec, http.StatusNotFound, "PROJECT_NOT_FOUND")
	})
}

func TestSubscriptionRoutes(t *testing.T) {
	t.Run("checkout", func(t *testing.T) {
		f := newAPIFixture(t)
		user := newUser(entity.RoleUser)
		f.signIn("tok", user)
		f.subs.EXPECT().CreateCheckout(mock.Anything, user.ID, entity.PlanPro).
			Return(&service.CheckoutSession{ID: "cs_1", URL: "https://checkout.example/cs_1"}, nil)

		rec := f.do(http.MethodPost, "/api/v1/subscriptions/create", `{"plan":"pro"}`, "tok")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"sessionId":"cs_1"`)
	})

	t.Run("unknown plan", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn("tok", newUser(entity.RoleUser))

		rec := f.do(http.MethodPost, "/api/v1/subscriptions/create", `{"plan":"gold"}`, "tok")

		assertErrorEnvelope(t, rec, http.StatusBadRequest, "INVALID_PLAN")
	})

	t.Run("cancel without subscription", func(t *testing.T) {
		f := newAPIFixture(t)
		user := newUser(entity.RoleUser)
		f.signIn("tok", user)
		f.subs.EXPECT().Cancel(mock.Anything, user.ID).Return(errors.WithStack(domainerrors.ErrSubscriptionNotFound))

		rec := f.do(http.MethodPost, "/api/v1/subscriptions/cancel", "", "tok")

		assertErrorEnvelope(t, rec, http.StatusNotFound, "SUBSCRIPTION_NOT_FOUND")
	})

	t.Run("webhook receives the raw body without a bearer", func(t *testing.T) {
		f := newAPIFixture(t)
		payload := `{"id":"evt_1","type":"invoice.payment_failed"}`
		f.subs.EXPECT().HandleWebhook(mock.Anything, []byte(payload), "t=1,v1=abc").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/subscriptions/webhook", strings.NewReader(payload))
		req.Header.Set(handler.HeaderStripeSignature, "t=1,v1=abc")
		rec := httptest.NewRecorder()
		f.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"received":true}`, rec.Body.String())
	})

	t.Run("webhook with a bad signature", func(t *testing.T) {
		f := newAPIFixture(t)
		f.subs.EXPECT().HandleWebhook(mock.Anything, mock.Anything, "").
			Return(errors.Wrap(domainerrors.ErrWebhookSignature, "no signature"))

		rec := f.do(http.MethodPost, "/api/v1/subscriptions/webhook", `{}`, "")

		assertErrorEnvelope(t, rec, http.StatusBadRequest, "WEBHOOK_SIGNATURE_INVALID")
	})
}

func TestBodyLimits(t *testing.T) {
	large := `{"pad":"` + strings.Repeat("x", 200*1024) + `"}`

	t.Run("webhook accepts payloads above the API limit", func(t *testing.T) {
		f := newAPIFixture(t)
		f.subs.EXPECT().HandleWebhook(mock.Anything, []byte(large), "t=1,v1=abc").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/subscriptions/webhook", strings.NewReader(large))
		req.Header.Set(handler.HeaderStripeSignature, "t=1,v1=abc")
		rec := httptest.NewRecorder()
		f.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("webhook still has a ceiling", func(t *testing.T) {
		f := newAPIFixture(t)
		huge := strings.Repeat("x", 2*1024*1024)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/subscriptions/webhook", strings.NewReader(huge))
		rec := httptest.NewRecorder()
		f.echo.ServeHTTP(rec, req)

		assertErrorEnvelope(t, rec, http.StatusRequestEntityTooLarge, "HTTP_ERROR")
	})

	t.Run("API routes keep the global limit", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/auth/login", large, "")

		assertErrorEnvelope(t, rec, http.StatusRequestEntityTooLarge, "HTTP_ERROR")
	})
}

func TestUnexpectedErrorsAreOpaque(t *testing.T) {
	f := newAPIFixture(t)
	user := newUser(entity.RoleUser)
	f.signIn("tok", user)
	f.subs.EXPECT().Status(mock.Anything, user.ID).Return(nil, errors.New("pq: connection reset by peer"))

	rec := f.do(http.MethodGet, "/api/v1/subscriptions/status", "", "tok")

	envelope := assertErrorEnvelope(t, rec, http.StatusInternalServerError, "INTERNAL_ERROR")
	assert.Empty(t, envelope.Error.Details)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestUnknownRoute(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/nope", "", "")

	assertErrorEnvelope(t, rec, http.StatusNotFound, "HTTP_ERROR")
}
