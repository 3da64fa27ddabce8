// Package errors defines the error taxonomy surfaced at the HTTP boundary.
package errors

import (
	"net/http"

	"saaskit/internal/errors"
)

// Kind groups errors by how the caller is expected to react.
type Kind string

const (
	KindValidation     Kind = "VALIDATION"
	KindAuthentication Kind = "AUTHENTICATION"
	KindAuthorization  Kind = "AUTHORIZATION"
	KindNotFound       Kind = "NOT_FOUND"
	KindConflict       Kind = "CONFLICT"
	KindSignature      Kind = "SIGNATURE"
	KindInternal       Kind = "INTERNAL"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError with the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error category
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code derived from the kind
func (e *BaseError) HTTPCode() int {
	switch e.kind {
	case KindValidation, KindConflict, KindSignature:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed     = NewBaseError(KindValidation, "VALIDATION_FAILED", "Validation failed", "")
	ErrInvalidRequest       = NewBaseError(KindValidation, "INVALID_REQUEST", "Invalid request body", "")
	ErrPasswordStrength     = NewBaseError(KindValidation, "PASSWORD_STRENGTH", "Password does not meet the strength requirements", "")
	ErrInvalidPlan          = NewBaseError(KindValidation, "INVALID_PLAN", "Invalid plan selected", "")
	ErrResetTokenInvalid    = NewBaseError(KindValidation, "RESET_TOKEN_INVALID", "Invalid or expired reset token", "")
	ErrCurrentPasswordWrong = NewBaseError(KindValidation, "CURRENT_PASSWORD_INCORRECT", "Current password is incorrect", "")
	ErrCannotDeleteSelf     = NewBaseError(KindValidation, "CANNOT_DELETE_SELF", "Cannot delete your own account from the admin panel", "")

	// Authentication
	ErrUnauthorized        = NewBaseError(KindAuthentication, "UNAUTHORIZED", "Authentication required", "")
	ErrInvalidCredentials  = NewBaseError(KindAuthentication, "INVALID_CREDENTIALS", "Invalid email or password", "")
	ErrInvalidToken        = NewBaseError(KindAuthentication, "INVALID_TOKEN", "Invalid token", "")
	ErrExpiredToken        = NewBaseError(KindAuthentication, "EXPIRED_TOKEN", "Token expired", "")
	ErrRefreshTokenInvalid = NewBaseError(KindAuthentication, "REFRESH_TOKEN_INVALID", "Invalid or expired refresh token", "")
	ErrAccountDisabled     = NewBaseError(KindAuthentication, "ACCOUNT_DISABLED", "Account is disabled", "")

	// Authorization
	ErrForbidden        = NewBaseError(KindAuthorization, "FORBIDDEN", "Access denied", "")
	ErrAdminRequired    = NewBaseError(KindAuthorization, "ADMIN_REQUIRED", "Admin access required", "")
	ErrPlanLimitReached = NewBaseError(KindAuthorization, "PLAN_LIMIT_REACHED", "Your plan does not allow more projects", "")
	ErrPlanRequired     = NewBaseError(KindAuthorization, "PLAN_REQUIRED", "An active paid plan is required", "")

	// Not found
	ErrNotFound             = NewBaseError(KindNotFound, "NOT_FOUND", "Resource not found", "")
	ErrUserNotFound         = NewBaseError(KindNotFound, "USER_NOT_FOUND", "User not found", "")
	ErrProjectNotFound      = NewBaseError(KindNotFound, "PROJECT_NOT_FOUND", "Project not found", "")
	ErrSubscriptionNotFound = NewBaseError(KindNotFound, "SUBSCRIPTION_NOT_FOUND", "No active subscription found", "")

	// Conflict
	ErrUserAlreadyExists = NewBaseError(KindConflict, "USER_ALREADY_EXISTS", "User with this email already exists", "")
	ErrAlreadySubscribed = NewBaseError(KindConflict, "ALREADY_SUBSCRIBED", "User already has an active subscription", "")

	// Signature
	ErrWebhookSignature = NewBaseError(KindSignature, "WEBHOOK_SIGNATURE_INVALID", "Webhook signature verification failed", "")

	// Internal
	ErrInternalError  = NewBaseError(KindInternal, "INTERNAL_ERROR", "Internal server error", "")
	ErrDatabaseError  = NewBaseError(KindInternal, "DATABASE_ERROR", "Database operation failed", "")
	ErrBillingFailed  = NewBaseError(KindInternal, "BILLING_PROVIDER_ERROR", "Billing provider request failed", "")
	ErrMailSendFailed = NewBaseError(KindInternal, "MAIL_SEND_FAILED", "Failed to send email", "")
)

// DatabaseExecuteError reports a failed query together with its context
type DatabaseExecuteError struct {
	Operation string
	Err       error
}

func (e *DatabaseExecuteError) Error() string {
	return "database " + e.Operation + " failed: " + e.Err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.Err
}

// NewDatabaseExecuteError wraps err as a failed database operation
func NewDatabaseExecuteError(operation string, err error) error {
	return errors.WithStack(&DatabaseExecuteError{Operation: operation, Err: err})
}
