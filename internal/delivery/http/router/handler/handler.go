// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"saaskit/internal/delivery/http/middleware"
	"saaskit/internal/delivery/http/response"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PageQuery is the pagination query shared by the listings.
type PageQuery struct {
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Search string `query:"search" validate:"max=200"`
}

// bindRequest binds the request into req and runs its validate tags.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidRequest, err.Error())
	}

	return errors.WithStack(c.Validate(req))
}

// currentUserID returns the caller set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.Wrap(domainerrors.ErrUnauthorized, "user id missing from context")
	}

	return userID, nil
}

// pathID parses the :id path parameter. Malformed ids answer not found.
func pathID(c echo.Context, notFound *domainerrors.BaseError) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(notFound, "malformed id")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
