package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project is a resource owned by a single user.
type Project struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectPatch lists the project columns an update may change.
type ProjectPatch struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// Page describes a 1-based page request.
type Page struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages returns the number of pages needed to hold total rows.
func (p Page) Pages(total int64) int {
	if p.Limit <= 0 {
		return 0
	}

	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
