// Package impl contains the implementation of the application's business logic.
package impl

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"saaskit/config"
	"saaskit/internal/domain/entity"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100

	resetTokenBytes = 32
)

// passwordPolicy enforces the configured length bounds. MaxLength also
// guards bcrypt, which ignores input past 72 bytes.
type passwordPolicy struct {
	minLength int
	maxLength int
}

func newPasswordPolicy(cfg *config.Config) passwordPolicy {
	policy := passwordPolicy{minLength: 8, maxLength: 72}
	if cfg != nil && cfg.PasswordStrength != nil {
		if cfg.PasswordStrength.MinLength > 0 {
			policy.minLength = cfg.PasswordStrength.MinLength
		}
		if cfg.PasswordStrength.MaxLength > 0 {
			policy.maxLength = cfg.PasswordStrength.MaxLength
		}
	}

	return policy
}

func (p passwordPolicy) validate(password string) error {
	if utf8.RuneCountInString(password) < p.minLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("password must be at least %d characters", p.minLength))
	}
	if len(password) > p.maxLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("password must be at most %d bytes", p.maxLength))
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizePage clamps page to >= 1 and limit to [1, maxPageLimit].
func normalizePage(page, limit int) entity.Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return entity.Page{Page: page, Limit: limit}
}

func newPagination(page entity.Page, total int64) usecase.Pagination {
	return usecase.Pagination{
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
		Pages: page.Pages(total),
	}
}

// randomToken returns n random bytes hex-encoded.
func randomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)

	return &v
}
