package auth

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/orgable/orgable/pkg/domain"
)

// Email validation regex (stricter than RFC 5322 for practical use)
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

const maxEmailLength = 254 // RFC 5321

// ValidateEmail validates an email address for format and length.
func ValidateEmail(email string) error {
	if email == "" {
		return domain.ErrMissingField
	}
	if len(email) > maxEmailLength {
		return domain.ErrInvalidEmail
	}

	normalized := NormalizeEmail(email)

	addr, err := mail.ParseAddress(normalized)
	if err != nil {
		return domain.ErrInvalidEmail
	}
	if !emailRegex.MatchString(addr.Address) {
		return domain.ErrInvalidEmail
	}
	return nil
}

// NormalizeEmail normalizes an email address by lowercasing and trimming.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
