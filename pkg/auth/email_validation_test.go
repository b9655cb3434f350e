package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/orgable/orgable/pkg/domain"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{"valid email", "a@x.com", nil},
		{"valid with subdomain", "user@mail.example.com", nil},
		{"valid with plus", "user+tag@example.com", nil},
		{"uppercase normalized", "User@Example.COM", nil},
		{"empty", "", domain.ErrMissingField},
		{"no at sign", "userexample.com", domain.ErrInvalidEmail},
		{"no domain", "user@", domain.ErrInvalidEmail},
		{"no local part", "@example.com", domain.ErrInvalidEmail},
		{"spaces inside", "us er@example.com", domain.ErrInvalidEmail},
		{"too long", strings.Repeat("a", 250) + "@x.com", domain.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"User@Example.COM", "user@example.com"},
		{"  a@x.com  ", "a@x.com"},
		{"a@x.com", "a@x.com"},
	}
	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
