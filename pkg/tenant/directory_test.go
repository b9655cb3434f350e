package tenant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/orgable/orgable/pkg/domain"
)

type fakeStore struct {
	tenants map[string]*domain.Tenant
	err     error
}

func (s *fakeStore) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	if s.err != nil {
		return nil, s.err
	}
	if t, ok := s.tenants[subdomain]; ok {
		return t, nil
	}
	return nil, domain.ErrTenantNotFound
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDirectoryResolveBySubdomain(t *testing.T) {
	acme := &domain.Tenant{
		ID:        uuid.New(),
		Subdomain: "acme",
		Name:      "Acme Inc",
		CreatedAt: time.Now(),
	}
	store := &fakeStore{tenants: map[string]*domain.Tenant{"acme": acme}}
	directory := NewDirectory(store, testLogger())

	t.Run("resolves a known subdomain", func(t *testing.T) {
		got, err := directory.ResolveBySubdomain(context.Background(), "acme")
		require.NoError(t, err)
		require.Equal(t, acme.ID, got.ID)
	})

	t.Run("normalizes before lookup", func(t *testing.T) {
		got, err := directory.ResolveBySubdomain(context.Background(), "  ACME  ")
		require.NoError(t, err)
		require.Equal(t, acme.ID, got.ID)
	})

	t.Run("unknown subdomain is not found", func(t *testing.T) {
		_, err := directory.ResolveBySubdomain(context.Background(), "ghost")
		require.ErrorIs(t, err, domain.ErrTenantNotFound)
	})

	t.Run("empty subdomain is not found", func(t *testing.T) {
		_, err := directory.ResolveBySubdomain(context.Background(), "   ")
		require.ErrorIs(t, err, domain.ErrTenantNotFound)
	})

	t.Run("storage failure collapses to not found", func(t *testing.T) {
		broken := NewDirectory(&fakeStore{err: errors.New("connection refused")}, testLogger())
		_, err := broken.ResolveBySubdomain(context.Background(), "acme")
		require.ErrorIs(t, err, domain.ErrTenantNotFound)
	})
}
