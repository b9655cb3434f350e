package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/orgable/orgable/pkg/auth"
	"github.com/orgable/orgable/pkg/tenant"
)

// The concrete repositories must keep satisfying the service-side
// interfaces they are injected as.
var (
	_ auth.SessionRepo = (*SessionsRepository)(nil)
	_ auth.UserRepo    = (*UsersRepository)(nil)
	_ tenant.Store     = (*TenantsRepository)(nil)
	_ UserAccessor     = (*UsersRepository)(nil)
	_ SessionAccessor  = (*SessionsRepository)(nil)
	_ SettingsAccessor = (*OrgSettingsRepository)(nil)
)

func TestScopeFilters_TenantOnly(t *testing.T) {
	tenantID := uuid.New()

	clause, args := ScopeFilters(tenantID, nil)
	require.Equal(t, "tenant_id = $1", clause)
	require.Equal(t, []any{tenantID}, args)
}

func TestScopeFilters_MergesFilters(t *testing.T) {
	tenantID := uuid.New()

	clause, args := ScopeFilters(tenantID, map[string]any{"email": "a@x.com"})
	require.Equal(t, "tenant_id = $1 AND email = $2", clause)
	require.Equal(t, []any{tenantID, "a@x.com"}, args)
}

func TestScopeFilters_Deterministic(t *testing.T) {
	tenantID := uuid.New()
	filters := map[string]any{"name": "Ada", "email": "a@x.com"}

	clause, args := ScopeFilters(tenantID, filters)
	require.Equal(t, "tenant_id = $1 AND email = $2 AND name = $3", clause)
	require.Equal(t, []any{tenantID, "a@x.com", "Ada"}, args)

	// Map iteration order must not leak into the SQL.
	for i := 0; i < 20; i++ {
		again, _ := ScopeFilters(tenantID, filters)
		require.Equal(t, clause, again)
	}
}

func TestScopeFilters_CannotDropTenant(t *testing.T) {
	clause, args := ScopeFilters(uuid.Nil, map[string]any{"email": "a@x.com"})
	require.Contains(t, clause, "tenant_id = $1")
	require.Equal(t, uuid.Nil, args[0])
}
