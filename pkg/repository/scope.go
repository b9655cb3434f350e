package repository

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ScopeFilters builds a WHERE clause that always filters on tenant_id,
// merging any caller-supplied equality filters. There is no way to build
// a predicate without the tenant. Filter keys are sorted so the generated
// SQL is deterministic; returned args line up with $1..$n placeholders.
func ScopeFilters(tenantID uuid.UUID, filters map[string]any) (string, []any) {
	var b strings.Builder
	b.WriteString("tenant_id = $1")
	args := []any{tenantID}

	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		args = append(args, filters[k])
		fmt.Fprintf(&b, " AND %s = $%d", k, len(args))
	}
	return b.String(), args
}
