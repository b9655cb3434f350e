package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/orgable/orgable/pkg/domain"
)

// UserAccessor is the tenant-scoped user surface the view composes.
type UserAccessor interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, tenantID uuid.UUID, filters map[string]any) ([]*domain.User, error)
	Count(ctx context.Context, tenantID uuid.UUID) (int, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// SessionAccessor is the tenant-scoped session surface the view composes.
type SessionAccessor interface {
	CountActive(ctx context.Context, tenantID uuid.UUID, now time.Time) (int, error)
	DeleteAllByUser(ctx context.Context, tenantID, userID uuid.UUID) error
}

// SettingsAccessor is the settings surface the view composes.
type SettingsAccessor interface {
	Get(ctx context.Context, tenantID uuid.UUID) (*domain.OrgSettings, error)
	Upsert(ctx context.Context, tenantID uuid.UUID, document json.RawMessage) error
	Update(ctx context.Context, tenantID uuid.UUID, document json.RawMessage) error
	Delete(ctx context.Context, tenantID uuid.UUID) error
}

// ViewFactory builds tenant-bound views over the scoped accessors.
type ViewFactory struct {
	users    UserAccessor
	sessions SessionAccessor
	settings SettingsAccessor
}

// NewViewFactory creates a view factory.
func NewViewFactory(users UserAccessor, sessions SessionAccessor, settings SettingsAccessor) *ViewFactory {
	return &ViewFactory{users: users, sessions: sessions, settings: settings}
}

// View returns a view bound to one tenant.
func (f *ViewFactory) View(tenantID uuid.UUID) *TenantView {
	return &TenantView{tenantID: tenantID, f: f}
}

// TenantView threads one tenant id through every operation, so call sites
// working within a resolved tenant never re-supply it.
type TenantView struct {
	tenantID uuid.UUID
	f        *ViewFactory
}

// TenantID returns the tenant the view is bound to.
func (v *TenantView) TenantID() uuid.UUID { return v.tenantID }

func (v *TenantView) UserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return v.f.users.GetByID(ctx, v.tenantID, id)
}

func (v *TenantView) Users(ctx context.Context) ([]*domain.User, error) {
	return v.f.users.List(ctx, v.tenantID, nil)
}

func (v *TenantView) CountUsers(ctx context.Context) (int, error) {
	return v.f.users.Count(ctx, v.tenantID)
}

func (v *TenantView) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return v.f.users.Delete(ctx, v.tenantID, id)
}

func (v *TenantView) CountActiveSessions(ctx context.Context, now time.Time) (int, error) {
	return v.f.sessions.CountActive(ctx, v.tenantID, now)
}

func (v *TenantView) RevokeUserSessions(ctx context.Context, userID uuid.UUID) error {
	return v.f.sessions.DeleteAllByUser(ctx, v.tenantID, userID)
}

func (v *TenantView) Settings(ctx context.Context) (*domain.OrgSettings, error) {
	return v.f.settings.Get(ctx, v.tenantID)
}

func (v *TenantView) UpsertSettings(ctx context.Context, document json.RawMessage) error {
	return v.f.settings.Upsert(ctx, v.tenantID, document)
}

func (v *TenantView) UpdateSettings(ctx context.Context, document json.RawMessage) error {
	return v.f.settings.Update(ctx, v.tenantID, document)
}

func (v *TenantView) DeleteSettings(ctx context.Context) error {
	return v.f.settings.Delete(ctx, v.tenantID)
}
