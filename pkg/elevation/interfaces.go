// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package elevation

import (
	"context"

	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/permissions"
)

type ServiceInterface interface {
	AssumeTenant(ctx context.Context, actor *types.Principal, targetTenantID, reason string, work func(context.Context, *ElevatedSession) error) error
	ProvisionTenant(ctx context.Context, actor *types.Principal, req *ProvisionRequest) (*Provisioned, error)
}

// BinderInterface is the override path of the context binder. Nothing else
// in the codebase calls it.
type BinderInterface interface {
	WithElevatedContext(ctx context.Context, actorID, tenantID string, prelude, fn func(context.Context) error) error
}

type StorageInterface interface {
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	CreateAuditEntry(ctx context.Context, e *types.AdminAuditEntry) (*types.AdminAuditEntry, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
}

type PermissionResolverInterface interface {
	ResolvePermissions(ctx context.Context, principal *types.Principal) (permissions.Set, error)
}

type AuthorizerInterface interface {
	RequireRole(ctx context.Context, principal *types.Principal, role types.Role, resource string) error
}
