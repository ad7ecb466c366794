// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/elevation"
	"github.com/canonical/venue-tenancy/pkg/permissions"
)

type ManagerInterface interface {
	Run(ctx context.Context, principal *types.Principal, assumption *Assumption, work func(context.Context, *Session) error) error
	RunPlatform(ctx context.Context, principal *types.Principal, work func(context.Context, *Session) error) error
}

type BinderInterface interface {
	WithTenantContext(ctx context.Context, tenantID string, role types.Role, fn func(context.Context) error) error
	WithPlatformContext(ctx context.Context, fn func(context.Context) error) error
}

type PermissionResolverInterface interface {
	ResolvePermissions(ctx context.Context, principal *types.Principal) (permissions.Set, error)
}

type AuthorizerInterface interface {
	Check(ctx context.Context, principal *types.Principal, set permissions.Set, p permissions.Permission) error
}

type ElevationInterface interface {
	AssumeTenant(ctx context.Context, actor *types.Principal, targetTenantID, reason string, work func(context.Context, *elevation.ElevatedSession) error) error
}
