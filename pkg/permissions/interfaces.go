// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"context"

	"github.com/canonical/venue-tenancy/internal/types"
)

// StorageInterface is the read API the resolver needs, called inside a
// transaction bound to the principal's tenant.
type StorageInterface interface {
	GetTenantPackage(ctx context.Context) (*types.SubscriptionPackage, error)
	GetUserPermissions(ctx context.Context, userID string) ([]string, error)
}

type BinderInterface interface {
	WithTenantContext(ctx context.Context, tenantID string, role types.Role, fn func(context.Context) error) error
}

type ResolverInterface interface {
	ResolvePermissions(ctx context.Context, principal *types.Principal) (Set, error)
}
