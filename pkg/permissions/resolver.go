// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"context"
	"fmt"

	"github.com/canonical/venue-tenancy/internal/db"
	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/internal/types"
)

var _ ResolverInterface = (*Resolver)(nil)

// Resolve computes the effective permissions of a role given the features of
// the tenant's package and the permissions stored on the user.
//
// tenant_admin permissions are derived only, stored is ignored for them.
// tenant_user permissions are the stored ones still valid under the package,
// so grants for a feature the tenant lost are never honoured.
func Resolve(role types.Role, features []string, stored []string) Set {
	switch role {
	case types.RoleSuperAdmin:
		return NewSet(SuperAdminPermissions...)
	case types.RoleTenantAdmin:
		return NewSet(packagePermissions(features)...)
	case types.RoleTenantUser:
		valid := NewSet(packagePermissions(features)...)

		granted := make([]Permission, 0, len(stored))
		for _, p := range stored {
			if valid.Has(Permission(p)) {
				granted = append(granted, Permission(p))
			}
		}

		return NewSet(granted...)
	}

	return NewSet()
}

func packagePermissions(features []string) []Permission {
	perms := make([]Permission, 0, len(BaseAdminPermissions))
	perms = append(perms, BaseAdminPermissions...)

	for _, f := range features {
		perms = append(perms, FeaturePermissions[Feature(f)]...)
	}

	return perms
}

type Resolver struct {
	binder  BinderInterface
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ResolvePermissions loads the package and stored grants for the principal and
// resolves them. It reuses the transaction bound on ctx when there is one,
// otherwise it opens its own binding to the principal's tenant.
func (r *Resolver) ResolvePermissions(ctx context.Context, principal *types.Principal) (Set, error) {
	ctx, span := r.tracer.Start(ctx, "permissions.Resolver.ResolvePermissions")
	defer span.End()

	if principal.Role == types.RoleSuperAdmin {
		return Resolve(principal.Role, nil, nil), nil
	}

	if !principal.Role.TenantScoped() {
		return Set{}, fmt.Errorf("%w: unknown role %q", db.ErrInvalidBinding, principal.Role)
	}

	if principal.TenantID == "" {
		return Set{}, db.ErrMissingTenantContext
	}

	if b, ok := db.BindingFromContext(ctx); ok {
		if b.TenantID != principal.TenantID {
			r.logger.Security().CrossTenantViolation(principal.UserID, principal.TenantID, "permission resolution under a foreign binding")
			return Set{}, fmt.Errorf("%w: transaction is not bound to the principal's tenant", db.ErrInvalidBinding)
		}
		return r.load(ctx, principal)
	}

	return db.WithTenantResult(ctx, r.binder, principal.TenantID, principal.Role, func(ctx context.Context) (Set, error) {
		return r.load(ctx, principal)
	})
}

func (r *Resolver) load(ctx context.Context, principal *types.Principal) (Set, error) {
	pkg, err := r.storage.GetTenantPackage(ctx)
	if err != nil {
		return Set{}, fmt.Errorf("failed to load tenant package: %w", err)
	}

	var features []string
	if pkg != nil {
		features = pkg.Features
	}

	var stored []string
	if principal.Role == types.RoleTenantUser {
		stored, err = r.storage.GetUserPermissions(ctx, principal.UserID)
		if err != nil {
			return Set{}, fmt.Errorf("failed to load user permissions: %w", err)
		}
	}

	set := Resolve(principal.Role, features, stored)
	r.logger.Debugf("resolved %d permissions for user %s in tenant %s", set.Len(), principal.UserID, principal.TenantID)

	return set, nil
}

func NewResolver(binder BinderInterface, storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	r := new(Resolver)

	r.binder = binder
	r.storage = storage

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
