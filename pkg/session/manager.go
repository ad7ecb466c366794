// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"fmt"

	"github.com/canonical/venue-tenancy/internal/authorization"
	"github.com/canonical/venue-tenancy/internal/db"
	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/authentication"
	"github.com/canonical/venue-tenancy/pkg/elevation"
)

var _ ManagerInterface = (*Manager)(nil)

// Manager opens exactly one bound transaction per request and hands the work
// a Session describing it.
type Manager struct {
	binder      BinderInterface
	permissions PermissionResolverInterface
	elevation   ElevationInterface
	authorizer  AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Run binds the request to the tenant of principal. A super admin has no
// tenant of its own: without an assumption tenant work fails with
// ErrMissingTenantContext, with one it runs through the elevation service.
func (m *Manager) Run(ctx context.Context, principal *types.Principal, assumption *Assumption, work func(context.Context, *Session) error) error {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Run")
	defer span.End()

	if principal == nil {
		return authentication.ErrAuthentication
	}

	switch {
	case principal.Role.TenantScoped():
		if assumption != nil {
			m.logger.Security().AuthzFailure(principal.UserID, authorization.TenantResource(assumption.TenantID))
			return fmt.Errorf("%w: only super admins can assume a tenant", authorization.ErrAuthorization)
		}

		return m.binder.WithTenantContext(ctx, principal.TenantID, principal.Role, func(ctx context.Context) error {
			return m.run(ctx, principal, work)
		})
	case principal.Role == types.RoleSuperAdmin:
		if assumption == nil {
			return db.ErrMissingTenantContext
		}

		return m.elevation.AssumeTenant(ctx, principal, assumption.TenantID, assumption.Reason, func(ctx context.Context, es *elevation.ElevatedSession) error {
			return work(ctx, &Session{Principal: es.Principal, Permissions: es.Permissions, Elevation: es.Audit, authorizer: m.authorizer})
		})
	}

	return fmt.Errorf("%w: role %q", db.ErrInvalidBinding, principal.Role)
}

// RunPlatform binds the request to the platform scope. Only super admins get one.
func (m *Manager) RunPlatform(ctx context.Context, principal *types.Principal, work func(context.Context, *Session) error) error {
	ctx, span := m.tracer.Start(ctx, "session.Manager.RunPlatform")
	defer span.End()

	if principal == nil {
		return authentication.ErrAuthentication
	}

	if principal.Role != types.RoleSuperAdmin {
		m.logger.Security().AuthzFailure(principal.UserID, "platform")
		return fmt.Errorf("%w: platform scope requires a super admin", authorization.ErrAuthorization)
	}

	return m.binder.WithPlatformContext(ctx, func(ctx context.Context) error {
		return m.run(ctx, principal, work)
	})
}

func (m *Manager) run(ctx context.Context, principal *types.Principal, work func(context.Context, *Session) error) error {
	set, err := m.permissions.ResolvePermissions(ctx, principal)
	if err != nil {
		return err
	}

	p := *principal
	p.EffectivePermissions = set.Strings()

	return work(ctx, &Session{Principal: &p, Permissions: set, authorizer: m.authorizer})
}

func NewManager(binder BinderInterface, permissions PermissionResolverInterface, elevation ElevationInterface, authorizer AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Manager {
	m := new(Manager)

	m.binder = binder
	m.permissions = permissions
	m.elevation = elevation
	m.authorizer = authorizer

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
