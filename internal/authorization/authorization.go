// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/permissions"
)

// ErrAuthorization is returned when a principal lacks the permission or role
// an operation needs. Callers surface it as a generic denial.
var ErrAuthorization = errors.New("not authorized")

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Check fails with ErrAuthorization unless set holds p.
func (a *Authorizer) Check(ctx context.Context, principal *types.Principal, set permissions.Set, p permissions.Permission) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	if permissions.HasPermission(set, p) {
		return nil
	}

	a.deny(principal, PermissionResource(p))

	return fmt.Errorf("%w: missing %s", ErrAuthorization, p)
}

// RequireRole fails with ErrAuthorization unless principal holds exactly role.
// resource names what was being accessed, for the security log.
func (a *Authorizer) RequireRole(ctx context.Context, principal *types.Principal, role types.Role, resource string) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.RequireRole")
	defer span.End()

	if principal != nil && principal.Role == role {
		return nil
	}

	a.deny(principal, resource)

	return fmt.Errorf("%w: %s requires role %s", ErrAuthorization, resource, role)
}

func (a *Authorizer) deny(principal *types.Principal, resource string) {
	userID := ""
	if principal != nil {
		userID = principal.UserID
	}

	a.logger.Security().AuthzFailure(userID, resource)

	if err := a.monitor.IncAuthorizationDenials(map[string]string{"permission": resource}); err != nil {
		a.logger.Debugf("failed to record authorization denial: %v", err)
	}
}

func NewAuthorizer(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
