// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
	"github.com/canonical/venue-tenancy/internal/storage"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/internal/types"
)

var _ ResolverInterface = (*Resolver)(nil)

// Resolver turns a bearer credential into a request principal.
type Resolver struct {
	verifier TokenVerifierInterface
	storage  StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ResolvePrincipal verifies the credential and checks its claims against the
// persisted identity. A tenant claim that does not match the user's tenant is
// a hard failure, the principal is never built without a tenant by accident.
func (r *Resolver) ResolvePrincipal(ctx context.Context, credential string) (*types.Principal, error) {
	ctx, span := r.tracer.Start(ctx, "authentication.Resolver.ResolvePrincipal")
	defer span.End()

	if credential == "" {
		return nil, r.fail("missing credential")
	}

	claims, err := r.verifier.VerifyToken(ctx, credential)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return nil, r.fail("expired credential")
		}
		return nil, r.fail("invalid credential")
	}

	identity, err := r.storage.LookupIdentity(ctx, claims.Subject)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, r.fail("unknown user " + claims.Subject)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}

	if claims.Role != "" && claims.Role != identity.Role {
		return nil, r.fail(fmt.Sprintf("role claim %q does not match user %s", claims.Role, identity.UserID))
	}

	principal := &types.Principal{UserID: identity.UserID, Role: identity.Role}

	switch {
	case identity.Role == types.RoleSuperAdmin:
		if identity.TenantID != nil {
			return nil, r.fail("platform user " + identity.UserID + " is attached to a tenant")
		}
		if claims.TenantID != "" {
			return nil, r.fail("tenant claim on platform user " + identity.UserID)
		}
	case identity.Role.TenantScoped():
		if identity.TenantID == nil {
			return nil, r.fail("tenant user " + identity.UserID + " has no tenant")
		}
		if claims.TenantID == "" {
			return nil, r.fail("missing tenant claim for user " + identity.UserID)
		}
		if claims.TenantID != *identity.TenantID {
			r.logger.Security().CrossTenantViolation(identity.UserID, claims.TenantID, "credential claims a foreign tenant")
			return nil, r.fail("tenant claim mismatch for user " + identity.UserID)
		}
		if identity.TenantStatus == nil || *identity.TenantStatus != types.TenantStatusActive {
			return nil, r.fail("tenant of user " + identity.UserID + " is not active")
		}
		principal.TenantID = *identity.TenantID
	default:
		return nil, r.fail(fmt.Sprintf("unknown role %q", identity.Role))
	}

	return principal, nil
}

func (r *Resolver) fail(reason string) error {
	r.logger.Security().AuthnFailure(reason)
	return fmt.Errorf("%w: %s", ErrAuthentication, reason)
}

func NewResolver(verifier TokenVerifierInterface, storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	r := new(Resolver)

	r.verifier = verifier
	r.storage = storage

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
