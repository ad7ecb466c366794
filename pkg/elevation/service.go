// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package elevation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/canonical/venue-tenancy/internal/authorization"
	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
	"github.com/canonical/venue-tenancy/internal/storage"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

const (
	outcomeCommitted   = "committed"
	outcomeDenied      = "denied"
	outcomeAuditFailed = "audit_failed"
	outcomeFailed      = "failed"
)

type Service struct {
	binder      BinderInterface
	storage     StorageInterface
	permissions PermissionResolverInterface
	authorizer  AuthorizerInterface

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// AssumeTenant runs work inside targetTenantID as a tenant admin on behalf of
// a super admin. In one transaction it checks the tenant exists, appends the
// audit entry and only then rebinds to the tenant. The session does not outlive
// work, every assumption goes through here again and is audited again.
func (s *Service) AssumeTenant(ctx context.Context, actor *types.Principal, targetTenantID, reason string, work func(context.Context, *ElevatedSession) error) error {
	ctx, span := s.tracer.Start(ctx, "elevation.Service.AssumeTenant")
	defer span.End()

	if err := s.authorizer.RequireRole(ctx, actor, types.RoleSuperAdmin, authorization.TenantResource(targetTenantID)); err != nil {
		s.count(outcomeDenied)
		return err
	}

	reason = strings.TrimSpace(reason)
	if err := s.validate.Struct(assumeRequest{TargetTenantID: targetTenantID, Reason: reason}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	var audit *types.AdminAuditEntry

	prelude := func(ctx context.Context) error {
		if _, err := s.storage.GetTenant(ctx, targetTenantID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrTenantNotFound
			}
			return err
		}

		var err error
		audit, err = s.writeAudit(ctx, actor.UserID, targetTenantID, ActionAssumeTenant, reason)
		return err
	}

	err := s.binder.WithElevatedContext(ctx, actor.UserID, targetTenantID, prelude, func(ctx context.Context) error {
		principal := &types.Principal{UserID: actor.UserID, TenantID: targetTenantID, Role: types.RoleTenantAdmin}

		set, err := s.permissions.ResolvePermissions(ctx, principal)
		if err != nil {
			return err
		}
		principal.EffectivePermissions = set.Strings()

		return work(ctx, &ElevatedSession{Audit: audit, Principal: principal, Permissions: set})
	})

	s.finish(err)

	// the audit entry only exists once the transaction committed
	if err == nil {
		s.logger.Security().TenantAssumed(actor.UserID, targetTenantID, reason)
	}

	return err
}

// ProvisionTenant creates a tenant and its first tenant admin in a single
// audited transaction: audit entry and tenant row in platform scope, then the
// admin user bound to the new tenant.
func (s *Service) ProvisionTenant(ctx context.Context, actor *types.Principal, req *ProvisionRequest) (*Provisioned, error) {
	ctx, span := s.tracer.Start(ctx, "elevation.Service.ProvisionTenant")
	defer span.End()

	if err := s.authorizer.RequireRole(ctx, actor, types.RoleSuperAdmin, authorization.TenantResource("new")); err != nil {
		s.count(outcomeDenied)
		return nil, err
	}

	req.Reason = strings.TrimSpace(req.Reason)
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}
	tenantID := id.String()

	out := new(Provisioned)

	prelude := func(ctx context.Context) error {
		var err error

		if out.Audit, err = s.writeAudit(ctx, actor.UserID, tenantID, ActionProvisionTenant, req.Reason); err != nil {
			return err
		}

		out.Tenant, err = s.storage.CreateTenant(ctx, &types.Tenant{
			ID:        tenantID,
			Name:      req.Name,
			Slug:      req.Slug,
			Status:    types.TenantStatusActive,
			PackageID: req.PackageID,
		})
		return err
	}

	err = s.binder.WithElevatedContext(ctx, actor.UserID, tenantID, prelude, func(ctx context.Context) error {
		var err error
		out.Admin, err = s.storage.CreateUser(ctx, &types.User{
			Email:       req.AdminEmail,
			Name:        req.AdminName,
			Role:        types.RoleTenantAdmin,
			Permissions: []string{},
		})
		return err
	})

	s.finish(err)

	if err != nil {
		return nil, err
	}

	s.logger.Infof("tenant %s provisioned by %s", tenantID, actor.UserID)

	return out, nil
}

func (s *Service) writeAudit(ctx context.Context, actorID, tenantID, action, reason string) (*types.AdminAuditEntry, error) {
	audit, err := s.storage.CreateAuditEntry(ctx, &types.AdminAuditEntry{
		ActingSuperAdminID: actorID,
		TargetTenantID:     tenantID,
		Action:             action,
		Reason:             reason,
	})
	if err != nil {
		s.logger.Errorf("audit write for %s on tenant %s failed: %v", action, tenantID, err)
		return nil, fmt.Errorf("%w: %w", ErrAuditWriteFailure, err)
	}

	return audit, nil
}

func (s *Service) finish(err error) {
	switch {
	case err == nil:
		s.count(outcomeCommitted)
	case errors.Is(err, ErrAuditWriteFailure):
		s.count(outcomeAuditFailed)
	default:
		s.count(outcomeFailed)
	}
}

func (s *Service) count(outcome string) {
	if err := s.monitor.IncElevations(map[string]string{"outcome": outcome}); err != nil {
		s.logger.Debugf("failed to record elevation: %v", err)
	}
}

func NewService(
	binder BinderInterface,
	storage StorageInterface,
	permissions PermissionResolverInterface,
	authorizer AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.binder = binder
	s.storage = storage
	s.permissions = permissions
	s.authorizer = authorizer

	s.validate = validator.New(validator.WithRequiredStructEnabled())

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
