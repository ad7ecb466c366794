// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/venue-tenancy/internal/authorization"
	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/elevation"
	"github.com/canonical/venue-tenancy/pkg/permissions"
	"github.com/canonical/venue-tenancy/pkg/session"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	sessions    SessionInterface
	provisioner ProvisionerInterface
	storage     StorageInterface

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// newValidator knows the feature and permission catalogue on top of the
// built-in tags.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("feature", func(fl validator.FieldLevel) bool {
		return permissions.ValidFeature(fl.Field().String())
	})
	_ = v.RegisterValidation("permission", func(fl validator.FieldLevel) bool {
		return permissions.Known(permissions.Permission(fl.Field().String()))
	})

	return v
}

func (s *Service) check(req any) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", elevation.ErrInvalidRequest, err)
	}
	return nil
}

// checkID rejects path ids that are not uuids before they reach a uuid column.
func (s *Service) checkID(id string) error {
	if err := s.validate.Var(id, "required,uuid"); err != nil {
		return fmt.Errorf("%w: invalid id %q", elevation.ErrInvalidRequest, id)
	}
	return nil
}

// platform runs work in platform scope once the session holds perm.
func platform[T any](ctx context.Context, s *Service, principal *types.Principal, perm permissions.Permission, work func(context.Context) (T, error)) (T, error) {
	var result T

	err := s.sessions.RunPlatform(ctx, principal, func(ctx context.Context, sess *session.Session) error {
		if err := sess.Require(ctx, perm); err != nil {
			return err
		}

		var err error
		result, err = work(ctx)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}

func (s *Service) ProvisionTenant(ctx context.Context, principal *types.Principal, req *elevation.ProvisionRequest) (*elevation.Provisioned, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ProvisionTenant")
	defer span.End()

	return s.provisioner.ProvisionTenant(ctx, principal, req)
}

func (s *Service) ListTenants(ctx context.Context, principal *types.Principal, page, size int64) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	return platform(ctx, s, principal, permissions.TenantRead, func(ctx context.Context) ([]*types.Tenant, error) {
		return s.storage.ListTenants(ctx, page, size)
	})
}

func (s *Service) GetTenant(ctx context.Context, principal *types.Principal, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	if err := s.checkID(id); err != nil {
		return nil, err
	}

	return platform(ctx, s, principal, permissions.TenantRead, func(ctx context.Context) (*types.Tenant, error) {
		return s.storage.GetTenant(ctx, id)
	})
}

// SetTenantStatus suspends, cancels or reactivates a tenant. Principals of a
// tenant that is not active fail authentication from their next request on.
func (s *Service) SetTenantStatus(ctx context.Context, principal *types.Principal, id string, req *StatusRequest) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetTenantStatus")
	defer span.End()

	if err := s.checkID(id); err != nil {
		return nil, err
	}

	if err := s.check(req); err != nil {
		return nil, err
	}

	t, err := platform(ctx, s, principal, permissions.TenantUpdate, func(ctx context.Context) (*types.Tenant, error) {
		return s.storage.SetTenantStatus(ctx, id, req.Status)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("tenant %s set to %s by %s", id, req.Status, principal.UserID)

	return t, nil
}

// SetTenantPackage moves a tenant to another package, or to none. Resolved
// permissions follow on the next request, nothing stored is rewritten.
func (s *Service) SetTenantPackage(ctx context.Context, principal *types.Principal, id string, req *PackageAssignment) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetTenantPackage")
	defer span.End()

	if err := s.checkID(id); err != nil {
		return nil, err
	}

	if err := s.check(req); err != nil {
		return nil, err
	}

	return platform(ctx, s, principal, permissions.TenantUpdate, func(ctx context.Context) (*types.Tenant, error) {
		return s.storage.SetTenantPackage(ctx, id, req.PackageID)
	})
}

// DeleteTenant removes the tenant and, by cascade, every row it owns. The
// audit trail is kept.
func (s *Service) DeleteTenant(ctx context.Context, principal *types.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteTenant")
	defer span.End()

	if err := s.checkID(id); err != nil {
		return err
	}

	_, err := platform(ctx, s, principal, permissions.TenantDelete, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.storage.DeleteTenant(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Warnf("tenant %s deleted by %s", id, principal.UserID)

	return nil
}

func (r *PackageRequest) toPackage(id string) *types.SubscriptionPackage {
	features := r.Features
	if features == nil {
		features = []string{}
	}

	return &types.SubscriptionPackage{
		ID:              id,
		Name:            r.Name,
		Features:        features,
		MaxVenues:       r.MaxVenues,
		MaxUsers:        r.MaxUsers,
		PriceCents:      r.PriceCents,
		BillingInterval: r.BillingInterval,
	}
}

func (s *Service) CreatePackage(ctx context.Context, principal *types.Principal, req *PackageRequest) (*types.SubscriptionPackage, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreatePackage")
	defer span.End()

	if err := s.check(req); err != nil {
		return nil, err
	}

	return platform(ctx, s, principal, permissions.PackageCreate, func(ctx context.Context) (*types.SubscriptionPackage, error) {
		return s.storage.CreatePackage(ctx, req.toPackage(""))
	})
}

func (s *Service) ListPackages(ctx context.Context, principal *types.Principal) ([]*types.SubscriptionPackage, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListPackages")
	defer span.End()

	return platform(ctx, s, principal, permissions.PackageRead, s.storage.ListPackages)
}

func (s *Service) GetPackage(ctx context.Context, principal *types.Principal, id string) (*types.SubscriptionPackage, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetPackage")
	defer span.End()

	if err := s.checkID(id); err != nil {
		return nil, err
	}

	return platform(ctx, s, principal, permissions.PackageRead, func(ctx context.Context) (*types.SubscriptionPackage, error) {
		return s.storage.GetPackage(ctx, id)
	})
}

// UpdatePackage replaces a package. Dropping a feature narrows every tenant on
// the package at once.
func (s *Service) UpdatePackage(ctx context.Context, principal *types.Principal, id string, req *PackageRequest) (*types.SubscriptionPackage, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdatePackage")
	defer span.End()

	if err := s.checkID(id); err != nil {
		return nil, err
	}

	if err := s.check(req); err != nil {
		return nil, err
	}

	return platform(ctx, s, principal, permissions.PackageUpdate, func(ctx context.Context) (*types.SubscriptionPackage, error) {
		return s.storage.UpdatePackage(ctx, req.toPackage(id))
	})
}

func (s *Service) DeletePackage(ctx context.Context, principal *types.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeletePackage")
	defer span.End()

	if err := s.checkID(id); err != nil {
		return err
	}

	_, err := platform(ctx, s, principal, permissions.PackageDelete, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.storage.DeletePackage(ctx, id)
	})

	return err
}

func (s *Service) ListAuditEntries(ctx context.Context, principal *types.Principal, tenantID string, page, size int64) ([]*types.AdminAuditEntry, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListAuditEntries")
	defer span.End()

	if tenantID != "" {
		if err := s.checkID(tenantID); err != nil {
			return nil, err
		}
	}

	return platform(ctx, s, principal, permissions.AuditRead, func(ctx context.Context) ([]*types.AdminAuditEntry, error) {
		return s.storage.ListAuditEntries(ctx, tenantID, page, size)
	})
}

func (s *Service) ListUsers(ctx context.Context, principal *types.Principal, assumption *session.Assumption, page, size int64) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListUsers")
	defer span.End()

	var users []*types.User

	err := s.sessions.Run(ctx, principal, assumption, func(ctx context.Context, sess *session.Session) error {
		if err := sess.Require(ctx, permissions.UserRead); err != nil {
			return err
		}

		var err error
		users, err = s.storage.ListUsers(ctx, page, size)
		return err
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// grantable fails unless the session itself holds every permission in perms.
// Nobody hands out more than they have.
func grantable(sess *session.Session, perms []string) error {
	for _, p := range perms {
		if !sess.Permissions.Has(permissions.Permission(p)) {
			return fmt.Errorf("%w: cannot grant %s", authorization.ErrAuthorization, p)
		}
	}
	return nil
}

func (s *Service) CreateUser(ctx context.Context, principal *types.Principal, assumption *session.Assumption, req *UserRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateUser")
	defer span.End()

	if err := s.check(req); err != nil {
		return nil, err
	}

	grants := req.Permissions
	if req.Role == types.RoleTenantAdmin {
		grants = nil
	}

	var user *types.User

	err := s.sessions.Run(ctx, principal, assumption, func(ctx context.Context, sess *session.Session) error {
		if err := sess.Require(ctx, permissions.UserCreate); err != nil {
			return err
		}

		// the admin role is itself a grant
		if req.Role == types.RoleTenantAdmin && sess.Principal.Role != types.RoleTenantAdmin {
			s.logger.Security().AuthzFailure(sess.Principal.UserID, "role:"+string(types.RoleTenantAdmin))
			return fmt.Errorf("%w: only tenant admins create tenant admins", authorization.ErrAuthorization)
		}

		if err := grantable(sess, grants); err != nil {
			return err
		}

		var err error
		user, err = s.storage.CreateUser(ctx, &types.User{
			Email:       req.Email,
			Name:        req.Name,
			Role:        req.Role,
			Permissions: grants,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) UpdateUserPermissions(ctx context.Context, principal *types.Principal, assumption *session.Assumption, userID string, req *PermissionsRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateUserPermissions")
	defer span.End()

	if err := s.checkID(userID); err != nil {
		return nil, err
	}

	if err := s.check(req); err != nil {
		return nil, err
	}

	var user *types.User

	err := s.sessions.Run(ctx, principal, assumption, func(ctx context.Context, sess *session.Session) error {
		if err := sess.Require(ctx, permissions.UserUpdate); err != nil {
			return err
		}

		if err := grantable(sess, req.Permissions); err != nil {
			return err
		}

		var err error
		user, err = s.storage.UpdateUserPermissions(ctx, userID, req.Permissions)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func NewService(
	sessions SessionInterface,
	provisioner ProvisionerInterface,
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		sessions:    sessions,
		provisioner: provisioner,
		storage:     storage,
		validate:    newValidator(),
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}
