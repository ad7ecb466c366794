// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/venue-tenancy/internal/authorization"
	"github.com/canonical/venue-tenancy/internal/storage"
	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/elevation"
	"github.com/canonical/venue-tenancy/pkg/permissions"
	"github.com/canonical/venue-tenancy/pkg/session"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tenant.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	tenantA = "0190a1b2-0000-7000-8000-00000000000a"
	alice   = "0190a1b2-0000-7000-8000-0000000000a1"
	bob     = "0190a1b2-0000-7000-8000-0000000000b0"
	sam     = "0190a1b2-0000-7000-8000-0000000005a0"

	proPackage = "0190a1b2-0000-7000-8000-0000000000f1"
)

var (
	samPrincipal   = &types.Principal{UserID: sam, Role: types.RoleSuperAdmin}
	alicePrincipal = &types.Principal{UserID: alice, TenantID: tenantA, Role: types.RoleTenantAdmin}
)

type mocks struct {
	sessions    *MockSessionInterface
	provisioner *MockProvisionerInterface
	storage     *MockStorageInterface
	tracer      *MockTracingInterface
	monitor     *MockMonitorInterface
	logger      *MockLoggerInterface
	security    *MockSecurityLoggerInterface
}

func newMocks(ctrl *gomock.Controller) *mocks {
	m := &mocks{
		sessions:    NewMockSessionInterface(ctrl),
		provisioner: NewMockProvisionerInterface(ctrl),
		storage:     NewMockStorageInterface(ctrl),
		tracer:      NewMockTracingInterface(ctrl),
		monitor:     NewMockMonitorInterface(ctrl),
		logger:      NewMockLoggerInterface(ctrl),
		security:    NewMockSecurityLoggerInterface(ctrl),
	}

	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	return m
}

func (m *mocks) service() *Service {
	return NewService(m.sessions, m.provisioner, m.storage, m.tracer, m.monitor, m.logger)
}

// platformSession runs work as a platform session holding held.
func (m *mocks) platformSession(held ...permissions.Permission) {
	m.sessions.EXPECT().RunPlatform(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, principal *types.Principal, work func(context.Context, *session.Session) error) error {
			return work(ctx, &session.Session{Principal: principal, Permissions: permissions.NewSet(held...)})
		},
	)
}

// tenantSession runs work as a tenant session holding held.
func (m *mocks) tenantSession(held ...permissions.Permission) {
	m.sessions.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, principal *types.Principal, _ *session.Assumption, work func(context.Context, *session.Session) error) error {
			return work(ctx, &session.Session{Principal: principal, Permissions: permissions.NewSet(held...)})
		},
	)
}

func TestService_ProvisionTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)

	req := &elevation.ProvisionRequest{Name: "Acme", Slug: "acme", AdminEmail: "owner@acme.test", AdminName: "Owner", Reason: "onboarding"}
	out := &elevation.Provisioned{Tenant: &types.Tenant{ID: tenantA, Slug: "acme"}}

	m.provisioner.EXPECT().ProvisionTenant(gomock.Any(), samPrincipal, req).Return(out, nil)

	got, err := m.service().ProvisionTenant(context.Background(), samPrincipal, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != out {
		t.Fatalf("expected provisioner result to be returned")
	}
}

func TestService_ListTenants(t *testing.T) {
	tenants := []*types.Tenant{{ID: tenantA, Name: "Acme", Slug: "acme", Status: types.TenantStatusActive}}

	tests := []struct {
		name       string
		setupMocks func(*mocks)
		expected   []*types.Tenant
		expectErr  error
	}{
		{
			name: "super admin lists tenants",
			setupMocks: func(m *mocks) {
				m.platformSession(permissions.SuperAdminPermissions...)
				m.storage.EXPECT().ListTenants(gomock.Any(), int64(1), int64(20)).Return(tenants, nil)
			},
			expected: tenants,
		},
		{
			name: "session without tenant:read is refused before storage",
			setupMocks: func(m *mocks) {
				m.platformSession(permissions.PackageRead)
			},
			expectErr: authorization.ErrAuthorization,
		},
		{
			name: "platform binding refused",
			setupMocks: func(m *mocks) {
				m.sessions.EXPECT().RunPlatform(gomock.Any(), gomock.Any(), gomock.Any()).Return(authorization.ErrAuthorization)
			},
			expectErr: authorization.ErrAuthorization,
		},
		{
			name: "storage failure",
			setupMocks: func(m *mocks) {
				m.platformSession(permissions.SuperAdminPermissions...)
				m.storage.EXPECT().ListTenants(gomock.Any(), int64(1), int64(20)).Return(nil, errors.New("boom"))
			},
			expectErr: errors.New("boom"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			test.setupMocks(m)

			got, err := m.service().ListTenants(context.Background(), samPrincipal, 1, 20)

			if test.expectErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", test.expectErr)
				}
				if !errors.Is(err, test.expectErr) && err.Error() != test.expectErr.Error() {
					t.Fatalf("expected error %v, got %v", test.expectErr, err)
				}
				if got != nil {
					t.Fatalf("expected no tenants on error, got %v", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != len(test.expected) || got[0].ID != test.expected[0].ID {
				t.Fatalf("expected %v, got %v", test.expected, got)
			}
		})
	}
}

func TestService_SetTenantStatus(t *testing.T) {
	tests := []struct {
		name       string
		req        *StatusRequest
		setupMocks func(*mocks)
		expectErr  error
	}{
		{
			name: "suspend tenant",
			req:  &StatusRequest{Status: types.TenantStatusSuspended},
			setupMocks: func(m *mocks) {
				m.platformSession(permissions.SuperAdminPermissions...)
				m.storage.EXPECT().SetTenantStatus(gomock.Any(), tenantA, types.TenantStatusSuspended).
					Return(&types.Tenant{ID: tenantA, Status: types.TenantStatusSuspended}, nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any()).Times(1)
			},
		},
		{
			name:       "unknown status is rejected before binding",
			req:        &StatusRequest{Status: "paused"},
			setupMocks: func(*mocks) {},
			expectErr:  elevation.ErrInvalidRequest,
		},
		{
			name: "unknown tenant",
			req:  &StatusRequest{Status: types.TenantStatusActive},
			setupMocks: func(m *mocks) {
				m.platformSession(permissions.SuperAdminPermissions...)
				m.storage.EXPECT().SetTenantStatus(gomock.Any(), tenantA, types.TenantStatusActive).Return(nil, storage.ErrNotFound)
			},
			expectErr: storage.ErrNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			test.setupMocks(m)

			got, err := m.service().SetTenantStatus(context.Background(), samPrincipal, tenantA, test.req)

			if !errors.Is(err, test.expectErr) {
				t.Fatalf("expected error %v, got %v", test.expectErr, err)
			}

			if test.expectErr == nil && got.Status != test.req.Status {
				t.Fatalf("expected status %s, got %s", test.req.Status, got.Status)
			}
		})
	}
}

func TestService_DeleteTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.platformSession(permissions.SuperAdminPermissions...)
	m.storage.EXPECT().DeleteTenant(gomock.Any(), tenantA).Return(nil)
	m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any()).Times(1)

	if err := m.service().DeleteTenant(context.Background(), samPrincipal, tenantA); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_CreatePackage(t *testing.T) {
	tests := []struct {
		name       string
		req        *PackageRequest
		setupMocks func(*mocks)
		expectErr  error
	}{
		{
			name: "create package with features",
			req:  &PackageRequest{Name: "Pro", Features: []string{"eventBooking", "multiVenue"}, MaxVenues: 5, BillingInterval: "monthly"},
			setupMocks: func(m *mocks) {
				m.platformSession(permissions.SuperAdminPermissions...)
				m.storage.EXPECT().CreatePackage(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.SubscriptionPackage) (*types.SubscriptionPackage, error) {
						if p.Name != "Pro" || len(p.Features) != 2 || p.MaxVenues != 5 {
							t.Fatalf("unexpected package %+v", p)
						}
						p.ID = proPackage
						return p, nil
					},
				)
			},
		},
		{
			name: "no features stores an empty list",
			req:  &PackageRequest{Name: "Free"},
			setupMocks: func(m *mocks) {
				m.platformSession(permissions.SuperAdminPermissions...)
				m.storage.EXPECT().CreatePackage(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.SubscriptionPackage) (*types.SubscriptionPackage, error) {
						if p.Features == nil {
							t.Fatalf("expected empty feature list, got nil")
						}
						return p, nil
					},
				)
			},
		},
		{
			name:       "unknown feature",
			req:        &PackageRequest{Name: "Odd", Features: []string{"teleportation"}},
			setupMocks: func(*mocks) {},
			expectErr:  elevation.ErrInvalidRequest,
		},
		{
			name:       "negative quota",
			req:        &PackageRequest{Name: "Odd", MaxUsers: -1},
			setupMocks: func(*mocks) {},
			expectErr:  elevation.ErrInvalidRequest,
		},
		{
			name: "tenant admin cannot manage packages",
			req:  &PackageRequest{Name: "Pro"},
			setupMocks: func(m *mocks) {
				m.sessions.EXPECT().RunPlatform(gomock.Any(), gomock.Any(), gomock.Any()).Return(authorization.ErrAuthorization)
			},
			expectErr: authorization.ErrAuthorization,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			test.setupMocks(m)

			_, err := m.service().CreatePackage(context.Background(), samPrincipal, test.req)

			if !errors.Is(err, test.expectErr) {
				t.Fatalf("expected error %v, got %v", test.expectErr, err)
			}
		})
	}
}

func TestService_DeletePackageInUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.platformSession(permissions.SuperAdminPermissions...)
	m.storage.EXPECT().DeletePackage(gomock.Any(), proPackage).Return(storage.ErrPackageInUse)

	err := m.service().DeletePackage(context.Background(), samPrincipal, proPackage)
	if !errors.Is(err, storage.ErrPackageInUse) {
		t.Fatalf("expected ErrPackageInUse, got %v", err)
	}
}

func TestService_MalformedIDsNeverReachStorage(t *testing.T) {
	tests := []struct {
		name string
		call func(*Service) error
	}{
		{"get tenant", func(s *Service) error {
			_, err := s.GetTenant(context.Background(), samPrincipal, "abc")
			return err
		}},
		{"set tenant status", func(s *Service) error {
			_, err := s.SetTenantStatus(context.Background(), samPrincipal, "abc", &StatusRequest{Status: types.TenantStatusSuspended})
			return err
		}},
		{"set tenant package", func(s *Service) error {
			_, err := s.SetTenantPackage(context.Background(), samPrincipal, "abc", &PackageAssignment{})
			return err
		}},
		{"delete tenant", func(s *Service) error {
			return s.DeleteTenant(context.Background(), samPrincipal, "abc")
		}},
		{"get package", func(s *Service) error {
			_, err := s.GetPackage(context.Background(), samPrincipal, "abc")
			return err
		}},
		{"update package", func(s *Service) error {
			_, err := s.UpdatePackage(context.Background(), samPrincipal, "abc", &PackageRequest{Name: "Pro"})
			return err
		}},
		{"delete package", func(s *Service) error {
			return s.DeletePackage(context.Background(), samPrincipal, "abc")
		}},
		{"audit of a tenant", func(s *Service) error {
			_, err := s.ListAuditEntries(context.Background(), samPrincipal, "abc", 1, 10)
			return err
		}},
		{"update user permissions", func(s *Service) error {
			_, err := s.UpdateUserPermissions(context.Background(), alicePrincipal, nil, "abc", &PermissionsRequest{})
			return err
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.sessions.EXPECT().RunPlatform(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			m.sessions.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			if err := test.call(m.service()); !errors.Is(err, elevation.ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
		})
	}
}

func TestService_ListAuditEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := []*types.AdminAuditEntry{{ID: "a1", ActingSuperAdminID: sam, TargetTenantID: tenantA, Action: "assume_tenant", Reason: "support"}}

	m := newMocks(ctrl)
	m.platformSession(permissions.SuperAdminPermissions...)
	m.storage.EXPECT().ListAuditEntries(gomock.Any(), tenantA, int64(2), int64(10)).Return(entries, nil)

	got, err := m.service().ListAuditEntries(context.Background(), samPrincipal, tenantA, 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 || got[0].ID != "a1" {
		t.Fatalf("unexpected entries %v", got)
	}
}

func TestService_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		principal     *types.Principal
		req           *UserRequest
		setupMocks    func(*mocks)
		expectedPerms []string
		expectErr     error
	}{
		{
			name: "tenant admin creates a tenant user with held grants",
			req:  &UserRequest{Email: "bob@acme.test", Name: "Bob", Role: types.RoleTenantUser, Permissions: []string{"venue:read", "booking:read"}},
			setupMocks: func(m *mocks) {
				m.tenantSession(permissions.UserCreate, permissions.VenueRead, permissions.BookingRead)
			},
			expectedPerms: []string{"venue:read", "booking:read"},
		},
		{
			name: "grants are dropped for tenant admins",
			req:  &UserRequest{Email: "carol@acme.test", Role: types.RoleTenantAdmin, Permissions: []string{"venue:read"}},
			setupMocks: func(m *mocks) {
				m.tenantSession(permissions.UserCreate)
			},
			expectedPerms: nil,
		},
		{
			name:      "tenant user with user:create cannot create a tenant admin",
			principal: &types.Principal{UserID: bob, TenantID: tenantA, Role: types.RoleTenantUser},
			req:       &UserRequest{Email: "mallory@acme.test", Role: types.RoleTenantAdmin},
			setupMocks: func(m *mocks) {
				m.tenantSession(permissions.UserCreate)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure(bob, "role:tenant_admin")
			},
			expectErr: authorization.ErrAuthorization,
		},
		{
			name: "cannot grant a permission the session lacks",
			req:  &UserRequest{Email: "bob@acme.test", Role: types.RoleTenantUser, Permissions: []string{"analytics:read"}},
			setupMocks: func(m *mocks) {
				m.tenantSession(permissions.UserCreate, permissions.VenueRead)
			},
			expectErr: authorization.ErrAuthorization,
		},
		{
			name: "session without user:create",
			req:  &UserRequest{Email: "bob@acme.test", Role: types.RoleTenantUser},
			setupMocks: func(m *mocks) {
				m.tenantSession(permissions.UserRead)
			},
			expectErr: authorization.ErrAuthorization,
		},
		{
			name:       "unknown permission",
			req:        &UserRequest{Email: "bob@acme.test", Role: types.RoleTenantUser, Permissions: []string{"venue:steal"}},
			setupMocks: func(*mocks) {},
			expectErr:  elevation.ErrInvalidRequest,
		},
		{
			name:       "super admin role cannot be created in a tenant",
			req:        &UserRequest{Email: "eve@acme.test", Role: types.RoleSuperAdmin},
			setupMocks: func(*mocks) {},
			expectErr:  elevation.ErrInvalidRequest,
		},
		{
			name: "quota reached",
			req:  &UserRequest{Email: "bob@acme.test", Role: types.RoleTenantUser},
			setupMocks: func(m *mocks) {
				m.tenantSession(permissions.UserCreate)
			},
			expectErr: storage.ErrQuotaExceeded,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			test.setupMocks(m)

			if errors.Is(test.expectErr, storage.ErrQuotaExceeded) {
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrQuotaExceeded)
			} else if test.expectErr == nil {
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if len(u.Permissions) != len(test.expectedPerms) {
							t.Fatalf("expected grants %v, got %v", test.expectedPerms, u.Permissions)
						}
						tenantID := tenantA
						u.ID, u.TenantID = bob, &tenantID
						return u, nil
					},
				)
			}

			principal := test.principal
			if principal == nil {
				principal = alicePrincipal
			}

			u, err := m.service().CreateUser(context.Background(), principal, nil, test.req)

			if !errors.Is(err, test.expectErr) {
				t.Fatalf("expected error %v, got %v", test.expectErr, err)
			}

			if test.expectErr == nil && u.ID != bob {
				t.Fatalf("expected created user, got %+v", u)
			}
		})
	}
}

func TestService_UpdateUserPermissions(t *testing.T) {
	tests := []struct {
		name       string
		req        *PermissionsRequest
		held       []permissions.Permission
		expectCall bool
		expectErr  error
	}{
		{
			name:       "narrow permissions",
			req:        &PermissionsRequest{Permissions: []string{"venue:read"}},
			held:       []permissions.Permission{permissions.UserUpdate, permissions.VenueRead},
			expectCall: true,
		},
		{
			name:       "clear permissions",
			req:        &PermissionsRequest{},
			held:       []permissions.Permission{permissions.UserUpdate},
			expectCall: true,
		},
		{
			name:      "escalation beyond the session",
			req:       &PermissionsRequest{Permissions: []string{"payment:refund"}},
			held:      []permissions.Permission{permissions.UserUpdate, permissions.VenueRead},
			expectErr: authorization.ErrAuthorization,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.tenantSession(test.held...)

			if test.expectCall {
				m.storage.EXPECT().UpdateUserPermissions(gomock.Any(), bob, test.req.Permissions).
					Return(&types.User{ID: bob, Permissions: test.req.Permissions}, nil)
			}

			_, err := m.service().UpdateUserPermissions(context.Background(), alicePrincipal, nil, bob, test.req)

			if !errors.Is(err, test.expectErr) {
				t.Fatalf("expected error %v, got %v", test.expectErr, err)
			}
		})
	}
}

func TestService_ListUsersUnderAssumption(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assumption := &session.Assumption{TenantID: tenantA, Reason: "ticket 42"}

	m := newMocks(ctrl)
	m.sessions.EXPECT().Run(gomock.Any(), samPrincipal, assumption, gomock.Any()).DoAndReturn(
		func(ctx context.Context, principal *types.Principal, _ *session.Assumption, work func(context.Context, *session.Session) error) error {
			return work(ctx, &session.Session{
				Principal:   &types.Principal{UserID: sam, TenantID: tenantA, Role: types.RoleTenantAdmin},
				Permissions: permissions.NewSet(permissions.BaseAdminPermissions...),
				Elevation:   &types.AdminAuditEntry{ID: "a1"},
			})
		},
	)
	m.storage.EXPECT().ListUsers(gomock.Any(), int64(1), int64(50)).Return([]*types.User{{ID: alice}}, nil)

	users, err := m.service().ListUsers(context.Background(), samPrincipal, assumption, 1, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(users) != 1 {
		t.Fatalf("expected one user, got %d", len(users))
	}
}
