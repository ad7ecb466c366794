// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/venue-tenancy/internal/authorization"
	"github.com/canonical/venue-tenancy/internal/db"
	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/authentication"
	"github.com/canonical/venue-tenancy/pkg/elevation"
	"github.com/canonical/venue-tenancy/pkg/permissions"
)

//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_session.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	tenantA = "0190a1b2-0000-7000-8000-00000000000a"
	tenantB = "0190a1b2-0000-7000-8000-00000000000b"
	alice   = "0190a1b2-0000-7000-8000-0000000000a1"
	sam     = "0190a1b2-0000-7000-8000-0000000005a0"
)

func runTenant(ctx context.Context, _ string, _ types.Role, fn func(context.Context) error) error {
	return fn(ctx)
}

func runPlatform(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func TestManager_Run(t *testing.T) {
	alicePrincipal := &types.Principal{UserID: alice, TenantID: tenantA, Role: types.RoleTenantAdmin}
	samPrincipal := &types.Principal{UserID: sam, Role: types.RoleSuperAdmin}
	adminSet := permissions.NewSet(permissions.BaseAdminPermissions...)

	tests := []struct {
		name       string
		principal  *types.Principal
		assumption *Assumption
		setupMocks func(*MockBinderInterface, *MockPermissionResolverInterface, *MockElevationInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectWork bool
		expectErr  error
		check      func(*testing.T, *Session)
	}{
		{
			name:      "tenant admin is bound to its own tenant",
			principal: alicePrincipal,
			setupMocks: func(binder *MockBinderInterface, resolver *MockPermissionResolverInterface, _ *MockElevationInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				binder.EXPECT().WithTenantContext(gomock.Any(), tenantA, types.RoleTenantAdmin, gomock.Any()).DoAndReturn(runTenant)
				resolver.EXPECT().ResolvePermissions(gomock.Any(), alicePrincipal).Return(adminSet, nil)
			},
			expectWork: true,
			check: func(t *testing.T, s *Session) {
				if s.Elevated() {
					t.Errorf("expected an ordinary session")
				}
				if s.TenantID() != tenantA {
					t.Errorf("expected tenant %s, got %s", tenantA, s.TenantID())
				}
				if len(s.Principal.EffectivePermissions) != adminSet.Len() {
					t.Errorf("expected effective permissions on the session principal")
				}
				if len(alicePrincipal.EffectivePermissions) != 0 {
					t.Errorf("caller principal must not be modified")
				}
			},
		},
		{
			name:       "tenant user cannot ask for an assumption",
			principal:  &types.Principal{UserID: alice, TenantID: tenantA, Role: types.RoleTenantUser},
			assumption: &Assumption{TenantID: tenantB, Reason: "peek"},
			setupMocks: func(binder *MockBinderInterface, _ *MockPermissionResolverInterface, _ *MockElevationInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				binder.EXPECT().WithTenantContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AuthzFailure(alice, authorization.TenantResource(tenantB))
			},
			expectErr: authorization.ErrAuthorization,
		},
		{
			name:      "super admin without assumption has no tenant",
			principal: samPrincipal,
			setupMocks: func(_ *MockBinderInterface, _ *MockPermissionResolverInterface, elevation *MockElevationInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				elevation.EXPECT().AssumeTenant(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectErr: db.ErrMissingTenantContext,
		},
		{
			name:       "super admin with assumption runs elevated",
			principal:  samPrincipal,
			assumption: &Assumption{TenantID: tenantB, Reason: "support ticket #123"},
			setupMocks: func(_ *MockBinderInterface, _ *MockPermissionResolverInterface, el *MockElevationInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				el.EXPECT().AssumeTenant(gomock.Any(), samPrincipal, tenantB, "support ticket #123", gomock.Any()).DoAndReturn(
					func(ctx context.Context, _ *types.Principal, target, _ string, work func(context.Context, *elevation.ElevatedSession) error) error {
						return work(ctx, &elevation.ElevatedSession{
							Audit:       &types.AdminAuditEntry{ID: "audit-1"},
							Principal:   &types.Principal{UserID: sam, TenantID: target, Role: types.RoleTenantAdmin},
							Permissions: adminSet,
						})
					},
				)
			},
			expectWork: true,
			check: func(t *testing.T, s *Session) {
				if !s.Elevated() || s.Elevation.ID != "audit-1" {
					t.Errorf("expected the elevation audit entry, got %+v", s.Elevation)
				}
				if s.TenantID() != tenantB || s.Principal.Role != types.RoleTenantAdmin {
					t.Errorf("unexpected elevated principal %+v", s.Principal)
				}
			},
		},
		{
			name:      "missing principal",
			principal: nil,
			setupMocks: func(*MockBinderInterface, *MockPermissionResolverInterface, *MockElevationInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {
			},
			expectErr: authentication.ErrAuthentication,
		},
		{
			name:      "unknown role",
			principal: &types.Principal{UserID: alice, TenantID: tenantA, Role: types.Role("owner")},
			setupMocks: func(*MockBinderInterface, *MockPermissionResolverInterface, *MockElevationInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {
			},
			expectErr: db.ErrInvalidBinding,
		},
		{
			name:      "permission resolution failure skips work",
			principal: alicePrincipal,
			setupMocks: func(binder *MockBinderInterface, resolver *MockPermissionResolverInterface, _ *MockElevationInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				binder.EXPECT().WithTenantContext(gomock.Any(), tenantA, types.RoleTenantAdmin, gomock.Any()).DoAndReturn(runTenant)
				resolver.EXPECT().ResolvePermissions(gomock.Any(), gomock.Any()).Return(permissions.Set{}, errors.New("connection reset"))
			},
			expectErr: errors.New("connection reset"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockBinder := NewMockBinderInterface(ctrl)
			mockResolver := NewMockPermissionResolverInterface(ctrl)
			mockElevation := NewMockElevationInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "session.Manager.Run").Return(context.Background(), trace.SpanFromContext(context.Background()))
			test.setupMocks(mockBinder, mockResolver, mockElevation, mockLogger, mockSecurity)

			m := NewManager(mockBinder, mockResolver, mockElevation, NewMockAuthorizerInterface(ctrl), mockTracer, mockMonitor, mockLogger)

			called := false
			err := m.Run(context.Background(), test.principal, test.assumption, func(_ context.Context, s *Session) error {
				called = true
				if test.check != nil {
					test.check(t, s)
				}
				return nil
			})

			if called != test.expectWork {
				t.Errorf("expected work called %v, got %v", test.expectWork, called)
			}

			if test.expectErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", test.expectErr)
				}
				if !errors.Is(err, test.expectErr) && err.Error() != test.expectErr.Error() {
					t.Errorf("expected error %v, got %v", test.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestManager_RunPlatform(t *testing.T) {
	tests := []struct {
		name       string
		principal  *types.Principal
		setupMocks func(*MockBinderInterface, *MockPermissionResolverInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectErr  error
	}{
		{
			name:      "super admin gets the platform scope",
			principal: &types.Principal{UserID: sam, Role: types.RoleSuperAdmin},
			setupMocks: func(binder *MockBinderInterface, resolver *MockPermissionResolverInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				binder.EXPECT().WithPlatformContext(gomock.Any(), gomock.Any()).DoAndReturn(runPlatform)
				resolver.EXPECT().ResolvePermissions(gomock.Any(), gomock.Any()).Return(permissions.NewSet(permissions.SuperAdminPermissions...), nil)
			},
		},
		{
			name:      "tenant admin is refused",
			principal: &types.Principal{UserID: alice, TenantID: tenantA, Role: types.RoleTenantAdmin},
			setupMocks: func(binder *MockBinderInterface, _ *MockPermissionResolverInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				binder.EXPECT().WithPlatformContext(gomock.Any(), gomock.Any()).Times(0)
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AuthzFailure(alice, "platform")
			},
			expectErr: authorization.ErrAuthorization,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockBinder := NewMockBinderInterface(ctrl)
			mockResolver := NewMockPermissionResolverInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "session.Manager.RunPlatform").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.Check").Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
			test.setupMocks(mockBinder, mockResolver, mockLogger, mockSecurity)

			m := NewManager(mockBinder, mockResolver, NewMockElevationInterface(ctrl), authorization.NewAuthorizer(mockTracer, NewMockMonitorInterface(ctrl), mockLogger), mockTracer, NewMockMonitorInterface(ctrl), mockLogger)

			err := m.RunPlatform(context.Background(), test.principal, func(ctx context.Context, s *Session) error {
				if err := s.Require(ctx, permissions.TenantCreate); err != nil {
					t.Errorf("expected tenant:create on the platform session: %v", err)
				}
				return nil
			})

			if !errors.Is(err, test.expectErr) {
				t.Errorf("expected error %v, got %v", test.expectErr, err)
			}
		})
	}
}

func TestSession_Require(t *testing.T) {
	s := &Session{
		Principal:   &types.Principal{UserID: alice, TenantID: tenantA, Role: types.RoleTenantUser},
		Permissions: permissions.NewSet(permissions.VenueRead),
	}

	if err := s.Require(context.Background(), permissions.VenueRead); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := s.Require(context.Background(), permissions.VenueCreate); !errors.Is(err, authorization.ErrAuthorization) {
		t.Errorf("expected ErrAuthorization, got %v", err)
	}
}

func TestSession_RequireRecordsDenials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	principal := &types.Principal{UserID: alice, TenantID: tenantA, Role: types.RoleTenantUser}
	set := permissions.NewSet(permissions.VenueRead)

	mockAuthorizer := NewMockAuthorizerInterface(ctrl)
	mockAuthorizer.EXPECT().Check(gomock.Any(), principal, set, permissions.VenueCreate).Return(authorization.ErrAuthorization)

	s := &Session{Principal: principal, Permissions: set, authorizer: mockAuthorizer}

	if err := s.Require(context.Background(), permissions.VenueCreate); !errors.Is(err, authorization.ErrAuthorization) {
		t.Errorf("expected ErrAuthorization, got %v", err)
	}
}

func TestAssumptionFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v0/venues", nil)

	if a := AssumptionFromRequest(r); a != nil {
		t.Errorf("expected no assumption, got %+v", a)
	}

	r.Header.Set(AssumeTenantHeader, " "+tenantB+" ")
	r.Header.Set(AssumeReasonHeader, "support ticket #123")

	a := AssumptionFromRequest(r)
	if a == nil || a.TenantID != tenantB || a.Reason != "support ticket #123" {
		t.Errorf("unexpected assumption %+v", a)
	}
}
