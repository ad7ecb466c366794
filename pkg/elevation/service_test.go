// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package elevation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/venue-tenancy/internal/authorization"
	"github.com/canonical/venue-tenancy/internal/storage"
	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/permissions"
)

//go:generate mockgen -build_flags=--mod=mod -package elevation -destination ./mock_elevation.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package elevation -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package elevation -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package elevation -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	tenantA = "0190a1b2-0000-7000-8000-00000000000a"
	sam     = "0190a1b2-0000-7000-8000-0000000005a0"
	alice   = "0190a1b2-0000-7000-8000-0000000000a1"
)

var samPrincipal = &types.Principal{UserID: sam, Role: types.RoleSuperAdmin}

// runElevated stands in for the binder, keeping its prelude then fn ordering.
func runElevated(ctx context.Context, _, _ string, prelude, fn func(context.Context) error) error {
	if err := prelude(ctx); err != nil {
		return err
	}
	return fn(ctx)
}

type mocks struct {
	binder      *MockBinderInterface
	storage     *MockStorageInterface
	permissions *MockPermissionResolverInterface
	authorizer  *MockAuthorizerInterface
	logger      *MockLoggerInterface
	security    *MockSecurityLoggerInterface
	monitor     *MockMonitorInterface
	tracer      *MockTracingInterface
}

func newMocks(ctrl *gomock.Controller) *mocks {
	return &mocks{
		binder:      NewMockBinderInterface(ctrl),
		storage:     NewMockStorageInterface(ctrl),
		permissions: NewMockPermissionResolverInterface(ctrl),
		authorizer:  NewMockAuthorizerInterface(ctrl),
		logger:      NewMockLoggerInterface(ctrl),
		security:    NewMockSecurityLoggerInterface(ctrl),
		monitor:     NewMockMonitorInterface(ctrl),
		tracer:      NewMockTracingInterface(ctrl),
	}
}

func (m *mocks) service() *Service {
	return NewService(m.binder, m.storage, m.permissions, m.authorizer, m.tracer, m.monitor, m.logger)
}

func (m *mocks) expectOutcome(outcome string) {
	m.monitor.EXPECT().IncElevations(map[string]string{"outcome": outcome}).Return(nil)
}

func TestService_AssumeTenant(t *testing.T) {
	tests := []struct {
		name       string
		actor      *types.Principal
		target     string
		reason     string
		setupMocks func(*mocks)
		workErr    error
		expectWork bool
		expectErr  error
	}{
		{
			name:   "super admin Sam assumes tenant A",
			actor:  samPrincipal,
			target: tenantA,
			reason: "support ticket 4521",
			setupMocks: func(m *mocks) {
				m.authorizer.EXPECT().RequireRole(gomock.Any(), samPrincipal, types.RoleSuperAdmin, authorization.TenantResource(tenantA)).Return(nil)
				m.binder.EXPECT().WithElevatedContext(gomock.Any(), sam, tenantA, gomock.Any(), gomock.Any()).DoAndReturn(runElevated)
				gomock.InOrder(
					m.storage.EXPECT().GetTenant(gomock.Any(), tenantA).Return(&types.Tenant{ID: tenantA, Status: types.TenantStatusActive}, nil),
					m.storage.EXPECT().CreateAuditEntry(gomock.Any(), &types.AdminAuditEntry{
						ActingSuperAdminID: sam,
						TargetTenantID:     tenantA,
						Action:             ActionAssumeTenant,
						Reason:             "support ticket 4521",
					}).Return(&types.AdminAuditEntry{ID: "audit-1", ActingSuperAdminID: sam, TargetTenantID: tenantA}, nil),
					m.permissions.EXPECT().ResolvePermissions(gomock.Any(), &types.Principal{UserID: sam, TenantID: tenantA, Role: types.RoleTenantAdmin}).Return(permissions.NewSet(permissions.BaseAdminPermissions...), nil),
					m.logger.EXPECT().Security().Return(m.security),
					m.security.EXPECT().TenantAssumed(sam, tenantA, "support ticket 4521"),
				)
				m.expectOutcome(outcomeCommitted)
			},
			expectWork: true,
		},
		{
			name:   "tenant admin cannot assume",
			actor:  &types.Principal{UserID: alice, TenantID: tenantA, Role: types.RoleTenantAdmin},
			target: tenantA,
			reason: "curiosity",
			setupMocks: func(m *mocks) {
				m.authorizer.EXPECT().RequireRole(gomock.Any(), gomock.Any(), types.RoleSuperAdmin, gomock.Any()).Return(authorization.ErrAuthorization)
				m.binder.EXPECT().WithElevatedContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				m.expectOutcome(outcomeDenied)
			},
			expectErr: authorization.ErrAuthorization,
		},
		{
			name:   "blank reason is rejected before any transaction",
			actor:  samPrincipal,
			target: tenantA,
			reason: "   ",
			setupMocks: func(m *mocks) {
				m.authorizer.EXPECT().RequireRole(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.binder.EXPECT().WithElevatedContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectErr: ErrInvalidRequest,
		},
		{
			name:   "malformed tenant id is rejected",
			actor:  samPrincipal,
			target: "tenant-a",
			reason: "support ticket 4521",
			setupMocks: func(m *mocks) {
				m.authorizer.EXPECT().RequireRole(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			expectErr: ErrInvalidRequest,
		},
		{
			name:   "unknown tenant",
			actor:  samPrincipal,
			target: tenantA,
			reason: "support ticket 4521",
			setupMocks: func(m *mocks) {
				m.authorizer.EXPECT().RequireRole(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.binder.EXPECT().WithElevatedContext(gomock.Any(), sam, tenantA, gomock.Any(), gomock.Any()).DoAndReturn(runElevated)
				m.storage.EXPECT().GetTenant(gomock.Any(), tenantA).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateAuditEntry(gomock.Any(), gomock.Any()).Times(0)
				m.expectOutcome(outcomeFailed)
			},
			expectErr: ErrTenantNotFound,
		},
		{
			name:   "audit failure aborts before any tenant work",
			actor:  samPrincipal,
			target: tenantA,
			reason: "support ticket 4521",
			setupMocks: func(m *mocks) {
				m.authorizer.EXPECT().RequireRole(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.binder.EXPECT().WithElevatedContext(gomock.Any(), sam, tenantA, gomock.Any(), gomock.Any()).DoAndReturn(runElevated)
				m.storage.EXPECT().GetTenant(gomock.Any(), tenantA).Return(&types.Tenant{ID: tenantA}, nil)
				m.storage.EXPECT().CreateAuditEntry(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
				m.permissions.EXPECT().ResolvePermissions(gomock.Any(), gomock.Any()).Times(0)
				m.expectOutcome(outcomeAuditFailed)
			},
			expectErr: ErrAuditWriteFailure,
		},
		{
			name:    "work failure is returned",
			actor:   samPrincipal,
			target:  tenantA,
			reason:  "support ticket 4521",
			workErr: errors.New("boom"),
			setupMocks: func(m *mocks) {
				m.authorizer.EXPECT().RequireRole(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.binder.EXPECT().WithElevatedContext(gomock.Any(), sam, tenantA, gomock.Any(), gomock.Any()).DoAndReturn(runElevated)
				m.storage.EXPECT().GetTenant(gomock.Any(), tenantA).Return(&types.Tenant{ID: tenantA}, nil)
				m.storage.EXPECT().CreateAuditEntry(gomock.Any(), gomock.Any()).Return(&types.AdminAuditEntry{ID: "audit-2"}, nil)
				m.permissions.EXPECT().ResolvePermissions(gomock.Any(), gomock.Any()).Return(permissions.NewSet(permissions.BaseAdminPermissions...), nil)
				m.security.EXPECT().TenantAssumed(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				m.expectOutcome(outcomeFailed)
			},
			expectWork: true,
			expectErr:  errors.New("boom"),
		},
		{
			name:   "rolled back commit is not logged as an assumption",
			actor:  samPrincipal,
			target: tenantA,
			reason: "support ticket 4521",
			setupMocks: func(m *mocks) {
				m.authorizer.EXPECT().RequireRole(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.binder.EXPECT().WithElevatedContext(gomock.Any(), sam, tenantA, gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, actor, target string, prelude, fn func(context.Context) error) error {
						if err := runElevated(ctx, actor, target, prelude, fn); err != nil {
							return err
						}
						return errors.New("failed to commit transaction: connection reset")
					},
				)
				m.storage.EXPECT().GetTenant(gomock.Any(), tenantA).Return(&types.Tenant{ID: tenantA}, nil)
				m.storage.EXPECT().CreateAuditEntry(gomock.Any(), gomock.Any()).Return(&types.AdminAuditEntry{ID: "audit-3"}, nil)
				m.permissions.EXPECT().ResolvePermissions(gomock.Any(), gomock.Any()).Return(permissions.NewSet(permissions.BaseAdminPermissions...), nil)
				m.security.EXPECT().TenantAssumed(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				m.expectOutcome(outcomeFailed)
			},
			expectWork: true,
			expectErr:  errors.New("failed to commit transaction"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.tracer.EXPECT().Start(gomock.Any(), "elevation.Service.AssumeTenant").Return(context.Background(), trace.SpanFromContext(context.Background()))
			test.setupMocks(m)

			called := false
			err := m.service().AssumeTenant(context.Background(), test.actor, test.target, test.reason, func(ctx context.Context, s *ElevatedSession) error {
				called = true

				if s.Principal.Role != types.RoleTenantAdmin || s.Principal.TenantID != test.target || s.Principal.UserID != test.actor.UserID {
					t.Errorf("unexpected elevated principal %+v", s.Principal)
				}
				if s.Audit == nil {
					t.Errorf("expected the audit entry on the session")
				}
				if !s.Permissions.Has(permissions.DashboardRead) || s.Permissions.Has(permissions.TenantAssume) {
					t.Errorf("expected tenant admin permissions, got %v", s.Permissions.List())
				}
				if len(s.Principal.EffectivePermissions) != s.Permissions.Len() {
					t.Errorf("expected effective permissions on the principal")
				}

				return test.workErr
			})

			if called != test.expectWork {
				t.Errorf("expected work called %v, got %v", test.expectWork, called)
			}

			if test.expectErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", test.expectErr)
				}
				if !errors.Is(err, test.expectErr) && !strings.Contains(err.Error(), test.expectErr.Error()) {
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

func TestService_AssumeTenantIsNotSticky(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).Times(2)
	m.authorizer.EXPECT().RequireRole(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.binder.EXPECT().WithElevatedContext(gomock.Any(), sam, tenantA, gomock.Any(), gomock.Any()).DoAndReturn(runElevated).Times(2)
	m.storage.EXPECT().GetTenant(gomock.Any(), tenantA).Return(&types.Tenant{ID: tenantA}, nil).Times(2)
	// each assumption writes its own audit row
	m.storage.EXPECT().CreateAuditEntry(gomock.Any(), gomock.Any()).Return(&types.AdminAuditEntry{ID: "audit"}, nil).Times(2)
	m.logger.EXPECT().Security().Return(m.security).Times(2)
	m.security.EXPECT().TenantAssumed(sam, tenantA, gomock.Any()).Times(2)
	m.permissions.EXPECT().ResolvePermissions(gomock.Any(), gomock.Any()).Return(permissions.NewSet(permissions.BaseAdminPermissions...), nil).Times(2)
	m.monitor.EXPECT().IncElevations(gomock.Any()).Return(nil).Times(2)

	s := m.service()
	noop := func(context.Context, *ElevatedSession) error { return nil }

	if err := s.AssumeTenant(context.Background(), samPrincipal, tenantA, "first look", noop); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.AssumeTenant(context.Background(), samPrincipal, tenantA, "second look", noop); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if samPrincipal.TenantID != "" || samPrincipal.Role != types.RoleSuperAdmin {
		t.Errorf("actor principal must not change, got %+v", samPrincipal)
	}
}

func validProvisionRequest() *ProvisionRequest {
	return &ProvisionRequest{
		Name:       "Riverside Hall",
		Slug:       "riverside-hall",
		AdminEmail: "owner@riverside.example",
		AdminName:  "Rita Owner",
		Reason:     "new customer onboarding",
	}
}

func TestService_ProvisionTenant(t *testing.T) {
	tests := []struct {
		name       string
		actor      *types.Principal
		req        func() *ProvisionRequest
		setupMocks func(*mocks)
		expectErr  error
	}{
		{
			name:  "audit then tenant then admin",
			actor: samPrincipal,
			req:   validProvisionRequest,
			setupMocks: func(m *mocks) {
				var tenantID string

				m.authorizer.EXPECT().RequireRole(gomock.Any(), samPrincipal, types.RoleSuperAdmin, gomock.Any()).Return(nil)
				m.binder.EXPECT().WithElevatedContext(gomock.Any(), sam, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, actorID, id string, prelude, fn func(context.Context) error) error {
						tenantID = id
						return runElevated(ctx, actorID, id, prelude, fn)
					},
				)
				gomock.InOrder(
					m.storage.EXPECT().CreateAuditEntry(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, e *types.AdminAuditEntry) (*types.AdminAuditEntry, error) {
							if e.Action != ActionProvisionTenant || e.TargetTenantID != tenantID {
								t.Errorf("unexpected audit entry %+v", e)
							}
							return e, nil
						},
					),
					m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, tn *types.Tenant) (*types.Tenant, error) {
							if tn.ID != tenantID || tn.Status != types.TenantStatusActive {
								t.Errorf("unexpected tenant %+v", tn)
							}
							return tn, nil
						},
					),
					m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, u *types.User) (*types.User, error) {
							if u.Role != types.RoleTenantAdmin || u.Email != "owner@riverside.example" {
								t.Errorf("unexpected admin %+v", u)
							}
							return u, nil
						},
					),
				)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
				m.expectOutcome(outcomeCommitted)
			},
		},
		{
			name:  "tenant user cannot provision",
			actor: &types.Principal{UserID: alice, TenantID: tenantA, Role: types.RoleTenantUser},
			req:   validProvisionRequest,
			setupMocks: func(m *mocks) {
				m.authorizer.EXPECT().RequireRole(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(authorization.ErrAuthorization)
				m.expectOutcome(outcomeDenied)
			},
			expectErr: authorization.ErrAuthorization,
		},
		{
			name:  "invalid slug",
			actor: samPrincipal,
			req: func() *ProvisionRequest {
				r := validProvisionRequest()
				r.Slug = "Riverside Hall!"
				return r
			},
			setupMocks: func(m *mocks) {
				m.authorizer.EXPECT().RequireRole(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			expectErr: ErrInvalidRequest,
		},
		{
			name:  "duplicate slug rolls everything back",
			actor: samPrincipal,
			req:   validProvisionRequest,
			setupMocks: func(m *mocks) {
				m.authorizer.EXPECT().RequireRole(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.binder.EXPECT().WithElevatedContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(runElevated)
				m.storage.EXPECT().CreateAuditEntry(gomock.Any(), gomock.Any()).Return(&types.AdminAuditEntry{}, nil)
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)
				m.expectOutcome(outcomeFailed)
			},
			expectErr: storage.ErrDuplicateKey,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.tracer.EXPECT().Start(gomock.Any(), "elevation.Service.ProvisionTenant").Return(context.Background(), trace.SpanFromContext(context.Background()))
			test.setupMocks(m)

			out, err := m.service().ProvisionTenant(context.Background(), test.actor, test.req())

			if test.expectErr != nil {
				if !errors.Is(err, test.expectErr) {
					t.Errorf("expected error %v, got %v", test.expectErr, err)
				}
				if out != nil {
					t.Errorf("expected no result, got %+v", out)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if out.Tenant == nil || out.Admin == nil || out.Audit == nil {
				t.Errorf("expected tenant, admin and audit, got %+v", out)
			}
		})
	}
}
