// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/permissions"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestAuthorizer_Check(t *testing.T) {
	principal := &types.Principal{UserID: "user-1", TenantID: "tenant-a", Role: types.RoleTenantUser}
	set := permissions.NewSet(permissions.VenueRead, permissions.BookingRead)

	testCases := []struct {
		name        string
		permission  permissions.Permission
		setupMocks  func(*MockSecurityLoggerInterface, *MockMonitorInterface)
		expectedErr bool
	}{
		{
			name:       "allowed",
			permission: permissions.VenueRead,
			setupMocks: func(sec *MockSecurityLoggerInterface, monitor *MockMonitorInterface) {
			},
			expectedErr: false,
		},
		{
			name:       "denied is logged and counted",
			permission: permissions.VenueCreate,
			setupMocks: func(sec *MockSecurityLoggerInterface, monitor *MockMonitorInterface) {
				sec.EXPECT().AuthzFailure("user-1", "permission:venue:create")
				monitor.EXPECT().IncAuthorizationDenials(map[string]string{"permission": "permission:venue:create"}).Return(nil)
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.Check").Return(context.TODO(), trace.SpanFromContext(context.TODO()))
			mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
			tc.setupMocks(mockSecurity, mockMonitor)

			authorizer := NewAuthorizer(mockTracer, mockMonitor, mockLogger)
			err := authorizer.Check(context.TODO(), principal, set, tc.permission)

			if tc.expectedErr != (err != nil) {
				t.Fatalf("expected error: %v, got: %v", tc.expectedErr, err)
			}

			if err != nil && !errors.Is(err, ErrAuthorization) {
				t.Errorf("expected ErrAuthorization, got %v", err)
			}
		})
	}
}

func TestAuthorizer_RequireRole(t *testing.T) {
	testCases := []struct {
		name        string
		principal   *types.Principal
		expectedErr bool
	}{
		{
			name:        "super admin",
			principal:   &types.Principal{UserID: "sam", Role: types.RoleSuperAdmin},
			expectedErr: false,
		},
		{
			name:        "tenant admin",
			principal:   &types.Principal{UserID: "alice", TenantID: "tenant-a", Role: types.RoleTenantAdmin},
			expectedErr: true,
		},
		{
			name:        "no principal",
			principal:   nil,
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.RequireRole").Return(context.TODO(), trace.SpanFromContext(context.TODO()))

			if tc.expectedErr {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(gomock.Any(), TenantResource("tenant-b"))
				mockMonitor.EXPECT().IncAuthorizationDenials(gomock.Any()).Return(errors.New("metric not instantiated"))
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			}

			authorizer := NewAuthorizer(mockTracer, mockMonitor, mockLogger)
			err := authorizer.RequireRole(context.TODO(), tc.principal, types.RoleSuperAdmin, TenantResource("tenant-b"))

			if tc.expectedErr != (err != nil) {
				t.Fatalf("expected error: %v, got: %v", tc.expectedErr, err)
			}

			if err != nil && !errors.Is(err, ErrAuthorization) {
				t.Errorf("expected ErrAuthorization, got %v", err)
			}
		})
	}
}
