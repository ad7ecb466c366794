// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/venue-tenancy/internal/storage"
	"github.com/canonical/venue-tenancy/internal/types"
)

func ptr[T any](v T) *T {
	return &v
}

func TestResolver_ResolvePrincipal(t *testing.T) {
	const (
		userID   = "0190a1b2-0000-7000-8000-0000000000a1"
		tenantA  = "0190a1b2-0000-7000-8000-00000000000a"
		tenantB  = "0190a1b2-0000-7000-8000-00000000000b"
		platform = "0190a1b2-0000-7000-8000-000000000005"
	)

	active := ptr(types.TenantStatusActive)

	tests := []struct {
		name        string
		credential  string
		setupMocks  func(*MockTokenVerifierInterface, *MockStorageInterface, *MockSecurityLoggerInterface)
		expected    *types.Principal
		expectAuthn bool
		expectOther bool
	}{
		{
			name:       "tenant admin with matching claims",
			credential: "token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockStorageInterface, sec *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "token").Return(&Claims{Subject: userID, TenantID: tenantA, Role: types.RoleTenantAdmin}, nil)
				s.EXPECT().LookupIdentity(gomock.Any(), userID).Return(&types.Identity{UserID: userID, TenantID: ptr(tenantA), Role: types.RoleTenantAdmin, TenantStatus: active}, nil)
			},
			expected: &types.Principal{UserID: userID, TenantID: tenantA, Role: types.RoleTenantAdmin},
		},
		{
			name:       "role claim is optional",
			credential: "token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockStorageInterface, sec *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "token").Return(&Claims{Subject: userID, TenantID: tenantA}, nil)
				s.EXPECT().LookupIdentity(gomock.Any(), userID).Return(&types.Identity{UserID: userID, TenantID: ptr(tenantA), Role: types.RoleTenantUser, TenantStatus: active}, nil)
			},
			expected: &types.Principal{UserID: userID, TenantID: tenantA, Role: types.RoleTenantUser},
		},
		{
			name:       "super admin has no tenant",
			credential: "token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockStorageInterface, sec *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "token").Return(&Claims{Subject: platform, Role: types.RoleSuperAdmin}, nil)
				s.EXPECT().LookupIdentity(gomock.Any(), platform).Return(&types.Identity{UserID: platform, Role: types.RoleSuperAdmin}, nil)
			},
			expected: &types.Principal{UserID: platform, Role: types.RoleSuperAdmin},
		},
		{
			name:       "missing credential",
			credential: "",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockStorageInterface, sec *MockSecurityLoggerInterface) {
				sec.EXPECT().AuthnFailure("missing credential")
			},
			expectAuthn: true,
		},
		{
			name:       "bad signature",
			credential: "token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockStorageInterface, sec *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "token").Return(nil, ErrInvalidToken)
				sec.EXPECT().AuthnFailure("invalid credential")
			},
			expectAuthn: true,
		},
		{
			name:       "expired",
			credential: "token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockStorageInterface, sec *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "token").Return(nil, ErrTokenExpired)
				sec.EXPECT().AuthnFailure("expired credential")
			},
			expectAuthn: true,
		},
		{
			name:       "unknown user",
			credential: "token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockStorageInterface, sec *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "token").Return(&Claims{Subject: userID, TenantID: tenantA}, nil)
				s.EXPECT().LookupIdentity(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				sec.EXPECT().AuthnFailure(gomock.Any())
			},
			expectAuthn: true,
		},
		{
			name:       "tampered tenant claim",
			credential: "token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockStorageInterface, sec *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "token").Return(&Claims{Subject: userID, TenantID: tenantB, Role: types.RoleTenantAdmin}, nil)
				s.EXPECT().LookupIdentity(gomock.Any(), userID).Return(&types.Identity{UserID: userID, TenantID: ptr(tenantA), Role: types.RoleTenantAdmin, TenantStatus: active}, nil)
				sec.EXPECT().CrossTenantViolation(userID, tenantB, gomock.Any())
				sec.EXPECT().AuthnFailure(gomock.Any())
			},
			expectAuthn: true,
		},
		{
			name:       "tenant user without tenant claim never falls back to platform scope",
			credential: "token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockStorageInterface, sec *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "token").Return(&Claims{Subject: userID}, nil)
				s.EXPECT().LookupIdentity(gomock.Any(), userID).Return(&types.Identity{UserID: userID, TenantID: ptr(tenantA), Role: types.RoleTenantUser, TenantStatus: active}, nil)
				sec.EXPECT().AuthnFailure(gomock.Any())
			},
			expectAuthn: true,
		},
		{
			name:       "tenant claim on platform user",
			credential: "token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockStorageInterface, sec *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "token").Return(&Claims{Subject: platform, TenantID: tenantA}, nil)
				s.EXPECT().LookupIdentity(gomock.Any(), platform).Return(&types.Identity{UserID: platform, Role: types.RoleSuperAdmin}, nil)
				sec.EXPECT().AuthnFailure(gomock.Any())
			},
			expectAuthn: true,
		},
		{
			name:       "escalated role claim",
			credential: "token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockStorageInterface, sec *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "token").Return(&Claims{Subject: userID, TenantID: tenantA, Role: types.RoleSuperAdmin}, nil)
				s.EXPECT().LookupIdentity(gomock.Any(), userID).Return(&types.Identity{UserID: userID, TenantID: ptr(tenantA), Role: types.RoleTenantUser, TenantStatus: active}, nil)
				sec.EXPECT().AuthnFailure(gomock.Any())
			},
			expectAuthn: true,
		},
		{
			name:       "suspended tenant",
			credential: "token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockStorageInterface, sec *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "token").Return(&Claims{Subject: userID, TenantID: tenantA}, nil)
				s.EXPECT().LookupIdentity(gomock.Any(), userID).Return(&types.Identity{UserID: userID, TenantID: ptr(tenantA), Role: types.RoleTenantAdmin, TenantStatus: ptr(types.TenantStatusSuspended)}, nil)
				sec.EXPECT().AuthnFailure(gomock.Any())
			},
			expectAuthn: true,
		},
		{
			name:       "identity lookup failure is not an authentication error",
			credential: "token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockStorageInterface, sec *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "token").Return(&Claims{Subject: userID, TenantID: tenantA}, nil)
				s.EXPECT().LookupIdentity(gomock.Any(), userID).Return(nil, errors.New("connection refused"))
			},
			expectOther: true,
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
			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Resolver.ResolvePrincipal").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
			test.setupMocks(mockVerifier, mockStorage, mockSecurity)

			principal, err := NewResolver(mockVerifier, mockStorage, mockTracer, mockMonitor, mockLogger).ResolvePrincipal(context.Background(), test.credential)

			switch {
			case test.expectAuthn:
				if !errors.Is(err, ErrAuthentication) {
					t.Errorf("expected ErrAuthentication, got %v", err)
				}
				if principal != nil {
					t.Errorf("expected no principal, got %+v", principal)
				}
			case test.expectOther:
				if err == nil || errors.Is(err, ErrAuthentication) {
					t.Errorf("expected a non authentication error, got %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if *principal != *test.expected {
					t.Errorf("expected %+v, got %+v", test.expected, principal)
				}
			}
		})
	}
}
