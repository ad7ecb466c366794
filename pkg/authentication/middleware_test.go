// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/venue-tenancy/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go

func TestMiddleware_Authenticate(t *testing.T) {
	principal := &types.Principal{UserID: "user-123", TenantID: "tenant-a", Role: types.RoleTenantUser}

	tests := []struct {
		name               string
		authHeader         string
		setupMocks         func(*MockResolverInterface, *MockLoggerInterface)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:       "Missing token - rejects request",
			authHeader: "",
			setupMocks: func(resolver *MockResolverInterface, logger *MockLoggerInterface) {
				resolver.EXPECT().ResolvePrincipal(gomock.Any(), "").Return(nil, fmt.Errorf("%w: missing credential", ErrAuthentication))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Invalid token format - rejects request",
			authHeader: "InvalidToken",
			setupMocks: func(resolver *MockResolverInterface, logger *MockLoggerInterface) {
				resolver.EXPECT().ResolvePrincipal(gomock.Any(), "").Return(nil, fmt.Errorf("%w: missing credential", ErrAuthentication))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Token resolution fails - rejects request",
			authHeader: "Bearer invalid-token",
			setupMocks: func(resolver *MockResolverInterface, logger *MockLoggerInterface) {
				resolver.EXPECT().ResolvePrincipal(gomock.Any(), "invalid-token").Return(nil, fmt.Errorf("%w: invalid credential", ErrAuthentication))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Identity store failure - internal error",
			authHeader: "Bearer valid-token",
			setupMocks: func(resolver *MockResolverInterface, logger *MockLoggerInterface) {
				resolver.EXPECT().ResolvePrincipal(gomock.Any(), "valid-token").Return(nil, errors.New("connection refused"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
		{
			name:       "Valid token",
			authHeader: "Bearer valid-token",
			setupMocks: func(resolver *MockResolverInterface, logger *MockLoggerInterface) {
				resolver.EXPECT().ResolvePrincipal(gomock.Any(), "valid-token").Return(principal, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "user-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockResolver := NewMockResolverInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Authenticate").Return(ctx, trace.SpanFromContext(ctx))
			tt.setupMocks(mockResolver, mockLogger)

			middleware := NewMiddleware(mockResolver, mockTracer, mockMonitor, mockLogger)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				p, ok := GetPrincipal(r.Context())
				if !ok {
					t.Errorf("expected a principal in the request context")
					return
				}
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(p.UserID))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			middleware.Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectedBody != "" && rr.Body.String() != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestMiddleware_GetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{
			name:          "No Authorization header",
			authHeader:    "",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "Bearer token",
			authHeader:    "Bearer my-token-123",
			expectedToken: "my-token-123",
			expectedFound: true,
		},
		{
			name:          "Raw token without Bearer prefix",
			authHeader:    "my-token-123",
			expectedToken: "",
			expectedFound: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			middleware := NewMiddleware(NewMockResolverInterface(ctrl), NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, found := middleware.getBearerToken(headers)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}
			if found != test.expectedFound {
				t.Errorf("expected found %v, got %v", test.expectedFound, found)
			}
		})
	}
}

func TestGetPrincipal_Unauthenticated(t *testing.T) {
	if _, ok := GetPrincipal(context.Background()); ok {
		t.Errorf("expected no principal")
	}

	if _, ok := GetPrincipal(WithPrincipal(context.Background(), nil)); ok {
		t.Errorf("expected a nil principal to be treated as absent")
	}
}
