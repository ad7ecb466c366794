// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/venue-tenancy/internal/authorization"
	httptypes "github.com/canonical/venue-tenancy/internal/http/types"
	"github.com/canonical/venue-tenancy/internal/storage"
	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/authentication"
	"github.com/canonical/venue-tenancy/pkg/elevation"
	"github.com/canonical/venue-tenancy/pkg/session"
)

func newRequest(t *testing.T, method, target string, body any, principal *types.Principal) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	if principal != nil {
		req = req.WithContext(authentication.WithPrincipal(req.Context(), principal))
	}

	return req
}

func TestAPI_Tenants(t *testing.T) {
	tests := []struct {
		name           string
		request        func(*testing.T) *http.Request
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "provision tenant",
			request: func(t *testing.T) *http.Request {
				return newRequest(t, http.MethodPost, "/api/v0/tenants", &elevation.ProvisionRequest{
					Name: "Acme", Slug: "acme", AdminEmail: "owner@acme.test", AdminName: "Owner", Reason: "onboarding",
				}, samPrincipal)
			},
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().ProvisionTenant(gomock.Any(), samPrincipal, gomock.Any()).
					Return(&elevation.Provisioned{Tenant: &types.Tenant{ID: tenantA, Slug: "acme"}}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, rr *httptest.ResponseRecorder) {
				if !strings.Contains(rr.Body.String(), tenantA) {
					t.Errorf("expected tenant id in body, got %s", rr.Body.String())
				}
			},
		},
		{
			name: "unknown fields are rejected",
			request: func(t *testing.T) *http.Request {
				return newRequest(t, http.MethodPost, "/api/v0/tenants", `{"name":"Acme","tenant_id":"x"}`, samPrincipal)
			},
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no principal",
			request: func(t *testing.T) *http.Request {
				return newRequest(t, http.MethodGet, "/api/v0/tenants", nil, nil)
			},
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "list with pagination",
			request: func(t *testing.T) *http.Request {
				return newRequest(t, http.MethodGet, "/api/v0/tenants?page=2&size=5", nil, samPrincipal)
			},
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().ListTenants(gomock.Any(), samPrincipal, int64(2), int64(5)).Return([]*types.Tenant{{ID: tenantA}}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var resp httptypes.Response
				if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Meta == nil || resp.Meta.Page != 2 || resp.Meta.Size != 5 {
					t.Errorf("unexpected pagination %+v", resp.Meta)
				}
			},
		},
		{
			name: "bad pagination",
			request: func(t *testing.T) *http.Request {
				return newRequest(t, http.MethodGet, "/api/v0/tenants?page=abc", nil, samPrincipal)
			},
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "tenant admin is forbidden",
			request: func(t *testing.T) *http.Request {
				return newRequest(t, http.MethodGet, "/api/v0/tenants/"+tenantA, nil, alicePrincipal)
			},
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetTenant(gomock.Any(), alicePrincipal, tenantA).Return(nil, fmt.Errorf("%w: missing tenant:read", authorization.ErrAuthorization))
			},
			expectedStatus: http.StatusForbidden,
			validateResp: func(t *testing.T, rr *httptest.ResponseRecorder) {
				if strings.Contains(rr.Body.String(), "tenant:read") {
					t.Errorf("denial leaked its cause: %s", rr.Body.String())
				}
			},
		},
		{
			name: "storage failure is logged",
			request: func(t *testing.T) *http.Request {
				return newRequest(t, http.MethodGet, "/api/v0/tenants/"+tenantA, nil, samPrincipal)
			},
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface) {
				svc.EXPECT().GetTenant(gomock.Any(), samPrincipal, tenantA).Return(nil, errors.New("connection reset"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "suspend tenant",
			request: func(t *testing.T) *http.Request {
				return newRequest(t, http.MethodPut, "/api/v0/tenants/"+tenantA+"/status", &StatusRequest{Status: types.TenantStatusSuspended}, samPrincipal)
			},
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().SetTenantStatus(gomock.Any(), samPrincipal, tenantA, &StatusRequest{Status: types.TenantStatusSuspended}).
					Return(&types.Tenant{ID: tenantA, Status: types.TenantStatusSuspended}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "delete tenant",
			request: func(t *testing.T) *http.Request {
				return newRequest(t, http.MethodDelete, "/api/v0/tenants/"+tenantA, nil, samPrincipal)
			},
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().DeleteTenant(gomock.Any(), samPrincipal, tenantA).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "unknown tenant",
			request: func(t *testing.T) *http.Request {
				return newRequest(t, http.MethodDelete, "/api/v0/tenants/"+tenantA, nil, samPrincipal)
			},
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().DeleteTenant(gomock.Any(), samPrincipal, tenantA).Return(storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			logger := NewMockLoggerInterface(ctrl)

			test.setupMocks(svc, logger)

			mux := chi.NewMux()
			NewAPI(svc, logger).RegisterEndpoints(mux)

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, test.request(t))

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatus, rr.Code, rr.Body.String())
			}

			if test.validateResp != nil {
				test.validateResp(t, rr)
			}
		})
	}
}

func TestAPI_Users(t *testing.T) {
	tests := []struct {
		name           string
		request        func(*testing.T) *http.Request
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "tenant admin lists users without assumption",
			request: func(t *testing.T) *http.Request {
				return newRequest(t, http.MethodGet, "/api/v0/users", nil, alicePrincipal)
			},
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListUsers(gomock.Any(), alicePrincipal, (*session.Assumption)(nil), int64(0), int64(0)).Return([]*types.User{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "super admin lists users of an assumed tenant",
			request: func(t *testing.T) *http.Request {
				r := newRequest(t, http.MethodGet, "/api/v0/users", nil, samPrincipal)
				r.Header.Set(session.AssumeTenantHeader, tenantA)
				r.Header.Set(session.AssumeReasonHeader, "ticket 42")
				return r
			},
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListUsers(gomock.Any(), samPrincipal, &session.Assumption{TenantID: tenantA, Reason: "ticket 42"}, int64(0), int64(0)).
					Return([]*types.User{{ID: alice}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "assumed tenant does not exist",
			request: func(t *testing.T) *http.Request {
				r := newRequest(t, http.MethodGet, "/api/v0/users", nil, samPrincipal)
				r.Header.Set(session.AssumeTenantHeader, tenantA)
				r.Header.Set(session.AssumeReasonHeader, "ticket 42")
				return r
			},
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListUsers(gomock.Any(), samPrincipal, gomock.Any(), int64(0), int64(0)).
					Return(nil, elevation.ErrTenantNotFound)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "create user over quota",
			request: func(t *testing.T) *http.Request {
				return newRequest(t, http.MethodPost, "/api/v0/users", &UserRequest{Email: "bob@acme.test", Role: types.RoleTenantUser}, alicePrincipal)
			},
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateUser(gomock.Any(), alicePrincipal, (*session.Assumption)(nil), gomock.Any()).Return(nil, storage.ErrQuotaExceeded)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "update permissions",
			request: func(t *testing.T) *http.Request {
				return newRequest(t, http.MethodPut, "/api/v0/users/"+bob+"/permissions", &PermissionsRequest{Permissions: []string{"venue:read"}}, alicePrincipal)
			},
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateUserPermissions(gomock.Any(), alicePrincipal, (*session.Assumption)(nil), bob, &PermissionsRequest{Permissions: []string{"venue:read"}}).
					Return(&types.User{ID: bob, Permissions: []string{"venue:read"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			logger := NewMockLoggerInterface(ctrl)

			test.setupMocks(svc)

			mux := chi.NewMux()
			NewAPI(svc, logger).RegisterEndpoints(mux)

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, test.request(t))

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
