// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/canonical/venue-tenancy/internal/authorization"
	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/permissions"
)

const (
	AssumeTenantHeader = "X-Assume-Tenant"
	AssumeReasonHeader = "X-Assume-Reason"
)

// Assumption asks for a request to run inside a tenant on behalf of a super admin.
type Assumption struct {
	TenantID string
	Reason   string
}

// AssumptionFromRequest returns nil when the request does not ask for one.
func AssumptionFromRequest(r *http.Request) *Assumption {
	tenantID := strings.TrimSpace(r.Header.Get(AssumeTenantHeader))
	if tenantID == "" {
		return nil
	}

	return &Assumption{TenantID: tenantID, Reason: r.Header.Get(AssumeReasonHeader)}
}

// Session is the view a handler gets of its bound transaction. It is only
// valid inside the work function it was passed to.
type Session struct {
	Principal   *types.Principal
	Permissions permissions.Set
	// Elevation is the audit entry of the assumption, nil for ordinary sessions.
	Elevation *types.AdminAuditEntry

	authorizer AuthorizerInterface
}

func (s *Session) Elevated() bool {
	return s.Elevation != nil
}

func (s *Session) TenantID() string {
	return s.Principal.TenantID
}

// Require fails with ErrAuthorization unless the session holds p. Sessions
// opened by a Manager also record the denial.
func (s *Session) Require(ctx context.Context, p permissions.Permission) error {
	if s.authorizer != nil {
		return s.authorizer.Check(ctx, s.Principal, s.Permissions, p)
	}

	if permissions.HasPermission(s.Permissions, p) {
		return nil
	}
	return fmt.Errorf("%w: missing %s", authorization.ErrAuthorization, p)
}
