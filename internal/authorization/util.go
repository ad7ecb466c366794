// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/venue-tenancy/pkg/permissions"
)

// TenantResource names a tenant in authorization failure events.
func TenantResource(tenantID string) string {
	return "tenant:" + tenantID
}

func PermissionResource(p permissions.Permission) string {
	return "permission:" + string(p)
}
