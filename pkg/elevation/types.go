// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package elevation

import (
	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/permissions"
)

const (
	ActionAssumeTenant    = "assume_tenant"
	ActionProvisionTenant = "provision_tenant"
)

// ElevatedSession is handed to the work of a tenant assumption and is only
// valid for that call. Its principal is a tenant admin of the target tenant,
// the actor keeps no platform privileges inside it.
type ElevatedSession struct {
	Audit       *types.AdminAuditEntry
	Principal   *types.Principal
	Permissions permissions.Set
}

type assumeRequest struct {
	TargetTenantID string `validate:"required,uuid"`
	Reason         string `validate:"required,min=3,max=500"`
}

// ProvisionRequest creates a tenant together with its first tenant admin.
type ProvisionRequest struct {
	Name       string  `json:"name" validate:"required,max=200"`
	Slug       string  `json:"slug" validate:"required,max=63,hostname_rfc1123"`
	PackageID  *string `json:"package_id,omitempty" validate:"omitempty,uuid"`
	AdminEmail string  `json:"admin_email" validate:"required,email"`
	AdminName  string  `json:"admin_name" validate:"required,max=200"`
	Reason     string  `json:"reason" validate:"required,min=3,max=500"`
}

type Provisioned struct {
	Tenant *types.Tenant          `json:"tenant"`
	Admin  *types.User            `json:"admin"`
	Audit  *types.AdminAuditEntry `json:"audit"`
}
