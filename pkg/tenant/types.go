// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"github.com/canonical/venue-tenancy/internal/types"
)

type StatusRequest struct {
	Status types.TenantStatus `json:"status" validate:"required,oneof=active suspended cancelled"`
}

type PackageAssignment struct {
	PackageID *string `json:"package_id" validate:"omitempty,uuid"`
}

type PackageRequest struct {
	Name            string   `json:"name" validate:"required,max=100"`
	Features        []string `json:"features" validate:"dive,feature"`
	MaxVenues       int      `json:"max_venues" validate:"gte=0"`
	MaxUsers        int      `json:"max_users" validate:"gte=0"`
	PriceCents      int64    `json:"price_cents" validate:"gte=0"`
	BillingInterval string   `json:"billing_interval" validate:"omitempty,oneof=monthly yearly"`
}

// UserRequest creates a user in the bound tenant. Permissions only matter for
// tenant users, admins derive theirs from the package.
type UserRequest struct {
	Email       string     `json:"email" validate:"required,email"`
	Name        string     `json:"name" validate:"max=200"`
	Role        types.Role `json:"role" validate:"required,oneof=tenant_user tenant_admin"`
	Permissions []string   `json:"permissions" validate:"dive,permission"`
}

type PermissionsRequest struct {
	Permissions []string `json:"permissions" validate:"dive,permission"`
}
