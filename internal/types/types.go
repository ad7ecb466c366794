// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Role is the tag that drives permission resolution and policy evaluation.
type Role string

const (
	RoleTenantUser  Role = "tenant_user"
	RoleTenantAdmin Role = "tenant_admin"
	RoleSuperAdmin  Role = "super_admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleTenantUser, RoleTenantAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// TenantScoped reports whether the role always belongs to exactly one tenant.
func (r Role) TenantScoped() bool {
	return r == RoleTenantUser || r == RoleTenantAdmin
}

type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
	TenantStatusCancelled TenantStatus = "cancelled"
)

func (s TenantStatus) Valid() bool {
	switch s {
	case TenantStatusActive, TenantStatusSuspended, TenantStatusCancelled:
		return true
	}
	return false
}

type Tenant struct {
	ID        string       `db:"id" json:"id"`
	Name      string       `db:"name" json:"name"`
	Slug      string       `db:"slug" json:"slug"`
	Status    TenantStatus `db:"status" json:"status"`
	PackageID *string      `db:"package_id" json:"package_id,omitempty"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

type User struct {
	ID          string    `db:"id" json:"id"`
	TenantID    *string   `db:"tenant_id" json:"tenant_id,omitempty"`
	Email       string    `db:"email" json:"email"`
	Name        string    `db:"name" json:"name"`
	Role        Role      `db:"role" json:"role"`
	Permissions []string  `db:"permissions" json:"permissions"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type SubscriptionPackage struct {
	ID              string    `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Features        []string  `db:"features" json:"features"`
	MaxVenues       int       `db:"max_venues" json:"max_venues"`
	MaxUsers        int       `db:"max_users" json:"max_users"`
	PriceCents      int64     `db:"price_cents" json:"price_cents"`
	BillingInterval string    `db:"billing_interval" json:"billing_interval"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Identity is the read model the identity lookup returns for a user id.
type Identity struct {
	UserID       string
	TenantID     *string
	Role         Role
	TenantStatus *TenantStatus
}

// Principal is built fresh for every request and never cached.
type Principal struct {
	UserID               string   `json:"user_id"`
	TenantID             string   `json:"tenant_id,omitempty"`
	Role                 Role     `json:"role"`
	EffectivePermissions []string `json:"effective_permissions,omitempty"`
}

type AdminAuditEntry struct {
	ID                 string    `db:"id" json:"id"`
	ActingSuperAdminID string    `db:"acting_super_admin_id" json:"acting_super_admin_id"`
	TargetTenantID     string    `db:"target_tenant_id" json:"target_tenant_id"`
	Action             string    `db:"action" json:"action"`
	Reason             string    `db:"reason" json:"reason"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

type Venue struct {
	ID        string    `db:"id" json:"id"`
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	Capacity  int       `db:"capacity" json:"capacity"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Customer struct {
	ID        string    `db:"id" json:"id"`
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Booking struct {
	ID         string    `db:"id" json:"id"`
	TenantID   string    `db:"tenant_id" json:"tenant_id"`
	VenueID    string    `db:"venue_id" json:"venue_id"`
	CustomerID string    `db:"customer_id" json:"customer_id"`
	EventDate  time.Time `db:"event_date" json:"event_date"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
