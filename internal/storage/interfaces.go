// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/venue-tenancy/internal/types"
)

type StorageInterface interface {
	// platform scope
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context, page, size int64) ([]*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, status types.TenantStatus) (*types.Tenant, error)
	SetTenantPackage(ctx context.Context, id string, packageID *string) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
	CreatePackage(ctx context.Context, p *types.SubscriptionPackage) (*types.SubscriptionPackage, error)
	GetPackage(ctx context.Context, id string) (*types.SubscriptionPackage, error)
	ListPackages(ctx context.Context) ([]*types.SubscriptionPackage, error)
	UpdatePackage(ctx context.Context, p *types.SubscriptionPackage) (*types.SubscriptionPackage, error)
	DeletePackage(ctx context.Context, id string) error
	CreateAuditEntry(ctx context.Context, e *types.AdminAuditEntry) (*types.AdminAuditEntry, error)
	ListAuditEntries(ctx context.Context, tenantID string, page, size int64) ([]*types.AdminAuditEntry, error)

	LookupIdentity(ctx context.Context, userID string) (*types.Identity, error)

	// tenant scope
	GetTenantPackage(ctx context.Context) (*types.SubscriptionPackage, error)
	GetUserPermissions(ctx context.Context, userID string) ([]string, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUser(ctx context.Context, id string) (*types.User, error)
	ListUsers(ctx context.Context, page, size int64) ([]*types.User, error)
	UpdateUserPermissions(ctx context.Context, id string, permissions []string) (*types.User, error)
	CreateVenue(ctx context.Context, v *types.Venue) (*types.Venue, error)
	GetVenue(ctx context.Context, id string) (*types.Venue, error)
	ListVenues(ctx context.Context, page, size int64) ([]*types.Venue, error)
	CreateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error)
	GetCustomer(ctx context.Context, id string) (*types.Customer, error)
	ListCustomers(ctx context.Context, page, size int64) ([]*types.Customer, error)
	CreateBooking(ctx context.Context, b *types.Booking) (*types.Booking, error)
	GetBooking(ctx context.Context, id string) (*types.Booking, error)
	ListBookings(ctx context.Context, page, size int64) ([]*types.Booking, error)

	VerifyIsolationPolicies(ctx context.Context) error
}
