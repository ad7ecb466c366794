// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/elevation"
	"github.com/canonical/venue-tenancy/pkg/session"
)

type ServiceInterface interface {
	ProvisionTenant(ctx context.Context, principal *types.Principal, req *elevation.ProvisionRequest) (*elevation.Provisioned, error)
	ListTenants(ctx context.Context, principal *types.Principal, page, size int64) ([]*types.Tenant, error)
	GetTenant(ctx context.Context, principal *types.Principal, id string) (*types.Tenant, error)
	SetTenantStatus(ctx context.Context, principal *types.Principal, id string, req *StatusRequest) (*types.Tenant, error)
	SetTenantPackage(ctx context.Context, principal *types.Principal, id string, req *PackageAssignment) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, principal *types.Principal, id string) error

	CreatePackage(ctx context.Context, principal *types.Principal, req *PackageRequest) (*types.SubscriptionPackage, error)
	ListPackages(ctx context.Context, principal *types.Principal) ([]*types.SubscriptionPackage, error)
	GetPackage(ctx context.Context, principal *types.Principal, id string) (*types.SubscriptionPackage, error)
	UpdatePackage(ctx context.Context, principal *types.Principal, id string, req *PackageRequest) (*types.SubscriptionPackage, error)
	DeletePackage(ctx context.Context, principal *types.Principal, id string) error

	ListAuditEntries(ctx context.Context, principal *types.Principal, tenantID string, page, size int64) ([]*types.AdminAuditEntry, error)

	ListUsers(ctx context.Context, principal *types.Principal, assumption *session.Assumption, page, size int64) ([]*types.User, error)
	CreateUser(ctx context.Context, principal *types.Principal, assumption *session.Assumption, req *UserRequest) (*types.User, error)
	UpdateUserPermissions(ctx context.Context, principal *types.Principal, assumption *session.Assumption, userID string, req *PermissionsRequest) (*types.User, error)
}

type SessionInterface interface {
	Run(ctx context.Context, principal *types.Principal, assumption *session.Assumption, work func(context.Context, *session.Session) error) error
	RunPlatform(ctx context.Context, principal *types.Principal, work func(context.Context, *session.Session) error) error
}

type ProvisionerInterface interface {
	ProvisionTenant(ctx context.Context, actor *types.Principal, req *elevation.ProvisionRequest) (*elevation.Provisioned, error)
}

type StorageInterface interface {
	ListTenants(ctx context.Context, page, size int64) ([]*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, status types.TenantStatus) (*types.Tenant, error)
	SetTenantPackage(ctx context.Context, id string, packageID *string) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
	CreatePackage(ctx context.Context, p *types.SubscriptionPackage) (*types.SubscriptionPackage, error)
	GetPackage(ctx context.Context, id string) (*types.SubscriptionPackage, error)
	ListPackages(ctx context.Context) ([]*types.SubscriptionPackage, error)
	UpdatePackage(ctx context.Context, p *types.SubscriptionPackage) (*types.SubscriptionPackage, error)
	DeletePackage(ctx context.Context, id string) error
	ListAuditEntries(ctx context.Context, tenantID string, page, size int64) ([]*types.AdminAuditEntry, error)
	ListUsers(ctx context.Context, page, size int64) ([]*types.User, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	UpdateUserPermissions(ctx context.Context, id string, permissions []string) (*types.User, error)
}
