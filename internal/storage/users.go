// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/canonical/venue-tenancy/internal/db"
	"github.com/canonical/venue-tenancy/internal/types"
)

var userColumns = []string{"id", "tenant_id", "email", "name", "role", "permissions", "created_at"}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// GetTenantPackage returns the subscription package of the bound tenant, nil
// when the tenant has none.
func (s *Storage) GetTenantPackage(ctx context.Context) (*types.SubscriptionPackage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantPackage")
	defer span.End()

	tenantID, err := db.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	p, err := scanPackage(
		s.db.Statement(ctx).
			Select(prefixed("p", packageColumns)...).
			From("tenants t").
			Join("subscription_packages p ON p.id = t.package_id").
			Where(sq.Eq{"t.id": tenantID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tenant package: %w", err)
	}

	return p, nil
}

// checkQuota fails with ErrQuotaExceeded when the bound tenant already holds
// as many rows of table as its package allows. Zero means unlimited.
func (s *Storage) checkQuota(ctx context.Context, tenantID, table string, limitOf func(*types.SubscriptionPackage) int) error {
	p, err := s.GetTenantPackage(ctx)
	if err != nil {
		return err
	}

	if p == nil {
		return nil
	}

	limit := limitOf(p)
	if limit <= 0 {
		return nil
	}

	// held until the transaction ends so concurrent creations count each other
	_, err = s.db.Statement(ctx).
		Select().
		Column(sq.Expr("pg_advisory_xact_lock(hashtextextended(?, 0))", table+":"+tenantID)).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock %s quota: %w", table, err)
	}

	var count int
	err = s.db.Statement(ctx).
		Select("count(*)").
		From(table).
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", table, err)
	}

	if count >= limit {
		return fmt.Errorf("%w: %s limit of %d reached", ErrQuotaExceeded, table, limit)
	}

	return nil
}

func scanUser(row rowScanner) (*types.User, error) {
	u := new(types.User)
	if err := row.Scan(&u.ID, &u.TenantID, &u.Email, &u.Name, &u.Role, pq.Array(&u.Permissions), &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Permissions = nonNil(u.Permissions)
	return u, nil
}

// GetUserPermissions returns the permissions stored on a user of the bound tenant.
func (s *Storage) GetUserPermissions(ctx context.Context, userID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserPermissions")
	defer span.End()

	tenantID, err := db.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	var permissions []string
	err = s.db.Statement(ctx).
		Select("permissions").
		From("users").
		Where(sq.Eq{"id": userID, "tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(pq.Array(&permissions))
	if err != nil {
		return nil, notFound(err, "failed to get user permissions")
	}

	return nonNil(permissions), nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	tenantID, err := db.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	if !u.Role.TenantScoped() {
		return nil, fmt.Errorf("role %q cannot belong to a tenant", u.Role)
	}

	if err := s.checkQuota(ctx, tenantID, "users", func(p *types.SubscriptionPackage) int { return p.MaxUsers }); err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanUser(
		s.db.Statement(ctx).
			Insert("users").
			Columns("id", "tenant_id", "email", "name", "role", "permissions").
			Values(id, tenantID, u.Email, u.Name, string(u.Role), pq.Array(nonNil(u.Permissions))).
			Suffix(returning(userColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapTenantWriteError(err, "failed to insert user")
	}

	return created, nil
}

func (s *Storage) GetUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUser")
	defer span.End()

	tenantID, err := db.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	u, err := scanUser(
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where(sq.Eq{"id": id, "tenant_id": tenantID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, notFound(err, "failed to get user")
	}

	return u, nil
}

func (s *Storage) ListUsers(ctx context.Context, page, size int64) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsers")
	defer span.End()

	tenantID, err := db.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	pageSize := db.PageSize(size)

	users, err := queryAll(ctx,
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where(sq.Eq{"tenant_id": tenantID}).
			OrderBy("created_at", "id").
			Limit(pageSize).
			Offset(db.Offset(page, pageSize)),
		scanUser,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (s *Storage) UpdateUserPermissions(ctx context.Context, id string, permissions []string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserPermissions")
	defer span.End()

	tenantID, err := db.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	u, err := scanUser(
		s.db.Statement(ctx).
			Update("users").
			Set("permissions", pq.Array(nonNil(permissions))).
			Where(sq.Eq{"id": id, "tenant_id": tenantID}).
			Suffix(returning(userColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapTenantWriteError(err, "failed to update user permissions")
	}

	return u, nil
}
