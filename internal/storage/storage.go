// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/canonical/venue-tenancy/internal/db"
	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var (
	tenantColumns  = []string{"id", "name", "slug", "status", "package_id", "created_at", "updated_at"}
	packageColumns = []string{"id", "name", "features", "max_venues", "max_users", "price_cents", "billing_interval", "created_at", "updated_at"}
	auditColumns   = []string{"id", "acting_super_admin_id", "target_tenant_id", "action", "reason", "created_at"}
)

type rowScanner interface {
	Scan(dest ...any) error
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}

func queryAll[T any](ctx context.Context, q sq.SelectBuilder, scan func(rowScanner) (T, error)) ([]T, error) {
	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func notFound(err error, context string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", context, err)
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func scanTenant(row rowScanner) (*types.Tenant, error) {
	t := new(types.Tenant)
	if err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.Status, &t.PackageID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTenant inserts a tenant in platform scope. A caller supplied ID is kept
// so that a provisioning transaction can bind to the tenant it is creating.
func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	if err := db.RequirePlatform(ctx); err != nil {
		return nil, err
	}

	id := t.ID
	if id == "" {
		var err error
		if id, err = newID(); err != nil {
			return nil, err
		}
	}

	status := t.Status
	if status == "" {
		status = types.TenantStatusActive
	}

	created, err := scanTenant(
		s.db.Statement(ctx).
			Insert("tenants").
			Columns("id", "name", "slug", "status", "package_id").
			Values(id, t.Name, t.Slug, string(status), t.PackageID).
			Suffix(returning(tenantColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapPlatformWriteError(err, "failed to insert tenant")
	}

	return created, nil
}

// GetTenant returns the tenant in platform scope, or the bound tenant's own row.
func (s *Storage) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenant")
	defer span.End()

	if _, ok := db.BindingFromContext(ctx); !ok {
		return nil, db.ErrMissingTenantContext
	}

	t, err := scanTenant(
		s.db.Statement(ctx).
			Select(tenantColumns...).
			From("tenants").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, notFound(err, "failed to get tenant")
	}

	return t, nil
}

func (s *Storage) ListTenants(ctx context.Context, page, size int64) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	if err := db.RequirePlatform(ctx); err != nil {
		return nil, err
	}

	pageSize := db.PageSize(size)

	tenants, err := queryAll(ctx,
		s.db.Statement(ctx).
			Select(tenantColumns...).
			From("tenants").
			OrderBy("created_at", "id").
			Limit(pageSize).
			Offset(db.Offset(page, pageSize)),
		scanTenant,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	return tenants, nil
}

func (s *Storage) SetTenantStatus(ctx context.Context, id string, status types.TenantStatus) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantStatus")
	defer span.End()

	if err := db.RequirePlatform(ctx); err != nil {
		return nil, err
	}

	t, err := scanTenant(
		s.db.Statement(ctx).
			Update("tenants").
			Set("status", string(status)).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": id}).
			Suffix(returning(tenantColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapPlatformWriteError(err, "failed to update tenant status")
	}

	return t, nil
}

func (s *Storage) SetTenantPackage(ctx context.Context, id string, packageID *string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantPackage")
	defer span.End()

	if err := db.RequirePlatform(ctx); err != nil {
		return nil, err
	}

	t, err := scanTenant(
		s.db.Statement(ctx).
			Update("tenants").
			Set("package_id", packageID).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": id}).
			Suffix(returning(tenantColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapPlatformWriteError(err, "failed to update tenant package")
	}

	return t, nil
}

// DeleteTenant hard deletes the tenant. Tenant-scoped rows go with it, the audit trail stays.
func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	if err := db.RequirePlatform(ctx); err != nil {
		return err
	}

	res, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return wrapPlatformWriteError(err, "failed to delete tenant")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

func scanPackage(row rowScanner) (*types.SubscriptionPackage, error) {
	p := new(types.SubscriptionPackage)
	err := row.Scan(
		&p.ID, &p.Name, pq.Array(&p.Features), &p.MaxVenues, &p.MaxUsers,
		&p.PriceCents, &p.BillingInterval, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	return p, nil
}

func (s *Storage) CreatePackage(ctx context.Context, p *types.SubscriptionPackage) (*types.SubscriptionPackage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePackage")
	defer span.End()

	if err := db.RequirePlatform(ctx); err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanPackage(
		s.db.Statement(ctx).
			Insert("subscription_packages").
			Columns("id", "name", "features", "max_venues", "max_users", "price_cents", "billing_interval").
			Values(id, p.Name, pq.Array(p.Features), p.MaxVenues, p.MaxUsers, p.PriceCents, p.BillingInterval).
			Suffix(returning(packageColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapPlatformWriteError(err, "failed to insert package")
	}

	return created, nil
}

// GetPackage reads a package. Any bound scope may read packages.
func (s *Storage) GetPackage(ctx context.Context, id string) (*types.SubscriptionPackage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPackage")
	defer span.End()

	if _, ok := db.BindingFromContext(ctx); !ok {
		return nil, db.ErrMissingTenantContext
	}

	p, err := scanPackage(
		s.db.Statement(ctx).
			Select(packageColumns...).
			From("subscription_packages").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, notFound(err, "failed to get package")
	}

	return p, nil
}

func (s *Storage) ListPackages(ctx context.Context) ([]*types.SubscriptionPackage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPackages")
	defer span.End()

	if _, ok := db.BindingFromContext(ctx); !ok {
		return nil, db.ErrMissingTenantContext
	}

	packages, err := queryAll(ctx,
		s.db.Statement(ctx).
			Select(packageColumns...).
			From("subscription_packages").
			OrderBy("price_cents", "name"),
		scanPackage,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	return packages, nil
}

// UpdatePackage replaces every mutable field of the package. Changes apply to
// all tenants on the package at their next permission resolution.
func (s *Storage) UpdatePackage(ctx context.Context, p *types.SubscriptionPackage) (*types.SubscriptionPackage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdatePackage")
	defer span.End()

	if err := db.RequirePlatform(ctx); err != nil {
		return nil, err
	}

	updated, err := scanPackage(
		s.db.Statement(ctx).
			Update("subscription_packages").
			SetMap(map[string]any{
				"name":             p.Name,
				"features":         pq.Array(p.Features),
				"max_venues":       p.MaxVenues,
				"max_users":        p.MaxUsers,
				"price_cents":      p.PriceCents,
				"billing_interval": p.BillingInterval,
				"updated_at":       sq.Expr("now()"),
			}).
			Where(sq.Eq{"id": p.ID}).
			Suffix(returning(packageColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapPlatformWriteError(err, "failed to update package")
	}

	return updated, nil
}

func (s *Storage) DeletePackage(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePackage")
	defer span.End()

	if err := db.RequirePlatform(ctx); err != nil {
		return err
	}

	res, err := s.db.Statement(ctx).
		Delete("subscription_packages").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrPackageInUse
		}
		return wrapPlatformWriteError(err, "failed to delete package")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

func scanAuditEntry(row rowScanner) (*types.AdminAuditEntry, error) {
	e := new(types.AdminAuditEntry)
	if err := row.Scan(&e.ID, &e.ActingSuperAdminID, &e.TargetTenantID, &e.Action, &e.Reason, &e.CreatedAt); err != nil {
		return nil, err
	}
	return e, nil
}

// CreateAuditEntry appends to the admin audit log. It only succeeds inside an
// elevation transaction started for the acting super admin.
func (s *Storage) CreateAuditEntry(ctx context.Context, e *types.AdminAuditEntry) (*types.AdminAuditEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAuditEntry")
	defer span.End()

	b, ok := db.BindingFromContext(ctx)
	if !ok || !b.Elevated() || b.ElevatedBy != e.ActingSuperAdminID {
		return nil, fmt.Errorf("%w: audit entries are written by the elevation path only", db.ErrInvalidBinding)
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanAuditEntry(
		s.db.Statement(ctx).
			Insert("admin_audit_log").
			Columns("id", "acting_super_admin_id", "target_tenant_id", "action", "reason").
			Values(id, e.ActingSuperAdminID, e.TargetTenantID, e.Action, e.Reason).
			Suffix(returning(auditColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapPlatformWriteError(err, "failed to insert audit entry")
	}

	return created, nil
}

// ListAuditEntries lists the newest entries first, optionally for one tenant.
func (s *Storage) ListAuditEntries(ctx context.Context, tenantID string, page, size int64) ([]*types.AdminAuditEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAuditEntries")
	defer span.End()

	if err := db.RequirePlatform(ctx); err != nil {
		return nil, err
	}

	pageSize := db.PageSize(size)

	q := s.db.Statement(ctx).
		Select(auditColumns...).
		From("admin_audit_log").
		OrderBy("created_at DESC", "id DESC").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize))

	if tenantID != "" {
		q = q.Where(sq.Eq{"target_tenant_id": tenantID})
	}

	entries, err := queryAll(ctx, q, scanAuditEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	return entries, nil
}

// LookupIdentity reads a user's tenant binding through the identity lookup
// function, the one cross-tenant read path. It needs no bound context.
func (s *Storage) LookupIdentity(ctx context.Context, userID string) (*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LookupIdentity")
	defer span.End()

	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrNotFound
	}

	var (
		id           types.Identity
		tenantID     sql.NullString
		tenantStatus sql.NullString
	)

	err := s.db.Statement(ctx).
		Select().
		Column(sq.Expr("(tenancy.lookup_identity(?)).*", userID)).
		QueryRowContext(ctx).
		Scan(&id.UserID, &tenantID, &id.Role, &tenantStatus)
	if err != nil {
		return nil, notFound(err, "failed to look up identity")
	}

	if tenantID.Valid {
		id.TenantID = &tenantID.String
	}

	if tenantStatus.Valid {
		status := types.TenantStatus(tenantStatus.String)
		id.TenantStatus = &status
	}

	return &id, nil
}
