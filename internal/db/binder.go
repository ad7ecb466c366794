// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/canonical/venue-tenancy/internal/types"
)

// Session settings read by the row security policies. Only this file writes them.
const (
	settingTenant     = "app.current_tenant"
	settingRole       = "app.user_role"
	settingElevatedBy = "app.elevated_by"
)

const (
	bindStatement = "SELECT set_config('" + settingTenant + "', $1, true), " +
		"set_config('" + settingRole + "', $2, true), " +
		"set_config('" + settingElevatedBy + "', $3, true)"

	hygieneStatement = "SELECT current_setting('" + settingTenant + "', true), " +
		"current_setting('" + settingRole + "', true), " +
		"current_setting('" + settingElevatedBy + "', true)"
)

type bindingContextKey struct{}

// Binding is the tenancy state a transaction is bound to.
type Binding struct {
	TenantID   string
	Role       types.Role
	ElevatedBy string
}

// Elevated reports whether the binding was produced by a tenant assumption.
func (b Binding) Elevated() bool {
	return b.ElevatedBy != ""
}

type bound struct {
	Binding

	tx *sql.Tx
}

func boundFromContext(ctx context.Context) *bound {
	if b, ok := ctx.Value(bindingContextKey{}).(*bound); ok {
		return b
	}
	return nil
}

func contextWithBound(ctx context.Context, b *bound) context.Context {
	return context.WithValue(ctx, bindingContextKey{}, b)
}

// BindingFromContext returns the binding of the transaction carried by ctx.
func BindingFromContext(ctx context.Context) (Binding, bool) {
	if b := boundFromContext(ctx); b != nil {
		return b.Binding, true
	}
	return Binding{}, false
}

// RequireTenant returns the tenant the context is bound to. Platform scope and
// unbound contexts fail closed with ErrMissingTenantContext.
func RequireTenant(ctx context.Context) (string, error) {
	b := boundFromContext(ctx)
	if b == nil || b.TenantID == "" {
		return "", ErrMissingTenantContext
	}
	return b.TenantID, nil
}

// RequirePlatform fails unless the context is bound to the platform scope.
func RequirePlatform(ctx context.Context) error {
	b := boundFromContext(ctx)
	if b == nil || b.Role != types.RoleSuperAdmin || b.TenantID != "" {
		return ErrInvalidBinding
	}
	return nil
}

// WithTenantContext runs fn inside a transaction bound to tenantID and role.
// The transaction commits when fn returns nil and rolls back otherwise.
func (d *DBClient) WithTenantContext(ctx context.Context, tenantID string, role types.Role, fn func(context.Context) error) error {
	if tenantID == "" {
		return ErrMissingTenantContext
	}

	if !role.TenantScoped() {
		return fmt.Errorf("%w: role %q cannot be bound to a tenant", ErrInvalidBinding, role)
	}

	return d.bind(ctx, Binding{TenantID: tenantID, Role: role}, nil, fn)
}

// WithPlatformContext runs fn bound to the super admin platform scope, which
// carries no tenant and therefore sees no tenant-scoped rows.
func (d *DBClient) WithPlatformContext(ctx context.Context, fn func(context.Context) error) error {
	return d.bind(ctx, Binding{Role: types.RoleSuperAdmin}, nil, fn)
}

// WithElevatedContext is the override path used by tenant assumption.
// prelude runs first in platform scope with the actor recorded, then the same
// transaction is rebound to tenantID as tenant_admin and fn runs.
// A prelude error aborts the transaction before fn is reached.
func (d *DBClient) WithElevatedContext(ctx context.Context, actorID, tenantID string, prelude, fn func(context.Context) error) error {
	if tenantID == "" {
		return ErrMissingTenantContext
	}

	if actorID == "" || prelude == nil {
		return fmt.Errorf("%w: elevation requires an actor and a prelude", ErrInvalidBinding)
	}

	return d.bind(ctx, Binding{TenantID: tenantID, Role: types.RoleTenantAdmin, ElevatedBy: actorID}, prelude, fn)
}

func (d *DBClient) bind(ctx context.Context, b Binding, prelude, fn func(context.Context) error) error {
	if boundFromContext(ctx) != nil {
		return ErrNestedTenantContext
	}

	ctx, span := d.tracer.Start(ctx, "db.DBClient.bind")
	defer span.End()

	txCtx, cancel := context.WithTimeout(ctx, d.txTimeout)
	defer cancel()

	tx, err := d.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: false})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	// runs on error returns and while unwinding a panic from fn
	defer func() {
		if committed {
			return
		}
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			d.logger.Errorf("failed to rollback transaction: %v", err)
		}
	}()

	if d.verifyHygiene {
		if err := d.checkHygiene(txCtx, tx); err != nil {
			return err
		}
	}

	if prelude != nil {
		stage := Binding{Role: types.RoleSuperAdmin, ElevatedBy: b.ElevatedBy}
		if err := d.apply(txCtx, tx, stage); err != nil {
			return err
		}

		if err := prelude(contextWithBound(txCtx, &bound{Binding: stage, tx: tx})); err != nil {
			return err
		}
	}

	if err := d.apply(txCtx, tx, b); err != nil {
		return err
	}

	if err := fn(contextWithBound(txCtx, &bound{Binding: b, tx: tx})); err != nil {
		return err
	}

	// a cancelled request must never commit partial work
	if err := txCtx.Err(); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true

	return nil
}

func (d *DBClient) apply(ctx context.Context, tx *sql.Tx, b Binding) error {
	if _, err := tx.ExecContext(ctx, bindStatement, b.TenantID, string(b.Role), b.ElevatedBy); err != nil {
		return fmt.Errorf("failed to bind tenant context: %w", err)
	}
	return nil
}

// checkHygiene fails when the transaction starts with tenancy settings already set,
// which only happens if something wrote them at session level.
func (d *DBClient) checkHygiene(ctx context.Context, tx *sql.Tx) error {
	var tenant, role, elevatedBy sql.NullString

	if err := tx.QueryRowContext(ctx, hygieneStatement).Scan(&tenant, &role, &elevatedBy); err != nil {
		return fmt.Errorf("failed to read connection state: %w", err)
	}

	for _, v := range []sql.NullString{tenant, role, elevatedBy} {
		if v.Valid && v.String != "" {
			d.logger.Security().CrossTenantViolation("", tenant.String, "residual session state on pooled connection")
			return ErrResidualTenantContext
		}
	}

	return nil
}

// WithTenantResult is WithTenantContext for work producing a value.
func WithTenantResult[T any](ctx context.Context, binder TenantBinderInterface, tenantID string, role types.Role, work func(context.Context) (T, error)) (T, error) {
	var result T

	err := binder.WithTenantContext(ctx, tenantID, role, func(ctx context.Context) error {
		var err error
		result, err = work(ctx)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}
