// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/internal/types"
)

func newMockClient(t *testing.T, verifyHygiene bool) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	c := NewDBClientWithDB(
		sqlDB,
		Config{VerifyHygiene: verifyHygiene},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test"),
		logging.NewNoopLogger(),
	)

	return c, mock
}

func expectCleanHygiene(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(regexp.QuoteMeta(hygieneStatement)).
		WillReturnRows(sqlmock.NewRows([]string{"tenant", "role", "elevated_by"}).AddRow(nil, nil, nil))
}

func expectBind(mock sqlmock.Sqlmock, tenantID string, role types.Role, elevatedBy string) {
	mock.ExpectExec(regexp.QuoteMeta(bindStatement)).
		WithArgs(tenantID, string(role), elevatedBy).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestWithTenantContext_BindsAndCommits(t *testing.T) {
	c, mock := newMockClient(t, true)

	mock.ExpectBegin()
	expectCleanHygiene(mock)
	expectBind(mock, "tenant-a", types.RoleTenantAdmin, "")
	mock.ExpectQuery("SELECT id FROM venues").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("venue-1"))
	mock.ExpectCommit()

	err := c.WithTenantContext(context.Background(), "tenant-a", types.RoleTenantAdmin, func(ctx context.Context) error {
		b, ok := BindingFromContext(ctx)
		if !ok {
			t.Fatal("expected binding in context")
		}
		if b.TenantID != "tenant-a" || b.Role != types.RoleTenantAdmin || b.Elevated() {
			t.Errorf("unexpected binding %+v", b)
		}

		tenantID, err := RequireTenant(ctx)
		if err != nil || tenantID != "tenant-a" {
			t.Errorf("expected tenant-a, got %q (%v)", tenantID, err)
		}

		var id string
		return c.Statement(ctx).Select("id").From("venues").QueryRowContext(ctx).Scan(&id)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithTenantContext_RollsBackOnWorkError(t *testing.T) {
	c, mock := newMockClient(t, true)
	workErr := errors.New("work failed")

	mock.ExpectBegin()
	expectCleanHygiene(mock)
	expectBind(mock, "tenant-a", types.RoleTenantUser, "")
	mock.ExpectRollback()

	err := c.WithTenantContext(context.Background(), "tenant-a", types.RoleTenantUser, func(ctx context.Context) error {
		return workErr
	})
	if !errors.Is(err, workErr) {
		t.Fatalf("expected work error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithTenantContext_FailsClosedWithoutTenant(t *testing.T) {
	c, mock := newMockClient(t, true)
	called := false

	err := c.WithTenantContext(context.Background(), "", types.RoleTenantAdmin, func(ctx context.Context) error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrMissingTenantContext) {
		t.Fatalf("expected ErrMissingTenantContext, got %v", err)
	}
	if called {
		t.Error("work must not run without a tenant")
	}

	// no transaction may have been opened
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithTenantContext_RejectsSuperAdminRole(t *testing.T) {
	c, _ := newMockClient(t, true)

	err := c.WithTenantContext(context.Background(), "tenant-a", types.RoleSuperAdmin, func(ctx context.Context) error {
		return nil
	})
	if !errors.Is(err, ErrInvalidBinding) {
		t.Fatalf("expected ErrInvalidBinding, got %v", err)
	}
}

func TestWithTenantContext_RejectsNesting(t *testing.T) {
	c, mock := newMockClient(t, true)

	mock.ExpectBegin()
	expectCleanHygiene(mock)
	expectBind(mock, "tenant-a", types.RoleTenantAdmin, "")
	mock.ExpectRollback()

	err := c.WithTenantContext(context.Background(), "tenant-a", types.RoleTenantAdmin, func(ctx context.Context) error {
		return c.WithTenantContext(ctx, "tenant-b", types.RoleTenantAdmin, func(context.Context) error {
			t.Error("nested work must not run")
			return nil
		})
	})
	if !errors.Is(err, ErrNestedTenantContext) {
		t.Fatalf("expected ErrNestedTenantContext, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithTenantContext_DetectsResidualState(t *testing.T) {
	tests := []struct {
		name       string
		tenant     interface{}
		role       interface{}
		elevatedBy interface{}
	}{
		{name: "leftover tenant", tenant: "tenant-b", role: nil, elevatedBy: nil},
		{name: "leftover role", tenant: "", role: "tenant_user", elevatedBy: nil},
		{name: "leftover elevation", tenant: "", role: "", elevatedBy: "sam"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mock := newMockClient(t, true)

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(hygieneStatement)).
				WillReturnRows(sqlmock.NewRows([]string{"tenant", "role", "elevated_by"}).AddRow(tt.tenant, tt.role, tt.elevatedBy))
			mock.ExpectRollback()

			err := c.WithTenantContext(context.Background(), "tenant-a", types.RoleTenantAdmin, func(ctx context.Context) error {
				t.Error("work must not run on a dirty connection")
				return nil
			})
			if !errors.Is(err, ErrResidualTenantContext) {
				t.Fatalf("expected ErrResidualTenantContext, got %v", err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestWithTenantContext_EmptySettingsAreClean(t *testing.T) {
	c, mock := newMockClient(t, true)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(hygieneStatement)).
		WillReturnRows(sqlmock.NewRows([]string{"tenant", "role", "elevated_by"}).AddRow("", "", ""))
	expectBind(mock, "tenant-a", types.RoleTenantAdmin, "")
	mock.ExpectCommit()

	err := c.WithTenantContext(context.Background(), "tenant-a", types.RoleTenantAdmin, func(ctx context.Context) error {
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWithTenantContext_SkipsHygieneCheckWhenDisabled(t *testing.T) {
	c, mock := newMockClient(t, false)

	mock.ExpectBegin()
	expectBind(mock, "tenant-a", types.RoleTenantAdmin, "")
	mock.ExpectCommit()

	if err := c.WithTenantContext(context.Background(), "tenant-a", types.RoleTenantAdmin, func(ctx context.Context) error {
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithTenantContext_RollsBackOnPanic(t *testing.T) {
	c, mock := newMockClient(t, true)

	mock.ExpectBegin()
	expectCleanHygiene(mock)
	expectBind(mock, "tenant-a", types.RoleTenantAdmin, "")
	mock.ExpectRollback()

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic to propagate")
			}
		}()

		_ = c.WithTenantContext(context.Background(), "tenant-a", types.RoleTenantAdmin, func(ctx context.Context) error {
			panic("handler bug")
		})
	}()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithTenantContext_CancelledRequestNeverCommits(t *testing.T) {
	c, mock := newMockClient(t, true)

	mock.ExpectBegin()
	expectCleanHygiene(mock)
	expectBind(mock, "tenant-a", types.RoleTenantAdmin, "")
	mock.ExpectRollback()

	ctx, cancel := context.WithCancel(context.Background())

	err := c.WithTenantContext(ctx, "tenant-a", types.RoleTenantAdmin, func(ctx context.Context) error {
		cancel()
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWithPlatformContext(t *testing.T) {
	c, mock := newMockClient(t, true)

	mock.ExpectBegin()
	expectCleanHygiene(mock)
	expectBind(mock, "", types.RoleSuperAdmin, "")
	mock.ExpectCommit()

	err := c.WithPlatformContext(context.Background(), func(ctx context.Context) error {
		if err := RequirePlatform(ctx); err != nil {
			t.Errorf("expected platform binding, got %v", err)
		}
		if _, err := RequireTenant(ctx); !errors.Is(err, ErrMissingTenantContext) {
			t.Errorf("platform scope must not satisfy RequireTenant, got %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithElevatedContext_PreludeRunsBeforeTenantBinding(t *testing.T) {
	c, mock := newMockClient(t, true)
	var order []string

	mock.ExpectBegin()
	expectCleanHygiene(mock)
	expectBind(mock, "", types.RoleSuperAdmin, "sam")
	mock.ExpectExec("INSERT INTO admin_audit_log").WillReturnResult(sqlmock.NewResult(0, 1))
	expectBind(mock, "tenant-b", types.RoleTenantAdmin, "sam")
	mock.ExpectCommit()

	err := c.WithElevatedContext(context.Background(), "sam", "tenant-b",
		func(ctx context.Context) error {
			order = append(order, "prelude")

			b, _ := BindingFromContext(ctx)
			if b.TenantID != "" || b.Role != types.RoleSuperAdmin || b.ElevatedBy != "sam" {
				t.Errorf("unexpected prelude binding %+v", b)
			}

			_, err := c.Statement(ctx).Insert("admin_audit_log").Columns("id").Values("a-1").ExecContext(ctx)
			return err
		},
		func(ctx context.Context) error {
			order = append(order, "work")

			b, _ := BindingFromContext(ctx)
			if b.TenantID != "tenant-b" || b.Role != types.RoleTenantAdmin || !b.Elevated() {
				t.Errorf("unexpected elevated binding %+v", b)
			}
			return nil
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(order) != 2 || order[0] != "prelude" || order[1] != "work" {
		t.Errorf("unexpected order %v", order)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithElevatedContext_PreludeFailureStopsElevation(t *testing.T) {
	c, mock := newMockClient(t, true)
	auditErr := errors.New("audit insert failed")

	mock.ExpectBegin()
	expectCleanHygiene(mock)
	expectBind(mock, "", types.RoleSuperAdmin, "sam")
	mock.ExpectRollback()

	err := c.WithElevatedContext(context.Background(), "sam", "tenant-b",
		func(ctx context.Context) error { return auditErr },
		func(ctx context.Context) error {
			t.Error("elevated work must not run")
			return nil
		},
	)
	if !errors.Is(err, auditErr) {
		t.Fatalf("expected audit error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithElevatedContext_Validation(t *testing.T) {
	c, _ := newMockClient(t, true)
	noop := func(context.Context) error { return nil }

	if err := c.WithElevatedContext(context.Background(), "sam", "", noop, noop); !errors.Is(err, ErrMissingTenantContext) {
		t.Errorf("expected ErrMissingTenantContext, got %v", err)
	}
	if err := c.WithElevatedContext(context.Background(), "", "tenant-b", noop, noop); !errors.Is(err, ErrInvalidBinding) {
		t.Errorf("expected ErrInvalidBinding, got %v", err)
	}
	if err := c.WithElevatedContext(context.Background(), "sam", "tenant-b", nil, noop); !errors.Is(err, ErrInvalidBinding) {
		t.Errorf("expected ErrInvalidBinding, got %v", err)
	}
}

func TestWithTenantResult(t *testing.T) {
	c, mock := newMockClient(t, false)

	mock.ExpectBegin()
	expectBind(mock, "tenant-a", types.RoleTenantUser, "")
	mock.ExpectCommit()

	n, err := WithTenantResult(context.Background(), c, "tenant-a", types.RoleTenantUser, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	if err != nil || n != 42 {
		t.Fatalf("expected 42, got %d (%v)", n, err)
	}
}

func TestRequireTenant_Unbound(t *testing.T) {
	if _, err := RequireTenant(context.Background()); !errors.Is(err, ErrMissingTenantContext) {
		t.Errorf("expected ErrMissingTenantContext, got %v", err)
	}
	if err := RequirePlatform(context.Background()); !errors.Is(err, ErrInvalidBinding) {
		t.Errorf("expected ErrInvalidBinding, got %v", err)
	}
}

func TestPagination(t *testing.T) {
	if PageSize(0) != defaultPageSize {
		t.Errorf("expected default page size")
	}
	if Offset(3, 10) != 20 {
		t.Errorf("expected offset 20, got %d", Offset(3, 10))
	}
	if Offset(-1, 10) != 0 {
		t.Errorf("expected offset 0, got %d", Offset(-1, 10))
	}
	if PageSize(math.MaxInt64) != MaxPageSize {
		t.Errorf("expected page size capped at %d, got %d", MaxPageSize, PageSize(math.MaxInt64))
	}
	if got := Offset(math.MaxInt64, PageSize(math.MaxInt64)); got != math.MaxInt64 {
		t.Errorf("expected offset clamped to %d, got %d", uint64(math.MaxInt64), got)
	}
}
