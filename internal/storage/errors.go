// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	// ErrCrossTenantConstraint is returned when a tenant-scoped write references a
	// row of another tenant or collides with a per-tenant unique key.
	ErrCrossTenantConstraint = errors.New("cross tenant constraint violation")
	ErrPackageInUse          = errors.New("subscription package is referenced by tenants")
	ErrQuotaExceeded         = errors.New("subscription package limit reached")
	// ErrRowSecurity is returned when the database refused a row under row security.
	ErrRowSecurity     = errors.New("row security policy violation")
	ErrIsolationPolicy = errors.New("isolation policy check failed")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation       = "23505"
	pgErrCodeForeignKeyViolation   = "23503"
	pgErrCodeInsufficientPrivilege = "42501"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	return pgErrorCode(err) == pgErrCodeUniqueViolation
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgErrCodeForeignKeyViolation
}

// wrapTenantWriteError classifies a failed write on a tenant-scoped table.
func wrapTenantWriteError(err error, context string) error {
	switch pgErrorCode(err) {
	case pgErrCodeUniqueViolation:
		return fmt.Errorf("%s: %w: %w", context, ErrCrossTenantConstraint, ErrDuplicateKey)
	case pgErrCodeForeignKeyViolation:
		return fmt.Errorf("%s: %w: %w", context, ErrCrossTenantConstraint, ErrForeignKeyViolation)
	case pgErrCodeInsufficientPrivilege:
		return fmt.Errorf("%s: %w", context, ErrRowSecurity)
	}
	return fmt.Errorf("%s: %w", context, err)
}

// wrapPlatformWriteError classifies a failed write on a platform table.
func wrapPlatformWriteError(err error, context string) error {
	switch pgErrorCode(err) {
	case pgErrCodeUniqueViolation:
		return fmt.Errorf("%s: %w", context, ErrDuplicateKey)
	case pgErrCodeForeignKeyViolation:
		return fmt.Errorf("%s: %w", context, ErrForeignKeyViolation)
	case pgErrCodeInsufficientPrivilege:
		return fmt.Errorf("%s: %w", context, ErrRowSecurity)
	}
	return fmt.Errorf("%s: %w", context, err)
}
