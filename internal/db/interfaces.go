// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/venue-tenancy/internal/types"
)

type DBClientInterface interface {
	Statement(context.Context) sq.StatementBuilderType
	WithTenantContext(context.Context, string, types.Role, func(context.Context) error) error
	WithPlatformContext(context.Context, func(context.Context) error) error
	WithElevatedContext(context.Context, string, string, func(context.Context) error, func(context.Context) error) error
	Ping(context.Context) error
	Close()
}

// TenantBinderInterface opens transactions bound to a single tenant.
type TenantBinderInterface interface {
	WithTenantContext(context.Context, string, types.Role, func(context.Context) error) error
}

// BinderInterface is the subset of the client that opens bound transactions.
type BinderInterface interface {
	TenantBinderInterface
	WithPlatformContext(context.Context, func(context.Context) error) error
	WithElevatedContext(context.Context, string, string, func(context.Context) error, func(context.Context) error) error
}

type TxInterface interface {
	Commit() error
	Rollback() error
	sq.BaseRunner
}
