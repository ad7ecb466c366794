// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"errors"
)

var (
	// ErrMissingTenantContext is returned whenever tenant scoping is required
	// and no tenant is bound. It is never downgraded to an unscoped query.
	ErrMissingTenantContext = errors.New("missing tenant context")
	// ErrNestedTenantContext is returned when binding is attempted on a context
	// that already carries a bound transaction.
	ErrNestedTenantContext = errors.New("transaction already bound to a tenant context")
	// ErrResidualTenantContext is returned when a freshly started transaction
	// observes tenancy settings left on the physical connection.
	ErrResidualTenantContext = errors.New("connection carries residual tenant context")
	// ErrInvalidBinding is returned for role/tenant combinations the binder refuses.
	ErrInvalidBinding = errors.New("invalid tenant binding")
)
