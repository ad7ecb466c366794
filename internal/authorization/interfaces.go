// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/permissions"
)

type AuthorizerInterface interface {
	Check(ctx context.Context, principal *types.Principal, set permissions.Set, p permissions.Permission) error
	RequireRole(ctx context.Context, principal *types.Principal, role types.Role, resource string) error
}
