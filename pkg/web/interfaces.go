// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"net/http"

	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/session"
)

type AuthenticatorInterface interface {
	Authenticate() func(http.Handler) http.Handler
}

type SessionInterface interface {
	Run(ctx context.Context, principal *types.Principal, assumption *session.Assumption, work func(context.Context, *session.Session) error) error
	RunPlatform(ctx context.Context, principal *types.Principal, work func(context.Context, *session.Session) error) error
}
