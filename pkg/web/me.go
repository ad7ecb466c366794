// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/venue-tenancy/internal/http/types"
	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/authentication"
	"github.com/canonical/venue-tenancy/pkg/session"
)

// Me is the caller as the platform sees it for this request.
type Me struct {
	UserID      string     `json:"user_id"`
	TenantID    string     `json:"tenant_id,omitempty"`
	Role        types.Role `json:"role"`
	Permissions []string   `json:"permissions"`
	Elevated    bool       `json:"elevated"`
}

type meAPI struct {
	sessions SessionInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *meAPI) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/me", a.me)
}

// me answers with the effective permissions of the session the request
// would run in. A super admin without an assumption gets the platform set.
func (a *meAPI) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "web.meAPI.me")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		httptypes.WriteError(w, a.logger, authentication.ErrAuthentication)
		return
	}

	var me *Me

	work := func(_ context.Context, sess *session.Session) error {
		me = &Me{
			UserID:      sess.Principal.UserID,
			TenantID:    sess.Principal.TenantID,
			Role:        sess.Principal.Role,
			Permissions: sess.Permissions.Strings(),
			Elevated:    sess.Elevated(),
		}
		return nil
	}

	var err error

	assumption := session.AssumptionFromRequest(r)
	if principal.Role == types.RoleSuperAdmin && assumption == nil {
		err = a.sessions.RunPlatform(ctx, principal, work)
	} else {
		err = a.sessions.Run(ctx, principal, assumption, work)
	}

	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, me, nil)
}
