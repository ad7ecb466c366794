// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/pkg/metrics"
	"github.com/canonical/venue-tenancy/pkg/status"
	"github.com/canonical/venue-tenancy/pkg/tenant"
	"github.com/canonical/venue-tenancy/pkg/venue"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	// Dependencies are pinged by the readiness endpoint.
	Dependencies map[string]status.PingerInterface
}

func NewRouter(
	cfg RouterConfig,
	authenticator AuthenticatorInterface,
	sessions SessionInterface,
	tenants tenant.ServiceInterface,
	venues venue.ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(cfg.Dependencies, tracer, monitor, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(authenticator.Authenticate())

		(&meAPI{sessions: sessions, tracer: tracer, logger: logger}).RegisterEndpoints(r)
		tenant.NewAPI(tenants, logger).RegisterEndpoints(r)
		venue.NewAPI(venues, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
