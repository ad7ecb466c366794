// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/venue-tenancy/internal/http/types"
	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/internal/version"
)

const pingTimeout = 2 * time.Second

type Status struct {
	Version      string          `json:"version"`
	Dependencies map[string]bool `json:"dependencies"`
}

type API struct {
	dependencies map[string]PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/status/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, a.logger, http.StatusOK, Status{Version: version.Version})
}

// ready pings every dependency and publishes the result as a gauge. Any
// unavailable dependency turns the answer into a 503.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	st := Status{Version: version.Version, Dependencies: make(map[string]bool, len(a.dependencies))}
	code := http.StatusOK

	for name, dep := range a.dependencies {
		ok := a.ping(ctx, name, dep)
		st.Dependencies[name] = ok

		if !ok {
			code = http.StatusServiceUnavailable
		}
	}

	httptypes.WriteJSON(w, a.logger, code, st)
}

func (a *API) ping(ctx context.Context, name string, dep PingerInterface) bool {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	available := 1.0
	err := dep.Ping(ctx)
	if err != nil {
		a.logger.Errorf("dependency %s unavailable: %v", name, err)
		available = 0
	}

	if merr := a.monitor.SetDependencyAvailability(map[string]string{"component": name}, available); merr != nil {
		a.logger.Debugf("failed to record availability of %s: %v", name, merr)
	}

	return err == nil
}

func NewAPI(dependencies map[string]PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		dependencies: dependencies,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}
