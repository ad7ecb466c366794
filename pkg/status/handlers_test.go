// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/venue-tenancy/internal/version"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_status.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestAPI_Alive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux := chi.NewMux()
	NewAPI(nil, NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl)).RegisterEndpoints(mux)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var st Status
	if err := json.NewDecoder(rr.Body).Decode(&st); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if st.Version != version.Version {
		t.Errorf("expected version %s, got %s", version.Version, st.Version)
	}
}

func TestAPI_Ready(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		availability   float64
		expectedStatus int
	}{
		{
			name:           "database reachable",
			availability:   1,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "database down",
			pingErr:        errors.New("connection refused"),
			availability:   0,
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pinger := NewMockPingerInterface(ctrl)
			tracer := NewMockTracingInterface(ctrl)
			monitor := NewMockMonitorInterface(ctrl)
			logger := NewMockLoggerInterface(ctrl)

			tracer.EXPECT().Start(gomock.Any(), "status.API.ready").Return(context.Background(), trace.SpanFromContext(context.Background()))
			pinger.EXPECT().Ping(gomock.Any()).Return(test.pingErr)
			monitor.EXPECT().SetDependencyAvailability(map[string]string{"component": "database"}, test.availability).Return(nil)

			if test.pingErr != nil {
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			}

			mux := chi.NewMux()
			NewAPI(map[string]PingerInterface{"database": pinger}, tracer, monitor, logger).RegisterEndpoints(mux)

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/status/ready", nil))

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}

			var st Status
			if err := json.NewDecoder(rr.Body).Decode(&st); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if st.Dependencies["database"] != (test.pingErr == nil) {
				t.Errorf("unexpected dependency report %v", st.Dependencies)
			}
		})
	}
}
