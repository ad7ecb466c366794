// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime        *prometheus.HistogramVec
	dependencyAvailable *prometheus.GaugeVec
	elevations          *prometheus.CounterVec
	authzDenials        *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailable == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencyAvailable.With(tags).Set(value)

	return nil
}

func (m *Monitor) IncElevations(tags map[string]string) error {
	if m.elevations == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.elevations.With(tags).Inc()

	return nil
}

func (m *Monitor) IncAuthorizationDenials(tags map[string]string) error {
	if m.authzDenials == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.authzDenials.With(tags).Inc()

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	m.register(m.responseTime)
}

func (m *Monitor) registerGauges() {
	m.dependencyAvailable = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	m.register(m.dependencyAvailable)
}

func (m *Monitor) registerCounters() {
	m.elevations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "tenant_elevations_total",
			Help:        "number of audited super admin tenant assumptions",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"outcome"},
	)

	m.authzDenials = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "authorization_denials_total",
			Help:        "number of operations refused for a missing permission",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"permission"},
	)

	m.register(m.elevations)
	m.register(m.authzDenials)
}

func (m *Monitor) register(c prometheus.Collector) {
	if err := prometheus.Register(c); err != nil {
		m.logger.Errorf("metric registration failed: %v", err)
	}
}

// NewMonitor creates the service collectors and registers them on the default registry.
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
