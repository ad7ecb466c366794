// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// DBAppRole is assumed with SET ROLE on every pooled connection.
	// It must not own the tenant tables and must not have BYPASSRLS.
	DBAppRole       string        `envconfig:"db_app_role" default:"venue_app"`
	DBVerifyHygiene bool          `envconfig:"db_verify_hygiene" default:"true"`
	TxTimeout       time.Duration `envconfig:"tx_timeout" default:"30s"`

	VerifyIsolationOnStart bool `envconfig:"verify_isolation_on_start" default:"true"`

	AuthenticationMode string `envconfig:"authentication_mode" default:"jwt"`
	JWTSecret          string `envconfig:"jwt_secret"`
	JWTIssuer          string `envconfig:"jwt_issuer" default:"venue-tenancy"`
	OIDCIssuer         string `envconfig:"oidc_issuer"`
	OIDCJWKSURL        string `envconfig:"oidc_jwks_url"`
	OIDCRequiredScope  string `envconfig:"oidc_required_scope"`
}
