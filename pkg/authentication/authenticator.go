// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
	"github.com/canonical/venue-tenancy/internal/tracing"
)

const (
	ModeJWT  = "jwt"
	ModeOIDC = "oidc"
	ModeNoop = "noop"
)

type VerifierConfig struct {
	Mode string

	JWTSecret string
	JWTIssuer string

	OIDCIssuer    string
	OIDCJWKSURL   string
	RequiredScope string
}

// NewVerifier builds the token verifier for the configured authentication mode.
func NewVerifier(
	ctx context.Context,
	cfg VerifierConfig,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	switch cfg.Mode {
	case ModeJWT:
		v, err := NewHMACVerifier(cfg.JWTSecret, cfg.JWTIssuer, tracer, monitor, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("HS256 platform token authentication is enabled")
		return v, nil
	case ModeOIDC:
		if cfg.OIDCIssuer == "" {
			return nil, fmt.Errorf("issuer is required for OIDC authentication")
		}

		if cfg.OIDCJWKSURL != "" {
			logger.Infof("Using manual JWKS URL: %s", cfg.OIDCJWKSURL)
			return NewJWTVerifierDirect(NewRemoteKeySetVerifier(ctx, cfg.OIDCIssuer, cfg.OIDCJWKSURL), cfg.RequiredScope, tracer, monitor, logger), nil
		}

		logger.Infof("Using OIDC discovery for issuer: %s", cfg.OIDCIssuer)
		provider, err := NewProvider(ctx, cfg.OIDCIssuer)
		if err != nil {
			return nil, err
		}
		return NewJWTVerifier(provider, cfg.RequiredScope, tracer, monitor, logger), nil
	case ModeNoop:
		logger.Warn("authentication is disabled, tokens are trusted as user ids")
		return NewNoopVerifier(), nil
	}

	return nil, fmt.Errorf("unknown authentication mode %q", cfg.Mode)
}
