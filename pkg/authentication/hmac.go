// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/internal/types"
)

const leeway = 30 * time.Second

// Claims is what a verified token asserts about its bearer. The resolver
// checks every field against the stored identity.
type Claims struct {
	Subject  string
	TenantID string
	Role     types.Role
}

// TokenClaims is the platform token payload.
type TokenClaims struct {
	TenantID string `json:"tenant_id,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// HMACVerifier verifies HS256 platform tokens.
type HMACVerifier struct {
	secret []byte
	issuer string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *HMACVerifier) VerifyToken(ctx context.Context, rawToken string) (*Claims, error) {
	_, span := v.tracer.Start(ctx, "authentication.HMACVerifier.VerifyToken")
	defer span.End()

	claims := new(TokenClaims)

	_, err := jwt.ParseWithClaims(
		rawToken,
		claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
	)
	if err != nil {
		v.logger.Debugf("HMAC token verification failed: %v", err)
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return &Claims{
		Subject:  claims.Subject,
		TenantID: claims.TenantID,
		Role:     types.Role(claims.Role),
	}, nil
}

// Issue signs a token for the given claims, used by the token command and tests.
func (v *HMACVerifier) Issue(c Claims, ttl time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		TenantID: c.TenantID,
		Role:     string(c.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.issuer,
			Subject:   c.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	})

	return token.SignedString(v.secret)
}

func NewHMACVerifier(secret, issuer string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*HMACVerifier, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("JWT secret must be at least 32 bytes")
	}

	return &HMACVerifier{
		secret:  []byte(secret),
		issuer:  issuer,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}
