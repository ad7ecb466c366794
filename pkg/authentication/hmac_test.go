// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/internal/types"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	testIssuer = "venue-tenancy-test"
)

func newTestHMACVerifier(t *testing.T, secret string) *HMACVerifier {
	t.Helper()

	v, err := NewHMACVerifier(secret, testIssuer, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	require.NoError(t, err)

	return v
}

func signRaw(t *testing.T, method jwt.SigningMethod, key any, claims TokenClaims) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return raw
}

func TestHMACVerifier_RoundTrip(t *testing.T) {
	v := newTestHMACVerifier(t, testSecret)

	raw, err := v.Issue(Claims{Subject: "user-1", TenantID: "tenant-a", Role: types.RoleTenantAdmin}, time.Hour)
	require.NoError(t, err)

	claims, err := v.VerifyToken(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, &Claims{Subject: "user-1", TenantID: "tenant-a", Role: types.RoleTenantAdmin}, claims)
}

func TestHMACVerifier_Rejects(t *testing.T) {
	now := time.Now()
	valid := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	tests := []struct {
		name      string
		token     func(t *testing.T) string
		expectErr error
	}{
		{
			name:      "garbage",
			token:     func(t *testing.T) string { return "not-a-jwt" },
			expectErr: ErrInvalidToken,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				c := valid
				c.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Hour))
				return signRaw(t, jwt.SigningMethodHS256, []byte(testSecret), TokenClaims{RegisteredClaims: c})
			},
			expectErr: ErrTokenExpired,
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				c := valid
				c.ExpiresAt = nil
				return signRaw(t, jwt.SigningMethodHS256, []byte(testSecret), TokenClaims{RegisteredClaims: c})
			},
			expectErr: ErrInvalidToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signRaw(t, jwt.SigningMethodHS256, []byte("another-secret-another-secret-xx"), TokenClaims{RegisteredClaims: valid})
			},
			expectErr: ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				c := valid
				c.Issuer = "someone-else"
				return signRaw(t, jwt.SigningMethodHS256, []byte(testSecret), TokenClaims{RegisteredClaims: c})
			},
			expectErr: ErrInvalidToken,
		},
		{
			name: "unsigned",
			token: func(t *testing.T) string {
				return signRaw(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, TokenClaims{RegisteredClaims: valid})
			},
			expectErr: ErrInvalidToken,
		},
		{
			name: "HS512 is not accepted",
			token: func(t *testing.T) string {
				return signRaw(t, jwt.SigningMethodHS512, []byte(testSecret), TokenClaims{RegisteredClaims: valid})
			},
			expectErr: ErrInvalidToken,
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				c := valid
				c.Subject = ""
				return signRaw(t, jwt.SigningMethodHS256, []byte(testSecret), TokenClaims{RegisteredClaims: c})
			},
			expectErr: ErrInvalidToken,
		},
	}

	v := newTestHMACVerifier(t, testSecret)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			claims, err := v.VerifyToken(context.Background(), test.token(t))

			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, test.expectErr), "expected %v, got %v", test.expectErr, err)
		})
	}
}

func TestNewHMACVerifier_ShortSecret(t *testing.T) {
	_, err := NewHMACVerifier("short", testIssuer, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	assert.Error(t, err)
}

func TestNoopVerifier(t *testing.T) {
	v := NewNoopVerifier()

	claims, err := v.VerifyToken(context.Background(), "user-1:tenant-a")
	require.NoError(t, err)
	assert.Equal(t, &Claims{Subject: "user-1", TenantID: "tenant-a"}, claims)

	claims, err = v.VerifyToken(context.Background(), "sam")
	require.NoError(t, err)
	assert.Equal(t, &Claims{Subject: "sam"}, claims)

	_, err = v.VerifyToken(context.Background(), ":tenant-a")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewVerifier_Modes(t *testing.T) {
	tracer, monitor, logger := tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()

	v, err := NewVerifier(context.Background(), VerifierConfig{Mode: ModeJWT, JWTSecret: testSecret, JWTIssuer: testIssuer}, tracer, monitor, logger)
	require.NoError(t, err)
	assert.IsType(t, &HMACVerifier{}, v)

	v, err = NewVerifier(context.Background(), VerifierConfig{Mode: ModeNoop}, tracer, monitor, logger)
	require.NoError(t, err)
	assert.IsType(t, &NoopVerifier{}, v)

	_, err = NewVerifier(context.Background(), VerifierConfig{Mode: ModeOIDC}, tracer, monitor, logger)
	assert.Error(t, err)

	_, err = NewVerifier(context.Background(), VerifierConfig{Mode: "basic"}, tracer, monitor, logger)
	assert.Error(t, err)
}
