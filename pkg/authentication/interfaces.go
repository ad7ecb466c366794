// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/venue-tenancy/internal/types"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken checks signature and expiry of a raw token and returns its claims
	VerifyToken(ctx context.Context, rawToken string) (*Claims, error)
}

// StorageInterface is the identity read model behind the resolver.
type StorageInterface interface {
	LookupIdentity(ctx context.Context, userID string) (*types.Identity, error)
}

type ResolverInterface interface {
	ResolvePrincipal(ctx context.Context, credential string) (*types.Principal, error)
}
