// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/authentication"
)

var (
	clientID     string
	clientSecret string
	tokenURL     string
	issuerURL    string
	scopes       []string

	subject   string
	tenantID  string
	role      string
	ttl       time.Duration
	jwtSecret string
	jwtIssuer string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token",
	Long: `Get an access token.

With --subject the token is signed locally with the shared HS256 secret, the
way the server verifies it in jwt mode. Otherwise the Client Credentials flow
runs against the OIDC provider.`,
	Run: func(cmd *cobra.Command, args []string) {
		if subject != "" {
			token, err := issueToken()
			if err != nil {
				log.Fatalf("Failed to issue token: %v", err)
			}

			fmt.Println(token)
			return
		}

		ctx := context.Background()

		if clientID == "" || clientSecret == "" {
			log.Fatal("--client-id and --client-secret are required without --subject")
		}

		if tokenURL == "" {
			if issuerURL == "" {
				log.Fatal("Either --token-url or --issuer-url must be provided")
			}

			// Discovery endpoint
			provider, err := oidc.NewProvider(ctx, issuerURL)
			if err != nil {
				log.Fatalf("Failed to create OIDC provider from issuer: %v", err)
			}
			tokenURL = provider.Endpoint().TokenURL
		}

		config := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			Scopes:       scopes,
		}

		token, err := config.Token(ctx)
		if err != nil {
			log.Fatalf("Failed to get token: %v", err)
		}

		fmt.Println(token.AccessToken)
	},
}

func issueToken() (string, error) {
	r := types.Role(role)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", role)
	}

	if r.TenantScoped() != (tenantID != "") {
		return "", fmt.Errorf("role %s and tenant id %q do not match", r, tenantID)
	}

	issuer, err := authentication.NewHMACVerifier(
		jwtSecret,
		jwtIssuer,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("venue-tenancy"),
		logging.NewNoopLogger(),
	)
	if err != nil {
		return "", err
	}

	return issuer.Issue(authentication.Claims{Subject: subject, TenantID: tenantID, Role: r}, ttl)
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&clientID, "client-id", "", "Client ID")
	tokenCmd.Flags().StringVar(&clientSecret, "client-secret", "", "Client Secret")
	tokenCmd.Flags().StringVar(&tokenURL, "token-url", "", "Token URL")
	tokenCmd.Flags().StringVar(&issuerURL, "issuer-url", "", "Issuer URL (for OIDC discovery)")
	tokenCmd.Flags().StringSliceVar(&scopes, "scopes", []string{}, "Scopes (comma-separated)")

	tokenCmd.Flags().StringVar(&subject, "subject", "", "User id to sign a platform token for")
	tokenCmd.Flags().StringVar(&tenantID, "tenant-id", "", "Tenant of the user, empty for super admins")
	tokenCmd.Flags().StringVar(&role, "role", string(types.RoleTenantUser), "tenant_user, tenant_admin or super_admin")
	tokenCmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	tokenCmd.Flags().StringVar(&jwtSecret, "secret", os.Getenv("JWT_SECRET"), "HS256 secret, defaults to $JWT_SECRET")
	tokenCmd.Flags().StringVar(&jwtIssuer, "issuer", "venue-tenancy", "Token issuer")
}
