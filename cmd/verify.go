// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring/prometheus"
	"github.com/canonical/venue-tenancy/internal/storage"
	"github.com/canonical/venue-tenancy/internal/tracing"
)

var verifyIsolationCmd = &cobra.Command{
	Use:   "verify-isolation",
	Short: "Check that row security is enabled and forced on every tenant table",
	Long: `Connect the way the server does, with the application role assumed, and
inspect the catalog. Exits non zero when any tenant table is unprotected or
the role can bypass row security.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := verifyIsolation(cmd.Context()); err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}

		cmd.Println("row security verified")
	},
}

func init() {
	rootCmd.AddCommand(verifyIsolationCmd)
}

func verifyIsolation(ctx context.Context) error {
	specs := loadSpecs()

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	tracer := tracing.NewNoopTracer()
	monitor := prometheus.NewMonitor("venue-tenancy", logger)

	dbClient, err := newDBClient(specs, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %w", err)
	}
	defer dbClient.Close()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	return storage.NewStorage(dbClient, tracer, monitor, logger).VerifyIsolationPolicies(ctx)
}
