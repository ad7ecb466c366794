// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	httpEndpoint string
	accessToken  string
	assumeTenant string
	assumeReason string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "venue-tenancy",
	Short: "Venue platform tenancy service",
	Long:  `Venue platform tenancy service and CLI for managing tenants, packages and users.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpEndpoint, "http-endpoint", "http://localhost:8080", "HTTP server endpoint")
	rootCmd.PersistentFlags().StringVar(&accessToken, "token", os.Getenv("VENUE_TOKEN"), "Bearer token, defaults to $VENUE_TOKEN")
	rootCmd.PersistentFlags().StringVar(&assumeTenant, "assume-tenant", "", "Tenant to assume, super admins only")
	rootCmd.PersistentFlags().StringVar(&assumeReason, "reason", "", "Reason recorded in the audit log for elevated actions")
}
