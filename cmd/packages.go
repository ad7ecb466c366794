// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/tenant"
)

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Manage subscription packages",
}

var listPackagesCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscription packages",
	RunE: func(cmd *cobra.Command, args []string) error {
		var packages []*types.SubscriptionPackage
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, pageQuery("/api/v0/packages"), nil, &packages); err != nil {
			return fmt.Errorf("failed to list packages: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tFEATURES\tMAX_VENUES\tMAX_USERS\tPRICE")
		for _, p := range packages {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d/%s\n", p.ID, p.Name, strings.Join(p.Features, ","), p.MaxVenues, p.MaxUsers, p.PriceCents, p.BillingInterval)
		}
		w.Flush()
		return nil
	},
}

var packageRequest tenant.PackageRequest

func savePackage(cmd *cobra.Command, method, path string) error {
	p := new(types.SubscriptionPackage)
	if err := newAPIClient().do(cmd.Context(), method, path, &packageRequest, p); err != nil {
		return err
	}

	fmt.Printf("Package saved: %s (ID: %s)\n", p.Name, p.ID)
	return nil
}

var createPackageCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a subscription package",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		packageRequest.Name = args[0]

		if err := savePackage(cmd, http.MethodPost, "/api/v0/packages"); err != nil {
			return fmt.Errorf("failed to create package: %w", err)
		}
		return nil
	},
}

var updatePackageCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Replace a subscription package",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		packageRequest.Name = args[1]

		if err := savePackage(cmd, http.MethodPut, "/api/v0/packages/"+url.PathEscape(args[0])); err != nil {
			return fmt.Errorf("failed to update package: %w", err)
		}
		return nil
	},
}

var deletePackageCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a subscription package no tenant uses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient().do(cmd.Context(), http.MethodDelete, "/api/v0/packages/"+url.PathEscape(args[0]), nil, nil); err != nil {
			return fmt.Errorf("failed to delete package: %w", err)
		}

		fmt.Printf("Package deleted: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packagesCmd)
	packagesCmd.AddCommand(listPackagesCmd)
	packagesCmd.AddCommand(createPackageCmd)
	packagesCmd.AddCommand(updatePackageCmd)
	packagesCmd.AddCommand(deletePackageCmd)

	for _, c := range []*cobra.Command{createPackageCmd, updatePackageCmd} {
		c.Flags().StringSliceVar(&packageRequest.Features, "features", nil, "Comma-separated features")
		c.Flags().IntVar(&packageRequest.MaxVenues, "max-venues", 0, "Venue quota, 0 is unlimited")
		c.Flags().IntVar(&packageRequest.MaxUsers, "max-users", 0, "User quota, 0 is unlimited")
		c.Flags().Int64Var(&packageRequest.PriceCents, "price-cents", 0, "Price in cents")
		c.Flags().StringVar(&packageRequest.BillingInterval, "billing-interval", "monthly", "monthly or yearly")
	}

	addPageFlags(listPackagesCmd)
}
