// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/elevation"
	"github.com/canonical/venue-tenancy/pkg/tenant"
)

var (
	listPage int64
	listSize int64
)

func pageQuery(path string) string {
	q := url.Values{}
	if listPage > 0 {
		q.Set("page", strconv.FormatInt(listPage, 10))
	}
	if listSize > 0 {
		q.Set("size", strconv.FormatInt(listSize, 10))
	}

	if len(q) == 0 {
		return path
	}

	return path + "?" + q.Encode()
}

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&listPage, "page", 0, "Page number, starting at 1")
	cmd.Flags().Int64Var(&listSize, "size", 0, "Page size")
}

func tenantPath(id string, rest ...string) string {
	return "/api/v0/tenants/" + url.PathEscape(id) + strings.Join(rest, "")
}

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var provision elevation.ProvisionRequest

var createTenantCmd = &cobra.Command{
	Use:   "create [name] [slug]",
	Short: "Provision a tenant with its first admin",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		provision.Name = args[0]
		provision.Slug = args[1]
		provision.Reason = assumeReason

		out := new(elevation.Provisioned)
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/api/v0/tenants", &provision, out); err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		fmt.Printf("Tenant created: %s (ID: %s)\n", out.Tenant.Name, out.Tenant.ID)
		fmt.Printf("Admin: %s (ID: %s)\n", out.Admin.Email, out.Admin.ID)
		return nil
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenants",
	RunE: func(cmd *cobra.Command, args []string) error {
		var tenants []*types.Tenant
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, pageQuery("/api/v0/tenants"), nil, &tenants); err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSLUG\tSTATUS\tCREATED_AT")
		for _, t := range tenants {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Slug, t.Status, t.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

var getTenantCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := new(types.Tenant)
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, tenantPath(args[0]), nil, t); err != nil {
			return fmt.Errorf("failed to get tenant: %w", err)
		}

		packageID := "-"
		if t.PackageID != nil {
			packageID = *t.PackageID
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "ID\t%s\n", t.ID)
		fmt.Fprintf(w, "NAME\t%s\n", t.Name)
		fmt.Fprintf(w, "SLUG\t%s\n", t.Slug)
		fmt.Fprintf(w, "STATUS\t%s\n", t.Status)
		fmt.Fprintf(w, "PACKAGE\t%s\n", packageID)
		fmt.Fprintf(w, "UPDATED_AT\t%s\n", t.UpdatedAt)
		w.Flush()
		return nil
	},
}

var tenantStatusCmd = &cobra.Command{
	Use:       "status [id] [active|suspended|cancelled]",
	Short:     "Change the status of a tenant",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{string(types.TenantStatusActive), string(types.TenantStatusSuspended), string(types.TenantStatusCancelled)},
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &tenant.StatusRequest{Status: types.TenantStatus(args[1])}

		t := new(types.Tenant)
		if err := newAPIClient().do(cmd.Context(), http.MethodPut, tenantPath(args[0], "/status"), req, t); err != nil {
			return fmt.Errorf("failed to change tenant status: %w", err)
		}

		fmt.Printf("Tenant %s is now %s\n", t.ID, t.Status)
		return nil
	},
}

var tenantPackageCmd = &cobra.Command{
	Use:   "assign-package [id] [package-id]",
	Short: "Assign a subscription package to a tenant, an empty package id clears it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := new(tenant.PackageAssignment)
		if args[1] != "" {
			req.PackageID = &args[1]
		}

		t := new(types.Tenant)
		if err := newAPIClient().do(cmd.Context(), http.MethodPut, tenantPath(args[0], "/package"), req, t); err != nil {
			return fmt.Errorf("failed to assign package: %w", err)
		}

		fmt.Printf("Tenant updated: %s\n", t.ID)
		return nil
	},
}

var deleteTenantCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a tenant and everything it owns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient().do(cmd.Context(), http.MethodDelete, tenantPath(args[0]), nil, nil); err != nil {
			return fmt.Errorf("failed to delete tenant: %w", err)
		}

		fmt.Printf("Tenant deleted: %s\n", args[0])
		return nil
	},
}

var tenantAuditCmd = &cobra.Command{
	Use:   "audit [id]",
	Short: "List the elevation audit trail of a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var entries []*types.AdminAuditEntry
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, pageQuery(tenantPath(args[0], "/audit")), nil, &entries); err != nil {
			return fmt.Errorf("failed to list audit entries: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CREATED_AT\tSUPER_ADMIN\tACTION\tREASON")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.CreatedAt, e.ActingSuperAdminID, e.Action, e.Reason)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(getTenantCmd)
	tenantCmd.AddCommand(tenantStatusCmd)
	tenantCmd.AddCommand(tenantPackageCmd)
	tenantCmd.AddCommand(deleteTenantCmd)
	tenantCmd.AddCommand(tenantAuditCmd)

	createTenantCmd.Flags().StringVar(&provision.AdminEmail, "admin-email", "", "Email of the first tenant admin")
	createTenantCmd.Flags().StringVar(&provision.AdminName, "admin-name", "", "Name of the first tenant admin")
	createTenantCmd.Flags().Func("package-id", "Subscription package to assign", func(v string) error {
		provision.PackageID = &v
		return nil
	})
	_ = createTenantCmd.MarkFlagRequired("admin-email")
	_ = createTenantCmd.MarkFlagRequired("admin-name")

	addPageFlags(listTenantsCmd)
	addPageFlags(tenantAuditCmd)
}
