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

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage the users of the bound tenant, super admins pass --assume-tenant",
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List users of the tenant",
	RunE: func(cmd *cobra.Command, args []string) error {
		var users []*types.User
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, pageQuery("/api/v0/users"), nil, &users); err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tEMAIL\tROLE\tPERMISSIONS")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Email, u.Role, strings.Join(u.Permissions, ","))
		}
		w.Flush()
		return nil
	},
}

var userRequest tenant.UserRequest

var createUserCmd = &cobra.Command{
	Use:   "create [email] [role]",
	Short: "Create a tenant_user or tenant_admin",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userRequest.Email = args[0]
		userRequest.Role = types.Role(args[1])

		u := new(types.User)
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/api/v0/users", &userRequest, u); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Printf("User created: %s (ID: %s, Role: %s)\n", u.Email, u.ID, u.Role)
		return nil
	},
}

var updatePermissionsCmd = &cobra.Command{
	Use:   "permissions [user-id] [permission...]",
	Short: "Replace the granted permissions of a tenant user",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &tenant.PermissionsRequest{Permissions: args[1:]}

		u := new(types.User)
		path := "/api/v0/users/" + url.PathEscape(args[0]) + "/permissions"
		if err := newAPIClient().do(cmd.Context(), http.MethodPut, path, req, u); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		fmt.Printf("User updated: %s\n", u.Email)
		fmt.Printf("Permissions: %s\n", strings.Join(u.Permissions, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(listUsersCmd)
	usersCmd.AddCommand(createUserCmd)
	usersCmd.AddCommand(updatePermissionsCmd)

	createUserCmd.Flags().StringVar(&userRequest.Name, "name", "", "Display name")
	createUserCmd.Flags().StringSliceVar(&userRequest.Permissions, "permissions", nil, "Comma-separated permissions to grant a tenant_user")

	addPageFlags(listUsersCmd)
}
