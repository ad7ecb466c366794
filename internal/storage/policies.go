// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// platformTables carry no tenant_id column but still sit behind row security.
var platformTables = []string{"admin_audit_log", "subscription_packages", "tenants"}

type tablePolicyState struct {
	name     string
	enabled  bool
	forced   bool
	policies int
}

// VerifyIsolationPolicies checks the live catalog: every table with a tenant_id
// column, and every platform table, must have row security enabled and forced
// with at least one policy, and the connected role must not bypass row security.
func (s *Storage) VerifyIsolationPolicies(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "storage.VerifyIsolationPolicies")
	defer span.End()

	var bypass bool
	err := s.db.Statement(ctx).
		Select("rolsuper OR rolbypassrls").
		From("pg_roles").
		Where("rolname = current_user").
		QueryRowContext(ctx).
		Scan(&bypass)
	if err != nil {
		return fmt.Errorf("failed to inspect connection role: %w", err)
	}

	var problems []string
	if bypass {
		problems = append(problems, "connection role bypasses row security")
	}

	states, err := queryAll(ctx,
		s.db.Statement(ctx).
			Select(
				"c.relname",
				"c.relrowsecurity",
				"c.relforcerowsecurity",
				"(SELECT count(*) FROM pg_policy p WHERE p.polrelid = c.oid)",
			).
			From("pg_class c").
			Join("pg_namespace n ON n.oid = c.relnamespace").
			Where(sq.Eq{"n.nspname": "public", "c.relkind": "r"}).
			Where(sq.Or{
				sq.Expr("EXISTS (SELECT 1 FROM pg_attribute a WHERE a.attrelid = c.oid AND a.attname = 'tenant_id' AND NOT a.attisdropped)"),
				sq.Eq{"c.relname": platformTables},
			}).
			OrderBy("c.relname"),
		func(row rowScanner) (tablePolicyState, error) {
			var st tablePolicyState
			err := row.Scan(&st.name, &st.enabled, &st.forced, &st.policies)
			return st, err
		},
	)
	if err != nil {
		return fmt.Errorf("failed to inspect row security: %w", err)
	}

	seen := make(map[string]bool, len(states))
	for _, st := range states {
		seen[st.name] = true

		switch {
		case !st.enabled:
			problems = append(problems, st.name+": row security disabled")
		case !st.forced:
			problems = append(problems, st.name+": row security not forced")
		case st.policies == 0:
			problems = append(problems, st.name+": no policy")
		}
	}

	for _, t := range platformTables {
		if !seen[t] {
			problems = append(problems, t+": table missing")
		}
	}

	if len(problems) > 0 {
		s.logger.Errorf("isolation policy check failed: %s", strings.Join(problems, "; "))
		return fmt.Errorf("%w: %s", ErrIsolationPolicy, strings.Join(problems, "; "))
	}

	s.logger.Infof("isolation policies verified on %d tables", len(states))

	return nil
}
