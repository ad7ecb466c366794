// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migrations

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"
)

var (
	createTableRe = regexp.MustCompile(`(?s)CREATE TABLE (\w+) \((.*?)\n\);`)
	compositeFKRe = regexp.MustCompile(`FOREIGN KEY \(tenant_id, \w+\)\s+REFERENCES (\w+) \(tenant_id, id\)`)
	plainFKRe     = regexp.MustCompile(`(\w+)\s+uuid[^,\n]*REFERENCES (\w+) \(id\)`)
	tenantColRe   = regexp.MustCompile(`\n\s+tenant_id\s+uuid`)
	scopedColRe   = regexp.MustCompile(`\n\s+tenant_id\s+uuid\s+NOT NULL`)
)

func upSections(t *testing.T) string {
	t.Helper()

	entries, err := fs.ReadDir(EmbedMigrations, ".")
	if err != nil {
		t.Fatalf("failed to read migrations: %v", err)
	}

	var b strings.Builder
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}

		content, err := fs.ReadFile(EmbedMigrations, e.Name())
		if err != nil {
			t.Fatalf("failed to read %s: %v", e.Name(), err)
		}

		up, _, _ := strings.Cut(string(content), "-- +goose Down")
		b.WriteString(up)
		b.WriteString("\n")
	}

	return b.String()
}

type table struct {
	name string
	body string
}

func tables(sql string) []table {
	var out []table
	for _, m := range createTableRe.FindAllStringSubmatch(sql, -1) {
		out = append(out, table{name: m[1], body: m[2]})
	}
	return out
}

func TestEveryTableIsForcedUnderRowSecurity(t *testing.T) {
	sql := upSections(t)

	all := tables(sql)
	if len(all) == 0 {
		t.Fatal("expected migrations to create tables")
	}

	for _, tbl := range all {
		for _, stmt := range []string{
			"ALTER TABLE " + tbl.name + " ENABLE ROW LEVEL SECURITY;",
			"ALTER TABLE " + tbl.name + " FORCE ROW LEVEL SECURITY;",
		} {
			if !strings.Contains(sql, stmt) {
				t.Errorf("table %s is missing %q", tbl.name, stmt)
			}
		}

		if !regexp.MustCompile(`CREATE POLICY \w+ ON ` + tbl.name + `\b`).MatchString(sql) {
			t.Errorf("table %s has no policy", tbl.name)
		}
	}
}

func TestTenantScopedTablesUseTenantIsolationPolicy(t *testing.T) {
	sql := upSections(t)

	for _, tbl := range tables(sql) {
		if !tenantColRe.MatchString("\n" + tbl.body) {
			continue
		}

		policy := regexp.MustCompile(`(?s)CREATE POLICY tenant_isolation ON ` + tbl.name + `\s+USING \((.*?)\)\s+WITH CHECK \((.*?)\);`)
		m := policy.FindStringSubmatch(sql)
		if m == nil {
			t.Errorf("table %s has no tenant_isolation policy with USING and WITH CHECK", tbl.name)
			continue
		}

		for _, clause := range m[1:] {
			if !strings.Contains(clause, "tenant_id = tenancy.current_tenant_id()") {
				t.Errorf("table %s policy does not compare against the bound tenant: %s", tbl.name, clause)
			}
		}
	}
}

func TestChildTablesReferenceParentsThroughTenant(t *testing.T) {
	sql := upSections(t)

	scoped := map[string]bool{}
	for _, tbl := range tables(sql) {
		if scopedColRe.MatchString("\n" + tbl.body) {
			scoped[tbl.name] = true
		}
	}

	for _, tbl := range tables(sql) {
		if !scoped[tbl.name] {
			continue
		}

		// single column references may only point at tenants or packages
		for _, m := range plainFKRe.FindAllStringSubmatch(tbl.body, -1) {
			if scoped[m[2]] {
				t.Errorf("table %s references tenant-scoped %s without tenant_id", tbl.name, m[2])
			}
		}

		for _, m := range compositeFKRe.FindAllStringSubmatch(tbl.body, -1) {
			if !scoped[m[1]] {
				t.Errorf("table %s has composite reference to non tenant-scoped %s", tbl.name, m[1])
			}
		}
	}

	if !scoped["bookings"] || !scoped["proposals"] {
		t.Fatalf("expected bookings and proposals to be tenant-scoped, got %v", scoped)
	}
}

func TestSingleOverrideRole(t *testing.T) {
	sql := upSections(t)

	if n := strings.Count(sql, " BYPASSRLS"); n != 1 {
		t.Errorf("expected exactly one role with BYPASSRLS, got %d", n)
	}
	if n := strings.Count(sql, "SECURITY DEFINER"); n != 1 {
		t.Errorf("expected exactly one SECURITY DEFINER function, got %d", n)
	}
	if !strings.Contains(sql, "ALTER FUNCTION tenancy.lookup_identity(uuid) OWNER TO venue_identity_reader;") {
		t.Error("identity lookup must be owned by the override role")
	}
}

func TestAuditLogIsAppendOnly(t *testing.T) {
	sql := upSections(t)

	if !strings.Contains(sql, "BEFORE UPDATE OR DELETE ON admin_audit_log") {
		t.Error("expected a trigger rejecting audit mutations")
	}
	if strings.Contains(sql, "GRANT SELECT, INSERT, UPDATE, DELETE ON admin_audit_log") {
		t.Error("audit log must not be granted UPDATE or DELETE")
	}
	if regexp.MustCompile(`admin_audit_log[^;]*REFERENCES tenants`).MatchString(sql) {
		t.Error("audit log must not reference tenants")
	}
}
