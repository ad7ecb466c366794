// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityLoggerTenantAssumed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := newSecurityLogger(zap.New(core))

	s.TenantAssumed("sam", "tenant-b", "support ticket #123")

	entries := logs.FilterMessage("tenant_assumed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 tenant_assumed entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["tenant_id"] != "tenant-b" || fields["user_id"] != "sam" {
		t.Errorf("unexpected fields: %v", fields)
	}
	if fields["type"] != "security" {
		t.Errorf("expected security type, got %v", fields["type"])
	}
}

func TestNoopLoggerSecurity(t *testing.T) {
	l := NewNoopLogger()
	l.Security().AuthnFailure("missing token")
	l.Security().CrossTenantViolation("u", "t", "fk")
}
