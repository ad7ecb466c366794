// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const securityLoggerName = "security"

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name string, fields ...zap.Field) {
	fields = append(fields, zap.String("type", "security"), zap.String("event", name))
	s.l.Warn(name, fields...)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("sys_startup", zap.String("type", "security"), zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("sys_shutdown", zap.String("type", "security"), zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthnFailure(reason string) {
	s.event("authn_fail", zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.event("authz_fail", zap.String("user_id", userID), zap.String("resource", resource))
}

// TenantAssumed records a super admin operating inside a tenant. The durable
// record is the admin_audit_log row, this is the operational trail.
func (s *SecurityLogger) TenantAssumed(actorID, tenantID, reason string) {
	s.event("tenant_assumed", zap.String("user_id", actorID), zap.String("tenant_id", tenantID), zap.String("reason", reason))
}

func (s *SecurityLogger) CrossTenantViolation(userID, tenantID, detail string) {
	s.event("cross_tenant_violation", zap.String("user_id", userID), zap.String("tenant_id", tenantID), zap.String("detail", detail))
}

func newSecurityLogger(z *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: z.Named(securityLoggerName)}
}
