// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package elevation

import "errors"

var (
	// ErrAuditWriteFailure means the audit row could not be written, so the
	// elevated work never ran.
	ErrAuditWriteFailure = errors.New("audit write failed")

	ErrTenantNotFound = errors.New("target tenant not found")
	ErrInvalidRequest = errors.New("invalid elevation request")
)
