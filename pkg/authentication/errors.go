// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "errors"

var (
	// ErrAuthentication is returned for every credential that cannot be turned
	// into a principal. Callers map it to 401 and never fall back to a guest scope.
	ErrAuthentication = errors.New("authentication failed")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
