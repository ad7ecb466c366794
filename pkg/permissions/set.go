// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"slices"
)

// Set is an immutable, sorted set of permissions.
type Set struct {
	perms []Permission
}

func NewSet(perms ...Permission) Set {
	s := slices.Clone(perms)
	slices.Sort(s)
	return Set{perms: slices.Compact(s)}
}

func (s Set) Has(p Permission) bool {
	_, found := slices.BinarySearch(s.perms, p)
	return found
}

// List returns a sorted copy of the permissions.
func (s Set) List() []Permission {
	return slices.Clone(s.perms)
}

func (s Set) Strings() []string {
	out := make([]string, len(s.perms))
	for i, p := range s.perms {
		out[i] = string(p)
	}
	return out
}

func (s Set) Len() int {
	return len(s.perms)
}

func (s Set) Equal(other Set) bool {
	return slices.Equal(s.perms, other.perms)
}

// HasPermission is the check handlers run before performing an operation.
func HasPermission(set Set, p Permission) bool {
	return set.Has(p)
}
