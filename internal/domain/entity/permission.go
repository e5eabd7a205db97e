package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Permission is a tag checked by the permission gate before an admin operation runs.
type Permission string

const (
	PermissionContentView   Permission = "content.view"
	PermissionContentCreate Permission = "content.create"
	PermissionContentEdit   Permission = "content.edit"
	PermissionContentDelete Permission = "content.delete"
)

// String returns the string representation of the Permission.
func (p Permission) String() string {
	return string(p)
}

// Session is the authenticated caller as established by the access token.
type Session struct {
	UserID      uuid.UUID
	Roles       []string
	Permissions []Permission
}

// HasExplicitPermission reports whether the token itself granted perm.
func (s *Session) HasExplicitPermission(perm Permission) bool {
	if s == nil {
		return false
	}

	return slices.Contains(s.Permissions, perm)
}

// PermissionsFromStrings converts token claim values to permissions, dropping blanks.
func PermissionsFromStrings(ss []string) []Permission {
	result := make([]Permission, 0, len(ss))
	for _, s := range ss {
		if s == "" {
			continue
		}
		result = append(result, Permission(s))
	}

	return result
}
