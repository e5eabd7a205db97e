package auth

import (
	"contactdesk/config"
	"contactdesk/internal/domain/entity"
	"contactdesk/internal/domain/service"
)

// PermissionWildcard granted to a role allows every permission.
const PermissionWildcard entity.Permission = "*"

// rolePermissionChecker grants a permission when the token lists it explicitly
// or when one of the session roles maps to it in configuration.
type rolePermissionChecker struct {
	rolePermissions map[string]map[entity.Permission]struct{}
}

// NewPermissionChecker builds the permission gate from the configured role mapping.
func NewPermissionChecker(cfg *config.Config) service.PermissionChecker {
	checker := &rolePermissionChecker{
		rolePermissions: make(map[string]map[entity.Permission]struct{}),
	}
	if cfg.Auth == nil {
		return checker
	}

	for role, perms := range cfg.Auth.RolePermissions {
		set := make(map[entity.Permission]struct{}, len(perms))
		for _, p := range entity.PermissionsFromStrings(perms) {
			set[p] = struct{}{}
		}
		checker.rolePermissions[role] = set
	}

	return checker
}

// HasPermission implements service.PermissionChecker.
func (c *rolePermissionChecker) HasPermission(session *entity.Session, perm entity.Permission) bool {
	if session == nil {
		return false
	}
	if session.HasExplicitPermission(perm) || session.HasExplicitPermission(PermissionWildcard) {
		return true
	}

	for _, role := range session.Roles {
		granted, ok := c.rolePermissions[role]
		if !ok {
			continue
		}
		if _, ok := granted[perm]; ok {
			return true
		}
		if _, ok := granted[PermissionWildcard]; ok {
			return true
		}
	}

	return false
}
