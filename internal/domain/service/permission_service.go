package service

import "contactdesk/internal/domain/entity"

// PermissionChecker is the permission gate consulted by every admin operation.
type PermissionChecker interface {
	// HasPermission reports whether the session may perform the operation guarded by perm.
	HasPermission(session *entity.Session, perm entity.Permission) bool
}
