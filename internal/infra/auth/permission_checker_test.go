package auth

import (
	"testing"

	"contactdesk/config"
	"contactdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestRolePermissionChecker_HasPermission(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			RolePermissions: map[string][]string{
				"viewer": {"content.view"},
				"editor": {"content.view", "content.create", "content.edit"},
				"admin":  {"*"},
			},
		},
	}
	checker := NewPermissionChecker(cfg)

	tests := []struct {
		name    string
		session *entity.Session
		perm    entity.Permission
		want    bool
	}{
		{name: "no session", session: nil, perm: entity.PermissionContentView, want: false},
		{name: "viewer can view", session: &entity.Session{Roles: []string{"viewer"}}, perm: entity.PermissionContentView, want: true},
		{name: "viewer cannot create", session: &entity.Session{Roles: []string{"viewer"}}, perm: entity.PermissionContentCreate, want: false},
		{name: "editor cannot delete", session: &entity.Session{Roles: []string{"editor"}}, perm: entity.PermissionContentDelete, want: false},
		{name: "admin wildcard", session: &entity.Session{Roles: []string{"admin"}}, perm: entity.PermissionContentDelete, want: true},
		{name: "unknown role", session: &entity.Session{Roles: []string{"guest"}}, perm: entity.PermissionContentView, want: false},
		{
			name:    "explicit token permission",
			session: &entity.Session{Permissions: []entity.Permission{entity.PermissionContentDelete}},
			perm:    entity.PermissionContentDelete,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checker.HasPermission(tt.session, tt.perm))
		})
	}
}

func TestRolePermissionChecker_NoAuthConfig(t *testing.T) {
	checker := NewPermissionChecker(&config.Config{})

	assert.False(t, checker.HasPermission(&entity.Session{Roles: []string{"admin"}}, entity.PermissionContentView))
	assert.True(t, checker.HasPermission(
		&entity.Session{Permissions: []entity.Permission{entity.PermissionContentView}},
		entity.PermissionContentView,
	))
}
