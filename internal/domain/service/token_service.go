package service

import (
	"time"

	"contactdesk/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by admin access tokens.
type Claims struct {
	Roles       []string `json:"roles,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates admin access tokens.
type TokenService interface {
	// GenerateAccessToken signs a token for the given subject, roles and explicit permissions.
	GenerateAccessToken(userID uuid.UUID, roles []string, permissions []entity.Permission) (string, error)

	// ValidateToken checks the signature and expiry of a token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the lifetime given to new tokens.
	AccessTokenTTL() time.Duration
}
