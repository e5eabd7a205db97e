package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "contactdesk/internal/delivery/context"
	"contactdesk/internal/domain/entity"
	domainerrors "contactdesk/internal/domain/errors"
	"contactdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware establishes the admin session from a bearer token and applies the permission gate.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	checker  service.PermissionChecker
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, checker service.PermissionChecker, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, checker: checker, logger: logger}
}

// Authenticate validates the access token and stores the session on the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthenticated.WithDetails("invalid token format, must be Bearer token")
		}
		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Info("Rejected access token", slog.Any("error", err))

			return domainerrors.ErrUnauthenticated.WithDetails("invalid or expired token")
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WithDetails("invalid subject in token")
		}

		deliverycontext.SetSession(c, &entity.Session{
			UserID:      userID,
			Roles:       claims.Roles,
			Permissions: entity.PermissionsFromStrings(claims.Permissions),
		})

		return next(c)
	}
}

// RequirePermission rejects sessions the permission gate does not grant perm.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequirePermission(perm entity.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := deliverycontext.GetSession(c)
			if session == nil {
				return domainerrors.ErrUnauthenticated
			}

			if !m.checker.HasPermission(session, perm) {
				return domainerrors.ErrForbidden.WithDetails("requires " + perm.String())
			}

			return next(c)
		}
	}
}

// RequireMethodPermissions applies the permission mapped to the request method.
// Methods without a mapping answer 405 with the mapped methods in Allow.
func (m *AuthMiddleware) RequireMethodPermissions(perms map[string]entity.Permission) echo.MiddlewareFunc {
	allowed := make([]string, 0, len(perms))
	for method := range perms {
		allowed = append(allowed, method)
	}
	slices.Sort(allowed)
	allowHeader := strings.Join(allowed, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			perm, ok := perms[c.Request().Method]
			if !ok {
				c.Response().Header().Set(echo.HeaderAllow, allowHeader)

				return echo.ErrMethodNotAllowed
			}

			return m.RequirePermission(perm)(next)(c)
		}
	}
}
