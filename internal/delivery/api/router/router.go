// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"contactdesk/internal/delivery/api/middleware"
	"contactdesk/internal/delivery/api/router/handler"
	"contactdesk/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const contactAddressesPath = "/contact-addresses"

// contactAddressPermissions maps each admin method to the permission it requires.
var contactAddressPermissions = map[string]entity.Permission{
	http.MethodGet:    entity.PermissionContentView,
	http.MethodPost:   entity.PermissionContentCreate,
	http.MethodPut:    entity.PermissionContentEdit,
	http.MethodDelete: entity.PermissionContentDelete,
}

type RouterParams struct {
	fx.In

	ContactAddressHandler       *handler.ContactAddressHandler
	PublicContactAddressHandler *handler.PublicContactAddressHandler
	AuthMiddleware              *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	contactAddressHandler       *handler.ContactAddressHandler
	publicContactAddressHandler *handler.PublicContactAddressHandler
	authMiddleware              *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		contactAddressHandler:       params.ContactAddressHandler,
		publicContactAddressHandler: params.PublicContactAddressHandler,
		authMiddleware:              params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public site read
	publicGroup := e.Group("/api")
	{
		publicGroup.GET(contactAddressesPath, r.publicContactAddressHandler.List)
	}

	// Admin routes: session first, then the permission of the method
	adminGroup := e.Group("/api/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireMethodPermissions(contactAddressPermissions))
	{
		adminGroup.GET(contactAddressesPath, r.contactAddressHandler.Get)
		adminGroup.POST(contactAddressesPath, r.contactAddressHandler.Create)
		adminGroup.PUT(contactAddressesPath, r.contactAddressHandler.Update)
		adminGroup.DELETE(contactAddressesPath, r.contactAddressHandler.Delete)
	}
}
