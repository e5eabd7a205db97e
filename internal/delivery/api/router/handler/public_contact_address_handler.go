package handler

import (
	"log/slog"

	"contactdesk/config"
	"contactdesk/internal/delivery/api/response"
	deliverycontext "contactdesk/internal/delivery/context"
	"contactdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const headerAcceptLanguage = "Accept-Language"

// PublicContactAddressHandlerParams holds dependencies for PublicContactAddressHandler, injected by Fx.
type PublicContactAddressHandlerParams struct {
	fx.In

	LocalizedUC usecase.LocalizedContactAddressUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// PublicContactAddressHandler serves the unauthenticated site read.
type PublicContactAddressHandler struct {
	localizedUC usecase.LocalizedContactAddressUsecase
	production  bool
	logger      *slog.Logger
}

// NewPublicContactAddressHandler is the constructor for PublicContactAddressHandler
func NewPublicContactAddressHandler(params PublicContactAddressHandlerParams) *PublicContactAddressHandler {
	return &PublicContactAddressHandler{
		localizedUC: params.LocalizedUC,
		production:  params.Config.IsProduction(),
		logger:      params.Logger,
	}
}

// List returns one record per country in the locale picked from ?locale= or Accept-Language.
func (h *PublicContactAddressHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	c.Response().Header().Add(echo.HeaderVary, headerAcceptLanguage)

	result, err := h.localizedUC.ListLocalizedContactAddresses(ctx,
		c.QueryParam("locale"),
		c.Request().Header.Get(headerAcceptLanguage),
	)

	body := &LocalizedListResponse{Items: []*LocalizedContactAddressResponse{}}
	if result != nil {
		body.Locale = result.Locale
		for _, item := range result.Items {
			body.Items = append(body.Items, &LocalizedContactAddressResponse{
				ContactAddressResponse: toContactAddressResponse(item.ContactAddress),
				Fallback:               item.Fallback,
			})
		}
	}
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to list localized contact addresses", slog.Any("error", err))
		body.Items = []*LocalizedContactAddressResponse{}
		body.Error = listErrorMessage(err, h.production)
	}

	return response.Success(c, body)
}
