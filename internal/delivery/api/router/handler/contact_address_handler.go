package handler

import (
	"io"
	"log/slog"
	"strconv"

	"contactdesk/config"
	"contactdesk/internal/delivery/api/response"
	deliverycontext "contactdesk/internal/delivery/context"
	domainerrors "contactdesk/internal/domain/errors"
	"contactdesk/internal/errors"
	"contactdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const listFailedMessage = "Failed to load contact addresses"

// ContactAddressHandlerParams holds dependencies for ContactAddressHandler, injected by Fx.
type ContactAddressHandlerParams struct {
	fx.In

	ContactAddressUC usecase.ContactAddressUsecase
	Config           *config.Config
	Logger           *slog.Logger
}

// ContactAddressHandler serves /api/admin/contact-addresses.
type ContactAddressHandler struct {
	contactAddressUC usecase.ContactAddressUsecase
	production       bool
	logger           *slog.Logger
}

// NewContactAddressHandler is the constructor for ContactAddressHandler
func NewContactAddressHandler(params ContactAddressHandlerParams) *ContactAddressHandler {
	return &ContactAddressHandler{
		contactAddressUC: params.ContactAddressUC,
		production:       params.Config.IsProduction(),
		logger:           params.Logger,
	}
}

// Get lists default-locale records, fetches one record, or fetches a whole
// translation group when all=true.
func (h *ContactAddressHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	rawID := c.QueryParam("id")
	if rawID == "" {
		addresses, err := h.contactAddressUC.ListContactAddresses(ctx)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to list contact addresses", slog.Any("error", err))

			return response.Success(c, &ListContactAddressesResponse{
				Items: []*ContactAddressResponse{},
				Error: listErrorMessage(err, h.production),
			})
		}

		return response.Success(c, &ListContactAddressesResponse{Items: toContactAddressResponses(addresses)})
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return domainerrors.ErrInvalidID.WithDetails(rawID)
	}

	if all, _ := strconv.ParseBool(c.QueryParam("all")); all {
		translations, err := h.contactAddressUC.GetContactAddressTranslations(ctx, id)
		if err != nil {
			return err
		}

		return response.Success(c, &TranslationsResponse{Translations: toContactAddressResponses(translations)})
	}

	address, err := h.contactAddressUC.GetContactAddress(ctx, id)
	if err != nil {
		return err
	}

	return response.Success(c, toContactAddressResponse(address))
}

// Create stores a new record.
func (h *ContactAddressHandler) Create(c echo.Context) error {
	req, err := h.bindRequest(c)
	if err != nil {
		return err
	}

	address, err := h.contactAddressUC.CreateContactAddress(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, toContactAddressResponse(address))
}

// Update edits the addressed record or writes its translation in the submitted locale.
func (h *ContactAddressHandler) Update(c echo.Context) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}

	req, err := h.bindRequest(c)
	if err != nil {
		return err
	}

	address, err := h.contactAddressUC.UpdateContactAddress(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, toContactAddressResponse(address))
}

// Delete removes the whole translation group of the addressed record.
func (h *ContactAddressHandler) Delete(c echo.Context) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}

	if err := h.contactAddressUC.DeleteContactAddress(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, &DeleteResponse{Success: true})
}

// bindRequest decodes the body as JSON whatever the Content-Type, since admin
// clients post bare strings. An empty body decodes to an empty request.
func (h *ContactAddressHandler) bindRequest(c echo.Context) (*ContactAddressRequest, error) {
	var req ContactAddressRequest
	if err := c.Echo().JSONSerializer.Deserialize(c, &req); err != nil && !errors.Is(err, io.EOF) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body must be a JSON object: " + bindMessage(err))
	}

	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return &req, nil
}

func requireID(c echo.Context) (uuid.UUID, error) {
	rawID := c.QueryParam("id")
	if rawID == "" {
		return uuid.Nil, domainerrors.ErrMissingID
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WithDetails(rawID)
	}

	return id, nil
}

func bindMessage(err error) string {
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}

	return err.Error()
}

// listErrorMessage keeps schema hints and user messages, hiding raw store errors in production.
func listErrorMessage(err error, production bool) string {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.Message()
	}
	if production {
		return listFailedMessage
	}

	return err.Error()
}
