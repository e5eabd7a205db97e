package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contactdesk/config"
	deliverycontext "contactdesk/internal/delivery/context"
	"contactdesk/internal/domain/entity"
	"contactdesk/internal/domain/service"
	"contactdesk/internal/errors"
	mockUsecase "contactdesk/internal/mocks/usecase"
	"contactdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushHandlerFixtures struct {
	handler        *PushHandler
	revalidationUC *mockUsecase.MockRevalidationUsecase
}

func createTestPushHandler(t *testing.T, cfg *config.Config) pushHandlerFixtures {
	revalidationUC := mockUsecase.NewMockRevalidationUsecase(t)

	return pushHandlerFixtures{
		handler: NewPushHandler(PushHandlerParams{
			Config:         cfg,
			Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
			RevalidationUC: revalidationUC,
		}),
		revalidationUC: revalidationUC,
	}
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodeEvent(t *testing.T, event *service.ContactAddressEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_StatusByOutcome(t *testing.T) {
	event := &service.ContactAddressEvent{
		EventID: "e-1",
		Type:    entity.ContactAddressUpdated,
		ID:      "0190c0de-0000-7000-8000-000000000001",
		Country: "France",
		Locale:  "en",
	}

	tests := []struct {
		name       string
		result     error
		wantStatus int
	}{
		{name: "processed", result: nil, wantStatus: http.StatusOK},
		{name: "site unavailable is retried", result: errors.New("status 502"), wantStatus: http.StatusServiceUnavailable},
		{name: "rejected by site is dropped", result: errors.Wrap(service.ErrRevalidationRejected, "status 401"), wantStatus: http.StatusOK},
		{name: "invalid event is dropped", result: errors.Wrap(usecase.ErrInvalidEvent, "no country"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushHandler(t, &config.Config{})
			fx.revalidationUC.EXPECT().
				HandleContactAddressEvent(mock.Anything, mock.MatchedBy(func(e *service.ContactAddressEvent) bool {
					return e.EventID == "e-1" && e.Country == "France"
				})).
				Return(tt.result)

			rec := servePush(fx.handler, pushBody(t, encodeEvent(t, event), nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_MalformedPayloads(t *testing.T) {
	fx := createTestPushHandler(t, &config.Config{})

	assert.Equal(t, http.StatusBadRequest, servePush(fx.handler, "{not json").Code)
	assert.Equal(t, http.StatusBadRequest, servePush(fx.handler, pushBody(t, "%%%", nil)).Code)

	undecodable := base64.StdEncoding.EncodeToString([]byte("[1,2]"))
	assert.Equal(t, http.StatusOK, servePush(fx.handler, pushBody(t, undecodable, nil)).Code)
}

func TestPushHandler_PropagatesRequestID(t *testing.T) {
	fx := createTestPushHandler(t, &config.Config{})
	event := &service.ContactAddressEvent{EventID: "e-2", Type: entity.ContactAddressDeleted, Country: "Spain", RequestID: "from-event"}

	fx.revalidationUC.EXPECT().
		HandleContactAddressEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.ContactAddressEvent) error {
			assert.Equal(t, "from-attributes", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})

	rec := servePush(fx.handler, pushBody(t, encodeEvent(t, event), map[string]string{"request_id": "from-attributes"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VerifiesTokenForGooglePushes(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"
	fx := createTestPushHandler(t, cfg)
	require.True(t, fx.handler.verifyPushAuth)

	fx.handler.verifyToken = func(*http.Request) error { return errors.New("bad token") }
	assert.Equal(t, http.StatusUnauthorized, servePush(fx.handler, pushBody(t, "", nil)).Code)
}
