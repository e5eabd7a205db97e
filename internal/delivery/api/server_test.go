package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"contactdesk/config"
	apimiddleware "contactdesk/internal/delivery/api/middleware"
	"contactdesk/internal/delivery/api/router"
	"contactdesk/internal/delivery/api/router/handler"
	deliverycontext "contactdesk/internal/delivery/context"
	"contactdesk/internal/domain/entity"
	domainerrors "contactdesk/internal/domain/errors"
	"contactdesk/internal/infra/auth"
	"contactdesk/internal/infra/persistence/database"
	"contactdesk/internal/infra/pubsub"
	"contactdesk/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	editorRole = "editor"
	viewerRole = "viewer"
)

type apiFixtures struct {
	echo   *echo.Echo
	db     *gorm.DB
	tokens map[string]string
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{
		RolePermissions: map[string][]string{
			editorRole: {"content.view", "content.create", "content.edit", "content.delete"},
			viewerRole: {"content.view"},
		},
	}
	cfg.Locales = &config.LocalesConfig{Default: "en", Supported: []string{"en", "fr"}}

	return cfg
}

func createTestAPI(t *testing.T) apiFixtures {
	t.Helper()

	cfg := newTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	require.NoError(t, database.AutoMigrate(context.Background(), db))

	addressRepo := database.NewContactAddressRepository(db)
	resolver, err := impl.NewLocaleResolver(cfg)
	require.NoError(t, err)

	contactAddressUC := impl.NewContactAddressService(impl.ContactAddressServiceParams{
		TxManager:   database.NewTransactionManager(db),
		AddressRepo: addressRepo,
		Publisher:   pubsub.NewNoopPublisher(logger),
		Logger:      logger,
	})
	localizedUC := impl.NewLocalizedContactAddressService(impl.LocalizedContactAddressServiceParams{
		AddressRepo: addressRepo,
		Resolver:    resolver,
		Logger:      logger,
	})

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	e := NewEcho(cfg, logger, router.RouterParams{
		ContactAddressHandler: handler.NewContactAddressHandler(handler.ContactAddressHandlerParams{
			ContactAddressUC: contactAddressUC,
			Config:           cfg,
			Logger:           logger,
		}),
		PublicContactAddressHandler: handler.NewPublicContactAddressHandler(handler.PublicContactAddressHandlerParams{
			LocalizedUC: localizedUC,
			Config:      cfg,
			Logger:      logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokenSvc, auth.NewPermissionChecker(cfg), logger),
	})

	tokens := make(map[string]string)
	for _, role := range []string{editorRole, viewerRole} {
		token, err := tokenSvc.GenerateAccessToken(uuid.New(), []string{role}, nil)
		require.NoError(t, err)
		tokens[role] = token
	}

	return apiFixtures{echo: e, db: db, tokens: tokens}
}

func (fx apiFixtures) do(t *testing.T, method, target, role, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if role != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+fx.tokens[role])
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func (fx apiFixtures) count(t *testing.T) int64 {
	t.Helper()

	var n int64
	require.NoError(t, fx.db.Table("contact_addresses").Count(&n).Error)

	return n
}

const adminPath = "/api/admin/contact-addresses"

func TestAPI_CreateTranslateAndListGroup(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(t, http.MethodPost, adminPath, editorRole,
		`{"country":"France","place":"France Office","address":"1 Rue de Rivoli","phones":["+33 1 2345 6789",""],"email":"paris@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[handler.ContactAddressResponse](t, rec)
	assert.Equal(t, []string{"+33 1 2345 6789"}, created.Phones)
	assert.Equal(t, "en", created.Locale)
	assert.Contains(t, rec.Body.String(), `"createdAt"`)

	rec = fx.do(t, http.MethodPut, adminPath+"?id="+created.ID.String(), editorRole,
		`{"country":"France","address":"1 rue de Rivoli","phones":"[\"+33 1 2345 6789\"]","email":"paris@example.com","locale":"fr"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	translated := decode[handler.ContactAddressResponse](t, rec)
	assert.NotEqual(t, created.ID, translated.ID)
	assert.Equal(t, "fr", translated.Locale)

	// A second translation edit updates the sibling instead of creating another one.
	rec = fx.do(t, http.MethodPut, adminPath+"?id="+created.ID.String(), editorRole,
		`{"country":"France","address":"2 rue de Rivoli","email":"paris@example.com","locale":"FR"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, translated.ID, decode[handler.ContactAddressResponse](t, rec).ID)
	assert.Equal(t, int64(2), fx.count(t))

	rec = fx.do(t, http.MethodGet, adminPath+"?id="+created.ID.String()+"&all=true", viewerRole, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	group := decode[handler.TranslationsResponse](t, rec)
	require.Len(t, group.Translations, 2)
	assert.Equal(t, "en", group.Translations[0].Locale)
	assert.Equal(t, "1 Rue de Rivoli", group.Translations[0].Address)
	assert.Equal(t, "fr", group.Translations[1].Locale)
	assert.Equal(t, "2 rue de Rivoli", group.Translations[1].Address)
	assert.Equal(t, []string{}, group.Translations[1].Phones)
}

func TestAPI_SameLocaleUpdateKeepsID(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(t, http.MethodPost, adminPath, editorRole,
		`{"country":"Spain","address":"Gran Via 1","email":"madrid@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode[handler.ContactAddressResponse](t, rec)

	rec = fx.do(t, http.MethodPut, adminPath+"?id="+created.ID.String(), editorRole,
		`{"country":"Spain","address":"Gran Via 2","email":"madrid@example.com","whatsapp":" +34 600 "}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[handler.ContactAddressResponse](t, rec)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Gran Via 2", updated.Address)
	require.NotNil(t, updated.WhatsApp)
	assert.Equal(t, "+34 600", *updated.WhatsApp)
	assert.Equal(t, int64(1), fx.count(t))
}

func TestAPI_ListReturnsDefaultLocaleOnly(t *testing.T) {
	fx := createTestAPI(t)

	for _, body := range []string{
		`{"country":"France","address":"a","email":"e@example.com"}`,
		`{"country":"France","address":"b","email":"e@example.com","locale":"fr"}`,
		`{"country":"Spain","address":"c","email":"e@example.com"}`,
	} {
		require.Equal(t, http.StatusOK, fx.do(t, http.MethodPost, adminPath, editorRole, body).Code)
	}

	rec := fx.do(t, http.MethodGet, adminPath, viewerRole, "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[handler.ListContactAddressesResponse](t, rec)
	require.Len(t, list.Items, 2)
	for _, item := range list.Items {
		assert.Equal(t, "en", item.Locale)
	}
	assert.Empty(t, list.Error)
}

func TestAPI_DeleteRemovesWholeGroup(t *testing.T) {
	fx := createTestAPI(t)

	require.Equal(t, http.StatusOK, fx.do(t, http.MethodPost, adminPath, editorRole,
		`{"country":"France","address":"a","email":"e@example.com"}`).Code)
	rec := fx.do(t, http.MethodPost, adminPath, editorRole,
		`{"country":"France","address":"b","email":"e@example.com","locale":"fr"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	french := decode[handler.ContactAddressResponse](t, rec)
	require.Equal(t, http.StatusOK, fx.do(t, http.MethodPost, adminPath, editorRole,
		`{"country":"Spain","address":"c","email":"e@example.com"}`).Code)

	rec = fx.do(t, http.MethodDelete, adminPath+"?id="+french.ID.String(), editorRole, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, int64(1), fx.count(t))

	// Unknown ids fall back to a delete by id, which is a no-op.
	rec = fx.do(t, http.MethodDelete, adminPath+"?id="+uuid.NewString(), editorRole, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestAPI_PermissionGate(t *testing.T) {
	fx := createTestAPI(t)
	body := `{"country":"France","address":"a","email":"e@example.com"}`

	rec := fx.do(t, http.MethodPost, adminPath, "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.ErrUnauthenticated.ErrorCode(), decode[domainerrors.Response](t, rec).Error.Code)

	rec = fx.do(t, http.MethodPost, adminPath, viewerRole, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, int64(0), fx.count(t))

	req := httptest.NewRequest(http.MethodGet, adminPath, nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec = httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_ValidationErrors(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(t, http.MethodPost, adminPath, editorRole, `{"country":"  ","address":"a"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decode[domainerrors.Response](t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, http.StatusBadRequest, envelope.Code)
	assert.Equal(t, "Missing required fields: country, email", envelope.Message)
	assert.Equal(t, int64(0), fx.count(t))

	rec = fx.do(t, http.MethodPost, adminPath, editorRole, `{"country":"France","address":"a","email":"e@example.com","locale":"!!"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrInvalidLocale.ErrorCode(), decode[domainerrors.Response](t, rec).Error.Code)

	rec = fx.do(t, http.MethodPut, adminPath, editorRole, `{"country":"France","address":"a","email":"e@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrMissingID.ErrorCode(), decode[domainerrors.Response](t, rec).Error.Code)

	rec = fx.do(t, http.MethodDelete, adminPath+"?id=nope", editorRole, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrInvalidID.ErrorCode(), decode[domainerrors.Response](t, rec).Error.Code)

	rec = fx.do(t, http.MethodGet, adminPath+"?id="+uuid.NewString(), viewerRole, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_CreateIgnoresContentType(t *testing.T) {
	fx := createTestAPI(t)

	tests := []struct {
		name        string
		contentType string
		country     string
	}{
		{name: "no content type", contentType: "", country: "France"},
		{name: "text plain", contentType: "text/plain;charset=UTF-8", country: "Spain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"country":"` + tt.country + `","address":"a","email":"e@example.com","phones":"+33 1"}`
			req := httptest.NewRequest(http.MethodPost, adminPath, strings.NewReader(body))
			if tt.contentType != "" {
				req.Header.Set(echo.HeaderContentType, tt.contentType)
			}
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+fx.tokens[editorRole])
			rec := httptest.NewRecorder()
			fx.echo.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			created := decode[handler.ContactAddressResponse](t, rec)
			assert.Equal(t, tt.country, created.Country)
			assert.Equal(t, []string{"+33 1"}, created.Phones)
		})
	}

	assert.Equal(t, int64(2), fx.count(t))
}

func TestAPI_MalformedBody(t *testing.T) {
	fx := createTestAPI(t)

	for _, body := range []string{`[1,2]`, `{"country":`, `{"country":"France","phones":{"a":1}}`} {
		rec := fx.do(t, http.MethodPost, adminPath, editorRole, body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decode[domainerrors.Response](t, rec).Error.Code)
	}

	// An empty body reaches the required-field check.
	req := httptest.NewRequest(http.MethodPost, adminPath, nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+fx.tokens[editorRole])
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields: country, address, email", decode[domainerrors.Response](t, rec).Message)
	assert.Equal(t, int64(0), fx.count(t))
}

func TestAPI_TranslateReusesLegacyLocaleRow(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(t, http.MethodPost, adminPath, editorRole, `{"country":"France","address":"english","email":"e@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	original := decode[handler.ContactAddressResponse](t, rec)

	// Rows written before locales were canonicalized may carry upper-case tags.
	legacy := &entity.ContactAddress{Country: "France", Locale: "FR", Address: "ancienne", Email: "e@example.com"}
	require.NoError(t, database.NewContactAddressRepository(fx.db).CreateContactAddress(context.Background(), legacy))

	rec = fx.do(t, http.MethodPut, adminPath+"?id="+original.ID.String(), editorRole,
		`{"country":"France","address":"nouvelle","email":"e@example.com","locale":"fr"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[handler.ContactAddressResponse](t, rec)

	assert.Equal(t, legacy.ID, updated.ID)
	assert.Equal(t, "fr", updated.Locale)
	assert.Equal(t, "nouvelle", updated.Address)
	assert.Equal(t, int64(2), fx.count(t))
}

func TestAPI_UnmappedMethodIsNotAllowed(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(t, http.MethodPatch, adminPath+"?id="+uuid.NewString(), editorRole, `{"country":"France"}`)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code, rec.Body.String())
	assert.Equal(t, "DELETE, GET, POST, PUT", rec.Header().Get(echo.HeaderAllow))
	assert.Equal(t, "HTTP_ERROR", decode[domainerrors.Response](t, rec).Error.Code)

	// The session is still checked first.
	rec = fx.do(t, http.MethodPatch, adminPath, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_DuplicateCreateConflicts(t *testing.T) {
	fx := createTestAPI(t)
	body := `{"country":"France","address":"a","email":"e@example.com","locale":"fr"}`

	require.Equal(t, http.StatusOK, fx.do(t, http.MethodPost, adminPath, editorRole, body).Code)

	rec := fx.do(t, http.MethodPost, adminPath, editorRole, body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, int64(1), fx.count(t))
}

func TestAPI_SchemaMismatch(t *testing.T) {
	fx := createTestAPI(t)
	require.NoError(t, fx.db.Exec("DROP TABLE contact_addresses").Error)

	rec := fx.do(t, http.MethodPost, adminPath, editorRole, `{"country":"France","address":"a","email":"e@example.com"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decode[domainerrors.Response](t, rec)
	assert.True(t, envelope.NeedsTableCreation)
	assert.False(t, envelope.NeedsSchemaUpdate)

	// The list degrades instead of failing.
	rec = fx.do(t, http.MethodGet, adminPath, viewerRole, "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[handler.ListContactAddressesResponse](t, rec)
	assert.Empty(t, list.Items)
	assert.NotEmpty(t, list.Error)
}

func TestAPI_PublicLocalizedRead(t *testing.T) {
	fx := createTestAPI(t)

	for _, body := range []string{
		`{"country":"France","address":"english","email":"e@example.com"}`,
		`{"country":"France","address":"francais","email":"e@example.com","locale":"fr"}`,
		`{"country":"Spain","address":"english only","email":"e@example.com"}`,
	} {
		require.Equal(t, http.StatusOK, fx.do(t, http.MethodPost, adminPath, editorRole, body).Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/contact-addresses", nil)
	req.Header.Set("Accept-Language", "fr-CA,fr;q=0.9")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Values(echo.HeaderVary), "Accept-Language")

	list := decode[handler.LocalizedListResponse](t, rec)
	assert.Equal(t, "fr", list.Locale)
	require.Len(t, list.Items, 2)

	byCountry := make(map[string]*handler.LocalizedContactAddressResponse)
	for _, item := range list.Items {
		byCountry[item.Country] = item
	}
	assert.Equal(t, "francais", byCountry["France"].Address)
	assert.False(t, byCountry["France"].Fallback)
	assert.Equal(t, "english only", byCountry["Spain"].Address)
	assert.True(t, byCountry["Spain"].Fallback)

	rec = fx.do(t, http.MethodGet, "/api/contact-addresses?locale=zz-invalid!", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.DefaultLocale, decode[handler.LocalizedListResponse](t, rec).Locale)
}

func TestAPI_HealthAndRequestID(t *testing.T) {
	fx := createTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "trace-123")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "trace-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}
