package impl

import (
	"context"
	"testing"

	"contactdesk/config"
	"contactdesk/internal/domain/entity"
	"contactdesk/internal/domain/service"
	"contactdesk/internal/errors"
	mockService "contactdesk/internal/mocks/service"
	"contactdesk/internal/usecase"

	"github.com/stretchr/testify/require"
)

type revalidationServiceFixtures struct {
	service     usecase.RevalidationUsecase
	revalidator *mockService.MockSiteRevalidator
}

func createTestRevalidationService(t *testing.T, cfg *config.Config) revalidationServiceFixtures {
	revalidator := mockService.NewMockSiteRevalidator(t)

	return revalidationServiceFixtures{
		service: NewRevalidationService(RevalidationServiceParams{
			Config:      cfg,
			Revalidator: revalidator,
			Resolver:    newTestResolver(t),
			Logger:      newDiscardLogger(),
		}),
		revalidator: revalidator,
	}
}

func TestRevalidationService_HandleContactAddressEvent_Paths(t *testing.T) {
	allLocales := []string{"/en/contact", "/fr/contact", "/de/contact"}

	tests := []struct {
		name      string
		event     *service.ContactAddressEvent
		wantPaths []string
	}{
		{
			name:      "default locale update reaches every locale",
			event:     &service.ContactAddressEvent{Type: entity.ContactAddressUpdated, Country: "France", Locale: "en"},
			wantPaths: allLocales,
		},
		{
			name:      "translation only touches its locale",
			event:     &service.ContactAddressEvent{Type: entity.ContactAddressTranslated, Country: "France", Locale: "FR"},
			wantPaths: []string{"/fr/contact"},
		},
		{
			name:      "delete reaches every locale",
			event:     &service.ContactAddressEvent{Type: entity.ContactAddressDeleted, Country: "France", Locale: "fr"},
			wantPaths: allLocales,
		},
		{
			name:      "unpublished locale only refreshes the tag",
			event:     &service.ContactAddressEvent{Type: entity.ContactAddressCreated, Country: "France", Locale: "ja"},
			wantPaths: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRevalidationService(t, newTestConfig())
			ctx := context.Background()

			fx.revalidator.EXPECT().
				Revalidate(ctx, &service.RevalidationRequest{Paths: tt.wantPaths, Tags: []string{"contact-addresses"}}).
				Return(nil)

			require.NoError(t, fx.service.HandleContactAddressEvent(ctx, tt.event))
		})
	}
}

func TestRevalidationService_HandleContactAddressEvent_NothingToDo(t *testing.T) {
	cfg := newTestConfig()
	cfg.Revalidate.Tag = ""
	fx := createTestRevalidationService(t, cfg)

	err := fx.service.HandleContactAddressEvent(context.Background(), &service.ContactAddressEvent{
		Type:    entity.ContactAddressCreated,
		Country: "France",
		Locale:  "ja",
	})
	require.NoError(t, err)
}

func TestRevalidationService_HandleContactAddressEvent_InvalidEvent(t *testing.T) {
	fx := createTestRevalidationService(t, newTestConfig())

	tests := []struct {
		name  string
		event *service.ContactAddressEvent
	}{
		{name: "nil", event: nil},
		{name: "unknown type", event: &service.ContactAddressEvent{Type: "archived", Country: "France"}},
		{name: "no country", event: &service.ContactAddressEvent{Type: entity.ContactAddressCreated, Country: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fx.service.HandleContactAddressEvent(context.Background(), tt.event)
			require.ErrorIs(t, err, usecase.ErrInvalidEvent)
		})
	}
}

func TestRevalidationService_HandleContactAddressEvent_RevalidatorError(t *testing.T) {
	fx := createTestRevalidationService(t, newTestConfig())
	ctx := context.Background()

	fx.revalidator.EXPECT().
		Revalidate(ctx, &service.RevalidationRequest{Paths: []string{"/fr/contact"}, Tags: []string{"contact-addresses"}}).
		Return(errors.Wrap(service.ErrRevalidationRejected, "status 401"))

	err := fx.service.HandleContactAddressEvent(ctx, &service.ContactAddressEvent{
		Type:    entity.ContactAddressTranslated,
		Country: "France",
		Locale:  "fr",
	})
	require.ErrorIs(t, err, service.ErrRevalidationRejected)
}
