package impl

import (
	"context"
	"testing"
	"time"

	"contactdesk/internal/domain/entity"
	domainerrors "contactdesk/internal/domain/errors"
	"contactdesk/internal/errors"
	mockRepo "contactdesk/internal/mocks/repository"
	"contactdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type localizedServiceFixtures struct {
	service     usecase.LocalizedContactAddressUsecase
	addressRepo *mockRepo.MockContactAddressRepository
}

func createTestLocalizedService(t *testing.T) localizedServiceFixtures {
	addressRepo := mockRepo.NewMockContactAddressRepository(t)

	return localizedServiceFixtures{
		service: NewLocalizedContactAddressService(LocalizedContactAddressServiceParams{
			AddressRepo: addressRepo,
			Resolver:    newTestResolver(t),
			Logger:      newDiscardLogger(),
		}),
		addressRepo: addressRepo,
	}
}

func TestLocalizedService_PrefersRequestedLocaleAndFallsBack(t *testing.T) {
	fx := createTestLocalizedService(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	franceEN := &entity.ContactAddress{ID: uuid.New(), Country: "France", Locale: "en", CreatedAt: base.Add(2 * time.Hour)}
	franceFR := &entity.ContactAddress{ID: uuid.New(), Country: "France", Locale: "fr", CreatedAt: base.Add(3 * time.Hour)}
	spainEN := &entity.ContactAddress{ID: uuid.New(), Country: "Spain", Locale: "en", CreatedAt: base.Add(time.Hour)}

	fx.addressRepo.EXPECT().
		FindContactAddressesByLocales(ctx, []string{"fr", "en"}).
		Return([]*entity.ContactAddress{franceFR, franceEN, spainEN}, nil)

	result, err := fx.service.ListLocalizedContactAddresses(ctx, "fr", "")
	require.NoError(t, err)
	assert.Equal(t, "fr", result.Locale)
	require.Len(t, result.Items, 2)

	assert.Equal(t, franceFR.ID, result.Items[0].ID)
	assert.False(t, result.Items[0].Fallback)
	assert.Equal(t, spainEN.ID, result.Items[1].ID)
	assert.True(t, result.Items[1].Fallback)
}

func TestLocalizedService_RequestedVariantWinsRegardlessOfOrder(t *testing.T) {
	fx := createTestLocalizedService(t)
	ctx := context.Background()

	franceEN := &entity.ContactAddress{ID: uuid.New(), Country: "France", Locale: "en"}
	franceDE := &entity.ContactAddress{ID: uuid.New(), Country: "France", Locale: "de"}

	fx.addressRepo.EXPECT().
		FindContactAddressesByLocales(ctx, []string{"de", "en"}).
		Return([]*entity.ContactAddress{franceEN, franceDE}, nil)

	result, err := fx.service.ListLocalizedContactAddresses(ctx, "", "de-CH,de;q=0.9,en;q=0.5")
	require.NoError(t, err)
	assert.Equal(t, "de", result.Locale)
	require.Len(t, result.Items, 1)
	assert.Equal(t, franceDE.ID, result.Items[0].ID)
	assert.False(t, result.Items[0].Fallback)
}

func TestLocalizedService_DefaultLocaleQueriesOnce(t *testing.T) {
	fx := createTestLocalizedService(t)
	ctx := context.Background()

	fx.addressRepo.EXPECT().
		FindContactAddressesByLocales(ctx, []string{"en"}).
		Return([]*entity.ContactAddress{}, nil)

	result, err := fx.service.ListLocalizedContactAddresses(ctx, "ja", "")
	require.NoError(t, err)
	assert.Equal(t, "en", result.Locale)
	assert.Empty(t, result.Items)
	assert.NotNil(t, result.Items)
}

func TestLocalizedService_StoreErrorKeepsLocale(t *testing.T) {
	fx := createTestLocalizedService(t)
	ctx := context.Background()

	fx.addressRepo.EXPECT().
		FindContactAddressesByLocales(ctx, []string{"fr", "en"}).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "list"))

	result, err := fx.service.ListLocalizedContactAddresses(ctx, "fr", "")
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "fr", result.Locale)
	assert.Empty(t, result.Items)
}
