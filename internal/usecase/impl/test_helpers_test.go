package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"contactdesk/config"
	"contactdesk/internal/domain/locale"
	"contactdesk/internal/domain/repository"
	mockRepo "contactdesk/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Locales: &config.LocalesConfig{
			Default:   "en",
			Supported: []string{"en", "fr", "de"},
		},
		Revalidate: &config.RevalidateConfig{
			URL:          "http://site.test/api/revalidate",
			PathTemplate: "/{locale}/contact",
			Tag:          "contact-addresses",
		},
	}
}

func newTestResolver(t *testing.T) *locale.Resolver {
	t.Helper()

	resolver, err := NewLocaleResolver(newTestConfig())
	require.NoError(t, err)

	return resolver
}

// expectTransaction makes txManager run the callback against txRepo.
func expectTransaction(t *testing.T, ctx context.Context, txManager *mockRepo.MockTransactionManager, txRepo *mockRepo.MockContactAddressRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewContactAddressRepository().Return(txRepo)

			return fn(factory)
		})
}

func strPtr(s string) *string {
	return &s
}
