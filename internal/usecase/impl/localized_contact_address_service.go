package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"contactdesk/config"
	deliverycontext "contactdesk/internal/delivery/context"
	"contactdesk/internal/domain/entity"
	"contactdesk/internal/domain/locale"
	"contactdesk/internal/domain/repository"
	"contactdesk/internal/usecase"

	"go.uber.org/fx"
)

// NewLocaleResolver builds the resolver for the published site locales.
func NewLocaleResolver(cfg *config.Config) (*locale.Resolver, error) {
	if cfg.Locales == nil {
		return locale.NewResolver(entity.DefaultLocale, nil)
	}

	return locale.NewResolver(cfg.Locales.Default, cfg.Locales.Supported)
}

type localizedContactAddressService struct {
	addressRepo repository.ContactAddressRepository
	resolver    *locale.Resolver
	logger      *slog.Logger
}

// LocalizedContactAddressServiceParams holds dependencies for the public read service.
type LocalizedContactAddressServiceParams struct {
	fx.In

	AddressRepo repository.ContactAddressRepository
	Resolver    *locale.Resolver
	Logger      *slog.Logger
}

// NewLocalizedContactAddressService is the constructor for localizedContactAddressService.
func NewLocalizedContactAddressService(params LocalizedContactAddressServiceParams) usecase.LocalizedContactAddressUsecase {
	return &localizedContactAddressService{
		addressRepo: params.AddressRepo,
		resolver:    params.Resolver,
		logger:      params.Logger,
	}
}

// ListLocalizedContactAddresses returns, per country, the variant in the resolved
// locale or else the default-locale variant marked as a fallback.
func (srv *localizedContactAddressService) ListLocalizedContactAddresses(ctx context.Context, requestedLocale, acceptLanguage string) (*usecase.LocalizedContactAddresses, error) {
	resolved := srv.resolver.Resolve(requestedLocale, acceptLanguage)
	defaultLocale := srv.resolver.Default()
	result := &usecase.LocalizedContactAddresses{
		Locale: resolved,
		Items:  []*entity.LocalizedContactAddress{},
	}

	locales := []string{resolved}
	if resolved != defaultLocale {
		locales = append(locales, defaultLocale)
	}

	records, err := srv.addressRepo.FindContactAddressesByLocales(ctx, locales)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to list localized contact addresses",
			slog.String("locale", resolved),
			slog.Any("error", err),
		)

		return result, mapRepositoryError(err, "failed to list localized contact addresses")
	}

	chosen := make(map[string]*entity.LocalizedContactAddress, len(records))
	order := make([]string, 0, len(records))
	for _, record := range records {
		current, seen := chosen[record.Country]
		if !seen {
			order = append(order, record.Country)
		}

		switch {
		case locale.Same(record.Locale, resolved):
			if !seen || current.Fallback {
				chosen[record.Country] = &entity.LocalizedContactAddress{ContactAddress: record}
			}
		case !seen:
			chosen[record.Country] = &entity.LocalizedContactAddress{ContactAddress: record, Fallback: true}
		}
	}

	for _, country := range order {
		result.Items = append(result.Items, chosen[country])
	}
	slices.SortStableFunc(result.Items, func(a, b *entity.LocalizedContactAddress) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	return result, nil
}
