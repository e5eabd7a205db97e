package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "contactdesk/internal/delivery/context"
	"contactdesk/internal/domain/entity"
	domainerrors "contactdesk/internal/domain/errors"
	"contactdesk/internal/domain/locale"
	"contactdesk/internal/domain/repository"
	"contactdesk/internal/domain/service"
	"contactdesk/internal/errors"
	"contactdesk/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// contactAddressService implements the ContactAddressUsecase interface.
type contactAddressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.ContactAddressRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// ContactAddressServiceParams holds dependencies for contactAddressService, injected by Fx.
type ContactAddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.ContactAddressRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewContactAddressService is the constructor for contactAddressService.
func NewContactAddressService(params ContactAddressServiceParams) usecase.ContactAddressUsecase {
	return &contactAddressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactAddressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListContactAddresses returns every default-locale variant, newest first.
func (srv *contactAddressService) ListContactAddresses(ctx context.Context) ([]*entity.ContactAddress, error) {
	addresses, err := srv.addressRepo.FindContactAddressesByLocale(ctx, entity.DefaultLocale)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list contact addresses")
	}

	return addresses, nil
}

// GetContactAddress returns a single variant.
func (srv *contactAddressService) GetContactAddress(ctx context.Context, id uuid.UUID) (*entity.ContactAddress, error) {
	address, err := srv.addressRepo.FindContactAddressByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find contact address")
	}

	return address, nil
}

// GetContactAddressTranslations resolves the country of a variant and returns its whole group.
func (srv *contactAddressService) GetContactAddressTranslations(ctx context.Context, id uuid.UUID) ([]*entity.ContactAddress, error) {
	seed, err := srv.addressRepo.FindContactAddressByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find contact address")
	}

	translations, err := srv.addressRepo.FindContactAddressesByCountry(ctx, seed.Country)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list contact address translations")
	}

	return translations, nil
}

// CreateContactAddress validates the input and stores a new variant.
func (srv *contactAddressService) CreateContactAddress(ctx context.Context, input *usecase.ContactAddressInput) (*entity.ContactAddress, error) {
	address, err := buildContactAddress(input)
	if err != nil {
		return nil, err
	}
	address.ID = uuid.New()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewContactAddressRepository()

		_, err := addressRepo.FindContactAddressByCountryAndLocale(ctx, address.Country, address.Locale)
		if err == nil {
			return repository.ErrDuplicateContactAddress
		}
		if !errors.Is(err, repository.ErrContactAddressNotFound) {
			return err
		}

		return addressRepo.CreateContactAddress(ctx, address)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create contact address",
			slog.String("country", address.Country),
			slog.String("locale", address.Locale),
			slog.Any("error", err),
		)

		return nil, mapRepositoryError(err, "failed to create contact address")
	}

	srv.log(ctx).Info("Contact address created",
		slog.String("id", address.ID.String()),
		slog.String("country", address.Country),
		slog.String("locale", address.Locale),
	)
	srv.publish(ctx, entity.ContactAddressCreated, address)

	return address, nil
}

// UpdateContactAddress applies an edit to the addressed variant or to its sibling in the target locale.
func (srv *contactAddressService) UpdateContactAddress(ctx context.Context, id uuid.UUID, input *usecase.ContactAddressInput) (*entity.ContactAddress, error) {
	target, err := buildContactAddress(input)
	if err != nil {
		return nil, err
	}

	eventType := entity.ContactAddressUpdated
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewContactAddressRepository()

		existing, err := addressRepo.FindContactAddressByID(ctx, id)
		if err != nil {
			return err
		}

		if locale.Same(existing.Locale, target.Locale) {
			target.ID = existing.ID
			target.CreatedAt = existing.CreatedAt

			return addressRepo.UpdateContactAddress(ctx, target)
		}

		// Different locale: edit the sibling translation, never the addressed record.
		eventType = entity.ContactAddressTranslated
		sibling, err := addressRepo.FindContactAddressByCountryAndLocale(ctx, target.Country, target.Locale)
		switch {
		case err == nil:
			target.ID = sibling.ID
			target.CreatedAt = sibling.CreatedAt

			return addressRepo.UpdateContactAddress(ctx, target)
		case errors.Is(err, repository.ErrContactAddressNotFound):
			target.ID = uuid.New()

			return addressRepo.CreateContactAddress(ctx, target)
		default:
			return err
		}
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update contact address",
			slog.String("id", id.String()),
			slog.String("locale", target.Locale),
			slog.Any("error", err),
		)

		return nil, mapRepositoryError(err, "failed to update contact address")
	}

	srv.log(ctx).Info("Contact address saved",
		slog.String("addressed_id", id.String()),
		slog.String("id", target.ID.String()),
		slog.String("event_type", string(eventType)),
		slog.String("locale", target.Locale),
	)
	srv.publish(ctx, eventType, target)

	return target, nil
}

// DeleteContactAddress removes every variant sharing the addressed record's country.
// When the record cannot be resolved it falls back to a delete by ID, which may remove nothing.
func (srv *contactAddressService) DeleteContactAddress(ctx context.Context, id uuid.UUID) error {
	var deleted *entity.ContactAddress
	var removed int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewContactAddressRepository()

		existing, err := addressRepo.FindContactAddressByID(ctx, id)
		if errors.Is(err, repository.ErrContactAddressNotFound) {
			err = addressRepo.DeleteContactAddress(ctx, id)
			if errors.Is(err, repository.ErrContactAddressNotFound) {
				return nil
			}

			return err
		}
		if err != nil {
			return err
		}

		removed, err = addressRepo.DeleteContactAddressesByCountry(ctx, existing.Country)
		if err != nil {
			return err
		}
		deleted = existing

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete contact address", slog.String("id", id.String()), slog.Any("error", err))

		return mapRepositoryError(err, "failed to delete contact address")
	}

	if deleted == nil {
		srv.log(ctx).Info("Contact address already absent", slog.String("id", id.String()))

		return nil
	}

	srv.log(ctx).Info("Contact address group deleted",
		slog.String("id", id.String()),
		slog.String("country", deleted.Country),
		slog.Int64("removed", removed),
	)
	srv.publish(ctx, entity.ContactAddressDeleted, deleted)

	return nil
}

// publish emits a change event after commit. Failures are logged only.
func (srv *contactAddressService) publish(ctx context.Context, eventType entity.ContactAddressEventType, address *entity.ContactAddress) {
	event := &service.ContactAddressEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.NewString(),
		Type:      eventType,
		ID:        address.ID.String(),
		Country:   address.Country,
		Locale:    address.Locale,
	}

	if err := srv.publisher.PublishContactAddressEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish contact address event",
			slog.String("event_type", string(eventType)),
			slog.String("id", event.ID),
			slog.Any("error", err),
		)
	}
}

// buildContactAddress trims and validates the input. Blank optional fields become nil.
func buildContactAddress(input *usecase.ContactAddressInput) (*entity.ContactAddress, error) {
	if input == nil {
		return nil, domainerrors.NewMissingFieldsError([]string{"country", "address", "email"})
	}

	address := &entity.ContactAddress{
		Country:  strings.TrimSpace(input.Country),
		Place:    trimOptional(input.Place),
		Address:  strings.TrimSpace(input.Address),
		Phones:   input.Phones.Normalize(),
		WhatsApp: trimOptional(input.WhatsApp),
		Email:    strings.TrimSpace(input.Email),
	}

	var missing []string
	if address.Country == "" {
		missing = append(missing, "country")
	}
	if address.Address == "" {
		missing = append(missing, "address")
	}
	if address.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return nil, domainerrors.NewMissingFieldsError(missing)
	}

	requested := strings.TrimSpace(input.Locale)
	if requested == "" {
		requested = entity.DefaultLocale
	}
	canonical, err := locale.Canonicalize(requested)
	if err != nil {
		return nil, domainerrors.ErrInvalidLocale.WithDetails(err.Error())
	}
	address.Locale = canonical

	return address, nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

// mapRepositoryError converts repository sentinels to domain errors. AppErrors pass through.
func mapRepositoryError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrContactAddressNotFound):
		return domainerrors.ErrContactAddressNotFound
	case errors.Is(err, repository.ErrDuplicateContactAddress):
		return domainerrors.ErrContactAddressConflict
	}

	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return errors.Wrap(err, message)
}
