package usecase

import (
	"context"

	"contactdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ContactAddressInput is the body of a create or update request.
// Fields are trimmed and phones normalized by the use case, not by the caller.
type ContactAddressInput struct {
	Country  string
	Place    *string
	Address  string
	Phones   entity.RawPhones
	WhatsApp *string
	Email    string
	Locale   string // Defaults to entity.DefaultLocale when blank.
}

// ContactAddressUsecase defines the admin operations on contact address translations.
type ContactAddressUsecase interface {
	// ListContactAddresses returns every default-locale variant, newest first.
	ListContactAddresses(ctx context.Context) ([]*entity.ContactAddress, error)

	// GetContactAddress returns a single variant.
	GetContactAddress(ctx context.Context, id uuid.UUID) (*entity.ContactAddress, error)

	// GetContactAddressTranslations returns the whole translation group of a variant, ordered by locale.
	GetContactAddressTranslations(ctx context.Context, id uuid.UUID) ([]*entity.ContactAddress, error)

	// CreateContactAddress stores a new variant. A second variant for the same country and locale is rejected.
	CreateContactAddress(ctx context.Context, input *ContactAddressInput) (*entity.ContactAddress, error)

	// UpdateContactAddress updates the addressed variant when the locale matches,
	// otherwise it updates or creates the sibling in the target locale.
	UpdateContactAddress(ctx context.Context, id uuid.UUID, input *ContactAddressInput) (*entity.ContactAddress, error)

	// DeleteContactAddress removes the whole translation group of a variant.
	DeleteContactAddress(ctx context.Context, id uuid.UUID) error
}

// LocalizedContactAddresses is the public listing for one locale.
type LocalizedContactAddresses struct {
	Locale string
	Items  []*entity.LocalizedContactAddress
}

// LocalizedContactAddressUsecase serves contact addresses to site readers.
type LocalizedContactAddressUsecase interface {
	// ListLocalizedContactAddresses picks one variant per translation group for the resolved locale.
	// On a store error the result still carries the resolved locale and an empty list.
	ListLocalizedContactAddresses(ctx context.Context, requestedLocale, acceptLanguage string) (*LocalizedContactAddresses, error)
}
