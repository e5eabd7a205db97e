// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"contactdesk/internal/domain/entity"
	"contactdesk/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrContactAddressNotFound is returned when no contact address matches the lookup.
	ErrContactAddressNotFound = errors.New("contact address not found")

	// ErrDuplicateContactAddress is returned when a variant already exists for the same country and locale.
	ErrDuplicateContactAddress = errors.New("contact address already exists for country and locale")
)

// ContactAddressRepository defines the operations on stored contact address translations.
// Implementations return records with phones already normalized.
type ContactAddressRepository interface {
	// CreateContactAddress persists a new locale variant.
	CreateContactAddress(ctx context.Context, address *entity.ContactAddress) error

	// FindContactAddressByID retrieves a single variant by its ID.
	FindContactAddressByID(ctx context.Context, id uuid.UUID) (*entity.ContactAddress, error)

	// FindContactAddressByCountryAndLocale retrieves the variant of a translation group in one locale.
	FindContactAddressByCountryAndLocale(ctx context.Context, country, locale string) (*entity.ContactAddress, error)

	// FindContactAddressesByLocale lists every variant in a locale, newest first.
	FindContactAddressesByLocale(ctx context.Context, locale string) ([]*entity.ContactAddress, error)

	// FindContactAddressesByLocales lists every variant in any of the given locales, newest first.
	FindContactAddressesByLocales(ctx context.Context, locales []string) ([]*entity.ContactAddress, error)

	// FindContactAddressesByCountry lists a whole translation group ordered by locale.
	FindContactAddressesByCountry(ctx context.Context, country string) ([]*entity.ContactAddress, error)

	// UpdateContactAddress overwrites the mutable fields of an existing variant.
	UpdateContactAddress(ctx context.Context, address *entity.ContactAddress) error

	// DeleteContactAddressesByCountry removes a whole translation group and returns the number of rows removed.
	DeleteContactAddressesByCountry(ctx context.Context, country string) (int64, error)

	// DeleteContactAddress removes a single variant by ID.
	// Returns ErrContactAddressNotFound if nothing was removed.
	DeleteContactAddress(ctx context.Context, id uuid.UUID) error
}
