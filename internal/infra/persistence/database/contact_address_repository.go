package database

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"contactdesk/internal/domain/entity"
	"contactdesk/internal/domain/repository"
	"contactdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactAddressRepository implements the repository.ContactAddressRepository interface.
type contactAddressRepository struct {
	db *gorm.DB
}

// NewContactAddressRepository is the constructor for contactAddressRepository.
func NewContactAddressRepository(db *gorm.DB) repository.ContactAddressRepository {
	return &contactAddressRepository{
		db: db,
	}
}

// CreateContactAddress persists a new locale variant. A missing ID is generated here.
func (repo *contactAddressRepository) CreateContactAddress(ctx context.Context, address *entity.ContactAddress) error {
	if address.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate contact address ID")
		}
		address.ID = id
	}

	addressM, err := fromContactAddressDomain(address)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateContactAddress
		}

		return translateError(err, "failed to create contact address")
	}

	address.Phones = toContactAddressDomain(addressM).Phones
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindContactAddressByID retrieves a single variant by its ID.
func (repo *contactAddressRepository) FindContactAddressByID(ctx context.Context, id uuid.UUID) (*entity.ContactAddress, error) {
	var addressM model.ContactAddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactAddressNotFound
		}

		return nil, translateError(err, "failed to find contact address by ID")
	}

	return toContactAddressDomain(&addressM), nil
}

// FindContactAddressByCountryAndLocale retrieves the variant of a translation group in one locale.
// Locales compare case-insensitively so rows stored before canonicalization (e.g. "FR") still match.
func (repo *contactAddressRepository) FindContactAddressByCountryAndLocale(ctx context.Context, country, locale string) (*entity.ContactAddress, error) {
	var addressM model.ContactAddressModel

	if err := repo.db.WithContext(ctx).
		Where("country = ? AND LOWER(locale) = ?", country, strings.ToLower(locale)).
		Order("created_at ASC").
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactAddressNotFound
		}

		return nil, translateError(err, "failed to find contact address by country and locale")
	}

	return toContactAddressDomain(&addressM), nil
}

// FindContactAddressesByLocale lists every variant in a locale, newest first.
func (repo *contactAddressRepository) FindContactAddressesByLocale(ctx context.Context, locale string) ([]*entity.ContactAddress, error) {
	return repo.FindContactAddressesByLocales(ctx, []string{locale})
}

// FindContactAddressesByLocales lists every variant in any of the given locales, newest first.
// Locales compare case-insensitively.
func (repo *contactAddressRepository) FindContactAddressesByLocales(ctx context.Context, locales []string) ([]*entity.ContactAddress, error) {
	if len(locales) == 0 {
		return []*entity.ContactAddress{}, nil
	}

	lowered := make([]string, 0, len(locales))
	for _, l := range locales {
		lowered = append(lowered, strings.ToLower(l))
	}

	var addressModels []*model.ContactAddressModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(locale) IN ?", lowered).
		Order("created_at DESC").
		Find(&addressModels).Error; err != nil {
		return nil, translateError(err, "failed to list contact addresses by locale")
	}

	return toContactAddressDomainList(addressModels), nil
}

// FindContactAddressesByCountry lists a whole translation group ordered by locale.
func (repo *contactAddressRepository) FindContactAddressesByCountry(ctx context.Context, country string) ([]*entity.ContactAddress, error) {
	var addressModels []*model.ContactAddressModel

	if err := repo.db.WithContext(ctx).
		Where("country = ?", country).
		Order("locale ASC").
		Find(&addressModels).Error; err != nil {
		return nil, translateError(err, "failed to list contact address translations")
	}

	return toContactAddressDomainList(addressModels), nil
}

// UpdateContactAddress overwrites the mutable fields of an existing variant and refreshes UpdatedAt.
func (repo *contactAddressRepository) UpdateContactAddress(ctx context.Context, address *entity.ContactAddress) error {
	addressM, err := fromContactAddressDomain(address)
	if err != nil {
		return err
	}

	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ContactAddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"country":    addressM.Country,
			"locale":     addressM.Locale,
			"place":      addressM.Place,
			"address":    addressM.Address,
			"phones":     addressM.Phones,
			"whatsapp":   addressM.WhatsApp,
			"email":      addressM.Email,
			"updated_at": now,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateContactAddress
		}

		return translateError(result.Error, "failed to update contact address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactAddressNotFound
	}

	address.Phones = toContactAddressDomain(addressM).Phones
	address.UpdatedAt = now

	return nil
}

// DeleteContactAddressesByCountry removes a whole translation group.
func (repo *contactAddressRepository) DeleteContactAddressesByCountry(ctx context.Context, country string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("country = ?", country).
		Delete(&model.ContactAddressModel{})

	if result.Error != nil {
		return 0, translateError(result.Error, "failed to delete contact address group")
	}

	return result.RowsAffected, nil
}

// DeleteContactAddress removes a single variant by ID.
func (repo *contactAddressRepository) DeleteContactAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContactAddressModel{})

	if result.Error != nil {
		return translateError(result.Error, "failed to delete contact address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactAddressNotFound
	}

	return nil
}

// Mapper functions

func fromContactAddressDomain(address *entity.ContactAddress) (*model.ContactAddressModel, error) {
	phones, err := encodePhones(address.Phones)
	if err != nil {
		return nil, err
	}

	return &model.ContactAddressModel{
		ID:        address.ID,
		Country:   address.Country,
		Locale:    address.Locale,
		Place:     address.Place,
		Address:   address.Address,
		Phones:    phones,
		WhatsApp:  address.WhatsApp,
		Email:     address.Email,
		CreatedAt: address.CreatedAt,
		UpdatedAt: address.UpdatedAt,
	}, nil
}

func toContactAddressDomain(addressM *model.ContactAddressModel) *entity.ContactAddress {
	return &entity.ContactAddress{
		ID:        addressM.ID,
		Country:   addressM.Country,
		Locale:    addressM.Locale,
		Place:     addressM.Place,
		Address:   addressM.Address,
		Phones:    entity.PhonesFromNullableText(addressM.Phones).Normalize(),
		WhatsApp:  addressM.WhatsApp,
		Email:     addressM.Email,
		CreatedAt: addressM.CreatedAt,
		UpdatedAt: addressM.UpdatedAt,
	}
}

func toContactAddressDomainList(addressModels []*model.ContactAddressModel) []*entity.ContactAddress {
	addresses := make([]*entity.ContactAddress, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toContactAddressDomain(addressM))
	}

	return addresses
}

// encodePhones stores the normalized list as a JSON array.
func encodePhones(phones []string) (*string, error) {
	data, err := json.Marshal(entity.PhonesFromList(phones).Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode phones")
	}
	encoded := string(data)

	return &encoded, nil
}
