package database

import (
	"context"

	"contactdesk/internal/errors"
	"contactdesk/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// AutoMigrate creates the contact_addresses table, adds missing columns and
// builds the unique (country, locale) index.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.ContactAddressModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate contact_addresses")
	}

	return nil
}
