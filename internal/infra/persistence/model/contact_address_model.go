package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactAddressModel is the GORM-specific struct for the 'contact_addresses' table.
// Phones holds a JSON-encoded list; older rows may contain a bare string or NULL.
type ContactAddressModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Country   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_contact_addresses_country_locale,priority:1"`
	Locale    string    `gorm:"type:varchar(35);not null;default:'en';uniqueIndex:idx_contact_addresses_country_locale,priority:2;index"`
	Place     *string   `gorm:"type:varchar(255)"`
	Address   string    `gorm:"type:text;not null"`
	Phones    *string   `gorm:"type:text"`
	WhatsApp  *string   `gorm:"column:whatsapp;type:varchar(255)"`
	Email     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactAddressModel) TableName() string {
	return "contact_addresses"
}
