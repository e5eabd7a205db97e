// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLocale is the locale a contact address is written in when the caller does not name one.
const DefaultLocale = "en"

// ContactAddress is one locale variant of a published contact address.
// All variants sharing the same Country form a translation group.
type ContactAddress struct {
	ID        uuid.UUID // Immutable identifier generated at creation.
	Country   string    // Linkage key shared by every translation of the same place.
	Locale    string    // Canonical BCP 47 tag of this variant, e.g. "en", "fr".
	Place     *string   // Optional display label.
	Address   string    // Street or location description.
	Phones    []string  // Normalized phone numbers; may be empty.
	WhatsApp  *string   // Optional WhatsApp contact.
	Email     string    // Contact email.
	CreatedAt time.Time // Timestamp of creation.
	UpdatedAt time.Time // Timestamp of the last mutation.
}

// ContactAddressEventType names the kind of change applied to a translation group.
type ContactAddressEventType string

const (
	ContactAddressCreated    ContactAddressEventType = "created"
	ContactAddressUpdated    ContactAddressEventType = "updated"
	ContactAddressTranslated ContactAddressEventType = "translated"
	ContactAddressDeleted    ContactAddressEventType = "deleted"
)

// LocalizedContactAddress is a record chosen for a requested locale.
// Fallback is true when the group had no variant in that locale and the default-locale variant was used.
type LocalizedContactAddress struct {
	*ContactAddress
	Fallback bool
}
