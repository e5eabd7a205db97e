package handler

import (
	"time"

	"contactdesk/internal/domain/entity"
	"contactdesk/internal/usecase"

	"github.com/google/uuid"
)

// ContactAddressRequest is the body of create and update requests.
// Required fields are checked after trimming by the use case.
type ContactAddressRequest struct {
	Country  string           `json:"country" validate:"max=255"`
	Place    *string          `json:"place" validate:"omitempty,max=255"`
	Address  string           `json:"address" validate:"max=2000"`
	Phones   entity.RawPhones `json:"phones"`
	WhatsApp *string          `json:"whatsapp" validate:"omitempty,max=255"`
	Email    string           `json:"email" validate:"max=255"`
	Locale   string           `json:"locale" validate:"max=35"`
}

func (r *ContactAddressRequest) toInput() *usecase.ContactAddressInput {
	return &usecase.ContactAddressInput{
		Country:  r.Country,
		Place:    r.Place,
		Address:  r.Address,
		Phones:   r.Phones,
		WhatsApp: r.WhatsApp,
		Email:    r.Email,
		Locale:   r.Locale,
	}
}

// ContactAddressResponse is the JSON shape of a stored record.
type ContactAddressResponse struct {
	ID        uuid.UUID `json:"id"`
	Country   string    `json:"country"`
	Locale    string    `json:"locale"`
	Place     *string   `json:"place"`
	Address   string    `json:"address"`
	Phones    []string  `json:"phones"`
	WhatsApp  *string   `json:"whatsapp"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListContactAddressesResponse is returned when no id is given.
// Error is set when the store could not be read; Items is then empty.
type ListContactAddressesResponse struct {
	Items []*ContactAddressResponse `json:"items"`
	Error string                    `json:"error,omitempty"`
}

// TranslationsResponse is returned for id plus all=true.
type TranslationsResponse struct {
	Translations []*ContactAddressResponse `json:"translations"`
}

// DeleteResponse acknowledges a group delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// LocalizedContactAddressResponse is one entry of the public listing.
type LocalizedContactAddressResponse struct {
	*ContactAddressResponse
	Fallback bool `json:"fallback"`
}

// LocalizedListResponse is the public listing for the resolved locale.
type LocalizedListResponse struct {
	Locale string                             `json:"locale"`
	Items  []*LocalizedContactAddressResponse `json:"items"`
	Error  string                             `json:"error,omitempty"`
}

func toContactAddressResponse(a *entity.ContactAddress) *ContactAddressResponse {
	phones := a.Phones
	if phones == nil {
		phones = []string{}
	}

	return &ContactAddressResponse{
		ID:        a.ID,
		Country:   a.Country,
		Locale:    a.Locale,
		Place:     a.Place,
		Address:   a.Address,
		Phones:    phones,
		WhatsApp:  a.WhatsApp,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toContactAddressResponses(list []*entity.ContactAddress) []*ContactAddressResponse {
	out := make([]*ContactAddressResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toContactAddressResponse(a))
	}

	return out
}
