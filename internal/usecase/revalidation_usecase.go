package usecase

import (
	"context"

	"contactdesk/internal/domain/service"
	"contactdesk/internal/errors"
)

// ErrInvalidEvent is returned for events that can never be processed.
var ErrInvalidEvent = errors.New("invalid contact address event")

// RevalidationUsecase turns contact address change events into site revalidation calls.
type RevalidationUsecase interface {
	HandleContactAddressEvent(ctx context.Context, event *service.ContactAddressEvent) error
}
