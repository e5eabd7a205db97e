package service

import (
	"context"

	"contactdesk/internal/domain/entity"
)

// ContactAddressEvent is published after a change to a translation group is committed.
type ContactAddressEvent struct {
	RequestID string                         `json:"request_id,omitempty"` // For distributed tracing
	EventID   string                         `json:"event_id"`
	Type      entity.ContactAddressEventType `json:"type"`
	ID        string                         `json:"id"`
	Country   string                         `json:"country"`
	Locale    string                         `json:"locale,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishContactAddressEvent publishes a change event for async processing
	PublishContactAddressEvent(ctx context.Context, event *ContactAddressEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
