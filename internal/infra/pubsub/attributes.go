package pubsub

import (
	"strings"

	"contactdesk/internal/domain/service"
)

// eventAttributes builds the message attributes used for subscription filtering and tracing.
func eventAttributes(event *service.ContactAddressEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": string(event.Type),
		"country":    event.Country,
	}
	if event.Locale != "" {
		attributes["locale"] = event.Locale
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// orderingKey groups the events of one translation group.
func orderingKey(event *service.ContactAddressEvent) string {
	return "contact-address:" + strings.TrimSpace(event.Country)
}
