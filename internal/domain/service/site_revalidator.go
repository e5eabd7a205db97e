package service

import (
	"context"

	"contactdesk/internal/errors"
)

// ErrRevalidationRejected is returned when the site refuses a revalidation request.
// Retrying the same request will not succeed.
var ErrRevalidationRejected = errors.New("revalidation rejected by site")

// RevalidationRequest lists what the marketing site should rebuild.
type RevalidationRequest struct {
	Paths []string `json:"paths"`
	Tags  []string `json:"tags"`
}

// SiteRevalidator asks the statically rendered site to refresh cached pages.
type SiteRevalidator interface {
	Revalidate(ctx context.Context, req *RevalidationRequest) error
}
