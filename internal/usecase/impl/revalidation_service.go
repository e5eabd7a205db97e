package impl

import (
	"context"
	"log/slog"
	"strings"

	"contactdesk/config"
	deliverycontext "contactdesk/internal/delivery/context"
	"contactdesk/internal/domain/entity"
	"contactdesk/internal/domain/locale"
	"contactdesk/internal/domain/service"
	"contactdesk/internal/errors"
	"contactdesk/internal/usecase"

	"go.uber.org/fx"
)

const localePlaceholder = "{locale}"

type revalidationService struct {
	revalidator  service.SiteRevalidator
	resolver     *locale.Resolver
	pathTemplate string
	tag          string
	logger       *slog.Logger
}

// RevalidationServiceParams holds dependencies for the revalidation service.
type RevalidationServiceParams struct {
	fx.In

	Config      *config.Config
	Revalidator service.SiteRevalidator
	Resolver    *locale.Resolver
	Logger      *slog.Logger
}

// NewRevalidationService is the constructor for revalidationService.
func NewRevalidationService(params RevalidationServiceParams) usecase.RevalidationUsecase {
	srv := &revalidationService{
		revalidator: params.Revalidator,
		resolver:    params.Resolver,
		logger:      params.Logger,
	}
	if params.Config.Revalidate != nil {
		srv.pathTemplate = params.Config.Revalidate.PathTemplate
		srv.tag = params.Config.Revalidate.Tag
	}

	return srv
}

// HandleContactAddressEvent revalidates the pages showing the changed group.
func (srv *revalidationService) HandleContactAddressEvent(ctx context.Context, event *service.ContactAddressEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	req := srv.buildRequest(event)
	if len(req.Paths) == 0 && len(req.Tags) == 0 {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("[Revalidate] Nothing to revalidate",
			slog.String("event_type", string(event.Type)),
			slog.String("locale", event.Locale),
		)

		return nil
	}

	if err := srv.revalidator.Revalidate(ctx, req); err != nil {
		return errors.Wrap(err, "failed to revalidate site")
	}

	return nil
}

// buildRequest lists the localized pages affected by the event. Default-locale
// changes and deletions reach every locale, since other locales fall back to them.
func (srv *revalidationService) buildRequest(event *service.ContactAddressEvent) *service.RevalidationRequest {
	req := &service.RevalidationRequest{
		Paths: []string{},
		Tags:  []string{},
	}
	if srv.tag != "" {
		req.Tags = append(req.Tags, srv.tag)
	}
	if srv.pathTemplate == "" {
		return req
	}

	var locales []string
	switch {
	case event.Type == entity.ContactAddressDeleted,
		event.Locale == "",
		locale.Same(event.Locale, srv.resolver.Default()):
		locales = srv.resolver.Supported()
	case srv.resolver.IsSupported(event.Locale):
		canonical, _ := locale.Canonicalize(event.Locale)
		locales = []string{canonical}
	}

	for _, l := range locales {
		req.Paths = append(req.Paths, strings.ReplaceAll(srv.pathTemplate, localePlaceholder, l))
	}

	return req
}

func validateEvent(event *service.ContactAddressEvent) error {
	if event == nil {
		return errors.Wrap(usecase.ErrInvalidEvent, "event is nil")
	}

	switch event.Type {
	case entity.ContactAddressCreated, entity.ContactAddressUpdated,
		entity.ContactAddressTranslated, entity.ContactAddressDeleted:
	default:
		return errors.Wrapf(usecase.ErrInvalidEvent, "unknown event type %q", event.Type)
	}

	if strings.TrimSpace(event.Country) == "" {
		return errors.Wrap(usecase.ErrInvalidEvent, "event has no country")
	}

	return nil
}
