// Package revalidate calls the marketing site's on-demand revalidation webhook.
package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"contactdesk/config"
	deliverycontext "contactdesk/internal/delivery/context"
	"contactdesk/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultTimeout  = 10 * time.Second
	maxErrorBodyLen = 512
)

type httpRevalidator struct {
	url        string
	secret     string
	httpClient *http.Client
	logger     *slog.Logger
}

type noopRevalidator struct {
	logger *slog.Logger
}

// NewSiteRevalidator returns a webhook client, or a logging no-op when no URL is configured.
func NewSiteRevalidator(cfg *config.Config, logger *slog.Logger) service.SiteRevalidator {
	if cfg.Revalidate == nil || cfg.Revalidate.URL == "" {
		logger.Info("Revalidation webhook not configured, using no-op revalidator")

		return &noopRevalidator{logger: logger}
	}

	timeout := cfg.Revalidate.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &httpRevalidator{
		url:        cfg.Revalidate.URL,
		secret:     cfg.Revalidate.Secret,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Revalidate POSTs the request as JSON. Rejections (4xx other than 408 and 429)
// wrap service.ErrRevalidationRejected; every other failure may be retried.
func (r *httpRevalidator) Revalidate(ctx context.Context, req *service.RevalidationRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if r.secret != "" {
		httpReq.Header.Set("Authorization", "Bearer "+r.secret)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, "revalidation request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		deliverycontext.GetLoggerOrDefault(ctx, r.logger).Info("[Revalidate] Site revalidated",
			slog.Any("paths", req.Paths),
			slog.Any("tags", req.Tags),
		)

		return nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
	if isPermanentStatus(resp.StatusCode) {
		return errors.Wrapf(service.ErrRevalidationRejected, "site returned %d: %s", resp.StatusCode, snippet)
	}

	return errors.Errorf("site returned %d: %s", resp.StatusCode, snippet)
}

func isPermanentStatus(status int) bool {
	return status >= 400 && status < 500 &&
		status != http.StatusRequestTimeout &&
		status != http.StatusTooManyRequests
}

func (r *noopRevalidator) Revalidate(ctx context.Context, req *service.RevalidationRequest) error {
	deliverycontext.GetLoggerOrDefault(ctx, r.logger).Debug("[Revalidate] Webhook disabled, skipping",
		slog.Any("paths", req.Paths),
		slog.Any("tags", req.Tags),
	)

	return nil
}
