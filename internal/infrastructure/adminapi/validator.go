// Package adminapi holds the client-side boundary to the upstream admin
// API. The gateway treats it as opaque: the only contract the guard relies
// on is "2xx means the admin session is still valid".
package adminapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/webproshub/marketplace-gateway/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// Validator confirms admin bearer tokens against the admin API validation
// endpoint. Every call is bounded by a timeout; a timeout counts as a
// validation failure so a stalled upstream fails closed instead of leaving
// the admin area reachable on an unconfirmed session.
type Validator struct {
	url     string
	timeout time.Duration
	client  *http.Client
	log     zerolog.Logger
}

func NewValidator(url string, timeout time.Duration, log zerolog.Logger) *Validator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Validator{
		url:     url,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Validate returns nil when the admin API accepts the token (any 2xx).
// Non-2xx responses map to domain.ErrTokenInvalid; transport errors are
// returned wrapped. Callers must treat every non-nil error as an invalid
// session.
func (v *Validator) Validate(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.url, nil)
	if err != nil {
		return fmt.Errorf("build validation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.client.Do(req)
	if err != nil {
		v.log.Warn().Err(err).Msg("admin token validation round trip failed")
		return fmt.Errorf("validate admin token: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.ErrTokenInvalid
	}
	return nil
}
