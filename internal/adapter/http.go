package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
)

const (
	serverTimePath = "/api/time"

	serverTimeRetries   = 2
	serverTimeRetryWait = 50 * time.Millisecond
)

type serverTimeResponse struct {
	Now time.Time `json:"now"`
}

type httpTimeAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPTimeAdapter constructs the REST implementation of [TimeAdapter].
// Transient failures (transport errors, 429 and 5xx) are retried a couple
// of times before the error is reported.
//
// Returns an error if the URL is empty or cannot be parsed.
func NewHTTPTimeAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (TimeAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.TimeServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid time server url: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:      baseURL,
		Timeout:      adapterCfg.RequestTimeout,
		Retries:      serverTimeRetries,
		RetryWait:    serverTimeRetryWait,
		RetryMaxWait: 4 * serverTimeRetryWait,
	})

	return &httpTimeAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ServerTime implements [TimeAdapter]. It GETs /api/time and expects
// {"now": "<RFC 3339 timestamp>"}.
func (h *httpTimeAdapter) ServerTime(ctx context.Context) (time.Time, error) {
	var body serverTimeResponse

	started := time.Now()
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(serverTimePath)
	if err != nil {
		return time.Time{}, fmt.Errorf("server time request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return time.Time{}, err
	}

	if body.Now.IsZero() {
		h.logger.Warn().
			Str("func", "httpTimeAdapter.ServerTime").
			Int("status", resp.StatusCode()).
			Msg("server time response without timestamp")
		return time.Time{}, ErrMalformedTime
	}

	rtt := time.Since(started)
	return body.Now.Add(rtt / 2), nil
}
