package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers use the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient]. Zero values keep resty
// defaults.
type HTTPClientOptions struct {
	BaseURL string
	Timeout time.Duration
	// Retries is the number of extra attempts on transport errors,
	// 429 and 5xx answers.
	Retries      int
	RetryWait    time.Duration
	RetryMaxWait time.Duration
}

// NewHTTPClient returns an independent client that asks for JSON.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	c := resty.New().SetHeader("Accept", "application/json")

	if opts.BaseURL != "" {
		c.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.Retries > 0 {
		c.SetRetryCount(opts.Retries).AddRetryCondition(retryable)
		if opts.RetryWait > 0 {
			c.SetRetryWaitTime(opts.RetryWait)
		}
		if opts.RetryMaxWait > 0 {
			c.SetRetryMaxWaitTime(opts.RetryMaxWait)
		}
	}

	return &HTTPClient{Client: c}
}

func retryable(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
