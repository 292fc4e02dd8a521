// Package httputil provides the shared HTTP client and input validation utilities.
package httputil

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "slasshy/1.0"

// NewClient creates a resty client with secure defaults. Upstream failures are
// surfaced to the caller as-is; there is deliberately no retry policy.
func NewClient() *resty.Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        10,
		IdleConnTimeout:     30 * time.Second,
		MaxIdleConnsPerHost: 5,
	}

	return resty.New().
		SetTransport(transport).
		SetTimeout(30 * time.Second).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetHeader("Accept-Language", "en-US,en;q=0.5")
}
