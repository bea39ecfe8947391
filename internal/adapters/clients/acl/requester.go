package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-address-selector/internal/platform/httpclient"
)

// maxResponseBodySize bounds how much of a list response is decoded.
const maxResponseBodySize = 8 << 20 // 8 MB

// Requester centralizes the HTTP request lifecycle for ACL clients:
// request creation, execution via httpclient.Client, response body cleanup,
// status code validation, error translation, and JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Get issues a GET against the configured base URL and decodes a 200 OK
// JSON body into respBody.
//
// Any other status is passed to TranslateHTTPError. A body that is not valid
// JSON is an error.
func (r *Requester) Get(ctx context.Context, path string, respBody any) error {
	url := r.client.BaseURL() + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating GET request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	return r.execute(req, http.StatusOK, respBody)
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// CircuitBreakerState returns the circuit breaker state from the underlying
// HTTP client.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

// closeBody closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and decodes the
// response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, wantStatus int, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do returns both resp and err for 5xx and 429 responses.
		// Translate those into domain errors rather than the raw status error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			r.logger.ErrorContext(ctx, "downstream failure",
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.Int("status", resp.StatusCode),
			)
			return TranslateHTTPError(resp)
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != wantStatus {
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return TranslateHTTPError(resp)
	}

	if respBody == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize)).Decode(respBody); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
