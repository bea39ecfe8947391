// Package acl implements the Anti-Corruption Layer that translates between
// the downstream VnAppMob province API and domain types. Wire formats and
// their translators live in the acl/geo subpackage; shared request handling
// and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-address-selector/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody covers the two error shapes seen from upstream gateways: RFC 9457
// problem details and a bare {"message": "..."} object.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// TranslateHTTPError maps an HTTP error response to a domain error.
// A JSON body's detail or message field is used for context when present.
func TranslateHTTPError(resp *http.Response) error {
	detail := parseErrorDetail(resp)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseErrorDetail reads a JSON error body and returns its human-readable
// message, or "" when the body is absent or not JSON.
func parseErrorDetail(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") && !strings.HasPrefix(ct, "application/json") {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return ""
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Detail != "" {
		return eb.Detail
	}
	return eb.Message
}
