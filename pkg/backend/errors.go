package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	pkgErrors "social-admin-dashboard/pkg/errors"
)

var (
	// ErrMalformedResponse is returned when a list body is neither an array
	// nor an object with a "data" array.
	ErrMalformedResponse = errors.New("malformed response from backend")
	ErrRateLimited       = errors.New("backend client rate limit wait cancelled")
)

// HTTPError is a non-2xx answer from the backend.
type HTTPError struct {
	StatusCode int
	Status     string
	Message    string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend error %d: %s", e.StatusCode, e.Status)
}

// StatusText returns "<code> <text>", e.g. "404 Not Found".
func (e *HTTPError) StatusText() string {
	if e.Status != "" {
		return e.Status
	}
	return fmt.Sprintf("%d", e.StatusCode)
}

// AsHTTPError unwraps err to an *HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// ToHTTPError converts a backend failure into the error the dashboard API
// answers with. Client errors keep their status and message, server errors
// and unreadable bodies become 502. It returns nil for non-backend errors.
func ToHTTPError(err error) *pkgErrors.HTTPError {
	if errors.Is(err, ErrMalformedResponse) {
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "unexpected response format")
	}
	he, ok := AsHTTPError(err)
	if !ok {
		return nil
	}
	msg := he.Message
	if msg == "" {
		msg = he.StatusText()
	}
	if he.StatusCode >= 500 {
		return pkgErrors.NewHTTPError(http.StatusBadGateway, msg)
	}
	return pkgErrors.NewHTTPError(he.StatusCode, msg)
}

// extractMessage pulls the "message" field out of a backend error body.
// The field may be a string or a list of validation messages.
func extractMessage(raw []byte) string {
	var body struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}

	var single string
	if err := json.Unmarshal(body.Message, &single); err == nil && single != "" {
		return single
	}
	var many []string
	if err := json.Unmarshal(body.Message, &many); err == nil && len(many) > 0 {
		return strings.Join(many, "; ")
	}
	return body.Error
}
