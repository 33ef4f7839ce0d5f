package membercrm

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
)

// ErrNotFound is returned by Get methods when the CRM answers successfully
// but carries no record.
var ErrNotFound = errors.New("record not found")

// ErrorResponse reports an error status returned by the CRM.
type ErrorResponse struct {
	Response *http.Response `json:"-"`

	// Message is the error message from the CRM, or the raw body when it
	// was not JSON.
	Message string `json:"message,omitempty"`

	// Errors holds field-level detail when the CRM provides it.
	Errors []Error `json:"errors,omitempty"`
}

// Error is a single field-level error reported by the CRM.
type Error struct {
	Resource string `json:"resource"`
	Field    string `json:"field"`
	Code     string `json:"code"`
	Message  string `json:"message,omitempty"`
}

func (r *ErrorResponse) Error() string {
	prefix := fmt.Sprintf("%v %v; %d",
		r.Response.Request.Method, sanitizeURL(r.Response.Request.URL), r.Response.StatusCode)

	switch {
	case r.Message != "":
		return fmt.Sprintf("%s %s", prefix, r.Message)
	case len(r.Errors) > 0:
		return fmt.Sprintf("%s %+v", prefix, r.Errors)
	default:
		return prefix
	}
}

// RateLimitError is returned when the CRM rejects a request because the
// API usage allowance is exhausted.
type RateLimitError struct {
	Rate     Rate
	Response *http.Response
	Message  string `json:"message"`
}

func (r *RateLimitError) Error() string {
	return fmt.Sprintf("%v %v; %d %v (rate limit; %d/%d, reset at %v)",
		r.Response.Request.Method, sanitizeURL(r.Response.Request.URL), r.Response.StatusCode,
		r.Message, r.Rate.Remaining, r.Rate.Limit, r.Rate.Reset)
}

// Is reports whether target is this exact error instance.
func (r *RateLimitError) Is(target error) bool {
	v, ok := target.(*RateLimitError)
	if !ok {
		return false
	}
	return r == v
}

// EnvelopeError is returned when the CRM answers with success=false. The
// message is passed through verbatim.
type EnvelopeError struct {
	Message  string
	Response *http.Response
}

func (e *EnvelopeError) Error() string {
	if e.Message == "" {
		return "crm reported failure without a message"
	}
	return "crm reported failure: " + e.Message
}

// DecodeError reports a mandatory field that could not be decoded.
type DecodeError struct {
	Entity string
	Field  string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode %s: %v", e.Entity, e.Err)
	}
	return fmt.Sprintf("decode %s: field %q: %v", e.Entity, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EnumError reports a value that is not in a strict enum's table.
type EnumError struct {
	Enum  string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("unknown %s value %q", e.Enum, e.Value)
}

// sanitizeURL redacts any user credentials embedded in uri.
func sanitizeURL(uri *url.URL) *url.URL {
	if uri == nil {
		return nil
	}
	if uri.User == nil {
		return uri
	}
	sanitized := *uri
	sanitized.User = url.UserPassword("REDACTED", "REDACTED")
	return &sanitized
}

// CheckResponse checks the API response for errors. A response is
// considered an error if its status code is outside the 200 range.
func CheckResponse(r *http.Response) error {
	if c := r.StatusCode; 200 <= c && c <= 299 {
		return nil
	}

	errorResponse := &ErrorResponse{Response: r}
	data, err := io.ReadAll(r.Body)
	if err == nil && len(data) > 0 {
		if jsonErr := json.Unmarshal(data, errorResponse); jsonErr != nil {
			errorResponse.Message = strings.TrimSpace(string(data))
		}
	}

	if r.StatusCode == http.StatusTooManyRequests || isUsageLimitExceeded(errorResponse) {
		return &RateLimitError{
			Rate:     parseRate(r),
			Response: errorResponse.Response,
			Message:  errorResponse.Message,
		}
	}

	return errorResponse
}

// isUsageLimitExceeded detects the CRM's daily API allowance error, which
// arrives as a 403 rather than a 429.
func isUsageLimitExceeded(e *ErrorResponse) bool {
	if e.Response.StatusCode != http.StatusForbidden {
		return false
	}
	for _, fe := range e.Errors {
		if fe.Code == "REQUEST_LIMIT_EXCEEDED" {
			return true
		}
	}
	return false
}

// withResponse attaches resp to an EnvelopeError so callers can inspect the
// HTTP exchange that carried it. Other errors pass through unchanged.
func withResponse(err error, resp *Response) error {
	var ee *EnvelopeError
	if errors.As(err, &ee) && resp != nil && ee.Response == nil {
		ee.Response = resp.Response
	}
	return err
}
