package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HTTPFailure is the raw non-2xx outcome produced by the request
// pipeline before classification. Body is the decoded JSON response
// object, nil when the response carried no structured body. Raw keeps
// the undecoded body text for diagnostics.
type HTTPFailure struct {
	Status int
	Body   map[string]any
	Raw    string
}

func (f *HTTPFailure) Error() string {
	if f.Raw != "" {
		return fmt.Sprintf("request failed with status %d: %s", f.Status, f.Raw)
	}
	return fmt.Sprintf("request failed with status %d", f.Status)
}

// Classify maps a raw failure to exactly one typed [Error]. It never
// returns nil and never panics; already-classified errors pass through
// unchanged. First match wins:
//
//  1. nil input → network error with an unknown-failure message
//  2. response with an HTTP status → status-driven taxonomy (401, 403,
//     404, 422 or a non-empty errors map, ≥500, generic fallback); the
//     decoded body only refines message and fields when present
//  3. anything else, transport failures included → network error
//     carrying the raw message
func Classify(err error) *Error {
	if err == nil {
		return NewNetwork("Unknown error occurred")
	}

	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}

	var failure *HTTPFailure
	if errors.As(err, &failure) && failure.Status != 0 {
		return classifyResponse(failure).withCause(failure)
	}

	msg := err.Error()
	if strings.Contains(msg, "fetch") {
		return NewNetwork(msg).withCause(err)
	}
	if msg == "" {
		msg = "An error occurred"
	}
	return NewNetwork(msg).withCause(err)
}

func classifyResponse(f *HTTPFailure) *Error {
	message := bodyMessage(f.Body)
	fields := bodyFields(f.Body)

	switch {
	case f.Status == http.StatusUnauthorized:
		return NewAuthentication(orDefault(message, "Your session has expired. Please login again."))

	case f.Status == http.StatusForbidden:
		return NewAuthorization(orDefault(message, "You do not have permission to perform this action."))

	case f.Status == http.StatusNotFound:
		return NewNotFound(orDefault(message, "Resource not found"))

	case f.Status == http.StatusUnprocessableEntity || len(fields) > 0:
		return NewValidation(orDefault(message, "Validation failed"), fields)

	case f.Status >= http.StatusInternalServerError:
		return NewServer(orDefault(message, "Server error. Please try again later."), f.Status)

	default:
		return New(orDefault(message, "Request failed"), f.Status)
	}
}

func bodyMessage(body map[string]any) string {
	msg, _ := body["message"].(string)
	return msg
}

func bodyFields(body map[string]any) map[string]string {
	raw, ok := body["errors"].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}

	fields := make(map[string]string, len(raw))
	for name, value := range raw {
		switch v := value.(type) {
		case string:
			fields[name] = v
		default:
			fields[name] = fmt.Sprintf("%v", v)
		}
	}
	return fields
}

func orDefault(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
