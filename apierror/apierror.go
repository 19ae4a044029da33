package apierror

import (
	"fmt"
	"sort"
	"strings"
)

// Kind discriminates the fixed set of failure categories the UI layer
// knows how to render.
type Kind uint8

const (
	// KindAPI is the generic remote-call failure.
	KindAPI Kind = iota
	// KindValidation carries field-level input errors.
	KindValidation
	// KindAuthentication marks rejected or expired credentials.
	KindAuthentication
	// KindAuthorization marks permission failures.
	KindAuthorization
	// KindNotFound marks missing resources.
	KindNotFound
	// KindServer marks 5xx-class remote failures.
	KindServer
	// KindNetwork marks transport-level failures that never produced a
	// structured response.
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	default:
		return "api"
	}
}

// Stable machine codes, one per kind.
const (
	CodeAPI            = "API_ERROR"
	CodeValidation     = "VALIDATION_ERROR"
	CodeAuthentication = "AUTHENTICATION_ERROR"
	CodeAuthorization  = "AUTHORIZATION_ERROR"
	CodeNotFound       = "NOT_FOUND_ERROR"
	CodeServer         = "SERVER_ERROR"
	CodeNetwork        = "NETWORK_ERROR"
)

// Error is the typed failure surfaced to callers and the notification
// layer. Immutable once constructed; it carries no retry state.
type Error struct {
	Kind    Kind
	Code    string
	Message string

	// Status is the originating HTTP status, 0 when no response was
	// received.
	Status int

	// Fields maps field name to message. Populated for KindValidation
	// only.
	Fields map[string]string

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the raw failure preserved for diagnostics.
func (e *Error) Unwrap() error {
	return e.cause
}

// FieldSummary renders the validation field map as sorted
// "field: message" lines, one per line.
func (e *Error) FieldSummary() string {
	if len(e.Fields) == 0 {
		return ""
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return strings.Join(lines, "\n")
}

func (e *Error) withCause(err error) *Error {
	e.cause = err
	return e
}

// New constructs a generic API error with a passthrough status.
func New(message string, status int) *Error {
	return &Error{Kind: KindAPI, Code: CodeAPI, Message: message, Status: status}
}

// NewValidation constructs a validation error. A nil field map is stored
// as empty so callers can range without a nil check.
func NewValidation(message string, fields map[string]string) *Error {
	if fields == nil {
		fields = map[string]string{}
	}
	return &Error{Kind: KindValidation, Code: CodeValidation, Message: message, Status: 422, Fields: fields}
}

func NewAuthentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Code: CodeAuthentication, Message: message, Status: 401}
}

func NewAuthorization(message string) *Error {
	return &Error{Kind: KindAuthorization, Code: CodeAuthorization, Message: message, Status: 403}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Code: CodeNotFound, Message: message, Status: 404}
}

// NewServer constructs a server error; status is the originating 5xx
// status, passed through.
func NewServer(message string, status int) *Error {
	return &Error{Kind: KindServer, Code: CodeServer, Message: message, Status: status}
}

func NewNetwork(message string) *Error {
	return &Error{Kind: KindNetwork, Code: CodeNetwork, Message: message, Status: 0}
}
