package gateway

import "fmt"

// Kind classifies a normalized API failure.
type Kind int

const (
	// KindValidation marks per-field failures the caller can recover
	// from locally by rendering inline messages.
	KindValidation Kind = iota + 1
	// KindAuthorization marks a rejected credential. It always escalates
	// to a forced logout; it is never presented as a field error.
	KindAuthorization
	// KindGeneric marks any other failure, including malformed response
	// bodies. The session is untouched.
	KindGeneric
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthorization:
		return "authorization"
	case KindGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// FieldError is one per-field validation message from the server, carried
// verbatim.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is the single failure contract every endpoint returns.
// It is produced only by the response normalizer; callers never construct
// one themselves.
type APIError struct {
	Kind        Kind
	Message     string
	StatusCode  int
	FieldErrors []FieldError
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.FieldErrors) > 0 {
		return fmt.Sprintf("%s error: %s (%d field errors)", e.Kind, e.Message, len(e.FieldErrors))
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}
