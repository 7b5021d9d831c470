package marketstack

import (
	"net/http"
)

// DecodedKind tags which shape a response body was decoded into.
type DecodedKind int

const (
	// KindSuccess is a 200 body decoded into the endpoint's success shape.
	KindSuccess DecodedKind = iota + 1
	// KindValidationError is a 422 body decoded into HTTPValidationError.
	KindValidationError
	// KindError is a documented error status decoded into ErrorResponse.
	KindError
)

// String implements fmt.Stringer.
func (k DecodedKind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindValidationError:
		return "validation_error"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Decoded is the structured interpretation of a response body. Exactly one
// of Success, ValidationError and Error is set, matching Kind.
type Decoded[T any] struct {
	Kind            DecodedKind
	Success         *T
	ValidationError *HTTPValidationError
	Error           *ErrorResponse
}

// Response is the envelope returned by every call. The raw status, body and
// headers are always populated; Parsed is nil when the status has no decoder
// or the body could not be decoded.
type Response[T any] struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
	Parsed     *Decoded[T]
}

// IsSuccess reports whether the body decoded into the success shape.
func (r *Response[T]) IsSuccess() bool {
	return r.Parsed != nil && r.Parsed.Kind == KindSuccess
}

// IsUnrecognized reports whether the status had no decoder.
func (r *Response[T]) IsUnrecognized() bool {
	return r.Parsed == nil
}

// Result converts the envelope into a value or a typed error: the decoded
// *HTTPValidationError for 422, an *APIStatusError for other documented
// statuses and a *StatusError for anything unrecognized.
func (r *Response[T]) Result() (*T, error) {
	if r.Parsed == nil {
		return nil, &StatusError{StatusCode: r.StatusCode, Body: r.Body}
	}

	switch r.Parsed.Kind {
	case KindSuccess:
		if r.Parsed.Success == nil {
			return nil, ErrEmptyPayload
		}

		return r.Parsed.Success, nil
	case KindValidationError:
		return nil, r.Parsed.ValidationError
	case KindError:
		return nil, &APIStatusError{StatusCode: r.StatusCode, Response: r.Parsed.Error}
	default:
		return nil, &StatusError{StatusCode: r.StatusCode, Body: r.Body}
	}
}
