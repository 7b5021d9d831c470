package marketstack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired             = errors.New("config is required")
	ErrBaseURLInvalid             = errors.New("base URL must be an absolute http or https URL")
	ErrConfigInvalid              = errors.New("invalid config")
	ErrInvalidSort                = errors.New("invalid sort order")
	ErrInvalidInterval            = errors.New("invalid interval")
	ErrInvalidRawJSON             = errors.New("invalid raw JSON value")
	ErrAdditionalPropertyNotFound = errors.New("additional property not found")
	ErrMissingPathParam           = errors.New("missing path parameter")
	ErrUnrecognizedStatus         = errors.New("unrecognized response status")
	ErrDecodeFailed               = errors.New("failed to decode response body")
	ErrEmptyPayload               = errors.New("success payload is empty")
)

// APIError is the generic {code, message} error object.
type APIError struct {
	Code    Optional[string] `json:"code,omitzero"    yaml:"code,omitempty"`
	Message Optional[string] `json:"message,omitzero" yaml:"message,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	code := e.Code.ValueOr("unknown_error")

	message, ok := e.Message.Get()
	if !ok {
		return code
	}

	return fmt.Sprintf("%s: %s", code, message)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *APIError) UnmarshalJSON(data []byte) error {
	type plain APIError

	err := decodeObject(data, (*plain)(e), &e.Additional)
	if err != nil {
		return fmt.Errorf("decoding api error: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (e APIError) MarshalJSON() ([]byte, error) {
	type plain APIError

	data, err := encodeObject(plain(e), e.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding api error: %w", err)
	}

	return data, nil
}

// ErrorResponse is the body of documented non-success statuses other than 422
// (403, 404 and 429 on the endpoints that declare them).
type ErrorResponse struct {
	APIError Optional[APIError] `json:"error,omitzero" yaml:"error,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e *ErrorResponse) Error() string {
	apiErr, ok := e.APIError.Get()
	if !ok {
		return "unknown error"
	}

	return apiErr.Error()
}

// Code returns the error code, or an empty string.
func (e *ErrorResponse) Code() string {
	apiErr, _ := e.APIError.Get()

	return apiErr.Code.ValueOr("")
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *ErrorResponse) UnmarshalJSON(data []byte) error {
	type plain ErrorResponse

	err := decodeObject(data, (*plain)(e), &e.Additional)
	if err != nil {
		return fmt.Errorf("decoding error response: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (e ErrorResponse) MarshalJSON() ([]byte, error) {
	type plain ErrorResponse

	data, err := encodeObject(plain(e), e.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding error response: %w", err)
	}

	return data, nil
}

// LocationItem is one element of a validation error location: either a
// field name or an array index.
type LocationItem struct {
	Name    string
	Index   int
	IsIndex bool
}

// String renders the item for display.
func (l LocationItem) String() string {
	if l.IsIndex {
		return strconv.Itoa(l.Index)
	}

	return l.Name
}

// MarshalJSON implements json.Marshaler.
func (l LocationItem) MarshalJSON() ([]byte, error) {
	if l.IsIndex {
		return []byte(strconv.Itoa(l.Index)), nil
	}

	return json.Marshal(l.Name) //nolint:wrapcheck // strings always encode
}

// UnmarshalJSON accepts a JSON string or integer.
func (l *LocationItem) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		l.IsIndex = false

		return json.Unmarshal(trimmed, &l.Name) //nolint:wrapcheck // json error carries offset
	}

	index, err := strconv.Atoi(string(trimmed))
	if err != nil {
		return fmt.Errorf("validation location must be a string or integer: %w", err)
	}

	l.Index = index
	l.IsIndex = true

	return nil
}

// ValidationError describes one rejected request field.
type ValidationError struct {
	Loc  Optional[[]LocationItem] `json:"loc,omitzero"  yaml:"loc,omitempty"`
	Msg  Optional[string]         `json:"msg,omitzero"  yaml:"msg,omitempty"`
	Type Optional[string]         `json:"type,omitzero" yaml:"type,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// Location joins the location path with dots, e.g. "query.limit".
func (v *ValidationError) Location() string {
	items, _ := v.Loc.Get()

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.String())
	}

	return strings.Join(parts, ".")
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *ValidationError) UnmarshalJSON(data []byte) error {
	type plain ValidationError

	err := decodeObject(data, (*plain)(v), &v.Additional)
	if err != nil {
		return fmt.Errorf("decoding validation error: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (v ValidationError) MarshalJSON() ([]byte, error) {
	type plain ValidationError

	data, err := encodeObject(plain(v), v.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding validation error: %w", err)
	}

	return data, nil
}

// HTTPValidationError is the body of every 422 response.
type HTTPValidationError struct {
	Detail Optional[[]ValidationError] `json:"detail,omitzero" yaml:"detail,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e *HTTPValidationError) Error() string {
	details, _ := e.Detail.Get()
	if len(details) == 0 {
		return "validation error"
	}

	parts := make([]string, 0, len(details))
	for i := range details {
		msg := details[i].Msg.ValueOr("invalid")
		if loc := details[i].Location(); loc != "" {
			msg = loc + ": " + msg
		}

		parts = append(parts, msg)
	}

	return "validation error: " + strings.Join(parts, "; ")
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *HTTPValidationError) UnmarshalJSON(data []byte) error {
	type plain HTTPValidationError

	err := decodeObject(data, (*plain)(e), &e.Additional)
	if err != nil {
		return fmt.Errorf("decoding http validation error: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (e HTTPValidationError) MarshalJSON() ([]byte, error) {
	type plain HTTPValidationError

	data, err := encodeObject(plain(e), e.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding http validation error: %w", err)
	}

	return data, nil
}

// DecodeError reports a body that could not be parsed for a status that has
// a decoder.
type DecodeError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
}

// Unwrap exposes the underlying JSON error.
func (e *DecodeError) Unwrap() error { return e.Err }

// Is matches ErrDecodeFailed.
func (e *DecodeError) Is(target error) bool { return target == ErrDecodeFailed }

// StatusError is returned by Response.Result for statuses with no decoder.
type StatusError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	body := strings.TrimSpace(string(e.Body))

	const maxBody = 200
	if len(body) > maxBody {
		body = body[:maxBody] + "..."
	}

	if body == "" {
		return fmt.Sprintf("unrecognized status %d", e.StatusCode)
	}

	return fmt.Sprintf("unrecognized status %d: %s", e.StatusCode, body)
}

// Is matches ErrUnrecognizedStatus.
func (e *StatusError) Is(target error) bool { return target == ErrUnrecognizedStatus }

// APIStatusError pairs a decoded ErrorResponse with the status it came with.
type APIStatusError struct {
	StatusCode int
	Response   *ErrorResponse
}

// Error implements the error interface.
func (e *APIStatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Response.Error())
}

// Unwrap exposes the decoded body.
func (e *APIStatusError) Unwrap() error { return e.Response }

// IsNotFound checks if the error came from a 404 response.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsForbidden checks if the error came from a 403 response.
func IsForbidden(err error) bool {
	return statusOf(err) == http.StatusForbidden
}

// IsRateLimited checks if the error came from a 429 response.
func IsRateLimited(err error) bool {
	return statusOf(err) == http.StatusTooManyRequests
}

// IsValidation checks if the error is a 422 validation error.
func IsValidation(err error) bool {
	validationErr := &HTTPValidationError{}

	return errors.As(err, &validationErr)
}

func statusOf(err error) int {
	apiErr := &APIStatusError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	statusErr := &StatusError{}
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}

	return 0
}
