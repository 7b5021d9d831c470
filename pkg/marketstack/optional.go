package marketstack

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// optionalState distinguishes the three states of an Optional.
type optionalState uint8

const (
	stateAbsent optionalState = iota
	stateNull
	statePresent
)

// Optional is a tri-state value: absent (not supplied), null (explicitly
// cleared) or present. The zero value is absent.
//
// Model fields use the `omitzero` JSON option so absent fields are left out of
// encoded objects while null fields encode as JSON null.
type Optional[T any] struct {
	value T
	state optionalState
}

// Some returns a present Optional holding value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, state: statePresent}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{state: stateNull}
}

// Absent returns an Optional that was never supplied.
func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr converts a pointer into an Optional: nil becomes null.
func FromPtr[T any](value *T) Optional[T] {
	if value == nil {
		return Null[T]()
	}

	return Some(*value)
}

// IsAbsent reports whether the value was never supplied.
func (o Optional[T]) IsAbsent() bool { return o.state == stateAbsent }

// IsNull reports whether the value was explicitly set to null.
func (o Optional[T]) IsNull() bool { return o.state == stateNull }

// IsPresent reports whether the Optional holds a concrete value.
func (o Optional[T]) IsPresent() bool { return o.state == statePresent }

// IsZero reports true only for absent values. It drives `omitzero`.
func (o Optional[T]) IsZero() bool { return o.state == stateAbsent }

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.state == statePresent
}

// ValueOr returns the held value, or fallback when absent or null.
func (o Optional[T]) ValueOr(fallback T) T {
	if o.state == statePresent {
		return o.value
	}

	return fallback
}

// Ptr returns a pointer to a copy of the held value, or nil.
func (o Optional[T]) Ptr() *T {
	if o.state != statePresent {
		return nil
	}

	v := o.value

	return &v
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	switch o.state {
	case statePresent:
		return fmt.Sprint(o.value)
	case stateNull:
		return "null"
	default:
		return "<absent>"
	}
}

// MarshalJSON encodes null for null and absent values, the value otherwise.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.state != statePresent {
		return []byte("null"), nil
	}

	data, err := json.Marshal(o.value)
	if err != nil {
		return nil, fmt.Errorf("marshaling optional value: %w", err)
	}

	return data, nil
}

// UnmarshalJSON is only invoked for keys that exist in the input, so the
// result is either null or present.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T

		o.value = zero
		o.state = stateNull

		return nil
	}

	var value T

	err := json.Unmarshal(data, &value)
	if err != nil {
		return err //nolint:wrapcheck // json errors carry the offending offset
	}

	o.value = value
	o.state = statePresent

	return nil
}

// MarshalYAML renders present values as themselves and everything else as nil.
func (o Optional[T]) MarshalYAML() (interface{}, error) {
	if o.state != statePresent {
		return nil, nil //nolint:nilnil // nil is the yaml encoding of null
	}

	return o.value, nil
}
