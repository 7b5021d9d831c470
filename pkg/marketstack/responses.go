package marketstack

import (
	"fmt"
)

// Pagination describes the window of a list response.
type Pagination struct {
	Limit  Optional[int] `json:"limit,omitzero"  yaml:"limit,omitempty"`
	Offset Optional[int] `json:"offset,omitzero" yaml:"offset,omitempty"`
	Count  Optional[int] `json:"count,omitzero"  yaml:"count,omitempty"`
	Total  Optional[int] `json:"total,omitzero"  yaml:"total,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Pagination) UnmarshalJSON(data []byte) error {
	type plain Pagination

	err := decodeObject(data, (*plain)(p), &p.Additional)
	if err != nil {
		return fmt.Errorf("decoding pagination: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (p Pagination) MarshalJSON() ([]byte, error) {
	type plain Pagination

	data, err := encodeObject(plain(p), p.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding pagination: %w", err)
	}

	return data, nil
}

// HasMore reports whether another page follows this one.
func (p Pagination) HasMore() bool {
	offset := p.Offset.ValueOr(0)
	count, okCount := p.Count.Get()
	total, okTotal := p.Total.Get()

	if !okCount || !okTotal {
		return false
	}

	return offset+count < total
}

// ListResponse is the success body of endpoints returning a page of items.
type ListResponse[T any] struct {
	Pagination Optional[Pagination] `json:"pagination,omitzero" yaml:"pagination,omitempty"`
	Data       Optional[[]T]        `json:"data,omitzero"       yaml:"data,omitempty"`
	APIError   Optional[APIError]   `json:"error,omitzero"      yaml:"error,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// Items returns the page items, or nil when data is absent or null.
func (r *ListResponse[T]) Items() []T {
	items, _ := r.Data.Get()

	return items
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ListResponse[T]) UnmarshalJSON(data []byte) error {
	var wire struct {
		Pagination Optional[Pagination] `json:"pagination"`
		Data       Optional[[]T]        `json:"data"`
		APIError   Optional[APIError]   `json:"error"`
	}

	err := decodeObject(data, &wire, &r.Additional)
	if err != nil {
		return fmt.Errorf("decoding list response: %w", err)
	}

	r.Pagination = wire.Pagination
	r.Data = wire.Data
	r.APIError = wire.APIError

	return nil
}

// MarshalJSON implements json.Marshaler.
func (r ListResponse[T]) MarshalJSON() ([]byte, error) {
	wire := struct {
		Pagination Optional[Pagination] `json:"pagination,omitzero"`
		Data       Optional[[]T]        `json:"data,omitzero"`
		APIError   Optional[APIError]   `json:"error,omitzero"`
	}{
		Pagination: r.Pagination,
		Data:       r.Data,
		APIError:   r.APIError,
	}

	data, err := encodeObject(wire, r.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding list response: %w", err)
	}

	return data, nil
}

// DataResponse is the success body of endpoints returning a single object
// under "data", such as a ticker with its price history.
type DataResponse[T any] struct {
	Pagination Optional[Pagination] `json:"pagination,omitzero" yaml:"pagination,omitempty"`
	Data       Optional[T]          `json:"data,omitzero"       yaml:"data,omitempty"`
	APIError   Optional[APIError]   `json:"error,omitzero"      yaml:"error,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *DataResponse[T]) UnmarshalJSON(data []byte) error {
	var wire struct {
		Pagination Optional[Pagination] `json:"pagination"`
		Data       Optional[T]          `json:"data"`
		APIError   Optional[APIError]   `json:"error"`
	}

	err := decodeObject(data, &wire, &r.Additional)
	if err != nil {
		return fmt.Errorf("decoding data response: %w", err)
	}

	r.Pagination = wire.Pagination
	r.Data = wire.Data
	r.APIError = wire.APIError

	return nil
}

// MarshalJSON implements json.Marshaler.
func (r DataResponse[T]) MarshalJSON() ([]byte, error) {
	wire := struct {
		Pagination Optional[Pagination] `json:"pagination,omitzero"`
		Data       Optional[T]          `json:"data,omitzero"`
		APIError   Optional[APIError]   `json:"error,omitzero"`
	}{
		Pagination: r.Pagination,
		Data:       r.Data,
		APIError:   r.APIError,
	}

	data, err := encodeObject(wire, r.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding data response: %w", err)
	}

	return data, nil
}
