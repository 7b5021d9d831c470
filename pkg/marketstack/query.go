package marketstack

import (
	"net/url"
	"reflect"
	"sort"
	"strconv"
)

// Scalar is the set of types that can be rendered as a query value. Enum types
// such as Sort and Interval satisfy ~string and render as their literal token.
type Scalar interface {
	~string | ~bool | ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Query collects the query string of one request. Only present values are
// kept: absent and null parameters never produce a key.
type Query struct {
	values map[string]string
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{values: make(map[string]string)}
}

// Param adds name to the query when value is present and returns q for
// chaining. Absent and null values are dropped.
func Param[T Scalar](q *Query, name string, value Optional[T]) *Query {
	v, ok := value.Get()
	if !ok {
		return q
	}

	q.values[name] = formatScalar(v)

	return q
}

// Set adds a present string value. An empty value is treated as absent.
func (q *Query) Set(name, value string) *Query {
	if value == "" {
		return q
	}

	q.values[name] = value

	return q
}

// Get returns the rendered value for name.
func (q *Query) Get(name string) (string, bool) {
	v, ok := q.values[name]

	return v, ok
}

// Has reports whether name will be sent.
func (q *Query) Has(name string) bool {
	_, ok := q.values[name]

	return ok
}

// Del removes name from the query.
func (q *Query) Del(name string) {
	delete(q.values, name)
}

// Len returns the number of parameters that will be sent.
func (q *Query) Len() int {
	return len(q.values)
}

// Keys returns the parameter names in sorted order.
func (q *Query) Keys() []string {
	keys := make([]string, 0, len(q.values))
	for k := range q.values {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Values converts the query to url.Values.
func (q *Query) Values() url.Values {
	values := url.Values{}
	for k, v := range q.values {
		values.Set(k, v)
	}

	return values
}

// Clone returns an independent copy of q.
func (q *Query) Clone() *Query {
	clone := NewQuery()
	for k, v := range q.values {
		clone.values[k] = v
	}

	return clone
}

func formatScalar[T Scalar](value T) string {
	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive // Scalar restricts the kinds
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	default:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}
}
