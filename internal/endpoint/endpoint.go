// Package endpoint describes API operations declaratively and implements the
// request builder and response interpreter shared by every resource client.
package endpoint

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	mshttp "github.com/fivetwenty-io/marketstack/internal/http"
	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// Shape names the decoder selected for a status code.
type Shape int

const (
	// ShapeSuccess decodes the endpoint's success type.
	ShapeSuccess Shape = iota + 1
	// ShapeValidationError decodes marketstack.HTTPValidationError.
	ShapeValidationError
	// ShapeError decodes marketstack.ErrorResponse.
	ShapeError
)

// StatusRule maps one status code to a shape.
type StatusRule struct {
	Status int
	Shape  Shape
}

// StatusTable is evaluated first-match. Statuses missing from the table are
// unrecognized.
type StatusTable []StatusRule

// NewStatusTable builds a table with 200 as success, 422 as validation error
// and each of errorStatuses decoded as ErrorResponse.
func NewStatusTable(errorStatuses ...int) StatusTable {
	table := StatusTable{{Status: http.StatusOK, Shape: ShapeSuccess}}

	for _, status := range errorStatuses {
		if status == http.StatusOK || status == http.StatusUnprocessableEntity {
			continue
		}

		table = append(table, StatusRule{Status: status, Shape: ShapeError})
	}

	return append(table, StatusRule{Status: http.StatusUnprocessableEntity, Shape: ShapeValidationError})
}

// Lookup returns the shape for status.
func (t StatusTable) Lookup(status int) (Shape, bool) {
	for _, rule := range t {
		if rule.Status == status {
			return rule.Shape, true
		}
	}

	return 0, false
}

var (
	// StandardStatuses is used by endpoints that document only 200 and 422.
	StandardStatuses = NewStatusTable()

	// ExtendedStatuses also decodes 403, 404 and 429 as ErrorResponse.
	ExtendedStatuses = NewStatusTable(http.StatusForbidden, http.StatusNotFound, http.StatusTooManyRequests)
)

// Endpoint is one API operation.
type Endpoint struct {
	Name     string
	Method   string
	Path     string
	Statuses StatusTable
}

// PathParams maps placeholder names to values.
type PathParams map[string]string

// Build produces the request for e. Every "{name}" placeholder in the path is
// replaced by the path-escaped value of params[name]; a missing or empty value
// is an error. The access key is added to the query when non-empty. query is
// not modified.
func (e Endpoint) Build(params PathParams, query *marketstack.Query, accessKey string) (*mshttp.Request, error) {
	path, err := expandPath(e.Path, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}

	if query == nil {
		query = marketstack.NewQuery()
	} else {
		query = query.Clone()
	}

	query.Set(marketstack.ParamAccessKey, accessKey)

	method := e.Method
	if method == "" {
		method = http.MethodGet
	}

	return &mshttp.Request{
		Endpoint: e.Name,
		Method:   method,
		Path:     path,
		Query:    query.Values(),
	}, nil
}

func expandPath(template string, params PathParams) (string, error) {
	var out strings.Builder

	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			out.WriteString(rest)

			return out.String(), nil
		}

		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			out.WriteString(rest)

			return out.String(), nil
		}

		name := rest[open+1 : open+closing]

		value, ok := params[name]
		if !ok || value == "" {
			return "", fmt.Errorf("%w: %s", marketstack.ErrMissingPathParam, name)
		}

		out.WriteString(rest[:open])
		out.WriteString(url.PathEscape(value))

		rest = rest[open+closing+1:]
	}
}
