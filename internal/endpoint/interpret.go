package endpoint

import (
	"context"
	"encoding/json"
	"fmt"

	mshttp "github.com/fivetwenty-io/marketstack/internal/http"
	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// Doer executes a built request.
type Doer interface {
	Do(ctx context.Context, req *mshttp.Request) (*mshttp.Response, error)
}

// Interpret decodes body according to the status table of e. It returns
// (nil, nil) for a status the table does not list and a *DecodeError when the
// selected decoder rejects the body.
func Interpret[T any](e Endpoint, status int, body []byte) (*marketstack.Decoded[T], error) {
	shape, ok := e.Statuses.Lookup(status)
	if !ok {
		return nil, nil
	}

	switch shape {
	case ShapeSuccess:
		var success T

		err := json.Unmarshal(body, &success)
		if err != nil {
			return nil, decodeError(e, status, err)
		}

		return &marketstack.Decoded[T]{Kind: marketstack.KindSuccess, Success: &success}, nil
	case ShapeValidationError:
		validation := &marketstack.HTTPValidationError{}

		err := json.Unmarshal(body, validation)
		if err != nil {
			return nil, decodeError(e, status, err)
		}

		return &marketstack.Decoded[T]{Kind: marketstack.KindValidationError, ValidationError: validation}, nil
	case ShapeError:
		apiErr := &marketstack.ErrorResponse{}

		err := json.Unmarshal(body, apiErr)
		if err != nil {
			return nil, decodeError(e, status, err)
		}

		return &marketstack.Decoded[T]{Kind: marketstack.KindError, Error: apiErr}, nil
	default:
		return nil, nil
	}
}

func decodeError(e Endpoint, status int, err error) error {
	return &marketstack.DecodeError{Endpoint: e.Name, StatusCode: status, Err: err}
}

// Call builds the request, executes it with doer and interprets the result.
// Transport failures return no envelope. A decode failure returns the
// envelope, with Parsed nil, together with the *DecodeError.
func Call[T any](
	ctx context.Context,
	doer Doer,
	e Endpoint,
	params PathParams,
	query *marketstack.Query,
	accessKey string,
) (*marketstack.Response[T], error) {
	req, err := e.Build(params, query, accessKey)
	if err != nil {
		return nil, err
	}

	resp, err := doer.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}

	envelope := &marketstack.Response[T]{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		Headers:    resp.Headers,
	}

	parsed, err := Interpret[T](e, resp.StatusCode, resp.Body)
	if err != nil {
		return envelope, err
	}

	envelope.Parsed = parsed

	return envelope, nil
}
