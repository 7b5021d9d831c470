package client

import (
	"context"

	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// CurrenciesClient implements marketstack.CurrenciesClient.
type CurrenciesClient struct {
	caller *caller
}

// newCurrenciesClient creates a new currencies client.
func newCurrenciesClient(c *caller) *CurrenciesClient {
	return &CurrenciesClient{caller: c}
}

// List implements marketstack.CurrenciesClient.List.
func (c *CurrenciesClient) List(ctx context.Context, params *marketstack.PageParams) (*marketstack.Response[marketstack.ListResponse[marketstack.Currency]], error) {
	return invoke[marketstack.ListResponse[marketstack.Currency]](ctx, c.caller, CurrenciesList, nil, params.Query())
}

// TimezonesClient implements marketstack.TimezonesClient.
type TimezonesClient struct {
	caller *caller
}

// newTimezonesClient creates a new timezones client.
func newTimezonesClient(c *caller) *TimezonesClient {
	return &TimezonesClient{caller: c}
}

// List implements marketstack.TimezonesClient.List.
func (c *TimezonesClient) List(ctx context.Context, params *marketstack.PageParams) (*marketstack.Response[marketstack.ListResponse[marketstack.Timezone]], error) {
	return invoke[marketstack.ListResponse[marketstack.Timezone]](ctx, c.caller, TimezonesList, nil, params.Query())
}
