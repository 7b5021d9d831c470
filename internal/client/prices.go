package client

import (
	"context"

	"github.com/fivetwenty-io/marketstack/internal/endpoint"
	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// EODClient implements marketstack.EODClient.
type EODClient struct {
	caller *caller
}

// newEODClient creates a new end-of-day client.
func newEODClient(c *caller) *EODClient {
	return &EODClient{caller: c}
}

// List implements marketstack.EODClient.List.
func (c *EODClient) List(ctx context.Context, params *marketstack.EodParams) (*marketstack.Response[marketstack.ListResponse[marketstack.EodPrice]], error) {
	return invoke[marketstack.ListResponse[marketstack.EodPrice]](ctx, c.caller, EODList, nil, params.Query())
}

// Latest implements marketstack.EODClient.Latest.
func (c *EODClient) Latest(ctx context.Context, params *marketstack.EodLatestParams) (*marketstack.Response[marketstack.ListResponse[marketstack.EodPrice]], error) {
	return invoke[marketstack.ListResponse[marketstack.EodPrice]](ctx, c.caller, EODLatest, nil, params.Query())
}

// ByDate implements marketstack.EODClient.ByDate.
func (c *EODClient) ByDate(ctx context.Context, date string, params *marketstack.EodParams) (*marketstack.Response[marketstack.ListResponse[marketstack.EodPrice]], error) {
	return invoke[marketstack.ListResponse[marketstack.EodPrice]](ctx, c.caller, EODByDate,
		endpoint.PathParams{paramDate: date}, params.Query())
}

// IntradayClient implements marketstack.IntradayClient.
type IntradayClient struct {
	caller *caller
}

// newIntradayClient creates a new intraday client.
func newIntradayClient(c *caller) *IntradayClient {
	return &IntradayClient{caller: c}
}

// List implements marketstack.IntradayClient.List.
func (c *IntradayClient) List(ctx context.Context, params *marketstack.IntradayParams) (*marketstack.Response[marketstack.ListResponse[marketstack.IntervalPrice]], error) {
	return invoke[marketstack.ListResponse[marketstack.IntervalPrice]](ctx, c.caller, IntradayList, nil, params.Query())
}

// Latest implements marketstack.IntradayClient.Latest.
func (c *IntradayClient) Latest(ctx context.Context, params *marketstack.IntradayLatestParams) (*marketstack.Response[marketstack.ListResponse[marketstack.IntervalPrice]], error) {
	return invoke[marketstack.ListResponse[marketstack.IntervalPrice]](ctx, c.caller, IntradayLatest, nil, params.Query())
}

// ByDate implements marketstack.IntradayClient.ByDate.
func (c *IntradayClient) ByDate(ctx context.Context, date string, params *marketstack.IntradayParams) (*marketstack.Response[marketstack.ListResponse[marketstack.IntervalPrice]], error) {
	return invoke[marketstack.ListResponse[marketstack.IntervalPrice]](ctx, c.caller, IntradayByDate,
		endpoint.PathParams{paramDate: date}, params.Query())
}
