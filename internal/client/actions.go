package client

import (
	"context"

	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// SplitsClient implements marketstack.SplitsClient.
type SplitsClient struct {
	caller *caller
}

// newSplitsClient creates a new splits client.
func newSplitsClient(c *caller) *SplitsClient {
	return &SplitsClient{caller: c}
}

// List implements marketstack.SplitsClient.List.
func (c *SplitsClient) List(ctx context.Context, params *marketstack.ActionParams) (*marketstack.Response[marketstack.ListResponse[marketstack.Split]], error) {
	return invoke[marketstack.ListResponse[marketstack.Split]](ctx, c.caller, SplitsList, nil, params.Query())
}

// DividendsClient implements marketstack.DividendsClient.
type DividendsClient struct {
	caller *caller
}

// newDividendsClient creates a new dividends client.
func newDividendsClient(c *caller) *DividendsClient {
	return &DividendsClient{caller: c}
}

// List implements marketstack.DividendsClient.List.
func (c *DividendsClient) List(ctx context.Context, params *marketstack.ActionParams) (*marketstack.Response[marketstack.ListResponse[marketstack.Dividend]], error) {
	return invoke[marketstack.ListResponse[marketstack.Dividend]](ctx, c.caller, DividendsList, nil, params.Query())
}
