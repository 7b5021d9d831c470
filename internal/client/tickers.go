package client

import (
	"context"

	"github.com/fivetwenty-io/marketstack/internal/endpoint"
	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// TickersClient implements marketstack.TickersClient.
type TickersClient struct {
	caller *caller
}

// newTickersClient creates a new tickers client.
func newTickersClient(c *caller) *TickersClient {
	return &TickersClient{caller: c}
}

func symbolPath(symbol string) endpoint.PathParams {
	return endpoint.PathParams{paramSymbol: symbol}
}

func symbolDatePath(symbol, date string) endpoint.PathParams {
	return endpoint.PathParams{paramSymbol: symbol, paramDate: date}
}

// List implements marketstack.TickersClient.List.
func (c *TickersClient) List(ctx context.Context, params *marketstack.TickersParams) (*marketstack.Response[marketstack.ListResponse[marketstack.Ticker]], error) {
	return invoke[marketstack.ListResponse[marketstack.Ticker]](ctx, c.caller, TickersList, nil, params.Query())
}

// Get implements marketstack.TickersClient.Get.
func (c *TickersClient) Get(ctx context.Context, symbol string) (*marketstack.Response[marketstack.Ticker], error) {
	return invoke[marketstack.Ticker](ctx, c.caller, TickerGet, symbolPath(symbol), nil)
}

// EOD implements marketstack.TickersClient.EOD.
func (c *TickersClient) EOD(ctx context.Context, symbol string, params *marketstack.TickerEodParams) (*marketstack.Response[marketstack.DataResponse[marketstack.TickerEod]], error) {
	return invoke[marketstack.DataResponse[marketstack.TickerEod]](ctx, c.caller, TickerEOD, symbolPath(symbol), params.Query())
}

// EODLatest implements marketstack.TickersClient.EODLatest.
func (c *TickersClient) EODLatest(ctx context.Context, symbol string, params *marketstack.TickerPriceParams) (*marketstack.Response[marketstack.EodPrice], error) {
	return invoke[marketstack.EodPrice](ctx, c.caller, TickerEODLatest, symbolPath(symbol), params.Query())
}

// EODByDate implements marketstack.TickersClient.EODByDate.
func (c *TickersClient) EODByDate(ctx context.Context, symbol, date string, params *marketstack.TickerPriceParams) (*marketstack.Response[marketstack.EodPrice], error) {
	return invoke[marketstack.EodPrice](ctx, c.caller, TickerEODByDate, symbolDatePath(symbol, date), params.Query())
}

// Intraday implements marketstack.TickersClient.Intraday.
func (c *TickersClient) Intraday(ctx context.Context, symbol string, params *marketstack.TickerIntradayParams) (*marketstack.Response[marketstack.DataResponse[marketstack.TickerIntraday]], error) {
	return invoke[marketstack.DataResponse[marketstack.TickerIntraday]](ctx, c.caller, TickerIntraday, symbolPath(symbol), params.Query())
}

// IntradayLatest implements marketstack.TickersClient.IntradayLatest.
func (c *TickersClient) IntradayLatest(ctx context.Context, symbol string) (*marketstack.Response[marketstack.IntervalPrice], error) {
	return invoke[marketstack.IntervalPrice](ctx, c.caller, TickerIntradayLatest, symbolPath(symbol), nil)
}

// IntradayByDate implements marketstack.TickersClient.IntradayByDate.
func (c *TickersClient) IntradayByDate(ctx context.Context, symbol, date string, params *marketstack.TickerPriceParams) (*marketstack.Response[marketstack.IntervalPrice], error) {
	return invoke[marketstack.IntervalPrice](ctx, c.caller, TickerIntradayByDate, symbolDatePath(symbol, date), params.Query())
}

// Splits implements marketstack.TickersClient.Splits.
func (c *TickersClient) Splits(ctx context.Context, symbol string, params *marketstack.TickerActionParams) (*marketstack.Response[marketstack.ListResponse[marketstack.Split]], error) {
	return invoke[marketstack.ListResponse[marketstack.Split]](ctx, c.caller, TickerSplits, symbolPath(symbol), params.Query())
}

// Dividends implements marketstack.TickersClient.Dividends.
func (c *TickersClient) Dividends(ctx context.Context, symbol string, params *marketstack.TickerActionParams) (*marketstack.Response[marketstack.ListResponse[marketstack.Dividend]], error) {
	return invoke[marketstack.ListResponse[marketstack.Dividend]](ctx, c.caller, TickerDividends, symbolPath(symbol), params.Query())
}
