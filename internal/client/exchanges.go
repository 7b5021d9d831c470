package client

import (
	"context"

	"github.com/fivetwenty-io/marketstack/internal/endpoint"
	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// ExchangesClient implements marketstack.ExchangesClient.
type ExchangesClient struct {
	caller *caller
}

// newExchangesClient creates a new exchanges client.
func newExchangesClient(c *caller) *ExchangesClient {
	return &ExchangesClient{caller: c}
}

func micPath(mic string) endpoint.PathParams {
	return endpoint.PathParams{paramMIC: mic}
}

func micDatePath(mic, date string) endpoint.PathParams {
	return endpoint.PathParams{paramMIC: mic, paramDate: date}
}

type (
	exchangeEodResponse      = marketstack.Response[marketstack.DataResponse[marketstack.ExchangeEod]]
	exchangeIntradayResponse = marketstack.Response[marketstack.DataResponse[marketstack.ExchangeIntraday]]
)

// List implements marketstack.ExchangesClient.List.
func (c *ExchangesClient) List(ctx context.Context, params *marketstack.SearchParams) (*marketstack.Response[marketstack.ListResponse[marketstack.Exchange]], error) {
	return invoke[marketstack.ListResponse[marketstack.Exchange]](ctx, c.caller, ExchangesList, nil, params.Query())
}

// Get implements marketstack.ExchangesClient.Get.
func (c *ExchangesClient) Get(ctx context.Context, mic string) (*marketstack.Response[marketstack.Exchange], error) {
	return invoke[marketstack.Exchange](ctx, c.caller, ExchangeGet, micPath(mic), nil)
}

// Tickers implements marketstack.ExchangesClient.Tickers.
func (c *ExchangesClient) Tickers(ctx context.Context, mic string, params *marketstack.SearchParams) (*marketstack.Response[marketstack.DataResponse[marketstack.ExchangeTickers]], error) {
	return invoke[marketstack.DataResponse[marketstack.ExchangeTickers]](ctx, c.caller, ExchangeTickers, micPath(mic), params.Query())
}

// EOD implements marketstack.ExchangesClient.EOD.
func (c *ExchangesClient) EOD(ctx context.Context, mic string, params *marketstack.ExchangeEodParams) (*exchangeEodResponse, error) {
	return invoke[marketstack.DataResponse[marketstack.ExchangeEod]](ctx, c.caller, ExchangeEOD, micPath(mic), params.Query())
}

// EODLatest implements marketstack.ExchangesClient.EODLatest.
func (c *ExchangesClient) EODLatest(ctx context.Context, mic string, params *marketstack.ExchangeEodLatestParams) (*exchangeEodResponse, error) {
	return invoke[marketstack.DataResponse[marketstack.ExchangeEod]](ctx, c.caller, ExchangeEODLatest, micPath(mic), params.Query())
}

// EODByDate implements marketstack.ExchangesClient.EODByDate.
func (c *ExchangesClient) EODByDate(ctx context.Context, mic, date string, params *marketstack.ExchangeEodLatestParams) (*exchangeEodResponse, error) {
	return invoke[marketstack.DataResponse[marketstack.ExchangeEod]](ctx, c.caller, ExchangeEODByDate, micDatePath(mic, date), params.Query())
}

// Intraday implements marketstack.ExchangesClient.Intraday.
func (c *ExchangesClient) Intraday(ctx context.Context, mic string, params *marketstack.ExchangeIntradayParams) (*exchangeIntradayResponse, error) {
	return invoke[marketstack.DataResponse[marketstack.ExchangeIntraday]](ctx, c.caller, ExchangeIntraday, micPath(mic), params.Query())
}

// IntradayLatest implements marketstack.ExchangesClient.IntradayLatest.
func (c *ExchangesClient) IntradayLatest(ctx context.Context, mic string, params *marketstack.ExchangeIntradayLatestParams) (*exchangeIntradayResponse, error) {
	return invoke[marketstack.DataResponse[marketstack.ExchangeIntraday]](ctx, c.caller, ExchangeIntradayLatest, micPath(mic), params.Query())
}

// IntradayByDate implements marketstack.ExchangesClient.IntradayByDate.
func (c *ExchangesClient) IntradayByDate(ctx context.Context, mic, date string) (*exchangeIntradayResponse, error) {
	return invoke[marketstack.DataResponse[marketstack.ExchangeIntraday]](ctx, c.caller, ExchangeIntradayByDate, micDatePath(mic, date), nil)
}
