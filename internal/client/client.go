package client

import (
	"context"
	"errors"
	"strings"

	"github.com/fivetwenty-io/marketstack/internal/constants"
	"github.com/fivetwenty-io/marketstack/internal/endpoint"
	"github.com/fivetwenty-io/marketstack/internal/http"
	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
)

var _ marketstack.Client = (*Client)(nil)

// Client implements the marketstack.Client interface.
type Client struct {
	caller *caller

	eod        marketstack.EODClient
	intraday   marketstack.IntradayClient
	splits     marketstack.SplitsClient
	dividends  marketstack.DividendsClient
	tickers    marketstack.TickersClient
	exchanges  marketstack.ExchangesClient
	currencies marketstack.CurrenciesClient
	timezones  marketstack.TimezonesClient
}

// caller holds what every call needs: the transport and the access key.
type caller struct {
	doer      endpoint.Doer
	accessKey string
}

// invoke runs one endpoint through the shared builder and interpreter.
func invoke[T any](
	ctx context.Context,
	c *caller,
	e endpoint.Endpoint,
	params endpoint.PathParams,
	query *marketstack.Query,
) (*marketstack.Response[T], error) {
	return endpoint.Call[T](ctx, c.doer, e, params, query, c.accessKey)
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *marketstack.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithHeaders(config.Headers),
		http.WithCookies(config.Cookies),
		http.WithSkipTLSVerify(config.SkipTLSVerify),
		http.WithInterceptors(config.Interceptors),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a marketstack API client. config.BaseURL is expected to be
// normalized already; an empty value uses the public endpoint.
func New(config *marketstack.Config) (*Client, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}

	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, createHTTPClientOptions(config)...)

	return NewWithDoer(httpClient, config.AccessKey), nil
}

// NewWithDoer creates a client over an existing transport.
func NewWithDoer(doer endpoint.Doer, accessKey string) *Client {
	client := &Client{
		caller: &caller{doer: doer, accessKey: accessKey},
	}

	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	c.eod = newEODClient(c.caller)
	c.intraday = newIntradayClient(c.caller)
	c.splits = newSplitsClient(c.caller)
	c.dividends = newDividendsClient(c.caller)
	c.tickers = newTickersClient(c.caller)
	c.exchanges = newExchangesClient(c.caller)
	c.currencies = newCurrenciesClient(c.caller)
	c.timezones = newTimezonesClient(c.caller)
}

// EOD implements marketstack.Client.EOD.
func (c *Client) EOD() marketstack.EODClient {
	return c.eod
}

// Intraday implements marketstack.Client.Intraday.
func (c *Client) Intraday() marketstack.IntradayClient {
	return c.intraday
}

// Splits implements marketstack.Client.Splits.
func (c *Client) Splits() marketstack.SplitsClient {
	return c.splits
}

// Dividends implements marketstack.Client.Dividends.
func (c *Client) Dividends() marketstack.DividendsClient {
	return c.dividends
}

// Tickers implements marketstack.Client.Tickers.
func (c *Client) Tickers() marketstack.TickersClient {
	return c.tickers
}

// Exchanges implements marketstack.Client.Exchanges.
func (c *Client) Exchanges() marketstack.ExchangesClient {
	return c.exchanges
}

// Currencies implements marketstack.Client.Currencies.
func (c *Client) Currencies() marketstack.CurrenciesClient {
	return c.currencies
}

// Timezones implements marketstack.Client.Timezones.
func (c *Client) Timezones() marketstack.TimezonesClient {
	return c.timezones
}
