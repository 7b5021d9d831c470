package marketstack

import (
	"context"
	"net/http"
	"time"
)

// EODClient provides access to end-of-day prices.
type EODClient interface {
	List(ctx context.Context, params *EodParams) (*Response[ListResponse[EodPrice]], error)
	Latest(ctx context.Context, params *EodLatestParams) (*Response[ListResponse[EodPrice]], error)
	ByDate(ctx context.Context, date string, params *EodParams) (*Response[ListResponse[EodPrice]], error)
}

// IntradayClient provides access to intraday prices.
type IntradayClient interface {
	List(ctx context.Context, params *IntradayParams) (*Response[ListResponse[IntervalPrice]], error)
	Latest(ctx context.Context, params *IntradayLatestParams) (*Response[ListResponse[IntervalPrice]], error)
	ByDate(ctx context.Context, date string, params *IntradayParams) (*Response[ListResponse[IntervalPrice]], error)
}

// SplitsClient provides access to stock splits.
type SplitsClient interface {
	List(ctx context.Context, params *ActionParams) (*Response[ListResponse[Split]], error)
}

// DividendsClient provides access to dividends.
type DividendsClient interface {
	List(ctx context.Context, params *ActionParams) (*Response[ListResponse[Dividend]], error)
}

// TickersClient provides access to tickers and the per-symbol endpoints.
type TickersClient interface {
	List(ctx context.Context, params *TickersParams) (*Response[ListResponse[Ticker]], error)
	Get(ctx context.Context, symbol string) (*Response[Ticker], error)
	EOD(ctx context.Context, symbol string, params *TickerEodParams) (*Response[DataResponse[TickerEod]], error)
	EODLatest(ctx context.Context, symbol string, params *TickerPriceParams) (*Response[EodPrice], error)
	EODByDate(ctx context.Context, symbol, date string, params *TickerPriceParams) (*Response[EodPrice], error)
	Intraday(ctx context.Context, symbol string, params *TickerIntradayParams) (*Response[DataResponse[TickerIntraday]], error)
	IntradayLatest(ctx context.Context, symbol string) (*Response[IntervalPrice], error)
	IntradayByDate(ctx context.Context, symbol, date string, params *TickerPriceParams) (*Response[IntervalPrice], error)
	Splits(ctx context.Context, symbol string, params *TickerActionParams) (*Response[ListResponse[Split]], error)
	Dividends(ctx context.Context, symbol string, params *TickerActionParams) (*Response[ListResponse[Dividend]], error)
}

// ExchangesClient provides access to exchanges and the per-MIC endpoints.
type ExchangesClient interface {
	List(ctx context.Context, params *SearchParams) (*Response[ListResponse[Exchange]], error)
	Get(ctx context.Context, mic string) (*Response[Exchange], error)
	Tickers(ctx context.Context, mic string, params *SearchParams) (*Response[DataResponse[ExchangeTickers]], error)
	EOD(ctx context.Context, mic string, params *ExchangeEodParams) (*Response[DataResponse[ExchangeEod]], error)
	EODLatest(ctx context.Context, mic string, params *ExchangeEodLatestParams) (*Response[DataResponse[ExchangeEod]], error)
	EODByDate(ctx context.Context, mic, date string, params *ExchangeEodLatestParams) (*Response[DataResponse[ExchangeEod]], error)
	Intraday(ctx context.Context, mic string, params *ExchangeIntradayParams) (*Response[DataResponse[ExchangeIntraday]], error)
	IntradayLatest(ctx context.Context, mic string, params *ExchangeIntradayLatestParams) (*Response[DataResponse[ExchangeIntraday]], error)
	IntradayByDate(ctx context.Context, mic, date string) (*Response[DataResponse[ExchangeIntraday]], error)
}

// CurrenciesClient provides access to supported currencies.
type CurrenciesClient interface {
	List(ctx context.Context, params *PageParams) (*Response[ListResponse[Currency]], error)
}

// TimezonesClient provides access to supported timezones.
type TimezonesClient interface {
	List(ctx context.Context, params *PageParams) (*Response[ListResponse[Timezone]], error)
}

// PriceClients groups the price history resources.
type PriceClients interface {
	EOD() EODClient
	Intraday() IntradayClient
}

// ActionClients groups the corporate action resources.
type ActionClients interface {
	Splits() SplitsClient
	Dividends() DividendsClient
}

// ReferenceClients groups the reference data resources.
type ReferenceClients interface {
	Tickers() TickersClient
	Exchanges() ExchangesClient
	Currencies() CurrenciesClient
	Timezones() TimezonesClient
}

// Client is the marketstack API client.
type Client interface {
	PriceClients
	ActionClients
	ReferenceClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a marketstack.Client.
//
// The configuration is copied by msclient.New and read by every call; no call
// mutates it, so one client may be shared by concurrent callers.
//
// # Retries
//
// RetryMax defaults to zero: every call is a single request and whatever the
// server returns, including 429 and 5xx, reaches the response envelope.
// Setting RetryMax opts into the transport's backoff policy.
type Config struct {
	// BaseURL: API root, e.g. "https://api.marketstack.com/v1". Defaults to
	// the public endpoint. A trailing slash is trimmed.
	BaseURL string `validate:"omitempty,url"`
	// AccessKey: sent as the access_key query parameter on every call. When
	// empty the parameter is omitted and the server reports the omission.
	AccessKey string
	// Headers: extra headers sent with every request.
	Headers map[string]string
	// Cookies: cookies sent with every request.
	Cookies []*http.Cookie `validate:"-"`
	// Timeout: bounds each call. Zero uses the default.
	Timeout time.Duration `validate:"gte=0"`
	// SkipTLSVerify: disables TLS certificate verification.
	SkipTLSVerify bool
	// RetryMax: retries for connection errors, 429 and 5xx. Zero disables them.
	RetryMax int `validate:"gte=0,lte=10"`
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration `validate:"gte=0"`
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration `validate:"gte=0"`
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger `validate:"-"`
	// Interceptors: optional hooks run around every request.
	Interceptors *InterceptorChain `validate:"-"`
}
