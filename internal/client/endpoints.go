package client

import (
	"net/http"

	"github.com/fivetwenty-io/marketstack/internal/endpoint"
)

// Path parameter names.
const (
	paramSymbol = "symbol"
	paramMIC    = "mic"
	paramDate   = "date"
)

func get(name, path string, statuses endpoint.StatusTable) endpoint.Endpoint {
	return endpoint.Endpoint{Name: name, Method: http.MethodGet, Path: path, Statuses: statuses}
}

// Endpoint catalogue. Every operation is a GET documenting 200 and 422. Only
// ticker splits also documents 403, 404 and 429; any other status on the rest
// is unrecognized.
var (
	EODList   = get("eod.list", "/eod", endpoint.StandardStatuses)
	EODLatest = get("eod.latest", "/eod/latest", endpoint.StandardStatuses)
	EODByDate = get("eod.by_date", "/eod/{date}", endpoint.StandardStatuses)

	IntradayList   = get("intraday.list", "/intraday", endpoint.StandardStatuses)
	IntradayLatest = get("intraday.latest", "/intraday/latest", endpoint.StandardStatuses)
	IntradayByDate = get("intraday.by_date", "/intraday/{date}", endpoint.StandardStatuses)

	SplitsList    = get("splits.list", "/splits", endpoint.StandardStatuses)
	DividendsList = get("dividends.list", "/dividends", endpoint.StandardStatuses)

	TickersList          = get("tickers.list", "/tickers", endpoint.StandardStatuses)
	TickerGet            = get("tickers.get", "/tickers/{symbol}", endpoint.StandardStatuses)
	TickerEOD            = get("tickers.eod", "/tickers/{symbol}/eod", endpoint.StandardStatuses)
	TickerEODLatest      = get("tickers.eod_latest", "/tickers/{symbol}/eod/latest", endpoint.StandardStatuses)
	TickerEODByDate      = get("tickers.eod_by_date", "/tickers/{symbol}/eod/{date}", endpoint.StandardStatuses)
	TickerIntraday       = get("tickers.intraday", "/tickers/{symbol}/intraday", endpoint.StandardStatuses)
	TickerIntradayLatest = get("tickers.intraday_latest", "/tickers/{symbol}/intraday/latest", endpoint.StandardStatuses)
	TickerIntradayByDate = get("tickers.intraday_by_date", "/tickers/{symbol}/intraday/{date}", endpoint.StandardStatuses)
	TickerSplits         = get("tickers.splits", "/tickers/{symbol}/splits", endpoint.ExtendedStatuses)
	TickerDividends      = get("tickers.dividends", "/tickers/{symbol}/dividends", endpoint.StandardStatuses)

	ExchangesList          = get("exchanges.list", "/exchanges", endpoint.StandardStatuses)
	ExchangeGet            = get("exchanges.get", "/exchanges/{mic}", endpoint.StandardStatuses)
	ExchangeTickers        = get("exchanges.tickers", "/exchanges/{mic}/tickers", endpoint.StandardStatuses)
	ExchangeEOD            = get("exchanges.eod", "/exchanges/{mic}/eod", endpoint.StandardStatuses)
	ExchangeEODLatest      = get("exchanges.eod_latest", "/exchanges/{mic}/eod/latest", endpoint.StandardStatuses)
	ExchangeEODByDate      = get("exchanges.eod_by_date", "/exchanges/{mic}/eod/{date}", endpoint.StandardStatuses)
	ExchangeIntraday       = get("exchanges.intraday", "/exchanges/{mic}/intraday", endpoint.StandardStatuses)
	ExchangeIntradayLatest = get("exchanges.intraday_latest", "/exchanges/{mic}/intraday/latest", endpoint.StandardStatuses)
	ExchangeIntradayByDate = get("exchanges.intraday_by_date", "/exchanges/{mic}/intraday/{date}", endpoint.StandardStatuses)

	CurrenciesList = get("currencies.list", "/currencies", endpoint.StandardStatuses)
	TimezonesList  = get("timezones.list", "/timezones", endpoint.StandardStatuses)
)

// Endpoints lists the catalogue.
func Endpoints() []endpoint.Endpoint {
	return []endpoint.Endpoint{
		EODList, EODLatest, EODByDate,
		IntradayList, IntradayLatest, IntradayByDate,
		SplitsList, DividendsList,
		TickersList, TickerGet, TickerEOD, TickerEODLatest, TickerEODByDate,
		TickerIntraday, TickerIntradayLatest, TickerIntradayByDate, TickerSplits, TickerDividends,
		ExchangesList, ExchangeGet, ExchangeTickers, ExchangeEOD, ExchangeEODLatest, ExchangeEODByDate,
		ExchangeIntraday, ExchangeIntradayLatest, ExchangeIntradayByDate,
		CurrenciesList, TimezonesList,
	}
}
