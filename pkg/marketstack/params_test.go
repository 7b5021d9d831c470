package marketstack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

type queryer interface {
	Query() *marketstack.Query
}

func TestParams_Query(t *testing.T) { //nolint:funlen
	t.Parallel()

	page := marketstack.PageParams{Limit: marketstack.Some(50), Offset: marketstack.Some(100)}
	dates := marketstack.DateRange{DateFrom: marketstack.Some("2024-01-01"), DateTo: marketstack.Null[string]()}

	tests := []struct {
		name   string
		params queryer
		want   map[string]string
	}{
		{"nil eod", (*marketstack.EodParams)(nil), map[string]string{}},
		{"empty eod", &marketstack.EodParams{}, map[string]string{}},
		{"eod", &marketstack.EodParams{
			Symbols:    marketstack.Some("AAPL"),
			Exchange:   marketstack.Absent[string](),
			Sort:       marketstack.Some(marketstack.SortAsc),
			DateRange:  dates,
			PageParams: page,
		}, map[string]string{"symbols": "AAPL", "sort": "ASC", "date_from": "2024-01-01", "limit": "50", "offset": "100"}},
		{"eod latest", &marketstack.EodLatestParams{Exchange: marketstack.Some("XNAS")},
			map[string]string{"exchange": "XNAS"}},
		{"intraday", &marketstack.IntradayParams{Interval: marketstack.Some(marketstack.Interval1Hour), PageParams: page},
			map[string]string{"interval": "1hour", "limit": "50", "offset": "100"}},
		{"intraday latest", &marketstack.IntradayLatestParams{Symbols: marketstack.Null[string]()},
			map[string]string{}},
		{"actions", &marketstack.ActionParams{Symbols: marketstack.Some("MSFT"), DateRange: dates},
			map[string]string{"symbols": "MSFT", "date_from": "2024-01-01"}},
		{"tickers", &marketstack.TickersParams{Search: marketstack.Some("apple"), Exchange: marketstack.Some("XNAS")},
			map[string]string{"search": "apple", "exchange": "XNAS"}},
		{"ticker eod", &marketstack.TickerEodParams{Sort: marketstack.Some(marketstack.SortDesc)},
			map[string]string{"sort": "DESC"}},
		{"ticker intraday", &marketstack.TickerIntradayParams{Interval: marketstack.Some(marketstack.Interval5Min)},
			map[string]string{"interval": "5min"}},
		{"ticker price", &marketstack.TickerPriceParams{Exchange: marketstack.Some("XLON")},
			map[string]string{"exchange": "XLON"}},
		{"ticker action raw sort", &marketstack.TickerActionParams{Sort: marketstack.Some(marketstack.Sort("date"))},
			map[string]string{"sort": "date"}},
		{"search", &marketstack.SearchParams{Search: marketstack.Some("nasdaq"), PageParams: page},
			map[string]string{"search": "nasdaq", "limit": "50", "offset": "100"}},
		{"exchange eod", &marketstack.ExchangeEodParams{Symbols: marketstack.Some("AAPL"), DateRange: dates},
			map[string]string{"symbols": "AAPL", "date_from": "2024-01-01"}},
		{"exchange eod latest", &marketstack.ExchangeEodLatestParams{Sort: marketstack.Some(marketstack.SortAsc)},
			map[string]string{"sort": "ASC"}},
		{"exchange intraday", &marketstack.ExchangeIntradayParams{Interval: marketstack.Some(marketstack.Interval24Hour)},
			map[string]string{"interval": "24hour"}},
		{"exchange intraday latest", &marketstack.ExchangeIntradayLatestParams{Symbols: marketstack.Some("AAPL")},
			map[string]string{"symbols": "AAPL"}},
		{"page", &page, map[string]string{"limit": "50", "offset": "100"}},
		{"nil page", (*marketstack.PageParams)(nil), map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.params.Query()

			got := make(map[string]string, q.Len())
			for _, key := range q.Keys() {
				got[key], _ = q.Get(key)
			}

			assert.Equal(t, tt.want, got)
			assert.False(t, q.Has(marketstack.ParamAccessKey))
		})
	}
}

func TestPagination_HasMore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page marketstack.Pagination
		want bool
	}{
		{"more", marketstack.Pagination{Offset: marketstack.Some(0), Count: marketstack.Some(100), Total: marketstack.Some(250)}, true},
		{"last page", marketstack.Pagination{Offset: marketstack.Some(200), Count: marketstack.Some(50), Total: marketstack.Some(250)}, false},
		{"no offset", marketstack.Pagination{Count: marketstack.Some(10), Total: marketstack.Some(20)}, true},
		{"unknown total", marketstack.Pagination{Count: marketstack.Some(10)}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.page.HasMore(), tt.name)
	}
}
