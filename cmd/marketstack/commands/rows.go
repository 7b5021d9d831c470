package commands

import (
	"fmt"

	"github.com/fivetwenty-io/marketstack/internal/constants"
	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// Row types flatten models for table and csv output. Every field is a string
// tagged with its csv column name.

type priceRow struct {
	Date     string `csv:"date"`
	Symbol   string `csv:"symbol"`
	Exchange string `csv:"exchange"`
	Open     string `csv:"open"`
	High     string `csv:"high"`
	Low      string `csv:"low"`
	Close    string `csv:"close"`
	Volume   string `csv:"volume"`
}

type intervalRow struct {
	Date     string `csv:"date"`
	Symbol   string `csv:"symbol"`
	Exchange string `csv:"exchange"`
	Open     string `csv:"open"`
	High     string `csv:"high"`
	Low      string `csv:"low"`
	Last     string `csv:"last"`
	Close    string `csv:"close"`
	Volume   string `csv:"volume"`
}

type splitRow struct {
	Date        string `csv:"date"`
	Symbol      string `csv:"symbol"`
	SplitFactor string `csv:"split_factor"`
}

type dividendRow struct {
	Date     string `csv:"date"`
	Symbol   string `csv:"symbol"`
	Dividend string `csv:"dividend"`
}

type tickerRow struct {
	Symbol      string `csv:"symbol"`
	Name        string `csv:"name"`
	Country     string `csv:"country"`
	Exchange    string `csv:"exchange"`
	HasEOD      string `csv:"has_eod"`
	HasIntraday string `csv:"has_intraday"`
}

type exchangeRow struct {
	MIC     string `csv:"mic"`
	Acronym string `csv:"acronym"`
	Name    string `csv:"name"`
	Country string `csv:"country"`
	City    string `csv:"city"`
	Website string `csv:"website"`
}

type currencyRow struct {
	Code   string `csv:"code"`
	Symbol string `csv:"symbol"`
	Name   string `csv:"name"`
}

type timezoneRow struct {
	Timezone string `csv:"timezone"`
	Abbr     string `csv:"abbr"`
	AbbrDST  string `csv:"abbr_dst"`
}

// cell renders one optional value: empty when absent, "null" when null.
func cell[T any](value marketstack.Optional[T]) string {
	if value.IsNull() {
		return constants.Null
	}

	v, ok := value.Get()
	if !ok {
		return ""
	}

	return fmt.Sprint(v)
}

func priceRows(prices []marketstack.EodPrice) []priceRow {
	rows := make([]priceRow, 0, len(prices))
	for _, p := range prices {
		rows = append(rows, priceRow{
			Date:     cell(p.Date),
			Symbol:   cell(p.Symbol),
			Exchange: cell(p.Exchange),
			Open:     cell(p.Open),
			High:     cell(p.High),
			Low:      cell(p.Low),
			Close:    cell(p.Close),
			Volume:   cell(p.Volume),
		})
	}

	return rows
}

func intervalRows(prices []marketstack.IntervalPrice) []intervalRow {
	rows := make([]intervalRow, 0, len(prices))
	for _, p := range prices {
		rows = append(rows, intervalRow{
			Date:     cell(p.Date),
			Symbol:   cell(p.Symbol),
			Exchange: cell(p.Exchange),
			Open:     cell(p.Open),
			High:     cell(p.High),
			Low:      cell(p.Low),
			Last:     cell(p.Last),
			Close:    cell(p.Close),
			Volume:   cell(p.Volume),
		})
	}

	return rows
}

func splitRows(splits []marketstack.Split) []splitRow {
	rows := make([]splitRow, 0, len(splits))
	for _, s := range splits {
		rows = append(rows, splitRow{Date: cell(s.Date), Symbol: cell(s.Symbol), SplitFactor: cell(s.SplitFactor)})
	}

	return rows
}

func dividendRows(dividends []marketstack.Dividend) []dividendRow {
	rows := make([]dividendRow, 0, len(dividends))
	for _, d := range dividends {
		rows = append(rows, dividendRow{Date: cell(d.Date), Symbol: cell(d.Symbol), Dividend: cell(d.Dividend)})
	}

	return rows
}

func tickerRows(tickers []marketstack.Ticker) []tickerRow {
	rows := make([]tickerRow, 0, len(tickers))
	for _, t := range tickers {
		exchange, _ := t.StockExchange.Get()

		rows = append(rows, tickerRow{
			Symbol:      cell(t.Symbol),
			Name:        cell(t.Name),
			Country:     cell(t.Country),
			Exchange:    cell(exchange.MIC),
			HasEOD:      cell(t.HasEOD),
			HasIntraday: cell(t.HasIntraday),
		})
	}

	return rows
}

func exchangeRows(exchanges []marketstack.Exchange) []exchangeRow {
	rows := make([]exchangeRow, 0, len(exchanges))
	for _, e := range exchanges {
		rows = append(rows, exchangeRow{
			MIC:     cell(e.MIC),
			Acronym: cell(e.Acronym),
			Name:    cell(e.Name),
			Country: cell(e.Country),
			City:    cell(e.City),
			Website: cell(e.Website),
		})
	}

	return rows
}

func currencyRows(currencies []marketstack.Currency) []currencyRow {
	rows := make([]currencyRow, 0, len(currencies))
	for _, c := range currencies {
		rows = append(rows, currencyRow{Code: cell(c.Code), Symbol: cell(c.Symbol), Name: cell(c.Name)})
	}

	return rows
}

func timezoneRows(timezones []marketstack.Timezone) []timezoneRow {
	rows := make([]timezoneRow, 0, len(timezones))
	for _, tz := range timezones {
		rows = append(rows, timezoneRow{Timezone: cell(tz.Timezone), Abbr: cell(tz.Abbr), AbbrDST: cell(tz.AbbrDST)})
	}

	return rows
}

// Renderers for each payload shape.

func listRenderer[T, R any](rows func([]T) []R) *Renderer[marketstack.ListResponse[T]] {
	return &Renderer[marketstack.ListResponse[T]]{
		Rows: func(value *marketstack.ListResponse[T]) any { return rows(value.Items()) },
	}
}

func singleRenderer[T, R any](rows func([]T) []R) *Renderer[T] {
	return &Renderer[T]{
		Rows: func(value *T) any { return rows([]T{*value}) },
	}
}

func dataRenderer[T, I, R any](items func(T) []I, rows func([]I) []R) *Renderer[marketstack.DataResponse[T]] {
	return &Renderer[marketstack.DataResponse[T]]{
		Rows: func(value *marketstack.DataResponse[T]) any {
			data, _ := value.Data.Get()

			return rows(items(data))
		},
	}
}

func unwrap[T any](value marketstack.Optional[[]T]) []T {
	items, _ := value.Get()

	return items
}
