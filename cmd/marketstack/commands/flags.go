package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/marketstack/internal/constants"
	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// Query flag names.
const (
	flagSymbols  = "symbols"
	flagExchange = "exchange"
	flagSort     = "sort"
	flagInterval = "interval"
	flagDateFrom = "date-from"
	flagDateTo   = "date-to"
	flagLimit    = "limit"
	flagOffset   = "offset"
	flagSearch   = "search"
)

// Flags only become query parameters when the user sets them, so the API
// defaults apply to everything left out.

func addSymbolsFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(flagSymbols, "s", "", "comma separated ticker symbols, e.g. AAPL,MSFT")
}

func addExchangeFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(flagExchange, "e", "", "filter by exchange MIC, e.g. XNAS")
}

func addSearchFlag(cmd *cobra.Command) {
	cmd.Flags().String(flagSearch, "", "free text search")
}

func addSortFlag(cmd *cobra.Command) {
	cmd.Flags().String(flagSort, "", "sort order by date (asc, desc)")
}

func addIntervalFlag(cmd *cobra.Command) {
	names := make([]string, 0, len(marketstack.Intervals()))
	for _, interval := range marketstack.Intervals() {
		names = append(names, interval.String())
	}

	cmd.Flags().String(flagInterval, "", "bar interval ("+strings.Join(names, ", ")+")")
}

func addDateRangeFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagDateFrom, "", "start date (YYYY-MM-DD or ISO-8601)")
	cmd.Flags().String(flagDateTo, "", "end date (YYYY-MM-DD or ISO-8601)")
}

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().Int(flagLimit, constants.DefaultPageSize, "results per page (max 1000)")
	cmd.Flags().Int(flagOffset, 0, "pagination offset")
}

func stringFlag(cmd *cobra.Command, name string) marketstack.Optional[string] {
	if !cmd.Flags().Changed(name) {
		return marketstack.Absent[string]()
	}

	value, _ := cmd.Flags().GetString(name)

	return marketstack.Some(value)
}

func sortFlag(cmd *cobra.Command) (marketstack.Optional[marketstack.Sort], error) {
	raw := stringFlag(cmd, flagSort)

	value, ok := raw.Get()
	if !ok {
		return marketstack.Absent[marketstack.Sort](), nil
	}

	sort, err := marketstack.ParseSort(value)
	if err != nil {
		return marketstack.Absent[marketstack.Sort](), fmt.Errorf("--%s: %w", flagSort, err)
	}

	return marketstack.Some(sort), nil
}

// rawSortFlag passes the sort flag through unchanged for endpoints that take
// free-form sort strings.
func rawSortFlag(cmd *cobra.Command) marketstack.Optional[marketstack.Sort] {
	value, ok := stringFlag(cmd, flagSort).Get()
	if !ok {
		return marketstack.Absent[marketstack.Sort]()
	}

	return marketstack.Some(marketstack.Sort(value))
}

func intervalFlag(cmd *cobra.Command) (marketstack.Optional[marketstack.Interval], error) {
	value, ok := stringFlag(cmd, flagInterval).Get()
	if !ok {
		return marketstack.Absent[marketstack.Interval](), nil
	}

	interval, err := marketstack.ParseInterval(value)
	if err != nil {
		return marketstack.Absent[marketstack.Interval](), fmt.Errorf("--%s: %w", flagInterval, err)
	}

	return marketstack.Some(interval), nil
}

func dateRangeFlags(cmd *cobra.Command) marketstack.DateRange {
	return marketstack.DateRange{
		DateFrom: stringFlag(cmd, flagDateFrom),
		DateTo:   stringFlag(cmd, flagDateTo),
	}
}

func pageFlags(cmd *cobra.Command) (marketstack.PageParams, error) {
	var page marketstack.PageParams

	if cmd.Flags().Changed(flagLimit) {
		limit, _ := cmd.Flags().GetInt(flagLimit)
		if limit < 1 || limit > constants.MaxPageSize {
			return page, fmt.Errorf("%w: %d", constants.ErrInvalidLimit, limit)
		}

		page.Limit = marketstack.Some(limit)
	}

	if cmd.Flags().Changed(flagOffset) {
		offset, _ := cmd.Flags().GetInt(flagOffset)
		if offset < 0 {
			return page, fmt.Errorf("%w: %d", constants.ErrInvalidOffset, offset)
		}

		page.Offset = marketstack.Some(offset)
	}

	return page, nil
}

// priceFilters collects the flags shared by the price history commands.
type priceFilters struct {
	symbols  marketstack.Optional[string]
	exchange marketstack.Optional[string]
	sort     marketstack.Optional[marketstack.Sort]
	interval marketstack.Optional[marketstack.Interval]
	dates    marketstack.DateRange
	page     marketstack.PageParams
}

func readPriceFilters(cmd *cobra.Command) (*priceFilters, error) {
	sort, err := sortFlag(cmd)
	if err != nil {
		return nil, err
	}

	page, err := pageFlags(cmd)
	if err != nil {
		return nil, err
	}

	filters := &priceFilters{
		symbols:  stringFlag(cmd, flagSymbols),
		exchange: stringFlag(cmd, flagExchange),
		sort:     sort,
		dates:    dateRangeFlags(cmd),
		page:     page,
	}

	if cmd.Flags().Lookup(flagInterval) != nil {
		filters.interval, err = intervalFlag(cmd)
		if err != nil {
			return nil, err
		}
	}

	return filters, nil
}
