package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// NewTickersCommand creates the tickers command group.
func NewTickersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tickers",
		Aliases: []string{"ticker"},
		Short:   "Tickers and per-symbol data",
		Long:    "Look up tickers and retrieve prices and corporate actions for a single symbol",
	}

	cmd.AddCommand(newTickersListCommand())
	cmd.AddCommand(newTickersGetCommand())
	cmd.AddCommand(newTickersEODCommand())
	cmd.AddCommand(newTickersEODLatestCommand())
	cmd.AddCommand(newTickersEODDateCommand())
	cmd.AddCommand(newTickersIntradayCommand())
	cmd.AddCommand(newTickersIntradayLatestCommand())
	cmd.AddCommand(newTickersIntradayDateCommand())
	cmd.AddCommand(newTickersSplitsCommand())
	cmd.AddCommand(newTickersDividendsCommand())

	return cmd
}

func newTickersListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickers",
		Long:  "List tickers, optionally filtered by exchange or search text",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := pageFlags(cmd)
			if err != nil {
				return err
			}

			params := &marketstack.TickersParams{
				Exchange:   stringFlag(cmd, flagExchange),
				Search:     stringFlag(cmd, flagSearch),
				PageParams: page,
			}

			return execute(cmd, "tickers.list", listRenderer(tickerRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.ListResponse[marketstack.Ticker]], error) {
					return client.Tickers().List(ctx, params)
				})
		},
	}

	addExchangeFlag(cmd)
	addSearchFlag(cmd)
	addPageFlags(cmd)

	return cmd
}

func newTickersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SYMBOL",
		Short: "Get ticker details",
		Long:  "Display details about a single ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, "tickers.get", singleRenderer(tickerRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.Ticker], error) {
					return client.Tickers().Get(ctx, args[0])
				})
		},
	}
}

func tickerEODBars(t marketstack.TickerEod) []marketstack.EodPrice { return unwrap(t.EOD) }

func tickerIntradayBars(t marketstack.TickerIntraday) []marketstack.IntervalPrice {
	return unwrap(t.Intraday)
}

func newTickersEODCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eod SYMBOL",
		Short: "End-of-day prices for a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := readPriceFilters(cmd)
			if err != nil {
				return err
			}

			params := &marketstack.TickerEodParams{
				Exchange:   filters.exchange,
				Sort:       filters.sort,
				DateRange:  filters.dates,
				PageParams: filters.page,
			}

			return execute(cmd, "tickers.eod", dataRenderer(tickerEODBars, priceRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.DataResponse[marketstack.TickerEod]], error) {
					return client.Tickers().EOD(ctx, args[0], params)
				})
		},
	}

	addExchangeFlag(cmd)
	addSortFlag(cmd)
	addDateRangeFlags(cmd)
	addPageFlags(cmd)

	return cmd
}

func tickerPriceParams(cmd *cobra.Command) *marketstack.TickerPriceParams {
	return &marketstack.TickerPriceParams{Exchange: stringFlag(cmd, flagExchange)}
}

func newTickersEODLatestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eod-latest SYMBOL",
		Short: "Latest end-of-day price for a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := tickerPriceParams(cmd)

			return execute(cmd, "tickers.eod_latest", singleRenderer(priceRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.EodPrice], error) {
					return client.Tickers().EODLatest(ctx, args[0], params)
				})
		},
	}

	addExchangeFlag(cmd)

	return cmd
}

func newTickersEODDateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eod-date SYMBOL DATE",
		Short: "End-of-day price for a ticker on a date",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			params := tickerPriceParams(cmd)

			return execute(cmd, "tickers.eod_by_date", singleRenderer(priceRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.EodPrice], error) {
					return client.Tickers().EODByDate(ctx, args[0], args[1], params)
				})
		},
	}

	addExchangeFlag(cmd)

	return cmd
}

func newTickersIntradayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intraday SYMBOL",
		Short: "Intraday prices for a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := readPriceFilters(cmd)
			if err != nil {
				return err
			}

			params := &marketstack.TickerIntradayParams{
				Exchange:   filters.exchange,
				Sort:       filters.sort,
				Interval:   filters.interval,
				DateRange:  filters.dates,
				PageParams: filters.page,
			}

			return execute(cmd, "tickers.intraday", dataRenderer(tickerIntradayBars, intervalRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.DataResponse[marketstack.TickerIntraday]], error) {
					return client.Tickers().Intraday(ctx, args[0], params)
				})
		},
	}

	addExchangeFlag(cmd)
	addSortFlag(cmd)
	addIntervalFlag(cmd)
	addDateRangeFlags(cmd)
	addPageFlags(cmd)

	return cmd
}

func newTickersIntradayLatestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intraday-latest SYMBOL",
		Short: "Latest intraday price for a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, "tickers.intraday_latest", singleRenderer(intervalRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.IntervalPrice], error) {
					return client.Tickers().IntradayLatest(ctx, args[0])
				})
		},
	}

	return cmd
}

func newTickersIntradayDateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intraday-date SYMBOL DATE",
		Short: "Intraday price for a ticker on a date",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			params := tickerPriceParams(cmd)

			return execute(cmd, "tickers.intraday_by_date", singleRenderer(intervalRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.IntervalPrice], error) {
					return client.Tickers().IntradayByDate(ctx, args[0], args[1], params)
				})
		},
	}

	addExchangeFlag(cmd)

	return cmd
}

func tickerActionParams(cmd *cobra.Command) *marketstack.TickerActionParams {
	return &marketstack.TickerActionParams{
		Sort:      rawSortFlag(cmd),
		DateRange: dateRangeFlags(cmd),
	}
}

func addTickerActionFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagSort, "", "sort expression passed to the API as is")
	addDateRangeFlags(cmd)
}

func newTickersSplitsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "splits SYMBOL",
		Short: "Stock splits for a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := tickerActionParams(cmd)

			return execute(cmd, "tickers.splits", listRenderer(splitRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.ListResponse[marketstack.Split]], error) {
					return client.Tickers().Splits(ctx, args[0], params)
				})
		},
	}

	addTickerActionFlags(cmd)

	return cmd
}

func newTickersDividendsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dividends SYMBOL",
		Short: "Dividends for a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := tickerActionParams(cmd)

			return execute(cmd, "tickers.dividends", listRenderer(dividendRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.ListResponse[marketstack.Dividend]], error) {
					return client.Tickers().Dividends(ctx, args[0], params)
				})
		},
	}

	addTickerActionFlags(cmd)

	return cmd
}
