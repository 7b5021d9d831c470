package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// NewExchangesCommand creates the exchanges command group.
func NewExchangesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exchanges",
		Aliases: []string{"exchange"},
		Short:   "Exchanges and per-exchange data",
		Long:    "Look up stock exchanges by MIC and retrieve their tickers and prices",
	}

	cmd.AddCommand(newExchangesListCommand())
	cmd.AddCommand(newExchangesGetCommand())
	cmd.AddCommand(newExchangesTickersCommand())
	cmd.AddCommand(newExchangesEODCommand())
	cmd.AddCommand(newExchangesEODLatestCommand())
	cmd.AddCommand(newExchangesEODDateCommand())
	cmd.AddCommand(newExchangesIntradayCommand())
	cmd.AddCommand(newExchangesIntradayLatestCommand())
	cmd.AddCommand(newExchangesIntradayDateCommand())

	return cmd
}

func searchParams(cmd *cobra.Command) (*marketstack.SearchParams, error) {
	page, err := pageFlags(cmd)
	if err != nil {
		return nil, err
	}

	return &marketstack.SearchParams{Search: stringFlag(cmd, flagSearch), PageParams: page}, nil
}

func newExchangesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exchanges",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := searchParams(cmd)
			if err != nil {
				return err
			}

			return execute(cmd, "exchanges.list", listRenderer(exchangeRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.ListResponse[marketstack.Exchange]], error) {
					return client.Exchanges().List(ctx, params)
				})
		},
	}

	addSearchFlag(cmd)
	addPageFlags(cmd)

	return cmd
}

func newExchangesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MIC",
		Short: "Get exchange details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, "exchanges.get", singleRenderer(exchangeRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.Exchange], error) {
					return client.Exchanges().Get(ctx, args[0])
				})
		},
	}
}

func exchangeTickerList(e marketstack.ExchangeTickers) []marketstack.Ticker { return unwrap(e.Tickers) }

func exchangeEODBars(e marketstack.ExchangeEod) []marketstack.EodPrice { return unwrap(e.EOD) }

func exchangeIntradayBars(e marketstack.ExchangeIntraday) []marketstack.IntervalPrice {
	return unwrap(e.Intraday)
}

func newExchangesTickersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickers MIC",
		Short: "List tickers listed on an exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := searchParams(cmd)
			if err != nil {
				return err
			}

			return execute(cmd, "exchanges.tickers", dataRenderer(exchangeTickerList, tickerRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.DataResponse[marketstack.ExchangeTickers]], error) {
					return client.Exchanges().Tickers(ctx, args[0], params)
				})
		},
	}

	addSearchFlag(cmd)
	addPageFlags(cmd)

	return cmd
}

func addExchangePriceFlags(cmd *cobra.Command, withDates, withInterval bool) {
	addSymbolsFlag(cmd)
	addSortFlag(cmd)
	addPageFlags(cmd)

	if withDates {
		addDateRangeFlags(cmd)
	}

	if withInterval {
		addIntervalFlag(cmd)
	}
}

func exchangeEODLatestParams(filters *priceFilters) *marketstack.ExchangeEodLatestParams {
	return &marketstack.ExchangeEodLatestParams{
		Symbols:    filters.symbols,
		Sort:       filters.sort,
		PageParams: filters.page,
	}
}

func exchangeIntradayLatestParams(filters *priceFilters) *marketstack.ExchangeIntradayLatestParams {
	return &marketstack.ExchangeIntradayLatestParams{
		Symbols:    filters.symbols,
		Sort:       filters.sort,
		Interval:   filters.interval,
		PageParams: filters.page,
	}
}

func newExchangesEODCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eod MIC",
		Short: "End-of-day prices on an exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := readPriceFilters(cmd)
			if err != nil {
				return err
			}

			params := &marketstack.ExchangeEodParams{
				Symbols:    filters.symbols,
				Sort:       filters.sort,
				DateRange:  filters.dates,
				PageParams: filters.page,
			}

			return execute(cmd, "exchanges.eod", dataRenderer(exchangeEODBars, priceRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.DataResponse[marketstack.ExchangeEod]], error) {
					return client.Exchanges().EOD(ctx, args[0], params)
				})
		},
	}

	addExchangePriceFlags(cmd, true, false)

	return cmd
}

func newExchangesEODLatestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eod-latest MIC",
		Short: "Latest end-of-day prices on an exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := readPriceFilters(cmd)
			if err != nil {
				return err
			}

			return execute(cmd, "exchanges.eod_latest", dataRenderer(exchangeEODBars, priceRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.DataResponse[marketstack.ExchangeEod]], error) {
					return client.Exchanges().EODLatest(ctx, args[0], exchangeEODLatestParams(filters))
				})
		},
	}

	addExchangePriceFlags(cmd, false, false)

	return cmd
}

func newExchangesEODDateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eod-date MIC DATE",
		Short: "End-of-day prices on an exchange for a date",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := readPriceFilters(cmd)
			if err != nil {
				return err
			}

			return execute(cmd, "exchanges.eod_by_date", dataRenderer(exchangeEODBars, priceRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.DataResponse[marketstack.ExchangeEod]], error) {
					return client.Exchanges().EODByDate(ctx, args[0], args[1], exchangeEODLatestParams(filters))
				})
		},
	}

	addExchangePriceFlags(cmd, false, false)

	return cmd
}

func newExchangesIntradayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intraday MIC",
		Short: "Intraday prices on an exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := readPriceFilters(cmd)
			if err != nil {
				return err
			}

			params := &marketstack.ExchangeIntradayParams{
				Symbols:    filters.symbols,
				Sort:       filters.sort,
				Interval:   filters.interval,
				DateRange:  filters.dates,
				PageParams: filters.page,
			}

			return execute(cmd, "exchanges.intraday", dataRenderer(exchangeIntradayBars, intervalRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.DataResponse[marketstack.ExchangeIntraday]], error) {
					return client.Exchanges().Intraday(ctx, args[0], params)
				})
		},
	}

	addExchangePriceFlags(cmd, true, true)

	return cmd
}

func newExchangesIntradayLatestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intraday-latest MIC",
		Short: "Latest intraday prices on an exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := readPriceFilters(cmd)
			if err != nil {
				return err
			}

			return execute(cmd, "exchanges.intraday_latest", dataRenderer(exchangeIntradayBars, intervalRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.DataResponse[marketstack.ExchangeIntraday]], error) {
					return client.Exchanges().IntradayLatest(ctx, args[0], exchangeIntradayLatestParams(filters))
				})
		},
	}

	addExchangePriceFlags(cmd, false, true)

	return cmd
}

func newExchangesIntradayDateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intraday-date MIC DATE",
		Short: "Intraday prices on an exchange for a date",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, "exchanges.intraday_by_date", dataRenderer(exchangeIntradayBars, intervalRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.DataResponse[marketstack.ExchangeIntraday]], error) {
					return client.Exchanges().IntradayByDate(ctx, args[0], args[1])
				})
		},
	}

	return cmd
}
