package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// NewEODCommand creates the eod command group.
func NewEODCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eod",
		Short: "End-of-day prices",
		Long:  "Retrieve end-of-day price history for one or more symbols",
	}

	cmd.AddCommand(newEODListCommand())
	cmd.AddCommand(newEODLatestCommand())
	cmd.AddCommand(newEODDateCommand())

	return cmd
}

func addEODFlags(cmd *cobra.Command, withDates bool) {
	addSymbolsFlag(cmd)
	addExchangeFlag(cmd)
	addSortFlag(cmd)
	addPageFlags(cmd)

	if withDates {
		addDateRangeFlags(cmd)
	}
}

func eodParams(filters *priceFilters) *marketstack.EodParams {
	return &marketstack.EodParams{
		Symbols:    filters.symbols,
		Exchange:   filters.exchange,
		Sort:       filters.sort,
		DateRange:  filters.dates,
		PageParams: filters.page,
	}
}

func newEODListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List end-of-day prices",
		Long:  "List end-of-day prices, optionally limited to a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := readPriceFilters(cmd)
			if err != nil {
				return err
			}

			return execute(cmd, "eod.list", listRenderer(priceRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.ListResponse[marketstack.EodPrice]], error) {
					return client.EOD().List(ctx, eodParams(filters))
				})
		},
	}

	addEODFlags(cmd, true)

	return cmd
}

func newEODLatestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the latest end-of-day prices",
		Long:  "Show the most recent end-of-day price for each symbol",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := readPriceFilters(cmd)
			if err != nil {
				return err
			}

			params := &marketstack.EodLatestParams{
				Symbols:    filters.symbols,
				Exchange:   filters.exchange,
				Sort:       filters.sort,
				PageParams: filters.page,
			}

			return execute(cmd, "eod.latest", listRenderer(priceRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.ListResponse[marketstack.EodPrice]], error) {
					return client.EOD().Latest(ctx, params)
				})
		},
	}

	addEODFlags(cmd, false)

	return cmd
}

func newEODDateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date DATE",
		Short: "Show end-of-day prices for a date",
		Long:  "Show end-of-day prices for a single trading date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := readPriceFilters(cmd)
			if err != nil {
				return err
			}

			return execute(cmd, "eod.by_date", listRenderer(priceRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.ListResponse[marketstack.EodPrice]], error) {
					return client.EOD().ByDate(ctx, args[0], eodParams(filters))
				})
		},
	}

	addEODFlags(cmd, false)

	return cmd
}

// NewIntradayCommand creates the intraday command group.
func NewIntradayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intraday",
		Short: "Intraday prices",
		Long:  "Retrieve intraday price bars for one or more symbols",
	}

	cmd.AddCommand(newIntradayListCommand())
	cmd.AddCommand(newIntradayLatestCommand())
	cmd.AddCommand(newIntradayDateCommand())

	return cmd
}

func addIntradayFlags(cmd *cobra.Command, withDates bool) {
	addEODFlags(cmd, withDates)
	addIntervalFlag(cmd)
}

func intradayParams(filters *priceFilters) *marketstack.IntradayParams {
	return &marketstack.IntradayParams{
		Symbols:    filters.symbols,
		Exchange:   filters.exchange,
		Sort:       filters.sort,
		Interval:   filters.interval,
		DateRange:  filters.dates,
		PageParams: filters.page,
	}
}

func newIntradayListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List intraday prices",
		Long:  "List intraday price bars, optionally limited to a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := readPriceFilters(cmd)
			if err != nil {
				return err
			}

			return execute(cmd, "intraday.list", listRenderer(intervalRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.ListResponse[marketstack.IntervalPrice]], error) {
					return client.Intraday().List(ctx, intradayParams(filters))
				})
		},
	}

	addIntradayFlags(cmd, true)

	return cmd
}

func newIntradayLatestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the latest intraday prices",
		Long:  "Show the most recent intraday bar for each symbol",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := readPriceFilters(cmd)
			if err != nil {
				return err
			}

			params := &marketstack.IntradayLatestParams{
				Symbols:    filters.symbols,
				Exchange:   filters.exchange,
				Sort:       filters.sort,
				Interval:   filters.interval,
				PageParams: filters.page,
			}

			return execute(cmd, "intraday.latest", listRenderer(intervalRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.ListResponse[marketstack.IntervalPrice]], error) {
					return client.Intraday().Latest(ctx, params)
				})
		},
	}

	addIntradayFlags(cmd, false)

	return cmd
}

func newIntradayDateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date DATE",
		Short: "Show intraday prices for a date",
		Long:  "Show intraday price bars for a single trading date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := readPriceFilters(cmd)
			if err != nil {
				return err
			}

			return execute(cmd, "intraday.by_date", listRenderer(intervalRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.ListResponse[marketstack.IntervalPrice]], error) {
					return client.Intraday().ByDate(ctx, args[0], intradayParams(filters))
				})
		},
	}

	addIntradayFlags(cmd, false)

	return cmd
}
