package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

func newActionParams(cmd *cobra.Command) (*marketstack.ActionParams, error) {
	filters, err := readPriceFilters(cmd)
	if err != nil {
		return nil, err
	}

	return &marketstack.ActionParams{
		Symbols:    filters.symbols,
		Sort:       filters.sort,
		DateRange:  filters.dates,
		PageParams: filters.page,
	}, nil
}

func addActionFlags(cmd *cobra.Command) {
	addSymbolsFlag(cmd)
	addSortFlag(cmd)
	addDateRangeFlags(cmd)
	addPageFlags(cmd)
}

// NewSplitsCommand creates the splits command.
func NewSplitsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "splits",
		Aliases: []string{"split"},
		Short:   "List stock splits",
		Long:    "List stock splits for one or more symbols",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := newActionParams(cmd)
			if err != nil {
				return err
			}

			return execute(cmd, "splits.list", listRenderer(splitRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.ListResponse[marketstack.Split]], error) {
					return client.Splits().List(ctx, params)
				})
		},
	}

	addActionFlags(cmd)

	return cmd
}

// NewDividendsCommand creates the dividends command.
func NewDividendsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dividends",
		Aliases: []string{"dividend"},
		Short:   "List dividends",
		Long:    "List dividend payments for one or more symbols",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := newActionParams(cmd)
			if err != nil {
				return err
			}

			return execute(cmd, "dividends.list", listRenderer(dividendRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.ListResponse[marketstack.Dividend]], error) {
					return client.Dividends().List(ctx, params)
				})
		},
	}

	addActionFlags(cmd)

	return cmd
}
