package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// NewCurrenciesCommand creates the currencies command.
func NewCurrenciesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "currencies",
		Aliases: []string{"currency"},
		Short:   "List supported currencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := pageFlags(cmd)
			if err != nil {
				return err
			}

			return execute(cmd, "currencies.list", listRenderer(currencyRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.ListResponse[marketstack.Currency]], error) {
					return client.Currencies().List(ctx, &page)
				})
		},
	}

	addPageFlags(cmd)

	return cmd
}

// NewTimezonesCommand creates the timezones command.
func NewTimezonesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timezones",
		Aliases: []string{"timezone", "tz"},
		Short:   "List supported timezones",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := pageFlags(cmd)
			if err != nil {
				return err
			}

			return execute(cmd, "timezones.list", listRenderer(timezoneRows),
				func(ctx context.Context, client marketstack.Client) (*marketstack.Response[marketstack.ListResponse[marketstack.Timezone]], error) {
					return client.Timezones().List(ctx, &page)
				})
		},
	}

	addPageFlags(cmd)

	return cmd
}
