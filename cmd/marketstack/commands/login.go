package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/marketstack/internal/constants"
	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "login [ACCESS_KEY]",
		Short: "Store a marketstack access key",
		Long: `Verify an access key against the API and store it in the config file.

Without an argument the key is read from the terminal without echo.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var accessKey string
			if len(args) == 1 {
				accessKey = args[0]
			} else {
				key, err := promptAccessKey(cmd.OutOrStdout())
				if err != nil {
					return err
				}

				accessKey = key
			}

			accessKey = strings.TrimSpace(accessKey)
			if accessKey == "" {
				return constants.ErrAccessKeyEmpty
			}

			if !skipVerify {
				ctx := cmd.Context()
				if ctx == nil {
					ctx = context.Background()
				}

				err := verifyAccessKey(ctx, accessKey)
				if err != nil {
					return err
				}
			}

			path, err := configFilePath()
			if err != nil {
				return err
			}

			config, err := loadConfigFile(path)
			if err != nil {
				return err
			}

			err = setConfigValue(config, keyAccessKey, accessKey)
			if err != nil {
				return err
			}

			err = saveConfigFile(path, config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Access key %s saved to %s\n", maskSecret(accessKey), path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "store the key without checking it against the API")

	return cmd
}

func promptAccessKey(out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec

	if !term.IsTerminal(fd) {
		return "", constants.ErrNotATerminal
	}

	_, _ = fmt.Fprint(out, "Access key: ")

	key, err := term.ReadPassword(fd)
	if err != nil {
		return "", fmt.Errorf("failed to read access key: %w", err)
	}

	_, _ = fmt.Fprintln(out)

	return string(key), nil
}

// verifyAccessKey makes the cheapest documented call with the key.
func verifyAccessKey(ctx context.Context, accessKey string) error {
	client, err := createClientWithKey(ctx, accessKey, constants.ShortHTTPTimeout)
	if err != nil {
		return err
	}

	resp, err := client.Timezones().List(ctx, &marketstack.PageParams{Limit: marketstack.Some(1)})
	if err != nil {
		return fmt.Errorf("failed to verify access key: %w", err)
	}

	_, err = resp.Result()
	if err != nil {
		return fmt.Errorf("%w: %w", constants.ErrRequestRejected, err)
	}

	return nil
}
