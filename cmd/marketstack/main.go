package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/marketstack/cmd/marketstack/commands"
	"github.com/fivetwenty-io/marketstack/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "marketstack",
	Short: "marketstack market data CLI",
	Long: `A command-line interface for the marketstack market data API.

It retrieves end-of-day and intraday prices, splits, dividends, tickers,
exchanges, currencies and timezones, printing them as a table, JSON, YAML
or CSV and optionally publishing each result to NATS.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.marketstack/config.yml)")
	rootCmd.PersistentFlags().StringP("access-key", "k", "", "marketstack access key")
	rootCmd.PersistentFlags().StringP("api", "a", "", "API root URL (default "+constants.DefaultBaseURL+")")
	rootCmd.PersistentFlags().Duration("timeout", 0, "per-request timeout (default 30s)")
	rootCmd.PersistentFlags().Int("retry-max", constants.DefaultRetryMax, "retries for connection errors, 429 and 5xx")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml, csv)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("skip-ssl-validation", false, "skip SSL certificate validation")
	rootCmd.PersistentFlags().String("nats-url", "", "publish every result to this NATS server")
	rootCmd.PersistentFlags().String("nats-subject", constants.DefaultNATSSubject, "NATS subject prefix")
	rootCmd.PersistentFlags().String("sink-file", "", "append every result as a JSON line to this file")

	// Bind flags to viper
	bindFlag("config", "config")
	bindFlag("access_key", "access-key")
	bindFlag("api", "api")
	bindFlag("timeout", "timeout")
	bindFlag("retry_max", "retry-max")
	bindFlag("output", "output")
	bindFlag("verbose", "verbose")
	bindFlag("skip_ssl_validation", "skip-ssl-validation")
	bindFlag("nats_url", "nats-url")
	bindFlag("nats_subject", "nats-subject")
	bindFlag("sink_file", "sink-file")

	commands.SetVersion(version)

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewEODCommand())
	rootCmd.AddCommand(commands.NewIntradayCommand())
	rootCmd.AddCommand(commands.NewSplitsCommand())
	rootCmd.AddCommand(commands.NewDividendsCommand())
	rootCmd.AddCommand(commands.NewTickersCommand())
	rootCmd.AddCommand(commands.NewExchangesCommand())
	rootCmd.AddCommand(commands.NewCurrenciesCommand())
	rootCmd.AddCommand(commands.NewTimezonesCommand())
}

func bindFlag(key, flag string) {
	err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	if err != nil {
		panic(err)
	}
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, constants.ConfigDirName)

		// Search config in ~/.marketstack/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType(constants.ConfigFileType)
		viper.SetConfigName(constants.ConfigFileName)
	}

	// MARKETSTACK_ACCESS_KEY, MARKETSTACK_API, ...
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
