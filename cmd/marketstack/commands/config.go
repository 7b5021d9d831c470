package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/marketstack/internal/constants"
)

// Config is the persisted CLI configuration.
type Config struct {
	AccessKey         string `json:"access_key,omitempty"          yaml:"access_key,omitempty"`
	API               string `json:"api,omitempty"                 yaml:"api,omitempty"`
	Timeout           string `json:"timeout,omitempty"             yaml:"timeout,omitempty"`
	SkipSSLValidation bool   `json:"skip_ssl_validation,omitempty" yaml:"skip_ssl_validation,omitempty"`
	RetryMax          int    `json:"retry_max,omitempty"           yaml:"retry_max,omitempty"`
	Output            string `json:"output,omitempty"              yaml:"output,omitempty"`
	NATSURL           string `json:"nats_url,omitempty"            yaml:"nats_url,omitempty"`
	NATSSubject       string `json:"nats_subject,omitempty"        yaml:"nats_subject,omitempty"`
	SinkFile          string `json:"sink_file,omitempty"           yaml:"sink_file,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and edit the settings stored in ~/.marketstack/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after flags, environment and config file are applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			config := effectiveConfig()
			config.AccessKey = maskSecret(config.AccessKey)

			switch format {
			case constants.FormatJSON:
				return StandardJSONRenderer(cmd.OutOrStdout(), config)
			case constants.FormatYAML:
				return StandardYAMLRenderer(cmd.OutOrStdout(), config)
			default:
				return displayConfigTable(cmd.OutOrStdout(), config)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(configKeys(), ", "),
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			config, err := loadConfigFile(path)
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigFile(path, config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			config, err := loadConfigFile(path)
			if err != nil {
				return err
			}

			err = unsetConfigValue(config, args[0])
			if err != nil {
				return err
			}

			err = saveConfigFile(path, config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func configKeys() []string {
	return []string{
		keyAccessKey, keyAPI, keyTimeout, keySkipSSLValidation,
		keyRetryMax, keyOutput, keyNATSURL, keyNATSSubject, keySinkFile,
	}
}

// effectiveConfig reads the layered configuration from viper.
func effectiveConfig() *Config {
	return &Config{
		AccessKey:         viper.GetString(keyAccessKey),
		API:               viper.GetString(keyAPI),
		Timeout:           viper.GetString(keyTimeout),
		SkipSSLValidation: viper.GetBool(keySkipSSLValidation),
		RetryMax:          viper.GetInt(keyRetryMax),
		Output:            viper.GetString(keyOutput),
		NATSURL:           viper.GetString(keyNATSURL),
		NATSSubject:       viper.GetString(keyNATSSubject),
		SinkFile:          viper.GetString(keySinkFile),
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case keyAccessKey:
		if strings.TrimSpace(value) == "" {
			return constants.ErrAccessKeyEmpty
		}

		config.AccessKey = strings.TrimSpace(value)
	case keyAPI:
		config.API = value
	case keyTimeout:
		_, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}

		config.Timeout = value
	case keySkipSSLValidation:
		skip, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}

		config.SkipSSLValidation = skip
	case keyRetryMax:
		retries, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}

		if retries < 0 || retries > constants.MaxRetryMax {
			return fmt.Errorf("%w: %d", constants.ErrInvalidRetryMax, retries)
		}

		config.RetryMax = retries
	case keyOutput:
		format := strings.ToLower(value)

		err := validateOutputFormat(format)
		if err != nil {
			return err
		}

		config.Output = format
	case keyNATSURL:
		config.NATSURL = value
	case keyNATSSubject:
		config.NATSSubject = value
	case keySinkFile:
		config.SinkFile = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	viper.Set(key, value)

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case keyAccessKey:
		config.AccessKey = ""
	case keyAPI:
		config.API = ""
	case keyTimeout:
		config.Timeout = ""
	case keySkipSSLValidation:
		config.SkipSSLValidation = false
	case keyRetryMax:
		config.RetryMax = 0
	case keyOutput:
		config.Output = ""
	case keyNATSURL:
		config.NATSURL = ""
	case keyNATSSubject:
		config.NATSSubject = ""
	case keySinkFile:
		config.SinkFile = ""
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// configFilePath returns the file config changes are written to.
func configFilePath() (string, error) {
	if file := viper.ConfigFileUsed(); file != "" {
		return file, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

// loadConfigFile reads only the persisted settings, so flags and environment
// overrides are never written back.
func loadConfigFile(path string) (*Config, error) {
	config := &Config{}

	// #nosec G304 -- path is the user's own config file
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func saveConfigFile(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// maskSecret hides all but the last few characters of a key.
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	if len(secret) <= constants.MaskedSecretVisibleChars {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + secret[len(secret)-constants.MaskedSecretVisibleChars:]
}

func displayConfigTable(w io.Writer, config *Config) error {
	return renderPropertyTable(w, [][2]string{
		{"Access Key", orNotAvailable(config.AccessKey)},
		{"API", orDefault(config.API, constants.DefaultBaseURL)},
		{"Timeout", orDefault(config.Timeout, constants.DefaultHTTPTimeout.String())},
		{"Skip SSL Validation", strconv.FormatBool(config.SkipSSLValidation)},
		{"Retry Max", strconv.Itoa(config.RetryMax)},
		{"Output", orDefault(config.Output, constants.FormatTable)},
		{"NATS URL", orNotAvailable(config.NATSURL)},
		{"NATS Subject", orDefault(config.NATSSubject, constants.DefaultNATSSubject)},
		{"Sink File", orNotAvailable(config.SinkFile)},
	})
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

func orNotAvailable(value string) string {
	return orDefault(value, constants.NotAvailable)
}
