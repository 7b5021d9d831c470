package constants

import "time"

// API defaults.
const (
	// DefaultBaseURL is the public marketstack API root.
	DefaultBaseURL = "https://api.marketstack.com/v1"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "marketstack-go/1.0"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Configuration locations.
const (
	// ConfigDirName is the directory under the user's home holding the CLI config.
	ConfigDirName = ".marketstack"

	// ConfigFileName is the CLI config file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the CLI config format.
	ConfigFileType = "yml"

	// EnvPrefix prefixes environment overrides, e.g. MARKETSTACK_ACCESS_KEY.
	EnvPrefix = "MARKETSTACK"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for one call.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as key checks.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are off unless configured.
const (
	// DefaultRetryMax is the default number of retries.
	DefaultRetryMax = 0

	// MaxRetryMax caps configured retries.
	MaxRetryMax = 10

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Pagination limits.
const (
	// DefaultPageSize is the page size the API applies when limit is absent.
	DefaultPageSize = 100

	// MaxPageSize is the largest limit the API accepts.
	MaxPageSize = 1000
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// Null is shown for explicit JSON nulls.
	Null = "null"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// MaskedSecretVisibleChars is how many trailing characters of a masked
	// key stay visible.
	MaskedSecretVisibleChars = 4
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatCSV for CSV output format.
	FormatCSV = "csv"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// Sink defaults.
const (
	// DefaultNATSSubject is the subject prefix used when none is configured.
	DefaultNATSSubject = "marketstack"

	// NATSFlushTimeout bounds the flush on sink close.
	NATSFlushTimeout = 5 * time.Second
)
