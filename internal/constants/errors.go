package constants

import "errors"

// Configuration errors.
var (
	ErrNoAccessKey      = errors.New("no access key configured, use 'marketstack login' or set MARKETSTACK_ACCESS_KEY")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrAccessKeyEmpty   = errors.New("access key must not be empty")
	ErrNotATerminal     = errors.New("stdin is not a terminal, pass the key with --access-key")
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json, yaml or csv")
	ErrInvalidLimit        = errors.New("limit must be between 1 and 1000")
	ErrInvalidOffset       = errors.New("offset must not be negative")
	ErrInvalidRetryMax     = errors.New("retry max must be between 0 and 10")
)

// Result errors.
var (
	ErrRequestRejected = errors.New("request rejected by the API")
)

// Sink errors.
var (
	ErrSinkClosed = errors.New("sink is closed")
)
