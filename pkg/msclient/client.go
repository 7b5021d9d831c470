package msclient

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fivetwenty-io/marketstack/internal/client"
	"github.com/fivetwenty-io/marketstack/internal/constants"
	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// New creates a marketstack API client. The config is copied, so later
// changes to it do not affect the client.
func New(ctx context.Context, config *marketstack.Config) (marketstack.Client, error) {
	if config == nil {
		return nil, marketstack.ErrConfigRequired
	}

	err := ctx.Err()
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	cfg := *config
	cfg.Headers = maps.Clone(config.Headers)
	cfg.Cookies = slices.Clone(config.Cookies)

	cfg.BaseURL, err = normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	err = validateConfig(&cfg)
	if err != nil {
		return nil, err
	}

	c, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithAccessKey creates a client for the public API.
func NewWithAccessKey(ctx context.Context, accessKey string) (marketstack.Client, error) {
	return New(ctx, &marketstack.Config{
		AccessKey: accessKey,
	})
}

// NewWithEndpoint creates a client for a custom API root, such as a proxy or
// a test server.
func NewWithEndpoint(ctx context.Context, baseURL, accessKey string) (marketstack.Client, error) {
	return New(ctx, &marketstack.Config{
		BaseURL:   baseURL,
		AccessKey: accessKey,
	})
}

// normalizeBaseURL trims the trailing slash and defaults the scheme to https.
func normalizeBaseURL(raw string) (string, error) {
	baseURL := strings.TrimSuffix(strings.TrimSpace(raw), "/")
	if baseURL == "" {
		return constants.DefaultBaseURL, nil
	}

	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", marketstack.ErrBaseURLInvalid, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("%w: %q", marketstack.ErrBaseURLInvalid, raw)
	}

	return baseURL, nil
}

func validateConfig(cfg *marketstack.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", marketstack.ErrConfigInvalid, err)
	}

	problems := make([]string, 0, len(fieldErrs))

	for _, fieldErr := range fieldErrs {
		if fieldErr.Field() == "BaseURL" {
			return fmt.Errorf("%w: %q", marketstack.ErrBaseURLInvalid, cfg.BaseURL)
		}

		problem := fieldErr.Field() + " must satisfy " + fieldErr.Tag()
		if fieldErr.Param() != "" {
			problem += "=" + fieldErr.Param()
		}

		problems = append(problems, problem)
	}

	return fmt.Errorf("%w: %s", marketstack.ErrConfigInvalid, strings.Join(problems, ", "))
}
