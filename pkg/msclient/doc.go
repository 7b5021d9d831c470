// Package msclient provides the primary entry point for constructing a
// marketstack API client that implements the marketstack.Client interface.
//
// It normalizes and validates the configuration, then layers the HTTP
// transport and the endpoint catalogue on top of the resource interfaces and
// types defined in the marketstack package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/marketstack/pkg/marketstack"
//	  "github.com/fivetwenty-io/marketstack/pkg/msclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := msclient.New(ctx, &marketstack.Config{
//	    AccessKey: "your-access-key",
//	    Timeout:   10 * time.Second,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.EOD().Latest(ctx, &marketstack.EodLatestParams{
//	    Symbols: marketstack.Some("AAPL"),
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  page, err := resp.Result()
//	  if err != nil { log.Fatal(err) }
//	  _ = page.Items()
//	}
//
// # Base URL
//
// An empty BaseURL selects the public API. A host without a scheme is given
// https://, and a trailing slash is removed. Only http and https are accepted.
//
// # Validation
//
// Numeric settings are range checked before the client is built: Timeout and
// the retry waits must not be negative, and RetryMax must be between 0 and 10.
// Failures wrap marketstack.ErrConfigInvalid or marketstack.ErrBaseURLInvalid.
//
// # Helpers
//
// NewWithAccessKey and NewWithEndpoint wrap New for the common cases.
package msclient
