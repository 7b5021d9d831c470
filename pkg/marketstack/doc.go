// Package marketstack provides types, interfaces, and helpers for working with
// the marketstack market data API.
//
// # Overview
//
// The package defines the resource models (EodPrice, IntervalPrice, Split,
// Dividend, Ticker, Exchange, Currency, Timezone), the error shapes the API
// returns, and the interfaces for the resource clients (EODClient,
// TickersClient, ExchangesClient, ...). A concrete implementation is provided
// by the msclient package.
//
// Getting a client
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
//	  cli, err := msclient.New(ctx, &marketstack.Config{AccessKey: "key"})
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.EOD().Latest(ctx, &marketstack.EodLatestParams{
//	    Symbols: marketstack.Some("AAPL,MSFT"),
//	    Sort:    marketstack.Some(marketstack.SortDesc),
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  prices, err := resp.Result()
//	  if err != nil { log.Fatal(err) }
//	  _ = prices.Items()
//	}
//
// # Optional values
//
// Every parameter and model field is an Optional, which is absent, null or
// present. Absent and null parameters are never sent. Absent model fields are
// omitted when encoding, null fields encode as JSON null.
//
// # Responses
//
// Every call returns a Response envelope holding the raw status code, body
// and headers together with the decoded payload. A 200 decodes into the
// endpoint's success shape and a 422 into HTTPValidationError. Endpoints that
// document 403, 404 or 429, such as ticker splits, decode those into
// ErrorResponse. Any other status leaves Parsed nil. The status code alone is
// never an error; use Result to convert the envelope into a value or a typed
// error.
//
// Calls can be started without blocking with Go and collected later with
// Future.Await or Future.Parsed.
//
// # Additional properties
//
// Members of a JSON object that a model does not declare are kept in its
// Additional field and written back when the model is encoded again.
package marketstack
