package http

import (
	"fmt"

	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
	"github.com/hashicorp/go-retryablehttp"
)

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)

// leveledLogger routes retryablehttp diagnostics to a marketstack.Logger.
type leveledLogger struct {
	logger marketstack.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fieldsOf(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fieldsOf(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fieldsOf(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fieldsOf(keysAndValues))
}

// fieldsOf pairs alternating keys and values. The url field is dropped since
// it carries the access key.
func fieldsOf(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if key == "url" {
			fields[key] = marketstack.RedactedValue

			continue
		}

		fields[key] = keysAndValues[i+1]
	}

	return fields
}
