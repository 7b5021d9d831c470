package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	mshttp "github.com/fivetwenty-io/marketstack/internal/http"
	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

func (l *MockLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, 0, len(l.logs))
	for _, entry := range l.logs {
		out = append(out, entry["msg"].(string)) //nolint:forcetypeassert // test helper
	}

	return out
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/eod", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.NotEmpty(t, request.Header.Get("User-Agent"))

			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL + "/v1/")

		resp, err := client.Do(context.Background(), &mshttp.Request{Method: http.MethodGet, Path: "/eod"})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.JSONEq(t, `{"data":[]}`, string(resp.Body))
		assert.Equal(t, "application/json", resp.Headers.Get("Content-Type"))
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "access_key=k&symbols=AAPL", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/eod", url.Values{"access_key": {"k"}, "symbols": {"AAPL"}})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("error statuses are not errors", func(t *testing.T) {
		t.Parallel()

		for _, status := range []int{403, 404, 422, 429, 500, 599} {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(status)
				_, _ = writer.Write([]byte(`{"error":{"code":"x"}}`))
			}))

			client := mshttp.NewClient(server.URL)

			resp, err := client.Get(context.Background(), "/eod", nil)
			require.NoError(t, err, "status %d", status)
			assert.Equal(t, status, resp.StatusCode)
			assert.JSONEq(t, `{"error":{"code":"x"}}`, string(resp.Body))

			server.Close()
		}
	})

	t.Run("custom headers and cookies", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "per-request", request.Header.Get("X-Request-Header"))
			assert.Equal(t, "test-agent", request.Header.Get("User-Agent"))

			cookie, err := request.Cookie("session")
			assert.NoError(t, err)
			assert.Equal(t, "abc", cookie.Value)

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL,
			mshttp.WithHeaders(map[string]string{"X-Custom-Header": "custom-value"}),
			mshttp.WithCookies([]*http.Cookie{{Name: "session", Value: "abc"}}),
			mshttp.WithUserAgent("test-agent"),
		)

		resp, err := client.Do(context.Background(), &mshttp.Request{
			Method:  http.MethodGet,
			Path:    "/eod",
			Headers: map[string]string{"X-Request-Header": "per-request"},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := mshttp.NewClient(server.URL, mshttp.WithLogger(logger), mshttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/eod", url.Values{"access_key": {"secret"}})
		require.NoError(t, err)

		assert.Contains(t, logger.messages(), "HTTP Request")
		assert.Contains(t, logger.messages(), "HTTP Response")

		for _, entry := range logger.logs {
			fields, _ := entry["fields"].(map[string]interface{})
			if u, ok := fields["url"].(string); ok {
				assert.NotContains(t, u, "secret")
			}
		}
	})

	t.Run("timeout is a transport error", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			select {
			case <-release:
			case <-request.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		client := mshttp.NewClient(server.URL, mshttp.WithTimeout(20*time.Millisecond))

		resp, err := client.Get(context.Background(), "/eod", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		baseURL := server.URL
		server.Close()

		client := mshttp.NewClient(baseURL)

		resp, err := client.Get(context.Background(), "/eod", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.NotEmpty(t, request.Header.Get(marketstack.RequestIDHeader))
		assert.Equal(t, "added", request.URL.Query().Get("extra"))
		writer.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	collector := marketstack.NewMetricsCollector()

	var seenStatus int

	chain := marketstack.NewInterceptorChain().
		AddRequestInterceptor(marketstack.RequestIDInterceptor()).
		AddRequestInterceptor(func(ctx context.Context, req *marketstack.Request) error {
			req.Query.Set("extra", "added")

			return nil
		}).
		AddResponseInterceptor(marketstack.MetricsResponseInterceptor(collector)).
		AddResponseInterceptor(func(ctx context.Context, req *marketstack.Request, resp *marketstack.RawResponse) error {
			seenStatus = resp.StatusCode

			return nil
		})

	client := mshttp.NewClient(server.URL, mshttp.WithInterceptors(chain))

	resp, err := client.Do(context.Background(), &mshttp.Request{Endpoint: "eod.list", Method: http.MethodGet, Path: "/eod"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, http.StatusTeapot, seenStatus)

	metrics, ok := collector.GetMetrics("eod.list")
	require.True(t, ok)
	assert.Equal(t, int64(1), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.StatusCounts[http.StatusTeapot])
}

func TestClient_RequestInterceptorError(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	errStop := errors.New("stop")
	chain := marketstack.NewInterceptorChain().AddRequestInterceptor(func(context.Context, *marketstack.Request) error {
		return errStop
	})

	client := mshttp.NewClient(server.URL, mshttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/eod", nil)
	require.ErrorIs(t, err, errStop)
	assert.Equal(t, int32(0), hits.Load())
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()

	t.Run("no retries by default", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusTooManyRequests)
			_, _ = writer.Write([]byte(`{"error":{"code":"rate_limit_reached"}}`))
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/eod", nil)
		require.NoError(t, err)
		assert.Equal(t, 429, resp.StatusCode)
		assert.Contains(t, string(resp.Body), "rate_limit_reached")
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL, mshttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/eod", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("exhausted retries return the last response", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusServiceUnavailable)
			_, _ = writer.Write([]byte("down"))
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL, mshttp.WithRetryConfig(2, time.Millisecond, 5*time.Millisecond))

		resp, err := client.Get(context.Background(), "/eod", nil)
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
		assert.Equal(t, "down", string(resp.Body))
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL, mshttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/eod", nil)
		require.NoError(t, err)
		assert.Equal(t, 422, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})
}
