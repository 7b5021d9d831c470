package msclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/marketstack/internal/constants"
	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), &marketstack.Config{AccessKey: "k"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), nil)
		require.ErrorIs(t, err, marketstack.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(ctx, &marketstack.Config{})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("does not mutate the caller's config", func(t *testing.T) {
		t.Parallel()

		config := &marketstack.Config{BaseURL: "api.example.com/v1/"}

		_, err := New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "api.example.com/v1/", config.BaseURL)
	})
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *marketstack.Config
		wantErr error
	}{
		{"unsupported scheme", &marketstack.Config{BaseURL: "ftp://api.example.com"}, marketstack.ErrBaseURLInvalid},
		{"missing host", &marketstack.Config{BaseURL: "http:///v1"}, marketstack.ErrBaseURLInvalid},
		{"negative timeout", &marketstack.Config{Timeout: -time.Second}, marketstack.ErrConfigInvalid},
		{"too many retries", &marketstack.Config{RetryMax: 11}, marketstack.ErrConfigInvalid},
		{"negative retry wait", &marketstack.Config{RetryMax: 1, RetryWaitMin: -time.Second}, marketstack.ErrConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := New(context.Background(), tt.config)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, client)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", constants.DefaultBaseURL},
		{"  ", constants.DefaultBaseURL},
		{"api.example.com/v1", "https://api.example.com/v1"},
		{"https://api.example.com/v1/", "https://api.example.com/v1"},
		{"http://localhost:8080", "http://localhost:8080"},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNewWithAccessKey(t *testing.T) {
	t.Parallel()

	client, err := NewWithAccessKey(context.Background(), "test-key")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/currencies" || r.URL.Query().Get("access_key") != "test-key" {
			w.WriteHeader(http.StatusNotFound)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pagination":{"limit":1,"offset":0,"count":1,"total":42},` +
			`"data":[{"code":"USD","symbol":"$","name":"US Dollar"}]}`))
	}))
	defer server.Close()

	client, err := NewWithEndpoint(context.Background(), server.URL+"/v1/", "test-key")
	require.NoError(t, err)

	resp, err := client.Currencies().List(context.Background(), &marketstack.PageParams{Limit: marketstack.Some(1)})
	require.NoError(t, err)

	page, err := resp.Result()
	require.NoError(t, err)
	require.Len(t, page.Items(), 1)
	assert.Equal(t, "USD", page.Items()[0].Code.ValueOr(""))
}
