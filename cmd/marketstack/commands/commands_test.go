package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/marketstack/internal/constants"
	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

// Commands read the global viper instance, so these tests do not run in
// parallel.

const eodBody = `{"pagination":{"limit":100,"offset":0,"count":1,"total":1},` +
	`"data":[{"open":1.5,"high":2.5,"low":1,"close":2,"volume":1000,` +
	`"symbol":"AAPL","exchange":"XNAS","date":"2024-03-01T00:00:00+0000"}]}`

type apiStub struct {
	mu     sync.Mutex
	status int
	body   string
	paths  []string
	query  url.Values
}

func (s *apiStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.paths = append(s.paths, r.URL.EscapedPath())
	s.query = r.URL.Query()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(s.status)
	_, _ = w.Write([]byte(s.body))
}

func (s *apiStub) lastPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.paths) == 0 {
		return ""
	}

	return s.paths[len(s.paths)-1]
}

func (s *apiStub) lastQuery() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.query
}

func (s *apiStub) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.paths)
}

// setup points the CLI at a stub API and returns it.
func setup(t *testing.T, status int, body string) *apiStub {
	t.Helper()

	stub := &apiStub{status: status, body: body}
	server := httptest.NewServer(stub)
	t.Cleanup(server.Close)

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set(keyAPI, server.URL)
	viper.Set(keyAccessKey, "test-key")
	viper.SetConfigFile(filepath.Join(t.TempDir(), "config.yml"))

	return stub
}

func run(cmd *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestNewEODCommand(t *testing.T) {
	cmd := NewEODCommand()
	assert.Equal(t, "eod", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.ElementsMatch(t, []string{"list", "latest", "date"}, names)

	list, _, err := cmd.Find([]string{"list"})
	require.NoError(t, err)

	for _, flag := range []string{flagSymbols, flagExchange, flagSort, flagDateFrom, flagDateTo, flagLimit, flagOffset} {
		assert.NotNil(t, list.Flags().Lookup(flag), "flag %s should exist", flag)
	}

	latest, _, err := cmd.Find([]string{"latest"})
	require.NoError(t, err)
	assert.Nil(t, latest.Flags().Lookup(flagDateFrom))
}

func TestEODList_JSON(t *testing.T) {
	stub := setup(t, http.StatusOK, eodBody)
	viper.Set(keyOutput, constants.FormatJSON)

	stdout, _, err := run(NewEODCommand(), "list", "--symbols", "AAPL", "--sort", "desc", "--date-from", "2024-03-01")
	require.NoError(t, err)

	assert.Equal(t, "/eod", stub.lastPath())

	query := stub.lastQuery()
	assert.Equal(t, "test-key", query.Get(marketstack.ParamAccessKey))
	assert.Equal(t, "AAPL", query.Get(marketstack.ParamSymbols))
	assert.Equal(t, "DESC", query.Get(marketstack.ParamSort))
	assert.Equal(t, "2024-03-01", query.Get(marketstack.ParamDateFrom))
	assert.False(t, query.Has(marketstack.ParamLimit), "unchanged flags are not sent")
	assert.False(t, query.Has(marketstack.ParamExchange))

	assert.JSONEq(t, eodBody, stdout)
}

func TestEODList_Table(t *testing.T) {
	setup(t, http.StatusOK, eodBody)

	stdout, _, err := run(NewEODCommand(), "list")
	require.NoError(t, err)

	assert.Contains(t, stdout, "SYMBOL")
	assert.Contains(t, stdout, "AAPL")
	assert.Contains(t, stdout, "XNAS")
}

func TestEODList_CSV(t *testing.T) {
	setup(t, http.StatusOK, eodBody)
	viper.Set(keyOutput, constants.FormatCSV)

	stdout, _, err := run(NewEODCommand(), "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "date,symbol,exchange,open,high,low,close,volume", lines[0])
	assert.Equal(t, "2024-03-01T00:00:00+0000,AAPL,XNAS,1.5,2.5,1,2,1000", lines[1])
}

func TestEODList_YAML(t *testing.T) {
	setup(t, http.StatusOK, eodBody)
	viper.Set(keyOutput, constants.FormatYAML)

	stdout, _, err := run(NewEODCommand(), "list")
	require.NoError(t, err)

	assert.Contains(t, stdout, "symbol: AAPL")
	assert.Contains(t, stdout, "total: 1")
}

func TestEODDate_Path(t *testing.T) {
	stub := setup(t, http.StatusOK, `{"data":[]}`)

	stdout, _, err := run(NewEODCommand(), "date", "2024-01-02", "--limit", "5", "--offset", "10")
	require.NoError(t, err)

	assert.Equal(t, "/eod/2024-01-02", stub.lastPath())
	assert.Equal(t, "5", stub.lastQuery().Get(marketstack.ParamLimit))
	assert.Equal(t, "10", stub.lastQuery().Get(marketstack.ParamOffset))
	assert.Contains(t, stdout, "No results.")
}

func TestCommands_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		cmd  func() *cobra.Command
		args []string
		want error
	}{
		{"limit too small", NewEODCommand, []string{"list", "--limit", "0"}, constants.ErrInvalidLimit},
		{"limit too large", NewSplitsCommand, []string{"--limit", "1001"}, constants.ErrInvalidLimit},
		{"negative offset", NewCurrenciesCommand, []string{"--offset", "-1"}, constants.ErrInvalidOffset},
		{"bad sort", NewDividendsCommand, []string{"--sort", "sideways"}, marketstack.ErrInvalidSort},
		{"bad interval", NewIntradayCommand, []string{"list", "--interval", "2min"}, marketstack.ErrInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := setup(t, http.StatusOK, `{"data":[]}`)

			_, _, err := run(tt.cmd(), tt.args...)
			require.ErrorIs(t, err, tt.want)
			assert.Zero(t, stub.calls(), "no request is sent")
		})
	}
}

func TestCommands_InvalidOutput(t *testing.T) {
	stub := setup(t, http.StatusOK, `{"data":[]}`)
	viper.Set(keyOutput, "xml")

	_, _, err := run(NewTimezonesCommand())
	require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)
	assert.Zero(t, stub.calls())
}

func TestCommands_NoAccessKey(t *testing.T) {
	stub := setup(t, http.StatusOK, `{"data":[]}`)
	viper.Set(keyAccessKey, "")

	_, _, err := run(NewCurrenciesCommand())
	require.ErrorIs(t, err, constants.ErrNoAccessKey)
	assert.Zero(t, stub.calls())
}

func TestTickersGet_NotFound(t *testing.T) {
	stub := setup(t, http.StatusNotFound, `{"error":{"code":"not_found","message":"ticker not found"}}`)

	_, stderr, err := run(NewTickersCommand(), "get", "BRK/B")
	require.ErrorIs(t, err, constants.ErrRequestRejected)
	require.ErrorIs(t, err, marketstack.ErrUnrecognizedStatus)
	assert.True(t, marketstack.IsNotFound(err))

	assert.Equal(t, "/tickers/BRK%2FB", stub.lastPath())
	assert.Contains(t, stderr, "status 404")
	assert.Contains(t, stderr, "ticker not found")
}

func TestTickersEOD_Rows(t *testing.T) {
	stub := setup(t, http.StatusOK,
		`{"data":{"symbol":"MSFT","eod":[{"symbol":"MSFT","close":410.5,"date":"2024-03-01"}]}}`)
	viper.Set(keyOutput, constants.FormatCSV)

	stdout, _, err := run(NewTickersCommand(), "eod", "MSFT", "--exchange", "XNAS")
	require.NoError(t, err)

	assert.Equal(t, "/tickers/MSFT/eod", stub.lastPath())
	assert.Equal(t, "XNAS", stub.lastQuery().Get(marketstack.ParamExchange))
	assert.Contains(t, stdout, "2024-03-01,MSFT,,,,,410.5,")
}

func TestTickersSplits_RawSort(t *testing.T) {
	stub := setup(t, http.StatusOK, `{"data":[{"date":"2020-08-31","split_factor":4,"symbol":"AAPL"}]}`)

	stdout, _, err := run(NewTickersCommand(), "splits", "AAPL", "--sort", "date")
	require.NoError(t, err)

	assert.Equal(t, "/tickers/AAPL/splits", stub.lastPath())
	assert.Equal(t, "date", stub.lastQuery().Get(marketstack.ParamSort))
	assert.Contains(t, stdout, "2020-08-31")
}

func TestCommands_UndeclaredParamFlags(t *testing.T) {
	tests := []struct {
		cmd  func() *cobra.Command
		args []string
	}{
		{NewTickersCommand, []string{"splits", "AAPL", "--limit", "5"}},
		{NewTickersCommand, []string{"dividends", "AAPL", "--offset", "5"}},
		{NewTickersCommand, []string{"intraday-latest", "AAPL", "--exchange", "XNAS"}},
		{NewExchangesCommand, []string{"intraday-date", "XNAS", "2024-01-02", "--symbols", "AAPL"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			stub := setup(t, http.StatusOK, `{"data":[]}`)

			_, _, err := run(tt.cmd(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown flag")
			assert.Zero(t, stub.calls())
		})
	}
}

func TestExchangesCommands_Paths(t *testing.T) {
	tests := []struct {
		args []string
		path string
	}{
		{[]string{"list", "--search", "nasdaq"}, "/exchanges"},
		{[]string{"get", "XNAS"}, "/exchanges/XNAS"},
		{[]string{"tickers", "XNAS"}, "/exchanges/XNAS/tickers"},
		{[]string{"eod", "XNAS"}, "/exchanges/XNAS/eod"},
		{[]string{"eod-latest", "XNAS"}, "/exchanges/XNAS/eod/latest"},
		{[]string{"eod-date", "XNAS", "2024-01-02"}, "/exchanges/XNAS/eod/2024-01-02"},
		{[]string{"intraday", "XNAS", "--interval", "1hour"}, "/exchanges/XNAS/intraday"},
		{[]string{"intraday-latest", "XNAS"}, "/exchanges/XNAS/intraday/latest"},
		{[]string{"intraday-date", "XNAS", "2024-01-02"}, "/exchanges/XNAS/intraday/2024-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			body := `{"data":{}}`
			if tt.args[0] == "list" {
				body = `{"data":[]}`
			}

			if tt.args[0] == "get" {
				body = `{"mic":"XNAS","name":"NASDAQ"}`
			}

			stub := setup(t, http.StatusOK, body)

			_, _, err := run(NewExchangesCommand(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.path, stub.lastPath())
		})
	}
}

func TestIntradayList_Interval(t *testing.T) {
	stub := setup(t, http.StatusOK, `{"data":[]}`)

	_, _, err := run(NewIntradayCommand(), "list", "--interval", "1HOUR")
	require.NoError(t, err)

	assert.Equal(t, "/intraday", stub.lastPath())
	assert.Equal(t, "1hour", stub.lastQuery().Get(marketstack.ParamInterval))
}

func TestCommands_ValidationError(t *testing.T) {
	setup(t, http.StatusUnprocessableEntity, `{"detail":[{"loc":["query","limit"],"msg":"too large"}]}`)

	_, stderr, err := run(NewTimezonesCommand())
	require.ErrorIs(t, err, constants.ErrRequestRejected)
	assert.True(t, marketstack.IsValidation(err))
	assert.Contains(t, stderr, "query.limit: too large")
}

func TestCommands_UnrecognizedStatus(t *testing.T) {
	setup(t, http.StatusBadGateway, `upstream unavailable`)

	_, stderr, err := run(NewSplitsCommand())
	require.ErrorIs(t, err, marketstack.ErrUnrecognizedStatus)
	assert.Contains(t, stderr, "upstream unavailable")
}

func TestCommands_PublishFailure(t *testing.T) {
	setup(t, http.StatusOK, `{"data":[]}`)
	viper.Set(keyNATSURL, "nats://127.0.0.1:1")

	_, _, err := run(NewCurrenciesCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open sink")
}

func TestCommands_SinkFile(t *testing.T) {
	setup(t, http.StatusOK, `{"data":[{"code":"USD","symbol":"$","name":"US Dollar"}]}`)

	path := filepath.Join(t.TempDir(), "results.jsonl")
	viper.Set(keySinkFile, path)

	for range 2 {
		_, _, err := run(NewCurrenciesCommand())
		require.NoError(t, err)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var record struct {
		Topic   string          `json:"topic"`
		Payload json.RawMessage `json:"payload"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &record))
	assert.Equal(t, "currencies.list", record.Topic)
	assert.Contains(t, string(record.Payload), `"code":"USD"`)
}

func TestConfigCommands(t *testing.T) {
	setup(t, http.StatusOK, `{}`)

	path, err := configFilePath()
	require.NoError(t, err)

	_, _, err = run(NewConfigCommand(), "set", "access_key", "secret-1234")
	require.NoError(t, err)

	_, _, err = run(NewConfigCommand(), "set", "retry_max", "3")
	require.NoError(t, err)

	saved, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-1234", saved.AccessKey)
	assert.Equal(t, 3, saved.RetryMax)
	assert.Empty(t, saved.API, "values from other layers are not persisted")

	viper.Set(keyOutput, constants.FormatJSON)

	stdout, _, err := run(NewConfigCommand(), "show")
	require.NoError(t, err)

	var shown Config
	require.NoError(t, json.Unmarshal([]byte(stdout), &shown))
	assert.Equal(t, "***1234", shown.AccessKey)

	_, _, err = run(NewConfigCommand(), "unset", "retry_max")
	require.NoError(t, err)

	saved, err = loadConfigFile(path)
	require.NoError(t, err)
	assert.Zero(t, saved.RetryMax)
	assert.Equal(t, "secret-1234", saved.AccessKey)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())
}

func TestConfigSet_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  error
	}{
		{"colour", "blue", constants.ErrUnknownConfigKey},
		{keyAccessKey, "  ", constants.ErrAccessKeyEmpty},
		{keyRetryMax, "11", constants.ErrInvalidRetryMax},
		{keyOutput, "xml", constants.ErrInvalidOutputFormat},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			setup(t, http.StatusOK, `{}`)

			_, _, err := run(NewConfigCommand(), "set", tt.key, tt.value)
			require.ErrorIs(t, err, tt.want)
		})
	}

	setup(t, http.StatusOK, `{}`)

	_, _, err := run(NewConfigCommand(), "set", keyTimeout, "soon")
	require.Error(t, err)

	_, _, err = run(NewConfigCommand(), "unset", "colour")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)
}

func TestLogin(t *testing.T) {
	t.Run("verifies and stores the key", func(t *testing.T) {
		stub := setup(t, http.StatusOK, `{"data":[{"timezone":"UTC"}]}`)
		viper.Set(keyAccessKey, "")

		stdout, _, err := run(NewLoginCommand(), "new-key-9876")
		require.NoError(t, err)

		assert.Equal(t, "/timezones", stub.lastPath())
		assert.Equal(t, "new-key-9876", stub.lastQuery().Get(marketstack.ParamAccessKey))
		assert.Equal(t, "1", stub.lastQuery().Get(marketstack.ParamLimit))
		assert.Contains(t, stdout, "***9876")

		path, err := configFilePath()
		require.NoError(t, err)

		saved, err := loadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new-key-9876", saved.AccessKey)
	})

	t.Run("rejected key is not stored", func(t *testing.T) {
		setup(t, http.StatusUnauthorized, `{"error":{"code":"invalid_access_key"}}`)

		_, _, err := run(NewLoginCommand(), "bad-key")
		require.ErrorIs(t, err, constants.ErrRequestRejected)

		path, err := configFilePath()
		require.NoError(t, err)

		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("skip verify", func(t *testing.T) {
		stub := setup(t, http.StatusUnauthorized, `{}`)

		_, _, err := run(NewLoginCommand(), "--skip-verify", "offline-key")
		require.NoError(t, err)
		assert.Zero(t, stub.calls())
	})
}

func TestVersionCommand(t *testing.T) {
	setup(t, http.StatusOK, `{}`)
	viper.Set(keyOutput, constants.FormatJSON)

	stdout, _, err := run(NewVersionCommand("1.2.3", "abc", "2026-01-01"))
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, VersionInfo{Version: "1.2.3", Commit: "abc", Built: "2026-01-01"}, info)
}

func TestVersionCommand_Table(t *testing.T) {
	setup(t, http.StatusOK, `{}`)

	stdout, _, err := run(NewVersionCommand("1.2.3", "abc", "2026-01-01"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "1.2.3")
	assert.Contains(t, stdout, "abc")
	assert.Contains(t, stdout, "2026-01-01")
}

type failingAppender struct {
	failOn int
	rows   int
}

func (a *failingAppender) Append(_ ...interface{}) error {
	a.rows++
	if a.rows == a.failOn {
		return errAppendRejected
	}

	return nil
}

var errAppendRejected = errors.New("append rejected")

func TestAppendRows_ReturnsWrappedError(t *testing.T) {
	appender := &failingAppender{failOn: 2}

	err := appendRows(appender, [][]any{{"a", "1"}, {"b", "2"}, {"c", "3"}})
	require.ErrorIs(t, err, errAppendRejected)
	assert.Contains(t, err.Error(), "failed to append row 2")
	assert.Equal(t, 2, appender.rows)
}

func TestRenderPropertyTable(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, renderPropertyTable(&out, [][2]string{{"API", "https://example.test"}}))
	assert.Contains(t, out.String(), "https://example.test")
}

func TestCell(t *testing.T) {
	assert.Empty(t, cell(marketstack.Absent[float64]()))
	assert.Equal(t, "null", cell(marketstack.Null[float64]()))
	assert.Equal(t, "1.25", cell(marketstack.Some(1.25)))
	assert.Equal(t, "true", cell(marketstack.Some(true)))
}

func TestMaskSecret(t *testing.T) {
	assert.Empty(t, maskSecret(""))
	assert.Equal(t, "***", maskSecret("abcd"))
	assert.Equal(t, "***6789", maskSecret("0123456789"))
}

func TestRenderRowsTable_NotASlice(t *testing.T) {
	var out bytes.Buffer

	require.ErrorIs(t, renderRowsTable(&out, currencyRow{}), errNotARowSlice)
}
