package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/marketstack/internal/constants"
	"github.com/fivetwenty-io/marketstack/internal/sink"
	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
	"github.com/fivetwenty-io/marketstack/pkg/msclient"
)

// Configuration keys shared by flags, the config file and the environment.
const (
	keyAccessKey         = "access_key"
	keyAPI               = "api"
	keyTimeout           = "timeout"
	keySkipSSLValidation = "skip_ssl_validation"
	keyRetryMax          = "retry_max"
	keyOutput            = "output"
	keyVerbose           = "verbose"
	keyNATSURL           = "nats_url"
	keyNATSSubject       = "nats_subject"
	keySinkFile          = "sink_file"
)

// userAgent is reported to the API by every command.
var userAgent = "marketstack-cli/dev"

// SetVersion records the CLI version used in the User-Agent header.
func SetVersion(version string) {
	userAgent = "marketstack-cli/" + version
}

// CreateClient builds an API client from the layered configuration.
func CreateClient(ctx context.Context) (marketstack.Client, error) {
	accessKey := viper.GetString(keyAccessKey)
	if accessKey == "" {
		return nil, constants.ErrNoAccessKey
	}

	return createClientWithKey(ctx, accessKey, viper.GetDuration(keyTimeout))
}

func createClientWithKey(ctx context.Context, accessKey string, timeout time.Duration) (marketstack.Client, error) {
	config := &marketstack.Config{
		BaseURL:       viper.GetString(keyAPI),
		AccessKey:     accessKey,
		Timeout:       timeout,
		SkipTLSVerify: viper.GetBool(keySkipSSLValidation),
		RetryMax:      viper.GetInt(keyRetryMax),
		UserAgent:     userAgent,
	}

	if viper.GetBool(keyVerbose) {
		logger, err := NewLogger(true)
		if err != nil {
			return nil, err
		}

		config.Debug = true
		config.Logger = logger
	}

	client, err := msclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// CreateSink opens the result sink named by the configuration. A NATS URL
// wins over a sink file; with neither, results are only printed.
func CreateSink() (sink.Sink, error) {
	if url := viper.GetString(keyNATSURL); url != "" {
		s, err := sink.New(&sink.Config{
			Type:    sink.TypeNATS,
			NATSURL: url,
			Subject: viper.GetString(keyNATSSubject),
			Name:    userAgent,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open sink: %w", err)
		}

		return s, nil
	}

	path := viper.GetString(keySinkFile)
	if path == "" {
		return sink.New(&sink.Config{Type: sink.TypeNone})
	}

	file, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.ConfigFilePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open sink: %w", err)
	}

	s, err := sink.New(&sink.Config{Type: sink.TypeWriter, Writer: file})
	if err != nil {
		_ = file.Close()

		return nil, fmt.Errorf("failed to open sink: %w", err)
	}

	return &fileSink{Sink: s, file: file}, nil
}

// fileSink closes the file behind a writer sink.
type fileSink struct {
	sink.Sink
	file *os.File
}

func (s *fileSink) Close() error {
	return errors.Join(s.Sink.Close(), s.file.Close())
}

// outputFormat returns the configured output format.
func outputFormat() (string, error) {
	format := strings.ToLower(strings.TrimSpace(viper.GetString(keyOutput)))
	if format == "" {
		return constants.FormatTable, nil
	}

	return format, validateOutputFormat(format)
}

func validateOutputFormat(format string) error {
	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML, constants.FormatCSV:
		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}
}

// Renderer writes one command result in every supported format. Rows turns
// the payload into a slice of flat row structs for table and csv output.
type Renderer[T any] struct {
	Rows func(value *T) any
}

// Render outputs data in the specified format.
func (r *Renderer[T]) Render(w io.Writer, value *T, format string) error {
	switch format {
	case constants.FormatJSON:
		return StandardJSONRenderer(w, value)
	case constants.FormatYAML:
		return StandardYAMLRenderer(w, value)
	case constants.FormatCSV:
		err := gocsv.Marshal(r.Rows(value), w)
		if err != nil {
			return fmt.Errorf("encoding data to CSV: %w", err)
		}

		return nil
	default:
		return renderRowsTable(w, r.Rows(value))
	}
}

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](w io.Writer, data T) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer[T any](w io.Writer, data T) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// renderRowsTable prints a slice of row structs, using their csv tags as
// column headers.
func renderRowsTable(w io.Writer, rows any) error {
	value := reflect.ValueOf(rows)
	if value.Kind() != reflect.Slice {
		return fmt.Errorf("rendering %T: %w", rows, errNotARowSlice)
	}

	rowType := value.Type().Elem()
	header := make([]any, 0, rowType.NumField())

	for i := range rowType.NumField() {
		header = append(header, strings.ToUpper(strings.ReplaceAll(rowType.Field(i).Tag.Get("csv"), "_", " ")))
	}

	if value.Len() == 0 {
		_, err := fmt.Fprintln(w, "No results.")

		return err
	}

	body := make([][]any, 0, value.Len())

	for i := range value.Len() {
		row := value.Index(i)
		cells := make([]any, 0, row.NumField())

		for j := range row.NumField() {
			cells = append(cells, row.Field(j).String())
		}

		body = append(body, cells)
	}

	table := tablewriter.NewWriter(w)
	table.Header(header...)

	err := appendRows(table, body)
	if err != nil {
		return err
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// rowAppender is the part of *tablewriter.Table that appendRows needs.
type rowAppender interface {
	Append(rows ...interface{}) error
}

func appendRows(table rowAppender, rows [][]any) error {
	for i, row := range rows {
		err := table.Append(row...)
		if err != nil {
			return fmt.Errorf("failed to append row %d to table: %w", i+1, err)
		}
	}

	return nil
}

// renderPropertyTable prints label and value pairs as a two column table.
func renderPropertyTable(w io.Writer, properties [][2]string) error {
	rows := make([][]any, 0, len(properties))
	for _, property := range properties {
		rows = append(rows, []any{property[0], property[1]})
	}

	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	err := appendRows(table, rows)
	if err != nil {
		return err
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

var errNotARowSlice = errors.New("table rows must be a slice of structs")

// execute runs one API call and prints its result. Non-success outcomes are
// reported with the server's message and surface as ErrRequestRejected.
func execute[T any](
	cmd *cobra.Command,
	topic string,
	renderer *Renderer[T],
	call func(ctx context.Context, client marketstack.Client) (*marketstack.Response[T], error),
) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	resp, err := call(ctx, client)
	if err != nil {
		return fmt.Errorf("%s: %w", topic, err)
	}

	value, err := resp.Result()
	if err != nil {
		return reportFailure(cmd.ErrOrStderr(), resp, err)
	}

	err = publish(ctx, topic, value)
	if err != nil {
		return err
	}

	return renderer.Render(cmd.OutOrStdout(), value, format)
}

func publish(ctx context.Context, topic string, value any) error {
	s, err := CreateSink()
	if err != nil {
		return err
	}

	defer func() { _ = s.Close() }()

	err = s.Publish(ctx, topic, value)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}

	return nil
}

// reportFailure prints what the server said about a rejected request. Status
// and raw body of documented and unrecognized statuses are part of cause.
func reportFailure[T any](w io.Writer, resp *marketstack.Response[T], cause error) error {
	if marketstack.IsValidation(cause) {
		_, _ = fmt.Fprintf(w, "Error: status %d: %v\n", resp.StatusCode, cause)
	} else {
		_, _ = fmt.Fprintf(w, "Error: %v\n", cause)
	}

	return fmt.Errorf("%w: %w", constants.ErrRequestRejected, cause)
}
