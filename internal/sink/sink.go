// Package sink forwards fetched payloads to a destination other than the
// terminal.
package sink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/fivetwenty-io/marketstack/internal/constants"
)

// Type represents the kind of sink.
type Type string

const (
	// TypeWriter writes JSON lines to an io.Writer.
	TypeWriter Type = "writer"

	// TypeNATS publishes to a NATS subject.
	TypeNATS Type = "nats"

	// TypeNone discards everything.
	TypeNone Type = "none"
)

// Static errors for err113 compliance.
var (
	ErrWriterRequired     = errors.New("writer required for writer sink")
	ErrNATSURLRequired    = errors.New("NATS URL required for NATS sink")
	ErrUnsupportedType    = errors.New("unsupported sink type")
	ErrTopicRequired      = errors.New("topic is required")
	ErrNATSConnectFailure = errors.New("connecting to NATS")
)

// Sink receives payloads tagged with a topic, such as the endpoint name.
type Sink interface {
	Publish(ctx context.Context, topic string, payload any) error
	Close() error
}

// Config selects and configures a sink.
type Config struct {
	Type Type

	// Writer destination for TypeWriter.
	Writer io.Writer

	// NATS settings for TypeNATS. Subject defaults to
	// constants.DefaultNATSSubject.
	NATSURL string
	Subject string
	Name    string
}

// New creates a sink from configuration. A nil config yields a no-op sink.
func New(config *Config) (Sink, error) {
	if config == nil {
		return NewNoop(), nil
	}

	switch config.Type {
	case TypeWriter:
		if config.Writer == nil {
			return nil, ErrWriterRequired
		}

		return NewWriter(config.Writer), nil

	case TypeNATS:
		if config.NATSURL == "" {
			return nil, ErrNATSURLRequired
		}

		return NewNATS(config.NATSURL, config.Subject, config.Name)

	case TypeNone, "":
		return NewNoop(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, config.Type)
	}
}

// record is one line written by WriterSink.
type record struct {
	Topic   string `json:"topic"`
	Payload any    `json:"payload"`
}

// WriterSink writes each payload as one JSON line. It is safe for concurrent
// use.
type WriterSink struct {
	mu     sync.Mutex
	enc    *json.Encoder
	closed bool
}

// NewWriter creates a sink writing to w.
func NewWriter(w io.Writer) *WriterSink {
	return &WriterSink{enc: json.NewEncoder(w)}
}

// Publish writes {"topic":..., "payload":...} followed by a newline.
func (s *WriterSink) Publish(ctx context.Context, topic string, payload any) error {
	if topic == "" {
		return ErrTopicRequired
	}

	err := ctx.Err()
	if err != nil {
		return fmt.Errorf("publishing %s: %w", topic, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return constants.ErrSinkClosed
	}

	err = s.enc.Encode(record{Topic: topic, Payload: payload})
	if err != nil {
		return fmt.Errorf("writing %s: %w", topic, err)
	}

	return nil
}

// Close marks the sink closed. The underlying writer is left open.
func (s *WriterSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true

	return nil
}

// NoopSink discards every payload.
type NoopSink struct{}

// NewNoop creates a sink that does nothing.
func NewNoop() *NoopSink {
	return &NoopSink{}
}

// Publish does nothing.
func (NoopSink) Publish(context.Context, string, any) error { return nil }

// Close does nothing.
func (NoopSink) Close() error { return nil }
