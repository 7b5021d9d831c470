package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/marketstack/internal/constants"
)

// NATSSink publishes each payload as JSON to "<subject>.<topic>".
type NATSSink struct {
	mu      sync.Mutex
	conn    *nats.Conn
	subject string
}

// NewNATS connects to url and returns a sink publishing under subject.
func NewNATS(url, subject, name string) (*NATSSink, error) {
	opts := []nats.Option{nats.Timeout(constants.ShortHTTPTimeout)}
	if name != "" {
		opts = append(opts, nats.Name(name))
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrNATSConnectFailure, url, err)
	}

	return newNATSSink(conn, subject), nil
}

func newNATSSink(conn *nats.Conn, subject string) *NATSSink {
	subject = strings.Trim(subject, ".")
	if subject == "" {
		subject = constants.DefaultNATSSubject
	}

	return &NATSSink{conn: conn, subject: subject}
}

// Subject returns the subject a topic is published to.
func (s *NATSSink) Subject(topic string) string {
	return s.subject + "." + topic
}

// Publish encodes payload and publishes it.
func (s *NATSSink) Publish(ctx context.Context, topic string, payload any) error {
	if topic == "" {
		return ErrTopicRequired
	}

	err := ctx.Err()
	if err != nil {
		return fmt.Errorf("publishing %s: %w", topic, err)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", topic, err)
	}

	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()

	if conn == nil {
		return constants.ErrSinkClosed
	}

	err = conn.Publish(s.Subject(topic), data)
	if err != nil {
		return fmt.Errorf("publishing %s: %w", topic, err)
	}

	return nil
}

// Close flushes pending messages and closes the connection.
func (s *NATSSink) Close() error {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()

	if conn == nil {
		return nil
	}

	defer conn.Close()

	err := conn.FlushTimeout(constants.NATSFlushTimeout)
	if err != nil {
		return fmt.Errorf("flushing NATS connection: %w", err)
	}

	return nil
}
