package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Subjects published by the API.
const (
	SubjectUserCreated   = "users.created"
	SubjectProductViewed = "products.viewed"
)

// Publisher sends JSON-encoded events to NATS.
type Publisher struct {
	conn *nats.Conn
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url, nats.Name("drughouse-api"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &Publisher{conn: conn}, nil
}

func (p *Publisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", subject, err)
	}
	return p.conn.Publish(subject, data)
}

// Close flushes pending messages and closes the connection.
func (p *Publisher) Close() {
	_ = p.conn.Drain()
}

// Nop discards every event. It is used when NATS is not configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
