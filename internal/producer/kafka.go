package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"os"
	"sneaker-shop/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// MessageWriter is the subset of *kafka.Writer the producer needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventProducer publishes shop events to a Kafka topic.
type EventProducer struct {
	writer MessageWriter
}

func NewEventProducer(writer MessageWriter) *EventProducer {
	return &EventProducer{writer: writer}
}

func (p *EventProducer) Publish(ctx context.Context, event entity.ShopEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s event: %w", event.Type, err)
	}
	return nil
}

func (p *EventProducer) Close() error {
	return p.writer.Close()
}

// newMessage keys messages by event type and user, e.g. "cart.item.added-1".
func newMessage(event entity.ShopEvent) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(fmt.Sprintf("%s-%d", event.Type, event.UserID)),
		Value: value,
	}, nil
}

// LogCompletion reports the outcome of asynchronous writes.
func LogCompletion(messages []kafka.Message, err error) {
	if err != nil {
		logger.Error().Err(err).Msgf("Error delivering %d events", len(messages))
	}
}
