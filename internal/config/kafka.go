package config

import (
	"github.com/segmentio/kafka-go"
	"sneaker-shop/internal/producer"
)

// NewKafkaWriter returns an asynchronous writer so request handlers never
// wait on the brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{}, // Balancer for selecting partition
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion:             producer.LogCompletion,
	}
}
