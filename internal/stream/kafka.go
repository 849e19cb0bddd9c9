// Package stream publishes wallet domain events to Kafka so downstream
// consumers (push notifications, analytics) can react without coupling to
// the API service.
package stream

import (
	"encoding/json"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/rs/zerolog"
)

// Topics for wallet domain events.
const (
	TopicRequestPending = "wallet.request.pending"
	TopicRequestDecided = "wallet.request.decided"
	TopicTopupCompleted = "wallet.topup.completed"
)

// KafkaPublisher implements ports.EventPublisher with a single long-lived
// producer. Delivery is fire and forget; event loss is acceptable, ledger
// state is not derived from these events.
type KafkaPublisher struct {
	producer *kafka.Producer
	log      zerolog.Logger
}

// NewKafkaPublisher creates a producer connected to the given brokers.
func NewKafkaPublisher(brokers string, log zerolog.Logger) (*KafkaPublisher, error) {
	producer, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": brokers})
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return &KafkaPublisher{
		producer: producer,
		log:      log.With().Str("component", "kafka").Logger(),
	}, nil
}

// Publish serializes the payload as JSON and enqueues it on the topic.
func (p *KafkaPublisher) Publish(topic string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          value,
	}, nil)
	if err != nil {
		p.log.Error().Err(err).Str("topic", topic).Msg("failed to produce event")
		return fmt.Errorf("produce event: %w", err)
	}

	p.log.Debug().Str("topic", topic).Msg("event published")
	return nil
}

// Close flushes outstanding messages and releases the producer.
func (p *KafkaPublisher) Close() {
	p.producer.Flush(5000)
	p.producer.Close()
}
