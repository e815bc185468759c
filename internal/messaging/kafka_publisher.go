package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// KafkaPublisher publishes accepted value bets for the downstream
// notification component
type KafkaPublisher struct {
	writer *kafka.Writer
	logger zerolog.Logger
}

// KafkaPublisherConfig holds Kafka publisher configuration
type KafkaPublisherConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "value_bets"
}

// NewKafkaPublisher creates a new Kafka publisher
func NewKafkaPublisher(config KafkaPublisherConfig, logger zerolog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 100 * time.Millisecond,
	}

	return &KafkaPublisher{
		writer: writer,
		logger: logger.With().Str("component", "kafka_publisher").Logger(),
	}
}

// PublishBets publishes one batch of accepted bets as a single message
// keyed by batch id. An empty batch publishes nothing.
func (p *KafkaPublisher) PublishBets(ctx context.Context, bets []models.ValueBet) error {
	if len(bets) == 0 {
		return nil
	}

	msg := models.KafkaValueBetMessage{
		Bets:      bets,
		Timestamp: time.Now().UTC(),
		BatchID:   uuid.New().String(),
	}

	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal bet batch: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.BatchID),
		Value: value,
	}); err != nil {
		return fmt.Errorf("failed to write bet batch: %w", err)
	}

	p.logger.Info().
		Int("bets", len(bets)).
		Str("batch_id", msg.BatchID).
		Msg("published value bet batch")

	return nil
}

// Close closes the Kafka writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
