package messaging

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// TestNewKafkaPublisher tests publisher creation
func TestNewKafkaPublisher(t *testing.T) {
	config := KafkaPublisherConfig{
		Brokers: []string{"localhost:9092"},
		Topic:   "value_bets",
	}

	pub := NewKafkaPublisher(config, zerolog.Nop())

	assert.NotNil(t, pub)
	assert.NotNil(t, pub.writer)
	assert.Equal(t, "value_bets", pub.writer.Topic)
	assert.Equal(t, kafka.RequireOne, pub.writer.RequiredAcks)

	pub.Close()
}

// TestPublishBets_EmptyBatch tests that an empty batch publishes nothing
func TestPublishBets_EmptyBatch(t *testing.T) {
	// An unreachable broker would fail any write, so a nil result
	// proves the empty batch short-circuits before the writer.
	config := KafkaPublisherConfig{
		Brokers: []string{"localhost:1"},
		Topic:   "value_bets",
	}
	pub := NewKafkaPublisher(config, zerolog.Nop())
	defer pub.Close()

	err := pub.PublishBets(t.Context(), nil)
	assert.NoError(t, err)

	err = pub.PublishBets(t.Context(), []models.ValueBet{})
	assert.NoError(t, err)
}

// TestKafkaValueBetMessage_Shape tests the wire shape of the batch envelope
func TestKafkaValueBetMessage_Shape(t *testing.T) {
	bet := models.ValueBet{
		ID:           uuid.New(),
		EventID:      "event-123",
		LeagueName:   "Czech Liga Pro",
		HomeTeam:     "Novak J",
		AwayTeam:     "Svoboda P",
		EventTime:    time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC),
		BetType:      models.MarketMoneyline,
		Selection:    models.SelectionHome,
		Odds:         decimal.NewFromFloat(2.10),
		FairOdds:     decimal.NewFromFloat(1.72),
		EstimatedROI: 34.5,
		Rationale:    "elo p=0.58 implied=0.48 edge=0.10 roi=34.5",
	}

	msg := models.KafkaValueBetMessage{
		Bets:      []models.ValueBet{bet},
		Timestamp: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		BatchID:   "batch-1",
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "bets")
	assert.Contains(t, decoded, "timestamp")
	assert.Contains(t, decoded, "batch_id")

	var roundTrip models.KafkaValueBetMessage
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	require.Equal(t, 1, len(roundTrip.Bets))
	assert.Equal(t, bet.EventID, roundTrip.Bets[0].EventID)
	assert.Equal(t, bet.BetType, roundTrip.Bets[0].BetType)
	assert.True(t, bet.Odds.Equal(roundTrip.Bets[0].Odds))
	assert.Equal(t, "batch-1", roundTrip.BatchID)
}
