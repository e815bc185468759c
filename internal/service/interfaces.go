package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cypherlabdev/valuebet-scanner/internal/feed"
	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// Feed is an interface that abstracts the upstream feed client
// This allows for easier testing and mocking
type Feed interface {
	Upcoming(ctx context.Context, sportID int, leagueID int64, day string, page int) (*feed.UpcomingPage, error)
	Prematch(ctx context.Context, eventID string) (json.RawMessage, error)
	RequestCount() int64
	ResetRequestCount()
}

// Store is an interface that abstracts the persistence layer
// This allows for easier testing and mocking
type Store interface {
	RefreshMembership(ctx context.Context) error
	Known(eventID string) bool
	HasOdds(eventID string) bool
	SaveEvents(ctx context.Context, events []models.MatchEvent) (models.SaveCounts, error)
	InsertQuotes(ctx context.Context, quotes []models.OddsQuote) (int, error)
	MarkOddsIngested(ctx context.Context, eventID string) error
	UpcomingForValuation(ctx context.Context, leagueIDs []int64, from time.Time) ([]models.MatchEvent, error)
	QuotesForEvent(ctx context.Context, eventID string) ([]models.OddsQuote, error)
	RecentMatches(ctx context.Context, competitor string, limit int) ([]models.HistoricalMatch, error)
	HeadToHead(ctx context.Context, a, b string) ([]models.HistoricalMatch, error)
	FullHistory(ctx context.Context) ([]models.HistoricalMatch, error)
	UpsertValueBets(ctx context.Context, bets []models.ValueBet) (int, error)
	MarkProcessed(ctx context.Context, eventIDs []string) error
}

// BetCache is an interface that abstracts the accepted-bet cache
type BetCache interface {
	SetBatch(ctx context.Context, bets []*models.ValueBet) error
}

// BetPublisher is an interface that abstracts the downstream publisher
type BetPublisher interface {
	PublishBets(ctx context.Context, bets []models.ValueBet) error
}
