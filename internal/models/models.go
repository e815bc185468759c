package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventStatus is the lifecycle state reported by the feed.
type EventStatus int

const (
	StatusScheduled EventStatus = 0
	StatusLive      EventStatus = 1
	StatusConcluded EventStatus = 3
)

// Market identifies a supported market family.
type Market string

const (
	MarketMoneyline Market = "To Win"
	MarketTotals    Market = "Total"
)

// Selection names one side of a market.
type Selection string

const (
	SelectionHome  Selection = "Home"
	SelectionAway  Selection = "Away"
	SelectionOver  Selection = "Over"
	SelectionUnder Selection = "Under"
)

// MatchEvent is a fixture as known to the store. The external id is
// stable and unique; mutable fields are refreshed on re-sighting unless
// the sighting is classified as a duplicate of another stored fixture.
type MatchEvent struct {
	ID           string      `json:"id"`
	StartTime    time.Time   `json:"start_time"`
	Status       EventStatus `json:"status"`
	LeagueID     int64       `json:"league_id"`
	LeagueName   string      `json:"league_name"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	OddsIngested bool        `json:"odds_ingested"`
}

// OddsQuote is a flat quote record, unique on
// (event id, market, selection, handicap). Quotes are frozen at first
// write: a later quote for the same key is ignored, never overwritten.
type OddsQuote struct {
	EventID   string          `json:"event_id"`
	Market    Market          `json:"market"`
	Selection Selection       `json:"selection"`
	Price     decimal.Decimal `json:"price"`
	Handicap  string          `json:"handicap"`
}

// SetScore is one set of a concluded match.
type SetScore struct {
	Number    int `json:"number"`
	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
}

// HistoricalMatch is a concluded fixture used as read-only input to the
// rating engine and the totals-history sampler. Score is the
// "home-away" set-count string (e.g. "3-1").
type HistoricalMatch struct {
	EventID   string     `json:"event_id"`
	StartTime time.Time  `json:"start_time"`
	HomeName  string     `json:"home_name"`
	AwayName  string     `json:"away_name"`
	Score     string     `json:"score"`
	Sets      []SetScore `json:"sets,omitempty"`
}

// TotalPoints sums every point played across all sets. Used for
// over/under sampling against a handicap line.
func (m HistoricalMatch) TotalPoints() int {
	total := 0
	for _, s := range m.Sets {
		total += s.HomeScore + s.AwayScore
	}
	return total
}

// ValueBet is an accepted wager candidate. Unique on
// (event id, bet type, selection, handicap); upserts only touch the
// odds/estimate/rationale fields, never the settlement fields filled by
// the external settlement collaborator.
type ValueBet struct {
	ID           uuid.UUID       `json:"id"`
	EventID      string          `json:"event_id"`
	LeagueName   string          `json:"league_name"`
	HomeTeam     string          `json:"home_team"`
	AwayTeam     string          `json:"away_team"`
	EventTime    time.Time       `json:"event_time"`
	BetType      Market          `json:"bet_type"`
	Selection    Selection       `json:"selection"`
	Handicap     float64         `json:"handicap"`
	Odds         decimal.Decimal `json:"odds"`
	FairOdds     decimal.Decimal `json:"fair_odds"`
	EstimatedROI float64         `json:"estimated_roi"`
	Rationale    string          `json:"rationale"`

	// Settlement fields, nullable until filled externally.
	Result        *int     `json:"result,omitempty"`
	Profit        *float64 `json:"profit,omitempty"`
	ActualOutcome *string  `json:"actual_outcome,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveCounts reports the outcome of one event batch save.
type SaveCounts struct {
	New        int
	Updated    int
	Duplicates int
}

// RunSummary is the end-of-run report.
type RunSummary struct {
	StartedAt     time.Time     `json:"started_at"`
	Duration      time.Duration `json:"duration"`
	Requests      int64         `json:"requests"`
	EventsFetched int           `json:"events_fetched"`
	EventsNew     int           `json:"events_new"`
	EventsUpdated int           `json:"events_updated"`
	Duplicates    int           `json:"duplicates"`
	OddsFetched   int           `json:"odds_fetched"`
	OddsFailed    int           `json:"odds_failed"`
	QuotesSaved   int           `json:"quotes_saved"`
	Evaluated     int           `json:"evaluated"`
	Accepted      int           `json:"accepted"`
	BetsSaved     int           `json:"bets_saved"`
}

// KafkaValueBetMessage is the batch envelope published for the
// downstream notification component.
type KafkaValueBetMessage struct {
	Bets      []ValueBet `json:"bets"`
	Timestamp time.Time  `json:"timestamp"`
	BatchID   string     `json:"batch_id"`
}
