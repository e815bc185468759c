// Package service orchestrates the scan pipeline: fixture ingestion,
// odds capture, rating, valuation and delivery of accepted bets.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/valuebet-scanner/internal/metrics"
	"github.com/cypherlabdev/valuebet-scanner/internal/models"
	"github.com/cypherlabdev/valuebet-scanner/internal/odds"
	"github.com/cypherlabdev/valuebet-scanner/internal/valuation"
	"github.com/cypherlabdev/valuebet-scanner/pkg/elo"
)

// LeagueTarget is one league the scanner ingests.
type LeagueTarget struct {
	ID   int64
	Name string
}

// ScannerParams holds run-scoped pipeline parameters
type ScannerParams struct {
	SportID      int
	DaysAhead    int
	Leagues      []LeagueTarget
	HistoryLimit int // recent matches fetched per competitor
	DailyCap     int // accepted bets per league, day and bet type
}

// Scanner runs the full pipeline once per invocation
type Scanner struct {
	feed       Feed
	store      Store
	cache      BetCache
	publisher  BetPublisher
	extractor  *odds.Extractor
	rating     *elo.Engine
	strategies map[models.Market]valuation.Strategy
	params     ScannerParams
	logger     zerolog.Logger
}

// NewScanner creates a scanner service
func NewScanner(
	params ScannerParams,
	feedClient Feed,
	store Store,
	cache BetCache,
	publisher BetPublisher,
	extractor *odds.Extractor,
	rating *elo.Engine,
	strategies []valuation.Strategy,
	logger zerolog.Logger,
) *Scanner {
	if params.HistoryLimit <= 0 {
		params.HistoryLimit = 20
	}
	byMarket := make(map[models.Market]valuation.Strategy, len(strategies))
	for _, s := range strategies {
		byMarket[s.Market()] = s
	}
	return &Scanner{
		feed:       feedClient,
		store:      store,
		cache:      cache,
		publisher:  publisher,
		extractor:  extractor,
		rating:     rating,
		strategies: byMarket,
		params:     params,
		logger:     logger.With().Str("component", "scanner").Logger(),
	}
}

// Run executes one complete pipeline pass. Individual fixture failures
// are logged and skipped; only infrastructure failures abort the run.
func (s *Scanner) Run(ctx context.Context) (*models.RunSummary, error) {
	started := time.Now()
	s.feed.ResetRequestCount()

	summary := &models.RunSummary{StartedAt: started.UTC()}

	if err := s.store.RefreshMembership(ctx); err != nil {
		return nil, fmt.Errorf("refresh membership: %w", err)
	}

	fetched, err := s.ingestFixtures(ctx, summary)
	if err != nil {
		return nil, err
	}

	s.captureOdds(ctx, fetched, summary)

	snapshot, err := s.buildSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	accepted, processed, err := s.valuate(ctx, snapshot, summary)
	if err != nil {
		return nil, err
	}

	accepted = valuation.CapPerLeagueDay(accepted, s.params.DailyCap)
	summary.Accepted = len(accepted)

	if err := s.deliver(ctx, accepted, summary); err != nil {
		return nil, err
	}

	if err := s.store.MarkProcessed(ctx, processed); err != nil {
		return nil, fmt.Errorf("mark processed: %w", err)
	}

	summary.Duration = time.Since(started)
	summary.Requests = s.feed.RequestCount()
	metrics.RunDuration.Observe(summary.Duration.Seconds())

	s.logger.Info().
		Dur("duration", summary.Duration).
		Int64("requests", summary.Requests).
		Int("events_fetched", summary.EventsFetched).
		Int("events_new", summary.EventsNew).
		Int("duplicates", summary.Duplicates).
		Int("odds_fetched", summary.OddsFetched).
		Int("odds_failed", summary.OddsFailed).
		Int("quotes_saved", summary.QuotesSaved).
		Int("evaluated", summary.Evaluated).
		Int("accepted", summary.Accepted).
		Int("bets_saved", summary.BetsSaved).
		Msg("pipeline run complete")

	return summary, nil
}

// ingestFixtures lists upcoming fixtures for every configured league and
// day and saves them with dedup. A league that fails to list is skipped;
// the rest of the run proceeds on what was fetched.
func (s *Scanner) ingestFixtures(ctx context.Context, summary *models.RunSummary) ([]models.MatchEvent, error) {
	var fetched []models.MatchEvent

	for _, league := range s.params.Leagues {
		for offset := 0; offset < s.params.DaysAhead; offset++ {
			day := time.Now().UTC().AddDate(0, 0, offset).Format("20060102")
			page := 1
			for {
				result, err := s.feed.Upcoming(ctx, s.params.SportID, league.ID, day, page)
				if err != nil {
					if ctx.Err() != nil {
						return nil, ctx.Err()
					}
					s.logger.Error().Err(err).
						Int64("league_id", league.ID).
						Str("day", day).
						Int("page", page).
						Msg("failed to list upcoming fixtures")
					break
				}
				fetched = append(fetched, result.Events...)
				if result.LastPage {
					break
				}
				page++
			}
		}
	}

	summary.EventsFetched = len(fetched)

	counts, err := s.store.SaveEvents(ctx, fetched)
	if err != nil {
		return nil, fmt.Errorf("save events: %w", err)
	}
	summary.EventsNew = counts.New
	summary.EventsUpdated = counts.Updated
	summary.Duplicates = counts.Duplicates

	return fetched, nil
}

// captureOdds fetches prematch odds concurrently for stored fixtures
// that have none yet. Per-fixture failures are tolerated.
func (s *Scanner) captureOdds(ctx context.Context, fetched []models.MatchEvent, summary *models.RunSummary) {
	var candidates []models.MatchEvent
	seen := make(map[string]bool, len(fetched))
	for _, ev := range fetched {
		if seen[ev.ID] || !s.store.Known(ev.ID) || s.store.HasOdds(ev.ID) {
			continue
		}
		seen[ev.ID] = true
		candidates = append(candidates, ev)
	}
	if len(candidates) == 0 {
		return
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	// The feed client's semaphore bounds actual concurrency.
	for _, ev := range candidates {
		wg.Add(1)
		go func(ev models.MatchEvent) {
			defer wg.Done()

			raw, err := s.feed.Prematch(ctx, ev.ID)
			if err != nil {
				s.logger.Warn().Err(err).Str("event_id", ev.ID).Msg("prematch fetch failed")
				mu.Lock()
				summary.OddsFailed++
				mu.Unlock()
				return
			}
			if raw == nil {
				return
			}

			quotes := s.extractor.Extract(ev.ID, raw)
			inserted, err := s.store.InsertQuotes(ctx, quotes)
			if err != nil {
				s.logger.Error().Err(err).Str("event_id", ev.ID).Msg("failed to store quotes")
				mu.Lock()
				summary.OddsFailed++
				mu.Unlock()
				return
			}
			if err := s.store.MarkOddsIngested(ctx, ev.ID); err != nil {
				s.logger.Error().Err(err).Str("event_id", ev.ID).Msg("failed to mark odds ingested")
			}

			mu.Lock()
			summary.OddsFetched++
			summary.QuotesSaved += inserted
			mu.Unlock()
		}(ev)
	}
	wg.Wait()
}

// buildSnapshot recomputes the rating snapshot from the full
// chronological history.
func (s *Scanner) buildSnapshot(ctx context.Context) (*elo.Snapshot, error) {
	history, err := s.store.FullHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return s.rating.Compute(history), nil
}

// valuate prices every unprocessed upcoming fixture and returns the
// accepted bets plus the ids that were fully evaluated.
func (s *Scanner) valuate(ctx context.Context, snapshot *elo.Snapshot, summary *models.RunSummary) ([]models.ValueBet, []string, error) {
	leagueIDs := make([]int64, 0, len(s.params.Leagues))
	for _, l := range s.params.Leagues {
		leagueIDs = append(leagueIDs, l.ID)
	}
	from := time.Now().UTC().Truncate(24 * time.Hour)

	events, err := s.store.UpcomingForValuation(ctx, leagueIDs, from)
	if err != nil {
		return nil, nil, fmt.Errorf("load upcoming for valuation: %w", err)
	}

	var accepted []models.ValueBet
	var processed []string

	for _, ev := range events {
		quotes, err := s.store.QuotesForEvent(ctx, ev.ID)
		if err != nil {
			s.logger.Error().Err(err).Str("event_id", ev.ID).Msg("failed to load quotes")
			continue
		}
		if len(quotes) == 0 {
			// No odds yet; leave unprocessed so a later run prices it.
			continue
		}

		homeHistory, err := s.store.RecentMatches(ctx, ev.HomeTeam, s.params.HistoryLimit)
		if err != nil {
			s.logger.Error().Err(err).Str("event_id", ev.ID).Msg("failed to load home history")
			continue
		}
		awayHistory, err := s.store.RecentMatches(ctx, ev.AwayTeam, s.params.HistoryLimit)
		if err != nil {
			s.logger.Error().Err(err).Str("event_id", ev.ID).Msg("failed to load away history")
			continue
		}

		var eventBets []models.ValueBet
		for _, q := range quotes {
			strategy, ok := s.strategies[q.Market]
			if !ok {
				continue
			}

			decision := strategy.Evaluate(valuation.Context{
				Event:       ev,
				Quote:       q,
				HomeRating:  snapshot.Rating(ev.HomeTeam),
				AwayRating:  snapshot.Rating(ev.AwayTeam),
				HomeHistory: homeHistory,
				AwayHistory: awayHistory,
			})
			summary.Evaluated++

			outcome := "rejected"
			if decision.Accepted {
				outcome = "accepted"
				eventBets = append(eventBets, *decision.Bet)
			} else {
				s.logger.Debug().
					Str("event_id", ev.ID).
					Str("market", string(q.Market)).
					Str("selection", string(q.Selection)).
					Str("reason", decision.Reason).
					Msg("rejected candidate")
			}
			metrics.BetsEvaluated.WithLabelValues(string(q.Market), outcome).Inc()
		}

		if len(eventBets) > 1 {
			h2h, err := s.store.HeadToHead(ctx, ev.HomeTeam, ev.AwayTeam)
			if err != nil {
				s.logger.Warn().Err(err).Str("event_id", ev.ID).Msg("failed to load head-to-head")
				h2h = nil
			}
			eventBets = valuation.ResolveConflicts(eventBets, h2h, ev.HomeTeam, ev.AwayTeam, s.logger)
		}

		accepted = append(accepted, eventBets...)
		processed = append(processed, ev.ID)
	}

	return accepted, processed, nil
}

// deliver persists accepted bets, then caches and publishes them.
// Cache and publish failures are logged, not fatal: the store is the
// source of truth.
func (s *Scanner) deliver(ctx context.Context, accepted []models.ValueBet, summary *models.RunSummary) error {
	if len(accepted) == 0 {
		return nil
	}

	saved, err := s.store.UpsertValueBets(ctx, accepted)
	if err != nil {
		return fmt.Errorf("save value bets: %w", err)
	}
	summary.BetsSaved = saved

	cached := make([]*models.ValueBet, len(accepted))
	for i := range accepted {
		cached[i] = &accepted[i]
	}
	if err := s.cache.SetBatch(ctx, cached); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache accepted bets")
	}

	if err := s.publisher.PublishBets(ctx, accepted); err != nil {
		s.logger.Warn().Err(err).Msg("failed to publish accepted bets")
	}

	return nil
}
