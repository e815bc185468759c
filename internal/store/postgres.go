// Package store is the authoritative record of fixtures, quotes,
// historical results and value bets, backed by Postgres with an
// in-memory membership mirror rebuilt at the start of every run.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/valuebet-scanner/internal/dedup"
	"github.com/cypherlabdev/valuebet-scanner/internal/metrics"
	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// Store wraps the Postgres pool and the membership mirror
type Store struct {
	pool       *pgxpool.Pool
	detector   *dedup.Detector
	membership *membership
	logger     zerolog.Logger
}

// NewStore connects to Postgres, creates the schema and returns the
// store. An unreachable database is a fatal construction error.
func NewStore(ctx context.Context, databaseURL string, detector *dedup.Detector, logger zerolog.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{
		pool:       pool,
		detector:   detector,
		membership: newMembership(),
		logger:     logger.With().Str("component", "store").Logger(),
	}, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// RefreshMembership rebuilds the in-memory known/has-odds mirror from
// storage. Called once at the start of every run.
func (s *Store) RefreshMembership(ctx context.Context) error {
	rows, err := s.pool.Query(ctx, `SELECT id, odds_ingested FROM events`)
	if err != nil {
		return fmt.Errorf("failed to load membership: %w", err)
	}
	defer rows.Close()

	events := make(map[string]bool)
	for rows.Next() {
		var id string
		var ingested bool
		if err := rows.Scan(&id, &ingested); err != nil {
			return fmt.Errorf("failed to scan membership row: %w", err)
		}
		events[id] = ingested
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("membership rows: %w", err)
	}

	s.membership.reset(events)
	s.logger.Debug().Int("events", len(events)).Msg("membership cache rebuilt")
	return nil
}

// Known reports whether the fixture id is already stored.
func (s *Store) Known(eventID string) bool {
	return s.membership.known(eventID)
}

// HasOdds reports whether the fixture already has ingested quotes.
func (s *Store) HasOdds(eventID string) bool {
	return s.membership.hasOdds(eventID)
}

// SaveEvents ingests a fixture batch in one transaction. Known ids
// refresh their mutable fields; unseen ids run the dedup engine and are
// dropped when they re-publish an already-stored fixture. The earliest
// stored fixture stays canonical.
func (s *Store) SaveEvents(ctx context.Context, events []models.MatchEvent) (models.SaveCounts, error) {
	var counts models.SaveCounts

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return counts, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Cache updates collected here and applied after commit, so the
	// mirror never leads the store.
	var added []string

	for _, ev := range events {
		if s.membership.known(ev.ID) {
			_, err := tx.Exec(ctx, `
				UPDATE events
				SET start_time = $2, status = $3, league_id = $4, league_name = $5,
				    home_team = $6, away_team = $7, updated_at = now()
				WHERE id = $1`,
				ev.ID, nullableTime(ev.StartTime), int(ev.Status), ev.LeagueID, ev.LeagueName,
				ev.HomeTeam, ev.AwayTeam)
			if err != nil {
				return counts, fmt.Errorf("failed to update event %s: %w", ev.ID, err)
			}
			counts.Updated++
			continue
		}

		dupID, isDup, err := s.findDuplicate(ctx, tx, ev)
		if err != nil {
			return counts, err
		}
		if isDup {
			s.logger.Warn().
				Str("event_id", ev.ID).
				Str("duplicate_of", dupID).
				Str("home", ev.HomeTeam).
				Str("away", ev.AwayTeam).
				Msg("dropping re-published fixture")
			counts.Duplicates++
			continue
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO events (id, start_time, status, league_id, league_name, home_team, away_team)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			ev.ID, nullableTime(ev.StartTime), int(ev.Status), ev.LeagueID, ev.LeagueName,
			ev.HomeTeam, ev.AwayTeam)
		if err != nil {
			return counts, fmt.Errorf("failed to insert event %s: %w", ev.ID, err)
		}
		added = append(added, ev.ID)
		counts.New++
	}

	if err := tx.Commit(ctx); err != nil {
		return counts, fmt.Errorf("failed to commit event batch: %w", err)
	}

	for _, id := range added {
		s.membership.add(id, false)
	}

	metrics.EventsIngested.WithLabelValues("new").Add(float64(counts.New))
	metrics.EventsIngested.WithLabelValues("updated").Add(float64(counts.Updated))
	metrics.EventsIngested.WithLabelValues("duplicate").Add(float64(counts.Duplicates))

	return counts, nil
}

// findDuplicate fetches stored fixtures with the same matchup and asks
// the dedup engine. Candidates with missing names or a zero time never
// reach the query.
func (s *Store) findDuplicate(ctx context.Context, tx pgx.Tx, ev models.MatchEvent) (string, bool, error) {
	if ev.HomeTeam == "" || ev.AwayTeam == "" || ev.StartTime.IsZero() {
		return "", false, nil
	}

	window := s.detector.Window()
	rows, err := tx.Query(ctx, `
		SELECT id, start_time, league_id, home_team, away_team
		FROM events
		WHERE league_id = $1 AND home_team = $2 AND away_team = $3
		  AND id <> $4
		  AND start_time BETWEEN $5 AND $6`,
		ev.LeagueID, ev.HomeTeam, ev.AwayTeam, ev.ID,
		ev.StartTime.Add(-window), ev.StartTime.Add(window))
	if err != nil {
		return "", false, fmt.Errorf("failed to query similar events: %w", err)
	}
	defer rows.Close()

	var stored []models.MatchEvent
	for rows.Next() {
		var cand models.MatchEvent
		var ts *time.Time
		if err := rows.Scan(&cand.ID, &ts, &cand.LeagueID, &cand.HomeTeam, &cand.AwayTeam); err != nil {
			return "", false, fmt.Errorf("failed to scan similar event: %w", err)
		}
		if ts != nil {
			cand.StartTime = *ts
		}
		stored = append(stored, cand)
	}
	if err := rows.Err(); err != nil {
		return "", false, fmt.Errorf("similar events rows: %w", err)
	}

	id, dup := s.detector.FindDuplicate(ev, stored)
	return id, dup, nil
}

// InsertQuotes stores a quote batch in one transaction with
// insert-if-absent semantics: a later quote for an existing
// (event, market, selection, handicap) key is silently ignored.
func (s *Store) InsertQuotes(ctx context.Context, quotes []models.OddsQuote) (int, error) {
	if len(quotes) == 0 {
		return 0, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	inserted := 0
	for _, q := range quotes {
		tag, err := tx.Exec(ctx, `
			INSERT INTO odds_quotes (event_id, market, selection, price, handicap)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (event_id, market, selection, handicap) DO NOTHING`,
			q.EventID, string(q.Market), string(q.Selection), q.Price, q.Handicap)
		if err != nil {
			return 0, fmt.Errorf("failed to insert quote for %s: %w", q.EventID, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit quote batch: %w", err)
	}

	metrics.QuotesInserted.Add(float64(inserted))
	return inserted, nil
}

// MarkOddsIngested flips the has-odds flag for a fixture and updates
// the mirror.
func (s *Store) MarkOddsIngested(ctx context.Context, eventID string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE events SET odds_ingested = TRUE, updated_at = now() WHERE id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("failed to mark odds ingested for %s: %w", eventID, err)
	}
	s.membership.add(eventID, true)
	return nil
}

// UpcomingForValuation lists scheduled fixtures for the given leagues,
// starting today or later, that have not been valued yet.
func (s *Store) UpcomingForValuation(ctx context.Context, leagueIDs []int64, from time.Time) ([]models.MatchEvent, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, start_time, status, league_id, league_name, home_team, away_team, odds_ingested
		FROM events
		WHERE status = $1
		  AND league_id = ANY($2)
		  AND start_time >= $3
		  AND id NOT IN (SELECT event_id FROM processed_events)
		ORDER BY start_time`,
		int(models.StatusScheduled), leagueIDs, from)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// QuotesForEvent returns the stored quotes for the supported markets of
// one fixture.
func (s *Store) QuotesForEvent(ctx context.Context, eventID string) ([]models.OddsQuote, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT event_id, market, selection, price, handicap
		FROM odds_quotes
		WHERE event_id = $1 AND market IN ($2, $3)
		ORDER BY market, selection`,
		eventID, string(models.MarketMoneyline), string(models.MarketTotals))
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes for %s: %w", eventID, err)
	}
	defer rows.Close()

	var quotes []models.OddsQuote
	for rows.Next() {
		var q models.OddsQuote
		var market, selection string
		if err := rows.Scan(&q.EventID, &market, &selection, &q.Price, &q.Handicap); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		q.Market = models.Market(market)
		q.Selection = models.Selection(selection)
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// RecentMatches returns a competitor's most recent concluded matches,
// newest first, with per-set detail attached.
func (s *Store) RecentMatches(ctx context.Context, competitor string, limit int) ([]models.HistoricalMatch, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT event_id, start_time, home_name, away_name, score
		FROM historical_matches
		WHERE home_name = $1 OR away_name = $1
		ORDER BY start_time DESC
		LIMIT $2`,
		competitor, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent matches for %s: %w", competitor, err)
	}
	matches, err := scanHistory(rows)
	if err != nil {
		return nil, err
	}
	if err := s.attachSets(ctx, matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// HeadToHead returns the direct meetings between two competitors,
// newest first.
func (s *Store) HeadToHead(ctx context.Context, a, b string) ([]models.HistoricalMatch, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT event_id, start_time, home_name, away_name, score
		FROM historical_matches
		WHERE (home_name = $1 AND away_name = $2)
		   OR (home_name = $2 AND away_name = $1)
		ORDER BY start_time DESC`,
		a, b)
	if err != nil {
		return nil, fmt.Errorf("failed to query head-to-head %s vs %s: %w", a, b, err)
	}
	return scanHistory(rows)
}

// FullHistory returns every concluded match in ascending chronological
// order, the order the rating fold requires.
func (s *Store) FullHistory(ctx context.Context) ([]models.HistoricalMatch, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT event_id, start_time, home_name, away_name, score
		FROM historical_matches
		ORDER BY start_time ASC, event_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query full history: %w", err)
	}
	return scanHistory(rows)
}

// rowExecer is the subset of the pool used by per-row writes.
type rowExecer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// UpsertValueBets writes accepted candidates idempotently. Each bet is
// its own statement so a row the database rejects is logged and
// skipped without losing the rest of the batch; the statements are
// deliberately not wrapped in a transaction, since a failed statement
// would abort it and take the already-written rows down with it.
// Conflicts on the natural key only refresh the odds/estimate/
// rationale fields; settlement fields filled by the external
// collaborator are never touched.
func (s *Store) UpsertValueBets(ctx context.Context, bets []models.ValueBet) (int, error) {
	saved, err := s.upsertBets(ctx, s.pool, bets)
	if err != nil {
		return 0, err
	}
	metrics.BetsSaved.Add(float64(saved))
	return saved, nil
}

// upsertBets runs the per-row writes. A batch where nothing at all
// could be written is surfaced as an error; partial failure is not.
func (s *Store) upsertBets(ctx context.Context, db rowExecer, bets []models.ValueBet) (int, error) {
	if len(bets) == 0 {
		return 0, nil
	}

	saved := 0
	var firstErr error
	for _, b := range bets {
		_, err := db.Exec(ctx, `
			INSERT INTO value_bets
			    (id, event_id, league_name, home_team, away_team, event_time,
			     bet_type, selection, handicap, odds, fair_odds, estimated_roi, rationale)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (event_id, bet_type, selection, handicap) DO UPDATE
			SET odds = EXCLUDED.odds,
			    fair_odds = EXCLUDED.fair_odds,
			    estimated_roi = EXCLUDED.estimated_roi,
			    rationale = EXCLUDED.rationale,
			    updated_at = now()`,
			b.ID, b.EventID, b.LeagueName, b.HomeTeam, b.AwayTeam, b.EventTime,
			string(b.BetType), string(b.Selection), b.Handicap, b.Odds, b.FairOdds,
			b.EstimatedROI, b.Rationale)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			s.logger.Error().Err(err).Str("event_id", b.EventID).Msg("failed to upsert value bet")
			continue
		}
		saved++
	}

	if saved == 0 {
		return 0, fmt.Errorf("failed to save any of %d bets: %w", len(bets), firstErr)
	}
	return saved, nil
}

// MarkProcessed records fixtures as valued so a later run skips them.
func (s *Store) MarkProcessed(ctx context.Context, eventIDs []string) error {
	if len(eventIDs) == 0 {
		return nil
	}
	for _, id := range eventIDs {
		if _, err := s.pool.Exec(ctx, `
			INSERT INTO processed_events (event_id) VALUES ($1)
			ON CONFLICT (event_id) DO NOTHING`, id); err != nil {
			return fmt.Errorf("failed to mark %s processed: %w", id, err)
		}
	}
	return nil
}

// attachSets loads per-set scores for the given matches.
func (s *Store) attachSets(ctx context.Context, matches []models.HistoricalMatch) error {
	for i := range matches {
		rows, err := s.pool.Query(ctx, `
			SELECT set_number, home_score, away_score
			FROM historical_set_scores
			WHERE event_id = $1
			ORDER BY set_number`,
			matches[i].EventID)
		if err != nil {
			return fmt.Errorf("failed to query set scores for %s: %w", matches[i].EventID, err)
		}
		for rows.Next() {
			var set models.SetScore
			if err := rows.Scan(&set.Number, &set.HomeScore, &set.AwayScore); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan set score: %w", err)
			}
			matches[i].Sets = append(matches[i].Sets, set)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("set score rows: %w", err)
		}
	}
	return nil
}

func scanEvents(rows pgx.Rows) ([]models.MatchEvent, error) {
	defer rows.Close()
	var events []models.MatchEvent
	for rows.Next() {
		var ev models.MatchEvent
		var ts *time.Time
		var status int
		if err := rows.Scan(&ev.ID, &ts, &status, &ev.LeagueID, &ev.LeagueName,
			&ev.HomeTeam, &ev.AwayTeam, &ev.OddsIngested); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if ts != nil {
			ev.StartTime = *ts
		}
		ev.Status = models.EventStatus(status)
		events = append(events, ev)
	}
	return events, rows.Err()
}

func scanHistory(rows pgx.Rows) ([]models.HistoricalMatch, error) {
	defer rows.Close()
	var matches []models.HistoricalMatch
	for rows.Next() {
		var m models.HistoricalMatch
		var ts *time.Time
		if err := rows.Scan(&m.EventID, &ts, &m.HomeName, &m.AwayName, &m.Score); err != nil {
			return nil, fmt.Errorf("failed to scan historical match: %w", err)
		}
		if ts != nil {
			m.StartTime = *ts
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// nullableTime maps the zero time to NULL so the dedup window query
// never matches fixtures with unknown start times.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
