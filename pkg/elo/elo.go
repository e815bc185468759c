// Package elo recomputes competitor strength ratings from a historical
// match corpus. The computation is a deterministic fold over matches in
// ascending chronological order; nothing incremental is persisted.
package elo

import (
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// Params holds rating computation parameters
type Params struct {
	Base    float64 // rating assigned to unseen competitors (e.g., 1500)
	KFactor float64 // update step size (e.g., 32)
}

// DefaultParams returns the standard table-tennis tuning.
func DefaultParams() Params {
	return Params{Base: 1500, KFactor: 32}
}

// Snapshot is an immutable rating map produced by one Compute call.
// Lookups for unseen competitors return the baseline.
type Snapshot struct {
	base    float64
	ratings map[string]float64
}

// Rating returns the competitor's rating, or the baseline if the
// competitor never appears in the history.
func (s *Snapshot) Rating(name string) float64 {
	if r, ok := s.ratings[name]; ok {
		return r
	}
	return s.base
}

// Known reports whether the competitor appears in the history.
func (s *Snapshot) Known(name string) bool {
	_, ok := s.ratings[name]
	return ok
}

// Size returns the number of rated competitors.
func (s *Snapshot) Size() int {
	return len(s.ratings)
}

// Ratings returns a copy of the full rating map.
func (s *Snapshot) Ratings() map[string]float64 {
	out := make(map[string]float64, len(s.ratings))
	for k, v := range s.ratings {
		out[k] = v
	}
	return out
}

// Engine computes rating snapshots
type Engine struct {
	params Params
	logger zerolog.Logger
}

// NewEngine creates a rating engine
func NewEngine(params Params, logger zerolog.Logger) *Engine {
	if params.Base == 0 {
		params.Base = 1500
	}
	if params.KFactor == 0 {
		params.KFactor = 32
	}
	return &Engine{
		params: params,
		logger: logger.With().Str("component", "elo_engine").Logger(),
	}
}

// Expected returns the expected score of a competitor rated ra against
// one rated rb.
func Expected(ra, rb float64) float64 {
	return 1 / (1 + math.Pow(10, (rb-ra)/400))
}

// Compute folds the history, in the order given, into a rating
// snapshot. Callers must pass matches in ascending chronological order;
// re-ordering changes the result. Matches whose score cannot be parsed
// are skipped without touching any rating.
func (e *Engine) Compute(history []models.HistoricalMatch) *Snapshot {
	ratings := make(map[string]float64)
	skipped := 0

	rating := func(name string) float64 {
		if r, ok := ratings[name]; ok {
			return r
		}
		return e.params.Base
	}

	for _, m := range history {
		homeWon, ok := parseOutcome(m.Score)
		if !ok {
			skipped++
			continue
		}
		if m.HomeName == "" || m.AwayName == "" {
			skipped++
			continue
		}

		ra := rating(m.HomeName)
		rb := rating(m.AwayName)
		expected := Expected(ra, rb)

		actual := 0.0
		if homeWon {
			actual = 1.0
		}

		delta := e.params.KFactor * (actual - expected)
		ratings[m.HomeName] = ra + delta
		ratings[m.AwayName] = rb - delta
	}

	e.logger.Debug().
		Int("matches", len(history)).
		Int("skipped", skipped).
		Int("competitors", len(ratings)).
		Msg("rating snapshot computed")

	return &Snapshot{base: e.params.Base, ratings: ratings}
}

// parseOutcome reads a "home-away" set-count score string and reports
// whether the home side won. Draws and malformed strings carry no
// outcome.
func parseOutcome(score string) (homeWon, ok bool) {
	parts := strings.SplitN(score, "-", 2)
	if len(parts) != 2 {
		return false, false
	}
	home, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return false, false
	}
	away, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return false, false
	}
	if home == away {
		return false, false
	}
	return home > away, true
}
