package valuation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// totalsHistory builds matches whose point totals are given; per-set
// detail is synthesized so each match counts toward the sample.
func totalsHistory(totals ...int) []models.HistoricalMatch {
	out := make([]models.HistoricalMatch, len(totals))
	for i, total := range totals {
		out[i] = models.HistoricalMatch{
			Score: "3-1",
			Sets: []models.SetScore{
				{Number: 1, HomeScore: total / 2, AwayScore: total - total/2},
			},
		}
	}
	return out
}

// mixedTotals builds n matches of which k exceed the 74.5 line
func mixedTotals(n, k int) []models.HistoricalMatch {
	totals := make([]int, n)
	for i := range totals {
		if i < k {
			totals[i] = 80
		} else {
			totals[i] = 60
		}
	}
	return totalsHistory(totals...)
}

func totalsContext(price float64, selection models.Selection, handicap string, home, away []models.HistoricalMatch) Context {
	return Context{
		Event: testEvent(10048210),
		Quote: models.OddsQuote{
			EventID:   "event-1",
			Market:    models.MarketTotals,
			Selection: selection,
			Price:     decimal.NewFromFloat(price),
			Handicap:  handicap,
		},
		HomeHistory: home,
		AwayHistory: away,
	}
}

// TestTotals_AcceptAgreement tests acceptance when both competitors
// agree on the line
func TestTotals_AcceptAgreement(t *testing.T) {
	s := NewTotalsStrategy(testParams(), zerolog.Nop())

	// Rates 0.8 and 0.7 agree within the band; p = 0.75 at 1.8
	// shows roi +35% against the 20% agreement bar
	decision := s.Evaluate(totalsContext(1.8, models.SelectionOver, "74.5",
		mixedTotals(10, 8), mixedTotals(10, 7)))

	assert.True(t, decision.Accepted)
	require.NotNil(t, decision.Bet)
	assert.Equal(t, models.MarketTotals, decision.Bet.BetType)
	assert.Equal(t, models.SelectionOver, decision.Bet.Selection)
	assert.Equal(t, 74.5, decision.Bet.Handicap)
	assert.InDelta(t, 0.75, decision.EstimatedProb, 1e-9)
	assert.InDelta(t, 35.0, decision.ROI, 1e-6)
}

// TestTotals_ROIBoundary tests the agreement bar at the bar itself:
// meeting it exactly is enough, one tick shorter is not
func TestTotals_ROIBoundary(t *testing.T) {
	s := NewTotalsStrategy(testParams(), zerolog.Nop())

	// Both rates 0.75 agree, so p = 0.75 and 1.6 prices the wager at
	// exactly the 20% agreement minimum
	at := s.Evaluate(totalsContext(1.6, models.SelectionOver, "74.5",
		mixedTotals(8, 6), mixedTotals(8, 6)))

	assert.True(t, at.Accepted)
	require.NotNil(t, at.Bet)
	assert.InDelta(t, 20.0, at.ROI, 1e-9)

	// 1.59 lands at 19.25%
	below := s.Evaluate(totalsContext(1.59, models.SelectionOver, "74.5",
		mixedTotals(8, 6), mixedTotals(8, 6)))

	assert.False(t, below.Accepted)
	assert.Nil(t, below.Bet)
	assert.Contains(t, below.Reason, "roi")
}

// TestTotals_SplitUsesHigherBar tests the raised bar when the
// competitors disagree
func TestTotals_SplitUsesHigherBar(t *testing.T) {
	s := NewTotalsStrategy(testParams(), zerolog.Nop())

	// Rates 0.6 and 0.2 disagree: p = max = 0.6. At 2.05 the roi is
	// +23%, clearing the 20% agreement bar but not the 25% split bar.
	split := s.Evaluate(totalsContext(2.05, models.SelectionOver, "74.5",
		mixedTotals(10, 6), mixedTotals(10, 2)))

	assert.False(t, split.Accepted)
	assert.Contains(t, split.Reason, "roi")

	// The same price with agreeing 0.6 rates is accepted
	agree := s.Evaluate(totalsContext(2.05, models.SelectionOver, "74.5",
		mixedTotals(10, 6), mixedTotals(10, 6)))

	assert.True(t, agree.Accepted)
}

// TestTotals_UnderSelection tests the under side of the line
func TestTotals_UnderSelection(t *testing.T) {
	s := NewTotalsStrategy(testParams(), zerolog.Nop())

	// 8 of 10 and 7 of 10 matches stay under 74.5
	decision := s.Evaluate(totalsContext(1.8, models.SelectionUnder, "74.5",
		mixedTotals(10, 2), mixedTotals(10, 3)))

	assert.True(t, decision.Accepted)
	assert.InDelta(t, 0.75, decision.EstimatedProb, 1e-9)
}

// TestTotals_MatchesWithoutSetsExcluded tests that score-only history
// carries no totals signal
func TestTotals_MatchesWithoutSetsExcluded(t *testing.T) {
	s := NewTotalsStrategy(testParams(), zerolog.Nop())

	// Ten matches but only four with per-set detail
	home := append(mixedTotals(4, 4), recentForm(6)...)

	decision := s.Evaluate(totalsContext(1.8, models.SelectionOver, "74.5",
		home, mixedTotals(10, 7)))

	assert.False(t, decision.Accepted)
	assert.Contains(t, decision.Reason, "insufficient sample")
}

// TestTotals_MalformedHandicap tests handicap parsing failures
func TestTotals_MalformedHandicap(t *testing.T) {
	s := NewTotalsStrategy(testParams(), zerolog.Nop())

	for _, h := range []string{"", "abc", "-5"} {
		decision := s.Evaluate(totalsContext(1.8, models.SelectionOver, h,
			mixedTotals(10, 8), mixedTotals(10, 7)))
		assert.False(t, decision.Accepted, "handicap %q", h)
		assert.Contains(t, decision.Reason, "handicap")
	}
}

// TestTotals_LeagueDisabled tests the per-league policy gate
func TestTotals_LeagueDisabled(t *testing.T) {
	params := testParams()
	params.Leagues[10048210] = LeaguePolicy{Name: "Czech Liga Pro", Moneyline: true, Totals: false}
	s := NewTotalsStrategy(params, zerolog.Nop())

	decision := s.Evaluate(totalsContext(1.8, models.SelectionOver, "74.5",
		mixedTotals(10, 8), mixedTotals(10, 7)))

	assert.False(t, decision.Accepted)
	assert.Contains(t, decision.Reason, "disabled")
}

// TestParseLine tests handicap string parsing
func TestParseLine(t *testing.T) {
	line, ok := ParseLine("74.5")
	assert.True(t, ok)
	assert.Equal(t, 74.5, line)

	line, ok = ParseLine("O 75.5")
	assert.True(t, ok)
	assert.Equal(t, 75.5, line)

	line, ok = ParseLine("U 73.5")
	assert.True(t, ok)
	assert.Equal(t, 73.5, line)

	line, ok = ParseLine(" 74.5 ")
	assert.True(t, ok)
	assert.Equal(t, 74.5, line)

	for _, h := range []string{"", "abc", "-5", "0"} {
		_, ok := ParseLine(h)
		assert.False(t, ok, "handicap %q", h)
	}
}
