package valuation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// testParams returns the production tuning with all configured leagues
func testParams() Params {
	return Params{
		MinPrice:               decimal.NewFromFloat(1.01),
		MoneylineMinROI:        30,
		MoneylineMinEdge:       0.05,
		StrongFavoriteGap:      200,
		StrongFavoriteEdgeMult: 1.5,
		MoneylineMinSample:     15,
		TotalsMinROIAgree:      20,
		TotalsMinROISplit:      25,
		TotalsAgreeBand:        0.15,
		TotalsMinSample:        5,
		Leagues: map[int64]LeaguePolicy{
			10048210: {Name: "Czech Liga Pro", Moneyline: true, Totals: true},
			10073465: {Name: "TT Elite Series", Moneyline: false, Totals: true},
		},
	}
}

func testEvent(leagueID int64) models.MatchEvent {
	return models.MatchEvent{
		ID:         "event-1",
		StartTime:  time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC),
		LeagueID:   leagueID,
		LeagueName: "Czech Liga Pro",
		HomeTeam:   "Novak J",
		AwayTeam:   "Svoboda P",
	}
}

// TestPolicy tests league policy lookup and defaulting
func TestPolicy(t *testing.T) {
	params := testParams()

	assert.True(t, params.Policy(10048210).Moneyline)
	assert.False(t, params.Policy(10073465).Moneyline)
	assert.True(t, params.Policy(10073465).Totals)

	// Unknown leagues default to both markets enabled
	unknown := params.Policy(999)
	assert.True(t, unknown.Moneyline)
	assert.True(t, unknown.Totals)
}

// TestImpliedProbability tests odds to probability conversion
func TestImpliedProbability(t *testing.T) {
	assert.InDelta(t, 0.5, ImpliedProbability(decimal.NewFromFloat(2.0)), 1e-9)
	assert.InDelta(t, 0.4, ImpliedProbability(decimal.NewFromFloat(2.5)), 1e-9)

	assert.Equal(t, 0.0, ImpliedProbability(decimal.NewFromFloat(1.0)))
	assert.Equal(t, 0.0, ImpliedProbability(decimal.Zero))
	assert.Equal(t, 0.0, ImpliedProbability(decimal.NewFromFloat(0.5)))
}

// TestROIPercent tests the expected-return formula
func TestROIPercent(t *testing.T) {
	// Fair coin at even odds has zero expected return
	assert.InDelta(t, 0.0, ROIPercent(0.5, decimal.NewFromFloat(2.0)), 1e-9)

	// 60% at 2.0: 0.6*1 - 0.4 = +20%
	assert.InDelta(t, 20.0, ROIPercent(0.6, decimal.NewFromFloat(2.0)), 1e-9)

	// 40% at 2.0: 0.4*1 - 0.6 = -20%
	assert.InDelta(t, -20.0, ROIPercent(0.4, decimal.NewFromFloat(2.0)), 1e-9)

	// Degenerate inputs
	assert.Equal(t, 0.0, ROIPercent(0, decimal.NewFromFloat(2.0)))
	assert.Equal(t, 0.0, ROIPercent(0.5, decimal.NewFromFloat(1.0)))
}

// TestFairOdds tests the probability reciprocal
func TestFairOdds(t *testing.T) {
	assert.Equal(t, "2", FairOdds(0.5).String())
	assert.Equal(t, "4", FairOdds(0.25).String())
	assert.True(t, FairOdds(0).IsZero())
	assert.True(t, FairOdds(-0.1).IsZero())
}
