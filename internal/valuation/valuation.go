// Package valuation prices stored quotes against the rating snapshot
// and historical frequencies, and accepts or rejects each candidate
// wager. Each market family's acceptance heuristic is a Strategy;
// rejections are values carrying a reason, never errors.
package valuation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// Params holds acceptance thresholds and league policy
type Params struct {
	MinPrice decimal.Decimal // quotes at or below are never priced

	MoneylineMinROI        float64
	MoneylineMinEdge       float64
	StrongFavoriteGap      float64
	StrongFavoriteEdgeMult float64
	MoneylineMinSample     int

	TotalsMinROIAgree float64
	TotalsMinROISplit float64
	TotalsAgreeBand   float64
	TotalsMinSample   int

	Leagues map[int64]LeaguePolicy
}

// LeaguePolicy enables market families per league
type LeaguePolicy struct {
	Name      string
	Moneyline bool
	Totals    bool
}

// Policy returns the league policy, defaulting to both markets enabled
// for leagues without explicit configuration.
func (p Params) Policy(leagueID int64) LeaguePolicy {
	if pol, ok := p.Leagues[leagueID]; ok {
		return pol
	}
	return LeaguePolicy{Moneyline: true, Totals: true}
}

// Context carries everything a strategy needs to price one quote.
type Context struct {
	Event       models.MatchEvent
	Quote       models.OddsQuote
	HomeRating  float64
	AwayRating  float64
	HomeHistory []models.HistoricalMatch // recent matches of the home competitor
	AwayHistory []models.HistoricalMatch // recent matches of the away competitor
}

// Decision is the outcome of evaluating one quote.
type Decision struct {
	Accepted      bool
	Reason        string
	EstimatedProb float64
	ImpliedProb   float64
	Edge          float64
	ROI           float64
	Bet           *models.ValueBet
}

// Strategy is the shared contract for market-family acceptance rules.
type Strategy interface {
	Market() models.Market
	Evaluate(ctx Context) Decision
}

// reject builds a rejection decision.
func reject(reason string, args ...interface{}) Decision {
	return Decision{Reason: fmt.Sprintf(reason, args...)}
}

// ImpliedProbability converts decimal odds to the market-implied
// probability. Odds at or below even money for nothing return zero.
func ImpliedProbability(odds decimal.Decimal) float64 {
	f := odds.InexactFloat64()
	if f <= 1 {
		return 0
	}
	return 1 / f
}

// ROIPercent is the expected return per unit stake, as a percentage.
func ROIPercent(prob float64, odds decimal.Decimal) float64 {
	f := odds.InexactFloat64()
	if prob <= 0 || f <= 1 {
		return 0
	}
	return 100 * (prob*(f-1) - (1 - prob))
}

// FairOdds is the reciprocal of the estimated probability.
func FairOdds(prob float64) decimal.Decimal {
	if prob <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(1).Div(decimal.NewFromFloat(prob)).Round(4)
}
