package valuation

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/valuebet-scanner/internal/models"
	"github.com/cypherlabdev/valuebet-scanner/pkg/elo"
)

// MoneylineStrategy prices "To Win" quotes from the rating snapshot.
// The estimated home-win probability is the ELO expected score between
// the two current ratings.
type MoneylineStrategy struct {
	params Params
	logger zerolog.Logger
}

// NewMoneylineStrategy creates the moneyline acceptance rule.
func NewMoneylineStrategy(params Params, logger zerolog.Logger) *MoneylineStrategy {
	return &MoneylineStrategy{
		params: params,
		logger: logger.With().Str("component", "moneyline_strategy").Logger(),
	}
}

// Market implements Strategy.
func (s *MoneylineStrategy) Market() models.Market {
	return models.MarketMoneyline
}

// Evaluate implements Strategy. Acceptance combines a minimum-ROI bar
// and a minimum-edge bar; when the rating gap marks a strong favorite,
// the required edge scales up before a lopsided-rating wager is
// trusted.
func (s *MoneylineStrategy) Evaluate(ctx Context) Decision {
	if !s.params.Policy(ctx.Event.LeagueID).Moneyline {
		return reject("moneyline disabled for league %q", ctx.Event.LeagueName)
	}
	if ctx.Quote.Price.LessThanOrEqual(s.params.MinPrice) {
		return reject("unpriceable quote %s", ctx.Quote.Price)
	}
	if len(ctx.HomeHistory) < s.params.MoneylineMinSample || len(ctx.AwayHistory) < s.params.MoneylineMinSample {
		return reject("insufficient sample: home %d, away %d, need %d",
			len(ctx.HomeHistory), len(ctx.AwayHistory), s.params.MoneylineMinSample)
	}

	pHome := elo.Expected(ctx.HomeRating, ctx.AwayRating)
	var prob float64
	switch ctx.Quote.Selection {
	case models.SelectionHome:
		prob = pHome
	case models.SelectionAway:
		prob = 1 - pHome
	default:
		return reject("unknown moneyline selection %q", ctx.Quote.Selection)
	}

	implied := ImpliedProbability(ctx.Quote.Price)
	edge := prob - implied
	roi := ROIPercent(prob, ctx.Quote.Price)

	requiredEdge := s.params.MoneylineMinEdge
	gap := math.Abs(ctx.HomeRating - ctx.AwayRating)
	if gap > s.params.StrongFavoriteGap {
		requiredEdge *= s.params.StrongFavoriteEdgeMult
	}

	decision := Decision{
		EstimatedProb: prob,
		ImpliedProb:   implied,
		Edge:          edge,
		ROI:           roi,
	}

	if roi < s.params.MoneylineMinROI {
		decision.Reason = fmt.Sprintf("roi %.2f%% below minimum %.2f%%", roi, s.params.MoneylineMinROI)
		return decision
	}
	if edge < requiredEdge {
		decision.Reason = fmt.Sprintf("edge %.3f below required %.3f (rating gap %.0f)", edge, requiredEdge, gap)
		return decision
	}

	decision.Accepted = true
	decision.Reason = fmt.Sprintf("elo p=%.3f implied=%.3f edge=%.3f roi=%.2f%%", prob, implied, edge, roi)
	decision.Bet = &models.ValueBet{
		ID:           uuid.New(),
		EventID:      ctx.Event.ID,
		LeagueName:   ctx.Event.LeagueName,
		HomeTeam:     ctx.Event.HomeTeam,
		AwayTeam:     ctx.Event.AwayTeam,
		EventTime:    ctx.Event.StartTime,
		BetType:      models.MarketMoneyline,
		Selection:    ctx.Quote.Selection,
		Odds:         ctx.Quote.Price,
		FairOdds:     FairOdds(prob),
		EstimatedROI: roi,
		Rationale:    decision.Reason,
	}

	s.logger.Debug().
		Str("event_id", ctx.Event.ID).
		Str("selection", string(ctx.Quote.Selection)).
		Float64("roi", roi).
		Float64("edge", edge).
		Msg("moneyline candidate accepted")

	return decision
}
