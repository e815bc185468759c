package valuation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// TotalsStrategy prices "Total" quotes from each competitor's recent
// over/under frequency against the candidate handicap line.
type TotalsStrategy struct {
	params Params
	logger zerolog.Logger
}

// NewTotalsStrategy creates the totals acceptance rule.
func NewTotalsStrategy(params Params, logger zerolog.Logger) *TotalsStrategy {
	return &TotalsStrategy{
		params: params,
		logger: logger.With().Str("component", "totals_strategy").Logger(),
	}
}

// Market implements Strategy.
func (s *TotalsStrategy) Market() models.Market {
	return models.MarketTotals
}

// Evaluate implements Strategy. The two competitors' empirical rates
// are averaged when they agree within the configured band; when they
// disagree the larger rate is used and the ROI bar rises.
func (s *TotalsStrategy) Evaluate(ctx Context) Decision {
	if !s.params.Policy(ctx.Event.LeagueID).Totals {
		return reject("totals disabled for league %q", ctx.Event.LeagueName)
	}
	if ctx.Quote.Price.LessThanOrEqual(s.params.MinPrice) {
		return reject("unpriceable quote %s", ctx.Quote.Price)
	}

	line, ok := ParseLine(ctx.Quote.Handicap)
	if !ok {
		return reject("malformed handicap %q", ctx.Quote.Handicap)
	}

	over := ctx.Quote.Selection == models.SelectionOver
	homeRate, homeSample := lineRate(ctx.HomeHistory, line, over)
	awayRate, awaySample := lineRate(ctx.AwayHistory, line, over)

	if homeSample < s.params.TotalsMinSample || awaySample < s.params.TotalsMinSample {
		return reject("insufficient sample: home %d, away %d, need %d",
			homeSample, awaySample, s.params.TotalsMinSample)
	}

	var prob float64
	agree := math.Abs(homeRate-awayRate) <= s.params.TotalsAgreeBand
	minROI := s.params.TotalsMinROISplit
	if agree {
		prob = (homeRate + awayRate) / 2
		minROI = s.params.TotalsMinROIAgree
	} else {
		prob = math.Max(homeRate, awayRate)
	}

	implied := ImpliedProbability(ctx.Quote.Price)
	roi := ROIPercent(prob, ctx.Quote.Price)

	decision := Decision{
		EstimatedProb: prob,
		ImpliedProb:   implied,
		Edge:          prob - implied,
		ROI:           roi,
	}

	if roi < minROI {
		decision.Reason = fmt.Sprintf("roi %.2f%% below minimum %.2f%% (rates %.2f/%.2f, agree=%t)",
			roi, minROI, homeRate, awayRate, agree)
		return decision
	}

	decision.Accepted = true
	decision.Reason = fmt.Sprintf("line %.1f rates home=%.2f away=%.2f agree=%t p=%.3f roi=%.2f%%",
		line, homeRate, awayRate, agree, prob, roi)
	decision.Bet = &models.ValueBet{
		ID:           uuid.New(),
		EventID:      ctx.Event.ID,
		LeagueName:   ctx.Event.LeagueName,
		HomeTeam:     ctx.Event.HomeTeam,
		AwayTeam:     ctx.Event.AwayTeam,
		EventTime:    ctx.Event.StartTime,
		BetType:      models.MarketTotals,
		Selection:    ctx.Quote.Selection,
		Handicap:     line,
		Odds:         ctx.Quote.Price,
		FairOdds:     FairOdds(prob),
		EstimatedROI: roi,
		Rationale:    decision.Reason,
	}

	s.logger.Debug().
		Str("event_id", ctx.Event.ID).
		Str("selection", string(ctx.Quote.Selection)).
		Float64("line", line).
		Float64("roi", roi).
		Msg("totals candidate accepted")

	return decision
}

// ParseLine reads a handicap string into its numeric line. The feed
// sometimes prefixes the side marker ("O 75.5", "U 75.5").
func ParseLine(handicap string) (float64, bool) {
	h := strings.TrimSpace(handicap)
	h = strings.TrimPrefix(h, "O ")
	h = strings.TrimPrefix(h, "U ")
	line, err := strconv.ParseFloat(h, 64)
	if err != nil || line <= 0 {
		return 0, false
	}
	return line, true
}

// lineRate is the fraction of matches whose total count crosses the
// line in the wanted direction. Matches without per-set detail carry
// no total and are excluded from the sample.
func lineRate(history []models.HistoricalMatch, line float64, over bool) (float64, int) {
	hits, sample := 0, 0
	for _, m := range history {
		if len(m.Sets) == 0 {
			continue
		}
		total := float64(m.TotalPoints())
		sample++
		if over && total > line {
			hits++
		} else if !over && total < line {
			hits++
		}
	}
	if sample == 0 {
		return 0, 0
	}
	return float64(hits) / float64(sample), sample
}
