// Package odds normalizes the feed's nested prematch payload into flat
// quote records. Only the match-lines market family is kept; every
// other family the feed carries is ignored.
package odds

import (
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// marketLines is the market id carrying moneyline and totals outcomes.
const marketLines = "match_lines"

// rawSection is one market-family section of the prematch payload.
type rawSection struct {
	SP map[string]rawMarket `json:"sp"`
}

// rawMarket is one market inside a section.
type rawMarket struct {
	Odds []rawOutcome `json:"odds"`
}

// rawOutcome is a single priced outcome. Numeric fields arrive as
// strings and may be missing or garbage.
type rawOutcome struct {
	Name     string `json:"name"`
	Header   string `json:"header"`
	Odds     string `json:"odds"`
	Handicap string `json:"handicap"`
}

// payload is the top-level prematch shape: fixed sections plus a list
// of extra sections under "others".
type payload struct {
	Game     *rawSection `json:"game"`
	Main     *rawSection `json:"main"`
	Match    *rawSection `json:"match"`
	Schedule *rawSection `json:"schedule"`
	Others   []struct {
		SP map[string]rawMarket `json:"sp"`
	} `json:"others"`
}

// Extractor flattens prematch payloads into OddsQuote records.
type Extractor struct {
	logger zerolog.Logger
}

// NewExtractor creates an odds extractor.
func NewExtractor(logger zerolog.Logger) *Extractor {
	return &Extractor{
		logger: logger.With().Str("component", "odds_extractor").Logger(),
	}
}

// Extract walks the payload sections and returns the flat quotes for
// the supported market families. A non-numeric or missing price
// coerces to zero; filtering zero prices is the valuation engine's
// job, not this one's.
func (e *Extractor) Extract(eventID string, raw json.RawMessage) []models.OddsQuote {
	if len(raw) == 0 {
		return nil
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		e.logger.Warn().Err(err).Str("event_id", eventID).Msg("undecodable prematch payload")
		return nil
	}

	var outcomes []rawOutcome
	for _, section := range []*rawSection{p.Game, p.Main, p.Match, p.Schedule} {
		if section == nil {
			continue
		}
		if market, ok := section.SP[marketLines]; ok {
			outcomes = append(outcomes, market.Odds...)
		}
	}
	for _, other := range p.Others {
		if market, ok := other.SP[marketLines]; ok {
			outcomes = append(outcomes, market.Odds...)
		}
	}

	quotes := make([]models.OddsQuote, 0, len(outcomes))
	for _, out := range outcomes {
		quote, ok := e.toQuote(eventID, out)
		if !ok {
			continue
		}
		quotes = append(quotes, quote)
	}
	return quotes
}

// toQuote maps one outcome entry to a quote record. Header "1" is the
// home/over side, "2" the away/under side; totals without a handicap
// line are dropped.
func (e *Extractor) toQuote(eventID string, out rawOutcome) (models.OddsQuote, bool) {
	price, err := decimal.NewFromString(out.Odds)
	if err != nil {
		price = decimal.Zero
	}

	switch out.Name {
	case string(models.MarketMoneyline):
		sel := models.SelectionHome
		if out.Header == "2" {
			sel = models.SelectionAway
		} else if out.Header != "1" {
			return models.OddsQuote{}, false
		}
		return models.OddsQuote{
			EventID:   eventID,
			Market:    models.MarketMoneyline,
			Selection: sel,
			Price:     price,
			Handicap:  "",
		}, true

	case string(models.MarketTotals):
		if out.Handicap == "" {
			return models.OddsQuote{}, false
		}
		sel := models.SelectionOver
		if out.Header == "2" {
			sel = models.SelectionUnder
		} else if out.Header != "1" {
			return models.OddsQuote{}, false
		}
		return models.OddsQuote{
			EventID:   eventID,
			Market:    models.MarketTotals,
			Selection: sel,
			Price:     price,
			Handicap:  out.Handicap,
		}, true
	}

	return models.OddsQuote{}, false
}
