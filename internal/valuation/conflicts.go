package valuation

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// ResolveConflicts drops one side when both Home and Away moneyline
// candidates for the same fixture were independently accepted. The side
// with the head-to-head majority wins; with no head-to-head history the
// side with the higher estimated ROI wins. Totals candidates pass
// through untouched.
func ResolveConflicts(bets []models.ValueBet, headToHead []models.HistoricalMatch, home, away string, logger zerolog.Logger) []models.ValueBet {
	var homeBets, awayBets, rest []models.ValueBet
	for _, b := range bets {
		switch {
		case b.BetType == models.MarketMoneyline && b.Selection == models.SelectionHome:
			homeBets = append(homeBets, b)
		case b.BetType == models.MarketMoneyline && b.Selection == models.SelectionAway:
			awayBets = append(awayBets, b)
		default:
			rest = append(rest, b)
		}
	}

	if len(homeBets) == 0 || len(awayBets) == 0 {
		return bets
	}

	homeWins, awayWins := headToHeadRecord(headToHead, home, away)
	keepHome := false
	switch {
	case homeWins+awayWins > 0:
		keepHome = homeWins > awayWins
		logger.Info().
			Str("home", home).Str("away", away).
			Int("home_wins", homeWins).Int("away_wins", awayWins).
			Bool("keep_home", keepHome).
			Msg("moneyline conflict resolved by head-to-head record")
	default:
		keepHome = maxROI(homeBets) > maxROI(awayBets)
		logger.Info().
			Str("home", home).Str("away", away).
			Bool("keep_home", keepHome).
			Msg("moneyline conflict resolved by estimated ROI")
	}

	if keepHome {
		return append(homeBets, rest...)
	}
	return append(awayBets, rest...)
}

// headToHeadRecord counts direct wins between the two competitors over
// their stored meetings. Malformed scores contribute nothing.
func headToHeadRecord(meetings []models.HistoricalMatch, home, away string) (homeWins, awayWins int) {
	for _, m := range meetings {
		parts := strings.SplitN(m.Score, "-", 2)
		if len(parts) != 2 {
			continue
		}
		hs, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		as, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil || hs == as {
			continue
		}

		winner := m.HomeName
		if as > hs {
			winner = m.AwayName
		}
		switch winner {
		case home:
			homeWins++
		case away:
			awayWins++
		}
	}
	return homeWins, awayWins
}

func maxROI(bets []models.ValueBet) float64 {
	best := 0.0
	for _, b := range bets {
		if b.EstimatedROI > best {
			best = b.EstimatedROI
		}
	}
	return best
}

// CapPerLeagueDay retains, per league, per calendar day, per bet type,
// only the top-N candidates by estimated ROI, bounding stored and
// notified volume.
func CapPerLeagueDay(bets []models.ValueBet, cap int) []models.ValueBet {
	if cap <= 0 || len(bets) == 0 {
		return bets
	}

	type bucketKey struct {
		league  string
		day     string
		betType models.Market
	}

	buckets := make(map[bucketKey][]models.ValueBet)
	var order []bucketKey
	for _, b := range bets {
		key := bucketKey{
			league:  b.LeagueName,
			day:     b.EventTime.UTC().Format("2006-01-02"),
			betType: b.BetType,
		}
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], b)
	}

	out := make([]models.ValueBet, 0, len(bets))
	for _, key := range order {
		group := buckets[key]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].EstimatedROI > group[j].EstimatedROI
		})
		if len(group) > cap {
			group = group[:cap]
		}
		out = append(out, group...)
	}
	return out
}
