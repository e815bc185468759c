// Package dedup flags re-published fixtures. The upstream feed
// occasionally re-lists the same real fixture under a new external id
// after a schedule slip; the decision rule matches league, exact team
// names, and a start-time window.
package dedup

import (
	"time"

	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// Detector applies the duplicate-fixture decision rule.
type Detector struct {
	window time.Duration
}

// NewDetector creates a detector with the given start-time tolerance.
func NewDetector(window time.Duration) *Detector {
	if window <= 0 {
		window = 6 * time.Hour
	}
	return &Detector{window: window}
}

// Window returns the configured start-time tolerance.
func (d *Detector) Window() time.Duration {
	return d.window
}

// Matches reports whether candidate is a re-publication of existing:
// same league, same (home, away) pair, start times within the window,
// and different external ids. Team names are compared exactly, with no
// normalization. A candidate with missing names or a zero start time is
// never a duplicate: there is not enough signal to decide.
func (d *Detector) Matches(candidate, existing models.MatchEvent) bool {
	if candidate.ID == existing.ID {
		return false
	}
	if candidate.HomeTeam == "" || candidate.AwayTeam == "" || candidate.StartTime.IsZero() {
		return false
	}
	if candidate.LeagueID != existing.LeagueID {
		return false
	}
	if candidate.HomeTeam != existing.HomeTeam || candidate.AwayTeam != existing.AwayTeam {
		return false
	}

	diff := candidate.StartTime.Sub(existing.StartTime)
	if diff < 0 {
		diff = -diff
	}
	return diff <= d.window
}

// FindDuplicate scans the stored fixtures for the first one candidate
// duplicates. The earliest-seen fixture is canonical, so callers drop
// the candidate rather than merging.
func (d *Detector) FindDuplicate(candidate models.MatchEvent, stored []models.MatchEvent) (string, bool) {
	for _, ev := range stored {
		if d.Matches(candidate, ev) {
			return ev.ID, true
		}
	}
	return "", false
}
