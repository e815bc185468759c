package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// BetReader abstracts the accepted-bet lookup backing the API
type BetReader interface {
	GetByEvent(ctx context.Context, eventID string) ([]*models.ValueBet, error)
}

// BetsHandler handles HTTP requests for accepted value bets
type BetsHandler struct {
	bets   BetReader
	logger zerolog.Logger
}

// NewBetsHandler creates a new bets HTTP handler
func NewBetsHandler(bets BetReader, logger zerolog.Logger) *BetsHandler {
	return &BetsHandler{
		bets:   bets,
		logger: logger.With().Str("component", "bets_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *BetsHandler) RegisterRoutes(mux *http.ServeMux) {
	// GET /api/v1/events/:event_id/bets - Get accepted bets for an event
	mux.HandleFunc("/api/v1/events/", h.handleGetEventBets)
}

// handleGetEventBets handles GET /api/v1/events/:event_id/bets
func (h *BetsHandler) handleGetEventBets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/events/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[1] != "bets" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/events/:event_id/bets")
		return
	}

	eventID := parts[0]
	if eventID == "" {
		h.errorResponse(w, http.StatusBadRequest, "event_id is required")
		return
	}

	bets, err := h.bets.GetByEvent(r.Context(), eventID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("event_id", eventID).
			Msg("failed to retrieve event bets")
		h.errorResponse(w, http.StatusInternalServerError, "failed to retrieve bets")
		return
	}

	responses := make([]*BetResponse, 0, len(bets))
	for _, bet := range bets {
		responses = append(responses, ToBetResponse(bet))
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"event_id": eventID,
		"count":    len(responses),
		"bets":     responses,
	})
}

// jsonResponse writes a JSON response
func (h *BetsHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *BetsHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}

// BetResponse represents the API response for one accepted bet
type BetResponse struct {
	ID           string  `json:"id"`
	EventID      string  `json:"event_id"`
	League       string  `json:"league"`
	HomeTeam     string  `json:"home_team"`
	AwayTeam     string  `json:"away_team"`
	EventTime    string  `json:"event_time"`
	BetType      string  `json:"bet_type"`
	Selection    string  `json:"selection"`
	Handicap     float64 `json:"handicap"`
	Odds         string  `json:"odds"`
	FairOdds     string  `json:"fair_odds"`
	EstimatedROI float64 `json:"estimated_roi"`
	Rationale    string  `json:"rationale"`
}

// ToBetResponse converts a ValueBet to API response format
func ToBetResponse(bet *models.ValueBet) *BetResponse {
	return &BetResponse{
		ID:           bet.ID.String(),
		EventID:      bet.EventID,
		League:       bet.LeagueName,
		HomeTeam:     bet.HomeTeam,
		AwayTeam:     bet.AwayTeam,
		EventTime:    bet.EventTime.Format("2006-01-02T15:04:05Z07:00"),
		BetType:      string(bet.BetType),
		Selection:    string(bet.Selection),
		Handicap:     bet.Handicap,
		Odds:         bet.Odds.String(),
		FairOdds:     bet.FairOdds.String(),
		EstimatedROI: bet.EstimatedROI,
		Rationale:    bet.Rationale,
	}
}
