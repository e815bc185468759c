// Package feed implements the rate-limited client for the upstream
// fixtures/odds feed. Concurrency is bounded by a weighted semaphore;
// transient failures retry with exponential backoff per request.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/cypherlabdev/valuebet-scanner/internal/metrics"
	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// Client is the bounded-concurrency, retrying feed client
type Client struct {
	httpClient  *http.Client
	baseURL     string
	oddsBaseURL string
	token       string
	sem         *semaphore.Weighted
	pager       *rate.Limiter
	maxAttempts int
	baseDelay   time.Duration
	logger      zerolog.Logger
	requests    atomic.Int64
}

// ClientConfig holds feed client configuration
type ClientConfig struct {
	BaseURL       string
	OddsBaseURL   string
	Token         string
	Timeout       time.Duration
	MaxConcurrent int64
	MaxAttempts   int
	BaseDelay     time.Duration
	PageDelay     time.Duration
}

// NewClient creates a feed client. A missing token is a configuration
// error and aborts construction.
func NewClient(config ClientConfig, logger zerolog.Logger) (*Client, error) {
	if config.Token == "" {
		return nil, fmt.Errorf("feed token not configured")
	}
	if config.MaxConcurrent <= 0 {
		config.MaxConcurrent = 8
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 4
	}
	if config.BaseDelay <= 0 {
		config.BaseDelay = 500 * time.Millisecond
	}
	pageDelay := config.PageDelay
	if pageDelay <= 0 {
		pageDelay = 300 * time.Millisecond
	}

	return &Client{
		httpClient:  &http.Client{Timeout: config.Timeout},
		baseURL:     config.BaseURL,
		oddsBaseURL: config.OddsBaseURL,
		token:       config.Token,
		sem:         semaphore.NewWeighted(config.MaxConcurrent),
		pager:       rate.NewLimiter(rate.Every(pageDelay), 1),
		maxAttempts: config.MaxAttempts,
		baseDelay:   config.BaseDelay,
		logger:      logger.With().Str("component", "feed_client").Logger(),
	}, nil
}

// envelope is the feed's response wrapper
type envelope struct {
	Success int               `json:"success"`
	Error   string            `json:"error"`
	Results []json.RawMessage `json:"results"`
	Pager   *Pager            `json:"pager"`
}

// Pager reports feed-side pagination state
type Pager struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
}

// UpcomingPage is one page of fixture listings
type UpcomingPage struct {
	Events   []models.MatchEvent
	Page     int
	LastPage bool
}

// rawEvent matches the feed's fixture shape; numeric fields arrive as
// strings.
type rawEvent struct {
	ID         string `json:"id"`
	Time       string `json:"time"`
	TimeStatus string `json:"time_status"`
	League     struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"league"`
	Home struct {
		Name string `json:"name"`
	} `json:"home"`
	Away struct {
		Name string `json:"name"`
	} `json:"away"`
}

// RequestCount returns the number of feed requests issued so far.
func (c *Client) RequestCount() int64 {
	return c.requests.Load()
}

// ResetRequestCount zeroes the per-run request counter.
func (c *Client) ResetRequestCount() {
	c.requests.Store(0)
}

// Upcoming lists scheduled fixtures for a sport/league/day page.
func (c *Client) Upcoming(ctx context.Context, sportID int, leagueID int64, day string, page int) (*UpcomingPage, error) {
	params := url.Values{}
	params.Set("sport_id", strconv.Itoa(sportID))
	if leagueID != 0 {
		params.Set("league_id", strconv.FormatInt(leagueID, 10))
	}
	if day != "" {
		params.Set("day", day)
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}

	// Pagination pacing: successive listing calls are cheap for the
	// feed to serve but count against the same quota.
	if err := c.pager.Wait(ctx); err != nil {
		return nil, fmt.Errorf("pager wait: %w", err)
	}

	env, err := c.fetch(ctx, c.baseURL, "bet365/upcoming", params)
	if err != nil {
		return nil, err
	}

	events := make([]models.MatchEvent, 0, len(env.Results))
	for _, raw := range env.Results {
		var re rawEvent
		if err := json.Unmarshal(raw, &re); err != nil {
			c.logger.Warn().Err(err).Msg("skipping undecodable fixture")
			continue
		}
		events = append(events, re.toModel())
	}

	out := &UpcomingPage{Events: events, Page: page, LastPage: true}
	if env.Pager != nil && page < env.Pager.Total {
		out.LastPage = false
	}
	return out, nil
}

// Prematch fetches the raw prematch odds payload for a fixture. The
// first results entry carries the market sections; a fixture without
// odds yields nil.
func (c *Client) Prematch(ctx context.Context, eventID string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("FI", eventID)

	env, err := c.fetch(ctx, c.oddsBaseURL, "bet365/prematch", params)
	if err != nil {
		return nil, err
	}
	if len(env.Results) == 0 {
		return nil, nil
	}
	return env.Results[0], nil
}

// Result fetches the final result payload for a fixture. Consumed by
// the settlement collaborator; the scanner itself never calls it.
func (c *Client) Result(ctx context.Context, eventID string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("event_id", eventID)

	env, err := c.fetch(ctx, c.baseURL, "bet365/result", params)
	if err != nil {
		return nil, err
	}
	if len(env.Results) == 0 {
		return nil, nil
	}
	return env.Results[0], nil
}

// fetch runs one logical request with the retry budget. Only transient
// failures burn attempts; terminal feed errors return immediately.
func (c *Client) fetch(ctx context.Context, base, endpoint string, params url.Values) (*envelope, error) {
	var lastErr error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			metrics.FeedRetries.WithLabelValues(endpoint).Inc()
			delay := c.baseDelay * (1 << (attempt - 1))
			c.logger.Debug().
				Str("endpoint", endpoint).
				Int("attempt", attempt).
				Dur("delay", delay).
				Msg("retrying after transient failure")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		env, err := c.doRequest(ctx, base, endpoint, params)
		if err == nil {
			return env, nil
		}
		if !IsRetryable(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("retry budget exhausted: %w", lastErr)
}

// doRequest performs a single request under the concurrency cap.
func (c *Client) doRequest(ctx context.Context, base, endpoint string, params url.Values) (*envelope, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("semaphore acquire: %w", err)
	}
	defer c.sem.Release(1)

	c.requests.Add(1)
	metrics.FeedRequests.WithLabelValues(endpoint).Inc()

	params.Set("token", c.token)
	u := fmt.Sprintf("%s/%s?%s", base, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransientError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &TransientError{Endpoint: endpoint, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Endpoint: endpoint, Message: fmt.Sprintf("status %d", resp.StatusCode)}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &TransientError{Endpoint: endpoint, Err: fmt.Errorf("decode response: %w", err)}
	}

	if env.Success == 0 {
		if rateLimitText(env.Error) {
			return nil, &TransientError{Endpoint: endpoint, Err: ErrRateLimited}
		}
		msg := env.Error
		if msg == "" {
			msg = "unknown feed error"
		}
		return nil, &APIError{Endpoint: endpoint, Message: msg}
	}

	return &env, nil
}

func (re rawEvent) toModel() models.MatchEvent {
	ev := models.MatchEvent{
		ID:         re.ID,
		LeagueName: re.League.Name,
		HomeTeam:   re.Home.Name,
		AwayTeam:   re.Away.Name,
	}
	if ts, err := strconv.ParseInt(re.Time, 10, 64); err == nil && ts > 0 {
		ev.StartTime = time.Unix(ts, 0).UTC()
	}
	if st, err := strconv.Atoi(re.TimeStatus); err == nil {
		ev.Status = models.EventStatus(st)
	}
	if lid, err := strconv.ParseInt(re.League.ID, 10, 64); err == nil {
		ev.LeagueID = lid
	}
	return ev
}
