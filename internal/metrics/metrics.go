// Package metrics holds the Prometheus collectors shared across the
// pipeline. Collectors are registered on the default registry so the
// promhttp handler in main picks them up without extra wiring.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedRequests counts outbound feed requests by endpoint.
	FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "valuebet_feed_requests_total",
		Help: "Outbound feed requests by endpoint.",
	}, []string{"endpoint"})

	// FeedRetries counts retried feed requests by endpoint.
	FeedRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "valuebet_feed_retries_total",
		Help: "Feed requests retried after a transient failure.",
	}, []string{"endpoint"})

	// EventsIngested counts batch-save outcomes: new, updated, duplicate.
	EventsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "valuebet_events_ingested_total",
		Help: "Fixture ingest outcomes by disposition.",
	}, []string{"disposition"})

	// QuotesInserted counts stored odds quotes.
	QuotesInserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "valuebet_quotes_inserted_total",
		Help: "Odds quotes inserted (first sighting only).",
	})

	// BetsEvaluated counts valuation decisions by outcome.
	BetsEvaluated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "valuebet_bets_evaluated_total",
		Help: "Valuation decisions by market and outcome.",
	}, []string{"market", "outcome"})

	// BetsSaved counts persisted value bets.
	BetsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "valuebet_bets_saved_total",
		Help: "Value bets persisted after capping.",
	})

	// RunDuration observes full pipeline run durations.
	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "valuebet_run_duration_seconds",
		Help:    "Duration of complete pipeline runs.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})
)
