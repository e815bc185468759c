package config

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_Defaults tests loading configuration with default values
func TestLoadConfig_Defaults(t *testing.T) {
	// Load config without a file (should use defaults)
	config, err := LoadConfig("")

	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify server defaults
	assert.Equal(t, 8082, config.Server.Port)
	assert.Equal(t, 30*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, config.Server.WriteTimeout)

	// Verify feed defaults
	assert.Equal(t, "https://api.betsapi.com/v1", config.Feed.BaseURL)
	assert.Equal(t, "https://api.b365api.com/v3", config.Feed.OddsBaseURL)
	assert.Equal(t, "", config.Feed.Token)
	assert.Equal(t, int64(8), config.Feed.MaxConcurrent)
	assert.Equal(t, 4, config.Feed.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, config.Feed.BaseDelay)

	// Verify Redis defaults
	assert.Equal(t, "localhost:6379", config.Redis.Addr)
	assert.Equal(t, "", config.Redis.Password)
	assert.Equal(t, 0, config.Redis.DB)
	assert.Equal(t, 24*time.Hour, config.Redis.TTL)

	// Verify Kafka defaults
	assert.Equal(t, []string{"localhost:9092"}, config.Kafka.Brokers)
	assert.Equal(t, "value_bets", config.Kafka.Topic)

	// Verify scanner defaults
	assert.Equal(t, 10*time.Minute, config.Scanner.Interval)
	assert.Equal(t, 3, config.Scanner.DaysAhead)
	assert.Equal(t, 92, config.Scanner.SportID)
	assert.Equal(t, 6*time.Hour, config.Scanner.DedupWindow)

	// Verify rating defaults
	assert.Equal(t, 1500.0, config.Rating.Base)
	assert.Equal(t, 32.0, config.Rating.KFactor)

	// Verify valuation defaults
	assert.Equal(t, 30.0, config.Valuation.MoneylineMinROI)
	assert.Equal(t, 0.05, config.Valuation.MoneylineMinEdge)
	assert.Equal(t, 200.0, config.Valuation.StrongFavoriteGap)
	assert.Equal(t, 1.5, config.Valuation.StrongFavoriteEdgeMult)
	assert.Equal(t, 15, config.Valuation.MoneylineMinSample)
	assert.Equal(t, 20.0, config.Valuation.TotalsMinROIAgree)
	assert.Equal(t, 25.0, config.Valuation.TotalsMinROISplit)
	assert.Equal(t, 0.15, config.Valuation.TotalsAgreeBand)
	assert.Equal(t, 5, config.Valuation.TotalsMinSample)
	assert.Equal(t, 20, config.Valuation.DailyCap)

	// Verify logging defaults
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
}

// TestLoadConfig_DefaultLeagues tests the built-in league table
func TestLoadConfig_DefaultLeagues(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	require.Equal(t, 4, len(config.Scanner.Leagues))

	byID := make(map[int64]LeagueConfig)
	for _, l := range config.Scanner.Leagues {
		byID[l.ID] = l
	}

	assert.Equal(t, "Czech Liga Pro", byID[10048210].Name)
	assert.True(t, byID[10048210].Moneyline)
	assert.True(t, byID[10048210].Totals)

	// TT Elite Series takes totals only
	assert.False(t, byID[10073465].Moneyline)
	assert.True(t, byID[10073465].Totals)
}

// TestLoadConfig_WithFile tests loading configuration from file
func TestLoadConfig_WithFile(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	configContent := `
server:
  port: 9090

feed:
  token: file-token
  max_concurrent: 2
  max_attempts: 6

database:
  url: postgres://db:5432/scanner

scanner:
  interval: 5m
  days_ahead: 2
  leagues:
    - id: 10048210
      name: Czech Liga Pro
      moneyline: true
      totals: false

valuation:
  moneyline_min_roi: 25.0
  daily_cap: 10

logging:
  level: debug
  format: console
`

	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	tmpFile.Close()

	config, err := LoadConfig(tmpFile.Name())

	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, "file-token", config.Feed.Token)
	assert.Equal(t, int64(2), config.Feed.MaxConcurrent)
	assert.Equal(t, 6, config.Feed.MaxAttempts)
	assert.Equal(t, "postgres://db:5432/scanner", config.Database.URL)
	assert.Equal(t, 5*time.Minute, config.Scanner.Interval)
	assert.Equal(t, 2, config.Scanner.DaysAhead)
	assert.Equal(t, 25.0, config.Valuation.MoneylineMinROI)
	assert.Equal(t, 10, config.Valuation.DailyCap)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)

	// Configured leagues replace the defaults entirely
	require.Equal(t, 1, len(config.Scanner.Leagues))
	assert.False(t, config.Scanner.Leagues[0].Totals)
}

// TestLoadConfig_EnvironmentOverride tests environment variable resolution
func TestLoadConfig_EnvironmentOverride(t *testing.T) {
	t.Setenv("VALUEBET_FEED_TOKEN", "env-token")
	t.Setenv("VALUEBET_LOGGING_LEVEL", "warn")

	config, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "env-token", config.Feed.Token)
	assert.Equal(t, "warn", config.Logging.Level)
}

// TestLoadConfig_InvalidFile tests loading with non-existent file
func TestLoadConfig_InvalidFile(t *testing.T) {
	config, err := LoadConfig("/nonexistent/config.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
}

// TestToValuationParams tests conversion to valuation engine parameters
func TestToValuationParams(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	params := config.ToValuationParams()

	assert.True(t, params.MinPrice.Equal(decimal.NewFromFloat(1.01)))
	assert.Equal(t, 30.0, params.MoneylineMinROI)
	assert.Equal(t, 0.05, params.MoneylineMinEdge)
	assert.Equal(t, 15, params.MoneylineMinSample)
	assert.Equal(t, 20.0, params.TotalsMinROIAgree)
	assert.Equal(t, 5, params.TotalsMinSample)

	require.Equal(t, 4, len(params.Leagues))
	assert.Equal(t, "TT Elite Series", params.Leagues[10073465].Name)
	assert.False(t, params.Leagues[10073465].Moneyline)
	assert.True(t, params.Leagues[10073465].Totals)
}
