package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// stubExecer records per-row writes and fails the configured event ids
type stubExecer struct {
	calls   []string
	failIDs map[string]bool
}

func (s *stubExecer) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	id := arguments[1].(string)
	s.calls = append(s.calls, id)
	if s.failIDs[id] {
		return pgconn.CommandTag{}, errors.New("value too long for type character varying(32)")
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func testBets(ids ...string) []models.ValueBet {
	out := make([]models.ValueBet, len(ids))
	for i, id := range ids {
		out[i] = models.ValueBet{
			EventID:   id,
			BetType:   models.MarketMoneyline,
			Selection: models.SelectionHome,
		}
	}
	return out
}

// TestUpsertBets_BadRowSkipped tests that one rejected row does not
// lose the rest of the batch
func TestUpsertBets_BadRowSkipped(t *testing.T) {
	s := &Store{membership: newMembership(), logger: zerolog.Nop()}
	db := &stubExecer{failIDs: map[string]bool{"e2": true}}

	saved, err := s.upsertBets(context.Background(), db, testBets("e1", "e2", "e3"))

	require.NoError(t, err)
	assert.Equal(t, 2, saved)
	assert.Equal(t, []string{"e1", "e2", "e3"}, db.calls)
}

// TestUpsertBets_AllRowsFail tests that a fully failing batch is an error
func TestUpsertBets_AllRowsFail(t *testing.T) {
	s := &Store{membership: newMembership(), logger: zerolog.Nop()}
	db := &stubExecer{failIDs: map[string]bool{"e1": true, "e2": true}}

	saved, err := s.upsertBets(context.Background(), db, testBets("e1", "e2"))

	assert.Error(t, err)
	assert.Equal(t, 0, saved)
	assert.Contains(t, err.Error(), "2 bets")
}

// TestUpsertBets_Empty tests the no-op batch
func TestUpsertBets_Empty(t *testing.T) {
	s := &Store{membership: newMembership(), logger: zerolog.Nop()}
	db := &stubExecer{}

	saved, err := s.upsertBets(context.Background(), db, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, saved)
	assert.Empty(t, db.calls)
}
