package store

// schema creates the persisted state on first run. Quote and value-bet
// natural keys are enforced here; the store's insert/upsert paths rely
// on them.
const schema = `
CREATE TABLE IF NOT EXISTS events (
    id            TEXT PRIMARY KEY,
    start_time    TIMESTAMPTZ,
    status        INT NOT NULL DEFAULT 0,
    league_id     BIGINT NOT NULL DEFAULT 0,
    league_name   TEXT NOT NULL DEFAULT '',
    home_team     TEXT NOT NULL DEFAULT '',
    away_team     TEXT NOT NULL DEFAULT '',
    odds_ingested BOOLEAN NOT NULL DEFAULT FALSE,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_events_matchup
    ON events (league_id, home_team, away_team);

CREATE TABLE IF NOT EXISTS odds_quotes (
    id         BIGSERIAL PRIMARY KEY,
    event_id   TEXT NOT NULL REFERENCES events(id),
    market     TEXT NOT NULL,
    selection  TEXT NOT NULL,
    price      NUMERIC(10,3) NOT NULL,
    handicap   TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (event_id, market, selection, handicap)
);

CREATE TABLE IF NOT EXISTS historical_matches (
    event_id   TEXT PRIMARY KEY,
    start_time TIMESTAMPTZ,
    home_name  TEXT NOT NULL,
    away_name  TEXT NOT NULL,
    score      TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_historical_home ON historical_matches (home_name, start_time);
CREATE INDEX IF NOT EXISTS idx_historical_away ON historical_matches (away_name, start_time);

CREATE TABLE IF NOT EXISTS historical_set_scores (
    event_id   TEXT NOT NULL REFERENCES historical_matches(event_id),
    set_number INT NOT NULL,
    home_score INT NOT NULL,
    away_score INT NOT NULL,
    PRIMARY KEY (event_id, set_number)
);

CREATE TABLE IF NOT EXISTS value_bets (
    id             UUID PRIMARY KEY,
    event_id       TEXT NOT NULL,
    league_name    TEXT NOT NULL,
    home_team      TEXT NOT NULL,
    away_team      TEXT NOT NULL,
    event_time     TIMESTAMPTZ NOT NULL,
    bet_type       TEXT NOT NULL,
    selection      TEXT NOT NULL,
    handicap       DOUBLE PRECISION NOT NULL DEFAULT 0,
    odds           NUMERIC(10,3) NOT NULL,
    fair_odds      NUMERIC(10,3) NOT NULL,
    estimated_roi  DOUBLE PRECISION NOT NULL,
    rationale      TEXT NOT NULL DEFAULT '',
    result         INT,
    profit         DOUBLE PRECISION,
    actual_outcome TEXT,
    sent           BOOLEAN NOT NULL DEFAULT FALSE,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (event_id, bet_type, selection, handicap)
);

CREATE TABLE IF NOT EXISTS processed_events (
    event_id     TEXT PRIMARY KEY,
    processed_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
