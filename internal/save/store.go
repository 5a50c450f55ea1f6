// Package save persists the game state and audio settings as JSON blobs
// in a small SQLite database, one row per storage key, last write wins.
package save

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/game"
)

const (
	stateKey = "game_state"
	audioKey = "audio_settings"
)

type Store struct {
	db     *sqlx.DB
	logger *log.Logger
}

// Open opens or creates the save database at path.
func Open(path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Default()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	st := &Store{db: db, logger: logger}
	if err := st.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return st, nil
}

func (st *Store) Close() error {
	return st.db.Close()
}

func (st *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS save_slots (
		key      TEXT PRIMARY KEY,
		payload  TEXT NOT NULL,
		saved_at TEXT NOT NULL
	);
	`
	_, err := st.db.Exec(schema)
	return err
}

func (st *Store) put(ctx context.Context, key string, payload []byte, now time.Time) error {
	_, err := st.db.ExecContext(ctx,
		`INSERT INTO save_slots (key, payload, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`,
		key, string(payload), now.UTC().Format(time.RFC3339Nano))
	return err
}

func (st *Store) get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload string
	err := st.db.GetContext(ctx, &payload, `SELECT payload FROM save_slots WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(payload), true, nil
}

// SaveState serializes the full state under the fixed state key,
// stamping LastOnlineTime with now.
func (st *Store) SaveState(ctx context.Context, s *game.GameState, now time.Time) error {
	snap := s.Clone()
	snap.Stats.LastOnlineTime = now

	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := st.put(ctx, stateKey, payload, now); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// LoadState reads the raw snapshot. A missing row or a corrupt payload
// returns (nil, nil): the session falls open to a fresh state rather
// than crash.
func (st *Store) LoadState(ctx context.Context) (*game.GameState, error) {
	payload, ok, err := st.get(ctx, stateKey)
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var snap game.GameState
	if err := json.Unmarshal(payload, &snap); err != nil {
		st.logger.Printf(`{"level":"warn","msg":"save_corrupt","error":%q}`, err.Error())
		return nil, nil
	}
	return &snap, nil
}
