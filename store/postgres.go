package store

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/minaorangina/cardtable/game"
	"github.com/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS session_snapshot (
	session_id TEXT PRIMARY KEY,
	variant    TEXT NOT NULL,
	phase      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	data       JSONB NOT NULL
)`

const upsertSnapshot = `
INSERT INTO session_snapshot (session_id, variant, phase, updated_at, data)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (session_id) DO UPDATE
SET variant = EXCLUDED.variant, phase = EXCLUDED.phase,
	updated_at = EXCLUDED.updated_at, data = EXCLUDED.data`

// PostgresStore is the durable snapshot store.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore connects to dsn and creates the snapshot table if needed.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to postgres")
	}
	s := NewPostgresStoreWithDB(db)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func NewPostgresStoreWithDB(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Backend() string { return "postgres" }

func (p *PostgresStore) Migrate(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, schema)
	return errors.Wrap(err, "creating session_snapshot table")
}

func (p *PostgresStore) Close() error {
	return p.db.Close()
}

func (p *PostgresStore) Save(ctx context.Context, s game.Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, upsertSnapshot,
		s.SessionID, s.Variant.String(), s.Phase.String(), s.UpdatedAt, string(data))
	return errors.Wrapf(err, "saving snapshot %s to postgres", s.SessionID)
}

func (p *PostgresStore) Load(ctx context.Context, sessionID string) (game.Snapshot, error) {
	var data []byte
	err := p.db.GetContext(ctx, &data, "SELECT data FROM session_snapshot WHERE session_id = $1", sessionID)
	if err == sql.ErrNoRows {
		return game.Snapshot{}, errors.Wrap(ErrNotFound, sessionID)
	} else if err != nil {
		return game.Snapshot{}, errors.Wrapf(err, "loading snapshot %s from postgres", sessionID)
	}
	return Decode(data)
}

func (p *PostgresStore) List(ctx context.Context, variant game.Variant) ([]string, error) {
	ids := []string{}
	err := p.db.SelectContext(ctx, &ids,
		"SELECT session_id FROM session_snapshot WHERE variant = $1 ORDER BY session_id", variant.String())
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s sessions from postgres", variant)
	}
	return ids, nil
}

func (p *PostgresStore) Delete(ctx context.Context, sessionID string) error {
	res, err := p.db.ExecContext(ctx, "DELETE FROM session_snapshot WHERE session_id = $1", sessionID)
	if err != nil {
		return errors.Wrapf(err, "deleting snapshot %s from postgres", sessionID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "reading deleted rows")
	}
	if n == 0 {
		return errors.Wrap(ErrNotFound, sessionID)
	}
	return nil
}
