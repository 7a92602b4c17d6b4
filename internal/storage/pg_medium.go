package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGMedium stores each slot as a row in a single key-value table:
//
//	CREATE TABLE travelease_kv (key TEXT PRIMARY KEY, value TEXT NOT NULL);
type PGMedium struct {
	db *pgxpool.Pool
}

func NewPGMedium(db *pgxpool.Pool) *PGMedium {
	return &PGMedium{db: db}
}

func (m *PGMedium) Get(ctx context.Context, key string) (string, error) {
	row := m.db.QueryRow(ctx, `SELECT value FROM travelease_kv WHERE key=$1`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (m *PGMedium) Set(ctx context.Context, key, value string) error {
	_, err := m.db.Exec(ctx, `INSERT INTO travelease_kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	return err
}

func (m *PGMedium) Delete(ctx context.Context, key string) error {
	_, err := m.db.Exec(ctx, `DELETE FROM travelease_kv WHERE key=$1`, key)
	return err
}

var _ Medium = (*PGMedium)(nil)
