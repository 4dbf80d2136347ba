package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// PostgresSlot keeps the snapshot as a single upserted row keyed by the
// fixed slot name, for deployments that want the slot server-side instead
// of on the local filesystem. Two sessions sharing the slot remain
// last-write-wins.
type PostgresSlot struct {
	pool *pgxpool.Pool
}

func NewPostgresSlot(ctx context.Context, pool *pgxpool.Pool) (*PostgresSlot, error) {
	_, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS cv_snapshots (
		slot TEXT PRIMARY KEY,
		data JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return nil, err
	}
	return &PostgresSlot{pool: pool}, nil
}

func (p *PostgresSlot) Read() ([]byte, bool, error) {
	var data []byte
	err := p.pool.QueryRow(context.Background(),
		`SELECT data FROM cv_snapshots WHERE slot = $1`, SlotKey).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (p *PostgresSlot) Write(data []byte) error {
	_, err := p.pool.Exec(context.Background(),
		`INSERT INTO cv_snapshots (slot, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (slot) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		SlotKey, data)
	return err
}

func (p *PostgresSlot) Delete() error {
	_, err := p.pool.Exec(context.Background(),
		`DELETE FROM cv_snapshots WHERE slot = $1`, SlotKey)
	return err
}
