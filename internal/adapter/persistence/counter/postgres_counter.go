package counter

import (
	"context"
	"fmt"

	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/domain/sequence"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	createSequencesTable = `
		CREATE TABLE IF NOT EXISTS document_sequences (
			kind       TEXT PRIMARY KEY,
			last_value BIGINT NOT NULL
		)`

	// The upsert is a single statement, so concurrent claims serialize on the row lock.
	claimSequence = `
		INSERT INTO document_sequences (kind, last_value)
		VALUES ($1, 1)
		ON CONFLICT (kind) DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value`
)

type pgQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresCounterStore keeps one row per document kind.
type PostgresCounterStore struct {
	db pgQuerier
}

var _ sequence.CounterStore = (*PostgresCounterStore)(nil)

func NewPostgresCounterStore(pool *pgxpool.Pool) (*PostgresCounterStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("postgres counter store: pool cannot be nil")
	}
	return &PostgresCounterStore{db: pool}, nil
}

// EnsureSchema creates the sequences table when it is missing.
func (s *PostgresCounterStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createSequencesTable); err != nil {
		return fmt.Errorf("create document_sequences: %w", err)
	}
	return nil
}

func (s *PostgresCounterStore) Claim(ctx context.Context, kind entities.DocumentKind) (int64, error) {
	var value int64
	if err := s.db.QueryRow(ctx, claimSequence, string(kind)).Scan(&value); err != nil {
		return 0, fmt.Errorf("claim %s sequence: %w", kind, err)
	}
	return value, nil
}
