package counter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/domain/sequence"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

type fakeRedis struct {
	counters map[string]int64
	err      error
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.counters[key]++
	return redis.NewIntResult(f.counters[key], nil)
}

func TestRedisCounterStore_ClaimsPerKind(t *testing.T) {
	fake := &fakeRedis{counters: map[string]int64{}}
	store := newRedisCounterStore(fake, "")
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := store.Claim(ctx, entities.DocumentKindVisit)
		if err != nil || got != want {
			t.Fatalf("expected %d, got %d err=%v", want, got, err)
		}
	}
	if got, _ := store.Claim(ctx, entities.DocumentKindBudget); got != 1 {
		t.Fatalf("kinds must not share a counter, got %d", got)
	}
	if fake.counters["backoffice-visit_seq"] != 3 {
		t.Fatalf("unexpected keys %v", fake.counters)
	}

	registry := sequence.NewRegistry(store)
	if n, err := registry.Number(ctx, entities.DocumentKindVisit); err != nil || !strings.HasPrefix(n, "VIS-0004-") {
		t.Fatalf("unexpected number %q err=%v", n, err)
	}
}

func TestRedisCounterStore_Error(t *testing.T) {
	store := newRedisCounterStore(&fakeRedis{err: errors.New("connection refused")}, "ns")
	if _, err := store.Claim(context.Background(), entities.DocumentKindVisit); err == nil {
		t.Fatalf("expected error")
	}
}

type fakeRow struct {
	value int64
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.value
	return nil
}

type fakePG struct {
	rows  map[string]int64
	execs []string
	err   error
}

func (f *fakePG) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return pgconn.CommandTag{}, f.err
}

func (f *fakePG) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	if f.err != nil {
		return fakeRow{err: f.err}
	}
	kind := args[0].(string)
	f.rows[kind]++
	return fakeRow{value: f.rows[kind]}
}

func TestPostgresCounterStore(t *testing.T) {
	ctx := context.Background()
	db := &fakePG{rows: map[string]int64{}}
	store := &PostgresCounterStore{db: db}

	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("schema: %v", err)
	}
	if len(db.execs) != 1 || !strings.Contains(db.execs[0], "document_sequences") {
		t.Fatalf("unexpected schema statements %v", db.execs)
	}

	_, _ = store.Claim(ctx, entities.DocumentKindServiceOrder)
	got, err := store.Claim(ctx, entities.DocumentKindServiceOrder)
	if err != nil || got != 2 {
		t.Fatalf("expected 2, got %d err=%v", got, err)
	}

	db.err = errors.New("boom")
	if _, err := store.Claim(ctx, entities.DocumentKindVisit); err == nil || !strings.Contains(err.Error(), "visit") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if _, err := NewPostgresCounterStore(nil); err == nil {
		t.Fatalf("expected nil pool error")
	}
}
