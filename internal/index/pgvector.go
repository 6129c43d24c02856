package index

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// PgvectorIndex serves nearest-neighbour queries from a Postgres table
// with a pgvector embedding column
type PgvectorIndex struct {
	pool *pgxpool.Pool
}

func NewPgvectorIndex(pool *pgxpool.Pool) *PgvectorIndex {
	return &PgvectorIndex{pool: pool}
}

// Query returns up to limit chunks ordered by ascending cosine distance
func (p *PgvectorIndex) Query(ctx context.Context, vector []float32, predicate *Predicate, limit int) ([]Candidate, error) {
	query, args, err := buildSearchQuery(pgvector.NewVector(vector), predicate, limit)
	if err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate

	for rows.Next() {
		var candidate Candidate
		err := rows.Scan(
			&candidate.DocumentID,
			&candidate.Text,
			&candidate.Category,
			&candidate.Distance,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		candidates = append(candidates, candidate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return candidates, nil
}

// Ping verifies the database is reachable
func (p *PgvectorIndex) Ping(ctx context.Context) error {
	if err := p.pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool
func (p *PgvectorIndex) Close() {
	p.pool.Close()
}

func buildSearchQuery(vector pgvector.Vector, predicate *Predicate, limit int) (string, []any, error) {
	if predicate == nil {
		return searchChunksQuery, []any{vector, limit}, nil
	}

	if _, ok := predicateFields[predicate.Field]; !ok {
		return "", nil, fmt.Errorf("unsupported predicate field: %s", predicate.Field)
	}

	switch len(predicate.Values) {
	case 0:
		return "", nil, fmt.Errorf("predicate on %s has no values", predicate.Field)
	case 1:
		return searchChunksByCategoryQuery, []any{vector, predicate.Values[0], limit}, nil
	default:
		return searchChunksByCategoriesQuery, []any{vector, predicate.Values, limit}, nil
	}
}
