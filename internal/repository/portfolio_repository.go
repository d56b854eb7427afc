package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// PortfolioRepository defines the persistence interface for the
// portfolio singleton. It is defined here (in repository) to avoid an
// import cycle with service.
type PortfolioRepository interface {
	// Get returns the singleton portfolio record, seeding seed if the
	// row does not exist yet.
	Get(ctx context.Context, seed *model.PortfolioRecord) (*model.PortfolioRecord, error)

	// Replace overwrites the entire portfolio document.
	Replace(ctx context.Context, record *model.PortfolioRecord) error
}

// PgPortfolioRepository stores the portfolio record as a single JSONB
// document in the portfolio table.
type PgPortfolioRepository struct {
	pool *pgxpool.Pool
}

// NewPgPortfolioRepository creates a PgPortfolioRepository backed by the given pool.
func NewPgPortfolioRepository(pool *pgxpool.Pool) *PgPortfolioRepository {
	return &PgPortfolioRepository{pool: pool}
}

var _ PortfolioRepository = (*PgPortfolioRepository)(nil)

// Get returns the singleton document. When the row is missing the seed
// document is inserted with ON CONFLICT DO NOTHING and read back, so
// concurrent first reads converge on a single row.
func (r *PgPortfolioRepository) Get(ctx context.Context, seed *model.PortfolioRecord) (*model.PortfolioRecord, error) {
	record, err := r.get(ctx)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	doc, err := json.Marshal(seed)
	if err != nil {
		return nil, fmt.Errorf("marshal seed portfolio: %w", err)
	}
	if _, err := r.pool.Exec(ctx,
		`INSERT INTO portfolio (id, doc) VALUES (1, $1) ON CONFLICT (id) DO NOTHING`,
		doc,
	); err != nil {
		return nil, fmt.Errorf("seed portfolio: %w", err)
	}
	return r.get(ctx)
}

func (r *PgPortfolioRepository) get(ctx context.Context) (*model.PortfolioRecord, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM portfolio WHERE id = 1`).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var record model.PortfolioRecord
	if err := json.Unmarshal(doc, &record); err != nil {
		return nil, fmt.Errorf("unmarshal portfolio: %w", err)
	}
	return &record, nil
}

// Replace upserts the whole document. Fields absent from record are
// gone after this call; there is no merge.
func (r *PgPortfolioRepository) Replace(ctx context.Context, record *model.PortfolioRecord) error {
	doc, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal portfolio: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO portfolio (id, doc, updated_at) VALUES (1, $1, NOW())
		 ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()`,
		doc,
	)
	return err
}
