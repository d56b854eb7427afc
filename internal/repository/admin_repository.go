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

// AdminRepository defines the persistence interface for the admin
// credential singleton.
type AdminRepository interface {
	// Get returns the credential, seeding seed if none is stored yet.
	Get(ctx context.Context, seed *model.AdminCredential) (*model.AdminCredential, error)

	// Replace overwrites the stored credential.
	Replace(ctx context.Context, cred *model.AdminCredential) error
}

// PgAdminRepository stores the credential as a single JSONB document
// in the admin table.
type PgAdminRepository struct {
	pool *pgxpool.Pool
}

// NewPgAdminRepository creates a PgAdminRepository backed by the given pool.
func NewPgAdminRepository(pool *pgxpool.Pool) *PgAdminRepository {
	return &PgAdminRepository{pool: pool}
}

var _ AdminRepository = (*PgAdminRepository)(nil)

// Get returns the stored credential, inserting seed first when the row
// is missing. ON CONFLICT DO NOTHING keeps concurrent first reads from
// producing duplicate singletons.
func (r *PgAdminRepository) Get(ctx context.Context, seed *model.AdminCredential) (*model.AdminCredential, error) {
	cred, err := r.get(ctx)
	if err == nil {
		return cred, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	doc, err := json.Marshal(seed)
	if err != nil {
		return nil, fmt.Errorf("marshal seed credential: %w", err)
	}
	if _, err := r.pool.Exec(ctx,
		`INSERT INTO admin (id, doc) VALUES (1, $1) ON CONFLICT (id) DO NOTHING`,
		doc,
	); err != nil {
		return nil, fmt.Errorf("seed credential: %w", err)
	}
	return r.get(ctx)
}

func (r *PgAdminRepository) get(ctx context.Context) (*model.AdminCredential, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM admin WHERE id = 1`).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var cred model.AdminCredential
	if err := json.Unmarshal(doc, &cred); err != nil {
		return nil, fmt.Errorf("unmarshal credential: %w", err)
	}
	return &cred, nil
}

// Replace upserts the credential document.
func (r *PgAdminRepository) Replace(ctx context.Context, cred *model.AdminCredential) error {
	doc, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("marshal credential: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO admin (id, doc, updated_at) VALUES (1, $1, NOW())
		 ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()`,
		doc,
	)
	return err
}
