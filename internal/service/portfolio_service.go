package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// PortfolioService defines the business logic for the portfolio singleton.
type PortfolioService interface {
	// Get returns the portfolio record, creating the seeded default on
	// first access.
	Get(ctx context.Context) (*model.PortfolioRecord, error)

	// Replace overwrites the whole document. Last writer wins; two
	// admin tabs editing concurrently can clobber each other.
	Replace(ctx context.Context, record *model.PortfolioRecord) error
}
