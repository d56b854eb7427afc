package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// portfolioServiceImpl is the production implementation of PortfolioService.
type portfolioServiceImpl struct {
	repo repository.PortfolioRepository
}

// NewPortfolioService creates a PortfolioService backed by the given repository.
func NewPortfolioService(repo repository.PortfolioRepository) PortfolioService {
	return &portfolioServiceImpl{repo: repo}
}

func (s *portfolioServiceImpl) Get(ctx context.Context) (*model.PortfolioRecord, error) {
	return s.repo.Get(ctx, model.DefaultPortfolio())
}

func (s *portfolioServiceImpl) Replace(ctx context.Context, record *model.PortfolioRecord) error {
	return s.repo.Replace(ctx, record)
}
