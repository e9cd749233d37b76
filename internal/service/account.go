package service

import (
	"fmt"

	"github.com/hance08/accrue/internal/store"
)

type AccountService struct {
	repo store.Repository
}

func NewAccountService(repo store.Repository) *AccountService {
	return &AccountService{repo: repo}
}

// Summaries reads per-account totals from the journal.
func (as *AccountService) Summaries() ([]store.AccountSummary, error) {
	summaries, err := as.repo.AccountSummaries()
	if err != nil {
		return nil, fmt.Errorf("failed to load account summaries: %w", err)
	}
	return summaries, nil
}

func (as *AccountService) Stats() (store.Stats, error) {
	stats, err := as.repo.Stats()
	if err != nil {
		return store.Stats{}, fmt.Errorf("failed to load journal stats: %w", err)
	}
	return stats, nil
}
