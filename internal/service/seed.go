package service

import (
	"fmt"
	"time"

	"github.com/hance08/accrue/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type seedTransaction struct {
	date    time.Time
	account string
	typ     model.TransactionType
	amount  string
}

type seedRule struct {
	date time.Time
	id   string
	rate string
}

var demoTransactions = []seedTransaction{
	{model.Date(2023, time.May, 5), "AC001", model.TypeDeposit, "100.00"},
	{model.Date(2023, time.June, 1), "AC001", model.TypeDeposit, "150.00"},
	{model.Date(2023, time.June, 26), "AC001", model.TypeWithdrawal, "20.00"},
	{model.Date(2023, time.June, 26), "AC001", model.TypeWithdrawal, "100.00"},
}

var demoRules = []seedRule{
	{model.Date(2023, time.January, 1), "RULE01", "1.95"},
	{model.Date(2023, time.May, 20), "RULE02", "1.90"},
	{model.Date(2023, time.June, 15), "RULE03", "2.20"},
}

// SeedDemo loads the demo account AC001 and three interest rules. It goes
// through the ledger and schedule so the journal sees the same writes.
func (s *Service) SeedDemo() error {
	for _, r := range demoRules {
		if _, err := s.schedule.AddRule(r.date, r.id, decimal.RequireFromString(r.rate)); err != nil {
			return fmt.Errorf("failed to seed rule %s: %w", r.id, err)
		}
	}

	for _, t := range demoTransactions {
		if _, err := s.ledger.RecordTransaction(t.account, t.date, t.typ, decimal.RequireFromString(t.amount)); err != nil {
			return fmt.Errorf("failed to seed transaction for %s: %w", t.account, err)
		}
	}

	s.logger.Info("demo data loaded",
		zap.Int("transactions", len(demoTransactions)),
		zap.Int("rules", len(demoRules)))
	return nil
}
