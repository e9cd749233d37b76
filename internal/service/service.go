package service

import (
	"errors"
	"time"

	"github.com/hance08/accrue/internal/interest"
	"github.com/hance08/accrue/internal/ledger"
	"github.com/hance08/accrue/internal/rates"
	"github.com/hance08/accrue/internal/statement"
	"github.com/hance08/accrue/internal/store"
	"go.uber.org/zap"
)

var ErrFutureDate = errors.New("date is in the future")

// Clock returns the current time. Tests replace it to pin "today".
type Clock func() time.Time

type Config struct {
	Interest interest.Config
	Clock    Clock
}

type Service struct {
	Transaction *TransactionService
	Rule        *RuleService
	Statement   *StatementService
	Account     *AccountService

	ledger   *ledger.Ledger
	schedule *rates.Schedule
	logger   *zap.Logger
}

// NewService wires the ledger and rate schedule to the journal store and
// builds the statement pipeline on top of them.
func NewService(repo store.Repository, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	l := ledger.New(ledger.WithJournal(repo))
	s := rates.NewSchedule(rates.WithJournal(repo))
	engine := interest.NewEngine(l, s, cfg.Interest, logger.Named("interest"))
	assembler := statement.NewAssembler(l, engine)

	return &Service{
		Transaction: NewTransactionService(l, cfg.Clock, logger.Named("transaction")),
		Rule:        NewRuleService(s, logger.Named("rule")),
		Statement:   NewStatementService(l, assembler),
		Account:     NewAccountService(repo),
		ledger:      l,
		schedule:    s,
		logger:      logger,
	}
}
