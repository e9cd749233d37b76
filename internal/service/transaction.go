package service

import (
	"fmt"

	"github.com/hance08/accrue/internal/ledger"
	"github.com/hance08/accrue/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TransactionService struct {
	ledger *ledger.Ledger
	clock  Clock
	logger *zap.Logger
}

func NewTransactionService(l *ledger.Ledger, clock Clock, logger *zap.Logger) *TransactionService {
	return &TransactionService{ledger: l, clock: clock, logger: logger}
}

// Record books a deposit or withdrawal. Dates after today are refused;
// everything else is checked by the ledger.
func (ts *TransactionService) Record(input TransactionInput) (model.Transaction, error) {
	today := model.DateOf(ts.clock())
	if model.DateOf(input.Date).After(today) {
		return model.Transaction{}, fmt.Errorf("%w: %s", ErrFutureDate, input.Date.Format("20060102"))
	}

	txn, err := ts.ledger.RecordTransaction(input.AccountID, input.Date, input.Type, input.Amount)
	if err != nil {
		ts.logger.Debug("transaction rejected",
			zap.String("account", input.AccountID),
			zap.String("type", string(input.Type)),
			zap.String("amount", input.Amount.String()),
			zap.Error(err))
		return model.Transaction{}, err
	}

	ts.logger.Info("transaction recorded",
		zap.String("account", input.AccountID),
		zap.String("id", txn.ID),
		zap.String("type", string(txn.Type)),
		zap.String("amount", txn.Amount.StringFixed(2)))

	return txn, nil
}

// History lists every transaction of the account in insertion order with
// the balance after each one. An unknown account has an empty history.
func (ts *TransactionService) History(accountID string) []HistoryLine {
	txns := ts.ledger.Transactions(accountID)

	lines := make([]HistoryLine, 0, len(txns))
	balance := decimal.Zero
	for _, txn := range txns {
		balance = balance.Add(txn.Signed())
		lines = append(lines, HistoryLine{Transaction: txn, Balance: balance})
	}
	return lines
}

func (ts *TransactionService) Balance(accountID string) decimal.Decimal {
	return ts.ledger.Balance(accountID)
}
