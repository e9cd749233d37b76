package service

import (
	"time"

	"github.com/hance08/accrue/internal/model"
	"github.com/shopspring/decimal"
)

// TransactionInput is a validated request to record a deposit or withdrawal.
type TransactionInput struct {
	Date      time.Time
	AccountID string
	Type      model.TransactionType
	Amount    decimal.Decimal
}

// RuleInput is a validated request to define an interest rule.
type RuleInput struct {
	Date   time.Time
	RuleID string
	Rate   decimal.Decimal
}

// StatementInput is a validated statement request.
type StatementInput struct {
	AccountID string
	Month     model.Month
}

// HistoryLine is a transaction with the balance right after it, in
// insertion order.
type HistoryLine struct {
	model.Transaction
	Balance decimal.Decimal
}
