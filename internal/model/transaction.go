package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeDeposit    TransactionType = "D"
	TypeWithdrawal TransactionType = "W"
	TypeInterest   TransactionType = "I"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TypeDeposit, TypeWithdrawal, TypeInterest:
		return true
	default:
		return false
	}
}

func (t TransactionType) Label() string {
	switch t {
	case TypeDeposit:
		return "Deposit"
	case TypeWithdrawal:
		return "Withdrawal"
	case TypeInterest:
		return "Interest"
	default:
		return "Unknown"
	}
}

// Transaction is an immutable ledger entry. Date carries no time of day.
type Transaction struct {
	Date   time.Time
	ID     string
	Type   TransactionType
	Amount decimal.Decimal
}

// Signed returns the amount with the sign it contributes to a balance:
// withdrawals are negative, deposits and interest credits positive.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeWithdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

// SumSigned adds up the signed amounts of txns.
func SumSigned(txns []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Signed())
	}
	return total
}
