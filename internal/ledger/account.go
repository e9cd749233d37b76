package ledger

import (
	"github.com/hance08/accrue/internal/model"
	"github.com/shopspring/decimal"
)

// Account is a read-only snapshot of an account's state.
type Account struct {
	ID           string
	Balance      decimal.Decimal
	Transactions []model.Transaction
}

type account struct {
	id      string
	balance decimal.Decimal
	txns    []model.Transaction
}

func (a *account) snapshot() Account {
	out := make([]model.Transaction, len(a.txns))
	copy(out, a.txns)
	return Account{ID: a.id, Balance: a.balance, Transactions: out}
}
