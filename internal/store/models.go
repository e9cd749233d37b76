package store

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountSummary struct {
	ID               string
	TransactionCount int
	Balance          decimal.Decimal
	LastActivity     time.Time
}

type Stats struct {
	Accounts     int
	Transactions int
	Rules        int
}
