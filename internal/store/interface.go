package store

import "github.com/hance08/accrue/internal/model"

type Repository interface {
	// Transaction Operations
	AppendTransaction(accountID string, txn model.Transaction) error
	ListTransactions(accountID string) ([]model.Transaction, error)
	AccountSummaries() ([]AccountSummary, error)

	// Interest Rule Operations
	SaveRule(rule model.InterestRule) error
	ListRules() ([]model.InterestRule, error)

	Stats() (Stats, error)
	Close() error
}
