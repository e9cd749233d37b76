// Package ledger keeps per-account transaction histories and answers
// balance questions about them at any calendar date.
package ledger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hance08/accrue/internal/constants"
	"github.com/hance08/accrue/internal/model"
	"github.com/shopspring/decimal"
)

// Journal receives every accepted transaction before the ledger applies it.
// A non-nil error rejects the transaction.
type Journal interface {
	AppendTransaction(accountID string, txn model.Transaction) error
}

type Ledger struct {
	mu       sync.RWMutex
	accounts map[string]*account
	journal  Journal
}

type Option func(*Ledger)

func WithJournal(j Journal) Option {
	return func(l *Ledger) {
		l.journal = j
	}
}

func New(opts ...Option) *Ledger {
	l := &Ledger{accounts: make(map[string]*account)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RecordTransaction validates and appends a transaction to the account,
// creating the account on its first successful write. Withdrawals are
// checked against the account's current total balance regardless of the
// transaction date. Either the whole write happens or nothing does.
func (l *Ledger) RecordTransaction(accountID string, date time.Time, txnType model.TransactionType, amount decimal.Decimal) (model.Transaction, error) {
	if !txnType.Valid() {
		return model.Transaction{}, fmt.Errorf("%w: %q", ErrInvalidType, string(txnType))
	}
	if !amount.IsPositive() {
		return model.Transaction{}, fmt.Errorf("%s amount %s: %w", strings.ToLower(txnType.Label()), amount.String(), ErrInvalidAmount)
	}

	date = model.DateOf(date)

	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[accountID]
	balance := decimal.Zero
	if ok {
		balance = acc.balance
	}

	if txnType == model.TypeWithdrawal && balance.Sub(amount).IsNegative() {
		return model.Transaction{}, fmt.Errorf("withdraw %s from %s (balance %s): %w",
			amount.StringFixed(2), accountID, balance.StringFixed(2), ErrInsufficientFunds)
	}

	var existing []model.Transaction
	if ok {
		existing = acc.txns
	}

	txn := model.Transaction{
		Date:   date,
		ID:     nextID(existing, date),
		Type:   txnType,
		Amount: amount,
	}

	if l.journal != nil {
		if err := l.journal.AppendTransaction(accountID, txn); err != nil {
			return model.Transaction{}, fmt.Errorf("failed to journal transaction %s: %w", txn.ID, err)
		}
	}

	if !ok {
		acc = &account{id: accountID, balance: decimal.Zero}
		l.accounts[accountID] = acc
	}
	acc.txns = append(acc.txns, txn)
	acc.balance = acc.balance.Add(txn.Signed())

	return txn, nil
}

// NextTransactionID returns the id the next transaction dated on date
// would receive for this account.
func (l *Ledger) NextTransactionID(accountID string, date time.Time) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var txns []model.Transaction
	if acc, ok := l.accounts[accountID]; ok {
		txns = acc.txns
	}
	return nextID(txns, model.DateOf(date))
}

// nextID takes the highest suffix already used on that date plus one, so
// ids stay unique even if same-day entries were not appended in suffix order.
func nextID(txns []model.Transaction, date time.Time) string {
	prefix := date.Format(constants.InputDateLayout)
	highest := 0
	for _, t := range txns {
		if !t.Date.Equal(date) {
			continue
		}
		if n := suffixOf(t.ID); n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%s%02d", prefix, constants.TxnIDSeparator, highest+1)
}

func suffixOf(id string) int {
	i := strings.LastIndex(id, constants.TxnIDSeparator)
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return 0
	}
	return n
}

// Balance is the account's current total balance.
func (l *Ledger) Balance(accountID string) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if acc, ok := l.accounts[accountID]; ok {
		return acc.balance
	}
	return decimal.Zero
}

// BalanceAsOf sums every transaction dated on or before date, whatever
// order they were inserted in.
func (l *Ledger) BalanceAsOf(accountID string, date time.Time) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	acc, ok := l.accounts[accountID]
	if !ok {
		return decimal.Zero
	}

	date = model.DateOf(date)
	total := decimal.Zero
	for _, t := range acc.txns {
		if !t.Date.After(date) {
			total = total.Add(t.Signed())
		}
	}
	return total
}

// StartingBalanceForMonth is the balance carried into month m.
func (l *Ledger) StartingBalanceForMonth(accountID string, m model.Month) decimal.Decimal {
	return l.BalanceAsOf(accountID, m.PreviousMonthEnd())
}

// TransactionsForMonth returns the month's transactions ascending by date,
// keeping insertion order between transactions on the same day.
func (l *Ledger) TransactionsForMonth(accountID string, m model.Month) []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	acc, ok := l.accounts[accountID]
	if !ok {
		return nil
	}

	var out []model.Transaction
	for _, t := range acc.txns {
		if m.Contains(t.Date) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Transactions returns a copy of the account's history in insertion order.
func (l *Ledger) Transactions(accountID string) []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	acc, ok := l.accounts[accountID]
	if !ok {
		return nil
	}
	out := make([]model.Transaction, len(acc.txns))
	copy(out, acc.txns)
	return out
}

func (l *Ledger) Exists(accountID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.accounts[accountID]
	return ok
}

func (l *Ledger) Account(accountID string) (Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	acc, ok := l.accounts[accountID]
	if !ok {
		return Account{}, fmt.Errorf("account '%s': %w", accountID, ErrAccountNotFound)
	}
	return acc.snapshot(), nil
}

// Accounts returns snapshots of every account ordered by id.
func (l *Ledger) Accounts() []Account {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Account, 0, len(l.accounts))
	for _, acc := range l.accounts {
		out = append(out, acc.snapshot())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
