package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hance08/accrue/internal/constants"
	"github.com/hance08/accrue/internal/model"
	"github.com/shopspring/decimal"
)

// AppendTransaction journals a transaction, creating the account row on
// first use. Both writes commit together.
func (s *Store) AppendTransaction(accountID string, txn model.Transaction) error {
	return s.ExecTx(func(repo Repository) error {
		tx := repo.(*Store)

		_, err := tx.db.Exec(`
			INSERT INTO accounts (id, created_at)
			VALUES (?, ?)
			ON CONFLICT (id) DO NOTHING
		`, accountID, time.Now().Unix())
		if err != nil {
			return fmt.Errorf("failed to upsert account '%s': %w", accountID, err)
		}

		_, err = tx.db.Exec(`
			INSERT INTO transactions (account_id, txn_id, txn_date, type, amount)
			VALUES (?, ?, ?, ?, ?)
		`, accountID, txn.ID, txn.Date.Format(constants.DateFormat), string(txn.Type), txn.Amount)
		if err != nil {
			if isConstraintErr(err) {
				return fmt.Errorf("transaction %s for '%s': %w", txn.ID, accountID, ErrConstraintViolation)
			}
			return fmt.Errorf("failed to insert transaction : %w", err)
		}

		return nil
	})
}

// ListTransactions returns the account's journal in insertion order.
func (s *Store) ListTransactions(accountID string) ([]model.Transaction, error) {
	var exists bool
	if err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE id = ?)", accountID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check account existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("account '%s': %w", accountID, ErrRecordNotFound)
	}

	rows, err := s.db.Query(`
		SELECT txn_id, txn_date, type, amount
		FROM transactions
		WHERE account_id = ?
		ORDER BY seq
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var txns []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, rows.Err()
}

// AccountSummaries folds each account's journal into a balance.
func (s *Store) AccountSummaries() ([]AccountSummary, error) {
	rows, err := s.db.Query(`
		SELECT a.id, t.txn_id, t.txn_date, t.type, t.amount
		FROM accounts a
		INNER JOIN transactions t ON t.account_id = a.id
		ORDER BY a.id, t.seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var summaries []AccountSummary
	for rows.Next() {
		var accountID string
		var txn model.Transaction
		var date, typ string

		if err := rows.Scan(&accountID, &txn.ID, &date, &typ, &txn.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if txn.Date, err = time.Parse(constants.DateFormat, date); err != nil {
			return nil, fmt.Errorf("bad date %q in journal: %w", date, err)
		}
		txn.Type = model.TransactionType(typ)

		if len(summaries) == 0 || summaries[len(summaries)-1].ID != accountID {
			summaries = append(summaries, AccountSummary{ID: accountID, Balance: decimal.Zero})
		}
		sum := &summaries[len(summaries)-1]
		sum.TransactionCount++
		sum.Balance = sum.Balance.Add(txn.Signed())
		if txn.Date.After(sum.LastActivity) {
			sum.LastActivity = txn.Date
		}
	}

	return summaries, rows.Err()
}

func scanTransaction(rows *sql.Rows) (model.Transaction, error) {
	var txn model.Transaction
	var date, typ string

	if err := rows.Scan(&txn.ID, &date, &typ, &txn.Amount); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan transaction: %w", err)
	}

	d, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("bad date %q in journal: %w", date, err)
	}
	txn.Date = d
	txn.Type = model.TransactionType(typ)

	return txn, nil
}
