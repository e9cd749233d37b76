package store

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/hance08/accrue/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	s, err := NewStore(name, os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func txn(id string, date time.Time, typ model.TransactionType, amount string) model.Transaction {
	return model.Transaction{
		ID:     id,
		Date:   date,
		Type:   typ,
		Amount: decimal.RequireFromString(amount),
	}
}

func TestNewStoreRejectsEmptyName(t *testing.T) {
	_, err := NewStore("  ", os.DirFS("../.."))
	assert.Error(t, err)
}

func TestAppendAndListTransactions(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AppendTransaction("AC001", txn("20230505-01", model.Date(2023, 5, 5), model.TypeDeposit, "100.00")))
	require.NoError(t, s.AppendTransaction("AC001", txn("20230626-01", model.Date(2023, 6, 26), model.TypeWithdrawal, "20.50")))

	got, err := s.ListTransactions("AC001")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "20230505-01", got[0].ID)
	assert.Equal(t, model.Date(2023, 5, 5), got[0].Date)
	assert.Equal(t, model.TypeDeposit, got[0].Type)
	assert.True(t, decimal.RequireFromString("100").Equal(got[0].Amount))

	assert.Equal(t, model.TypeWithdrawal, got[1].Type)
	assert.True(t, decimal.RequireFromString("20.50").Equal(got[1].Amount))
}

func TestListTransactionsUnknownAccount(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ListTransactions("NOBODY")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestAppendDuplicateTransactionID(t *testing.T) {
	s := newTestStore(t)
	entry := txn("20230505-01", model.Date(2023, 5, 5), model.TypeDeposit, "1")

	require.NoError(t, s.AppendTransaction("AC001", entry))
	err := s.AppendTransaction("AC001", entry)
	assert.ErrorIs(t, err, ErrConstraintViolation)

	// same id on another account is fine
	require.NoError(t, s.AppendTransaction("AC002", entry))

	st, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, Stats{Accounts: 2, Transactions: 2, Rules: 0}, st)
}

func TestAppendRejectsUnknownType(t *testing.T) {
	s := newTestStore(t)

	err := s.AppendTransaction("AC001", txn("20230505-01", model.Date(2023, 5, 5), model.TransactionType("X"), "1"))
	require.Error(t, err)

	// the account row is rolled back with the failed insert
	st, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, st.Accounts)
}

func TestAccountSummaries(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AppendTransaction("AC002", txn("20230601-01", model.Date(2023, 6, 1), model.TypeDeposit, "10")))
	require.NoError(t, s.AppendTransaction("AC001", txn("20230505-01", model.Date(2023, 5, 5), model.TypeDeposit, "100.00")))
	require.NoError(t, s.AppendTransaction("AC001", txn("20230626-01", model.Date(2023, 6, 26), model.TypeWithdrawal, "20.00")))
	require.NoError(t, s.AppendTransaction("AC001", txn("20230630-01", model.Date(2023, 6, 30), model.TypeInterest, "0.39")))

	got, err := s.AccountSummaries()
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "AC001", got[0].ID)
	assert.Equal(t, 3, got[0].TransactionCount)
	assert.True(t, decimal.RequireFromString("80.39").Equal(got[0].Balance), got[0].Balance.String())
	assert.Equal(t, model.Date(2023, 6, 30), got[0].LastActivity)

	assert.Equal(t, "AC002", got[1].ID)
	assert.True(t, decimal.RequireFromString("10").Equal(got[1].Balance))
}

func TestSaveRuleUpserts(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveRule(model.InterestRule{EffectiveDate: model.Date(2023, 6, 15), ID: "RULE03", Rate: decimal.RequireFromString("2.20")}))
	require.NoError(t, s.SaveRule(model.InterestRule{EffectiveDate: model.Date(2023, 1, 1), ID: "RULE01", Rate: decimal.RequireFromString("1.95")}))
	require.NoError(t, s.SaveRule(model.InterestRule{EffectiveDate: model.Date(2023, 6, 15), ID: "RULE03B", Rate: decimal.RequireFromString("2.25")}))

	rules, err := s.ListRules()
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, "RULE01", rules[0].ID)
	assert.Equal(t, model.Date(2023, 1, 1), rules[0].EffectiveDate)
	assert.Equal(t, "RULE03B", rules[1].ID)
	assert.True(t, decimal.RequireFromString("2.25").Equal(rules[1].Rate))
}

func TestExecTxRollsBack(t *testing.T) {
	s := newTestStore(t)

	err := s.ExecTx(func(repo Repository) error {
		if err := repo.SaveRule(model.InterestRule{EffectiveDate: model.Date(2023, 1, 1), ID: "R", Rate: decimal.NewFromInt(1)}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	rules, err := s.ListRules()
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestStoresAreIsolatedByName(t *testing.T) {
	a, err := NewStore("isolated_a", os.DirFS("../.."))
	require.NoError(t, err)
	defer a.Close()
	b, err := NewStore("isolated_b", os.DirFS("../.."))
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, a.SaveRule(model.InterestRule{EffectiveDate: model.Date(2023, 1, 1), ID: "R", Rate: decimal.NewFromInt(1)}))

	st, err := b.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, st.Rules)
}
