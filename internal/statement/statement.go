// Package statement assembles a monthly account statement: the month's
// transactions, the accrued interest as a final line, and a running
// balance on every line.
package statement

import (
	"github.com/hance08/accrue/internal/interest"
	"github.com/hance08/accrue/internal/model"
	"github.com/shopspring/decimal"
)

type Source interface {
	StartingBalanceForMonth(accountID string, m model.Month) decimal.Decimal
	TransactionsForMonth(accountID string, m model.Month) []model.Transaction
}

type Accruer interface {
	MonthlyInterest(accountID string, m model.Month) interest.Accrual
}

// Line is one statement row. The interest line has an empty ID.
type Line struct {
	model.Transaction
	RunningBalance decimal.Decimal
}

type Summary struct {
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	NetChange        decimal.Decimal
	DepositCount     int
	WithdrawalCount  int
}

type Statement struct {
	AccountID      string
	Month          model.Month
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	Lines          []Line
	Accrual        interest.Accrual
	Summary        Summary
}

func (s Statement) Interest() decimal.Decimal {
	return s.Accrual.Interest
}

type Assembler struct {
	source  Source
	accruer Accruer
}

func NewAssembler(source Source, accruer Accruer) *Assembler {
	return &Assembler{source: source, accruer: accruer}
}

// Build never writes to the ledger; the interest line exists only in the
// returned statement.
func (a *Assembler) Build(accountID string, m model.Month) Statement {
	txns := a.source.TransactionsForMonth(accountID, m)
	opening := a.source.StartingBalanceForMonth(accountID, m)
	accrual := a.accruer.MonthlyInterest(accountID, m)

	txns = append(txns, model.Transaction{
		Date:   m.LastDay(),
		Type:   model.TypeInterest,
		Amount: accrual.Interest,
	})

	st := Statement{
		AccountID:      accountID,
		Month:          m,
		OpeningBalance: opening,
		Accrual:        accrual,
		Lines:          make([]Line, 0, len(txns)),
		Summary: Summary{
			TotalDeposits:    decimal.Zero,
			TotalWithdrawals: decimal.Zero,
		},
	}

	running := opening
	for _, t := range txns {
		running = running.Add(t.Signed())
		st.Lines = append(st.Lines, Line{Transaction: t, RunningBalance: running})

		switch t.Type {
		case model.TypeDeposit:
			st.Summary.TotalDeposits = st.Summary.TotalDeposits.Add(t.Amount)
			st.Summary.DepositCount++
		case model.TypeWithdrawal:
			st.Summary.TotalWithdrawals = st.Summary.TotalWithdrawals.Add(t.Amount)
			st.Summary.WithdrawalCount++
		}
	}

	st.ClosingBalance = running
	st.Summary.NetChange = running.Sub(opening)

	return st
}
