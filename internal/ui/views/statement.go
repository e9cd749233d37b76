package views

import (
	"github.com/hance08/accrue/internal/statement"
	"github.com/hance08/accrue/internal/utils"
	"github.com/pterm/pterm"
)

var statementHeader = []string{"Date", "Txn Id", "Type", "Amount", "Balance"}

// StatementRows lays out a statement as table rows, header first.
func StatementRows(st statement.Statement) pterm.TableData {
	rows := pterm.TableData{statementHeader}
	for _, line := range st.Lines {
		rows = append(rows, []string{
			utils.FormatDate(line.Date),
			line.ID,
			string(line.Type),
			utils.FormatAmount(line.Amount),
			utils.FormatAmount(line.RunningBalance),
		})
	}
	return rows
}

func RenderStatement(st statement.Statement) error {
	pterm.DefaultSection.Printf("Account: %s (%s)", st.AccountID, st.Month)

	if err := pterm.DefaultTable.WithHasHeader().WithData(StatementRows(st)).Render(); err != nil {
		return err
	}

	if st.Accrual.Partial() {
		pterm.Warning.Printf("Interest is partial: %v\n", st.Accrual.Err)
	}
	pterm.Info.Printf("Opening %s, deposits %s (%d), withdrawals %s (%d), interest %s, closing %s\n",
		utils.FormatAmount(st.OpeningBalance),
		utils.FormatAmount(st.Summary.TotalDeposits), st.Summary.DepositCount,
		utils.FormatAmount(st.Summary.TotalWithdrawals), st.Summary.WithdrawalCount,
		utils.FormatAmount(st.Interest()),
		utils.FormatAmount(st.ClosingBalance),
	)
	return nil
}
