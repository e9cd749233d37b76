package views

import (
	"github.com/hance08/accrue/internal/model"
	"github.com/hance08/accrue/internal/service"
	"github.com/hance08/accrue/internal/utils"
	"github.com/pterm/pterm"
)

func HistoryRows(lines []service.HistoryLine) pterm.TableData {
	rows := pterm.TableData{{"Date", "Txn Id", "Type", "Amount", "Balance"}}
	for _, line := range lines {
		amount := utils.FormatAmount(line.Amount)
		if line.Type == model.TypeWithdrawal {
			amount = pterm.Red(amount)
		} else {
			amount = pterm.Green(amount)
		}
		rows = append(rows, []string{
			utils.FormatDate(line.Date),
			line.ID,
			string(line.Type),
			amount,
			utils.FormatAmount(line.Balance),
		})
	}
	return rows
}

// RenderHistory prints every transaction of an account.
func RenderHistory(accountID string, lines []service.HistoryLine) error {
	pterm.DefaultSection.Printf("Account: %s", accountID)

	if len(lines) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	return pterm.DefaultTable.WithHasHeader().WithData(HistoryRows(lines)).Render()
}
