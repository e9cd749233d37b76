package views

import (
	"fmt"

	"github.com/hance08/accrue/internal/store"
	"github.com/hance08/accrue/internal/utils"
	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath   string
	AppDataDir   string
	DatabaseName string
	SeedDemo     bool
	DaysInYear   int
	Scale        int32
	LogLevel     string
	Stats        store.Stats
}

func RenderSystemInfo(data SystemInfoItem) error {
	seed := pterm.Gray("off")
	if data.SeedDemo {
		seed = pterm.Green("on")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"AppData Directory", data.AppDataDir},
		{"Database", data.DatabaseName + " (in-memory)"},
		{"Demo Data", seed},
		{"Day Count", fmt.Sprintf("actual/%d", data.DaysInYear)},
		{"Interest Scale", fmt.Sprintf("%d decimals", data.Scale)},
		{"Log Level", data.LogLevel},
		{"Journal", fmt.Sprintf("%d accounts, %d transactions, %d rules",
			data.Stats.Accounts, data.Stats.Transactions, data.Stats.Rules)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func AccountSummaryRows(summaries []store.AccountSummary) pterm.TableData {
	rows := pterm.TableData{{"Account", "Transactions", "Balance", "Last Activity"}}
	for _, s := range summaries {
		rows = append(rows, []string{
			s.ID,
			fmt.Sprintf("%d", s.TransactionCount),
			utils.FormatAmount(s.Balance),
			utils.FormatDate(s.LastActivity),
		})
	}
	return rows
}

func RenderAccountSummaries(summaries []store.AccountSummary) error {
	if len(summaries) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	pterm.DefaultSection.Println("Accounts")
	if err := pterm.DefaultTable.WithHasHeader().WithData(AccountSummaryRows(summaries)).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d accounts\n", len(summaries))
	return nil
}
