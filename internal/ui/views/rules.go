package views

import (
	"github.com/hance08/accrue/internal/model"
	"github.com/hance08/accrue/internal/utils"
	"github.com/pterm/pterm"
)

func RuleRows(rules []model.InterestRule) pterm.TableData {
	rows := pterm.TableData{{"Date", "RuleId", "Rate (%)"}}
	for _, r := range rules {
		rows = append(rows, []string{
			utils.FormatDate(r.EffectiveDate),
			r.ID,
			utils.FormatRate(r.Rate),
		})
	}
	return rows
}

func RenderRules(rules []model.InterestRule) error {
	pterm.DefaultSection.Println("Interest rules")

	if len(rules) == 0 {
		pterm.Warning.Println("No interest rules defined")
		return nil
	}

	return pterm.DefaultTable.WithHasHeader().WithData(RuleRows(rules)).Render()
}
