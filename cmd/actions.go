package cmd

import (
	"time"

	"github.com/hance08/accrue/internal/service"
	"github.com/hance08/accrue/internal/ui/views"
	"github.com/hance08/accrue/internal/validation"
	"github.com/pterm/pterm"
)

// actions runs one parsed menu line against the services. The menu and
// replay commands share it.
type actions struct {
	svc   *service.Service
	now   func() time.Time
	quiet bool
}

func newActions(svc *service.Service) *actions {
	return &actions{svc: svc, now: time.Now}
}

func (a *actions) inputTransaction(line string) error {
	input, err := validation.ParseTransactionLine(line)
	if err != nil {
		return err
	}

	txn, err := a.svc.Transaction.Record(input)
	if err != nil {
		return err
	}

	if a.quiet {
		return nil
	}
	pterm.Success.Printf("Recorded %s %s of %s\n", txn.ID, txn.Type.Label(), txn.Amount.StringFixed(2))
	return views.RenderHistory(input.AccountID, a.svc.Transaction.History(input.AccountID))
}

func (a *actions) defineRule(line string) error {
	input, err := validation.ParseRuleLine(line)
	if err != nil {
		return err
	}

	if _, err := a.svc.Rule.Define(input); err != nil {
		return err
	}

	if a.quiet {
		return nil
	}
	return views.RenderRules(a.svc.Rule.List())
}

func (a *actions) printStatement(line string) error {
	input, err := validation.ParseStatementLine(line, a.now())
	if err != nil {
		return err
	}

	st, err := a.svc.Statement.Monthly(input.AccountID, input.Month)
	if err != nil {
		return err
	}
	return views.RenderStatement(st)
}
