package service

import (
	"fmt"

	"github.com/hance08/accrue/internal/ledger"
	"github.com/hance08/accrue/internal/model"
	"github.com/hance08/accrue/internal/statement"
)

type StatementService struct {
	ledger    *ledger.Ledger
	assembler *statement.Assembler
}

func NewStatementService(l *ledger.Ledger, a *statement.Assembler) *StatementService {
	return &StatementService{ledger: l, assembler: a}
}

// Monthly builds the statement of one account for one month.
func (ss *StatementService) Monthly(accountID string, m model.Month) (statement.Statement, error) {
	if !ss.ledger.Exists(accountID) {
		return statement.Statement{}, fmt.Errorf("%w: %s", ledger.ErrAccountNotFound, accountID)
	}
	return ss.assembler.Build(accountID, m), nil
}
