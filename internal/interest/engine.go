// Package interest computes monthly interest on an account by splitting
// the month into sub-periods over which both the balance and the annual
// rate stay constant, and summing simple interest across them.
package interest

import (
	"errors"
	"time"

	"github.com/hance08/accrue/internal/constants"
	"github.com/hance08/accrue/internal/model"
	"github.com/hance08/accrue/internal/rates"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var hundred = decimal.NewFromInt(100)

// BalanceSource is the part of the ledger the engine reads.
type BalanceSource interface {
	BalanceAsOf(accountID string, date time.Time) decimal.Decimal
	TransactionsForMonth(accountID string, m model.Month) []model.Transaction
}

// RateSource is the part of the rate schedule the engine reads.
type RateSource interface {
	RuleInEffect(date time.Time) (model.InterestRule, error)
	NextChangeDate(after time.Time) (time.Time, bool)
}

type Config struct {
	DaysInYear int
	Scale      int32
}

func DefaultConfig() Config {
	return Config{
		DaysInYear: constants.DefaultDaysInYear,
		Scale:      constants.DefaultScale,
	}
}

// Period is one sub-period of an accrual.
type Period struct {
	From    time.Time
	To      time.Time
	Days    int
	Balance decimal.Decimal
	Rule    model.InterestRule
	// Weighted is balance * rate% * days, not yet divided by days in year.
	Weighted decimal.Decimal
}

// Accrual is the result of a monthly computation. When Err is set the walk
// stopped early and Interest only covers Periods.
type Accrual struct {
	AccountID string
	Month     model.Month
	Periods   []Period
	Weighted  decimal.Decimal
	Interest  decimal.Decimal
	Err       error
}

func (a Accrual) Partial() bool {
	return a.Err != nil
}

type Engine struct {
	ledger BalanceSource
	rules  RateSource
	cfg    Config
	logger *zap.Logger
}

func NewEngine(ledger BalanceSource, rules RateSource, cfg Config, logger *zap.Logger) *Engine {
	if cfg.DaysInYear <= 0 {
		cfg.DaysInYear = constants.DefaultDaysInYear
	}
	if cfg.Scale < 0 {
		cfg.Scale = constants.DefaultScale
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{ledger: ledger, rules: rules, cfg: cfg, logger: logger}
}

// MonthlyInterest accrues interest for accountID over month m.
//
// A missing rule for some day of the month ends the walk: the interest of
// the periods already computed is returned and Accrual.Err reports why.
func (e *Engine) MonthlyInterest(accountID string, m model.Month) Accrual {
	monthStart, monthEnd := m.FirstDay(), m.LastDay()

	acc := Accrual{
		AccountID: accountID,
		Month:     m,
		Weighted:  decimal.Zero,
	}

	// end-of-day balance: a transaction dated on the 1st counts for the 1st
	balance := e.ledger.BalanceAsOf(accountID, monthStart)
	txns := e.ledger.TransactionsForMonth(accountID, m)

	log := e.logger.With(zap.String("account", accountID), zap.Stringer("month", m))

	cursor := monthStart
	for {
		periodEnd := e.periodEnd(cursor, monthEnd, txns)

		rule, err := e.rules.RuleInEffect(cursor)
		if err != nil {
			if errors.Is(err, rates.ErrNoApplicableRule) {
				log.Warn("interest accrual stopped early",
					zap.String("at", cursor.Format(constants.DateFormat)),
					zap.Error(err))
			} else {
				log.Error("rule lookup failed", zap.Error(err))
			}
			acc.Err = err
			break
		}

		days := model.DaysInclusive(cursor, periodEnd)
		weighted := balance.Mul(rule.Rate).Div(hundred).Mul(decimal.NewFromInt(int64(days)))

		acc.Periods = append(acc.Periods, Period{
			From:     cursor,
			To:       periodEnd,
			Days:     days,
			Balance:  balance,
			Rule:     rule,
			Weighted: weighted,
		})
		acc.Weighted = acc.Weighted.Add(weighted)

		log.Debug("interest period",
			zap.String("from", cursor.Format(constants.DateFormat)),
			zap.String("to", periodEnd.Format(constants.DateFormat)),
			zap.String("balance", balance.String()),
			zap.String("rule", rule.ID),
			zap.String("rate", rule.Rate.String()),
			zap.Int("days", days),
			zap.String("weighted", weighted.String()))

		if periodEnd.Equal(monthEnd) {
			break
		}

		cursor = model.AddDays(periodEnd, 1)
		balance = e.ledger.BalanceAsOf(accountID, cursor)
	}

	acc.Interest = acc.Weighted.DivRound(decimal.NewFromInt(int64(e.cfg.DaysInYear)), e.cfg.Scale)

	log.Debug("interest accrued",
		zap.String("weighted", acc.Weighted.String()),
		zap.String("interest", acc.Interest.String()),
		zap.Int("periods", len(acc.Periods)))

	return acc
}

// periodEnd returns the last day of the sub-period starting at cursor: the
// day before the next rule change or the next transaction, whichever comes
// first, or the month end when neither falls inside the month.
func (e *Engine) periodEnd(cursor, monthEnd time.Time, txns []model.Transaction) time.Time {
	end := monthEnd

	if next, ok := e.rules.NextChangeDate(cursor); ok && !next.After(monthEnd) {
		end = model.AddDays(next, -1)
	}

	// txns are ascending, the first one after the cursor is the boundary.
	// On a tie with a rule change both give the same period end.
	for _, t := range txns {
		if t.Date.After(cursor) {
			if candidate := model.AddDays(t.Date, -1); candidate.Before(end) {
				end = candidate
			}
			break
		}
	}

	return end
}
