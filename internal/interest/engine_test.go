package interest

import (
	"fmt"
	"testing"
	"time"

	"github.com/hance08/accrue/internal/ledger"
	"github.com/hance08/accrue/internal/model"
	"github.com/hance08/accrue/internal/rates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var june2023 = model.Month{Year: 2023, Month: time.June}

func d(y int, m time.Month, day int) time.Time {
	return model.Date(y, m, day)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	ledger   *ledger.Ledger
	schedule *rates.Schedule
	logs     *observer.ObservedLogs
	engine   *Engine
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	f := &fixture{
		ledger:   ledger.New(),
		schedule: rates.NewSchedule(),
		logs:     logs,
	}
	f.engine = NewEngine(f.ledger, f.schedule, cfg, zap.New(core))
	return f
}

func (f *fixture) txn(t *testing.T, date time.Time, typ model.TransactionType, amount string) {
	t.Helper()
	_, err := f.ledger.RecordTransaction("AC001", date, typ, dec(amount))
	require.NoError(t, err)
}

func (f *fixture) rule(t *testing.T, date time.Time, id, rate string) {
	t.Helper()
	_, err := f.schedule.AddRule(date, id, dec(rate))
	require.NoError(t, err)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !dec(want).Equal(got) {
		assert.Fail(t, fmt.Sprintf("decimal mismatch: want %s, got %s", want, got.String()), msgAndArgs...)
	}
}

func TestMonthlyInterestScenario(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.txn(t, d(2023, 5, 5), model.TypeDeposit, "100.00")
	f.txn(t, d(2023, 6, 1), model.TypeDeposit, "150.00")
	f.txn(t, d(2023, 6, 26), model.TypeWithdrawal, "20.00")
	f.txn(t, d(2023, 6, 26), model.TypeWithdrawal, "100.00")
	f.rule(t, d(2023, 1, 1), "RULE01", "1.95")
	f.rule(t, d(2023, 5, 20), "RULE02", "1.90")
	f.rule(t, d(2023, 6, 15), "RULE03", "2.20")

	acc := f.engine.MonthlyInterest("AC001", june2023)

	require.NoError(t, acc.Err)
	assertDecimal(t, "0.39", acc.Interest)
	assertDecimal(t, "141.3", acc.Weighted)

	require.Len(t, acc.Periods, 3)

	want := []struct {
		from, to time.Time
		days     int
		balance  string
		rule     string
	}{
		{d(2023, 6, 1), d(2023, 6, 14), 14, "250", "RULE02"},
		{d(2023, 6, 15), d(2023, 6, 25), 11, "250", "RULE03"},
		{d(2023, 6, 26), d(2023, 6, 30), 5, "130", "RULE03"},
	}
	for i, w := range want {
		p := acc.Periods[i]
		assert.Equal(t, w.from, p.From, "period %d from", i)
		assert.Equal(t, w.to, p.To, "period %d to", i)
		assert.Equal(t, w.days, p.Days, "period %d days", i)
		assertDecimal(t, w.balance, p.Balance, "period %d balance", i)
		assert.Equal(t, w.rule, p.Rule.ID, "period %d rule", i)
	}
}

func TestMonthlyInterestPeriodsCoverMonth(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.rule(t, d(2023, 1, 1), "R1", "1.00")
	f.rule(t, d(2023, 6, 3), "R2", "2.00")
	f.rule(t, d(2023, 6, 20), "R3", "3.00")
	f.txn(t, d(2023, 5, 1), model.TypeDeposit, "500")
	f.txn(t, d(2023, 6, 7), model.TypeDeposit, "100")
	f.txn(t, d(2023, 6, 7), model.TypeWithdrawal, "50")
	f.txn(t, d(2023, 6, 29), model.TypeWithdrawal, "550")

	acc := f.engine.MonthlyInterest("AC001", june2023)
	require.NoError(t, acc.Err)

	total := 0
	next := june2023.FirstDay()
	for _, p := range acc.Periods {
		assert.Equal(t, next, p.From, "periods must be contiguous")
		assert.False(t, p.To.Before(p.From))
		total += p.Days
		next = model.AddDays(p.To, 1)
	}
	assert.Equal(t, 30, total)
	assert.Equal(t, june2023.LastDay(), acc.Periods[len(acc.Periods)-1].To)
	// boundaries on 3rd, 7th, 20th and 29th
	assert.Len(t, acc.Periods, 5)
}

func TestRuleEffectiveOnFirstAppliesToDayOne(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.txn(t, d(2023, 5, 1), model.TypeDeposit, "1000")
	f.rule(t, d(2023, 5, 1), "OLD", "1.00")
	f.rule(t, d(2023, 6, 1), "NEW", "3.65")

	acc := f.engine.MonthlyInterest("AC001", june2023)

	require.NoError(t, acc.Err)
	require.Len(t, acc.Periods, 1)
	assert.Equal(t, "NEW", acc.Periods[0].Rule.ID)
	assertDecimal(t, "3.00", acc.Interest)
}

func TestRuleAndTransactionOnSameDay(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.txn(t, d(2023, 5, 1), model.TypeDeposit, "1000")
	f.txn(t, d(2023, 6, 15), model.TypeDeposit, "1000")
	f.rule(t, d(2023, 1, 1), "R1", "3.65")
	f.rule(t, d(2023, 6, 15), "R2", "7.30")

	acc := f.engine.MonthlyInterest("AC001", june2023)

	require.NoError(t, acc.Err)
	require.Len(t, acc.Periods, 2)
	assert.Equal(t, d(2023, 6, 14), acc.Periods[0].To)
	assert.Equal(t, d(2023, 6, 15), acc.Periods[1].From)
	assertDecimal(t, "2000", acc.Periods[1].Balance)
	assert.Equal(t, "R2", acc.Periods[1].Rule.ID)
	// 1000*3.65%*14 + 2000*7.30%*16 = 511 + 2336
	assertDecimal(t, "7.80", acc.Interest)
}

func TestRuleChangeAfterMonthEndIgnored(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.txn(t, d(2023, 5, 1), model.TypeDeposit, "1000")
	f.rule(t, d(2023, 1, 1), "R1", "3.65")
	f.rule(t, d(2023, 7, 1), "R2", "9.00")

	acc := f.engine.MonthlyInterest("AC001", june2023)

	require.Len(t, acc.Periods, 1)
	assert.Equal(t, d(2023, 6, 30), acc.Periods[0].To)
	assertDecimal(t, "3.00", acc.Interest)
}

func TestNoRulesYieldsPartialZero(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.txn(t, d(2023, 5, 1), model.TypeDeposit, "1000")

	acc := f.engine.MonthlyInterest("AC001", june2023)

	assert.ErrorIs(t, acc.Err, rates.ErrNoApplicableRule)
	assert.True(t, acc.Partial())
	assert.Empty(t, acc.Periods)
	assert.True(t, acc.Interest.IsZero())
	assert.Equal(t, 1, f.logs.FilterMessage("interest accrual stopped early").Len())
}

func TestRuleStartingMidMonthStopsAtFirstDay(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.txn(t, d(2023, 5, 1), model.TypeDeposit, "1000")
	f.rule(t, d(2023, 6, 10), "LATE", "5.00")

	acc := f.engine.MonthlyInterest("AC001", june2023)

	assert.ErrorIs(t, acc.Err, rates.ErrNoApplicableRule)
	assert.True(t, acc.Interest.IsZero())
}

func TestEmptyAccountEarnsNothing(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.rule(t, d(2023, 1, 1), "R1", "2.00")

	acc := f.engine.MonthlyInterest("NOBODY", june2023)

	require.NoError(t, acc.Err)
	require.Len(t, acc.Periods, 1)
	assert.True(t, acc.Interest.IsZero())
}

func TestInterestRoundsHalfUp(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.rule(t, d(2023, 1, 1), "R1", "5")
	// only the last day carries a balance: 36.5 * 5% * 1 = 1.825, /365 = 0.005
	f.txn(t, d(2023, 6, 30), model.TypeDeposit, "36.50")

	acc := f.engine.MonthlyInterest("AC001", june2023)

	require.NoError(t, acc.Err)
	assertDecimal(t, "1.825", acc.Weighted)
	assertDecimal(t, "0.01", acc.Interest)
}

func TestDaysInYearFromConfig(t *testing.T) {
	f := newFixture(t, Config{DaysInYear: 360, Scale: 4})
	f.txn(t, d(2023, 5, 1), model.TypeDeposit, "1000")
	f.rule(t, d(2023, 1, 1), "R1", "3.60")

	acc := f.engine.MonthlyInterest("AC001", june2023)

	// 1000 * 3.6% * 30 / 360
	assertDecimal(t, "3.0000", acc.Interest)
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(ledger.New(), rates.NewSchedule(), Config{Scale: -1}, nil)

	assert.Equal(t, 365, e.cfg.DaysInYear)
	assert.Equal(t, int32(2), e.cfg.Scale)
	assert.NotNil(t, e.logger)
}

func TestLeapFebruary(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.txn(t, d(2024, 1, 10), model.TypeDeposit, "365")
	f.rule(t, d(2024, 1, 1), "R1", "10")

	acc := f.engine.MonthlyInterest("AC001", model.Month{Year: 2024, Month: time.February})

	require.Len(t, acc.Periods, 1)
	assert.Equal(t, 29, acc.Periods[0].Days)
	// 365 * 10% * 29 / 365
	assertDecimal(t, "2.90", acc.Interest)
}
