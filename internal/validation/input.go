// Package validation turns raw menu input lines into validated service
// requests.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hance08/accrue/internal/constants"
	"github.com/hance08/accrue/internal/model"
	"github.com/hance08/accrue/internal/service"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidFormat  = errors.New("invalid format")
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidAccount = errors.New("invalid account")
	ErrInvalidType    = errors.New("invalid transaction type")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidRate    = errors.New("invalid rate")
	ErrInvalidMonth   = errors.New("invalid month")
)

const (
	fieldSeparator = "|"
	maxAmountScale = 2
)

var maxRate = decimal.NewFromInt(constants.MaxRatePercent)

// ParseTransactionLine parses "<Date>|<Account>|<Type>|<Amount>",
// e.g. "20230626|AC001|W|20.00".
func ParseTransactionLine(line string) (service.TransactionInput, error) {
	parts, err := split(line, 4, "<Date>|<Account>|<Type>|<Amount>")
	if err != nil {
		return service.TransactionInput{}, err
	}

	date, err := ParseDate(parts[0])
	if err != nil {
		return service.TransactionInput{}, err
	}

	account, err := ParseAccountID(parts[1])
	if err != nil {
		return service.TransactionInput{}, err
	}

	typ, err := ParseTransactionType(parts[2])
	if err != nil {
		return service.TransactionInput{}, err
	}

	amount, err := ParseAmount(parts[3])
	if err != nil {
		return service.TransactionInput{}, err
	}

	return service.TransactionInput{
		Date:      date,
		AccountID: account,
		Type:      typ,
		Amount:    amount,
	}, nil
}

// ParseRuleLine parses "<Date>|<RuleId>|<Rate in %>", e.g. "20230615|RULE03|2.20".
func ParseRuleLine(line string) (service.RuleInput, error) {
	parts, err := split(line, 3, "<Date>|<RuleId>|<Rate in %>")
	if err != nil {
		return service.RuleInput{}, err
	}

	date, err := ParseDate(parts[0])
	if err != nil {
		return service.RuleInput{}, err
	}

	if parts[1] == "" {
		return service.RuleInput{}, fmt.Errorf("%w: rule id can't be empty", ErrInvalidFormat)
	}

	rate, err := ParseRate(parts[2])
	if err != nil {
		return service.RuleInput{}, err
	}

	return service.RuleInput{Date: date, RuleID: parts[1], Rate: rate}, nil
}

// ParseStatementLine parses "<Account>|<Year><Month>" such as "AC001|202306".
// A bare month ("AC001|06") refers to the year of now.
func ParseStatementLine(line string, now time.Time) (service.StatementInput, error) {
	parts, err := split(line, 2, "<Account>|<Year><Month>")
	if err != nil {
		return service.StatementInput{}, err
	}

	account, err := ParseAccountID(parts[0])
	if err != nil {
		return service.StatementInput{}, err
	}

	month, err := ParseMonth(parts[1], now)
	if err != nil {
		return service.StatementInput{}, err
	}

	return service.StatementInput{AccountID: account, Month: month}, nil
}

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) != len(constants.InputDateLayout) {
		return time.Time{}, fmt.Errorf("%w '%s': use the YYYYMMdd format", ErrInvalidDate, s)
	}
	d, err := time.Parse(constants.InputDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w '%s': use the YYYYMMdd format", ErrInvalidDate, s)
	}
	return model.DateOf(d), nil
}

// ParseAccountID keeps the id case-sensitive; only surrounding spaces go.
func ParseAccountID(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: account can't be empty", ErrInvalidAccount)
	}
	if strings.ContainsAny(s, " \t") {
		return "", fmt.Errorf("%w '%s': account can't contain spaces", ErrInvalidAccount, s)
	}
	return s, nil
}

// ParseTransactionType accepts D (deposit) or W (withdrawal), any case.
func ParseTransactionType(s string) (model.TransactionType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(model.TypeDeposit):
		return model.TypeDeposit, nil
	case string(model.TypeWithdrawal):
		return model.TypeWithdrawal, nil
	default:
		return "", fmt.Errorf("%w '%s': use D for deposit and W for withdrawal", ErrInvalidType, s)
	}
}

// ParseAmount accepts a positive number with at most two decimal places.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w '%s': not a number", ErrInvalidAmount, s)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w '%s': must be greater than 0", ErrInvalidAmount, s)
	}
	if !amount.Equal(amount.Truncate(maxAmountScale)) {
		return decimal.Decimal{}, fmt.Errorf("%w '%s': at most %d decimal places", ErrInvalidAmount, s, maxAmountScale)
	}
	return amount, nil
}

// ParseRate accepts a percentage strictly between 0 and 100.
func ParseRate(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w '%s': not a number", ErrInvalidRate, s)
	}
	if !rate.IsPositive() || rate.GreaterThanOrEqual(maxRate) {
		return decimal.Decimal{}, fmt.Errorf("%w '%s': must be between 0 and 100", ErrInvalidRate, s)
	}
	return rate, nil
}

func ParseMonth(s string, now time.Time) (model.Month, error) {
	s = strings.TrimSpace(s)

	switch len(s) {
	case len(constants.MonthLayout):
		t, err := time.Parse(constants.MonthLayout, s)
		if err != nil {
			return model.Month{}, fmt.Errorf("%w '%s': use YYYYMM", ErrInvalidMonth, s)
		}
		return model.MonthOf(t), nil
	case 1, 2:
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 12 {
			return model.Month{}, fmt.Errorf("%w '%s': month must be 1-12", ErrInvalidMonth, s)
		}
		return model.Month{Year: now.Year(), Month: time.Month(n)}, nil
	default:
		return model.Month{}, fmt.Errorf("%w '%s': use YYYYMM", ErrInvalidMonth, s)
	}
}

func split(line string, n int, format string) ([]string, error) {
	parts := strings.Split(strings.TrimSpace(line), fieldSeparator)
	if len(parts) != n {
		return nil, fmt.Errorf("%w: expected %s", ErrInvalidFormat, format)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}
