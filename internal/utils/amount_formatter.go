package utils

import (
	"time"

	"github.com/hance08/accrue/internal/constants"
	"github.com/shopspring/decimal"
)

func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(constants.DefaultScale)
}

// FormatRate prints a rate percentage with two decimals, e.g. "1.95".
func FormatRate(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatDate prints a date the way it is typed in, e.g. "20230626".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(constants.InputDateLayout)
}
