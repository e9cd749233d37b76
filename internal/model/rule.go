package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterestRule sets the annual rate (in percent) from EffectiveDate onward,
// until a rule with a later effective date supersedes it.
type InterestRule struct {
	EffectiveDate time.Time
	ID            string
	Rate          decimal.Decimal
}
