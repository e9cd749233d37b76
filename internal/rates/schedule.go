// Package rates holds the interest rule schedule: one annual rate per
// effective date, in force until the next effective date.
package rates

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hance08/accrue/internal/constants"
	"github.com/hance08/accrue/internal/model"
	"github.com/shopspring/decimal"
)

var ErrNoApplicableRule = errors.New("no interest rule applies")

// Journal receives every rule before the schedule stores it.
type Journal interface {
	SaveRule(rule model.InterestRule) error
}

// Schedule keeps rules sorted by effective date, at most one per date.
type Schedule struct {
	mu      sync.RWMutex
	rules   []model.InterestRule
	journal Journal
}

type Option func(*Schedule)

func WithJournal(j Journal) Option {
	return func(s *Schedule) {
		s.journal = j
	}
}

func NewSchedule(opts ...Option) *Schedule {
	s := &Schedule{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddRule inserts the rule, replacing any rule with the same effective date.
func (s *Schedule) AddRule(date time.Time, id string, rate decimal.Decimal) (model.InterestRule, error) {
	rule := model.InterestRule{
		EffectiveDate: model.DateOf(date),
		ID:            id,
		Rate:          rate,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.journal != nil {
		if err := s.journal.SaveRule(rule); err != nil {
			return model.InterestRule{}, fmt.Errorf("failed to journal rule %s: %w", id, err)
		}
	}

	i := s.search(rule.EffectiveDate)
	if i < len(s.rules) && s.rules[i].EffectiveDate.Equal(rule.EffectiveDate) {
		s.rules[i] = rule
		return rule, nil
	}

	s.rules = append(s.rules, model.InterestRule{})
	copy(s.rules[i+1:], s.rules[i:])
	s.rules[i] = rule

	return rule, nil
}

// RuleInEffect returns the rule with the latest effective date on or
// before date.
func (s *Schedule) RuleInEffect(date time.Time) (model.InterestRule, error) {
	date = model.DateOf(date)

	s.mu.RLock()
	defer s.mu.RUnlock()

	// first rule strictly after date, the one before it is in effect
	i := sort.Search(len(s.rules), func(i int) bool {
		return s.rules[i].EffectiveDate.After(date)
	})
	if i == 0 {
		return model.InterestRule{}, fmt.Errorf("%w on %s", ErrNoApplicableRule, date.Format(constants.DateFormat))
	}
	return s.rules[i-1], nil
}

// NextChangeDate returns the earliest effective date strictly after the
// given date.
func (s *Schedule) NextChangeDate(after time.Time) (time.Time, bool) {
	after = model.DateOf(after)

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := sort.Search(len(s.rules), func(i int) bool {
		return s.rules[i].EffectiveDate.After(after)
	})
	if i == len(s.rules) {
		return time.Time{}, false
	}
	return s.rules[i].EffectiveDate, true
}

// AllRules returns a copy of the rules ascending by effective date.
func (s *Schedule) AllRules() []model.InterestRule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.InterestRule, len(s.rules))
	copy(out, s.rules)
	return out
}

func (s *Schedule) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.rules)
}

// search returns the index of the first rule dated on or after date.
func (s *Schedule) search(date time.Time) int {
	return sort.Search(len(s.rules), func(i int) bool {
		return !s.rules[i].EffectiveDate.Before(date)
	})
}
