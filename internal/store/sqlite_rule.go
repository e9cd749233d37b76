package store

import (
	"fmt"
	"time"

	"github.com/hance08/accrue/internal/constants"
	"github.com/hance08/accrue/internal/model"
)

// SaveRule inserts the rule or replaces the one on the same effective date.
func (s *Store) SaveRule(rule model.InterestRule) error {
	_, err := s.db.Exec(`
		INSERT INTO interest_rules (effective_date, rule_id, rate)
		VALUES (?, ?, ?)
		ON CONFLICT (effective_date) DO UPDATE SET
			rule_id = excluded.rule_id,
			rate = excluded.rate
	`, rule.EffectiveDate.Format(constants.DateFormat), rule.ID, rule.Rate)
	if err != nil {
		return fmt.Errorf("failed to save rule %s: %w", rule.ID, err)
	}
	return nil
}

func (s *Store) ListRules() ([]model.InterestRule, error) {
	rows, err := s.db.Query(`
		SELECT effective_date, rule_id, rate
		FROM interest_rules
		ORDER BY effective_date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var rules []model.InterestRule
	for rows.Next() {
		var rule model.InterestRule
		var date string

		if err := rows.Scan(&date, &rule.ID, &rule.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		if rule.EffectiveDate, err = time.Parse(constants.DateFormat, date); err != nil {
			return nil, fmt.Errorf("bad date %q in journal: %w", date, err)
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}
