package service

import (
	"github.com/hance08/accrue/internal/model"
	"github.com/hance08/accrue/internal/rates"
	"go.uber.org/zap"
)

type RuleService struct {
	schedule *rates.Schedule
	logger   *zap.Logger
}

func NewRuleService(s *rates.Schedule, logger *zap.Logger) *RuleService {
	return &RuleService{schedule: s, logger: logger}
}

// Define adds a rule, replacing any rule already effective on the same date.
func (rs *RuleService) Define(input RuleInput) (model.InterestRule, error) {
	rule, err := rs.schedule.AddRule(input.Date, input.RuleID, input.Rate)
	if err != nil {
		return model.InterestRule{}, err
	}

	rs.logger.Info("interest rule defined",
		zap.String("id", rule.ID),
		zap.Time("effective", rule.EffectiveDate),
		zap.String("rate", rule.Rate.String()))
	return rule, nil
}

// List returns all rules by effective date.
func (rs *RuleService) List() []model.InterestRule {
	return rs.schedule.AllRules()
}
