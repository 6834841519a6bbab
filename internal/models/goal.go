package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalType distinguishes saving up money from paying off debt.
type GoalType string

const (
	GoalTypeSavings GoalType = "savings"
	GoalTypeDebt    GoalType = "debt"
)

// Goal represents a savings or debt-payoff target with a deadline.
type Goal struct {
	DefaultModel
	Name                string
	Type                GoalType
	Note                string
	Target              decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The amount to reach
	Current             decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The amount saved or paid off so far
	MonthlyContribution decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Deadline            time.Time
	Emoji               string
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	if g.Type == "" {
		g.Type = GoalTypeSavings
	}

	if !g.Deadline.IsZero() {
		g.Deadline = g.Deadline.In(time.UTC)
	}

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if g.Type != GoalTypeSavings && g.Type != GoalTypeDebt {
		return ErrGoalTypeInvalid
	}

	if !g.Target.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if g.Current.IsNegative() {
		return ErrGoalCurrentNegative
	}

	if g.MonthlyContribution.IsNegative() {
		return ErrGoalContributionNegative
	}

	return nil
}

// AfterFind updates the deadline to use UTC as timezone, not +0000.
func (g *Goal) AfterFind(_ *gorm.DB) (err error) {
	g.Deadline = g.Deadline.In(time.UTC)
	return nil
}
