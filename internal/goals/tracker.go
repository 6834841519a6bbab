// Package goals derives progress, projections and trajectory status for
// savings and debt-payoff goals. All functions are pure over the
// snapshot passed in.
package goals

import (
	"math"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Status classifies a goal's trajectory.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusOnTrack   Status = "on-track"
	StatusBehind    Status = "behind"
)

// Progress is the derived view of a single goal.
type Progress struct {
	Percent         decimal.Decimal `json:"percent" example:"64.2"`    // Current relative to target, not clamped at 100
	RequiredMonths  int64           `json:"requiredMonths" example:"9"` // Months to completion at the current contribution rate
	CalendarMonths  int64           `json:"calendarMonths" example:"11"` // Months until the deadline, 30-day approximation
	Status          Status          `json:"status" example:"on-track"`
}

// Summary is the roll-up over all goals.
type Summary struct {
	Completed           int             `json:"completed"`
	OnTrack             int             `json:"onTrack"`
	Behind              int             `json:"behind"`
	TotalSaved          decimal.Decimal `json:"totalSaved" example:"8250"`
	TotalTarget         decimal.Decimal `json:"totalTarget" example:"25000"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution" example:"650"`
	OverallPercent      decimal.Decimal `json:"overallPercent" example:"33"` // Total saved relative to total target
}

var hundred = decimal.NewFromInt(100)

// Compute derives the progress view for one goal at the given time.
//
// A goal counts as completed as soon as current reaches target,
// independent of deadline and contribution rate. Otherwise it is
// on-track when the months needed at the current contribution rate fit
// into the months left until the deadline, and behind when they do not.
//
// Months until the deadline use a 30-day month as a deliberate
// simplification.
//
// TODO: a goal with contribution 0 and an unmet target computes
// RequiredMonths 0 and therefore reads on-track whenever the deadline
// has not passed. Decide whether such goals should read behind instead.
func Compute(goal models.Goal, now time.Time) Progress {
	p := Progress{
		Percent:        decimal.Zero,
		RequiredMonths: 0,
	}

	if goal.Target.IsPositive() {
		p.Percent = goal.Current.Div(goal.Target).Mul(hundred)
	}

	if goal.MonthlyContribution.IsPositive() {
		p.RequiredMonths = goal.Target.Sub(goal.Current).Div(goal.MonthlyContribution).Ceil().IntPart()
		if p.RequiredMonths < 0 {
			p.RequiredMonths = 0
		}
	}

	days := goal.Deadline.Sub(now).Hours() / 24
	p.CalendarMonths = int64(math.Ceil(days / 30))

	switch {
	case goal.Current.GreaterThanOrEqual(goal.Target):
		p.Status = StatusCompleted
	case p.RequiredMonths <= p.CalendarMonths:
		p.Status = StatusOnTrack
	default:
		p.Status = StatusBehind
	}

	return p
}

// Summarize rolls up all goals at the given time.
func Summarize(goals []models.Goal, now time.Time) Summary {
	s := Summary{
		TotalSaved:          decimal.Zero,
		TotalTarget:         decimal.Zero,
		MonthlyContribution: decimal.Zero,
		OverallPercent:      decimal.Zero,
	}

	for _, goal := range goals {
		switch Compute(goal, now).Status {
		case StatusCompleted:
			s.Completed++
		case StatusOnTrack:
			s.OnTrack++
		case StatusBehind:
			s.Behind++
		}

		s.TotalSaved = s.TotalSaved.Add(goal.Current)
		s.TotalTarget = s.TotalTarget.Add(goal.Target)
		s.MonthlyContribution = s.MonthlyContribution.Add(goal.MonthlyContribution)
	}

	if !s.TotalTarget.IsZero() {
		s.OverallPercent = s.TotalSaved.Div(s.TotalTarget).Mul(hundred)
	}

	return s
}
