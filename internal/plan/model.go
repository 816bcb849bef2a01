// Package plan talks to the external meal-plan generation API and falls back
// to a local deterministic generator when the upstream is unavailable.
package plan

import "errors"

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

var ErrInvalidPeriod = errors.New("period must be daily, weekly or monthly")

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return Period(s), nil
	}
	return "", ErrInvalidPeriod
}

// MealEntry is one timed meal with its energy and a short note.
type MealEntry struct {
	Time  string `json:"time" example:"8:30 AM"`
	Meal  string `json:"meal" example:"Oats + curd + nuts"`
	Kcal  int    `json:"kcal" example:"380"`
	Notes string `json:"notes,omitempty" example:"Protein + fiber"`
}

type DayPlan struct {
	Day   string      `json:"day" example:"Mon"`
	Meals []MealEntry `json:"meals"`
}

type WeekPlan struct {
	Week int      `json:"week" example:"1"`
	Days []string `json:"days"`
}

// Plan is a tagged union: exactly the variant matching Period is populated.
// Modeling the three shapes explicitly keeps every use site type-checked
// instead of branching on a string over an untyped payload.
type Plan struct {
	Period  Period      `json:"period"`
	Daily   []MealEntry `json:"daily,omitempty"`
	Weekly  []DayPlan   `json:"weekly,omitempty"`
	Monthly []WeekPlan  `json:"monthly,omitempty"`
}

// Valid reports whether exactly the variant matching the period is set.
func (p *Plan) Valid() bool {
	switch p.Period {
	case PeriodDaily:
		return len(p.Daily) > 0 && p.Weekly == nil && p.Monthly == nil
	case PeriodWeekly:
		return len(p.Weekly) > 0 && p.Daily == nil && p.Monthly == nil
	case PeriodMonthly:
		return len(p.Monthly) > 0 && p.Daily == nil && p.Weekly == nil
	}
	return false
}

type GenerateRequest struct {
	Prompt string `json:"prompt"`
	Period string `json:"period" binding:"required"`
}
