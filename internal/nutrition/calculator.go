// Package nutrition converts biometric inputs into energy and macronutrient
// targets (Mifflin-St Jeor BMR, activity-scaled TDEE, goal-adjusted calories)
// and classifies BMI against regional threshold tables.
package nutrition

import "math"

// activityFactors maps activity level to its TDEE multiplier. This is the
// single source of truth for valid activity levels.
var activityFactors = map[Activity]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityActive:    1.725,
	ActivityVery:      1.9,
}

// Goal offsets are fixed, not user-configurable: a modest deficit for loss,
// a gentle surplus for gain.
const (
	lossOffset = -400
	gainOffset = 300
)

// mealSplit spreads target calories and macro grams across the four fixed
// meal slots.
var mealSplit = []struct {
	Name     string
	Fraction float64
}{
	{"Breakfast", 0.30},
	{"Lunch", 0.35},
	{"Snack", 0.15},
	{"Dinner", 0.20},
}

var vegHints = []string{
	"Oats + curd + nuts / Poha + sprouts",
	"2 roti + dal + sabzi + salad",
	"Fruit + buttermilk / chana chaat",
	"Paneer/tofu + veggies / khichdi + salad",
}

var nonVegHints = []string{
	"Eggs + toast + fruit",
	"Rice + chicken + veggies",
	"Yogurt + nuts",
	"Fish/chicken + veggies + roti",
}

// Defaults applied by Normalize when an input is missing or non-positive.
const (
	defaultAge          = 24
	defaultHeightCm     = 170
	defaultWeightKg     = 70
	defaultProteinPerKg = 1.6
	defaultFatPct       = 30
)

// Normalize fills missing or invalid fields with their defaults. There are
// no error states: every profile computes.
func (p BiometricProfile) Normalize() BiometricProfile {
	if p.Sex != SexFemale {
		p.Sex = SexMale
	}
	if p.Age <= 0 {
		p.Age = defaultAge
	}
	if p.HeightCm <= 0 {
		p.HeightCm = defaultHeightCm
	}
	if p.WeightKg <= 0 {
		p.WeightKg = defaultWeightKg
	}
	if _, ok := activityFactors[p.Activity]; !ok {
		p.Activity = ActivityModerate
	}
	if p.Goal != GoalLoss && p.Goal != GoalGain {
		p.Goal = GoalMaintain
	}
	if p.ProteinPerKg <= 0 {
		p.ProteinPerKg = defaultProteinPerKg
	}
	if p.FatPct <= 0 {
		p.FatPct = defaultFatPct
	}
	return p
}

// round half away from zero to the nearest whole unit.
func round(x float64) int {
	return int(math.Round(x))
}

// ComputeTargets derives the full macro breakdown for a profile.
func ComputeTargets(profile BiometricProfile) MacroTargets {
	p := profile.Normalize()

	s := 5.0
	if p.Sex == SexFemale {
		s = -161
	}
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age) + s
	tdee := bmr * activityFactors[p.Activity]

	target := tdee
	switch p.Goal {
	case GoalLoss:
		target += lossOffset
	case GoalGain:
		target += gainOffset
	}

	proteinG := math.Max(1.2, p.ProteinPerKg) * p.WeightKg
	proteinKcal := proteinG * 4

	fatPct := math.Min(math.Max(p.FatPct, 20), 40)
	fatKcal := fatPct / 100 * target
	fatG := fatKcal / 9

	// Carbs absorb the remainder; a protein+fat overshoot floors carbs at
	// zero rather than erroring.
	carbsKcal := math.Max(target-(proteinKcal+fatKcal), 0)
	carbsG := carbsKcal / 4

	pct := func(kcal float64) int {
		if target == 0 {
			return 0
		}
		return round(kcal / target * 100)
	}

	hints := nonVegHints
	if p.VegPreference {
		hints = vegHints
	}

	meals := make([]Meal, 0, len(mealSplit))
	for i, slot := range mealSplit {
		meals = append(meals, Meal{
			Name:     slot.Name,
			Fraction: slot.Fraction,
			Kcal:     round(target * slot.Fraction),
			ProteinG: round(proteinG * slot.Fraction),
			CarbsG:   round(carbsG * slot.Fraction),
			FatG:     round(fatG * slot.Fraction),
			Hint:     hints[i],
		})
	}

	return MacroTargets{
		BMR:            round(bmr),
		TDEE:           round(tdee),
		TargetCalories: round(target),
		ProteinG:       round(proteinG),
		ProteinPct:     pct(proteinKcal),
		CarbsG:         round(carbsG),
		CarbsPct:       pct(carbsKcal),
		FatG:           round(fatG),
		FatPct:         pct(fatKcal),
		Meals:          meals,
	}
}
