package plan

import "strings"

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// baseMeals is the deterministic daily skeleton the mock builds every period
// shape from.
var baseMeals = []MealEntry{
	{Time: "7:30 AM", Meal: "Warm water + lemon", Kcal: 10, Notes: "Hydrate"},
	{Time: "8:30 AM", Meal: "Oats + curd + nuts", Kcal: 380, Notes: "Protein + fiber"},
	{Time: "12:45 PM", Meal: "2 roti + dal + salad", Kcal: 520, Notes: "Balanced plate"},
	{Time: "4:30 PM", Meal: "Fruit + buttermilk", Kcal: 180, Notes: "Light carbs"},
	{Time: "8:00 PM", Meal: "Grilled paneer + veggies", Kcal: 460, Notes: "High protein"},
}

// Mock produces a syntactically valid plan of the requested period shape
// without consulting any upstream. It is the first-class fallback for every
// plan API failure, not just an error path.
func Mock(prompt string, period Period) *Plan {
	switch period {
	case PeriodWeekly:
		days := make([]DayPlan, 0, len(weekdays))
		for d, day := range weekdays {
			meals := make([]MealEntry, len(baseMeals))
			copy(meals, baseMeals)
			// Alternate days swap paneer for chana so the week is not
			// seven identical days.
			if d%2 == 1 {
				for i := range meals {
					meals[i].Meal = strings.ReplaceAll(meals[i].Meal, "paneer", "chana")
				}
			}
			days = append(days, DayPlan{Day: day, Meals: meals})
		}
		return &Plan{Period: PeriodWeekly, Weekly: days}

	case PeriodMonthly:
		weeks := make([]WeekPlan, 0, 4)
		for w := 1; w <= 4; w++ {
			days := make([]string, len(weekdays))
			copy(days, weekdays)
			weeks = append(weeks, WeekPlan{Week: w, Days: days})
		}
		return &Plan{Period: PeriodMonthly, Monthly: weeks}

	default:
		meals := make([]MealEntry, len(baseMeals))
		copy(meals, baseMeals)
		return &Plan{Period: PeriodDaily, Daily: meals}
	}
}
