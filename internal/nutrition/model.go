package nutrition

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type Activity string

const (
	ActivitySedentary Activity = "sedentary"
	ActivityLight     Activity = "light"
	ActivityModerate  Activity = "moderate"
	ActivityActive    Activity = "active"
	ActivityVery      Activity = "very"
)

type Goal string

const (
	GoalLoss     Goal = "loss"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// BiometricProfile is the calculator input. Numeric fields are treated
// permissively: non-positive values fall back to the defaults in Normalize.
type BiometricProfile struct {
	Sex           Sex      `json:"sex"`
	Age           int      `json:"age"`
	HeightCm      float64  `json:"height"`
	WeightKg      float64  `json:"weight"`
	Activity      Activity `json:"activity"`
	Goal          Goal     `json:"goal"`
	ProteinPerKg  float64  `json:"protein_per_kg"`
	FatPct        float64  `json:"fat_pct"`
	VegPreference bool     `json:"veg_preference"`
}

// Meal is one of the four fixed meal slots of the daily split.
type Meal struct {
	Name     string  `json:"name" example:"Breakfast"`
	Kcal     int     `json:"kcal"`
	ProteinG int     `json:"protein_g"`
	CarbsG   int     `json:"carbs_g"`
	FatG     int     `json:"fat_g"`
	Hint     string  `json:"hint,omitempty"`
	Fraction float64 `json:"-"`
}

type MacroTargets struct {
	BMR            int `json:"bmr_kcal"`
	TDEE           int `json:"tdee_kcal"`
	TargetCalories int `json:"target_kcal"`

	ProteinG   int `json:"protein_g"`
	ProteinPct int `json:"protein_pct"`
	CarbsG     int `json:"carbs_g"`
	CarbsPct   int `json:"carbs_pct"`
	FatG       int `json:"fat_g"`
	FatPct     int `json:"fat_pct"`

	Meals []Meal `json:"meals"`
}

type BMITable string

const (
	TableAsian   BMITable = "asian"
	TableWestern BMITable = "western"
)

type BMIResult struct {
	BMI  float64 `json:"bmi" example:"24.2"`
	Band string  `json:"band" example:"Normal"`
}
