package nutrition

import "math"

type bmiBand struct {
	Max   float64
	Label string
}

// Ordered upper-bound cutoffs; the first band whose cutoff covers the BMI
// wins. The tables partition the whole range with no gaps.
var bmiTables = map[BMITable][]bmiBand{
	TableAsian: {
		{18.4, "Underweight"},
		{22.9, "Normal"},
		{27.4, "Overweight"},
		{math.Inf(1), "Obese"},
	},
	TableWestern: {
		{18.4, "Underweight"},
		{24.9, "Normal"},
		{29.9, "Overweight"},
		{math.Inf(1), "Obese"},
	},
}

// ClassifyBMI computes BMI (kg/m², one decimal) and its band under the given
// table. A nil result means the inputs are incomplete, which is a normal
// user-input state rather than an error. An unknown table falls back to the
// Asian cutoffs, the clinic's default.
func ClassifyBMI(heightCm, weightKg float64, table BMITable) *BMIResult {
	if heightCm <= 0 || weightKg <= 0 {
		return nil
	}

	h := heightCm / 100
	bmi := math.Round(weightKg/(h*h)*10) / 10

	bands, ok := bmiTables[table]
	if !ok {
		bands = bmiTables[TableAsian]
	}

	for _, band := range bands {
		if bmi <= band.Max {
			return &BMIResult{BMI: bmi, Band: band.Label}
		}
	}

	// Unreachable: the last band's cutoff is +Inf.
	return nil
}
