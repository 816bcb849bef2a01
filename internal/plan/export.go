package plan

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// ToCSV renders the plan as CSV with a header row matching the period shape.
func ToCSV(p *Plan) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	switch p.Period {
	case PeriodDaily:
		records := [][]string{{"Time", "Meal", "kcal", "Notes"}}
		for _, m := range p.Daily {
			records = append(records, []string{m.Time, m.Meal, strconv.Itoa(m.Kcal), m.Notes})
		}
		if err := w.WriteAll(records); err != nil {
			return "", err
		}

	case PeriodWeekly:
		records := [][]string{{"Day", "Time", "Meal", "kcal", "Notes"}}
		for _, d := range p.Weekly {
			for _, m := range d.Meals {
				records = append(records, []string{d.Day, m.Time, m.Meal, strconv.Itoa(m.Kcal), m.Notes})
			}
		}
		if err := w.WriteAll(records); err != nil {
			return "", err
		}

	case PeriodMonthly:
		records := [][]string{{"Week", "Day"}}
		for _, week := range p.Monthly {
			for _, day := range week.Days {
				records = append(records, []string{strconv.Itoa(week.Week), day})
			}
		}
		if err := w.WriteAll(records); err != nil {
			return "", err
		}

	default:
		return "", fmt.Errorf("cannot export plan with period %q", p.Period)
	}

	return buf.String(), nil
}

// ShareText renders a short human-readable summary suitable for messaging.
func ShareText(p *Plan) string {
	switch p.Period {
	case PeriodDaily:
		var b strings.Builder
		fmt.Fprintf(&b, "Diet Plan (%s):", p.Period)
		for _, m := range p.Daily {
			fmt.Fprintf(&b, "\n%s - %s (%d kcal)", m.Time, m.Meal, m.Kcal)
			if m.Notes != "" {
				fmt.Fprintf(&b, " * %s", m.Notes)
			}
		}
		return b.String()

	case PeriodWeekly:
		var b strings.Builder
		b.WriteString("Diet Plan (weekly):")
		for _, d := range p.Weekly {
			fmt.Fprintf(&b, "\n\n%s:", d.Day)
			for _, m := range d.Meals {
				fmt.Fprintf(&b, "\n  %s - %s (%d kcal)", m.Time, m.Meal, m.Kcal)
			}
		}
		return b.String()

	case PeriodMonthly:
		return "Diet Plan (monthly): Weeks 1-4 with day markers."
	}
	return ""
}
