package training

import "time"

// Format reshapes parsed days into a weekly plan. Days outside 1..DaysPerWeek
// are dropped and every missing slot is an empty list. When the oracle repeats
// a day number the first occurrence wins.
func Format(days []DayPlan, p Profile, rawText, model string, now time.Time) *Plan {
	week, groups := emptyWeek()
	seen := make(map[int]bool, len(days))

	for _, d := range days {
		if d.Day < 1 || d.Day > p.DaysPerWeek || d.Day > Week || seen[d.Day] {
			continue
		}
		seen[d.Day] = true
		week[d.Day] = append([]Exercise{}, d.Exercises...)
		groups[d.Day] = d.Group
	}

	return &Plan{
		Days:        week,
		Groups:      groups,
		IMC:         p.BMI(),
		Preferences: p.Preferences(),
		GeneratedAt: now.UTC(),
		RawText:     rawText,
		AIModel:     model,
		Source:      SourceOracle,
	}
}
