package training

import "time"

// FallbackGroup labels every day of a fallback plan.
const FallbackGroup = "Treino geral"

func warmUp() []Exercise {
	return []Exercise{
		{Name: "Corrida ou caminhada", Sets: 1, Reps: "5 min", Rest: 0},
		{Name: "Mobilidade dinâmica", Sets: 1, Reps: "5 min", Rest: 0},
	}
}

func coolDown() []Exercise {
	return []Exercise{
		{Name: "Alongamento estático", Sets: 1, Reps: "10 min", Rest: 0},
	}
}

func mainBlock(e Experience) []Exercise {
	switch e {
	case Beginner:
		return []Exercise{
			{Name: "Flexão de braço", Sets: 3, Reps: "8-10", Rest: 60},
			{Name: "Agachamento corporal", Sets: 3, Reps: "10-12", Rest: 60},
			{Name: "Prancha", Sets: 3, Reps: "20-30s", Rest: 60},
		}
	case Intermediate:
		return []Exercise{
			{Name: "Supino com halteres", Sets: 4, Reps: "8-10", Rest: 90},
			{Name: "Agachamento com peso", Sets: 4, Reps: "8-12", Rest: 90},
			{Name: "Rosca direta", Sets: 3, Reps: "10-12", Rest: 60},
		}
	default:
		return []Exercise{
			{Name: "Supino com barra", Sets: 5, Reps: "5-8", Rest: 120},
			{Name: "Agachamento com barra", Sets: 5, Reps: "5-8", Rest: 120},
			{Name: "Rosca com barra", Sets: 4, Reps: "6-10", Rest: 90},
		}
	}
}

// FallbackSession is the single session repeated on every fallback day.
func FallbackSession(e Experience) []Exercise {
	session := warmUp()
	session = append(session, mainBlock(e)...)
	return append(session, coolDown()...)
}

// FallbackDays repeats the fallback session on days 1..DaysPerWeek.
func FallbackDays(p Profile) []DayPlan {
	days := make([]DayPlan, 0, p.DaysPerWeek)
	for d := 1; d <= p.DaysPerWeek && d <= Week; d++ {
		days = append(days, DayPlan{Day: d, Group: FallbackGroup, Exercises: FallbackSession(p.Experience)})
	}
	return days
}

// Fallback builds a rule-based plan without the oracle. It always succeeds.
func Fallback(p Profile, now time.Time) *Plan {
	return markFallback(Format(FallbackDays(p), p, "", FallbackModel, now))
}

func markFallback(plan *Plan) *Plan {
	plan.Source = SourceFallback
	plan.Warning = FallbackWarning
	return plan
}
