package training

import "time"

// Week is the number of day slots in every plan.
const Week = 7

// Exercise is one row of a training day.
type Exercise struct {
	Name string `json:"exercicio" bson:"exercicio"`
	Sets int    `json:"series" bson:"series"`
	Reps string `json:"repeticoes" bson:"repeticoes"`
	Rest int    `json:"descanso" bson:"descanso"`
}

// DayPlan is the parsed content of one "## DIA N" section.
type DayPlan struct {
	Day       int        `json:"dia"`
	Group     string     `json:"grupo"`
	Exercises []Exercise `json:"exercicios"`
}

// Source tells where a plan came from.
type Source string

const (
	SourceOracle   Source = "oracle"
	SourceFallback Source = "fallback"
)

// FallbackModel is recorded as ai_model on fallback plans.
const FallbackModel = "fallback"

// FallbackWarning marks plans that did not come from the oracle.
const FallbackWarning = "⚠️ Treino gerado automaticamente (fallback). Ajuste conforme sua progressão."

// Plan is the formatted weekly plan. Plan always holds keys 1..7.
type Plan struct {
	Days        map[int][]Exercise `json:"plan"`
	Groups      map[int]string     `json:"groups,omitempty"`
	IMC         float64            `json:"imc"`
	Preferences Preferences        `json:"user_preferences"`
	GeneratedAt time.Time          `json:"generated_at"`
	RawText     string             `json:"raw_text,omitempty"`
	AIModel     string             `json:"ai_model"`
	Source      Source             `json:"source"`
	Warning     string             `json:"warning,omitempty"`
}

// Day returns a copy of the exercises for day n (1..7).
func (p *Plan) Day(n int) []Exercise {
	return append([]Exercise{}, p.Days[n]...)
}

// PopulatedDays counts days with at least one exercise.
func (p *Plan) PopulatedDays() int {
	n := 0
	for d := 1; d <= Week; d++ {
		if len(p.Days[d]) > 0 {
			n++
		}
	}
	return n
}

// IsFallback reports whether the plan was produced without the oracle.
func (p *Plan) IsFallback() bool {
	return p.Source == SourceFallback
}

func emptyWeek() (map[int][]Exercise, map[int]string) {
	days := make(map[int][]Exercise, Week)
	for d := 1; d <= Week; d++ {
		days[d] = []Exercise{}
	}
	return days, make(map[int]string)
}
