package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Rrens/fitcoach/internal/training"
	"github.com/google/uuid"
)

// Training is the stored plan of a user. There is at most one per user.
type Training struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Days        [training.Week][]training.Exercise
	DaysPerWeek int
	CurrentDay  int
	GeneratedAt time.Time
	AIModel     string
	Source      training.Source
	Preferences training.Preferences
	IMC         float64
	Warning     string
	RawText     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DayColumn is the storage column for day n: day1_exercises .. day7_exercises.
func DayColumn(n int) string {
	return fmt.Sprintf("day%d_exercises", n)
}

// NewTraining builds the record stored for plan. current_day starts at 1.
func NewTraining(userID uuid.UUID, plan *training.Plan, now time.Time) *Training {
	t := &Training{
		ID:          uuid.New(),
		UserID:      userID,
		DaysPerWeek: plan.Preferences.DiasSemana,
		CurrentDay:  1,
		GeneratedAt: plan.GeneratedAt,
		AIModel:     plan.AIModel,
		Source:      plan.Source,
		Preferences: plan.Preferences,
		IMC:         plan.IMC,
		Warning:     plan.Warning,
		RawText:     plan.RawText,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for d := 1; d <= training.Week; d++ {
		t.Days[d-1] = plan.Day(d)
	}
	return t
}

// Day returns the exercises of day n (1..7), never nil.
func (t *Training) Day(n int) []training.Exercise {
	if n < 1 || n > training.Week || t.Days[n-1] == nil {
		return []training.Exercise{}
	}
	return t.Days[n-1]
}

// TrainingView is the JSON shape returned to clients.
type TrainingView struct {
	ID          uuid.UUID                      `json:"id"`
	UserID      uuid.UUID                      `json:"user_id"`
	DaysPerWeek int                            `json:"diasSemana"`
	CurrentDay  int                            `json:"current_day"`
	GeneratedAt time.Time                      `json:"generated_at"`
	AIModel     string                         `json:"ai_model"`
	Source      training.Source                `json:"source"`
	Preferences training.Preferences           `json:"user_preferences"`
	IMC         float64                        `json:"imc"`
	Warning     string                         `json:"warning,omitempty"`
	Plan        map[string][]training.Exercise `json:"plan"`
}

// View renders the record with plan keys "1".."7".
func (t *Training) View() TrainingView {
	plan := make(map[string][]training.Exercise, training.Week)
	for d := 1; d <= training.Week; d++ {
		plan[strconv.Itoa(d)] = t.Day(d)
	}
	return TrainingView{
		ID:          t.ID,
		UserID:      t.UserID,
		DaysPerWeek: t.DaysPerWeek,
		CurrentDay:  t.CurrentDay,
		GeneratedAt: t.GeneratedAt,
		AIModel:     t.AIModel,
		Source:      t.Source,
		Preferences: t.Preferences,
		IMC:         t.IMC,
		Warning:     t.Warning,
		Plan:        plan,
	}
}
