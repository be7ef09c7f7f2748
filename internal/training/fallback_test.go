package training_test

import (
	"testing"

	"github.com/Rrens/fitcoach/internal/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallback_DaysMatchFrequency(t *testing.T) {
	p := beginnerProfile(t)
	for days := 1; days <= 7; days++ {
		p.DaysPerWeek = days
		plan := training.Fallback(p, fixedNow)

		assert.Equal(t, days, plan.PopulatedDays())
		for d := days + 1; d <= 7; d++ {
			assert.Empty(t, plan.Days[d])
			assert.NotNil(t, plan.Days[d])
		}
		assert.Equal(t, training.FallbackWarning, plan.Warning)
		assert.True(t, plan.IsFallback())
		assert.Equal(t, training.FallbackModel, plan.AIModel)
	}
}

func TestFallback_TemplatesByLevel(t *testing.T) {
	tests := []struct {
		level training.Experience
		main  []string
	}{
		{training.Beginner, []string{"Flexão de braço", "Agachamento corporal", "Prancha"}},
		{training.Intermediate, []string{"Supino com halteres", "Agachamento com peso", "Rosca direta"}},
		{training.Advanced, []string{"Supino com barra", "Agachamento com barra", "Rosca com barra"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			session := training.FallbackSession(tt.level)
			require.Len(t, session, 6)

			assert.Equal(t, "Corrida ou caminhada", session[0].Name)
			assert.Equal(t, "Mobilidade dinâmica", session[1].Name)
			for i, name := range tt.main {
				assert.Equal(t, name, session[2+i].Name)
				assert.Positive(t, session[2+i].Sets)
			}
			assert.Equal(t, training.Exercise{Name: "Alongamento estático", Sets: 1, Reps: "10 min", Rest: 0}, session[5])
		})
	}
}

func TestFallback_DaysAreIndependentCopies(t *testing.T) {
	p := beginnerProfile(t)
	plan := training.Fallback(p, fixedNow)

	plan.Days[1][0].Name = "changed"
	assert.Equal(t, "Corrida ou caminhada", plan.Days[2][0].Name)
	assert.Equal(t, "Corrida ou caminhada", training.Fallback(p, fixedNow).Days[1][0].Name)
}
