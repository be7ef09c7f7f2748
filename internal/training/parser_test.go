package training_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Rrens/fitcoach/internal/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleDayTable(t *testing.T) {
	text := "## DIA 1: Peito\n| Exercício | Séries | Repetições | Descanso |\n|---|---|---|---|\n| Supino | 4 | 8-10 | 90s |"

	days, ok := training.Parse(text)
	require.True(t, ok)
	require.Len(t, days, 1)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, "Peito", days[0].Group)
	assert.Equal(t, []training.Exercise{{Name: "Supino", Sets: 4, Reps: "8-10", Rest: 90}}, days[0].Exercises)
}

func renderDays(days []training.DayPlan) string {
	var b strings.Builder
	b.WriteString("Aqui está o seu plano:\n\n")
	for _, d := range days {
		fmt.Fprintf(&b, "## DIA %d: %s\n\n", d.Day, d.Group)
		b.WriteString("| Exercício | Séries | Repetições | Descanso |\n")
		b.WriteString("|-----------|--------|------------|----------|\n")
		for _, e := range d.Exercises {
			fmt.Fprintf(&b, "| %s | %d | %s | %ds |\n", e.Name, e.Sets, e.Reps, e.Rest)
		}
		b.WriteString("\n**Observações:** mantenha a técnica.\n\n")
	}
	return b.String()
}

func TestParse_RoundTrip(t *testing.T) {
	want := []training.DayPlan{
		{Day: 1, Group: "Peito e Tríceps", Exercises: []training.Exercise{
			{Name: "Supino reto", Sets: 4, Reps: "8-10", Rest: 90},
			{Name: "Tríceps corda", Sets: 3, Reps: "12", Rest: 60},
		}},
		{Day: 2, Group: "Costas", Exercises: []training.Exercise{
			{Name: "Remada curvada", Sets: 4, Reps: "6-8", Rest: 120},
		}},
		{Day: 3, Group: "Pernas", Exercises: []training.Exercise{
			{Name: "Agachamento", Sets: 5, Reps: "5", Rest: 150},
			{Name: "Leg press", Sets: 3, Reps: "10-12", Rest: 90},
			{Name: "Panturrilha em pé", Sets: 4, Reps: "15-20", Rest: 45},
		}},
	}

	got, ok := training.Parse(renderDays(want))
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestParse_Defaults(t *testing.T) {
	text := `## DIA 2: Costas
| Exercício | Séries | Repetições | Descanso |
|---|---|---|---|
| Barra fixa | três | 6-8 | 90s |
| Remada | 4 | 10 |
| Pulldown | 0 | 12 | - |
| Crucifixo inverso | 3 | 15 | 0s |
| Face pull | 3 | 15 | 1 min |`

	days, ok := training.Parse(text)
	require.True(t, ok)
	require.Len(t, days, 1)

	ex := days[0].Exercises
	require.Len(t, ex, 5)
	assert.Equal(t, training.Exercise{Name: "Barra fixa", Sets: 3, Reps: "6-8", Rest: 90}, ex[0])
	assert.Equal(t, training.Exercise{Name: "Remada", Sets: 4, Reps: "10", Rest: 60}, ex[1])
	assert.Equal(t, training.Exercise{Name: "Pulldown", Sets: 3, Reps: "12", Rest: 60}, ex[2])
	assert.Equal(t, 0, ex[3].Rest)
	assert.Equal(t, 60, ex[4].Rest)
}

func TestParse_RestUnits(t *testing.T) {
	tests := map[string]int{
		"90s":            90,
		"90 segundos":    90,
		"60s (mínimo)":   60,
		"60 seg, min":    60,
		"2 min":          120,
		"2min":           120,
		"1 minuto":       60,
		"1min30s":        90,
		"1 min 30 seg":   90,
		"1-2 min":        60,
		"60 a 90s":       60,
		"descanso livre": 60,
	}
	for cell, want := range tests {
		t.Run(cell, func(t *testing.T) {
			text := "## DIA 1: Peito\n| Exercício | Séries | Repetições | Descanso |\n| Supino | 4 | 8-10 | " + cell + " |"
			days, ok := training.Parse(text)
			require.True(t, ok)
			assert.Equal(t, want, days[0].Exercises[0].Rest)
		})
	}
}

func TestParse_HeaderNeedsPipes(t *testing.T) {
	text := `## DIA 1: Peito
Faça cada exercício com 3 séries.
| Supino | 4 | 8-10 | 90s |`

	_, ok := training.Parse(text)
	assert.False(t, ok)
}

func TestParse_TableBoundaries(t *testing.T) {
	text := `## DIA 1: Full body

Antes da tabela | não conta

| Exercício | Séries | Repetições | Descanso |
|---|---|---|---|
| Burpee | 3 | 15 | 30s |

**Observações:** foco na respiração.
| Fora da tabela | 3 | 10 | 60s |

## DIA 4: **Cardio**
| Exercício | Séries | Repetições | Descanso |
|:--|:-:|:-:|--:|
| Corrida | 1 | 20 min | 0 |`

	days, ok := training.Parse(text)
	require.True(t, ok)
	require.Len(t, days, 2)

	assert.Equal(t, []training.Exercise{{Name: "Burpee", Sets: 3, Reps: "15", Rest: 30}}, days[0].Exercises)
	assert.Equal(t, 4, days[1].Day)
	assert.Equal(t, "Cardio", days[1].Group)
	assert.Equal(t, "20 min", days[1].Exercises[0].Reps)
}

func TestParse_Failure(t *testing.T) {
	tests := map[string]string{
		"empty":        "",
		"prose":        "Desculpe, não posso ajudar com isso.",
		"header only":  "## DIA 1: Peito\nSem tabela hoje.",
		"no table row": "## DIA 1: Peito\n| Exercício | Séries | Repetições | Descanso |\n|---|---|---|---|\n",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			days, ok := training.Parse(text)
			assert.False(t, ok)
			assert.Empty(t, days)
		})
	}
}

func TestParse_KeepsOracleDayNumbers(t *testing.T) {
	text := "## DIA 9: Extra\n| Exercício | Séries | Repetições | Descanso |\n| Prancha | 3 | 30s | 30 |\n" +
		"## dia 1: Peito\n| Exercício | Séries | Repetições | Descanso |\n| Supino | 4 | 8 | 90 |\n"

	days, ok := training.Parse(text)
	require.True(t, ok)
	require.Len(t, days, 2)
	assert.Equal(t, 9, days[0].Day)
	assert.Equal(t, 1, days[1].Day)
}
