package training_test

import (
	"strings"
	"testing"

	"github.com/Rrens/fitcoach/internal/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beginnerProfile(t *testing.T) training.Profile {
	t.Helper()
	p, err := training.NewValidator(training.DefaultBounds()).Normalize(decodeForm(t, beginnerGymForm))
	require.NoError(t, err)
	return p
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	p := beginnerProfile(t)
	assert.Equal(t, training.BuildPrompt(p), training.BuildPrompt(p))
}

func TestBuildPrompt_Content(t *testing.T) {
	prompt := training.BuildPrompt(beginnerProfile(t))

	mustContain := []string{
		"- Sexo: Masculino",
		"- Altura: 175 cm",
		"- IMC: 24.5 (Peso normal)",
		"- Bíceps: 35",
		"- Nível: Iniciante (0-6 meses de experiência)",
		"- Objetivo: ganho de massa muscular (hipertrofia)",
		"Crie um plano de treino de EXATAMENTE 3 dias.",
		"deve caber dentro de 1 hora.",
		"11 a 14 exercícios",
		"Use todos os equipamentos de academia",
		"## DIA [número]: [GRUPO MUSCULAR PRINCIPAL]",
		"| Exercício | Séries | Repetições | Descanso |",
		"**Observações:**",
	}
	for _, s := range mustContain {
		assert.Contains(t, prompt, s)
	}

	assert.NotContains(t, prompt, "Antebraço", "absent optional measurements are omitted")
}

func TestBuildPrompt_HomeForbidsEquipment(t *testing.T) {
	p := beginnerProfile(t)
	p.Location = training.Home
	forearm := 28.0
	p.Forearm = &forearm

	prompt := training.BuildPrompt(p)
	assert.Contains(t, prompt, "PESO CORPORAL")
	assert.Contains(t, prompt, "NÃO use barras fixas, barras para supino, máquinas, polias, cabos")
	assert.NotContains(t, prompt, "Use todos os equipamentos")
	assert.Contains(t, prompt, "- Antebraço: 28")
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		minutes   int
		exercises string
		label     string
	}{
		{15, "5-6", "15 minutos"},
		{30, "8-10", "30 minutos"},
		{60, "11-14", "1 hora"},
		{90, "14-17", "1 hora e 30 minutos"},
		{120, "17-20", "2 horas"},
	}
	for _, tt := range tests {
		b := training.BandFor(tt.minutes)
		assert.Equal(t, tt.exercises, b.Exercises)
		assert.Equal(t, tt.label, b.Label)
		assert.NotEmpty(t, b.Rest)
	}
}

func TestBuildPrompt_BandFollowsBudget(t *testing.T) {
	p := beginnerProfile(t)
	for _, m := range training.AllowedMinutes() {
		p.DailyMinutes = m
		band := training.BandFor(m)
		prompt := training.BuildPrompt(p)
		assert.True(t, strings.Contains(prompt, band.Guidance), "minutes=%d", m)
		assert.True(t, strings.Contains(prompt, band.Focus), "minutes=%d", m)
	}
}
