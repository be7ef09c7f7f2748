package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rrens/fitcoach/internal/training"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorRed    = lipgloss.Color("#fb4934")
	colorDim    = lipgloss.Color("#928374")
	colorHeader = lipgloss.Color("#fe8019")

	styleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	styleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	styleRed    = lipgloss.NewStyle().Foreground(colorRed)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
)

func formatErrors(errs []string) string {
	var b strings.Builder
	b.WriteString(styleRed.Render("✗ perfil inválido") + "\n")
	for _, e := range errs {
		b.WriteString("  • " + e + "\n")
	}
	return b.String()
}

func formatProfile(p training.Profile) string {
	bmi := p.BMI()
	rows := [][]string{
		{"Altura", strconv.FormatFloat(p.Height, 'f', -1, 64) + " cm"},
		{"Peso", strconv.FormatFloat(p.Weight, 'f', -1, 64) + " kg"},
		{"IMC", fmt.Sprintf("%.1f (%s)", bmi, training.BMIClass(bmi))},
		{"Experiência", string(p.Experience)},
		{"Sexo", string(p.Sex)},
		{"Local", string(p.Location)},
		{"Objetivo", string(p.Goal)},
		{"Dias por semana", strconv.Itoa(p.DaysPerWeek)},
		{"Tempo diário", strconv.Itoa(p.DailyMinutes) + " min"},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Rows(rows...)

	return styleGreen.Render("✓ perfil válido") + "\n" + t.Render() + "\n"
}

func exerciseTable(exercises []training.Exercise) string {
	rows := make([][]string, 0, len(exercises))
	for _, e := range exercises {
		rest := "-"
		if e.Rest > 0 {
			rest = strconv.Itoa(e.Rest) + "s"
		}
		rows = append(rows, []string{e.Name, strconv.Itoa(e.Sets), e.Reps, rest})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Exercício", "Séries", "Repetições", "Descanso").
		Rows(rows...).
		Render()
}

func formatDays(days []training.DayPlan) string {
	var b strings.Builder
	for _, d := range days {
		title := fmt.Sprintf("DIA %d", d.Day)
		if d.Group != "" {
			title += ": " + d.Group
		}
		b.WriteString(styleHeader.Render(title) + "\n")
		b.WriteString(exerciseTable(d.Exercises) + "\n\n")
	}
	return b.String()
}

func formatPlan(plan *training.Plan) string {
	var b strings.Builder

	source := styleGreen.Render(string(plan.Source))
	if plan.IsFallback() {
		source = styleYellow.Render(string(plan.Source))
	}
	fmt.Fprintf(&b, "%s %s  %s %s  %s %.1f\n\n",
		styleDim.Render("modelo"), plan.AIModel,
		styleDim.Render("origem"), source,
		styleDim.Render("imc"), plan.IMC)

	if plan.Warning != "" {
		b.WriteString(styleYellow.Render(plan.Warning) + "\n\n")
	}

	for d := 1; d <= training.Week; d++ {
		exercises := plan.Days[d]
		if len(exercises) == 0 {
			continue
		}
		title := fmt.Sprintf("DIA %d", d)
		if g := plan.Groups[d]; g != "" {
			title += ": " + g
		}
		b.WriteString(styleHeader.Render(title) + "\n")
		b.WriteString(exerciseTable(exercises) + "\n\n")
	}
	return b.String()
}

func formatTrace(trace []training.Stage) string {
	names := make([]string, len(trace))
	for i, s := range trace {
		names[i] = s.String()
	}
	return styleDim.Render(strings.Join(names, " → ")) + "\n"
}
