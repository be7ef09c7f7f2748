package training

import (
	"fmt"
	"strconv"
	"strings"
)

// SystemInstruction is sent as the system message of every plan request.
const SystemInstruction = "Você é um personal trainer especializado. Forneça planos de treino personalizados, seguros e eficazes. Use tabelas Markdown com | pipes | para os exercícios."

// Band describes how much work fits into a daily time budget.
type Band struct {
	Minutes   int
	Label     string
	Exercises string
	Rest      string
	Guidance  string
	Focus     string
}

// BandFor picks the band for a time budget. Budgets between steps round up to the next band.
func BandFor(minutes int) Band {
	switch {
	case minutes <= 15:
		return Band{
			Minutes:   15,
			Label:     "15 minutos",
			Exercises: "5-6",
			Rest:      "30-45 segundos",
			Guidance:  "5 a 6 exercícios rápidos, com pouco descanso (30-45 segundos) e foco em intensidade",
			Focus:     "Treino ultra-rápido de 15 minutos, focando em exercícios multiarticulares e circuitos.",
		}
	case minutes <= 30:
		return Band{
			Minutes:   30,
			Label:     "30 minutos",
			Exercises: "8-10",
			Rest:      "45-60 segundos",
			Guidance:  "8 a 10 exercícios, descanso moderado (45-60 segundos), combinando compostos e isolados",
			Focus:     "Treino eficiente de 30 minutos, com bom equilíbrio entre volume e intensidade.",
		}
	case minutes <= 60:
		return Band{
			Minutes:   60,
			Label:     "1 hora",
			Exercises: "11-14",
			Rest:      "60-90 segundos",
			Guidance:  "11 a 14 exercícios, descanso entre 60-90 segundos",
			Focus:     "Treino completo de aproximadamente 1 hora, com foco em hipertrofia.",
		}
	case minutes <= 90:
		return Band{
			Minutes:   90,
			Label:     "1 hora e 30 minutos",
			Exercises: "14-17",
			Rest:      "60-90 segundos",
			Guidance:  "14 a 17 exercícios, descanso entre 60-90 segundos, podendo incluir técnicas avançadas",
			Focus:     "Treino mais longo (1h30), misturando força e hipertrofia.",
		}
	default:
		return Band{
			Minutes:   120,
			Label:     "2 horas",
			Exercises: "17-20",
			Rest:      "90-120 segundos",
			Guidance:  "17 a 20 exercícios, descanso entre 90-120 segundos para movimentos mais pesados",
			Focus:     "Treino bastante completo de até 2 horas, cobrindo grandes grupos musculares.",
		}
	}
}

func experienceRange(e Experience) string {
	switch e {
	case Beginner:
		return "0-6 meses de experiência"
	case Intermediate:
		return "6-24 meses de experiência"
	default:
		return "24+ meses de experiência"
	}
}

func experienceAdvice(e Experience) string {
	switch e {
	case Beginner:
		return "Foque em técnica e adaptação do corpo."
	case Intermediate:
		return "Aumente volume e intensidade progressivamente."
	default:
		return "Trabalhe periodização e técnicas avançadas."
	}
}

func goalDescription(g Goal) string {
	switch g {
	case MuscleGain:
		return "ganho de massa muscular (hipertrofia)"
	case FatLoss:
		return "perda de peso e definição muscular"
	default:
		return "manutenção e tônus muscular"
	}
}

func goalAdvice(g Goal) string {
	switch g {
	case MuscleGain:
		return "Priorize exercícios compostos com 6-12 reps."
	case FatLoss:
		return "Inclua cardio e trabalhe com mais repetições."
	default:
		return "Mantenha volume moderado e consistência."
	}
}

func equipmentRule(l Location) string {
	if l == Home {
		return "Use APENAS exercícios de PESO CORPORAL (flexões, agachamentos sem peso, prancha, burpees, polichinelos, abdominais, lunges, mountain climbers) e, NO MÁXIMO, halteres/dumbbells leves (até 10kg). NÃO use barras fixas, barras para supino, máquinas, polias, cabos ou qualquer equipamento de academia."
	}
	return "Use todos os equipamentos de academia disponíveis (barras, máquinas, polias, cabos, smith machine, leg press, etc.)."
}

// BuildPrompt renders the instruction sent to the oracle. Same profile, same prompt.
func BuildPrompt(p Profile) string {
	bmi := p.BMI()
	band := BandFor(p.DailyMinutes)

	var measures strings.Builder
	line := func(label string, v float64) {
		fmt.Fprintf(&measures, "- %s: %s\n", label, formatNum(v))
	}
	optional := func(label string, v *float64) {
		if v != nil {
			line(label, *v)
		}
	}
	line("Bíceps", p.Biceps)
	optional("Antebraço", p.Forearm)
	line("Peitoral", p.Chest)
	line("Cintura", p.Waist)
	optional("Ombro", p.Shoulder)
	line("Quadríceps", p.Quadriceps)
	optional("Coxa", p.Thigh)
	optional("Panturrilha", p.Calf)
	optional("Glúteos", p.Glutes)

	return fmt.Sprintf(`Você é um personal trainer especializado em criar planos de treino personalizados. Seu objetivo é criar um treino de alta qualidade, seguro e eficaz.

DADOS BIOMÉTRICOS DO CLIENTE:
- Sexo: %s
- Altura: %s cm
- Peso: %s kg
- IMC: %s (%s)

MEDIDAS CORPORAIS (cm):
%s
PERFIL DE TREINO:
- Nível: %s (%s)
- Objetivo: %s
- Local de treino: %s
- Frequência: %d dias por semana
- Tempo disponível por dia: %s

INSTRUÇÕES IMPORTANTES:
1. Crie um plano de treino de EXATAMENTE %d dias.
2. O treino de CADA dia deve caber dentro de %s.
3. Para este tempo disponível, utilize aproximadamente %s.
4. %s
5. Para nível %s: %s
6. Para objetivo %s: %s

ESTRUTURA ESPERADA:

Para cada dia, forneça em FORMATO MARKDOWN COM TABELA:

## DIA [número]: [GRUPO MUSCULAR PRINCIPAL]

| Exercício | Séries | Repetições | Descanso |
|-----------|--------|------------|----------|
| Nome do exercício | X | Y-Z | Xs |

**Observações:** [Dicas específicas de execução e progressão]

IMPORTANTE:
- Use EXATAMENTE este formato com | pipes | para os exercícios.
- Garanta que o volume caiba em %s por dia.
- Respeite o foco de tempo: %s
`,
		p.Sex, formatNum(p.Height), formatNum(p.Weight), formatNum(bmi), BMIClass(bmi),
		measures.String(),
		p.Experience, experienceRange(p.Experience),
		goalDescription(p.Goal),
		p.Location,
		p.DaysPerWeek,
		band.Label,
		p.DaysPerWeek,
		band.Label,
		band.Guidance,
		equipmentRule(p.Location),
		p.Experience, experienceAdvice(p.Experience),
		p.Goal, goalAdvice(p.Goal),
		band.Label,
		band.Focus,
	)
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
