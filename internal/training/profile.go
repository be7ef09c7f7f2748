package training

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Value is a loosely typed JSON scalar as sent by the web form: a number, a
// numeric string, a plain string or nothing at all.
type Value struct {
	raw string
	set bool
}

// NewValue builds a Value from its textual form. An empty string is unset.
func NewValue(s string) Value {
	s = strings.TrimSpace(s)
	return Value{raw: s, set: s != ""}
}

// Num builds a numeric Value.
func Num(f float64) Value {
	return Value{raw: strconv.FormatFloat(f, 'f', -1, 64), set: true}
}

// UnmarshalJSON never fails on well-formed JSON; type problems surface during validation.
func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = Value{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = NewValue(s)
		return nil
	}
	*v = Value{raw: string(b), set: true}
	return nil
}

// MarshalJSON emits numbers as numbers and everything else as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(v.raw, 64); err == nil {
		return []byte(v.raw), nil
	}
	return json.Marshal(v.raw)
}

// IsSet reports whether the field was present and non-empty.
func (v Value) IsSet() bool { return v.set }

// String returns the raw text.
func (v Value) String() string { return v.raw }

// Float parses the value as a finite number.
func (v Value) Float() (float64, bool) {
	if !v.set {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int parses the value as a whole number. "3" and 3.0 pass, 3.5 does not.
func (v Value) Int() (int, bool) {
	f, ok := v.Float()
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// LeadingInt reads the integer prefix of the value, so "60", "60.0" and "60min" all give 60.
func (v Value) LeadingInt() (int, bool) {
	if !v.set {
		return 0, false
	}
	return leadingInt(v.raw)
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Form is the raw profile exactly as the client posts it.
type Form struct {
	Altura      Value `json:"altura"`
	Peso        Value `json:"peso"`
	Biceps      Value `json:"biceps"`
	Antebraco   Value `json:"antebraco"`
	Peitoral    Value `json:"peitoral"`
	Cintura     Value `json:"cintura"`
	Ombro       Value `json:"ombro"`
	Quadriceps  Value `json:"quadriceps"`
	Coxa        Value `json:"coxa"`
	Panturrilha Value `json:"panturrilha"`
	Gluteos     Value `json:"gluteos"`
	Experiencia Value `json:"experiencia"`
	Sexo        Value `json:"sexo"`
	Local       Value `json:"local"`
	DiasSemana  Value `json:"diasSemana"`
	Objetivo    Value `json:"objetivo"`
	TempoDiario Value `json:"tempoDiario"`
	TempoAlias  Value `json:"tempo_diario"`
	TempoTreino Value `json:"tempoTreino"`
}

// DailyTime resolves the time budget across the field names clients use.
func (f Form) DailyTime() Value {
	switch {
	case f.TempoDiario.IsSet():
		return f.TempoDiario
	case f.TempoAlias.IsSet():
		return f.TempoAlias
	default:
		return f.TempoTreino
	}
}

// Experience is the training level, stored by its display label.
type Experience string

const (
	Beginner     Experience = "Iniciante"
	Intermediate Experience = "Intermediário"
	Advanced     Experience = "Avançado"
)

// Sex of the user.
type Sex string

const (
	Male   Sex = "Masculino"
	Female Sex = "Feminino"
)

// Location is where the user trains.
type Location string

const (
	Gym  Location = "Academia"
	Home Location = "Casa"
)

// Goal of the training plan.
type Goal string

const (
	MuscleGain  Goal = "Ganho de Massa"
	FatLoss     Goal = "Perda de Peso"
	Maintenance Goal = "Manter a Forma"
)

// Synonym tables, keyed by folded text. Read-only after init.
var (
	experienceSynonyms = map[string]Experience{
		"iniciante":     Beginner,
		"beginner":      Beginner,
		"intermediario": Intermediate,
		"intermediate":  Intermediate,
		"avancado":      Advanced,
		"advanced":      Advanced,
	}
	sexSynonyms = map[string]Sex{
		"masculino": Male,
		"male":      Male,
		"feminino":  Female,
		"female":    Female,
	}
	locationSynonyms = map[string]Location{
		"academia": Gym,
		"gym":      Gym,
		"casa":     Home,
		"home":     Home,
	}
	goalSynonyms = map[string]Goal{
		"ganho massa":    MuscleGain,
		"ganho de massa": MuscleGain,
		"muscle gain":    MuscleGain,
		"perda peso":     FatLoss,
		"perda de peso":  FatLoss,
		"fat loss":       FatLoss,
		"manter forma":   Maintenance,
		"manter a forma": Maintenance,
		"maintenance":    Maintenance,
	}
)

// ParseExperience maps any accepted spelling to an Experience.
func ParseExperience(s string) (Experience, bool) {
	e, ok := experienceSynonyms[fold(s)]
	return e, ok
}

// ParseSex maps any accepted spelling to a Sex.
func ParseSex(s string) (Sex, bool) {
	v, ok := sexSynonyms[fold(s)]
	return v, ok
}

// ParseLocation maps any accepted spelling to a Location.
func ParseLocation(s string) (Location, bool) {
	l, ok := locationSynonyms[fold(s)]
	return l, ok
}

// ParseGoal maps any accepted spelling to a Goal.
func ParseGoal(s string) (Goal, bool) {
	g, ok := goalSynonyms[fold(s)]
	return g, ok
}

// fold lower-cases, strips accents and collapses separators so "Ganho_de-Massa"
// and "ganho de massa" compare equal.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = strings.ToLower(out)
	out = strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, out)
	return strings.Join(strings.Fields(out), " ")
}

// AllowedMinutes lists the accepted daily time budgets.
func AllowedMinutes() []int { return []int{15, 30, 60, 90, 120} }

func validMinutes(m int) bool {
	switch m {
	case 15, 30, 60, 90, 120:
		return true
	}
	return false
}

// Profile is a validated, normalized user profile. Optional measurements are nil when absent.
type Profile struct {
	Height       float64
	Weight       float64
	Biceps       float64
	Forearm      *float64
	Chest        float64
	Waist        float64
	Shoulder     *float64
	Quadriceps   float64
	Thigh        *float64
	Calf         *float64
	Glutes       *float64
	Experience   Experience
	Sex          Sex
	Location     Location
	DaysPerWeek  int
	Goal         Goal
	DailyMinutes int
}

// Preferences is the profile snapshot stored next to a plan.
type Preferences struct {
	Experiencia Experience `json:"experiencia" bson:"experiencia"`
	Objetivo    Goal       `json:"objetivo" bson:"objetivo"`
	Local       Location   `json:"local" bson:"local"`
	DiasSemana  int        `json:"diasSemana" bson:"diasSemana"`
	Sexo        Sex        `json:"sexo" bson:"sexo"`
	TempoDiario int        `json:"tempoDiario" bson:"tempoDiario"`
}

// Preferences returns the snapshot persisted with the plan.
func (p Profile) Preferences() Preferences {
	return Preferences{
		Experiencia: p.Experience,
		Objetivo:    p.Goal,
		Local:       p.Location,
		DiasSemana:  p.DaysPerWeek,
		Sexo:        p.Sex,
		TempoDiario: p.DailyMinutes,
	}
}

// BMI is weight / height(m)^2 rounded to one decimal.
func (p Profile) BMI() float64 {
	return BMI(p.Height, p.Weight)
}

// BMI computes the body-mass index from centimetres and kilograms.
func BMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}

// BMIClass labels a BMI value.
func BMIClass(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Abaixo do peso"
	case bmi < 25:
		return "Peso normal"
	case bmi < 30:
		return "Sobrepeso"
	default:
		return "Obesidade"
	}
}
