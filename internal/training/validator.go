package training

import "fmt"

// Range is an inclusive numeric interval.
type Range struct {
	Min float64 `mapstructure:"min" json:"min"`
	Max float64 `mapstructure:"max" json:"max"`
}

// Contains reports whether f lies inside the range.
func (r Range) Contains(f float64) bool {
	return f >= r.Min && f <= r.Max
}

// Bounds holds the accepted interval for every body measurement, in cm and kg.
type Bounds struct {
	Height     Range
	Weight     Range
	Biceps     Range
	Forearm    Range
	Chest      Range
	Waist      Range
	Shoulder   Range
	Quadriceps Range
	Thigh      Range
	Calf       Range
	Glutes     Range
}

// DefaultBounds returns the product defaults.
func DefaultBounds() Bounds {
	return Bounds{
		Height:     Range{100, 250},
		Weight:     Range{30, 500},
		Biceps:     Range{10, 70},
		Forearm:    Range{10, 60},
		Chest:      Range{50, 200},
		Waist:      Range{40, 200},
		Shoulder:   Range{70, 200},
		Quadriceps: Range{30, 100},
		Thigh:      Range{30, 100},
		Calf:       Range{20, 70},
		Glutes:     Range{60, 200},
	}
}

// With overrides the range of one measurement, addressed by its form field name.
func (b Bounds) With(field string, r Range) (Bounds, error) {
	if r.Min > r.Max {
		return b, fmt.Errorf("invalid range for %s: min %g > max %g", field, r.Min, r.Max)
	}
	switch field {
	case "altura":
		b.Height = r
	case "peso":
		b.Weight = r
	case "biceps":
		b.Biceps = r
	case "antebraco":
		b.Forearm = r
	case "peitoral":
		b.Chest = r
	case "cintura":
		b.Waist = r
	case "ombro":
		b.Shoulder = r
	case "quadriceps":
		b.Quadriceps = r
	case "coxa":
		b.Thigh = r
	case "panturrilha":
		b.Calf = r
	case "gluteos":
		b.Glutes = r
	default:
		return b, fmt.Errorf("unknown measurement: %s", field)
	}
	return b, nil
}

// Validator checks raw forms against a set of bounds.
type Validator struct {
	bounds Bounds
}

// NewValidator creates a validator with the given bounds.
func NewValidator(bounds Bounds) Validator {
	return Validator{bounds: bounds}
}

// Bounds returns the bounds in use.
func (v Validator) Bounds() Bounds {
	return v.bounds
}

// Validate checks every field and returns all violations in form order.
// An empty result means the form is valid.
func (v Validator) Validate(f Form) []string {
	_, errs := v.check(f)
	return errs
}

// Normalize validates the form and returns the normalized profile, or a
// *ValidationError carrying every violation.
func (v Validator) Normalize(f Form) (Profile, error) {
	p, errs := v.check(f)
	if len(errs) > 0 {
		return Profile{}, &ValidationError{Errors: errs}
	}
	return p, nil
}

// Validate checks a form against DefaultBounds.
func Validate(f Form) []string {
	return NewValidator(DefaultBounds()).Validate(f)
}

func (v Validator) check(f Form) (Profile, []string) {
	var (
		p    Profile
		errs []string
		b    = v.bounds
	)

	required := func(val Value, r Range, dst *float64, msg string) {
		n, ok := val.Float()
		if !ok || !r.Contains(n) {
			errs = append(errs, msg)
			return
		}
		*dst = n
	}
	// Blank or zero optional measurements count as not provided.
	optional := func(val Value, r Range, dst **float64, msg string) {
		if !val.IsSet() {
			return
		}
		n, ok := val.Float()
		if ok && n == 0 {
			return
		}
		if !ok || !r.Contains(n) {
			errs = append(errs, msg)
			return
		}
		*dst = &n
	}

	required(f.Altura, b.Height, &p.Height,
		fmt.Sprintf("Altura inválida (deve estar entre %s e %s cm)", formatNum(b.Height.Min), formatNum(b.Height.Max)))
	required(f.Peso, b.Weight, &p.Weight,
		fmt.Sprintf("Peso inválido (deve estar entre %s e %s kg)", formatNum(b.Weight.Min), formatNum(b.Weight.Max)))
	required(f.Biceps, b.Biceps, &p.Biceps, "Medida de bíceps inválida")
	optional(f.Antebraco, b.Forearm, &p.Forearm, "Medida de antebraço inválida")
	required(f.Peitoral, b.Chest, &p.Chest, "Medida de peitoral inválida")
	required(f.Cintura, b.Waist, &p.Waist, "Medida de cintura inválida")
	optional(f.Ombro, b.Shoulder, &p.Shoulder, "Medida de ombro inválida")
	required(f.Quadriceps, b.Quadriceps, &p.Quadriceps, "Medida de quadríceps inválida")
	optional(f.Coxa, b.Thigh, &p.Thigh, "Medida de coxa inválida")
	optional(f.Panturrilha, b.Calf, &p.Calf, "Medida de panturrilha inválida")
	optional(f.Gluteos, b.Glutes, &p.Glutes, "Medida de glúteos inválida")

	var ok bool
	if p.Experience, ok = ParseExperience(f.Experiencia.String()); !ok {
		errs = append(errs, "Nível de experiência inválido")
	}
	if p.Sex, ok = ParseSex(f.Sexo.String()); !ok {
		errs = append(errs, "Sexo inválido")
	}
	if p.Location, ok = ParseLocation(f.Local.String()); !ok {
		errs = append(errs, "Local de treino inválido")
	}
	if days, ok := f.DiasSemana.Int(); !ok || days < 1 || days > 7 {
		errs = append(errs, "Dias por semana inválido (deve estar entre 1 e 7)")
	} else {
		p.DaysPerWeek = days
	}
	if p.Goal, ok = ParseGoal(f.Objetivo.String()); !ok {
		errs = append(errs, "Objetivo inválido")
	}
	if minutes, ok := f.DailyTime().LeadingInt(); !ok || !validMinutes(minutes) {
		errs = append(errs, "Tempo diário de treino inválido (escolha entre 15, 30, 60, 90 ou 120 minutos)")
	} else {
		p.DailyMinutes = minutes
	}

	return p, errs
}
