package training

import (
	"context"
	"strings"
	"time"
)

// Stage is a step of the generation pipeline.
type Stage int

const (
	StageValidating Stage = iota
	StagePrompting
	StageAwaitingOracle
	StageParsing
	StageFallback
	StageFormatting
	StageDone
	StageRejected
)

func (s Stage) String() string {
	switch s {
	case StageValidating:
		return "validating"
	case StagePrompting:
		return "prompting"
	case StageAwaitingOracle:
		return "awaiting_oracle"
	case StageParsing:
		return "parsing"
	case StageFallback:
		return "fallback"
	case StageFormatting:
		return "formatting"
	case StageDone:
		return "done"
	case StageRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Completion is the oracle's answer.
type Completion struct {
	Text  string
	Model string
}

// Oracle turns a system instruction and a prompt into free text.
type Oracle interface {
	Complete(ctx context.Context, system, prompt string) (*Completion, error)
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(ctx context.Context, system, prompt string) (*Completion, error)

// Complete calls f.
func (f OracleFunc) Complete(ctx context.Context, system, prompt string) (*Completion, error) {
	return f(ctx, system, prompt)
}

// Result is the outcome of one generation run.
type Result struct {
	Plan    *Plan
	Profile Profile
	Prompt  string
	Trace   []Stage
	// FallbackReason is the oracle or parse error that led to the fallback plan.
	FallbackReason error
}

// Fallback reports whether the fallback generator produced the plan.
func (r *Result) Fallback() bool {
	return r.FallbackReason != nil
}

func (r *Result) enter(s Stage) {
	r.Trace = append(r.Trace, s)
}

// Generator runs validate, prompt, oracle, parse and format in sequence. It
// holds no mutable state and is safe for concurrent use.
type Generator struct {
	validator Validator
	oracle    Oracle
	now       func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithBounds replaces the default measurement bounds.
func WithBounds(b Bounds) Option {
	return func(g *Generator) { g.validator = NewValidator(b) }
}

// WithClock sets the time source used for generated_at.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator creates a generator. A nil oracle always yields fallback plans.
func NewGenerator(oracle Oracle, opts ...Option) *Generator {
	g := &Generator{
		validator: NewValidator(DefaultBounds()),
		oracle:    oracle,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Validator returns the validator the generator uses.
func (g *Generator) Validator() Validator {
	return g.validator
}

// Generate turns a raw form into a plan. Invalid forms return a *ValidationError
// and never reach the oracle. Oracle failures and unparseable replies are not
// errors: they produce a fallback plan with FallbackReason set. The oracle is
// called at most once.
func (g *Generator) Generate(ctx context.Context, form Form) (*Result, error) {
	res := &Result{}

	res.enter(StageValidating)
	profile, err := g.validator.Normalize(form)
	if err != nil {
		res.enter(StageRejected)
		return nil, err
	}
	res.Profile = profile

	res.enter(StagePrompting)
	res.Prompt = BuildPrompt(profile)

	res.enter(StageAwaitingOracle)
	completion, err := g.ask(ctx, res.Prompt)
	if err != nil {
		return g.fallback(res, err, ""), nil
	}

	res.enter(StageParsing)
	text := strings.TrimSpace(completion.Text)
	days, ok := Parse(text)
	if !ok || !anyDayWithin(days, profile.DaysPerWeek) {
		return g.fallback(res, ErrNoDaysParsed, text), nil
	}

	res.enter(StageFormatting)
	res.Plan = Format(days, profile, text, completion.Model, g.now())
	res.enter(StageDone)
	return res, nil
}

// anyDayWithin reports whether a parsed day survives formatting for a week of n days.
func anyDayWithin(days []DayPlan, n int) bool {
	for _, d := range days {
		if d.Day >= 1 && d.Day <= n && d.Day <= Week {
			return true
		}
	}
	return false
}

func (g *Generator) ask(ctx context.Context, prompt string) (*Completion, error) {
	if g.oracle == nil {
		return nil, ErrNoOracle
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	completion, err := g.oracle.Complete(ctx, SystemInstruction, prompt)
	if err != nil {
		return nil, err
	}
	if completion == nil {
		return &Completion{}, nil
	}
	return completion, nil
}

func (g *Generator) fallback(res *Result, reason error, rawText string) *Result {
	res.FallbackReason = reason

	res.enter(StageFallback)
	days := FallbackDays(res.Profile)

	res.enter(StageFormatting)
	res.Plan = markFallback(Format(days, res.Profile, rawText, FallbackModel, g.now()))
	res.enter(StageDone)
	return res
}
