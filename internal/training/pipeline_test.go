package training_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rrens/fitcoach/internal/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRateLimited = errors.New("rate limited")

type recordingOracle struct {
	calls  int
	system string
	prompt string
	reply  *training.Completion
	err    error
}

func (o *recordingOracle) Complete(ctx context.Context, system, prompt string) (*training.Completion, error) {
	o.calls++
	o.system = system
	o.prompt = prompt
	return o.reply, o.err
}

func newGenerator(o training.Oracle) *training.Generator {
	return training.NewGenerator(o, training.WithClock(func() time.Time { return fixedNow }))
}

func TestGenerate_OraclePath(t *testing.T) {
	oracle := &recordingOracle{reply: &training.Completion{
		Model: "llama-3.3-70b-versatile",
		Text: "## DIA 1: Peito\n| Exercício | Séries | Repetições | Descanso |\n|---|---|---|---|\n| Supino | 4 | 8-10 | 90s |\n\n" +
			"## DIA 2: Costas\n| Exercício | Séries | Repetições | Descanso |\n|---|---|---|---|\n| Remada | 4 | 10 | 60s |\n",
	}}

	res, err := newGenerator(oracle).Generate(context.Background(), decodeForm(t, beginnerGymForm))
	require.NoError(t, err)

	assert.Equal(t, 1, oracle.calls)
	assert.Equal(t, training.SystemInstruction, oracle.system)
	assert.Equal(t, res.Prompt, oracle.prompt)

	assert.False(t, res.Fallback())
	assert.Equal(t, training.SourceOracle, res.Plan.Source)
	assert.Equal(t, "llama-3.3-70b-versatile", res.Plan.AIModel)
	assert.Equal(t, 2, res.Plan.PopulatedDays())
	assert.Empty(t, res.Plan.Warning)
	assert.Equal(t, []training.Stage{
		training.StageValidating, training.StagePrompting, training.StageAwaitingOracle,
		training.StageParsing, training.StageFormatting, training.StageDone,
	}, res.Trace)
}

func TestGenerate_OracleFailureFallsBack(t *testing.T) {
	oracle := &recordingOracle{err: errRateLimited}

	res, err := newGenerator(oracle).Generate(context.Background(), decodeForm(t, beginnerGymForm))
	require.NoError(t, err)

	assert.True(t, res.Fallback())
	assert.ErrorIs(t, res.FallbackReason, errRateLimited)
	assert.Equal(t, 3, res.Plan.PopulatedDays())
	assert.Equal(t, training.FallbackWarning, res.Plan.Warning)
	assert.Equal(t, []training.Stage{
		training.StageValidating, training.StagePrompting, training.StageAwaitingOracle,
		training.StageFallback, training.StageFormatting, training.StageDone,
	}, res.Trace)
	assert.Equal(t, 1, oracle.calls, "no retries")
}

func TestGenerate_UnparseableReplyFallsBack(t *testing.T) {
	oracle := &recordingOracle{reply: &training.Completion{Text: "Não consigo gerar tabelas agora.", Model: "m"}}

	res, err := newGenerator(oracle).Generate(context.Background(), decodeForm(t, beginnerGymForm))
	require.NoError(t, err)

	assert.ErrorIs(t, res.FallbackReason, training.ErrNoDaysParsed)
	assert.Equal(t, "Não consigo gerar tabelas agora.", res.Plan.RawText)
	assert.Contains(t, res.Trace, training.StageParsing)
	assert.Equal(t, 3, res.Plan.PopulatedDays())
}

func TestGenerate_DaysOutsideWeekFallBack(t *testing.T) {
	text := "## DIA 4: Extra\n| Exercício | Séries | Repetições | Descanso |\n|---|---|---|---|\n| Supino | 4 | 8-10 | 90s |\n\n" +
		"## DIA 0: Aquecimento\n| Exercício | Séries | Repetições | Descanso |\n|---|---|---|---|\n| Polichinelo | 2 | 30 | 30s |\n"
	oracle := &recordingOracle{reply: &training.Completion{Text: text, Model: "m"}}

	res, err := newGenerator(oracle).Generate(context.Background(), decodeForm(t, beginnerGymForm))
	require.NoError(t, err)

	assert.True(t, res.Fallback())
	assert.ErrorIs(t, res.FallbackReason, training.ErrNoDaysParsed)
	assert.Equal(t, training.SourceFallback, res.Plan.Source)
	assert.Equal(t, training.FallbackWarning, res.Plan.Warning)
	assert.Equal(t, 3, res.Plan.PopulatedDays())
	assert.Equal(t, text, res.Plan.RawText)
}

func TestGenerate_NilCompletionFallsBack(t *testing.T) {
	res, err := newGenerator(&recordingOracle{}).Generate(context.Background(), decodeForm(t, beginnerGymForm))
	require.NoError(t, err)
	assert.ErrorIs(t, res.FallbackReason, training.ErrNoDaysParsed)
}

func TestGenerate_NoOracle(t *testing.T) {
	res, err := newGenerator(nil).Generate(context.Background(), decodeForm(t, beginnerGymForm))
	require.NoError(t, err)
	assert.ErrorIs(t, res.FallbackReason, training.ErrNoOracle)
	assert.True(t, res.Plan.IsFallback())
}

func TestGenerate_CancelledContextSkipsOracle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	oracle := &recordingOracle{}

	res, err := newGenerator(oracle).Generate(ctx, decodeForm(t, beginnerGymForm))
	require.NoError(t, err)
	assert.ErrorIs(t, res.FallbackReason, context.Canceled)
	assert.Zero(t, oracle.calls)
}

func TestGenerate_Rejected(t *testing.T) {
	oracle := &recordingOracle{}
	f := decodeForm(t, beginnerGymForm)
	f.Peso = training.Num(10)

	res, err := newGenerator(oracle).Generate(context.Background(), f)

	assert.Nil(t, res)
	var verr *training.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Peso inválido (deve estar entre 30 e 500 kg)"}, verr.Errors)
	assert.Zero(t, oracle.calls, "invalid input never reaches the oracle")
}

func TestGenerate_CustomBounds(t *testing.T) {
	b, err := training.DefaultBounds().With("peso", training.Range{Min: 5, Max: 300})
	require.NoError(t, err)
	f := decodeForm(t, beginnerGymForm)
	f.Peso = training.Num(10)

	g := training.NewGenerator(nil, training.WithBounds(b))
	res, err := g.Generate(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 10.0, res.Profile.Weight)
}

func TestOracleFunc(t *testing.T) {
	var o training.Oracle = training.OracleFunc(func(ctx context.Context, system, prompt string) (*training.Completion, error) {
		return &training.Completion{Text: prompt}, nil
	})
	c, err := o.Complete(context.Background(), "s", "p")
	require.NoError(t, err)
	assert.Equal(t, "p", c.Text)
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "awaiting_oracle", training.StageAwaitingOracle.String())
	assert.Equal(t, "rejected", training.StageRejected.String())
}
