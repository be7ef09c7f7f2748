package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Rrens/fitcoach/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name       string
	configured bool
}

func (s stubProvider) Name() string              { return s.name }
func (s stubProvider) AvailableModels() []string { return []string{s.name + "-small"} }
func (s stubProvider) DefaultModel() string      { return s.name + "-small" }
func (s stubProvider) IsConfigured() bool        { return s.configured }

func (s stubProvider) Complete(ctx context.Context, req llm.Request, model string) (*llm.Response, error) {
	return &llm.Response{Text: req.Prompt, Model: model}, nil
}

func newRouter() *llm.Router {
	r := llm.NewRouter("groq")
	r.RegisterProvider(stubProvider{name: "ollama", configured: true})
	r.RegisterProvider(stubProvider{name: "groq", configured: true})
	r.RegisterProvider(stubProvider{name: "openai", configured: false})
	return r
}

func TestRouter_GetProvider(t *testing.T) {
	r := newRouter()

	p, err := r.GetProvider("")
	require.NoError(t, err)
	assert.Equal(t, "groq", p.Name())

	p, err = r.GetProvider("ollama")
	require.NoError(t, err)
	assert.Equal(t, "ollama", p.Name())

	_, err = r.GetProvider("missing")
	assert.True(t, errors.Is(err, llm.ErrProviderNotFound))

	_, err = r.GetProvider("openai")
	assert.True(t, errors.Is(err, llm.ErrNotConfigured))
}

func TestRouter_ListProviders(t *testing.T) {
	r := newRouter()
	assert.Equal(t, []string{"groq", "ollama"}, r.ListProviders())
	assert.Equal(t, "groq", r.DefaultProvider())
}

func TestRouter_GetProvidersInfo(t *testing.T) {
	infos := newRouter().GetProvidersInfo()
	require.Len(t, infos, 3)

	assert.Equal(t, "groq", infos[0].Name)
	assert.True(t, infos[0].Default)
	assert.True(t, infos[0].Configured)
	assert.Equal(t, "groq-small", infos[0].DefaultModel)

	assert.Equal(t, "ollama", infos[1].Name)
	assert.False(t, infos[1].Default)

	assert.Equal(t, "openai", infos[2].Name)
	assert.False(t, infos[2].Configured)
}
