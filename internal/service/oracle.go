package service

import (
	"context"
	"time"

	"github.com/Rrens/fitcoach/internal/llm"
	"github.com/Rrens/fitcoach/internal/training"
)

// OracleParams selects the provider and sampling of one kind of request
type OracleParams struct {
	Provider    string
	Model       string
	MaxTokens   int
	Temperature float64
	TopP        float64
	Timeout     time.Duration
}

// RouterOracle answers training.Oracle calls through the LLM router
type RouterOracle struct {
	router *llm.Router
	params OracleParams
}

// NewRouterOracle creates an oracle backed by the router's provider
func NewRouterOracle(router *llm.Router, params OracleParams) *RouterOracle {
	return &RouterOracle{router: router, params: params}
}

// Complete sends one request, bounded by the configured timeout
func (o *RouterOracle) Complete(ctx context.Context, system, prompt string) (*training.Completion, error) {
	resp, err := o.complete(ctx, system, prompt)
	if err != nil {
		return nil, err
	}
	return &training.Completion{Text: resp.Text, Model: resp.Model}, nil
}

func (o *RouterOracle) complete(ctx context.Context, system, prompt string) (*llm.Response, error) {
	provider, err := o.router.GetProvider(o.params.Provider)
	if err != nil {
		return nil, err
	}

	if o.params.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.params.Timeout)
		defer cancel()
	}

	return provider.Complete(ctx, llm.Request{
		System:      system,
		Prompt:      prompt,
		MaxTokens:   o.params.MaxTokens,
		Temperature: o.params.Temperature,
		TopP:        o.params.TopP,
	}, o.params.Model)
}
