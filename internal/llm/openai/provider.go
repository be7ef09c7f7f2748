package openai

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Rrens/fitcoach/internal/llm"
	goopenai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	// GroqBaseURL is Groq's OpenAI-compatible endpoint.
	GroqBaseURL = "https://api.groq.com/openai/v1"
	// GroqDefaultModel is the model the original training flow was tuned on.
	GroqDefaultModel = "llama-3.3-70b-versatile"
)

// Provider implements llm.Provider for OpenAI and OpenAI-compatible APIs (Groq)
type Provider struct {
	name         string
	apiKey       string
	defaultModel string
	models       []string
	client       goopenai.Client
}

// Config describes one OpenAI-compatible endpoint
type Config struct {
	Name    string
	APIKey  string
	Model   string
	BaseURL string
	Models  []string
	Timeout time.Duration
}

// NewProvider creates a new OpenAI-compatible provider
func NewProvider(cfg Config) llm.Provider {
	if cfg.Name == "" {
		cfg.Name = "openai"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if len(cfg.Models) == 0 {
		cfg.Models = []string{"gpt-4o", "gpt-4o-mini", "gpt-4-turbo"}
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
		// the training pipeline never retries the oracle
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Provider{
		name:         cfg.Name,
		apiKey:       cfg.APIKey,
		defaultModel: cfg.Model,
		models:       cfg.Models,
		client:       goopenai.NewClient(opts...),
	}
}

// NewGroqProvider creates a provider for Groq's OpenAI-compatible API
func NewGroqProvider(apiKey, model, baseURL string) llm.Provider {
	if model == "" {
		model = GroqDefaultModel
	}
	if baseURL == "" {
		baseURL = GroqBaseURL
	}
	return NewProvider(Config{
		Name:    "groq",
		APIKey:  apiKey,
		Model:   model,
		BaseURL: baseURL,
		Models:  []string{GroqDefaultModel, "llama-3.1-8b-instant", "mixtral-8x7b-32768"},
	})
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return p.name
}

// AvailableModels returns list of supported models
func (p *Provider) AvailableModels() []string {
	return p.models
}

// DefaultModel returns the default model
func (p *Provider) DefaultModel() string {
	return p.defaultModel
}

// IsConfigured checks if provider has valid credentials
func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

// Complete runs a chat completion with a system and a user message
func (p *Provider) Complete(ctx context.Context, req llm.Request, model string) (*llm.Response, error) {
	if !p.IsConfigured() {
		return nil, llm.NotConfigured(p.name)
	}
	if model == "" {
		model = p.defaultModel
	}

	var messages []goopenai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, goopenai.SystemMessage(req.System))
	}
	messages = append(messages, goopenai.UserMessage(req.Prompt))

	params := goopenai.ChatCompletionNewParams{
		Model:    goopenai.ChatModel(model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = goopenai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = goopenai.Float(req.Temperature)
	}
	if req.TopP > 0 {
		params.TopP = goopenai.Float(req.TopP)
	}

	start := time.Now()
	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *goopenai.Error
		if errors.As(err, &apiErr) {
			return nil, llm.StatusErr(p.name, apiErr.StatusCode, apiErr.Message)
		}
		return nil, err
	}
	latencyMs := time.Since(start).Milliseconds()

	if len(completion.Choices) == 0 {
		return nil, llm.Empty(p.name)
	}
	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return nil, llm.Empty(p.name)
	}

	if completion.Model != "" {
		model = completion.Model
	}

	return &llm.Response{
		Text:       content,
		Model:      model,
		TokensUsed: int(completion.Usage.TotalTokens),
		LatencyMs:  latencyMs,
	}, nil
}
