package api

import (
	"github.com/Rrens/fitcoach/internal/config"
	"github.com/Rrens/fitcoach/internal/llm"
	"github.com/Rrens/fitcoach/internal/llm/anthropic"
	"github.com/Rrens/fitcoach/internal/llm/deepseek"
	"github.com/Rrens/fitcoach/internal/llm/gemini"
	"github.com/Rrens/fitcoach/internal/llm/ollama"
	"github.com/Rrens/fitcoach/internal/llm/openai"
	"github.com/rs/zerolog/log"
)

// NewLLMRouter registers every provider that has credentials or a host configured
func NewLLMRouter(cfg config.LLMConfig) *llm.Router {
	router := llm.NewRouter(cfg.DefaultProvider)

	log.Info().Msgf("Initializing LLM providers. Default: %s", cfg.DefaultProvider)

	if cfg.Groq.APIKey != "" {
		router.RegisterProvider(openai.NewGroqProvider(cfg.Groq.APIKey, cfg.Groq.Model, cfg.Groq.BaseURL))
	}
	if cfg.OpenAI.APIKey != "" {
		router.RegisterProvider(openai.NewProvider(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
			Timeout: cfg.Timeout,
		}))
	}
	if cfg.Anthropic.APIKey != "" {
		router.RegisterProvider(anthropic.NewProvider(cfg.Anthropic.APIKey, cfg.Anthropic.Model, ""))
	}
	if cfg.DeepSeek.APIKey != "" {
		router.RegisterProvider(deepseek.NewProvider(cfg.DeepSeek.APIKey, cfg.DeepSeek.Model, ""))
	}
	if cfg.Gemini.APIKey != "" {
		router.RegisterProvider(gemini.NewProvider(cfg.Gemini.APIKey, cfg.Gemini.Model))
	}
	if cfg.Ollama.Host != "" {
		log.Info().Str("host", cfg.Ollama.Host).Msg("Registering Ollama provider")
		router.RegisterProvider(ollama.NewProvider(cfg.Ollama.Host, cfg.Ollama.DefaultModel))
	}

	if _, err := router.GetProvider(""); err != nil {
		log.Warn().Err(err).Msg("default LLM provider unavailable, training plans will use the fallback generator")
	}

	return router
}
