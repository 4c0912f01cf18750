package quizgen

import (
	"context"
	"fmt"
	"net/http"

	"wiki-quiz/internal/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	defaultGoogleAIModel = "gemini-1.5-flash"
	defaultOpenAIModel   = "gpt-3.5-turbo"
	defaultOllamaModel   = "qwen3:0.6b"
)

// NewModel builds the langchaingo client for the configured provider.
func NewModel(ctx context.Context, cfg config.LLMConfig) (llms.Model, error) {
	switch cfg.Provider {
	case "googleai":
		model := cfg.Model
		if model == "" {
			model = defaultGoogleAIModel
		}
		llm, err := googleai.New(ctx,
			googleai.WithAPIKey(cfg.APIKey),
			googleai.WithDefaultModel(model),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Google AI client: %w", err)
		}
		return llm, nil
	case "openai":
		model := cfg.Model
		if model == "" {
			model = defaultOpenAIModel
		}
		opts := []openai.Option{openai.WithToken(cfg.APIKey), openai.WithModel(model)}
		if cfg.ServerURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.ServerURL))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
		}
		return llm, nil
	case "ollama":
		model := cfg.Model
		if model == "" {
			model = defaultOllamaModel
		}
		llm, err := ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(model),
			ollama.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama client: %w", err)
		}
		return llm, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
