package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, logger *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base
	logged := WithLogging(base, logger)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewEmbedder creates an Embedder for providers that expose embeddings
// (openai, gemini). Other providers return ErrEmbeddingsUnsupported.
func NewEmbedder(ctx context.Context, cfg Config, logger *zap.Logger) (Embedder, error) {
	var base Embedder

	switch cfg.Provider {
	case "openai":
		p, err := NewOpenAIProvider(cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("initializing openai embedder: %w", err)
		}
		base = p
	case "gemini":
		p, err := NewGeminiProvider(ctx, cfg.Gemini)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini embedder: %w", err)
		}
		base = p
	case "mock":
		return NewMockEmbedder(), nil
	default:
		return nil, fmt.Errorf("%s: %w", cfg.Provider, ErrEmbeddingsUnsupported)
	}

	return WithEmbeddingRetry(WithEmbeddingLogging(base, logger), cfg.Retry), nil
}
