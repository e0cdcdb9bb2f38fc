package similarity

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/interviewer/internal/evaluator"
	"github.com/abhisek/interviewer/internal/llm"
)

// Modes.
const (
	ModeLexical   = "lexical"
	ModeEmbedding = "embedding"
	ModeJudge     = "judge"
)

// Config selects and configures the comparator.
type Config struct {
	Mode string `mapstructure:"mode" validate:"oneof=lexical embedding judge"`

	// Fallback degrades to lexical scoring when the model backend fails.
	Fallback bool `mapstructure:"fallback"`
}

// DefaultConfig scores lexically, which needs no credentials.
func DefaultConfig() Config {
	return Config{Mode: ModeLexical, Fallback: true}
}

// New builds the comparator described by cfg. Model-backed modes use the
// provider configured in llmCfg.
func New(ctx context.Context, cfg Config, llmCfg llm.Config, logger *zap.Logger) (evaluator.Similarity, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var primary evaluator.Similarity
	switch cfg.Mode {
	case ModeLexical, "":
		return Lexical{}, nil
	case ModeEmbedding:
		e, err := llm.NewEmbedder(ctx, llmCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("similarity: %w", err)
		}
		primary = NewEmbedding(e)
	case ModeJudge:
		p, err := llm.NewProvider(ctx, llmCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("similarity: %w", err)
		}
		primary = NewJudge(p)
	default:
		return nil, fmt.Errorf("unknown similarity mode: %q", cfg.Mode)
	}

	if !cfg.Fallback {
		return primary, nil
	}
	return WithFallback(primary, Lexical{}, logger), nil
}
