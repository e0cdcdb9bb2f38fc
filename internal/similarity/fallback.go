package similarity

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/interviewer/internal/evaluator"
)

type fallback struct {
	primary   evaluator.Similarity
	secondary evaluator.Similarity
	logger    *zap.Logger
}

// WithFallback returns a comparator that answers with secondary whenever
// primary fails. Context cancellation is not masked.
func WithFallback(primary, secondary evaluator.Similarity, logger *zap.Logger) evaluator.Similarity {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &fallback{primary: primary, secondary: secondary, logger: logger.Named("similarity")}
}

func (f *fallback) Score(ctx context.Context, a, b string) (float64, error) {
	score, err := f.primary.Score(ctx, a, b)
	if err == nil {
		return score, nil
	}
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}

	f.logger.Warn("similarity backend failed, using fallback", zap.Error(err))
	return f.secondary.Score(ctx, a, b)
}
