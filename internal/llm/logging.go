package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider is a decorator that logs every LLM request.
type LoggingProvider struct {
	inner  Provider
	logger *zap.Logger
}

// WithLogging wraps a Provider with structured request logging.
func WithLogging(p Provider, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, logger: logger.Named("llm")}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("purpose", PurposeFrom(ctx)),
		zap.String("model", l.inner.ModelID()),
		zap.Duration("latency", time.Since(start)),
	}
	if req.Schema != nil {
		fields = append(fields, zap.String("schema", req.Schema.Name))
	}

	if err != nil {
		l.logger.Warn("llm request failed", append(fields, zap.Error(err))...)
		return resp, err
	}

	fields = append(fields,
		zap.String("served_by", resp.Model),
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
		zap.String("stop_reason", resp.StopReason),
	)
	if cost := LookupCost(resp.Model); cost != nil {
		fields = append(fields, zap.Float64("cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
	}
	l.logger.Debug("llm request", fields...)

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// LoggingEmbedder is the Embedder counterpart of LoggingProvider.
type LoggingEmbedder struct {
	inner  Embedder
	logger *zap.Logger
}

// WithEmbeddingLogging wraps an Embedder with structured request logging.
func WithEmbeddingLogging(e Embedder, logger *zap.Logger) Embedder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingEmbedder{inner: e, logger: logger.Named("llm")}
}

func (l *LoggingEmbedder) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	start := time.Now()

	out, err := l.inner.Embed(ctx, inputs)

	fields := []zap.Field{
		zap.String("purpose", PurposeFrom(ctx)),
		zap.String("model", l.inner.EmbeddingModelID()),
		zap.Int("inputs", len(inputs)),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		l.logger.Warn("embedding request failed", append(fields, zap.Error(err))...)
		return out, err
	}
	l.logger.Debug("embedding request", fields...)
	return out, nil
}

func (l *LoggingEmbedder) EmbeddingModelID() string {
	return l.inner.EmbeddingModelID()
}
