package similarity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/interviewer/internal/llm"
)

func TestCosine(t *testing.T) {
	got, err := Cosine([]float32{1, 0}, []float32{1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-9)

	got, err = Cosine([]float32{1, 0}, []float32{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-9)

	got, err = Cosine([]float32{0, 0}, []float32{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = Cosine([]float32{1}, []float32{1, 2})
	assert.Error(t, err)
}

func TestEmbedding_ScoreAndCache(t *testing.T) {
	mock := llm.NewMockEmbedder()
	s := NewEmbedding(mock)
	ctx := context.Background()

	same, err := s.Score(ctx, "goroutines are cheap", "goroutines are cheap")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, same, 1e-6)

	// Reference vector is cached: the second call embeds only the answer.
	_, err = s.Score(ctx, "threads are heavy", "goroutines are cheap")
	require.NoError(t, err)
	require.Equal(t, 2, mock.CallCount())
	assert.Len(t, mock.Calls[0], 2)
	assert.Len(t, mock.Calls[1], 1)
}

func TestEmbedding_ClampsNegative(t *testing.T) {
	neg := &vectorEmbedder{vecs: map[string][]float32{"a": {1, 0}, "b": {-1, 0}}}
	got, err := NewEmbedding(neg).Score(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestEmbedding_EmptyText(t *testing.T) {
	mock := llm.NewMockEmbedder()
	got, err := NewEmbedding(mock).Score(context.Background(), "", "reference")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
	assert.Equal(t, 0, mock.CallCount())
}

func TestEmbedding_Error(t *testing.T) {
	mock := llm.NewMockEmbedder()
	mock.Err = &llm.ErrProviderUnavailable{Err: errors.New("down")}

	_, err := NewEmbedding(mock).Score(context.Background(), "a", "b")
	var unavail *llm.ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavail))
}

type vectorEmbedder struct {
	vecs map[string][]float32
}

func (v *vectorEmbedder) Embed(_ context.Context, inputs []string) ([][]float32, error) {
	out := make([][]float32, len(inputs))
	for i, in := range inputs {
		out[i] = v.vecs[in]
	}
	return out, nil
}

func (v *vectorEmbedder) EmbeddingModelID() string { return "fixed" }

