package similarity

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/abhisek/interviewer/internal/llm"
)

// Embedding scores texts by the cosine similarity of their embeddings,
// clamped to [0, 1]. Vectors for the reference side (b) are cached, since
// the same expected answer is compared against every candidate answer.
type Embedding struct {
	embedder llm.Embedder

	mu    sync.Mutex
	cache map[string][]float32
}

// NewEmbedding creates an embedding comparator.
func NewEmbedding(e llm.Embedder) *Embedding {
	return &Embedding{embedder: e, cache: make(map[string][]float32)}
}

func (s *Embedding) Score(ctx context.Context, a, b string) (float64, error) {
	if a == "" || b == "" {
		return 0, nil
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeEmbedding)

	s.mu.Lock()
	ref, cached := s.cache[b]
	s.mu.Unlock()

	inputs := []string{a}
	if !cached {
		inputs = append(inputs, b)
	}

	vecs, err := s.embedder.Embed(ctx, inputs)
	if err != nil {
		return 0, fmt.Errorf("embed answer: %w", err)
	}
	if len(vecs) != len(inputs) {
		return 0, fmt.Errorf("embed answer: expected %d vectors, got %d", len(inputs), len(vecs))
	}

	if !cached {
		ref = vecs[1]
		s.mu.Lock()
		s.cache[b] = ref
		s.mu.Unlock()
	}

	cos, err := Cosine(vecs[0], ref)
	if err != nil {
		return 0, err
	}
	return math.Max(0, math.Min(1, cos)), nil
}

// Cosine returns the cosine similarity of u and v. Zero vectors score 0.
func Cosine(u, v []float32) (float64, error) {
	if len(u) != len(v) {
		return 0, fmt.Errorf("dimension mismatch: %d vs %d", len(u), len(v))
	}

	var dot, nu, nv float64
	for i := range u {
		x, y := float64(u[i]), float64(v[i])
		dot += x * y
		nu += x * x
		nv += y * y
	}
	if nu == 0 || nv == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(nu) * math.Sqrt(nv)), nil
}
