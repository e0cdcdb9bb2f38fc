// Package similarity provides text comparators for grading answers: a
// word-overlap measure that needs nothing, and model-backed ones that
// degrade to it.
package similarity

import (
	"context"
	"strings"
)

// Lexical is the Jaccard index of the lower-cased whitespace token sets.
type Lexical struct{}

// Score never fails. Either text being empty scores 0.
func (Lexical) Score(_ context.Context, a, b string) (float64, error) {
	return Jaccard(a, b), nil
}

// Jaccard returns |A∩B| / |A∪B| over lower-cased whitespace tokens.
func Jaccard(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	inter := 0
	for w := range setA {
		if setB[w] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

func tokenSet(s string) map[string]bool {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
