package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	got := c.Cost(1_000_000, 1_000_000)
	if math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("cost = %v, want 0.75", got)
	}

	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
