package session

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/abhisek/interviewer/internal/questionbank"
)

type skillSpec struct {
	key      string
	category string
	count    int
}

// makeBank builds a bank with count questions per skill, in the given order.
func makeBank(t *testing.T, specs ...skillSpec) *questionbank.Bank {
	t.Helper()
	skills := make([]questionbank.Skill, 0, len(specs))
	for _, s := range specs {
		sk := questionbank.Skill{Key: s.key}
		for i := range s.count {
			sk.Questions = append(sk.Questions, questionbank.Question{
				ID:               fmt.Sprintf("%s_%03d", s.key, i+1),
				Category:         s.category,
				Difficulty:       questionbank.DifficultyMedium,
				Prompt:           fmt.Sprintf("%s question %d", s.key, i+1),
				ExpectedAnswer:   fmt.Sprintf("reference answer about %s", s.key),
				ExpectedKeywords: []string{s.key},
			})
		}
		skills = append(skills, sk)
	}
	b, err := questionbank.New(skills)
	if err != nil {
		t.Fatalf("build bank: %v", err)
	}
	return b
}

// wideBank has n single-category skills named s00..s(n-1) with per questions each.
func wideBank(t *testing.T, n, per int) *questionbank.Bank {
	t.Helper()
	specs := make([]skillSpec, n)
	for i := range n {
		specs[i] = skillSpec{key: fmt.Sprintf("s%02d", i), category: "general", count: per}
	}
	return makeBank(t, specs...)
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func targets(p *Plan) map[string]int {
	out := make(map[string]int, len(p.Entries))
	for _, e := range p.Entries {
		out[e.SkillKey] = e.Target
	}
	return out
}
