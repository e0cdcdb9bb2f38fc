package session

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/interviewer/internal/questionbank"
)

// Tier identifies which selection rule produced a question.
type Tier int

const (
	TierNone     Tier = iota
	TierCoverage      // a planned skill not asked yet
	TierQuota         // a planned skill below its target
	TierMatched       // any matched skill with questions left
	TierGlobal        // anything left in the bank
)

func (t Tier) String() string {
	switch t {
	case TierCoverage:
		return "coverage"
	case TierQuota:
		return "quota"
	case TierMatched:
		return "matched"
	case TierGlobal:
		return "global"
	default:
		return "none"
	}
}

// Rand is the randomness the selector needs. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed Rand. A zero seed picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Selection is one served question and how it was chosen.
type Selection struct {
	Question *questionbank.Question
	Tier     Tier

	// QuotaOverrun is set when the pick pushes a skill past its planned
	// target, or comes from a skill that is not planned at all.
	QuotaOverrun bool
}

// Selector picks the next question under a plan. It mutates the State it
// was given and is not safe for concurrent use on its own.
type Selector struct {
	bank  *questionbank.Bank
	plan  *Plan
	state *State
	rng   Rand
}

// NewSelector creates a Selector.
func NewSelector(bank *questionbank.Bank, plan *Plan, state *State, rng Rand) *Selector {
	if rng == nil {
		rng = NewRand(0)
	}
	return &Selector{bank: bank, plan: plan, state: state, rng: rng}
}

// Next returns the next question, or false when the budget is spent or
// nothing is left to ask.
func (s *Selector) Next() (Selection, bool) {
	if s.state.AskedCount() >= s.plan.Budget {
		return Selection{}, false
	}

	q, tier := s.pick()
	if q == nil {
		return Selection{}, false
	}

	target := s.plan.Target(q.SkillKey)
	overrun := target == 0 || s.state.Coverage[q.SkillKey]+1 > target

	s.state.markServed(q)
	return Selection{Question: q, Tier: tier, QuotaOverrun: overrun}, true
}

func (s *Selector) pick() (*questionbank.Question, Tier) {
	// Planned skills never asked, and that still have a question.
	var uncovered [][]*questionbank.Question
	for _, e := range s.plan.Entries {
		if s.state.Coverage[e.SkillKey] != 0 {
			continue
		}
		if qs := s.unused(e.SkillKey); len(qs) > 0 {
			uncovered = append(uncovered, qs)
		}
	}
	if len(uncovered) > 0 {
		return s.choose(uncovered[s.rng.IntN(len(uncovered))]), TierCoverage
	}

	for _, e := range s.plan.Entries {
		if s.state.Coverage[e.SkillKey] >= e.Target {
			continue
		}
		if qs := s.unused(e.SkillKey); len(qs) > 0 {
			return s.choose(qs), TierQuota
		}
	}

	for _, key := range s.plan.Matched {
		if qs := s.unused(key); len(qs) > 0 {
			return s.choose(qs), TierMatched
		}
	}

	var all []*questionbank.Question
	for _, key := range s.bank.Keys() {
		all = append(all, s.unused(key)...)
	}
	if len(all) > 0 {
		return s.choose(all), TierGlobal
	}

	return nil, TierNone
}

// unused returns key's questions that have not been served, in bank order.
func (s *Selector) unused(key string) []*questionbank.Question {
	qs := s.bank.Questions(key)
	out := make([]*questionbank.Question, 0, len(qs))
	for i := range qs {
		if !s.state.Asked[qs[i].ID] {
			out = append(out, &qs[i])
		}
	}
	return out
}

func (s *Selector) choose(qs []*questionbank.Question) *questionbank.Question {
	return qs[s.rng.IntN(len(qs))]
}
