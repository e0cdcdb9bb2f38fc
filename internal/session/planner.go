package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/interviewer/internal/questionbank"
	"github.com/abhisek/interviewer/internal/skillmatch"
)

// ErrInvalidBudget is returned for a non-positive question budget.
var ErrInvalidBudget = errors.New("question budget must be positive")

// Planner builds a coverage plan from a candidate's skills.
type Planner interface {
	// BuildPlan creates a plan for the given candidate skills.
	BuildPlan(skills []string) (*Plan, error)
}

// DefaultPlanner spreads the budget over as many distinct matched skills
// as possible before giving any skill a second question.
type DefaultPlanner struct {
	Bank   *questionbank.Bank
	Budget int
}

// NewPlanner creates a DefaultPlanner.
func NewPlanner(bank *questionbank.Bank, budget int) *DefaultPlanner {
	return &DefaultPlanner{Bank: bank, Budget: budget}
}

// BuildPlan maps skills onto the bank and assigns per-skill targets.
func (p *DefaultPlanner) BuildPlan(skills []string) (*Plan, error) {
	if p.Bank == nil || p.Bank.Len() == 0 {
		return nil, questionbank.ErrEmptyBank
	}
	if p.Budget <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBudget, p.Budget)
	}

	plan := &Plan{Budget: p.Budget}
	plan.Matched, plan.Unmatched = p.matchSkills(skills)

	switch m := len(plan.Matched); {
	case m == 0:
		plan.Strategy = StrategyFallback
		for _, key := range p.Bank.Keys() {
			if len(plan.Entries) == p.Budget {
				break
			}
			if p.Bank.Count(key) > 0 {
				plan.Entries = append(plan.Entries, PlanEntry{SkillKey: key, Target: 1})
			}
		}
	case m >= p.Budget:
		plan.Strategy = StrategySpread
		for _, key := range plan.Matched[:p.Budget] {
			plan.Entries = append(plan.Entries, PlanEntry{SkillKey: key, Target: 1})
		}
	default:
		plan.Strategy = StrategyFill
		plan.Entries = p.fill(plan.Matched)
	}

	return plan, nil
}

// matchSkills resolves skills to distinct bank keys that have questions,
// keeping candidate order.
func (p *DefaultPlanner) matchSkills(skills []string) (matched, unmatched []string) {
	keys := p.Bank.Keys()
	seen := make(map[string]bool)

	for _, s := range skills {
		key, ok := skillmatch.FindBankMatch(s, keys)
		if !ok || p.Bank.Count(key) == 0 {
			unmatched = append(unmatched, s)
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		matched = append(matched, key)
	}
	return matched, unmatched
}

// fill gives every key one question, then hands out the rest of the budget
// round-robin. A key never gets more than the bank holds for it, so the
// total falls short of the budget when the matched skills run dry.
func (p *DefaultPlanner) fill(keys []string) []PlanEntry {
	entries := make([]PlanEntry, len(keys))
	for i, k := range keys {
		entries[i] = PlanEntry{SkillKey: k, Target: 1}
	}

	remaining := p.Budget - len(keys)
	for remaining > 0 {
		progressed := false
		for i := range entries {
			if remaining == 0 {
				break
			}
			if entries[i].Target >= p.Bank.Count(entries[i].SkillKey) {
				continue
			}
			entries[i].Target++
			remaining--
			progressed = true
		}
		if !progressed {
			break
		}
	}
	return entries
}
