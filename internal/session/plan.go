package session

// PlanStrategy records which branch of the planner produced a plan.
type PlanStrategy string

const (
	// StrategyFallback: no candidate skill matched, so the plan spreads over
	// the first bank skills.
	StrategyFallback PlanStrategy = "fallback"

	// StrategySpread: at least as many matched skills as the budget, one
	// question each.
	StrategySpread PlanStrategy = "spread"

	// StrategyFill: fewer matched skills than the budget, one each and the
	// rest round-robin.
	StrategyFill PlanStrategy = "fill"
)

// PlanEntry is the question quota for one bank skill.
type PlanEntry struct {
	SkillKey string
	Target   int
}

// Plan is the per-skill question quota for one interview, in priority
// order. It is built once at session start and never modified.
type Plan struct {
	Entries []PlanEntry

	// Matched lists every distinct bank skill the candidate's skills mapped
	// to, in candidate order. It can be longer than Entries.
	Matched []string

	// Unmatched lists candidate skills the bank has no questions for.
	Unmatched []string

	Strategy PlanStrategy
	Budget   int
}

// DefaultBudget is the number of questions in an interview.
const DefaultBudget = 10

// DefaultMaxSkills caps how many candidate skills are considered.
const DefaultMaxSkills = 15

// Total returns the sum of all targets.
func (p *Plan) Total() int {
	n := 0
	for _, e := range p.Entries {
		n += e.Target
	}
	return n
}

// Target returns the quota for key, or 0 if key is not planned.
func (p *Plan) Target(key string) int {
	for _, e := range p.Entries {
		if e.SkillKey == key {
			return e.Target
		}
	}
	return 0
}

// Keys returns the planned skill keys in plan order.
func (p *Plan) Keys() []string {
	keys := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		keys[i] = e.SkillKey
	}
	return keys
}
