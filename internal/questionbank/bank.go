package questionbank

import "fmt"

// Bank is an immutable question catalog. Skill keys keep their source
// order, which the planner relies on for deterministic fallbacks.
type Bank struct {
	keys    []string
	bySkill map[string][]Question
	byID    map[string]*Question
	total   int
}

// New builds a Bank from skills, validating it. Questions get their
// SkillKey set from the owning skill and an empty category becomes
// DefaultCategory.
func New(skills []Skill) (*Bank, error) {
	b := &Bank{
		bySkill: make(map[string][]Question, len(skills)),
		byID:    make(map[string]*Question),
	}

	owned := make([]Skill, len(skills))
	for i, s := range skills {
		qs := make([]Question, len(s.Questions))
		for j, q := range s.Questions {
			q.SkillKey = s.Key
			if q.Category == "" {
				q.Category = DefaultCategory
			}
			q.ExpectedKeywords = append([]string(nil), q.ExpectedKeywords...)
			qs[j] = q
		}
		owned[i] = Skill{Key: s.Key, Questions: qs}
	}
	skills = owned

	if err := validateSkills(skills); err != nil {
		return nil, err
	}

	for _, s := range skills {
		b.keys = append(b.keys, s.Key)
		b.bySkill[s.Key] = s.Questions
		for i := range s.Questions {
			q := &b.bySkill[s.Key][i]
			b.byID[q.ID] = q
		}
		b.total += len(s.Questions)
	}

	return b, nil
}

// MustNew is like New but panics on error. Intended for tests and the
// embedded default bank.
func MustNew(skills []Skill) *Bank {
	b, err := New(skills)
	if err != nil {
		panic(fmt.Sprintf("questionbank: %v", err))
	}
	return b
}

// Keys returns the skill keys in source order.
func (b *Bank) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Questions returns the questions for key in source order.
// The returned slice must not be modified.
func (b *Bank) Questions(key string) []Question {
	return b.bySkill[key]
}

// Count returns how many questions key has.
func (b *Bank) Count(key string) int {
	return len(b.bySkill[key])
}

// Has reports whether key is a skill in the bank.
func (b *Bank) Has(key string) bool {
	_, ok := b.bySkill[key]
	return ok
}

// Question looks up a question by id.
func (b *Bank) Question(id string) (*Question, error) {
	q, ok := b.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrQuestionNotFound, id)
	}
	return q, nil
}

// Len returns the total number of questions across all skills.
func (b *Bank) Len() int {
	return b.total
}

// Categories returns the distinct categories in first-seen order.
func (b *Bank) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, k := range b.keys {
		for _, q := range b.bySkill[k] {
			if !seen[q.Category] {
				seen[q.Category] = true
				out = append(out, q.Category)
			}
		}
	}
	return out
}

// Filter returns questions from the given skill keys, or from every skill
// when keys is empty, optionally restricted to one difficulty. An empty
// difficulty matches all. Unknown keys are ignored.
func (b *Bank) Filter(keys []string, difficulty Difficulty) []Question {
	if len(keys) == 0 {
		keys = b.keys
	}
	var out []Question
	for _, k := range keys {
		for _, q := range b.bySkill[k] {
			if difficulty == "" || q.Difficulty == difficulty {
				out = append(out, q)
			}
		}
	}
	return out
}
