package session

import (
	"slices"
	"time"

	"github.com/abhisek/interviewer/internal/evaluator"
	"github.com/abhisek/interviewer/internal/questionbank"
)

// State tracks the runtime state of one interview. It is owned by a single
// Session and only mutated under the session lock.
type State struct {
	// Asked holds every question id served so far. It only grows.
	Asked map[string]bool

	// Coverage counts served questions per skill key. It only grows.
	Coverage map[string]int

	// Pending holds ids served but not yet answered, in serve order.
	Pending []string

	// History is the append-only list of answered turns.
	History []AnsweredTurn

	// StartTime is when the session began.
	StartTime time.Time
}

// AnsweredTurn is one question together with the candidate's answer and
// its evaluation.
type AnsweredTurn struct {
	Question      *questionbank.Question
	RawAnswer     string
	Transcription string
	AudioScore    float64
	VideoScore    float64
	Evaluation    evaluator.CompositeEvaluation
	AnsweredAt    time.Time
}

// NewState creates an empty state starting at now.
func NewState(now time.Time) *State {
	return &State{
		Asked:     make(map[string]bool),
		Coverage:  make(map[string]int),
		StartTime: now,
	}
}

// markServed records q as asked and pending.
func (s *State) markServed(q *questionbank.Question) {
	s.Asked[q.ID] = true
	s.Coverage[q.SkillKey]++
	s.Pending = append(s.Pending, q.ID)
}

// isPending reports whether id was served and not yet answered.
func (s *State) isPending(id string) bool {
	return slices.Contains(s.Pending, id)
}

// resolve removes id from Pending.
func (s *State) resolve(id string) {
	if i := slices.Index(s.Pending, id); i >= 0 {
		s.Pending = slices.Delete(s.Pending, i, i+1)
	}
}

// AskedCount returns the number of questions served.
func (s *State) AskedCount() int {
	return len(s.Asked)
}
