// Package session runs one adaptive interview: it plans per-skill quotas,
// serves questions, scores answers and builds the final report.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/interviewer/internal/evaluator"
	"github.com/abhisek/interviewer/internal/logger"
	"github.com/abhisek/interviewer/internal/questionbank"
	"github.com/abhisek/interviewer/internal/similarity"
)

// ErrQuestionNotPending is returned when an answer arrives for a question
// that is in the bank but is not waiting for an answer in this session.
var ErrQuestionNotPending = errors.New("question is not awaiting an answer")

// Options configures a Session. The zero value is usable.
type Options struct {
	// Budget is the maximum number of questions. Defaults to DefaultBudget.
	Budget int

	// MaxSkills caps the candidate skills considered. Defaults to
	// DefaultMaxSkills.
	MaxSkills int

	// Evaluator scores answers. Defaults to lexical similarity.
	Evaluator *evaluator.Evaluator

	Rand   Rand
	Logger *zap.Logger
	Now    func() time.Time
}

func (o *Options) withDefaults() {
	if o.Budget == 0 {
		o.Budget = DefaultBudget
	}
	if o.MaxSkills <= 0 {
		o.MaxSkills = DefaultMaxSkills
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Evaluator == nil {
		o.Evaluator = evaluator.New(similarity.Lexical{}, o.Logger)
	}
	if o.Rand == nil {
		o.Rand = NewRand(0)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// StartInfo is returned to the caller when an interview begins.
type StartInfo struct {
	SessionID      string   `json:"session_id"`
	TotalQuestions int      `json:"total_questions"`
	MatchedSkills  []string `json:"matched_skills"`
	Plan           *Plan    `json:"-"`
}

// Session is one interview. All methods are serialized by an internal
// lock, answer scoring included.
type Session struct {
	mu sync.Mutex

	id        string
	bank      *questionbank.Bank
	plan      *Plan
	state     *State
	selector  *Selector
	agg       *Aggregator
	evaluator *evaluator.Evaluator
	logger    *zap.Logger
	now       func() time.Time
}

// Start plans an interview for the candidate's skills.
func Start(bank *questionbank.Bank, skills []string, opts Options) (*Session, StartInfo, error) {
	opts.withDefaults()

	skills = cleanSkills(skills, opts.MaxSkills)
	plan, err := NewPlanner(bank, opts.Budget).BuildPlan(skills)
	if err != nil {
		return nil, StartInfo{}, fmt.Errorf("build plan: %w", err)
	}

	id := uuid.NewString()
	log := opts.Logger.Named("session").With(zap.String("session", id))
	if plan.Strategy == StrategyFallback {
		log.Warn("no candidate skill matched the bank, using bank-wide coverage",
			zap.Strings("skills", skills))
	}

	state := NewState(opts.Now())
	s := &Session{
		id:        id,
		bank:      bank,
		plan:      plan,
		state:     state,
		selector:  NewSelector(bank, plan, state, opts.Rand),
		agg:       NewAggregator(),
		evaluator: opts.Evaluator,
		logger:    log,
		now:       opts.Now,
	}

	log.Info("session started",
		zap.String("strategy", string(plan.Strategy)),
		zap.Strings("matched", plan.Matched),
		zap.Strings("unmatched", plan.Unmatched),
		zap.Int("planned", plan.Total()),
	)

	return s, StartInfo{
		SessionID:      id,
		TotalQuestions: min(opts.Budget, bank.Len()),
		MatchedSkills:  append([]string(nil), plan.Matched...),
		Plan:           plan,
	}, nil
}

// cleanSkills drops blank entries and keeps at most limit skills.
func cleanSkills(skills []string, limit int) []string {
	out := make([]string, 0, min(len(skills), limit))
	for _, s := range skills {
		if len(out) == limit {
			break
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ID returns the session's identifier.
func (s *Session) ID() string { return s.id }

// Plan returns the session's plan. It must not be modified.
func (s *Session) Plan() *Plan { return s.plan }

// NextQuestion serves the next question, or false once the interview is
// complete.
func (s *Session) NextQuestion() (*questionbank.Question, bool) {
	sel, ok := s.Next()
	return sel.Question, ok
}

// Next is NextQuestion with the selection details.
func (s *Session) Next() (Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.selector.Next()
	if !ok {
		s.logger.Debug("interview complete", zap.Int("asked", s.state.AskedCount()))
		return Selection{}, false
	}

	fields := []zap.Field{
		zap.String("question", sel.Question.ID),
		zap.String("skill", sel.Question.SkillKey),
		zap.Stringer("tier", sel.Tier),
	}
	if sel.QuotaOverrun {
		s.logger.Debug("question served over plan quota", fields...)
	} else {
		s.logger.Debug("question served", fields...)
	}
	return sel, true
}

// SubmitAnswer scores an answer to a served question and records it.
// On any error the session is left unchanged.
func (s *Session) SubmitAnswer(ctx context.Context, questionID string, ans evaluator.Answer) (evaluator.CompositeEvaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.bank.Question(questionID)
	if err != nil {
		return evaluator.CompositeEvaluation{}, err
	}
	if !s.state.isPending(questionID) {
		return evaluator.CompositeEvaluation{}, fmt.Errorf("%w: %q", ErrQuestionNotPending, questionID)
	}

	eval, err := s.evaluator.Evaluate(ctx, q, ans)
	if err != nil {
		return evaluator.CompositeEvaluation{}, fmt.Errorf("evaluate %s: %w", questionID, err)
	}

	turn := AnsweredTurn{
		Question:      q,
		RawAnswer:     ans.Raw,
		Transcription: ans.Transcription,
		AudioScore:    eval.AudioScore,
		VideoScore:    eval.VideoScore,
		Evaluation:    eval,
		AnsweredAt:    s.now(),
	}
	s.state.resolve(questionID)
	s.state.History = append(s.state.History, turn)
	s.agg.Add(turn)

	s.logger.Info("answer scored",
		zap.String("question", questionID),
		logger.Answer(evaluator.EvalText(ans)),
		zap.Float64("composite", eval.CompositeScore),
		zap.Int("answered", len(s.state.History)),
	)
	return eval, nil
}

// Summary builds the report for everything answered so far.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildSummary(s.id, s.state, s.agg, s.now())
}

// Done reports whether the budget is spent or no question is left.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.AskedCount() >= s.plan.Budget || s.state.AskedCount() >= s.bank.Len()
}
