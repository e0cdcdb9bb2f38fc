package session

import (
	"time"

	"github.com/abhisek/interviewer/internal/evaluator"
	"github.com/abhisek/interviewer/internal/questionbank"
)

// Summary is the end-of-interview report.
type Summary struct {
	SessionID         string            `json:"session_id"`
	StartedAt         time.Time         `json:"start_time"`
	Duration          time.Duration     `json:"duration"`
	QuestionsAsked    int               `json:"questions_asked"`
	QuestionsAnswered int               `json:"questions_answered"`
	OverallScore      float64           `json:"overall_score"`
	Rating            evaluator.Rating  `json:"rating"`
	ContentAverage    float64           `json:"content_average"`
	AudioAverage      float64           `json:"audio_average"`
	VideoAverage      float64           `json:"video_average"`
	Categories        []CategoryAverage `json:"categories"`
	Breakdown         []TurnBreakdown   `json:"breakdown"`
	Recommendations   []string          `json:"recommendations"`
}

// TurnBreakdown is one row of the per-question report.
type TurnBreakdown struct {
	QuestionID    string                        `json:"question_id"`
	Question      string                        `json:"question"`
	SkillKey      string                        `json:"skill"`
	Category      string                        `json:"category"`
	Difficulty    questionbank.Difficulty       `json:"difficulty"`
	Answer        string                        `json:"user_answer"`
	Transcription string                        `json:"transcription,omitempty"`
	Evaluation    evaluator.CompositeEvaluation `json:"evaluation"`
}

// BuildSummary renders the state's history and the aggregator's sums into a
// Summary. Neither is modified.
func BuildSummary(id string, state *State, agg *Aggregator, now time.Time) Summary {
	breakdown := make([]TurnBreakdown, len(state.History))
	for i, t := range state.History {
		breakdown[i] = TurnBreakdown{
			QuestionID:    t.Question.ID,
			Question:      t.Question.Prompt,
			SkillKey:      t.Question.SkillKey,
			Category:      t.Question.Category,
			Difficulty:    t.Question.Difficulty,
			Answer:        t.RawAnswer,
			Transcription: t.Transcription,
			Evaluation:    t.Evaluation,
		}
	}

	overall := agg.Overall()
	cats := agg.CategoryAverages()
	return Summary{
		SessionID:         id,
		StartedAt:         state.StartTime,
		Duration:          now.Sub(state.StartTime),
		QuestionsAsked:    state.AskedCount(),
		QuestionsAnswered: agg.Len(),
		OverallScore:      overall,
		Rating:            evaluator.RatingFor(overall),
		ContentAverage:    agg.ContentAverage(),
		AudioAverage:      agg.AudioAverage(),
		VideoAverage:      agg.VideoAverage(),
		Categories:        cats,
		Breakdown:         breakdown,
		Recommendations:   Recommend(agg.ContentAverage(), agg.AudioAverage(), agg.VideoAverage(), cats),
	}
}
