package evaluator

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/interviewer/internal/questionbank"
)

// Evaluator scores answers against a question's reference answer.
// It holds no per-session state and is safe for concurrent use when its
// Similarity is.
type Evaluator struct {
	similarity Similarity
	logger     *zap.Logger
}

// New creates an Evaluator. A nil logger discards output.
func New(similarity Similarity, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{similarity: similarity, logger: logger.Named("evaluator")}
}

// Evaluate scores ans for q. A similarity failure is returned as is, with
// no partial result; missing media scores count as zero.
func (e *Evaluator) Evaluate(ctx context.Context, q *questionbank.Question, ans Answer) (CompositeEvaluation, error) {
	if q == nil {
		return CompositeEvaluation{}, questionbank.ErrQuestionNotFound
	}

	content, err := e.EvaluateContent(ctx, q, EvalText(ans))
	if err != nil {
		return CompositeEvaluation{}, err
	}

	audio := mediaScore(ans.Audio)
	video := mediaScore(ans.Video)

	eval := CompositeEvaluation{
		Content:             content,
		AudioScore:          audio,
		VideoScore:          video,
		CompositeScore:      ContentWeight*content.TotalScore + AudioWeight*audio + VideoWeight*video,
		PresentationQuality: RatingFor((audio + video) / 2),
	}

	e.logger.Debug("answer evaluated",
		zap.String("question", q.ID),
		zap.Float64("semantic", content.SemanticScore),
		zap.Float64("keyword", content.KeywordScore),
		zap.Float64("length", content.LengthScore),
		zap.Float64("composite", eval.CompositeScore),
	)
	return eval, nil
}

// EvaluateContent scores text against q's reference answer and keywords.
func (e *Evaluator) EvaluateContent(ctx context.Context, q *questionbank.Question, text string) (ContentEvaluation, error) {
	sem, err := e.similarity.Score(ctx, text, q.ExpectedAnswer)
	if err != nil {
		return ContentEvaluation{}, fmt.Errorf("similarity for %s: %w", q.ID, err)
	}
	sem = clamp01(sem)

	kw, found := MatchKeywords(text, q.ExpectedKeywords)
	length := LengthScore(text)

	return ContentEvaluation{
		SemanticScore: sem,
		KeywordScore:  kw,
		LengthScore:   length,
		TotalScore:    SemanticWeight*sem + KeywordWeight*kw + LengthWeight*length,
		KeywordsFound: found,
	}, nil
}

// EvalText is the transcription when one was produced, else the typed answer.
func EvalText(ans Answer) string {
	if strings.TrimSpace(ans.Transcription) != "" {
		return ans.Transcription
	}
	return ans.Raw
}

func mediaScore(v *float64) float64 {
	if v == nil {
		return 0
	}
	return clamp01(*v)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
