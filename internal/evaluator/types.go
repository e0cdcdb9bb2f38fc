// Package evaluator scores a single interview answer on content and
// delivery.
package evaluator

import "context"

// Similarity compares two texts and returns a score in [0, 1]. It may call
// out to a model, so it receives the caller's context.
type Similarity interface {
	Score(ctx context.Context, a, b string) (float64, error)
}

// SimilarityFunc adapts a plain function to Similarity.
type SimilarityFunc func(ctx context.Context, a, b string) (float64, error)

func (f SimilarityFunc) Score(ctx context.Context, a, b string) (float64, error) {
	return f(ctx, a, b)
}

// Answer is what the candidate submitted for one question. Audio and Video
// are nil when no media was analysed.
type Answer struct {
	Raw           string
	Transcription string
	Audio         *float64
	Video         *float64
}

// Score returns a pointer to v, for filling Answer.Audio and Answer.Video.
func Score(v float64) *float64 {
	return &v
}

// ContentEvaluation scores what was said.
type ContentEvaluation struct {
	SemanticScore float64  `json:"semantic_score"`
	KeywordScore  float64  `json:"keyword_score"`
	LengthScore   float64  `json:"length_score"`
	TotalScore    float64  `json:"total_score"`
	KeywordsFound []string `json:"keywords_found"`
}

// CompositeEvaluation combines content with delivery.
type CompositeEvaluation struct {
	Content             ContentEvaluation `json:"content"`
	AudioScore          float64           `json:"audio_score"`
	VideoScore          float64           `json:"video_score"`
	CompositeScore      float64           `json:"composite_score"`
	PresentationQuality Rating            `json:"presentation_quality"`
}

// Content weights.
const (
	SemanticWeight = 0.6
	KeywordWeight  = 0.3
	LengthWeight   = 0.1
)

// Composite weights.
const (
	ContentWeight = 0.6
	AudioWeight   = 0.2
	VideoWeight   = 0.2
)

// FullCreditWords is the answer length that earns a full length score.
const FullCreditWords = 50
