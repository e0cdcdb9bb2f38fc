package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/interviewer/internal/evaluator"
	"github.com/abhisek/interviewer/internal/ui/theme"
)

// EvaluationView renders the scores for one answer.
type EvaluationView struct {
	Eval  evaluator.CompositeEvaluation
	Width int
}

// View renders the evaluation.
func (v EvaluationView) View() string {
	e := v.Eval
	bar := func(label string, score float64) string {
		return NewScoreBar(label, score, true, v.Width).View()
	}

	lines := []string{
		bar("Semantic", e.Content.SemanticScore),
		bar("Keywords", e.Content.KeywordScore),
		bar("Length", e.Content.LengthScore),
		bar("Content", e.Content.TotalScore),
		bar("Audio", e.AudioScore),
		bar("Video", e.VideoScore),
		bar("Composite", e.CompositeScore),
		"",
		theme.Label.Render("Delivery") + theme.ForRating(e.PresentationQuality).Render(string(e.PresentationQuality)) +
			theme.Hint.Render(" "+e.PresentationQuality.Description()),
	}
	if len(e.Content.KeywordsFound) > 0 {
		lines = append(lines, Checklist("Matched", e.Content.KeywordsFound))
	}
	return strings.Join(lines, "\n")
}

// Percent formats a score in [0, 1] as a whole percentage.
func Percent(score float64) string {
	return fmt.Sprintf("%d%%", int(score*100+0.5))
}
