package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/interviewer/internal/session"
	"github.com/abhisek/interviewer/internal/ui/theme"
)

// SummaryView renders the end-of-interview report.
type SummaryView struct {
	Summary session.Summary
	Width   int
}

// View renders the summary.
func (v SummaryView) View() string {
	s := v.Summary
	var b strings.Builder

	b.WriteString(theme.Title.Render("Interview complete"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d questions answered in %s",
		s.QuestionsAnswered, s.Duration.Round(time.Second))))
	b.WriteString("\n\n")

	b.WriteString(theme.Label.Render("Overall"))
	b.WriteString(theme.ForRating(s.Rating).Render(fmt.Sprintf("%s  %s", Percent(s.OverallScore), s.Rating)))
	b.WriteString("\n\n")

	inner := max(v.Width-6, 30)
	for _, line := range []ScoreBar{
		NewScoreBar("Content", s.ContentAverage, true, inner),
		NewScoreBar("Audio", s.AudioAverage, true, inner),
		NewScoreBar("Video", s.VideoAverage, true, inner),
	} {
		b.WriteString(line.View())
		b.WriteString("\n")
	}

	if len(s.Breakdown) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Tag.Render("Per question"))
		b.WriteString("\n")
		for i, t := range s.Breakdown {
			fmt.Fprintf(&b, "%2d. %-24s %s  %s\n", i+1,
				truncate(t.SkillKey+"/"+string(t.Difficulty), 24),
				Percent(t.Evaluation.CompositeScore),
				theme.Hint.Render(truncate(t.Question, inner-36)))
		}
	}

	if len(s.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Tag.Render("Recommendations"))
		b.WriteString("\n")
		for _, r := range s.Recommendations {
			b.WriteString(theme.Body.Render("• " + r))
			b.WriteString("\n")
		}
	}

	return theme.SummaryCard.Width(v.Width).Render(strings.TrimRight(b.String(), "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 3 || len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
