package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewer/internal/questionbank"
	"github.com/abhisek/interviewer/internal/ui/theme"
)

// QuestionCard shows one question with its position in the interview.
type QuestionCard struct {
	Question *questionbank.Question
	Number   int
	Total    int
	Width    int
}

// View renders the card.
func (c QuestionCard) View() string {
	q := c.Question
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Title.Render(fmt.Sprintf("Question %d/%d", c.Number, c.Total)),
		"  ",
		theme.Tag.Render(q.SkillKey),
		theme.Subtitle.Render(fmt.Sprintf(" · %s · %s", q.Category, q.Difficulty)),
	)

	body := theme.Body.Width(max(c.Width-6, 20)).Render(q.Prompt)
	return theme.Card.Width(c.Width).Render(header + "\n\n" + body)
}

// Checklist renders skills as a comma-separated, styled line.
func Checklist(label string, items []string) string {
	if len(items) == 0 {
		return theme.Label.Render(label) + theme.Hint.Render("none")
	}
	return theme.Label.Render(label) + theme.Body.Render(strings.Join(items, ", "))
}
