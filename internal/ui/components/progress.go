package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewer/internal/ui/theme"
)

// ScoreBar displays a score in [0, 1] as a horizontal bar.
type ScoreBar struct {
	Label     string
	Score     float64
	ShowValue bool
	Width     int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(label string, score float64, showValue bool, width int) ScoreBar {
	return ScoreBar{
		Label:     label,
		Score:     score,
		ShowValue: showValue,
		Width:     width,
	}
}

// View renders the score bar.
func (p ScoreBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Label.Render(p.Label)
	}

	labelWidth := lipgloss.Width(result)
	valueWidth := 0
	if p.ShowValue {
		valueWidth = 7 // "   0.00"
	}

	barWidth := max(p.Width-labelWidth-valueWidth, 4)

	filled := min(max(int(float64(barWidth)*p.Score), 0), barWidth)
	empty := barWidth - filled

	result += theme.BarFilled.Render(strings.Repeat(" ", filled)) +
		theme.BarEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowValue {
		result += theme.Subtitle.Render(fmt.Sprintf("  %5.2f", p.Score))
	}

	return result
}
