package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewer/internal/evaluator"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Width(12)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Tag = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	SummaryCard = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Primary).
			Padding(1, 2)
)

// Score bars
var (
	BarFilled = lipgloss.NewStyle().
			Background(Secondary)

	BarEmpty = lipgloss.NewStyle().
			Background(Border)
)

// ForRating returns the foreground style for a rating.
func ForRating(r evaluator.Rating) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch r {
	case evaluator.RatingExcellent, evaluator.RatingVeryGood:
		return s.Foreground(Success)
	case evaluator.RatingGood:
		return s.Foreground(Secondary)
	case evaluator.RatingFair:
		return s.Foreground(Accent)
	default:
		return s.Foreground(Error)
	}
}
