package session

import (
	"github.com/abhisek/interviewer/internal/evaluator"
)

// Aggregator keeps running sums over answered turns so the overall score
// never needs a pass over the history.
type Aggregator struct {
	n int

	contentSum float64
	audioSum   float64
	videoSum   float64

	categories []string
	catSum     map[string]float64
	catCount   map[string]int
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		catSum:   make(map[string]float64),
		catCount: make(map[string]int),
	}
}

// Add records one answered turn.
func (a *Aggregator) Add(turn AnsweredTurn) {
	a.n++

	a.contentSum += turn.Evaluation.Content.TotalScore
	a.audioSum += turn.Evaluation.AudioScore
	a.videoSum += turn.Evaluation.VideoScore

	cat := turn.Question.Category
	if _, ok := a.catCount[cat]; !ok {
		a.categories = append(a.categories, cat)
	}
	a.catSum[cat] += turn.Evaluation.Content.TotalScore
	a.catCount[cat]++
}

// Len returns the number of answered turns.
func (a *Aggregator) Len() int { return a.n }

func (a *Aggregator) avg(sum float64) float64 {
	if a.n == 0 {
		return 0
	}
	return sum / float64(a.n)
}

// ContentAverage is the mean content total score.
func (a *Aggregator) ContentAverage() float64 { return a.avg(a.contentSum) }

// AudioAverage is the mean audio score.
func (a *Aggregator) AudioAverage() float64 { return a.avg(a.audioSum) }

// VideoAverage is the mean video score.
func (a *Aggregator) VideoAverage() float64 { return a.avg(a.videoSum) }

// Overall applies the composite weights to the three averages.
func (a *Aggregator) Overall() float64 {
	return evaluator.ContentWeight*a.ContentAverage() +
		evaluator.AudioWeight*a.AudioAverage() +
		evaluator.VideoWeight*a.VideoAverage()
}

// CategoryAverage is the mean content score for one question category.
type CategoryAverage struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

// CategoryAverages returns per-category content averages in the order the
// categories were first answered.
func (a *Aggregator) CategoryAverages() []CategoryAverage {
	out := make([]CategoryAverage, 0, len(a.categories))
	for _, c := range a.categories {
		n := a.catCount[c]
		out = append(out, CategoryAverage{Category: c, Average: a.catSum[c] / float64(n), Count: n})
	}
	return out
}
