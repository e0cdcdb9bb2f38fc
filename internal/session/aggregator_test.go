package session

import (
	"math"
	"strings"
	"testing"

	"github.com/abhisek/interviewer/internal/evaluator"
	"github.com/abhisek/interviewer/internal/questionbank"
)

func turn(category string, content, audio, video float64) AnsweredTurn {
	return AnsweredTurn{
		Question: &questionbank.Question{ID: category + "_q", Category: category},
		Evaluation: evaluator.CompositeEvaluation{
			Content:    evaluator.ContentEvaluation{TotalScore: content},
			AudioScore: audio,
			VideoScore: video,
		},
	}
}

func TestAggregator_OverallFromAverages(t *testing.T) {
	agg := NewAggregator()
	agg.Add(turn("backend", 0.8, 0.5, 0.2))
	agg.Add(turn("frontend", 0.4, 0.7, 0.6))

	if agg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", agg.Len())
	}

	want := 0.6*0.6 + 0.2*0.6 + 0.2*0.4
	if math.Abs(agg.Overall()-want) > 1e-9 {
		t.Errorf("Overall() = %v, want %v", agg.Overall(), want)
	}

	// Same as the mean of per-turn composites.
	c1 := 0.6*0.8 + 0.2*0.5 + 0.2*0.2
	c2 := 0.6*0.4 + 0.2*0.7 + 0.2*0.6
	if math.Abs(agg.Overall()-(c1+c2)/2) > 1e-9 {
		t.Errorf("Overall() = %v, want mean composite %v", agg.Overall(), (c1+c2)/2)
	}
}

func TestAggregator_Empty(t *testing.T) {
	agg := NewAggregator()
	if agg.Overall() != 0 || agg.ContentAverage() != 0 || len(agg.CategoryAverages()) != 0 {
		t.Errorf("empty aggregator not zero")
	}
}

func TestAggregator_CategoryAverages(t *testing.T) {
	agg := NewAggregator()
	agg.Add(turn("database", 0.2, 0, 0))
	agg.Add(turn("cloud", 0.9, 0, 0))
	agg.Add(turn("database", 0.6, 0, 0))

	got := agg.CategoryAverages()
	if len(got) != 2 {
		t.Fatalf("categories = %v, want 2", got)
	}
	if got[0].Category != "database" || got[0].Count != 2 || math.Abs(got[0].Average-0.4) > 1e-9 {
		t.Errorf("database = %+v", got[0])
	}
	if got[1].Category != "cloud" || got[1].Average != 0.9 {
		t.Errorf("cloud = %+v", got[1])
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name                  string
		content, audio, video float64
		cats                  []CategoryAverage
		want                  []string
	}{
		{
			name:    "strong everywhere",
			content: 0.9, audio: 0.9, video: 0.9,
			want: []string{"Excellent technical knowledge! Keep building on this strong foundation"},
		},
		{
			name:    "middling",
			content: 0.6, audio: 0.6, video: 0.6,
			want: []string{
				"Work on depth of knowledge and include more technical details",
				"Use industry-standard terminology in your explanations",
				"Good audio quality, work on speaking pace and clarity",
				"Good presence! Work on maintaining consistent eye contact",
			},
		},
		{
			name:    "weak content strong delivery with weak category",
			content: 0.4, audio: 0.8, video: 0.8,
			cats: []CategoryAverage{{Category: "database", Average: 0.3}, {Category: "cloud", Average: 0.7}},
			want: []string{
				"Focus on reviewing fundamental concepts in your skill areas",
				"Practice explaining technical concepts with more detail and keywords",
				"Review database concepts to strengthen your understanding",
			},
		},
		{
			name:    "capped",
			content: 0.1, audio: 0.1, video: 0.1,
			cats: []CategoryAverage{{Category: "devops", Average: 0.1}},
			want: []string{
				"Focus on reviewing fundamental concepts in your skill areas",
				"Practice explaining technical concepts with more detail and keywords",
				"Improve audio quality: speak clearly and at moderate pace",
				"Practice answering in a quiet environment with good microphone",
				"Improve eye contact and maintain good posture during interviews",
				"Practice on camera to build confidence and professional presence",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(tt.content, tt.audio, tt.video, tt.cats)
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("Recommend() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}
