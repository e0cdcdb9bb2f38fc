package session

import "fmt"

// MaxRecommendations caps the advice list in a summary.
const MaxRecommendations = 6

// categoryReviewThreshold is the content average below which a category
// gets its own review recommendation.
const categoryReviewThreshold = 0.6

// Recommend derives advice from the aggregated averages. Rules fire in a
// fixed order and the list is truncated to MaxRecommendations.
func Recommend(content, audio, video float64, categories []CategoryAverage) []string {
	var recs []string

	switch {
	case content < 0.5:
		recs = append(recs,
			"Focus on reviewing fundamental concepts in your skill areas",
			"Practice explaining technical concepts with more detail and keywords")
	case content < 0.7:
		recs = append(recs,
			"Work on depth of knowledge and include more technical details",
			"Use industry-standard terminology in your explanations")
	default:
		recs = append(recs, "Excellent technical knowledge! Keep building on this strong foundation")
	}

	switch {
	case audio < 0.5:
		recs = append(recs,
			"Improve audio quality: speak clearly and at moderate pace",
			"Practice answering in a quiet environment with good microphone")
	case audio < 0.7:
		recs = append(recs, "Good audio quality, work on speaking pace and clarity")
	}

	switch {
	case video < 0.5:
		recs = append(recs,
			"Improve eye contact and maintain good posture during interviews",
			"Practice on camera to build confidence and professional presence")
	case video < 0.7:
		recs = append(recs, "Good presence! Work on maintaining consistent eye contact")
	}

	for _, c := range categories {
		if c.Average < categoryReviewThreshold {
			recs = append(recs, fmt.Sprintf("Review %s concepts to strengthen your understanding", c.Category))
		}
	}

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}
