package evaluator

// Rating is a categorical grade shared by presentation quality and the
// overall session score.
type Rating string

const (
	RatingExcellent        Rating = "Excellent"
	RatingVeryGood         Rating = "Very Good"
	RatingGood             Rating = "Good"
	RatingFair             Rating = "Fair"
	RatingNeedsImprovement Rating = "Needs Improvement"
)

// RatingFor maps a score in [0, 1] to a Rating.
func RatingFor(score float64) Rating {
	switch {
	case score >= 0.85:
		return RatingExcellent
	case score >= 0.70:
		return RatingVeryGood
	case score >= 0.55:
		return RatingGood
	case score >= 0.40:
		return RatingFair
	default:
		return RatingNeedsImprovement
	}
}

// Description is the longer phrase shown next to a presentation rating.
func (r Rating) Description() string {
	switch r {
	case RatingExcellent:
		return "Clear and confident"
	case RatingVeryGood:
		return "Professional delivery"
	case RatingGood:
		return "Adequate presentation"
	case RatingFair:
		return "Room for improvement"
	default:
		return "Practice recommended"
	}
}
