// Package questionbank holds the static, read-only catalog of interview
// questions keyed by canonical skill.
package questionbank

// Difficulty is the declared difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultCategory is used for questions that declare no category.
const DefaultCategory = "general"

// AllDifficulties returns all difficulties from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is one interview question. Questions are owned by a Bank and
// never mutated after load.
type Question struct {
	ID               string     `yaml:"id" json:"id" validate:"required"`
	SkillKey         string     `yaml:"-" json:"skill"`
	Category         string     `yaml:"category" json:"category"`
	Difficulty       Difficulty `yaml:"difficulty" json:"difficulty" validate:"required,oneof=easy medium hard"`
	Prompt           string     `yaml:"question" json:"question" validate:"required"`
	ExpectedAnswer   string     `yaml:"expected_answer" json:"expected_answer" validate:"required"`
	ExpectedKeywords []string   `yaml:"expected_keywords" json:"expected_keywords" validate:"dive,required"`
}

// Skill groups the questions of one bank key, in source order.
type Skill struct {
	Key       string
	Questions []Question
}
