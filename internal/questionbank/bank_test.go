package questionbank

import (
	"errors"
	"strings"
	"testing"
)

func sampleSkills() []Skill {
	return []Skill{
		{Key: "python", Questions: []Question{
			{ID: "py_1", Difficulty: DifficultyEasy, Prompt: "p1", ExpectedAnswer: "a1", ExpectedKeywords: []string{"gil"}},
			{ID: "py_2", Category: "programming", Difficulty: DifficultyHard, Prompt: "p2", ExpectedAnswer: "a2"},
		}},
		{Key: "sql", Questions: []Question{
			{ID: "sql_1", Category: "database", Difficulty: DifficultyMedium, Prompt: "p3", ExpectedAnswer: "a3"},
		}},
	}
}

func TestNew_IndexesQuestions(t *testing.T) {
	b, err := New(sampleSkills())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := b.Keys(); len(got) != 2 || got[0] != "python" || got[1] != "sql" {
		t.Fatalf("keys = %v, want [python sql]", got)
	}
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	if b.Count("python") != 2 || b.Count("missing") != 0 {
		t.Fatalf("unexpected counts: python=%d missing=%d", b.Count("python"), b.Count("missing"))
	}

	q, err := b.Question("sql_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.SkillKey != "sql" {
		t.Errorf("SkillKey = %q, want sql", q.SkillKey)
	}

	py1, _ := b.Question("py_1")
	if py1.Category != DefaultCategory {
		t.Errorf("Category = %q, want %q", py1.Category, DefaultCategory)
	}
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	skills := sampleSkills()
	b := MustNew(skills)

	skills[0].Questions[0].Prompt = "changed"
	skills[0].Questions[0].ExpectedKeywords[0] = "changed"

	q, _ := b.Question("py_1")
	if q.Prompt != "p1" || q.ExpectedKeywords[0] != "gil" {
		t.Fatalf("bank mutated through caller slice: %+v", q)
	}
}

func TestQuestion_NotFound(t *testing.T) {
	b := MustNew(sampleSkills())
	_, err := b.Question("nope")
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	b := MustNew(sampleSkills())
	got := b.Categories()
	want := []string{DefaultCategory, "programming", "database"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
}

func TestValidateSkills_Empty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("expected ErrEmptyBank, got %v", err)
	}
	if _, err := New([]Skill{{Key: "python"}}); !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("expected ErrEmptyBank for bank without questions, got %v", err)
	}
}

func TestValidateSkills_DetectsDuplicateID(t *testing.T) {
	skills := sampleSkills()
	skills[1].Questions[0].ID = "py_1"

	_, err := New(skills)
	if !errors.Is(err, ErrInvalidBank) {
		t.Fatalf("expected ErrInvalidBank, got %v", err)
	}
	if !strings.Contains(err.Error(), `duplicate question ID "py_1"`) {
		t.Errorf("error should name the duplicate, got: %v", err)
	}
}

func TestValidateSkills_DetectsBadFields(t *testing.T) {
	skills := sampleSkills()
	skills[0].Questions[0].Difficulty = "impossible"
	skills[0].Questions[1].Prompt = ""

	_, err := New(skills)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Difficulty") || !strings.Contains(msg, "oneof") {
		t.Errorf("error should mention difficulty, got: %v", err)
	}
	if !strings.Contains(msg, "Prompt") {
		t.Errorf("error should mention prompt, got: %v", err)
	}
}

func TestValidateSkills_DetectsDuplicateKey(t *testing.T) {
	skills := sampleSkills()
	skills[1].Key = "python"

	_, err := New(skills)
	if err == nil || !strings.Contains(err.Error(), "duplicate skill key") {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
}

func TestFilter(t *testing.T) {
	b := MustNew(sampleSkills())

	tests := []struct {
		name string
		keys []string
		diff Difficulty
		want []string
	}{
		{"all", nil, "", []string{"py_1", "py_2", "sql_1"}},
		{"one skill", []string{"python"}, "", []string{"py_1", "py_2"}},
		{"difficulty", nil, DifficultyHard, []string{"py_2"}},
		{"skill and difficulty", []string{"sql"}, DifficultyEasy, nil},
		{"unknown key", []string{"cobol", "sql"}, "", []string{"sql_1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, q := range b.Filter(tt.keys, tt.diff) {
				got = append(got, q.ID)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}
