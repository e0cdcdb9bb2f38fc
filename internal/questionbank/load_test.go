package questionbank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlSource = `
sql:
  - id: sql_1
    category: database
    difficulty: easy
    question: What is a primary key?
    expected_answer: A column that uniquely identifies a row.
    expected_keywords: [unique, row]
python:
  - id: py_1
    difficulty: medium
    question: What is a generator?
    expected_answer: A function that yields values lazily.
`

func TestLoad_PreservesKeyOrder(t *testing.T) {
	b, err := Load([]byte(yamlSource))
	require.NoError(t, err)

	assert.Equal(t, []string{"sql", "python"}, b.Keys())

	q, err := b.Question("py_1")
	require.NoError(t, err)
	assert.Equal(t, "python", q.SkillKey)
	assert.Equal(t, DefaultCategory, q.Category)
	assert.Equal(t, DifficultyMedium, q.Difficulty)
	assert.Empty(t, q.ExpectedKeywords)
}

func TestLoad_JSON(t *testing.T) {
	src := `{"go": [{"id": "go_1", "difficulty": "hard", "question": "What is a goroutine?", ` +
		`"expected_answer": "A lightweight thread managed by the Go runtime.", ` +
		`"expected_keywords": ["runtime", "scheduler"]}]}`

	b, err := Load([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, b.Keys())
	assert.Equal(t, 1, b.Len())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty document", "", ErrEmptyBank},
		{"empty mapping", "{}", ErrEmptyBank},
		{"not a mapping", "- a\n- b\n", ErrInvalidBank},
		{"bad difficulty", "x:\n  - {id: a, difficulty: trivial, question: q, expected_answer: e}\n", ErrInvalidBank},
		{"missing answer", "x:\n  - {id: a, difficulty: easy, question: q}\n", ErrInvalidBank},
		{"unknown field", "x:\n  - {id: a, difficulty: easy, question: q, expected_answer: e, points: 3}\n", ErrInvalidBank},
		{"only empty skills", "x: []\n", ErrEmptyBank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load([]byte("x: [unclosed"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlSource), 0o600))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	keys := b.Keys()
	require.GreaterOrEqual(t, len(keys), 10)
	assert.Equal(t, "python", keys[0])
	for _, k := range keys {
		assert.GreaterOrEqual(t, b.Count(k), 3, "skill %s", k)
		for _, q := range b.Questions(k) {
			for _, kw := range q.ExpectedKeywords {
				assert.NotEmpty(t, kw, "question %s", q.ID)
			}
		}
	}

	q, err := b.Question("sql_001")
	require.NoError(t, err)
	assert.Contains(t, q.ExpectedKeywords, "NULL")

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, b, again)
}
