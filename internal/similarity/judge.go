package similarity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/interviewer/internal/llm"
)

const judgeSystemPrompt = `You grade answers in a technical interview.
Compare the candidate answer with the reference answer and rate how much of the
reference meaning the candidate conveys, from 0 (nothing) to 1 (all of it).
Ignore grammar, style and length. Do not reward keywords used without meaning.`

var judgeSchema = &llm.Schema{
	Name:        "answer-similarity",
	Description: "Semantic agreement between a candidate answer and a reference answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Semantic agreement from 0 to 1",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "One sentence explaining the score",
			},
		},
		"required":             []any{"score", "reasoning"},
		"additionalProperties": false,
	},
}

type judgeOutput struct {
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning"`
}

// Judge asks an LLM to rate semantic agreement.
type Judge struct {
	provider  llm.Provider
	maxTokens int
}

// NewJudge creates an LLM-backed comparator.
func NewJudge(p llm.Provider) *Judge {
	return &Judge{provider: p, maxTokens: 256}
}

func (j *Judge) Score(ctx context.Context, a, b string) (float64, error) {
	if a == "" || b == "" {
		return 0, nil
	}

	resp, err := j.provider.Generate(llm.WithPurpose(ctx, llm.PurposeSimilarityJudge), llm.Request{
		System: judgeSystemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("Reference answer:\n%s\n\nCandidate answer:\n%s", b, a),
		}},
		Schema:    judgeSchema,
		MaxTokens: j.maxTokens,
	})
	if err != nil {
		return 0, fmt.Errorf("judge answer: %w", err)
	}

	var out judgeOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return 0, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return out.Score, nil
}
