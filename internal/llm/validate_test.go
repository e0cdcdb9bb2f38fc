package llm

import (
	"errors"
	"testing"
)

// similaritySchema mirrors the verdict the answer judge asks for.
func similaritySchema() *Schema {
	return &Schema{
		Name:        "answer-similarity",
		Description: "Semantic agreement between a candidate answer and a reference answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":     map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				"reasoning": map[string]any{"type": "string"},
			},
			"required":             []any{"score", "reasoning"},
			"additionalProperties": false,
		},
	}
}

func TestStructuredContent(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{"plain", `{"score":0.7,"reasoning":"mentions the GIL"}`, `{"score":0.7,"reasoning":"mentions the GIL"}`, false},
		{"padded", "\n  {\"score\":1,\"reasoning\":\"complete\"}\n", `{"score":1,"reasoning":"complete"}`, false},
		{"json fence", "```json\n{\"score\":0.4,\"reasoning\":\"partial\"}\n```", `{"score":0.4,"reasoning":"partial"}`, false},
		{"bare fence", "```\n{\"score\":0,\"reasoning\":\"off topic\"}\n```", `{"score":0,"reasoning":"off topic"}`, false},
		{"missing reasoning", `{"score":0.2}`, "", true},
		{"score as text", `{"score":"high","reasoning":"ok"}`, "", true},
		{"score above one", `{"score":1.4,"reasoning":"ok"}`, "", true},
		{"extra field", `{"score":0.5,"reasoning":"ok","verdict":"partial"}`, "", true},
		{"prose", `The answer is mostly right.`, "", true},
		{"empty", "  ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := structuredContent(similaritySchema(), tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("structuredContent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got: %T", err)
				}
				return
			}
			if string(got) != tt.want {
				t.Errorf("content = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStructuredContent_NoSchemaKeepsText(t *testing.T) {
	text := "```\nnot json at all\n```"
	got, err := structuredContent(nil, text)
	if err != nil {
		t.Fatalf("expected no error without a schema, got: %v", err)
	}
	if string(got) != text {
		t.Errorf("content = %q, want it unchanged", got)
	}
}

func TestStructuredContent_NestedSchema(t *testing.T) {
	schema := &Schema{
		Name: "keyword-review",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"skill": map[string]any{"type": "string"},
					},
					"required": []any{"skill"},
				},
				"missing_keywords": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"question", "missing_keywords"},
		},
	}

	valid := `{"question":{"skill":"python"},"missing_keywords":["GIL","asyncio"]}`
	if _, err := structuredContent(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := `{"question":{"skill":"python"},"missing_keywords":[1,2]}`
	if _, err := structuredContent(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```JSON\n{\"a\":1}```", `{"a":1}`},
		{"```{\"a\":1}```", `{"a":1}`},
		{"```json{\"a\":1}```", `{"a":1}`},
		{"  \n```\n{\"a\":1}\n```  \n", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
