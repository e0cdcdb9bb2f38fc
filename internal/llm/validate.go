package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemas holds compiled response schemas keyed by Schema.Name. The judge
// sends the same schema with every answer it grades.
var schemas = &schemaRegistry{compiled: make(map[string]*jsonschema.Schema)}

type schemaRegistry struct {
	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

func (r *schemaRegistry) get(s *Schema) (*jsonschema.Schema, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.compiled[s.Name]; ok {
		return c, nil
	}

	def, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	url := "schema://" + s.Name + ".json"
	comp := jsonschema.NewCompiler()
	if err := comp.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	c, err := comp.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	r.compiled[s.Name] = c
	return c, nil
}

// structuredContent turns the text a model produced into Response.Content.
// Without a schema the text is returned as is. With one, surrounding
// whitespace and a markdown code fence are removed and the remaining JSON
// must satisfy the schema; failures are *ErrInvalidResponse.
func structuredContent(schema *Schema, text string) (json.RawMessage, error) {
	if schema == nil {
		return json.RawMessage(text), nil
	}

	raw := json.RawMessage(stripCodeFence(text))
	if len(raw) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("empty response for schema %q", schema.Name)}
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := schemas.get(schema)
	if err != nil {
		return nil, &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("compile schema %q: %w", schema.Name, err),
		}
	}
	if err := compiled.Validate(inst); err != nil {
		return nil, &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}
	return raw, nil
}

// stripCodeFence removes a ```json ... ``` wrapper some models put around
// structured output even when asked not to.
func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
