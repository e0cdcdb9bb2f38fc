package questionbank

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default_bank.yaml
var defaultBankSource []byte

var (
	defaultOnce sync.Once
	defaultBank *Bank
	defaultErr  error
)

// Default returns the embedded question bank.
func Default() (*Bank, error) {
	defaultOnce.Do(func() {
		defaultBank, defaultErr = Load(defaultBankSource)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("embedded bank: %w", defaultErr)
		}
	})
	return defaultBank, defaultErr
}

// LoadFile reads and parses a bank from path. YAML and JSON are accepted.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	b, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Load parses a bank source of the form
//
//	skill_key:
//	  - id: ...
//	    question: ...
//
// Skill order in the document is preserved. JSON, being valid YAML, loads
// the same way.
func Load(data []byte) (*Bank, error) {
	skills, err := parseSource(data)
	if err != nil {
		return nil, err
	}
	return New(skills)
}

func parseSource(data []byte) ([]Skill, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, ErrEmptyBank
	}

	if err := checkSchema(doc.Content[0]); err != nil {
		return nil, err
	}

	root := doc.Content[0]
	skills := make([]Skill, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		var qs []Question
		if err := valNode.Decode(&qs); err != nil {
			return nil, fmt.Errorf("skill %q (line %d): %w", keyNode.Value, keyNode.Line, err)
		}
		skills = append(skills, Skill{Key: keyNode.Value, Questions: qs})
	}

	return skills, nil
}
