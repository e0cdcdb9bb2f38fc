package questionbank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed bank.schema.json
var bankSchemaSource []byte

const bankSchemaURL = "schema://question-bank.json"

var (
	schemaOnce sync.Once
	bankSchema *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(bankSchemaSource))
		if err != nil {
			schemaErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(bankSchemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add bank schema: %w", err)
			return
		}
		bankSchema, schemaErr = c.Compile(bankSchemaURL)
	})
	return bankSchema, schemaErr
}

// checkSchema validates the document shape before typed decoding so that
// errors point at the offending path rather than at a Go type.
func checkSchema(root *yaml.Node) error {
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: top level must map skill keys to question lists (line %d)", ErrInvalidBank, root.Line)
	}
	if len(root.Content) == 0 {
		return ErrEmptyBank
	}

	var generic any
	if err := root.Decode(&generic); err != nil {
		return fmt.Errorf("parse question bank: %w", err)
	}

	// Round-trip through JSON so the validator sees JSON-native values.
	raw, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBank, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBank, err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBank, err)
	}
	return nil
}
