package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed input_schema.json
var inputSchemaJSON []byte

var inputSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("input_schema.json", bytes.NewReader(inputSchemaJSON)); err != nil {
		panic(fmt.Sprintf("load input schema: %v", err))
	}
	schema, err := compiler.Compile("input_schema.json")
	if err != nil {
		panic(fmt.Sprintf("compile input schema: %v", err))
	}
	return schema
}

// ValidateInput checks raw input artifact JSON against the embedded schema.
func ValidateInput(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}
	if err := inputSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}
