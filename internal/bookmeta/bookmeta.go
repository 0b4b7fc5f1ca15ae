// Package bookmeta loads and validates book metadata documents. A metadata
// document is a JSON object that may carry an explicit "chapters" array used
// by the detection pipeline's highest-priority source.
package bookmeta

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

// compiled at init; the schema is embedded and must be valid.
var schema = jsonschema.MustCompileString("bookmeta/schema.json", schemaJSON)

// Load parses and validates a metadata document. The envelope is validated
// strictly (chapters must be an array of objects when present); individual
// chapter entries are deliberately left loose here, because the Explicit
// source skips malformed entries instead of failing the whole call.
func Load(data []byte) (map[string]any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse metadata document: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("metadata document failed schema validation: %w", err)
	}

	meta, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("metadata document must be a JSON object")
	}
	return meta, nil
}
