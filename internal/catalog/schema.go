package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// instrumentSchemaJSON is the JSON Schema every deploy-time instrument
// file must satisfy before it reaches structural validation.
const instrumentSchemaJSON = `{
  "type": "object",
  "required": ["slug", "title", "version", "category", "max_weight", "questions", "bands"],
  "properties": {
    "slug": {"type": "string", "minLength": 1},
    "title": {"type": "string", "minLength": 1},
    "version": {"type": "string", "minLength": 1},
    "category": {"type": "string", "minLength": 1},
    "description": {"type": "string"},
    "max_weight": {"type": "integer", "minimum": 1},
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "domain", "text", "options"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "domain": {"type": "string", "minLength": 1},
          "text": {"type": "string", "minLength": 1},
          "options": {
            "type": "array",
            "minItems": 2,
            "items": {
              "type": "object",
              "required": ["label", "weight"],
              "properties": {
                "label": {"type": "string", "minLength": 1},
                "weight": {"type": "integer", "minimum": 0}
              }
            }
          }
        }
      }
    },
    "bands": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["threshold", "title", "summary"],
        "properties": {
          "threshold": {"type": "number", "minimum": 0, "maximum": 1},
          "title": {"type": "string", "minLength": 1},
          "summary": {"type": "string", "minLength": 1},
          "tips": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// compiledInstrumentSchema compiles the instrument schema once and
// caches the result.
func compiledInstrumentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(instrumentSchemaJSON), &parsed); err != nil {
			schemaErr = fmt.Errorf("parse instrument schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		const url = "schema://instrument.json"
		if err := compiler.AddResource(url, parsed); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		schemaCompiled, schemaErr = compiler.Compile(url)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile instrument schema: %w", schemaErr)
		}
	})
	return schemaCompiled, schemaErr
}
