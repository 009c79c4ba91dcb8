package lessons

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// packSchema is the JSON Schema every lesson pack must satisfy before any
// lesson is admitted to the catalog. A feed that fails validation is fatal
// to startup.
var packSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"lessons": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":    "string",
						"pattern": "^[a-z0-9][a-z0-9_-]*$",
					},
					"title":        map[string]any{"type": "string", "minLength": 1},
					"goal":         map[string]any{"type": "string"},
					"starter_code": map[string]any{"type": "string"},
					"checker": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"source":      map[string]any{"type": "string", "minLength": 1},
							"entry_point": map[string]any{"type": "string"},
						},
						"required":             []any{"source"},
						"additionalProperties": false,
					},
					"hints": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"xp_reward": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
				},
				"required":             []any{"id", "title", "starter_code", "checker", "xp_reward"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"name", "lessons"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledPackSchema compiles the pack schema once and caches it.
func compiledPackSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(packSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal pack schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse pack schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://lesson-pack.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// ValidatePack validates raw pack JSON against the schema.
func ValidatePack(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrMalformedFeed, err)
	}
	schema, err := compiledPackSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}
	return nil
}
