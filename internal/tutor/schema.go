package tutor

// AdviceSchema is the JSON Schema for generated advice.
var AdviceSchema = &Schema{
	Name:        "pydojo-advice",
	Description: "A short diagnosis and suggestion for a failing Python exercise attempt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"diagnosis": map[string]any{
				"type":        "string",
				"description": "One or two sentences naming what is wrong with the student's code",
			},
			"suggestion": map[string]any{
				"type":        "string",
				"description": "A concrete next step the student can take, without giving away the full solution",
			},
			"concept": map[string]any{
				"type":        "string",
				"description": "The Python concept the student should review, e.g. 'for loops' or 'string formatting'",
			},
		},
		"required":             []any{"diagnosis", "suggestion", "concept"},
		"additionalProperties": false,
	},
}
