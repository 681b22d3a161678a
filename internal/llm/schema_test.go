package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "EducationDetails",
		Description: "Education history.",
		Fields: []SchemaField{
			{
				Name:        "education",
				Kind:        KindObjectList,
				Description: "Education entries",
				Items: []SchemaField{
					{Name: "college", Kind: KindString, Description: "College name"},
					{Name: "qualification", Kind: KindString, Default: "Others", Enum: []string{"Bachelors", "Masters", "Others"}},
				},
			},
			{Name: "skills", Kind: KindStringList, Description: "Skills"},
			{Name: "isCurrentlyWorking", Kind: KindBool},
			{Name: "summary", Kind: KindString},
		},
	}
}

func TestSchemaField_DefaultValue(t *testing.T) {
	assert.Equal(t, "NA", SchemaField{Kind: KindString}.DefaultValue())
	assert.Equal(t, false, SchemaField{Kind: KindBool}.DefaultValue())
	assert.Equal(t, []any{}, SchemaField{Kind: KindStringList}.DefaultValue())
	assert.Equal(t, []any{}, SchemaField{Kind: KindObjectList}.DefaultValue())
	assert.Equal(t, "Others", SchemaField{Kind: KindString, Default: "Others"}.DefaultValue())
}

func TestExtractionSchema_FormatInstructions(t *testing.T) {
	out := testSchema().FormatInstructions()

	assert.Contains(t, out, "Return ONLY valid JSON")
	assert.Contains(t, out, `"education": [ // Education entries`)
	assert.Contains(t, out, `"college": "string", // College name`)
	assert.Contains(t, out, "(one of: Bachelors, Masters, Others)")
	assert.Contains(t, out, `"skills": ["string"], // Skills`)
	assert.Contains(t, out, `"isCurrentlyWorking": boolean,`)
	assert.Contains(t, out, `"summary": "string"`)
}

func TestExtractionSchema_Summary(t *testing.T) {
	s := testSchema().Summary()
	assert.Equal(t, "EducationDetails: Education history. Fields: education, skills, isCurrentlyWorking, summary.", s)
}

func TestExtractionSchema_JSONSchema(t *testing.T) {
	schema := testSchema().JSONSchema()
	assert.Equal(t, "object", schema["type"])
	_, strict := schema["additionalProperties"]
	assert.False(t, strict)

	strictSchema := ExtractionSchema{Fields: testSchema().Fields, Strict: true}.JSONSchema()
	assert.Equal(t, false, strictSchema["additionalProperties"])

	// Must be serializable for the validator
	_, err := json.Marshal(schema)
	require.NoError(t, err)
}

func TestExtractionSchema_ApplyDefaults(t *testing.T) {
	raw := map[string]any{
		"education": []any{
			map[string]any{"college": "IIT Delhi", "qualification": "masters"},
			map[string]any{"college": nil, "qualification": "PhD"},
			nil,
		},
		"skills":  []any{"Go", nil, "SQL"},
		"summary": nil,
		"extra":   "dropped",
	}

	out := testSchema().ApplyDefaults(raw)

	assert.Equal(t, map[string]any{
		"education": []any{
			map[string]any{"college": "IIT Delhi", "qualification": "Masters"},
			map[string]any{"college": "NA", "qualification": "Others"},
		},
		"skills":             []any{"Go", "SQL"},
		"isCurrentlyWorking": false,
		"summary":            "NA",
	}, out)
}
