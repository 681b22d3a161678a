package schemas

import (
	"encoding/json"
	"os"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/normalize"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

const recordSchema = "resume_record.schema.json"

func loadSchema(t *testing.T) map[string]any {
	t.Helper()
	data, err := os.ReadFile(recordSchema)
	require.NoError(t, err, "should be able to read schema file")

	var schemaObj map[string]any
	require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON")
	return schemaObj
}

func jsonFieldNames(v any) []string {
	typ := reflect.TypeOf(v)
	names := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		names = append(names, strings.Split(typ.Field(i).Tag.Get("json"), ",")[0])
	}
	sort.Strings(names)
	return names
}

func requiredOf(t *testing.T, obj map[string]any) []string {
	t.Helper()
	raw, ok := obj["required"].([]any)
	require.True(t, ok, "schema object should list required fields")
	names := make([]string, len(raw))
	for i, r := range raw {
		names[i] = r.(string)
	}
	sort.Strings(names)
	return names
}

func TestResumeRecordSchema_Structure(t *testing.T) {
	schemaObj := loadSchema(t)

	assert.Equal(t, "object", schemaObj["type"])
	assert.Contains(t, schemaObj, "$schema")
	assert.Equal(t, false, schemaObj["additionalProperties"])
}

func TestResumeRecordSchema_MatchesTypes(t *testing.T) {
	schemaObj := loadSchema(t)
	defs := schemaObj["definitions"].(map[string]any)

	assert.Equal(t, jsonFieldNames(types.ResumeRecord{}), requiredOf(t, schemaObj))
	assert.Equal(t, jsonFieldNames(types.JobDetails{}), requiredOf(t, defs["job"].(map[string]any)))
	assert.Equal(t, jsonFieldNames(types.ProjectDetails{}), requiredOf(t, defs["project"].(map[string]any)))
	assert.Equal(t, jsonFieldNames(types.EducationDetails{}), requiredOf(t, defs["education"].(map[string]any)))
}

func TestResumeRecordSchema_AcceptsNormalizedRecord(t *testing.T) {
	record := &types.ResumeRecord{
		FirstName:    "Asha",
		PrimaryEmail: "asha@example.com",
		PhoneNumber:  "9876543210",
		Dob:          "1994-03-15",
		Jobs: []types.JobDetails{
			{CompanyName: "Acme", FromDate: "2019-06-01", IsCurrentlyWorking: true, Skills: []string{"Go"}},
		},
		Education: []types.EducationDetails{{Degree: "B.E.", Qualification: "Bachelors"}},
		Skills:    []string{"Go"},
	}
	normalize.Record(record)

	data, err := json.Marshal(record)
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(mustRead(t, recordSchema), string(data)))
}

func TestResumeRecordSchema_AcceptsEmptyRecord(t *testing.T) {
	record := &types.ResumeRecord{}
	normalize.Record(record)

	data, err := json.Marshal(record)
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(mustRead(t, recordSchema), string(data)))
}

func TestResumeRecordSchema_RejectsUnnormalizedValues(t *testing.T) {
	record := types.ResumeRecord{
		PhoneNumber: "+91 98765",
		Dob:         "March 1994",
		Jobs:        []types.JobDetails{},
		Projects:    []types.ProjectDetails{},
		Education:   []types.EducationDetails{},
		Skills:      []string{""},
	}
	data, err := json.Marshal(record)
	require.NoError(t, err)

	err = schemas.ValidateJSONString(mustRead(t, recordSchema), string(data))
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.GreaterOrEqual(t, len(validationErr.Errors), 3)
}

func mustRead(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
