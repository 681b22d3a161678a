package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/types"
)

func TestSchemas_TopLevelFieldsAreDisjoint(t *testing.T) {
	owner := make(map[string]types.Category)
	for _, category := range types.AllCategories {
		schema, err := SchemaFor(category)
		require.NoError(t, err)
		assert.Equal(t, string(category), schema.Name)

		for _, name := range schema.FieldNames() {
			prev, dup := owner[name]
			assert.False(t, dup, "field %q in both %s and %s", name, prev, category)
			owner[name] = category
		}
	}
}

func TestSchemas_CoverRecordFields(t *testing.T) {
	var all []string
	for _, category := range types.AllCategories {
		schema, _ := SchemaFor(category)
		all = append(all, schema.FieldNames()...)
	}

	assert.ElementsMatch(t, []string{
		"firstName", "middleName", "lastName", "primaryEmail", "linkedinUrl", "countryCode",
		"phoneNumber", "dob", "latestJobDesignation", "gender", "city", "state", "nativeLocation",
		"marriageStatus", "education", "projects", "jobs", "skills", "experienceYears",
		"noticePeriod", "summary",
	}, all)
}

func TestTiers(t *testing.T) {
	assert.Len(t, Tiers, 5)
	assert.Equal(t, llm.TierAdvanced, Tiers[types.CategoryJobDetails])
	assert.Equal(t, llm.TierAdvanced, Tiers[types.CategoryProjectDetails])
	assert.Equal(t, llm.TierAdvanced, Tiers[types.CategoryProfessionalInfo])
	assert.Equal(t, llm.TierLite, Tiers[types.CategoryPersonalInfo])
	assert.Equal(t, llm.TierLite, Tiers[types.CategoryEducationDetails])
}

func TestDefaults(t *testing.T) {
	personal, err := Defaults(types.CategoryPersonalInfo)
	require.NoError(t, err)
	assert.Equal(t, "NA", personal["firstName"])

	professional, err := Defaults(types.CategoryProfessionalInfo)
	require.NoError(t, err)
	assert.Equal(t, []any{}, professional["skills"])
	assert.Equal(t, "NA", professional["summary"])

	jobs, err := Defaults(types.CategoryJobDetails)
	require.NoError(t, err)
	assert.Equal(t, []any{}, jobs["jobs"])

	_, err = Defaults(types.Category("Hobbies"))
	assert.Error(t, err)
}
