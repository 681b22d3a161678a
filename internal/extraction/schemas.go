// Package extraction turns the chunks routed to one resume section into
// that section's structured fields with a single model call.
package extraction

import (
	"fmt"

	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/types"
)

// Qualifications are the accepted education levels
var Qualifications = []string{"Bachelors", "Masters", "Doctorate", "Diploma", "Others"}

// Tiers routes each category to a model tier. Nested, judgment-heavy
// sections use the advanced tier and flat contact/education fields the lite one.
var Tiers = map[types.Category]llm.ModelTier{
	types.CategoryJobDetails:       llm.TierAdvanced,
	types.CategoryProjectDetails:   llm.TierAdvanced,
	types.CategoryProfessionalInfo: llm.TierAdvanced,
	types.CategoryPersonalInfo:     llm.TierLite,
	types.CategoryEducationDetails: llm.TierLite,
}

// SchemaFor returns the extraction schema of category
func SchemaFor(category types.Category) (llm.ExtractionSchema, error) {
	switch category {
	case types.CategoryPersonalInfo:
		return PersonalInfoSchema(), nil
	case types.CategoryEducationDetails:
		return EducationDetailsSchema(), nil
	case types.CategoryProjectDetails:
		return ProjectDetailsSchema(), nil
	case types.CategoryJobDetails:
		return JobDetailsSchema(), nil
	case types.CategoryProfessionalInfo:
		return ProfessionalInfoSchema(), nil
	default:
		return llm.ExtractionSchema{}, fmt.Errorf("unknown category %q", category)
	}
}

// Defaults returns the result of category when no chunk was routed to it
func Defaults(category types.Category) (types.CategoryResult, error) {
	schema, err := SchemaFor(category)
	if err != nil {
		return nil, err
	}
	return schema.ApplyDefaults(nil), nil
}

func str(name, description string) llm.SchemaField {
	return llm.SchemaField{Name: name, Kind: llm.KindString, Description: description}
}

// PersonalInfoSchema describes contact and demographic fields
func PersonalInfoSchema() llm.ExtractionSchema {
	return llm.ExtractionSchema{
		Name:        string(types.CategoryPersonalInfo),
		Description: "Candidate identity, contact and demographic details.",
		Fields: []llm.SchemaField{
			str("firstName", "First name of the candidate as mentioned in the resume, usually at the start."),
			str("middleName", "Middle name of the candidate, if available."),
			str("lastName", "Last name (surname) of the candidate."),
			str("primaryEmail", "Candidate's email address. Return only one if several are listed."),
			str("linkedinUrl", "URL of the candidate's LinkedIn profile."),
			str("countryCode", "International dialing code of the phone number (e.g., +1, +91, +44)."),
			str("phoneNumber", "Phone number of the candidate without the country code."),
			str("dob", "Date of birth of the candidate in YYYY-MM-DD format."),
			str("latestJobDesignation", "Job title held in the most recent job."),
			str("gender", "Gender of the candidate, if mentioned."),
			str("city", "Current city where the candidate resides or works."),
			str("state", "State of that city."),
			str("nativeLocation", "Candidate's native place or hometown."),
			str("marriageStatus", "Marital status (e.g., Single, Married, Divorced)."),
		},
	}
}

// EducationDetailsSchema describes academic history
func EducationDetailsSchema() llm.ExtractionSchema {
	return llm.ExtractionSchema{
		Name:        string(types.CategoryEducationDetails),
		Description: "Degrees, schools and grades.",
		Fields: []llm.SchemaField{
			{
				Name:        "education",
				Kind:        llm.KindObjectList,
				Description: "Educational qualifications, one entry per degree or certificate.",
				Items: []llm.SchemaField{
					str("specialization", "Area of specialization or major."),
					str("degree", "Academic degree obtained (e.g., BE, B.Tech, M.Tech, MBA)."),
					{
						Name:        "qualification",
						Kind:        llm.KindString,
						Description: "Qualification level achieved.",
						Default:     "Others",
						Enum:        Qualifications,
					},
					str("percentageMarksOrGrade", "Percentage, CGPA or other grade obtained."),
					str("modeOfEducation", "Full-time, Part-time or Distance education."),
					str("yearOfPassing", "Year the qualification was completed."),
					str("college", "Name of the college attended."),
					str("university", "Name of the awarding university."),
				},
			},
		},
	}
}

// ProjectDetailsSchema describes project history
func ProjectDetailsSchema() llm.ExtractionSchema {
	return llm.ExtractionSchema{
		Name:        string(types.CategoryProjectDetails),
		Description: "Projects the candidate worked on.",
		Fields: []llm.SchemaField{
			{
				Name:        "projects",
				Kind:        llm.KindObjectList,
				Description: "Projects, one entry per project.",
				Items: []llm.SchemaField{
					str("companyName", "Company where the project was executed."),
					str("projectTitle", "Title or name of the project."),
					str("fromDate", "Start date of the project (YYYY-MM or similar)."),
					str("toDate", "End date of the project (YYYY-MM or similar)."),
					str("role", "Role of the candidate in the project."),
					str("projectDescription", "Brief description including objectives and technologies."),
					str("client", "Client the project was executed for. Use the company name if none is mentioned."),
					{Name: "skills", Kind: llm.KindStringList, Description: "Key skills, technologies or tools used in this project."},
				},
			},
		},
	}
}

// JobDetailsSchema describes employment history
func JobDetailsSchema() llm.ExtractionSchema {
	return llm.ExtractionSchema{
		Name:        string(types.CategoryJobDetails),
		Description: "Employment history.",
		Fields: []llm.SchemaField{
			{
				Name:        "jobs",
				Kind:        llm.KindObjectList,
				Description: "Previous or current jobs, one entry per position.",
				Items: []llm.SchemaField{
					str("companyName", "Name of the employer."),
					str("designation", "Job title or designation held."),
					str("fromDate", "Start date of employment (YYYY-MM or similar)."),
					str("toDate", "End date of employment (YYYY-MM or similar)."),
					{Name: "isCurrentlyWorking", Kind: llm.KindBool, Description: "True if the candidate still works here."},
					str("reportingTo", "Manager or supervisor the candidate reported to."),
					str("location", "Work location (city and/or country)."),
					{Name: "skills", Kind: llm.KindStringList, Description: "Key skills, technologies or tools used in this role."},
				},
			},
		},
	}
}

// ProfessionalInfoSchema describes skills and career summary
func ProfessionalInfoSchema() llm.ExtractionSchema {
	return llm.ExtractionSchema{
		Name:        string(types.CategoryProfessionalInfo),
		Description: "Skills, experience and career summary.",
		Fields: []llm.SchemaField{
			{
				Name:        "skills",
				Kind:        llm.KindStringList,
				Description: "Professional skills explicitly stated in the resume. Do not infer skills from job titles or descriptions.",
			},
			str("experienceYears", "Total years of professional experience."),
			str("noticePeriod", "Notice period (in weeks or months) required before leaving the current employer."),
			str("summary", "Brief professional summary or career overview."),
		},
	}
}
