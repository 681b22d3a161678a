package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-parser/internal/types"
)

// listKeys are the record fields whose falsy entries are pruned before decoding
var listKeys = []string{"jobs", "projects", "education", "skills"}

// CollisionError reports a key produced by more than one category result
type CollisionError struct {
	Key    string
	First  int
	Second int
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("key %q produced by results %d and %d", e.Key, e.First, e.Second)
}

// DecodeError reports merged data that does not fit the record shape
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("merged result does not match record shape: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Merge combines category results in order into one normalized ResumeRecord.
// The category schemas are disjoint, so a key seen twice is an error.
func Merge(results []types.CategoryResult) (*types.ResumeRecord, error) {
	merged := make(map[string]any)
	owner := make(map[string]int)
	for i, result := range results {
		for key, value := range result {
			if first, seen := owner[key]; seen {
				return nil, &CollisionError{Key: key, First: first, Second: i}
			}
			owner[key] = i
			merged[key] = value
		}
	}

	for _, key := range listKeys {
		if list, ok := merged[key].([]any); ok {
			merged[key] = pruneFalsy(list)
		}
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return nil, &DecodeError{Cause: err}
	}
	var record types.ResumeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &DecodeError{Cause: err}
	}

	Record(&record)

	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("normalized record failed validation: %w", err)
	}
	return &record, nil
}

// Record normalizes a decoded record in place: placeholder tokens are
// cleared, dates and phone reformatted, e-mail checked, and empty list
// entries dropped. Lists are never nil afterwards. Record is idempotent.
func Record(r *types.ResumeRecord) {
	for _, field := range []*string{
		&r.FirstName, &r.MiddleName, &r.LastName, &r.LinkedinURL, &r.CountryCode,
		&r.ExperienceYears, &r.LatestJobDesignation, &r.Gender, &r.City, &r.State,
		&r.NativeLocation, &r.MarriageStatus, &r.NoticePeriod, &r.Summary,
	} {
		*field = Sanitize(*field)
	}
	r.PrimaryEmail = NormalizeEmail(r.PrimaryEmail)
	r.PhoneNumber = NormalizePhone(r.PhoneNumber)
	r.Dob = NormalizeDate(r.Dob)
	r.Skills = cleanStrings(r.Skills)

	jobs := make([]types.JobDetails, 0, len(r.Jobs))
	for _, j := range r.Jobs {
		j.CompanyName = Sanitize(j.CompanyName)
		j.Designation = Sanitize(j.Designation)
		j.FromDate = NormalizeDate(j.FromDate)
		j.ToDate = NormalizeDate(j.ToDate)
		j.ReportingTo = Sanitize(j.ReportingTo)
		j.Location = Sanitize(j.Location)
		j.Skills = cleanStrings(j.Skills)
		if !j.IsEmpty() {
			jobs = append(jobs, j)
		}
	}
	r.Jobs = jobs

	projects := make([]types.ProjectDetails, 0, len(r.Projects))
	for _, p := range r.Projects {
		p.CompanyName = Sanitize(p.CompanyName)
		p.ProjectTitle = Sanitize(p.ProjectTitle)
		p.FromDate = NormalizeDate(p.FromDate)
		p.ToDate = NormalizeDate(p.ToDate)
		p.Role = Sanitize(p.Role)
		p.ProjectDescription = Sanitize(p.ProjectDescription)
		p.Client = Sanitize(p.Client)
		p.Skills = cleanStrings(p.Skills)
		if !p.IsEmpty() {
			projects = append(projects, p)
		}
	}
	r.Projects = projects

	education := make([]types.EducationDetails, 0, len(r.Education))
	for _, e := range r.Education {
		for _, field := range []*string{
			&e.Specialization, &e.Degree, &e.PercentageMarksOrGrade,
			&e.ModeOfEducation, &e.YearOfPassing, &e.College, &e.University,
		} {
			*field = Sanitize(*field)
		}
		e.Qualification = Sanitize(e.Qualification)
		// A lone default qualification carries no information
		if (e == types.EducationDetails{Qualification: "Others"}) {
			continue
		}
		if !e.IsEmpty() {
			education = append(education, e)
		}
	}
	r.Education = education
}

func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = Sanitize(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// pruneFalsy drops nil, empty-string, empty-map and empty-list entries
func pruneFalsy(list []any) []any {
	out := make([]any, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}
		case map[string]any:
			if len(v) == 0 {
				continue
			}
		case []any:
			if len(v) == 0 {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}
