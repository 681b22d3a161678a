package types

import "github.com/go-playground/validator/v10"

// ResumeRecord is the merged, normalized output of a parse run
type ResumeRecord struct {
	FirstName            string             `json:"firstName"`
	MiddleName           string             `json:"middleName"`
	LastName             string             `json:"lastName"`
	PrimaryEmail         string             `json:"primaryEmail" validate:"omitempty,email"`
	LinkedinURL          string             `json:"linkedinUrl"`
	CountryCode          string             `json:"countryCode"`
	PhoneNumber          string             `json:"phoneNumber" validate:"omitempty,numeric"`
	Dob                  string             `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	ExperienceYears      string             `json:"experienceYears"`
	LatestJobDesignation string             `json:"latestJobDesignation"`
	Gender               string             `json:"gender"`
	City                 string             `json:"city"`
	State                string             `json:"state"`
	NativeLocation       string             `json:"nativeLocation"`
	MarriageStatus       string             `json:"marriageStatus"`
	NoticePeriod         string             `json:"noticePeriod"`
	Summary              string             `json:"summary"`
	Jobs                 []JobDetails       `json:"jobs" validate:"dive"`
	Projects             []ProjectDetails   `json:"projects" validate:"dive"`
	Education            []EducationDetails `json:"education" validate:"dive"`
	Skills               []string           `json:"skills" validate:"dive,required"`
}

// Validate checks the normalized-record invariants: ISO dates, digit-only
// phone, well-formed e-mail and no blank skills.
func (r *ResumeRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// JobDetails is one employment entry
type JobDetails struct {
	CompanyName        string   `json:"companyName"`
	Designation        string   `json:"designation"`
	FromDate           string   `json:"fromDate" validate:"omitempty,datetime=2006-01-02"`
	ToDate             string   `json:"toDate" validate:"omitempty,datetime=2006-01-02"`
	IsCurrentlyWorking bool     `json:"isCurrentlyWorking"`
	ReportingTo        string   `json:"reportingTo"`
	Location           string   `json:"location"`
	Skills             []string `json:"skills" validate:"dive,required"`
}

// IsEmpty reports whether the entry carries no information
func (j JobDetails) IsEmpty() bool {
	return j.CompanyName == "" && j.Designation == "" && j.FromDate == "" && j.ToDate == "" &&
		!j.IsCurrentlyWorking && j.ReportingTo == "" && j.Location == "" && len(j.Skills) == 0
}

// ProjectDetails is one project entry
type ProjectDetails struct {
	CompanyName        string   `json:"companyName"`
	ProjectTitle       string   `json:"projectTitle"`
	FromDate           string   `json:"fromDate" validate:"omitempty,datetime=2006-01-02"`
	ToDate             string   `json:"toDate" validate:"omitempty,datetime=2006-01-02"`
	Role               string   `json:"role"`
	ProjectDescription string   `json:"projectDescription"`
	Client             string   `json:"client"`
	Skills             []string `json:"skills" validate:"dive,required"`
}

// IsEmpty reports whether the entry carries no information
func (p ProjectDetails) IsEmpty() bool {
	return p.CompanyName == "" && p.ProjectTitle == "" && p.FromDate == "" && p.ToDate == "" &&
		p.Role == "" && p.ProjectDescription == "" && p.Client == "" && len(p.Skills) == 0
}

// EducationDetails is one education entry
type EducationDetails struct {
	Specialization         string `json:"specialization"`
	Degree                 string `json:"degree"`
	Qualification          string `json:"qualification"` // Bachelors, Masters, Doctorate, Diploma or Others
	PercentageMarksOrGrade string `json:"percentageMarksOrGrade"`
	ModeOfEducation        string `json:"modeOfEducation"`
	YearOfPassing          string `json:"yearOfPassing"`
	College                string `json:"college"`
	University             string `json:"university"`
}

// IsEmpty reports whether the entry carries no information
func (e EducationDetails) IsEmpty() bool {
	return e == EducationDetails{}
}
