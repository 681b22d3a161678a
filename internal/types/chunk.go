// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Chunk is one cleaned, contiguous slice of resume text
type Chunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Category is one of the semantic sections a chunk can be routed to
type Category string

// Category constants
const (
	CategoryPersonalInfo     Category = "PersonalInfo"
	CategoryEducationDetails Category = "EducationDetails"
	CategoryProjectDetails   Category = "ProjectDetails"
	CategoryJobDetails       Category = "JobDetails"
	CategoryProfessionalInfo Category = "ProfessionalInfo"
)

// AllCategories is the fixed fan-out and merge order.
var AllCategories = []Category{
	CategoryProjectDetails,
	CategoryJobDetails,
	CategoryPersonalInfo,
	CategoryEducationDetails,
	CategoryProfessionalInfo,
}

// IsValid reports whether c is one of the five known categories
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ClassificationMap maps every category to the chunk indices routed to it.
// All five keys are always present.
type ClassificationMap map[Category][]int

// NewClassificationMap returns a map with every category set to an empty list
func NewClassificationMap() ClassificationMap {
	m := make(ClassificationMap, len(AllCategories))
	for _, c := range AllCategories {
		m[c] = []int{}
	}
	return m
}

// Select returns the chunks whose indices are listed for category, in index order.
// Unknown indices are skipped.
func (m ClassificationMap) Select(category Category, chunks []Chunk) []Chunk {
	byIndex := make(map[int]Chunk, len(chunks))
	for _, c := range chunks {
		byIndex[c.Index] = c
	}
	selected := make([]Chunk, 0, len(m[category]))
	for _, idx := range m[category] {
		if c, ok := byIndex[idx]; ok {
			selected = append(selected, c)
		}
	}
	return selected
}

// CategoryResult is the schema-shaped output of one category extraction
type CategoryResult map[string]any
