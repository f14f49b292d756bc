// Package types defines the value records shared across the candidate
// evaluation engine.
package types

// Seniority is the seniority tier extracted from a job description.
type Seniority string

const (
	SeniorityJunior      Seniority = "junior"
	SeniorityMid         Seniority = "mid"
	SenioritySenior      Seniority = "senior"
	SeniorityUnspecified Seniority = "unspecified"
)

// UnspecifiedLabel is the sentinel for free-text fields with no detected signal.
const UnspecifiedLabel = "unspecified"

// JobRequirement is the canonical structured form of a job description.
// RequiredSkills and OptionalSkills hold canonical skill names, are free of
// duplicates, and are disjoint: a skill found in both is kept in
// RequiredSkills only.
type JobRequirement struct {
	Title          string    `json:"title"`
	Seniority      Seniority `json:"seniority"`
	ExperienceMin  int       `json:"experience_min"`
	ExperienceMax  int       `json:"experience_max"`
	RequiredSkills []string  `json:"required_skills"`
	OptionalSkills []string  `json:"optional_skills"`
	Languages      []string  `json:"languages"`
	Location       string    `json:"location"`
	SalaryMin      int       `json:"salary_min"`
	SalaryMax      int       `json:"salary_max"`
	Contract       string    `json:"contract"`
	Keywords       []string  `json:"keywords"`
	Notes          string    `json:"notes,omitempty"`
}

// RequirementHints carries recruiter-supplied overrides for requirement
// extraction. Every field is optional; set fields win over text-derived
// values (ExperienceMin is max()'d against the text instead).
type RequirementHints struct {
	Title         string   `json:"title,omitempty"`
	Seniority     string   `json:"seniority,omitempty" validate:"omitempty,oneof=junior mid senior unspecified"`
	ExperienceMin int      `json:"experience_min,omitempty" validate:"gte=0"`
	ExperienceMax int      `json:"experience_max,omitempty" validate:"gte=0"`
	Languages     []string `json:"languages,omitempty"`
	Location      string   `json:"location,omitempty"`
	SalaryMin     int      `json:"salary_min,omitempty" validate:"gte=0"`
	SalaryMax     int      `json:"salary_max,omitempty" validate:"gte=0"`
	Contract      string   `json:"contract,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}
