// Package patterns holds the versioned keyword and regex tables used for
// requirement and profile extraction, together with their matching
// functions. The tables are pure data: swapping a Library swaps the
// extraction behavior without touching any extractor or scorer code.
package patterns

import "regexp"

// SkillEntry is one canonical skill with its accepted spelling variants.
type SkillEntry struct {
	Canonical string
	Variants  []string
}

// LanguageEntry maps a spoken language to its detection keywords.
type LanguageEntry struct {
	Name     string
	Keywords []string
}

// ContractEntry maps a contract type to its detection keywords.
type ContractEntry struct {
	Type     string
	Keywords []string
}

// KeywordGroup is a named group of equivalent keywords (soft skills,
// résumé sections).
type KeywordGroup struct {
	Name     string
	Keywords []string
}

// Library bundles every pattern table with its compiled matchers.
// Construct one with Default; the zero value is not usable.
type Library struct {
	Version string

	Skills     []SkillEntry
	aliasIndex map[string]string           // normalized variant -> canonical display
	skillRe    map[string][]*regexp.Regexp // canonical display -> boundary matchers

	Titles []string

	SenioritySenior []string
	SeniorityJunior []string
	SeniorityMid    []string

	RequiredMarkers    []string
	OptionalMarkers    []string
	RequiredEndMarkers []string
	OptionalEndMarkers []string
	RequiredContext    []string
	OptionalContext    []string
	CoreSkills         []string // normalized tokens defaulting to required

	Languages       []LanguageEntry
	DefaultLanguage string

	Locations []string
	Contracts []ContractEntry

	DefaultContract string

	Stopwords map[string]struct{}

	SoftSkills         []KeywordGroup
	PositiveKeywords   []string
	NegativeKeywords   []string
	LeadershipKeywords []string
	LeadershipTitles   []string
	Salutations        []string
	Closings           []string
	ResumeSections     []KeywordGroup

	ExperienceHeaders []string
	EducationHeaders  []string

	Email     *regexp.Regexp
	PhoneFR   *regexp.Regexp
	PhoneIntl *regexp.Regexp

	ExperienceEntry  []*regexp.Regexp
	DegreeEntry      []*regexp.Regexp
	ExperienceMin    []*regexp.Regexp
	SalaryRange      *regexp.Regexp
	SalaryPerYear    *regexp.Regexp
	SalaryLabel      *regexp.Regexp
	Year             *regexp.Regexp
	KeywordWord      *regexp.Regexp
	NamePrefixStrips []*regexp.Regexp
	NameAllCaps      *regexp.Regexp
	NameTitleCase    *regexp.Regexp
}

// HasAny reports whether lower contains any of the given keywords.
// Plain substring containment, matching the behavior the tables were
// written for.
func HasAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && contains(lower, kw) {
			return true
		}
	}
	return false
}

// CountAny returns how many of the keywords occur in lower (presence, not
// frequency).
func CountAny(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if kw != "" && contains(lower, kw) {
			n++
		}
	}
	return n
}
