// Package requirement turns a free-text job description into a
// structured JobRequirement using the pattern library, with optional
// recruiter hints taking precedence over text-derived values.
package requirement

import (
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/patterns"
	"github.com/jonathan/candidate-screener/internal/types"
)

const (
	maxTitleLen    = 100
	contextWindow  = 30
	maxKeywords    = 10
	seniorYearsMin = 5
	juniorYearsMax = 2
)

// Extractor derives JobRequirements from job description text.
type Extractor struct {
	lib      *patterns.Library
	validate *validator.Validate
	log      *zap.Logger
}

// NewExtractor builds an Extractor. A nil library falls back to
// patterns.Default(); a nil logger is replaced with a no-op one.
func NewExtractor(lib *patterns.Library, log *zap.Logger) *Extractor {
	if lib == nil {
		lib = patterns.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{
		lib:      lib,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// Extract parses jobText into a JobRequirement. hints may be nil; set
// hint fields override the extracted values, except ExperienceMin which
// is max()'d against the text so a recruiter can only raise the bar.
// Returns ErrEmptyJobText on blank input and a *ValidationError when the
// hints themselves are malformed.
func (e *Extractor) Extract(jobText string, hints *types.RequirementHints) (types.JobRequirement, error) {
	text := strings.TrimSpace(jobText)
	if text == "" {
		return types.JobRequirement{}, ErrEmptyJobText
	}
	if hints != nil {
		if err := e.validate.Struct(hints); err != nil {
			return types.JobRequirement{}, &ValidationError{Err: err}
		}
	}

	lower := strings.ToLower(text)

	req := types.JobRequirement{
		Title:     e.extractTitle(text, lower),
		Seniority: e.extractSeniority(lower),
		Languages: e.extractLanguages(lower),
		Location:  e.extractLocation(lower),
		Contract:  e.extractContract(lower),
		Keywords:  e.extractKeywords(lower),
	}
	req.ExperienceMin, req.ExperienceMax = e.extractExperience(lower)
	req.RequiredSkills, req.OptionalSkills = e.classifySkills(lower)
	req.SalaryMin, req.SalaryMax = e.extractSalary(lower)

	if req.Seniority == types.SeniorityUnspecified {
		switch {
		case req.ExperienceMin >= seniorYearsMin:
			req.Seniority = types.SenioritySenior
		case req.ExperienceMin > 0 && req.ExperienceMin <= juniorYearsMax:
			req.Seniority = types.SeniorityJunior
		}
	}

	e.applyHints(&req, hints)

	e.log.Debug("requirement extracted",
		zap.String("title", req.Title),
		zap.Int("required_skills", len(req.RequiredSkills)),
		zap.Int("optional_skills", len(req.OptionalSkills)),
		zap.Int("experience_min", req.ExperienceMin))
	return req, nil
}

// extractTitle tries the known-title table first (first match wins),
// then the first line when short enough to plausibly be a heading.
func (e *Extractor) extractTitle(text, lower string) string {
	for _, t := range e.lib.Titles {
		if strings.Contains(lower, t) {
			return toDisplay(t)
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) < maxTitleLen {
			return line
		}
		break
	}
	return types.UnspecifiedLabel
}

func (e *Extractor) extractSeniority(lower string) types.Seniority {
	switch {
	case patterns.HasAny(lower, e.lib.SenioritySenior):
		return types.SenioritySenior
	case patterns.HasAny(lower, e.lib.SeniorityJunior):
		return types.SeniorityJunior
	case patterns.HasAny(lower, e.lib.SeniorityMid):
		return types.SeniorityMid
	}
	return types.SeniorityUnspecified
}

func (e *Extractor) extractExperience(lower string) (min, max int) {
	for _, re := range e.lib.ExperienceMin {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > min {
				min = n
			}
		}
	}
	return min, 0
}

// classifySkills assigns every vocabulary skill found in the text to the
// required or the optional set. Section spans win over keyword context,
// context wins over the core-skill default, and a skill with both
// required and optional occurrences ends up required only.
func (e *Extractor) classifySkills(lower string) (required, optional []string) {
	reqStart, reqEnd := markerSpan(lower, e.lib.RequiredMarkers, e.lib.RequiredEndMarkers)
	optStart, optEnd := markerSpan(lower, e.lib.OptionalMarkers, e.lib.OptionalEndMarkers)

	isRequired := make(map[string]bool)
	for _, occ := range e.lib.SkillOccurrences(lower) {
		var r bool
		switch {
		case optStart >= 0 && occ.Offset >= optStart && occ.Offset < optEnd:
			r = false
		case reqStart >= 0 && occ.Offset >= reqStart && occ.Offset < reqEnd:
			r = true
		default:
			r = e.classifyByContext(lower, occ)
		}
		if r {
			isRequired[occ.Canonical] = true
		} else if _, seen := isRequired[occ.Canonical]; !seen {
			isRequired[occ.Canonical] = false
		}
	}

	for _, skill := range e.lib.FindSkills(lower) {
		if isRequired[skill] {
			required = append(required, skill)
		} else {
			optional = append(optional, skill)
		}
	}
	return required, optional
}

func (e *Extractor) classifyByContext(lower string, occ patterns.SkillMatch) bool {
	lo := occ.Offset - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := occ.End + contextWindow
	if hi > len(lower) {
		hi = len(lower)
	}
	ctx := lower[lo:hi]
	if patterns.HasAny(ctx, e.lib.RequiredContext) {
		return true
	}
	if patterns.HasAny(ctx, e.lib.OptionalContext) {
		return false
	}
	norm := e.lib.NormalizeSkill(occ.Canonical)
	for _, core := range e.lib.CoreSkills {
		if norm == core {
			return true
		}
	}
	return false
}

// markerSpan locates the [start,end) byte span of the first section
// opened by one of the start markers. start is -1 when no marker occurs.
func markerSpan(lower string, startMarkers, endMarkers []string) (int, int) {
	start := -1
	for _, m := range startMarkers {
		if i := strings.Index(lower, m); i >= 0 {
			start = i + len(m)
			break
		}
	}
	if start < 0 {
		return -1, -1
	}
	end := len(lower)
	for _, m := range endMarkers {
		if i := strings.Index(lower[start:], m); i >= 0 && start+i < end {
			end = start + i
		}
	}
	return start, end
}

func (e *Extractor) extractLanguages(lower string) []string {
	var langs []string
	for _, entry := range e.lib.Languages {
		if patterns.HasAny(lower, entry.Keywords) {
			langs = append(langs, entry.Name)
		}
	}
	if len(langs) == 0 {
		langs = []string{e.lib.DefaultLanguage}
	}
	return langs
}

func (e *Extractor) extractLocation(lower string) string {
	for _, loc := range e.lib.Locations {
		if strings.Contains(lower, loc) {
			return toDisplay(loc)
		}
	}
	return types.UnspecifiedLabel
}

func (e *Extractor) extractContract(lower string) string {
	for _, entry := range e.lib.Contracts {
		if patterns.HasAny(lower, entry.Keywords) {
			return entry.Type
		}
	}
	return e.lib.DefaultContract
}

// extractSalary runs on the text with whitespace stripped, so "45 000€"
// and "45-55k€" both parse.
func (e *Extractor) extractSalary(lower string) (min, max int) {
	packed := strings.Join(strings.Fields(lower), "")
	if m := e.lib.SalaryRange.FindStringSubmatch(packed); m != nil {
		min, _ = strconv.Atoi(m[1])
		max, _ = strconv.Atoi(m[2])
		return min, max
	}
	if m := e.lib.SalaryPerYear.FindStringSubmatch(packed); m != nil {
		min, _ = strconv.Atoi(m[1])
		return min, min
	}
	if m := e.lib.SalaryLabel.FindStringSubmatch(packed); m != nil {
		min, _ = strconv.Atoi(m[1])
		return min, min
	}
	return 0, 0
}

func (e *Extractor) extractKeywords(lower string) []string {
	counts := make(map[string]int)
	for _, w := range e.lib.KeywordWord.FindAllString(lower, -1) {
		if _, stop := e.lib.Stopwords[w]; stop {
			continue
		}
		counts[w]++
	}
	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > maxKeywords {
		words = words[:maxKeywords]
	}
	return words
}

func (e *Extractor) applyHints(req *types.JobRequirement, hints *types.RequirementHints) {
	if hints == nil {
		return
	}
	if hints.Title != "" {
		req.Title = hints.Title
	}
	if hints.Seniority != "" {
		req.Seniority = types.Seniority(hints.Seniority)
	}
	if hints.ExperienceMin > req.ExperienceMin {
		req.ExperienceMin = hints.ExperienceMin
	}
	if hints.ExperienceMax > 0 {
		req.ExperienceMax = hints.ExperienceMax
	}
	if len(hints.Languages) > 0 {
		req.Languages = hints.Languages
	}
	if hints.Location != "" {
		req.Location = hints.Location
	}
	if hints.SalaryMin > 0 {
		req.SalaryMin = hints.SalaryMin
	}
	if hints.SalaryMax > 0 {
		req.SalaryMax = hints.SalaryMax
	}
	if hints.Contract != "" {
		req.Contract = hints.Contract
	}
	if hints.Notes != "" {
		req.Notes = hints.Notes
	}
}

func toDisplay(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
