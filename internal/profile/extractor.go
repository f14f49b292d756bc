// Package profile extracts a structured CandidateProfile from raw résumé
// text. Extraction is total: malformed or empty input degrades to the
// documented sentinels instead of failing.
package profile

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/patterns"
	"github.com/jonathan/candidate-screener/internal/types"
)

const (
	nameScanLines = 10
	maxNameWords  = 4
	minNameWords  = 2
	maxDegrees    = 5
	maxEntries    = 10
)

// Extractor parses résumé text into CandidateProfiles.
type Extractor struct {
	lib     *patterns.Library
	log     *zap.Logger
	yearNow func() int
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
		lib:     lib,
		log:     log,
		yearNow: func() int { return time.Now().Year() },
	}
}

// Extract parses text into a profile. It never fails: missing fields come
// back as their sentinel values (NameNotFound, empty slices, zero years).
func (e *Extractor) Extract(text string) types.CandidateProfile {
	lower := strings.ToLower(text)

	p := types.CandidateProfile{
		Email:     e.lib.Email.FindString(text),
		Phone:     e.extractPhone(text),
		Skills:    e.lib.FindSkills(text),
		Languages: e.extractLanguages(lower),
		RawText:   text,
	}
	p.Name = e.extractName(text, p.Email)
	p.Experience = e.extractExperience(text, lower)
	p.Education = e.extractEducation(text, lower)
	p.YearsExperience = e.totalYears(p.Experience)
	p.ID = deriveID(p.Email, p.Name)

	e.log.Debug("profile extracted",
		zap.String("name", p.Name),
		zap.Int("skills", len(p.Skills)),
		zap.Float64("years", p.YearsExperience))
	return p
}

func (e *Extractor) extractPhone(text string) string {
	if m := e.lib.PhoneFR.FindString(text); m != "" {
		return m
	}
	return e.lib.PhoneIntl.FindString(text)
}

// extractName scans the first lines of the document for an all-caps or a
// title-case name, then falls back to the email local part, then to the
// NameNotFound sentinel.
func (e *Extractor) extractName(text, email string) string {
	scanned := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if scanned > nameScanLines {
			break
		}
		for _, re := range e.lib.NamePrefixStrips {
			line = strings.TrimSpace(re.ReplaceAllString(line, ""))
		}
		if line == "" || strings.ContainsAny(line, "@0123456789") || strings.Contains(line, "http") {
			continue
		}
		words := strings.Fields(line)
		if len(words) < minNameWords || len(words) > maxNameWords {
			continue
		}
		if e.lib.NameAllCaps.MatchString(line) {
			return titleCaseName(strings.ToLower(line))
		}
		if e.lib.NameTitleCase.MatchString(line) {
			return line
		}
	}
	if email != "" {
		if local, _, ok := strings.Cut(email, "@"); ok && local != "" {
			return titleCaseName(strings.Map(func(r rune) rune {
				if r == '.' || r == '_' || r == '-' {
					return ' '
				}
				return r
			}, local))
		}
	}
	return types.NameNotFound
}

func (e *Extractor) extractExperience(text, lower string) []types.Experience {
	section := sectionText(text, lower, e.lib.ExperienceHeaders, e.lib.EducationHeaders)
	var out []types.Experience
	seen := map[string]struct{}{}
	for _, re := range e.lib.ExperienceEntry {
		for _, m := range re.FindAllStringSubmatch(section, -1) {
			exp := types.Experience{
				Title:     strings.TrimSpace(m[1]),
				StartYear: parseYear(m[2]),
			}
			if len(m) > 3 && m[3] != "" {
				if y := parseYear(m[3]); y > 0 {
					exp.EndYear = y
				} else {
					// "present", "current", "aujourd'hui"
					exp.Present = true
				}
			}
			key := exp.Title + "|" + strconv.Itoa(exp.StartYear)
			if _, dup := seen[key]; dup || exp.StartYear == 0 {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, exp)
			if len(out) == maxEntries {
				return out
			}
		}
	}
	return out
}

func (e *Extractor) extractEducation(text, lower string) []types.Education {
	section := sectionText(text, lower, e.lib.EducationHeaders, e.lib.ExperienceHeaders)
	var out []types.Education
	seen := map[string]struct{}{}
	for _, re := range e.lib.DegreeEntry {
		for _, m := range re.FindAllString(section, -1) {
			degree := strings.TrimSpace(strings.Trim(m, " ,;"))
			if degree == "" {
				continue
			}
			if _, dup := seen[degree]; dup {
				continue
			}
			seen[degree] = struct{}{}
			out = append(out, types.Education{Degree: degree})
			if len(out) == maxDegrees {
				return out
			}
		}
	}
	return out
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

// totalYears sums the span of every dated entry, treating current
// positions as running until now. Negative spans from garbled dates
// count as zero.
func (e *Extractor) totalYears(entries []types.Experience) float64 {
	total := 0
	for _, exp := range entries {
		end := exp.EndYear
		if exp.Present {
			end = e.yearNow()
		}
		if span := end - exp.StartYear; span > 0 {
			total += span
		}
	}
	return float64(total)
}

// sectionText returns the slice of text that starts after the first
// matching section header and stops at the first of the stop headers, or
// the whole text when no header is present.
func sectionText(text, lower string, headers, stopHeaders []string) string {
	start := -1
	for _, h := range headers {
		if i := strings.Index(lower, h); i >= 0 {
			start = i + len(h)
			break
		}
	}
	if start < 0 {
		return text
	}
	end := len(text)
	for _, h := range stopHeaders {
		if i := strings.Index(lower[start:], h); i >= 0 && start+i < end {
			end = start + i
		}
	}
	return text[start:end]
}

// parseYear accepts "2021" and "03/2021" forms and returns 0 for
// anything else (notably "present" markers).
func parseYear(s string) int {
	if _, after, ok := strings.Cut(s, "/"); ok {
		s = after
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1900 || y > 2200 {
		return 0
	}
	return y
}

// deriveID builds a stable candidate identifier from the email local
// part, falling back to the normalized display name.
func deriveID(email, name string) string {
	if email != "" {
		if local, _, ok := strings.Cut(email, "@"); ok && local != "" {
			return strings.ToLower(local)
		}
	}
	if name != "" && name != types.NameNotFound {
		return strings.ReplaceAll(strings.ToLower(name), " ", ".")
	}
	return ""
}

func titleCaseName(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
