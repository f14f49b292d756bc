package patterns

import (
	"regexp"
	"sort"
	"strings"
)

var tokenSeparators = strings.NewReplacer("-", " ", "_", " ", "/", " ", ".", " ")

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

// NormalizeSkill lowercases a skill, folds separators to spaces and
// collapses whitespace, then resolves known aliases to the canonical
// skill's normalized form ("ML" and "machine-learning" both become
// "machine learning"). Unknown skills come back normalized but
// otherwise untouched.
func (l *Library) NormalizeSkill(s string) string {
	tok := normalizeToken(s)
	if canonical, ok := l.aliasIndex[tok]; ok {
		return normalizeToken(canonical)
	}
	return tok
}

// CanonicalSkill returns the display spelling for a known skill
// ("pytorch" -> "PyTorch"). Unknown skills are title-cased per word.
func (l *Library) CanonicalSkill(s string) string {
	tok := normalizeToken(s)
	if canonical, ok := l.aliasIndex[tok]; ok {
		return canonical
	}
	return titleCase(tok)
}

// FindSkills scans free text and returns the canonical display names of
// every vocabulary skill present, in vocabulary order, deduplicated.
func (l *Library) FindSkills(text string) []string {
	var found []string
	for _, entry := range l.Skills {
		for _, re := range l.skillRe[entry.Canonical] {
			if re.MatchString(text) {
				found = append(found, entry.Canonical)
				break
			}
		}
	}
	return found
}

// SkillMatch is one occurrence of a vocabulary skill in a document.
// Offset and End delimit the matched variant text.
type SkillMatch struct {
	Canonical string
	Offset    int
	End       int
}

// SkillOccurrences returns every match position of every vocabulary
// skill in text, sorted by offset. A skill with several variants can
// contribute several occurrences.
func (l *Library) SkillOccurrences(text string) []SkillMatch {
	var out []SkillMatch
	for _, entry := range l.Skills {
		seen := map[int]struct{}{}
		for _, re := range l.skillRe[entry.Canonical] {
			for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
				// submatch 2 is the variant itself, past the left boundary
				off := loc[4]
				if _, dup := seen[off]; dup {
					continue
				}
				seen[off] = struct{}{}
				out = append(out, SkillMatch{Canonical: entry.Canonical, Offset: off, End: loc[5]})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Offset != out[j].Offset {
			return out[i].Offset < out[j].Offset
		}
		return out[i].Canonical < out[j].Canonical
	})
	return out
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = tokenSeparators.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// variantRe builds a case-insensitive matcher for one skill variant with
// non-alphanumeric boundaries on both sides, so "go" never fires inside
// "django" and "c++" still matches at end of line.
func variantRe(variant string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(^|[^a-z0-9+#])(` + regexp.QuoteMeta(variant) + `)($|[^a-z0-9+#])`)
}

func (l *Library) compileSkills() {
	l.aliasIndex = make(map[string]string)
	l.skillRe = make(map[string][]*regexp.Regexp)
	for _, entry := range l.Skills {
		l.aliasIndex[normalizeToken(entry.Canonical)] = entry.Canonical
		for _, v := range entry.Variants {
			l.aliasIndex[normalizeToken(v)] = entry.Canonical
			l.skillRe[entry.Canonical] = append(l.skillRe[entry.Canonical], variantRe(v))
		}
	}
}
