package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-screener/internal/types"
)

const sampleCV = `JEAN DUPONT
Data Scientist | Paris
jean.dupont@example.com
06 12 34 56 78

EXPÉRIENCE PROFESSIONNELLE
Senior Data Scientist chez Acme - 2019 - 2023
Machine Learning Engineer at Beta - 2016 - 2019

FORMATION
Master en Science des Données - Université de Paris

COMPÉTENCES
Python, SQL, TensorFlow, Docker

LANGUES
Français (natif), Anglais courant
`

func TestExtractFullCV(t *testing.T) {
	e := NewExtractor(nil, nil)

	p := e.Extract(sampleCV)

	assert.Equal(t, "Jean Dupont", p.Name)
	assert.Equal(t, "jean.dupont", p.ID)
	assert.Equal(t, "jean.dupont@example.com", p.Email)
	assert.Equal(t, "06 12 34 56 78", p.Phone)

	require.Len(t, p.Experience, 2)
	assert.Equal(t, "Senior Data Scientist chez Acme", p.Experience[0].Title)
	assert.Equal(t, 2019, p.Experience[0].StartYear)
	assert.Equal(t, 2023, p.Experience[0].EndYear)
	assert.Equal(t, 2016, p.Experience[1].StartYear)
	assert.InDelta(t, 7.0, p.YearsExperience, 0.001)

	require.NotEmpty(t, p.Education)
	assert.Contains(t, p.Education[0].Degree, "Master")

	assert.Equal(t, []string{"Python", "SQL", "Machine Learning", "TensorFlow", "Docker"}, p.Skills)
	assert.Equal(t, []string{"English", "French"}, p.Languages)
	assert.Equal(t, sampleCV, p.RawText)
}

func TestExtractCurrentPosition(t *testing.T) {
	e := NewExtractor(nil, nil)
	e.yearNow = func() int { return 2026 }

	p := e.Extract(`MARIE CURIE
marie@example.com

Experience
Lead Data Engineer at Gamma - 2021 - Present
`)
	require.Len(t, p.Experience, 1)
	assert.True(t, p.Experience[0].Present)
	assert.Zero(t, p.Experience[0].EndYear)
	assert.InDelta(t, 5.0, p.YearsExperience, 0.001)
}

func TestExtractNameVariants(t *testing.T) {
	e := NewExtractor(nil, nil)

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"all caps", "JEAN DUPONT\nParis", "Jean Dupont"},
		{"title case", "Marie Dubois\nLyon", "Marie Dubois"},
		{"email fallback", "contact:\nmarie-claire.dubois@example.fr", "Marie Claire Dubois"},
		{"nothing found", "some résumé text without any header", types.NameNotFound},
		{"empty input", "", types.NameNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.Extract(tt.text).Name)
		})
	}
}

func TestExtractLanguagesDefault(t *testing.T) {
	e := NewExtractor(nil, nil)

	p := e.Extract("JEAN DUPONT\nSome resume text with no language keywords at all.")
	assert.Equal(t, []string{"French"}, p.Languages)
}

func TestExtractTotalOnGarbage(t *testing.T) {
	e := NewExtractor(nil, nil)

	for _, text := range []string{"", "   \n\n\t", "%%%###!!!", "1234567890"} {
		p := e.Extract(text)
		assert.Equal(t, types.NameNotFound, p.Name)
		assert.Empty(t, p.Experience)
		assert.Empty(t, p.Education)
		assert.Empty(t, p.Skills)
		assert.Zero(t, p.YearsExperience)
	}
}

func TestNegativeSpansIgnored(t *testing.T) {
	e := NewExtractor(nil, nil)

	p := e.Extract(`PAUL MARTIN
Experience
Consultant chez Delta Conseil - 2020 - 2018
`)
	require.Len(t, p.Experience, 1)
	assert.Zero(t, p.YearsExperience)
}

func TestExtractIdempotent(t *testing.T) {
	e := NewExtractor(nil, nil)
	e.yearNow = func() int { return 2026 }

	first := e.Extract(sampleCV)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, e.Extract(sampleCV))
	}
}

func TestEducationCappedAndDeduped(t *testing.T) {
	e := NewExtractor(nil, nil)

	p := e.Extract(`ANNE BERNARD
Formation
Master in Statistics
Master in Statistics
Bachelor of Science
Licence Informatique
PhD in Robotics
MBA Finance
MSc Applied Mathematics
`)
	assert.Len(t, p.Education, 5)
	degrees := map[string]int{}
	for _, ed := range p.Education {
		degrees[ed.Degree]++
	}
	for d, n := range degrees {
		assert.Equal(t, 1, n, "degree %q duplicated", d)
	}
}

func TestParseYear(t *testing.T) {
	assert.Equal(t, 2021, parseYear("2021"))
	assert.Equal(t, 2021, parseYear("03/2021"))
	assert.Zero(t, parseYear("present"))
	assert.Zero(t, parseYear("1776"))
	assert.Zero(t, parseYear(""))
}
