package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSkill(t *testing.T) {
	lib := Default()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already normalized", "python", "python"},
		{"uppercase", "PYTHON", "python"},
		{"alias ml", "ML", "machine learning"},
		{"alias sklearn", "sklearn", "scikit learn"},
		{"hyphen folding", "machine-learning", "machine learning"},
		{"dot folding", "node.js", "node js"},
		{"k8s alias", "k8s", "kubernetes"},
		{"unknown skill preserved", "Cobol-85", "cobol 85"},
		{"surrounding whitespace", "  Spark  ", "apache spark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lib.NormalizeSkill(tt.input))
		})
	}
}

func TestNormalizeSkillIdempotent(t *testing.T) {
	lib := Default()
	for _, raw := range []string{"PyTorch", "CI/CD", "google cloud", "weird-Unknown_Thing"} {
		once := lib.NormalizeSkill(raw)
		assert.Equal(t, once, lib.NormalizeSkill(once), "normalize(%q) not idempotent", raw)
	}
}

func TestCanonicalSkill(t *testing.T) {
	lib := Default()
	assert.Equal(t, "PyTorch", lib.CanonicalSkill("pytorch"))
	assert.Equal(t, "Machine Learning", lib.CanonicalSkill("ml"))
	assert.Equal(t, "Apache Spark", lib.CanonicalSkill("pyspark"))
	assert.Equal(t, "Cobol", lib.CanonicalSkill("cobol"))
}

func TestFindSkills(t *testing.T) {
	lib := Default()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "plain list",
			text:     "Strong experience with Python, SQL and Docker.",
			expected: []string{"Python", "SQL", "Docker"},
		},
		{
			name:     "variants fold to canonical",
			text:     "We use scikit-learn, k8s and PySpark daily.",
			expected: []string{"Scikit-learn", "Apache Spark", "Kubernetes"},
		},
		{
			name:     "no false positive inside words",
			text:     "Django templates make javascript rendering easy.",
			expected: []string{"JavaScript", "Django"},
		},
		{
			name:     "punctuation heavy",
			text:     "Stack: C++, C#, Go.",
			expected: []string{"C++", "C#", "Go"},
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.expected, lib.FindSkills(tt.text))
		})
	}
}

func TestFindSkillsDeterministicOrder(t *testing.T) {
	lib := Default()
	text := "Docker and Python and SQL and Docker again"
	first := lib.FindSkills(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, lib.FindSkills(text))
	}
	// vocabulary order, not text order
	assert.Equal(t, []string{"Python", "SQL", "Docker"}, first)
}

func TestSkillOccurrences(t *testing.T) {
	lib := Default()
	text := "python required. bonus: python and spark"
	occ := lib.SkillOccurrences(text)
	require.Len(t, occ, 3)
	assert.Equal(t, "Python", occ[0].Canonical)
	assert.Equal(t, 0, occ[0].Offset)
	assert.Equal(t, 6, occ[0].End)
	assert.Equal(t, "Python", occ[1].Canonical)
	assert.Equal(t, "Apache Spark", occ[2].Canonical)
	assert.True(t, occ[1].Offset < occ[2].Offset)
}

func TestPhoneRegexes(t *testing.T) {
	lib := Default()
	assert.Equal(t, "06 12 34 56 78", lib.PhoneFR.FindString("Tel: 06 12 34 56 78"))
	assert.Equal(t, "0612345678", lib.PhoneFR.FindString("0612345678"))
	assert.Empty(t, lib.PhoneFR.FindString("1234567890"))
	assert.NotEmpty(t, lib.PhoneIntl.FindString("+33 6 12 34 56 78"))
}

func TestEmailRegex(t *testing.T) {
	lib := Default()
	assert.Equal(t, "jean.dupont@example.com",
		lib.Email.FindString("Contact: jean.dupont@example.com / Paris"))
}

func TestHasAnyAndCountAny(t *testing.T) {
	kws := []string{"docker", "kafka"}
	assert.True(t, HasAny("we love docker here", kws))
	assert.False(t, HasAny("plain text", kws))
	assert.Equal(t, 2, CountAny("docker and kafka and docker", kws))
}
