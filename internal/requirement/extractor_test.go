package requirement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-screener/internal/types"
)

const seniorDataEngineerOffer = `Senior Data Engineer (CDI)

We are hiring a Senior Data Engineer in Paris with at least 5 years experience.

Required skills: Python, SQL, Apache Spark.
Nice to have: Docker, Kubernetes.

Fluent English needed. Salary: 55-65k€
`

func TestExtractFullOffer(t *testing.T) {
	e := NewExtractor(nil, nil)

	req, err := e.Extract(seniorDataEngineerOffer, nil)
	require.NoError(t, err)

	assert.Equal(t, "Data Engineer", req.Title)
	assert.Equal(t, types.SenioritySenior, req.Seniority)
	assert.Equal(t, 5, req.ExperienceMin)
	assert.Equal(t, []string{"Python", "SQL", "Apache Spark"}, req.RequiredSkills)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, req.OptionalSkills)
	assert.Equal(t, []string{"English"}, req.Languages)
	assert.Equal(t, "Paris", req.Location)
	assert.Equal(t, "CDI", req.Contract)
	assert.Equal(t, 55, req.SalaryMin)
	assert.Equal(t, 65, req.SalaryMax)
	assert.NotEmpty(t, req.Keywords)
}

func TestExtractOneLiner(t *testing.T) {
	e := NewExtractor(nil, nil)

	req, err := e.Extract("Data Scientist, 3 years, Python required, Power BI nice to have", nil)
	require.NoError(t, err)

	assert.Equal(t, "Data Scientist", req.Title)
	assert.Equal(t, 3, req.ExperienceMin)
	assert.Equal(t, []string{"Python"}, req.RequiredSkills)
	assert.Equal(t, []string{"Power BI"}, req.OptionalSkills)
}

func TestExtractEmptyText(t *testing.T) {
	e := NewExtractor(nil, nil)

	_, err := e.Extract("   \n\t  ", nil)
	assert.ErrorIs(t, err, ErrEmptyJobText)
}

func TestExtractInvalidHints(t *testing.T) {
	e := NewExtractor(nil, nil)

	tests := []struct {
		name  string
		hints *types.RequirementHints
	}{
		{"bad seniority", &types.RequirementHints{Seniority: "principal"}},
		{"negative experience", &types.RequirementHints{ExperienceMin: -1}},
		{"negative salary", &types.RequirementHints{SalaryMin: -200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Extract("Data Analyst position", tt.hints)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestExtractHintsOverride(t *testing.T) {
	e := NewExtractor(nil, nil)

	hints := &types.RequirementHints{
		Title:         "Staff Data Engineer",
		Seniority:     "mid",
		ExperienceMin: 3,
		Languages:     []string{"German"},
		Location:      "Berlin",
		Contract:      "FREELANCE",
	}
	req, err := e.Extract(seniorDataEngineerOffer, hints)
	require.NoError(t, err)

	assert.Equal(t, "Staff Data Engineer", req.Title)
	assert.Equal(t, types.SeniorityMid, req.Seniority)
	// text says 5 years, hint says 3: the larger bound wins
	assert.Equal(t, 5, req.ExperienceMin)
	assert.Equal(t, []string{"German"}, req.Languages)
	assert.Equal(t, "Berlin", req.Location)
	assert.Equal(t, "FREELANCE", req.Contract)
}

func TestExtractHintRaisesExperience(t *testing.T) {
	e := NewExtractor(nil, nil)

	req, err := e.Extract("Data Engineer. 2 years experience.", &types.RequirementHints{ExperienceMin: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, req.ExperienceMin)
}

func TestSkillSetsDisjoint(t *testing.T) {
	e := NewExtractor(nil, nil)

	// Python appears in both sections: required wins.
	text := `Backend Developer
Required skills: Python, PostgreSQL.
Nice to have: Docker, Python scripting.`
	req, err := e.Extract(text, nil)
	require.NoError(t, err)

	assert.Contains(t, req.RequiredSkills, "Python")
	assert.NotContains(t, req.OptionalSkills, "Python")
	for _, s := range req.RequiredSkills {
		assert.NotContains(t, req.OptionalSkills, s)
	}
}

func TestClassifyByContext(t *testing.T) {
	e := NewExtractor(nil, nil)

	text := "ML Engineer position.\n" +
		"Expertise in Docker is essential for this role.\n" +
		"We ship weekly to analytics clients worldwide.\n" +
		"Kafka would be appreciated.\n"
	req, err := e.Extract(text, nil)
	require.NoError(t, err)

	assert.Contains(t, req.RequiredSkills, "Docker")
	assert.Contains(t, req.OptionalSkills, "Kafka")
}

func TestCoreSkillDefault(t *testing.T) {
	e := NewExtractor(nil, nil)

	req, err := e.Extract("Data Analyst. Our stack: Python and Tableau.", nil)
	require.NoError(t, err)

	// no sections, no context keywords: core skills default to required
	assert.Contains(t, req.RequiredSkills, "Python")
	assert.Contains(t, req.OptionalSkills, "Tableau")
}

func TestExtractDefaults(t *testing.T) {
	e := NewExtractor(nil, nil)

	req, err := e.Extract("We build internal tooling for finance teams.", nil)
	require.NoError(t, err)

	assert.Equal(t, types.SeniorityUnspecified, req.Seniority)
	assert.Equal(t, []string{"French"}, req.Languages)
	assert.Equal(t, types.UnspecifiedLabel, req.Location)
	assert.Equal(t, "CDI", req.Contract)
	assert.Zero(t, req.ExperienceMin)
	assert.Zero(t, req.SalaryMin)
}

func TestExtractDeterministic(t *testing.T) {
	e := NewExtractor(nil, nil)

	first, err := e.Extract(seniorDataEngineerOffer, nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := e.Extract(seniorDataEngineerOffer, nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSeniorityFromYears(t *testing.T) {
	e := NewExtractor(nil, nil)

	tests := []struct {
		name     string
		text     string
		expected types.Seniority
	}{
		{"many years means senior", "Data Engineer. Minimum 6 years experience.", types.SenioritySenior},
		{"few years means junior", "Data Engineer. 2 years experience needed.", types.SeniorityJunior},
		{"keyword beats years", "Junior Data Engineer. minimum 7 years experience.", types.SeniorityJunior},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := e.Extract(tt.text, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req.Seniority)
		})
	}
}
