package types

// NameNotFound is the sentinel display name used when no candidate name
// could be extracted from a document.
const NameNotFound = "name not found"

// Experience is one work-history entry parsed from a résumé.
// EndYear is zero when the entry is still current (Present is true) or the
// end date could not be parsed.
type Experience struct {
	Title     string `json:"title"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year,omitempty"`
	Present   bool   `json:"present,omitempty"`
}

// Education is one education entry parsed from a résumé.
type Education struct {
	Degree string `json:"degree"`
}

// CandidateProfile is the canonical structured form of one résumé.
// Extraction never fails: every field degrades to its documented sentinel
// (NameNotFound, empty lists, zero experience) on malformed input.
type CandidateProfile struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email,omitempty"`
	Phone           string       `json:"phone,omitempty"`
	Experience      []Experience `json:"experience"`
	Education       []Education  `json:"education"`
	Skills          []string     `json:"skills"`
	Languages       []string     `json:"languages"`
	YearsExperience float64      `json:"years_experience"`

	// RawText keeps the source document for justification excerpts.
	RawText string `json:"-"`
}

// RawDocument is one candidate document produced by the resolver.
// Text is always the full document text, never a retrieval chunk.
type RawDocument struct {
	ID         string  `json:"id,omitempty"`
	SourceName string  `json:"source_name"`
	Text       string  `json:"text"`
	Similarity float64 `json:"similarity"`
}
