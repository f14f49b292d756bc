package types

// Recommendation is the final hiring recommendation tier.
type Recommendation string

const (
	StronglyRecommended Recommendation = "strongly_recommended"
	Recommended         Recommendation = "recommended"
	ToConsider          Recommendation = "to_consider"
	ToReject            Recommendation = "to_reject"
)

// Global score weights and recommendation thresholds.
const (
	WeightProfile    = 0.3
	WeightTechnical  = 0.4
	WeightSoftSkill  = 0.3
	ThresholdStrong  = 80.0
	ThresholdRecom   = 65.0
	ThresholdsConsid = 50.0
)

// ScoreBreakdown is one criterion's score in [0,100] with a short rationale.
type ScoreBreakdown struct {
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

// RankedEvaluation is the full evaluation of one candidate against one
// requirement: the extracted profile, the three criterion scores, the
// weighted global score, the recommendation tier, and a templated
// justification. Similarity is the retrieval confidence of the source
// document (1.0 for enumerated documents); it is an opaque relevance score,
// not a calibrated probability.
type RankedEvaluation struct {
	Profile        CandidateProfile `json:"profile"`
	SourceName     string           `json:"source_name"`
	Similarity     float64          `json:"similarity"`
	ProfileScore   ScoreBreakdown   `json:"profile_score"`
	TechnicalScore ScoreBreakdown   `json:"technical_score"`
	SoftSkillScore ScoreBreakdown   `json:"soft_skill_score"`
	MissingSkills  []string         `json:"missing_skills,omitempty"`
	SoftSkillTags  []string         `json:"soft_skill_tags,omitempty"`
	GlobalScore    float64          `json:"global_score"`
	Recommendation Recommendation   `json:"recommendation"`
	Justification  string           `json:"justification"`
}

// ReportStats aggregates score statistics over one ranked evaluation run.
type ReportStats struct {
	TotalCandidates int     `json:"total_candidates"`
	MeanGlobal      float64 `json:"mean_global"`
	MaxGlobal       float64 `json:"max_global"`
	MinGlobal       float64 `json:"min_global"`
	MeanProfile     float64 `json:"mean_profile"`
	MeanTechnical   float64 `json:"mean_technical"`
	MeanSoftSkill   float64 `json:"mean_soft_skill"`
}

// EmptyReportSummary is the sentinel summary produced when no candidates
// were evaluated.
const EmptyReportSummary = "no candidates evaluated"

// EvaluationReport is the final aggregate report for one run.
type EvaluationReport struct {
	Summary       string             `json:"summary"`
	Stats         ReportStats        `json:"stats"`
	TopCandidates []RankedEvaluation `json:"top_candidates"`
	Requirement   JobRequirement     `json:"requirement"`
}

// Answer is the result of a retrieval-augmented question over the indexed
// documents. Confidence is the mean similarity of the supporting chunks.
type Answer struct {
	Text       string   `json:"text"`
	Sources    []string `json:"sources"`
	Confidence float64  `json:"confidence"`
	Generated  bool     `json:"generated"`
}
