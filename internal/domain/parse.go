package domain

import "math"

// Classification is the outcome of template matching for one query.
// Degraded marks the fallback arm taken when the similarity backend is
// unavailable, so callers can tell it apart from a confident match.
type Classification struct {
	TemplateID   int
	Confidence   float64
	MatchReason  string
	SourcePhrase string // example text that produced the winning score
	Degraded     bool
}

// FeasibilityVerdict is a heuristic plausibility judgment over extracted
// parameters, not a scheduling proof.
type FeasibilityVerdict struct {
	Feasible    bool     `json:"feasible"`
	Confidence  float64  `json:"confidence"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// ParseResult is the assembled record for one parsed query.
// Field names follow the original API surface; OriginalQuery carries the
// matched example phrase, not the user's query.
type ParseResult struct {
	TemplateID         int                `json:"templateId"`
	TemplateName       string             `json:"templateName"`
	Confidence         float64            `json:"confidence"`
	ConstraintSentence string             `json:"constraintSentence"`
	Parameters         ParameterSet       `json:"parameters"`
	Feasibility        FeasibilityVerdict `json:"feasibility"`
	MatchReason        string             `json:"matchReason"`
	OriginalQuery      string             `json:"originalQuery,omitempty"`
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
