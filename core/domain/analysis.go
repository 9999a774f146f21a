// ABOUTME: Domain models for classification outcomes and analysis results
// ABOUTME: These are transient, built fresh for every analysis request

package domain

// ClassificationDetails is the audit trail attached to every outcome
type ClassificationDetails struct {
	NLILabel      string  `json:"nli_label"`
	NLIConfidence float64 `json:"nli_confidence"`
	Error         string  `json:"error,omitempty"`
}

// ClassificationOutcome is the reconciled result of the zero-shot call
type ClassificationOutcome struct {
	Verdict    Verdict
	Confidence float64 // 0-100, one decimal; 0 when degraded
	RawLabel   string
	Diagnostic string // set only on degraded paths
}

// Degraded reports whether the classification failed upstream
func (o ClassificationOutcome) Degraded() bool {
	return o.Diagnostic != ""
}

// Details renders the outcome's audit fields
func (o ClassificationOutcome) Details() ClassificationDetails {
	return ClassificationDetails{
		NLILabel:      o.RawLabel,
		NLIConfidence: o.Confidence,
		Error:         o.Diagnostic,
	}
}

// UnsureOutcome builds the degraded outcome for a failed classification
func UnsureOutcome(cause string) ClassificationOutcome {
	return ClassificationOutcome{
		Verdict:    VerdictUnsure,
		Confidence: 0,
		Diagnostic: cause,
	}
}

// AnalysisResult is the orchestrator's output
type AnalysisResult struct {
	InputType      InputType
	InputValue     string
	Title          string
	Author         string
	PublishedDate  string
	Summary        string
	Classification ClassificationOutcome
	DurationMs     int64
}
