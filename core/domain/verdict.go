// ABOUTME: Verdict vocabulary and the policy mapping classifier output onto it
// ABOUTME: Pure and deterministic; the threshold is strictly greater than 60

package domain

import (
	"strconv"
	"strings"
)

// Verdict is the classification outcome shown to the user
type Verdict string

const (
	VerdictRealNews Verdict = "REAL NEWS"
	VerdictFakeNews Verdict = "FAKE NEWS"
	VerdictOpinion  Verdict = "OPINION"
	VerdictSatire   Verdict = "SATIRE"
	VerdictUnsure   Verdict = "UNSURE"
)

// Candidate labels sent to the zero-shot classifier, in request order
const (
	LabelRealNews = "real news"
	LabelFakeNews = "fake news"
	LabelOpinion  = "opinion"
	LabelSatire   = "satire"
)

// CandidateLabels is the fixed four-way vocabulary for zero-shot classification
var CandidateLabels = []string{LabelRealNews, LabelFakeNews, LabelOpinion, LabelSatire}

// ConfidenceThreshold must be strictly exceeded for a confident verdict
const ConfidenceThreshold = 60.0

// Confidence converts a 0-1 score into a percentage rounded to one decimal.
// Rounding works on the exact binary value of score*100: 0.15 is stored just
// below 0.15 and rounds down, exact halves round to even.
func Confidence(score float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(score*100, 'f', 1, 64), 64)
	return rounded
}

// DeriveVerdict maps the top-ranked label and its score to a verdict and
// the rounded confidence.
func DeriveVerdict(label string, score float64) (Verdict, float64) {
	confidence := Confidence(score)
	if confidence <= ConfidenceThreshold {
		return VerdictUnsure, confidence
	}

	switch label {
	case LabelFakeNews, LabelOpinion, LabelSatire:
		return Verdict(strings.ToUpper(label)), confidence
	case LabelRealNews:
		return VerdictRealNews, confidence
	default:
		return VerdictUnsure, confidence
	}
}

// IsValid reports whether v is part of the verdict vocabulary
func (v Verdict) IsValid() bool {
	switch v {
	case VerdictRealNews, VerdictFakeNews, VerdictOpinion, VerdictSatire, VerdictUnsure:
		return true
	}
	return false
}
