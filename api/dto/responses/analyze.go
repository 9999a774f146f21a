// ABOUTME: Response DTOs for the public API
// ABOUTME: AnalyzeResponse field names are bit-exact with the original service

package responses

import (
	"time"

	"news-summarizer-api/core/domain"
)

// AnalyzeResponse is the body of a successful analysis
type AnalyzeResponse struct {
	Title              string                       `json:"title"`
	Author             string                       `json:"author"`
	PublishedDate      string                       `json:"published_date"`
	Summary            string                       `json:"summary"`
	FakeNewsLabel      domain.Verdict               `json:"fake_news_label" enum:"REAL NEWS,FAKE NEWS,OPINION,SATIRE,UNSURE"`
	FakeNewsConfidence float64                      `json:"fake_news_confidence" doc:"0-100, one decimal"`
	Details            domain.ClassificationDetails `json:"details"`
	DurationMs         int64                        `json:"duration_ms"`
}

// FromResult maps an analysis result onto the wire shape
func FromResult(result *domain.AnalysisResult) AnalyzeResponse {
	return AnalyzeResponse{
		Title:              result.Title,
		Author:             result.Author,
		PublishedDate:      result.PublishedDate,
		Summary:            result.Summary,
		FakeNewsLabel:      result.Classification.Verdict,
		FakeNewsConfidence: result.Classification.Confidence,
		Details:            result.Classification.Details(),
		DurationMs:         result.DurationMs,
	}
}

// SuccessResponse acknowledges a write
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	Version   string    `json:"version" example:"1.0.0"`
	Timestamp time.Time `json:"timestamp"`
}
