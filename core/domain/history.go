// ABOUTME: Persisted records for query history and user feedback
// ABOUTME: Both are append-only and listed newest first

package domain

import (
	"time"

	"github.com/google/uuid"
)

// historyInputLimit caps how much raw text a history row keeps
const historyInputLimit = 100

// HistoryRecord is one persisted analysis
type HistoryRecord struct {
	ID                 string    `json:"id"`
	InputType          InputType `json:"input_type"`
	InputValue         string    `json:"input_value"`
	Summary            string    `json:"summary"`
	FakeNewsLabel      Verdict   `json:"fake_news_label"`
	FakeNewsConfidence float64   `json:"fake_news_confidence"`
	ArticleTitle       string    `json:"article_title"`
	DurationMs         int64     `json:"duration_ms"`
	CreatedAt          time.Time `json:"created_at"`
}

// NewHistoryRecord builds the row for a successful analysis
func NewHistoryRecord(result AnalysisResult) HistoryRecord {
	value := result.InputValue
	if result.InputType == InputTypeText {
		value = Truncate(value, historyInputLimit) + "..."
	}

	return HistoryRecord{
		ID:                 uuid.New().String(),
		InputType:          result.InputType,
		InputValue:         value,
		Summary:            result.Summary,
		FakeNewsLabel:      result.Classification.Verdict,
		FakeNewsConfidence: result.Classification.Confidence,
		ArticleTitle:       result.Title,
		DurationMs:         result.DurationMs,
		CreatedAt:          time.Now().UTC(),
	}
}

// FeedbackRecord is a user's reaction to a verdict
type FeedbackRecord struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	FakeNewsLabel string    `json:"fake_news_label"`
	UserFeedback  string    `json:"user_feedback"`
	CreatedAt     time.Time `json:"created_at"`
}

// Page bounds a newest-first listing
type Page struct {
	Limit  int
	Offset int
}
