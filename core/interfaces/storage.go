// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for the append-only history and feedback stores

package interfaces

import (
	"context"

	"news-summarizer-api/core/domain"
)

// HistoryStore persists analysis history
type HistoryStore interface {
	// SaveHistory appends a record
	SaveHistory(ctx context.Context, record domain.HistoryRecord) error

	// ListHistory returns records newest first
	ListHistory(ctx context.Context, page domain.Page) ([]domain.HistoryRecord, error)
}

// FeedbackStore persists user feedback
type FeedbackStore interface {
	// SaveFeedback appends a record
	SaveFeedback(ctx context.Context, record domain.FeedbackRecord) error

	// ListFeedback returns records newest first
	ListFeedback(ctx context.Context, page domain.Page) ([]domain.FeedbackRecord, error)
}
