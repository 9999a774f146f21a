// ABOUTME: Service interfaces for the analysis pipeline
// ABOUTME: Defines contracts the orchestrator depends on so each stage can be substituted in tests

package interfaces

import (
	"context"

	"news-summarizer-api/core/domain"
)

// ArticleFetcher retrieves and parses a webpage into an article record.
// It is the only stage allowed to fail; failures are *errors.FetchError.
type ArticleFetcher interface {
	Fetch(ctx context.Context, url string) (domain.ArticleRecord, error)
}

// Summarizer returns a displayable summary. It never fails: degraded
// conditions come back as an explanatory message.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}

// Classifier returns a well-formed outcome. It never fails: degraded
// conditions come back as an UNSURE outcome with a diagnostic.
type Classifier interface {
	Classify(ctx context.Context, text string) domain.ClassificationOutcome
}

// HistoryRecorder accepts successful results for persistence without
// blocking or failing the caller.
type HistoryRecorder interface {
	Record(ctx context.Context, result domain.AnalysisResult)
}

// Analyzer runs the whole pipeline for one input
type Analyzer interface {
	Analyze(ctx context.Context, input domain.AnalysisInput) (*domain.AnalysisResult, error)
}

// FeedbackService validates and stores user feedback
type FeedbackService interface {
	Submit(ctx context.Context, feedback domain.FeedbackRecord) (*domain.FeedbackRecord, error)
	List(ctx context.Context, page domain.Page) ([]domain.FeedbackRecord, error)
}

// HistoryService lists persisted analyses
type HistoryService interface {
	List(ctx context.Context, page domain.Page) ([]domain.HistoryRecord, error)
}
