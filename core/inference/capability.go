package inference

import "context"

// SummarizeParams bounds the generated summary length
type SummarizeParams struct {
	MaxLength int
	MinLength int
	DoSample  bool
}

// DefaultSummarizeParams matches the lengths the service has always requested
var DefaultSummarizeParams = SummarizeParams{MaxLength: 130, MinLength: 30, DoSample: false}

// ZeroShotResult holds labels and scores ordered best first
type ZeroShotResult struct {
	Labels []string
	Scores []float64
}

// SummarizationCapability is a remote abstractive summarizer.
// Failures must be *Error values.
type SummarizationCapability interface {
	Summarize(ctx context.Context, text string, params SummarizeParams) (string, error)
}

// ClassificationCapability is a remote zero-shot classifier.
// Failures must be *Error values.
type ClassificationCapability interface {
	Classify(ctx context.Context, text string, candidateLabels []string, multiLabel bool) (*ZeroShotResult, error)
}
