package analysis

import (
	"context"
	"sync"

	"news-summarizer-api/core/domain"
	"news-summarizer-api/core/inference"
)

type mockFetcher struct {
	fetchFunc func(ctx context.Context, url string) (domain.ArticleRecord, error)
	calls     []string
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) (domain.ArticleRecord, error) {
	m.calls = append(m.calls, url)
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return domain.ArticleRecord{}, nil
}

type mockSummarizer struct {
	summarizeFunc func(ctx context.Context, text string) string
}

func (m *mockSummarizer) Summarize(ctx context.Context, text string) string {
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, text)
	}
	return "summary"
}

type mockClassifier struct {
	classifyFunc func(ctx context.Context, text string) domain.ClassificationOutcome
}

func (m *mockClassifier) Classify(ctx context.Context, text string) domain.ClassificationOutcome {
	if m.classifyFunc != nil {
		return m.classifyFunc(ctx, text)
	}
	return domain.ClassificationOutcome{Verdict: domain.VerdictRealNews, Confidence: 90, RawLabel: "real news"}
}

type mockRecorder struct {
	mu      sync.Mutex
	results []domain.AnalysisResult
}

func (m *mockRecorder) Record(ctx context.Context, result domain.AnalysisResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, result)
}

func (m *mockRecorder) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.results)
}

// capabilityFake scripts both inference capabilities and records what they received
type capabilityFake struct {
	mu             sync.Mutex
	summary        string
	summaryErr     error
	zeroShot       *inference.ZeroShotResult
	zeroShotErr    error
	summarizedText string
	classifiedText string
}

func (c *capabilityFake) Summarize(ctx context.Context, text string, params inference.SummarizeParams) (string, error) {
	c.mu.Lock()
	c.summarizedText = text
	c.mu.Unlock()
	return c.summary, c.summaryErr
}

func (c *capabilityFake) Classify(ctx context.Context, text string, labels []string, multiLabel bool) (*inference.ZeroShotResult, error) {
	c.mu.Lock()
	c.classifiedText = text
	c.mu.Unlock()
	return c.zeroShot, c.zeroShotErr
}
