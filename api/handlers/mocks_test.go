package handlers

import (
	"context"

	"news-summarizer-api/core/domain"
)

type mockAnalyzer struct {
	analyzeFunc func(ctx context.Context, input domain.AnalysisInput) (*domain.AnalysisResult, error)
}

func (m *mockAnalyzer) Analyze(ctx context.Context, input domain.AnalysisInput) (*domain.AnalysisResult, error) {
	return m.analyzeFunc(ctx, input)
}

type mockFeedbackService struct {
	submitFunc func(ctx context.Context, feedback domain.FeedbackRecord) (*domain.FeedbackRecord, error)
	listFunc   func(ctx context.Context, page domain.Page) ([]domain.FeedbackRecord, error)
}

func (m *mockFeedbackService) Submit(ctx context.Context, feedback domain.FeedbackRecord) (*domain.FeedbackRecord, error) {
	return m.submitFunc(ctx, feedback)
}

func (m *mockFeedbackService) List(ctx context.Context, page domain.Page) ([]domain.FeedbackRecord, error) {
	return m.listFunc(ctx, page)
}

type mockHistoryService struct {
	listFunc func(ctx context.Context, page domain.Page) ([]domain.HistoryRecord, error)
}

func (m *mockHistoryService) List(ctx context.Context, page domain.Page) ([]domain.HistoryRecord, error) {
	return m.listFunc(ctx, page)
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.err
}
