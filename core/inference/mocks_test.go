package inference

import (
	"context"
)

// mockSummarizer is a function-field SummarizationCapability
type mockSummarizer struct {
	summarizeFunc func(ctx context.Context, text string, params SummarizeParams) (string, error)
	lastText      string
	calls         int
}

func (m *mockSummarizer) Summarize(ctx context.Context, text string, params SummarizeParams) (string, error) {
	m.calls++
	m.lastText = text
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, text, params)
	}
	return "", nil
}

// mockZeroShot is a function-field ClassificationCapability
type mockZeroShot struct {
	classifyFunc func(ctx context.Context, text string, labels []string, multiLabel bool) (*ZeroShotResult, error)
	lastText     string
	lastLabels   []string
	lastMulti    bool
}

func (m *mockZeroShot) Classify(ctx context.Context, text string, labels []string, multiLabel bool) (*ZeroShotResult, error) {
	m.lastText = text
	m.lastLabels = labels
	m.lastMulti = multiLabel
	if m.classifyFunc != nil {
		return m.classifyFunc(ctx, text, labels, multiLabel)
	}
	return nil, nil
}
