package inference

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"news-summarizer-api/core/domain"
)

func zeroShot(labels []string, scores []float64) *mockZeroShot {
	return &mockZeroShot{
		classifyFunc: func(ctx context.Context, text string, l []string, multi bool) (*ZeroShotResult, error) {
			return &ZeroShotResult{Labels: labels, Scores: scores}, nil
		},
	}
}

func TestClassificationClient_ConfidentVerdicts(t *testing.T) {
	tests := []struct {
		label      string
		score      float64
		verdict    domain.Verdict
		confidence float64
	}{
		{"fake news", 0.8734, domain.VerdictFakeNews, 87.3},
		{"real news", 0.91, domain.VerdictRealNews, 91.0},
		{"opinion", 0.6049, domain.VerdictOpinion, 60.5},
		{"satire", 0.999, domain.VerdictSatire, 99.9},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			client := NewClassificationClient(zeroShot([]string{tt.label, "other"}, []float64{tt.score, 0.01}), ClientOptions{})

			got := client.Classify(context.Background(), "Some article text.")

			assert.Equal(t, tt.verdict, got.Verdict)
			assert.Equal(t, tt.confidence, got.Confidence)
			assert.Equal(t, tt.label, got.RawLabel)
			assert.False(t, got.Degraded())
		})
	}
}

func TestClassificationClient_LowConfidenceIsUnsure(t *testing.T) {
	client := NewClassificationClient(zeroShot([]string{"real news"}, []float64{0.6}), ClientOptions{})

	got := client.Classify(context.Background(), "Some article text.")

	assert.Equal(t, domain.VerdictUnsure, got.Verdict)
	assert.Equal(t, 60.0, got.Confidence)
	assert.Equal(t, "real news", got.RawLabel)
	assert.Empty(t, got.Diagnostic)
}

func TestClassificationClient_SendsFixedLabelsAndTruncates(t *testing.T) {
	capability := zeroShot([]string{"real news"}, []float64{0.9})
	client := NewClassificationClient(capability, ClientOptions{})

	client.Classify(context.Background(), strings.Repeat("a", 2000))

	assert.Equal(t, []string{"real news", "fake news", "opinion", "satire"}, capability.lastLabels)
	assert.False(t, capability.lastMulti)
	assert.Len(t, capability.lastText, ClassificationInputLimit)
}

func TestClassificationClient_EmptyLabels(t *testing.T) {
	client := NewClassificationClient(zeroShot(nil, nil), ClientOptions{})

	got := client.Classify(context.Background(), "Some article text.")

	assert.Equal(t, domain.VerdictUnsure, got.Verdict)
	assert.Equal(t, 0.0, got.Confidence)
	assert.Contains(t, got.Diagnostic, "no labels")
}

func TestClassificationClient_MissingScores(t *testing.T) {
	client := NewClassificationClient(zeroShot([]string{"fake news"}, nil), ClientOptions{})

	got := client.Classify(context.Background(), "Some article text.")

	assert.Equal(t, domain.VerdictUnsure, got.Verdict)
	assert.Contains(t, got.Diagnostic, "no scores")
}

func TestClassificationClient_DegradesOnError(t *testing.T) {
	kinds := []Kind{KindMissingCredentials, KindUnauthorized, KindRateLimited, KindLoading, KindMalformed, KindHTTP, KindTimeout, KindOther}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			capability := &mockZeroShot{
				classifyFunc: func(ctx context.Context, text string, l []string, multi bool) (*ZeroShotResult, error) {
					return nil, &Error{Kind: kind, StatusCode: 500}
				},
			}
			client := NewClassificationClient(capability, ClientOptions{})

			got := client.Classify(context.Background(), "Some article text.")

			assert.Equal(t, domain.VerdictUnsure, got.Verdict)
			assert.Equal(t, 0.0, got.Confidence)
			assert.True(t, got.Degraded())
			assert.True(t, strings.HasPrefix(got.Diagnostic, "classification unavailable"))
		})
	}
}

func TestClassificationClient_NilCapability(t *testing.T) {
	client := NewClassificationClient(nil, ClientOptions{})

	got := client.Classify(context.Background(), "Some article text.")

	assert.Equal(t, domain.VerdictUnsure, got.Verdict)
	assert.Contains(t, got.Diagnostic, "no API token")
}
