package responses

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-summarizer-api/core/domain"
)

func TestFromResult_WireNames(t *testing.T) {
	result := &domain.AnalysisResult{
		InputType:     domain.InputTypeURL,
		InputValue:    "https://example.com",
		Title:         "Title",
		Author:        "Jane Doe",
		PublishedDate: "2024-01-02 03:04:05+00:00",
		Summary:       "Short.",
		Classification: domain.ClassificationOutcome{
			Verdict:    domain.VerdictFakeNews,
			Confidence: 82.0,
			RawLabel:   "fake news",
		},
		DurationMs: 1500,
	}

	data, err := json.Marshal(FromResult(result))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"title": "Title",
		"author": "Jane Doe",
		"published_date": "2024-01-02 03:04:05+00:00",
		"summary": "Short.",
		"fake_news_label": "FAKE NEWS",
		"fake_news_confidence": 82,
		"details": {"nli_label": "fake news", "nli_confidence": 82},
		"duration_ms": 1500
	}`, string(data))
}

func TestFromResult_DegradedCarriesError(t *testing.T) {
	result := &domain.AnalysisResult{
		Classification: domain.UnsureOutcome("classification unavailable: rate limited"),
	}

	data, err := json.Marshal(FromResult(result))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "UNSURE", decoded["fake_news_label"])
	assert.Equal(t, float64(0), decoded["fake_news_confidence"])
	details := decoded["details"].(map[string]interface{})
	assert.Equal(t, "classification unavailable: rate limited", details["error"])
	assert.Equal(t, "", details["nli_label"])
}
