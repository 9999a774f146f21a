package huggingface

import (
	"context"
	"encoding/json"

	"news-summarizer-api/core/inference"
)

type summarizationRequest struct {
	Inputs     string                  `json:"inputs"`
	Parameters summarizationParameters `json:"parameters"`
}

type summarizationParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type summarizationItem struct {
	SummaryText string `json:"summary_text"`
}

// Summarizer implements inference.SummarizationCapability
type Summarizer struct {
	client *Client
}

var _ inference.SummarizationCapability = (*Summarizer)(nil)

// Summarize requests an abstractive summary of text
func (s *Summarizer) Summarize(ctx context.Context, text string, params inference.SummarizeParams) (string, error) {
	raw, err := s.client.post(ctx, s.client.config.SummarizationModel, summarizationRequest{
		Inputs: text,
		Parameters: summarizationParameters{
			MaxLength: params.MaxLength,
			MinLength: params.MinLength,
			DoSample:  params.DoSample,
		},
	})
	if err != nil {
		return "", err
	}

	var items []summarizationItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return "", malformed("decode summary", err)
	}
	if len(items) == 0 {
		return "", malformed("empty summary list", nil)
	}
	return items[0].SummaryText, nil
}
