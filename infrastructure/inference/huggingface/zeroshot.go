package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"

	"news-summarizer-api/core/inference"
)

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
	MultiLabel      bool     `json:"multi_label"`
}

// zeroShotResponse is the classic pipeline shape with parallel arrays
type zeroShotResponse struct {
	Sequence string    `json:"sequence"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}

// labelScore is the router shape: a list of label/score pairs
type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ZeroShot implements inference.ClassificationCapability
type ZeroShot struct {
	client *Client
}

var _ inference.ClassificationCapability = (*ZeroShot)(nil)

// Classify scores text against candidateLabels, best first
func (z *ZeroShot) Classify(ctx context.Context, text string, candidateLabels []string, multiLabel bool) (*inference.ZeroShotResult, error) {
	raw, err := z.client.post(ctx, z.client.config.ClassificationModel, zeroShotRequest{
		Inputs: text,
		Parameters: zeroShotParameters{
			CandidateLabels: candidateLabels,
			MultiLabel:      multiLabel,
		},
	})
	if err != nil {
		return nil, err
	}
	return decodeZeroShot(raw)
}

func decodeZeroShot(raw []byte) (*inference.ZeroShotResult, error) {
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var pairs []labelScore
		if err := json.Unmarshal(trimmed, &pairs); err != nil {
			return nil, malformed("decode label scores", err)
		}
		sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Score > pairs[j].Score })

		result := &inference.ZeroShotResult{}
		for _, p := range pairs {
			result.Labels = append(result.Labels, p.Label)
			result.Scores = append(result.Scores, p.Score)
		}
		return result, nil
	}

	var resp zeroShotResponse
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return nil, malformed("decode zero-shot response", err)
	}
	if len(resp.Labels) != len(resp.Scores) {
		return nil, malformed("labels and scores differ in length", nil)
	}
	return &inference.ZeroShotResult{Labels: resp.Labels, Scores: resp.Scores}, nil
}
