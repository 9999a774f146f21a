// ABOUTME: Analysis handler for the Huma API
// ABOUTME: Runs the fetch, summarize and classify pipeline for one article

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"news-summarizer-api/api/dto/requests"
	"news-summarizer-api/api/dto/responses"
	"news-summarizer-api/core/interfaces"
)

// AnalyzeHandler handles article analysis requests
type AnalyzeHandler struct {
	analyzer interfaces.Analyzer
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(analyzer interfaces.Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer}
}

// RegisterRoutes registers the analysis route
func (h *AnalyzeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyzeArticle",
		Method:      http.MethodPost,
		Path:        "/api/analyze",
		Summary:     "Summarize and classify a news article",
		Description: "Accepts a URL or raw text. Upstream inference failures degrade into an explanatory summary and an UNSURE verdict rather than an error.",
		Tags:        []string{"Analysis"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Analyze)
}

// AnalyzeInput defines the input for the Analyze operation
type AnalyzeInput struct {
	Body requests.AnalyzeRequest `required:"false"`
}

// AnalyzeOutput defines the output for the Analyze operation
type AnalyzeOutput struct {
	Body responses.AnalyzeResponse
}

// Analyze handles one analysis request
func (h *AnalyzeHandler) Analyze(ctx context.Context, input *AnalyzeInput) (*AnalyzeOutput, error) {
	result, err := h.analyzer.Analyze(ctx, input.Body.ToInput())
	if err != nil {
		return nil, toHumaError(err)
	}

	return &AnalyzeOutput{
		Body: responses.FromResult(result),
	}, nil
}
