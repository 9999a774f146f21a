// ABOUTME: Feedback and history handlers for the Huma API
// ABOUTME: Public feedback submission plus admin-only listings of history and feedback

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"news-summarizer-api/api/dto/requests"
	"news-summarizer-api/api/dto/responses"
	"news-summarizer-api/api/middleware"
	"news-summarizer-api/core/domain"
	"news-summarizer-api/core/history"
	"news-summarizer-api/core/interfaces"
)

// RecordsHandler serves the persisted side of the API
type RecordsHandler struct {
	feedback   interfaces.FeedbackService
	history    interfaces.HistoryService
	adminToken string
}

// NewRecordsHandler creates a new records handler. An empty adminToken
// closes the listing endpoints.
func NewRecordsHandler(feedback interfaces.FeedbackService, history interfaces.HistoryService, adminToken string) *RecordsHandler {
	return &RecordsHandler{
		feedback:   feedback,
		history:    history,
		adminToken: adminToken,
	}
}

// RegisterRoutes registers feedback and admin listing routes
func (h *RecordsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "submitFeedback",
		Method:      http.MethodPost,
		Path:        "/api/feedback",
		Summary:     "Submit feedback on a verdict",
		Tags:        []string{"Feedback"},
		Errors:      []int{http.StatusBadRequest},
	}, h.SubmitFeedback)

	admin := huma.Middlewares{middleware.AdminAuth(api, h.adminToken)}
	security := []map[string][]string{{middleware.AdminSecurityScheme: {}}}

	huma.Register(api, huma.Operation{
		OperationID: "listHistory",
		Method:      http.MethodGet,
		Path:        "/api/all-history",
		Summary:     "List analysis history",
		Description: "Newest first. Requires the admin bearer token.",
		Tags:        []string{"Admin"},
		Security:    security,
		Middlewares: admin,
		Errors:      []int{http.StatusUnauthorized, http.StatusForbidden},
	}, h.ListHistory)

	huma.Register(api, huma.Operation{
		OperationID: "listFeedback",
		Method:      http.MethodGet,
		Path:        "/api/all-feedback",
		Summary:     "List user feedback",
		Description: "Newest first. Requires the admin bearer token.",
		Tags:        []string{"Admin"},
		Security:    security,
		Middlewares: admin,
		Errors:      []int{http.StatusUnauthorized, http.StatusForbidden},
	}, h.ListFeedback)
}

// SubmitFeedbackInput defines the input for the SubmitFeedback operation
type SubmitFeedbackInput struct {
	Body requests.FeedbackRequest
}

// SubmitFeedbackOutput defines the output for the SubmitFeedback operation
type SubmitFeedbackOutput struct {
	Body responses.SuccessResponse
}

// SubmitFeedback stores one feedback entry
func (h *RecordsHandler) SubmitFeedback(ctx context.Context, input *SubmitFeedbackInput) (*SubmitFeedbackOutput, error) {
	if _, err := h.feedback.Submit(ctx, input.Body.ToRecord()); err != nil {
		return nil, toHumaError(err)
	}

	return &SubmitFeedbackOutput{
		Body: responses.SuccessResponse{Success: true},
	}, nil
}

// PageInput holds paging query parameters. Out-of-range values are clamped.
type PageInput struct {
	Limit  int `query:"limit" default:"100" doc:"Maximum rows to return (capped at 1000)"`
	Offset int `query:"offset" default:"0" doc:"Rows to skip"`
}

func (p PageInput) page() domain.Page {
	return history.NormalizePage(domain.Page{Limit: p.Limit, Offset: p.Offset})
}

// ListHistoryOutput defines the output for the ListHistory operation. The
// body is a bare array; the applied paging is echoed in headers.
type ListHistoryOutput struct {
	Limit  int `header:"X-Page-Limit"`
	Offset int `header:"X-Page-Offset"`
	Body   []domain.HistoryRecord
}

// ListHistory returns analysis history newest first
func (h *RecordsHandler) ListHistory(ctx context.Context, input *PageInput) (*ListHistoryOutput, error) {
	page := input.page()
	records, err := h.history.List(ctx, page)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListHistoryOutput{
		Limit:  page.Limit,
		Offset: page.Offset,
		Body:   records,
	}, nil
}

// ListFeedbackOutput defines the output for the ListFeedback operation
type ListFeedbackOutput struct {
	Limit  int `header:"X-Page-Limit"`
	Offset int `header:"X-Page-Offset"`
	Body   []domain.FeedbackRecord
}

// ListFeedback returns user feedback newest first
func (h *RecordsHandler) ListFeedback(ctx context.Context, input *PageInput) (*ListFeedbackOutput, error) {
	page := input.page()
	records, err := h.feedback.List(ctx, page)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListFeedbackOutput{
		Limit:  page.Limit,
		Offset: page.Offset,
		Body:   records,
	}, nil
}
