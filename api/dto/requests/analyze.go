// ABOUTME: Request DTOs for the analysis and feedback endpoints
// ABOUTME: Field names are part of the public contract and must not change

package requests

import "news-summarizer-api/core/domain"

// AnalyzeRequest carries either a URL or raw article text. When both are
// present the URL is used.
type AnalyzeRequest struct {
	URL  string `json:"url,omitempty" example:"https://example.com/news/story" doc:"Link to a news article"`
	Text string `json:"text,omitempty" example:"The city council voted on Tuesday to..." doc:"Raw article text, used when no URL is given"`
}

// ToInput converts the request into the pipeline input
func (r AnalyzeRequest) ToInput() domain.AnalysisInput {
	return domain.AnalysisInput{URL: r.URL, Text: r.Text}
}

// FeedbackRequest is a user's reaction to a verdict
type FeedbackRequest struct {
	Title         string `json:"title,omitempty" maxLength:"1000" doc:"Title of the analyzed article"`
	FakeNewsLabel string `json:"fake_news_label,omitempty" maxLength:"50" example:"OPINION" doc:"Verdict the user is reacting to"`
	UserFeedback  string `json:"user_feedback,omitempty" doc:"Free-text feedback; must not be empty"`
}

// ToRecord converts the request into a feedback record
func (r FeedbackRequest) ToRecord() domain.FeedbackRecord {
	return domain.FeedbackRecord{
		Title:         r.Title,
		FakeNewsLabel: r.FakeNewsLabel,
		UserFeedback:  r.UserFeedback,
	}
}
