// ABOUTME: Domain models for article input and extracted article content
// ABOUTME: Defines the normalized record produced from a URL or from raw text

package domain

import (
	"strings"
	"unicode/utf8"
)

// InputType identifies which branch of the pipeline an analysis took
type InputType string

const (
	InputTypeURL  InputType = "url"
	InputTypeText InputType = "text"
)

// AnalysisInput is the caller-supplied article, either a URL or raw text.
// When both are present the URL wins.
type AnalysisInput struct {
	URL  string `json:"url,omitempty"`
	Text string `json:"text,omitempty"`
}

// Normalize trims both fields
func (in AnalysisInput) Normalize() AnalysisInput {
	return AnalysisInput{
		URL:  strings.TrimSpace(in.URL),
		Text: strings.TrimSpace(in.Text),
	}
}

// Type reports the branch a normalized input takes. It returns an empty
// InputType when neither field is set.
func (in AnalysisInput) Type() InputType {
	switch {
	case in.URL != "":
		return InputTypeURL
	case in.Text != "":
		return InputTypeText
	default:
		return ""
	}
}

// ArticleRecord represents normalized article content
type ArticleRecord struct {
	URL           string `json:"url,omitempty"`
	Text          string `json:"text"`
	Title         string `json:"title"`
	Author        string `json:"author"`         // comma-joined byline names
	PublishedDate string `json:"published_date"` // free-form, may be empty
}

// NewTextRecord synthesizes a record for raw text input; no metadata exists.
func NewTextRecord(text string) ArticleRecord {
	return ArticleRecord{Text: text}
}

// JoinAuthors renders a byline list the way records store it
func JoinAuthors(authors []string) string {
	cleaned := make([]string, 0, len(authors))
	seen := make(map[string]bool, len(authors))
	for _, a := range authors {
		a = strings.TrimSpace(a)
		if a == "" || seen[strings.ToLower(a)] {
			continue
		}
		seen[strings.ToLower(a)] = true
		cleaned = append(cleaned, a)
	}
	return strings.Join(cleaned, ", ")
}

// Truncate returns at most n characters (runes) of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// CharCount returns the number of characters (runes) in s
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}
