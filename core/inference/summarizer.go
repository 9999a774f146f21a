// ABOUTME: Summarization client that never fails
// ABOUTME: Truncates input, bounds the call with a timeout and degrades to a readable message

package inference

import (
	"context"
	"fmt"
	"strings"
	"time"

	"news-summarizer-api/core/domain"
	"news-summarizer-api/core/interfaces"
)

// SummaryInputLimit caps the characters sent for summarization
const SummaryInputLimit = 1024

// DefaultTimeout bounds each inference call
const DefaultTimeout = 30 * time.Second

// ClientOptions configures the inference clients
type ClientOptions struct {
	Timeout time.Duration
	Logger  interfaces.Logger
}

func (o ClientOptions) withDefaults() ClientOptions {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Logger == nil {
		o.Logger = interfaces.NopLogger{}
	}
	return o
}

// SummarizationClient turns a summarization capability into a Summarizer
type SummarizationClient struct {
	capability SummarizationCapability
	params     SummarizeParams
	timeout    time.Duration
	logger     interfaces.Logger
}

var _ interfaces.Summarizer = (*SummarizationClient)(nil)

// NewSummarizationClient creates a client. A nil capability behaves as if
// credentials were missing.
func NewSummarizationClient(capability SummarizationCapability, opts ClientOptions) *SummarizationClient {
	opts = opts.withDefaults()
	return &SummarizationClient{
		capability: capability,
		params:     DefaultSummarizeParams,
		timeout:    opts.Timeout,
		logger:     opts.Logger,
	}
}

// Summarize returns a summary of text or an unavailability message.
func (c *SummarizationClient) Summarize(ctx context.Context, text string) string {
	if c.capability == nil {
		return SummaryUnavailable(&Error{Kind: KindMissingCredentials})
	}

	input := domain.Truncate(text, SummaryInputLimit)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	summary, err := c.capability.Summarize(ctx, input, c.params)
	if err == nil && strings.TrimSpace(summary) == "" {
		err = &Error{Kind: KindMalformed, Message: "empty summary"}
	}
	if err != nil {
		c.logger.Warn("Summarization degraded", map[string]interface{}{
			"kind":        string(KindOf(err)),
			"error":       err.Error(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return SummaryUnavailable(err)
	}

	return strings.TrimSpace(summary)
}

// SummaryUnavailable renders the message shown in place of a summary
func SummaryUnavailable(err error) string {
	switch KindOf(err) {
	case KindMissingCredentials:
		return "Summary unavailable: the summarization service is not configured with an API token."
	case KindUnauthorized:
		return "Summary unavailable: the summarization service rejected our credentials."
	case KindRateLimited:
		return "Summary unavailable: the summarization service is rate limited. Please try again later."
	case KindLoading:
		return "Summary unavailable: the summarization model is loading. Please try again in a few moments."
	case KindMalformed:
		return "Summary unavailable: the summarization service returned an unexpected response."
	case KindHTTP:
		return fmt.Sprintf("Summary unavailable: the summarization service returned HTTP %d.", statusOf(err))
	case KindTimeout:
		return "Summary unavailable: the summarization service timed out."
	default:
		return "Summary unavailable. Please try again."
	}
}
