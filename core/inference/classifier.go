// ABOUTME: Zero-shot classification client that never fails
// ABOUTME: Applies the verdict policy to the top-ranked label or degrades to UNSURE

package inference

import (
	"context"
	"fmt"
	"time"

	"news-summarizer-api/core/domain"
	"news-summarizer-api/core/interfaces"
)

// ClassificationInputLimit caps the characters sent for classification
const ClassificationInputLimit = 512

// ClassificationClient turns a zero-shot capability into a Classifier
type ClassificationClient struct {
	capability ClassificationCapability
	timeout    time.Duration
	logger     interfaces.Logger
}

var _ interfaces.Classifier = (*ClassificationClient)(nil)

// NewClassificationClient creates a client. A nil capability behaves as if
// credentials were missing.
func NewClassificationClient(capability ClassificationCapability, opts ClientOptions) *ClassificationClient {
	opts = opts.withDefaults()
	return &ClassificationClient{
		capability: capability,
		timeout:    opts.Timeout,
		logger:     opts.Logger,
	}
}

// Classify returns the verdict for text.
func (c *ClassificationClient) Classify(ctx context.Context, text string) domain.ClassificationOutcome {
	if c.capability == nil {
		return domain.UnsureOutcome(ClassificationUnavailable(&Error{Kind: KindMissingCredentials}))
	}

	input := domain.Truncate(text, ClassificationInputLimit)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.capability.Classify(ctx, input, domain.CandidateLabels, false)
	if err == nil {
		err = checkZeroShot(result)
	}
	if err != nil {
		c.logger.Warn("Classification degraded", map[string]interface{}{
			"kind":  string(KindOf(err)),
			"error": err.Error(),
		})
		return domain.UnsureOutcome(ClassificationUnavailable(err))
	}

	label := result.Labels[0]
	verdict, confidence := domain.DeriveVerdict(label, result.Scores[0])

	return domain.ClassificationOutcome{
		Verdict:    verdict,
		Confidence: confidence,
		RawLabel:   label,
	}
}

func checkZeroShot(result *ZeroShotResult) error {
	if result == nil || len(result.Labels) == 0 {
		return &Error{Kind: KindMalformed, Message: "no labels returned"}
	}
	if len(result.Scores) == 0 {
		return &Error{Kind: KindMalformed, Message: "no scores returned"}
	}
	return nil
}

// ClassificationUnavailable renders the diagnostic for a degraded outcome
func ClassificationUnavailable(err error) string {
	switch kind := KindOf(err); kind {
	case KindMissingCredentials:
		return "classification unavailable: no API token configured"
	case KindUnauthorized:
		return "classification unavailable: credentials rejected"
	case KindRateLimited:
		return "classification unavailable: rate limited"
	case KindLoading:
		return "classification unavailable: model is loading, try again in a few moments"
	case KindMalformed:
		return fmt.Sprintf("classification unavailable: unexpected response (%v)", err)
	case KindHTTP:
		return fmt.Sprintf("classification unavailable: HTTP %d", statusOf(err))
	case KindTimeout:
		return "classification unavailable: request timed out"
	default:
		return fmt.Sprintf("classification unavailable: %v", err)
	}
}
