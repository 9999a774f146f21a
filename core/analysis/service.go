// ABOUTME: Analysis orchestrator turning a URL or raw text into a summarized, classified result
// ABOUTME: Owns error translation; summarization and classification run as two isolated tasks

package analysis

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"news-summarizer-api/core/domain"
	coreerrors "news-summarizer-api/core/errors"
	"news-summarizer-api/core/interfaces"
	"news-summarizer-api/pkg/featureflags"
)

// MinTextLength is the shortest raw text accepted for analysis, in characters
const MinTextLength = 5

// Dependencies are the collaborators the orchestrator drives.
// Recorder, Flags and Logger are optional.
type Dependencies struct {
	Fetcher    interfaces.ArticleFetcher
	Summarizer interfaces.Summarizer
	Classifier interfaces.Classifier
	Recorder   interfaces.HistoryRecorder
	Flags      featureflags.Manager
	Logger     interfaces.Logger
}

// Service implements interfaces.Analyzer. It holds no per-request state and
// is safe for concurrent use.
type Service struct {
	fetcher    interfaces.ArticleFetcher
	summarizer interfaces.Summarizer
	classifier interfaces.Classifier
	recorder   interfaces.HistoryRecorder
	flags      featureflags.Manager
	logger     interfaces.Logger
}

var _ interfaces.Analyzer = (*Service)(nil)

// NewService creates an orchestrator
func NewService(deps Dependencies) *Service {
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}
	if deps.Flags == nil {
		deps.Flags = featureflags.NewStaticManager(featureflags.Defaults)
	}
	return &Service{
		fetcher:    deps.Fetcher,
		summarizer: deps.Summarizer,
		classifier: deps.Classifier,
		recorder:   deps.Recorder,
		flags:      deps.Flags,
		logger:     deps.Logger,
	}
}

// Analyze runs the pipeline. Errors are *errors.InputError (caller fault)
// or *errors.PipelineError (server fault); neither writes history.
func (s *Service) Analyze(ctx context.Context, input domain.AnalysisInput) (*domain.AnalysisResult, error) {
	start := time.Now()

	in := input.Normalize()
	inputType := in.Type()
	log := s.logger.With(map[string]interface{}{"input_type": string(inputType)})

	var record domain.ArticleRecord
	switch inputType {
	case domain.InputTypeURL:
		fetched, err := s.fetcher.Fetch(ctx, in.URL)
		if err != nil {
			log.Warn("Article fetch failed", map[string]interface{}{
				"url":   in.URL,
				"error": err.Error(),
			})
			return nil, &coreerrors.InputError{Kind: coreerrors.InputFetchFailed, Detail: err.Error(), Err: err}
		}
		fetched.Text = strings.TrimSpace(fetched.Text)
		if fetched.Text == "" {
			log.Warn("Article extraction was empty", map[string]interface{}{"url": in.URL})
			return nil, coreerrors.NewInputError(coreerrors.InputEmptyExtraction)
		}
		record = fetched

	case domain.InputTypeText:
		if domain.CharCount(in.Text) < MinTextLength {
			return nil, coreerrors.NewInputError(coreerrors.InputTooShort)
		}
		record = domain.NewTextRecord(in.Text)

	default:
		return nil, coreerrors.NewInputError(coreerrors.InputNone)
	}

	summary, outcome, err := s.infer(ctx, record.Text)
	if err != nil {
		fields := map[string]interface{}{"error": err.Error()}
		var pipelineErr *coreerrors.PipelineError
		if errors.As(err, &pipelineErr) {
			fields["stage"] = pipelineErr.Stage
			fields["stack"] = pipelineErr.Stack
		}
		log.Error("Analysis pipeline failed", fields)
		return nil, err
	}

	value := in.URL
	if inputType == domain.InputTypeText {
		value = in.Text
	}

	result := &domain.AnalysisResult{
		InputType:      inputType,
		InputValue:     value,
		Title:          record.Title,
		Author:         record.Author,
		PublishedDate:  record.PublishedDate,
		Summary:        summary,
		Classification: outcome,
		DurationMs:     time.Since(start).Milliseconds(),
	}

	fields := map[string]interface{}{
		"verdict":     string(outcome.Verdict),
		"confidence":  outcome.Confidence,
		"duration_ms": result.DurationMs,
	}
	if outcome.Degraded() {
		fields["classification_error"] = outcome.Diagnostic
	}
	log.Info("Analysis completed", fields)

	if s.recorder != nil && s.flags.IsEnabled(ctx, featureflags.HistoryEnabled) {
		s.recorder.Record(ctx, *result)
	}

	return result, nil
}

// infer runs summarization and classification as independent tasks joined
// before returning. A panic in either becomes a PipelineError.
func (s *Service) infer(ctx context.Context, text string) (string, domain.ClassificationOutcome, error) {
	var summary string
	var outcome domain.ClassificationOutcome

	summarize := func() error {
		return guard("summarization", func() { summary = s.summarizer.Summarize(ctx, text) })
	}
	classify := func() error {
		return guard("classification", func() { outcome = s.classifier.Classify(ctx, text) })
	}

	if s.flags.IsEnabled(ctx, featureflags.SequentialInference) {
		if err := summarize(); err != nil {
			return "", domain.ClassificationOutcome{}, err
		}
		if err := classify(); err != nil {
			return "", domain.ClassificationOutcome{}, err
		}
		return summary, outcome, nil
	}

	var g errgroup.Group
	g.Go(summarize)
	g.Go(classify)
	if err := g.Wait(); err != nil {
		return "", domain.ClassificationOutcome{}, err
	}
	return summary, outcome, nil
}

// guard runs fn and converts a panic into a PipelineError
func guard(stage string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &coreerrors.PipelineError{
				Stage:  stage,
				Detail: fmt.Sprint(r),
				Stack:  string(debug.Stack()),
			}
		}
	}()
	fn()
	return nil
}
