// ABOUTME: Main client for the newscheck library providing article analysis
// ABOUTME: Builds the same pipeline as the HTTP API without any HTTP surface

package newscheck

import (
	"context"
	"errors"

	"news-summarizer-api/core/analysis"
	"news-summarizer-api/core/domain"
	"news-summarizer-api/core/inference"
	"news-summarizer-api/core/interfaces"
	"news-summarizer-api/core/reader"
	"news-summarizer-api/core/workers"
	httpInfra "news-summarizer-api/infrastructure/http/standard"
	"news-summarizer-api/infrastructure/inference/huggingface"
)

// Version of the newscheck library
const Version = "1.0.0"

// Client is the main entry point for the newscheck library
type Client struct {
	analyzer *analysis.Service
	worker   *workers.HistoryWorker
	config   Config
}

var _ interfaces.Analyzer = (*Client)(nil)

// NewClient creates a client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if config.HTTPClient == nil {
		return nil, errors.New("HTTP client is required")
	}
	if config.Logger == nil {
		config.Logger = interfaces.NopLogger{}
	}

	summarization, classification := config.Summarization, config.Classification
	if summarization == nil || classification == nil {
		inferenceHTTP := config.InferenceHTTPClient
		if inferenceHTTP == nil {
			inferenceHTTP = httpInfra.NewStandardHTTPClient(0)
		}
		hf := huggingface.NewClient(inferenceHTTP, huggingface.Config{
			BaseURL:             config.InferenceBaseURL,
			Token:               config.APIToken,
			SummarizationModel:  config.SummarizationModel,
			ClassificationModel: config.ClassificationModel,
			RequestsPerSecond:   config.RequestsPerSecond,
		}, config.Logger)
		if !hf.Configured() {
			config.Logger.Warn("No inference API token configured; summaries and verdicts will be unavailable", nil)
		}
		if summarization == nil {
			summarization = hf.Summarizer()
		}
		if classification == nil {
			classification = hf.ZeroShot()
		}
	}

	fetcher := config.Fetcher
	if fetcher == nil {
		fetcher = reader.NewService(config.HTTPClient, reader.Options{
			Cache:    config.Cache,
			CacheTTL: config.CacheTTL,
			Flags:    config.Flags,
			Logger:   config.Logger,
		})
	}

	clientOpts := inference.ClientOptions{Timeout: config.InferenceTimeout, Logger: config.Logger}
	deps := analysis.Dependencies{
		Fetcher:    fetcher,
		Summarizer: inference.NewSummarizationClient(summarization, clientOpts),
		Classifier: inference.NewClassificationClient(classification, clientOpts),
		Flags:      config.Flags,
		Logger:     config.Logger,
	}

	client := &Client{config: config}

	if config.HistoryStore != nil {
		client.worker = workers.NewHistoryWorker(config.HistoryStore, config.WorkerConfig, config.Logger)
		if err := client.worker.Start(); err != nil {
			return nil, err
		}
		deps.Recorder = client.worker
	}

	client.analyzer = analysis.NewService(deps)
	return client, nil
}

// Analyze runs the pipeline for one URL or text. Errors satisfy either
// IsInputError or IsPipelineError.
func (c *Client) Analyze(ctx context.Context, input domain.AnalysisInput) (*domain.AnalysisResult, error) {
	return c.analyzer.Analyze(ctx, input)
}

// AnalyzeURL is shorthand for Analyze with a URL input
func (c *Client) AnalyzeURL(ctx context.Context, url string) (*domain.AnalysisResult, error) {
	return c.Analyze(ctx, domain.AnalysisInput{URL: url})
}

// AnalyzeText is shorthand for Analyze with a raw text input
func (c *Client) AnalyzeText(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	return c.Analyze(ctx, domain.AnalysisInput{Text: text})
}

// Close drains pending history writes, bounded by ctx
func (c *Client) Close(ctx context.Context) error {
	if c.worker != nil {
		return c.worker.Stop(ctx)
	}
	return nil
}
