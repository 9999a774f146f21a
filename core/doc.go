// Package core contains the business logic for the News Summarizer API.
// It does not depend on any web framework and can be embedded directly.
//
// The core package is organized into several sub-packages:
//
// - domain: input, article, verdict and record types plus the verdict policy
// - errors: typed input, pipeline, fetch and validation errors
// - interfaces: contracts for the fetcher, inference clients, stores, cache, HTTP and logger
// - reader: the article fetcher (readability extraction with meta-tag fallback)
// - inference: summarization and zero-shot clients that degrade instead of failing
// - analysis: the orchestrator that runs one analysis end to end
// - workers: the asynchronous history recorder
// - history: history listing and feedback submission
//
// # Usage Example
//
//	import (
//	    "news-summarizer-api/core/analysis"
//	    "news-summarizer-api/core/inference"
//	    "news-summarizer-api/core/reader"
//	)
//
//	svc := analysis.NewService(analysis.Dependencies{
//	    Fetcher:    reader.NewService(httpClient, reader.Options{}),
//	    Summarizer: inference.NewSummarizationClient(summarizer, inference.ClientOptions{}),
//	    Classifier: inference.NewClassificationClient(zeroShot, inference.ClientOptions{}),
//	})
//
//	result, err := svc.Analyze(ctx, domain.AnalysisInput{URL: "https://example.com/story"})
package core
