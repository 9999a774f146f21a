// ABOUTME: Configuration options for the newscheck library client
// ABOUTME: Provides functional options over the pipeline's collaborators

package newscheck

import (
	"errors"
	"time"

	"news-summarizer-api/core/inference"
	"news-summarizer-api/core/interfaces"
	"news-summarizer-api/core/workers"
	"news-summarizer-api/pkg/featureflags"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	interfaces.Dependencies

	Flags featureflags.Manager

	// Hosted inference settings, used unless capabilities are supplied directly
	APIToken            string
	InferenceBaseURL    string
	SummarizationModel  string
	ClassificationModel string
	RequestsPerSecond   float64
	InferenceTimeout    time.Duration
	// InferenceHTTPClient carries inference calls; nil gets a client with no
	// overall timeout so InferenceTimeout alone bounds each call
	InferenceHTTPClient interfaces.HTTPClient

	// Capability overrides, mainly for tests and alternative backends
	Summarization  inference.SummarizationCapability
	Classification inference.ClassificationCapability

	// Fetcher overrides the built-in article fetcher
	Fetcher  interfaces.ArticleFetcher
	CacheTTL time.Duration

	// HistoryStore enables asynchronous history recording
	HistoryStore interfaces.HistoryStore
	WorkerConfig workers.WorkerConfig
}

// WithCache sets the article cache; nil disables caching
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithCacheTTL sets how long fetched articles are reused
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl < 0 {
			return errors.New("cache TTL cannot be negative")
		}
		c.CacheTTL = ttl
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client for page fetches
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return errors.New("HTTP client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithInferenceHTTPClient sets the HTTP client used for hosted inference
// calls. Its own timeout must not be shorter than the inference timeout.
func WithInferenceHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return errors.New("inference HTTP client cannot be nil")
		}
		c.InferenceHTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithFlags sets the feature flag manager
func WithFlags(flags featureflags.Manager) Option {
	return func(c *Config) error {
		c.Flags = flags
		return nil
	}
}

// WithAPIToken sets the hosted inference credential
func WithAPIToken(token string) Option {
	return func(c *Config) error {
		c.APIToken = token
		return nil
	}
}

// WithInferenceEndpoint overrides the hosted inference base URL
func WithInferenceEndpoint(baseURL string) Option {
	return func(c *Config) error {
		c.InferenceBaseURL = baseURL
		return nil
	}
}

// WithModels selects the summarization and classification models; empty keeps the default
func WithModels(summarization, classification string) Option {
	return func(c *Config) error {
		c.SummarizationModel = summarization
		c.ClassificationModel = classification
		return nil
	}
}

// WithInferenceTimeout bounds each inference call
func WithInferenceTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return errors.New("inference timeout must be positive")
		}
		c.InferenceTimeout = timeout
		return nil
	}
}

// WithRequestsPerSecond throttles outbound inference calls
func WithRequestsPerSecond(rps float64) Option {
	return func(c *Config) error {
		c.RequestsPerSecond = rps
		return nil
	}
}

// WithCapabilities replaces the hosted inference adapters
func WithCapabilities(summarization inference.SummarizationCapability, classification inference.ClassificationCapability) Option {
	return func(c *Config) error {
		c.Summarization = summarization
		c.Classification = classification
		return nil
	}
}

// WithFetcher replaces the built-in article fetcher
func WithFetcher(fetcher interfaces.ArticleFetcher) Option {
	return func(c *Config) error {
		c.Fetcher = fetcher
		return nil
	}
}

// WithHistoryStore records every successful analysis into store
func WithHistoryStore(store interfaces.HistoryStore, config workers.WorkerConfig) Option {
	return func(c *Config) error {
		c.HistoryStore = store
		c.WorkerConfig = config
		return nil
	}
}
