package newscheck

import (
	"time"

	"news-summarizer-api/core/inference"
	"news-summarizer-api/core/interfaces"
	"news-summarizer-api/core/reader"
	"news-summarizer-api/core/workers"
	"news-summarizer-api/infrastructure/cache/memory"
	httpInfra "news-summarizer-api/infrastructure/http/standard"
	"news-summarizer-api/pkg/featureflags"
)

// DefaultFetchTimeout bounds a page download
const DefaultFetchTimeout = 20 * time.Second

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Dependencies: interfaces.Dependencies{
			Cache:      memory.NewMemoryCache(),
			HTTPClient: httpInfra.NewStandardHTTPClient(DefaultFetchTimeout),
			Logger:     interfaces.NopLogger{},
		},
		Flags:            featureflags.NewStaticManager(featureflags.Defaults),
		InferenceTimeout: inference.DefaultTimeout,
		CacheTTL:         reader.DefaultCacheTTL,
		WorkerConfig:     workers.DefaultWorkerConfig(),
	}
}
