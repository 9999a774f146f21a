// ABOUTME: Hugging Face inference adapter shared by the summarization and zero-shot capabilities
// ABOUTME: Throttles outbound calls and turns upstream responses into tagged inference errors

package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"news-summarizer-api/core/inference"
	"news-summarizer-api/core/interfaces"
)

const (
	DefaultBaseURL             = "https://router.huggingface.co/hf-inference/models"
	DefaultSummarizationModel  = "facebook/bart-large-cnn"
	DefaultClassificationModel = "facebook/bart-large-mnli"

	// maxResponseBytes bounds how much of an upstream body is read
	maxResponseBytes = 1 << 20
)

// Config holds the adapter settings
type Config struct {
	BaseURL             string
	Token               string
	SummarizationModel  string
	ClassificationModel string
	// RequestsPerSecond throttles outbound calls; zero or less disables throttling
	RequestsPerSecond float64
}

// Client talks to the hosted inference API
type Client struct {
	http    interfaces.HTTPClient
	config  Config
	limiter *rate.Limiter
	logger  interfaces.Logger
}

// NewClient creates an adapter, filling unset models and base URL with defaults
func NewClient(httpClient interfaces.HTTPClient, config Config, logger interfaces.Logger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.SummarizationModel == "" {
		config.SummarizationModel = DefaultSummarizationModel
	}
	if config.ClassificationModel == "" {
		config.ClassificationModel = DefaultClassificationModel
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if config.RequestsPerSecond > 0 {
		burst := int(config.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), burst)
	}

	return &Client{
		http:    httpClient,
		config:  config,
		limiter: limiter,
		logger:  logger,
	}
}

// Configured reports whether an API token is present
func (c *Client) Configured() bool {
	return c.config.Token != ""
}

// Summarizer returns the summarization capability backed by this client
func (c *Client) Summarizer() *Summarizer {
	return &Summarizer{client: c}
}

// ZeroShot returns the zero-shot classification capability backed by this client
func (c *Client) ZeroShot() *ZeroShot {
	return &ZeroShot{client: c}
}

// errorPayload is the body the inference API sends when it cannot serve a request
type errorPayload struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// post sends payload to model and returns the raw success body
func (c *Client) post(ctx context.Context, model string, payload interface{}) ([]byte, error) {
	if c.config.Token == "" {
		return nil, &inference.Error{Kind: inference.KindMissingCredentials}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &inference.Error{Kind: inference.KindTimeout, Message: "waiting for rate limiter", Err: err}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &inference.Error{Kind: inference.KindOther, Message: "encode request", Err: err}
	}

	start := time.Now()
	resp, err := c.http.Do(ctx, http.MethodPost, c.config.BaseURL+"/"+model, bytes.NewReader(body), map[string]string{
		"Authorization": "Bearer " + c.config.Token,
		"Accept":        "application/json",
	})
	if err != nil {
		kind := inference.KindOther
		if inference.KindOf(err) == inference.KindTimeout || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			kind = inference.KindTimeout
		}
		return nil, &inference.Error{Kind: kind, Err: err}
	}
	defer resp.Body().Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body(), maxResponseBytes))
	if err != nil {
		return nil, &inference.Error{Kind: inference.KindOther, Message: "read response", Err: err}
	}

	c.logger.Debug("Inference call finished", map[string]interface{}{
		"model":       model,
		"status":      resp.StatusCode(),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if err := classifyResponse(resp.StatusCode(), raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// classifyResponse maps an upstream status and body to a tagged error, or nil on success
func classifyResponse(status int, raw []byte) error {
	var payload errorPayload
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '{' {
		_ = json.Unmarshal(trimmed, &payload)
	}
	loading := payload.EstimatedTime > 0 || strings.Contains(strings.ToLower(payload.Error), "loading")

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &inference.Error{Kind: inference.KindUnauthorized, StatusCode: status, Message: payload.Error}
	case status == http.StatusTooManyRequests:
		return &inference.Error{Kind: inference.KindRateLimited, StatusCode: status, Message: payload.Error}
	case loading:
		return &inference.Error{Kind: inference.KindLoading, StatusCode: status, Message: loadingMessage(payload)}
	case status < 200 || status > 299:
		return &inference.Error{Kind: inference.KindHTTP, StatusCode: status, Message: payload.Error}
	case payload.Error != "":
		return &inference.Error{Kind: inference.KindOther, StatusCode: status, Message: payload.Error}
	}
	return nil
}

func loadingMessage(p errorPayload) string {
	if p.EstimatedTime > 0 {
		return fmt.Sprintf("%s (estimated %.0fs)", p.Error, p.EstimatedTime)
	}
	return p.Error
}

func malformed(what string, err error) error {
	return &inference.Error{Kind: inference.KindMalformed, Message: what, Err: err}
}
