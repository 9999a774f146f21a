// ABOUTME: Article fetcher that downloads a page and extracts text plus metadata
// ABOUTME: Uses go-readability for the body and goquery meta tags as a metadata fallback

package reader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"news-summarizer-api/core/domain"
	coreerrors "news-summarizer-api/core/errors"
	"news-summarizer-api/core/interfaces"
	"news-summarizer-api/pkg/featureflags"
	timeutil "news-summarizer-api/pkg/utils/time"
)

const (
	// DefaultCacheTTL bounds how long an extracted article is reused
	DefaultCacheTTL = time.Hour

	maxPageBytes = 5 << 20
	cachePrefix  = "article:"
)

var (
	blankLines    = regexp.MustCompile(`\n{3,}`)
	trailingSpace = regexp.MustCompile(`[ \t]+\n`)
	bylineSplit   = regexp.MustCompile(`(?i)\s*(?:,|\band\b|&)\s*`)
	bylinePrefix  = regexp.MustCompile(`(?i)^\s*by\s+`)
)

// Options configures the fetcher. Zero values are usable.
type Options struct {
	Cache    interfaces.Cache
	CacheTTL time.Duration
	Flags    featureflags.Manager
	Logger   interfaces.Logger
}

// Service implements interfaces.ArticleFetcher
type Service struct {
	http     interfaces.HTTPClient
	cache    interfaces.Cache
	cacheTTL time.Duration
	flags    featureflags.Manager
	logger   interfaces.Logger
}

var _ interfaces.ArticleFetcher = (*Service)(nil)

// NewService creates an article fetcher on top of the shared HTTP client
func NewService(httpClient interfaces.HTTPClient, opts Options) *Service {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.Logger == nil {
		opts.Logger = interfaces.NopLogger{}
	}
	return &Service{
		http:     httpClient,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		flags:    opts.Flags,
		logger:   opts.Logger,
	}
}

// Fetch downloads rawURL and returns the extracted record. Every failure is a
// *errors.FetchError. A record with empty Text is not an error here; the
// orchestrator decides what an empty extraction means.
func (s *Service) Fetch(ctx context.Context, rawURL string) (domain.ArticleRecord, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil || (pageURL.Scheme != "http" && pageURL.Scheme != "https") || pageURL.Host == "" {
		return domain.ArticleRecord{}, &coreerrors.FetchError{URL: rawURL, Cause: "invalid URL", Err: err}
	}

	if record, ok := s.fromCache(ctx, rawURL); ok {
		return record, nil
	}

	body, err := s.download(ctx, rawURL)
	if err != nil {
		return domain.ArticleRecord{}, err
	}

	record := s.extract(body, pageURL)
	record.URL = rawURL

	if record.Text != "" {
		s.toCache(ctx, rawURL, record)
	}

	return record, nil
}

func (s *Service) download(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := s.http.Get(ctx, rawURL, map[string]string{
		"Accept":          "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
	})
	if err != nil {
		return nil, &coreerrors.FetchError{URL: rawURL, Cause: "download failed", Err: err}
	}
	defer resp.Body().Close()

	if status := resp.StatusCode(); status < 200 || status > 299 {
		return nil, &coreerrors.FetchError{URL: rawURL, Cause: fmt.Sprintf("%d response from server", status)}
	}

	if ct := strings.ToLower(resp.Header("Content-Type")); ct != "" && !strings.Contains(ct, "html") {
		return nil, &coreerrors.FetchError{URL: rawURL, Cause: fmt.Sprintf("unsupported content type %q", ct)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxPageBytes))
	if err != nil {
		return nil, &coreerrors.FetchError{URL: rawURL, Cause: "read failed", Err: err}
	}
	return body, nil
}

// extract runs readability and fills gaps from meta tags
func (s *Service) extract(body []byte, pageURL *url.URL) domain.ArticleRecord {
	var record domain.ArticleRecord
	var byline string

	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		s.logger.Debug("Readability extraction failed", map[string]interface{}{
			"url":   pageURL.String(),
			"error": err.Error(),
		})
	} else {
		record.Title = strings.TrimSpace(article.Title)
		record.Text = cleanText(article.TextContent)
		byline = article.Byline
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return record
	}

	if record.Title == "" {
		record.Title = firstNonEmpty(
			metaContent(doc, `meta[property="og:title"]`),
			strings.TrimSpace(doc.Find("title").First().Text()),
		)
	}

	record.Author = domain.JoinAuthors(authorsFrom(doc, byline))
	record.PublishedDate = timeutil.FormatPublished(publishedFrom(doc))

	return record
}

func authorsFrom(doc *goquery.Document, byline string) []string {
	var authors []string

	doc.Find(`meta[name="author"], meta[property="article:author"], meta[name="byl"]`).Each(func(_ int, sel *goquery.Selection) {
		content, _ := sel.Attr("content")
		authors = append(authors, splitByline(content)...)
	})

	if len(authors) == 0 {
		authors = splitByline(byline)
	}
	return authors
}

// splitByline turns "By Jane Doe and John Roe" into names; profile URLs are dropped
func splitByline(byline string) []string {
	byline = strings.TrimSpace(bylinePrefix.ReplaceAllString(byline, ""))
	if byline == "" || strings.HasPrefix(byline, "http://") || strings.HasPrefix(byline, "https://") {
		return nil
	}
	var names []string
	for _, part := range bylineSplit.Split(byline, -1) {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

func publishedFrom(doc *goquery.Document) string {
	for _, selector := range []string{
		`meta[property="article:published_time"]`,
		`meta[name="date"]`,
		`meta[itemprop="datePublished"]`,
		`meta[name="pubdate"]`,
		`meta[name="publish-date"]`,
	} {
		if v := metaContent(doc, selector); v != "" {
			return v
		}
	}
	if v, ok := doc.Find("time[datetime]").First().Attr("datetime"); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func metaContent(doc *goquery.Document, selector string) string {
	v, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// cleanText trims and collapses runs of blank lines
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = trailingSpace.ReplaceAllString(text, "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func (s *Service) cacheEnabled(ctx context.Context) bool {
	if s.cache == nil {
		return false
	}
	if s.flags == nil {
		return true
	}
	return s.flags.IsEnabled(ctx, featureflags.CacheEnabled)
}

func (s *Service) fromCache(ctx context.Context, rawURL string) (domain.ArticleRecord, bool) {
	if !s.cacheEnabled(ctx) {
		return domain.ArticleRecord{}, false
	}

	data, err := s.cache.Get(ctx, cachePrefix+rawURL)
	if err != nil {
		return domain.ArticleRecord{}, false
	}

	var record domain.ArticleRecord
	if err := json.Unmarshal(data, &record); err != nil {
		s.logger.Warn("Discarding unreadable cached article", map[string]interface{}{"url": rawURL})
		_ = s.cache.Delete(ctx, cachePrefix+rawURL)
		return domain.ArticleRecord{}, false
	}

	s.logger.Debug("Article cache hit", map[string]interface{}{"url": rawURL})
	return record, true
}

func (s *Service) toCache(ctx context.Context, rawURL string, record domain.ArticleRecord) {
	if !s.cacheEnabled(ctx) {
		return
	}

	data, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cachePrefix+rawURL, data, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache article", map[string]interface{}{
			"url":   rawURL,
			"error": err.Error(),
		})
	}
}
