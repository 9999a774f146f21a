package reader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "news-summarizer-api/core/errors"
	"news-summarizer-api/infrastructure/http/standard"
	"news-summarizer-api/pkg/featureflags"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Site Name | Council Approves New Budget</title>
  <meta property="og:title" content="Council Approves New Budget">
  <meta name="author" content="Jane Doe, John Roe">
  <meta property="article:published_time" content="2024-03-05T14:30:00Z">
</head>
<body>
  <nav>Home | World | Politics</nav>
  <article>
    <h1>Council Approves New Budget</h1>
    <p>The city council voted on Tuesday to approve a new budget that increases spending on public transit and road repairs across every district of the city.</p>
    <p>Supporters of the plan said the additional funding was long overdue, pointing to years of deferred maintenance and growing ridership on the bus network that serves most neighbourhoods.</p>
    <p>Opponents argued that the budget relies on optimistic revenue projections and warned that a downturn could force painful cuts to other services within the next two fiscal years.</p>
    <p>The mayor is expected to sign the budget into law later this week, after which the transit authority will begin publishing a timeline for the first round of projects.</p>
  </article>
  <footer>Copyright 2024</footer>
</body>
</html>`

func serveHTML(t *testing.T, body string, hits *int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestService(opts Options) *Service {
	return NewService(standard.NewStandardHTTPClient(5*time.Second), opts)
}

func TestFetch_ExtractsArticle(t *testing.T) {
	server := serveHTML(t, articleHTML, nil)
	service := newTestService(Options{})

	record, err := service.Fetch(context.Background(), server.URL+"/news/budget")

	require.NoError(t, err)
	assert.Equal(t, server.URL+"/news/budget", record.URL)
	assert.Contains(t, record.Title, "Council Approves New Budget")
	assert.Equal(t, "Jane Doe, John Roe", record.Author)
	assert.Equal(t, "2024-03-05 14:30:00+00:00", record.PublishedDate)
	assert.Contains(t, record.Text, "city council voted on Tuesday")
	assert.NotContains(t, record.Text, "Copyright 2024")
}

func TestFetch_MetaFallbacks(t *testing.T) {
	page := `<html><head>
<meta name="byl" content="By Ana Lima and Ben Ode">
<meta itemprop="datePublished" content="not a real date">
</head><body><article><p>` + strings.Repeat("Short piece of reporting text. ", 20) + `</p></article></body></html>`
	server := serveHTML(t, page, nil)
	service := newTestService(Options{})

	record, err := service.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "Ana Lima, Ben Ode", record.Author)
	assert.Equal(t, "not a real date", record.PublishedDate)
}

func TestFetch_TimeElementDate(t *testing.T) {
	page := `<html><body><article><time datetime="2023-11-02T08:00:00+01:00">Nov 2</time><p>` +
		strings.Repeat("Body text for the article goes here. ", 20) + `</p></article></body></html>`
	server := serveHTML(t, page, nil)
	service := newTestService(Options{})

	record, err := service.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "2023-11-02 08:00:00+01:00", record.PublishedDate)
	assert.Empty(t, record.Author)
}

func TestFetch_EmptyPageIsNotAnError(t *testing.T) {
	server := serveHTML(t, `<html><head><title>Empty</title></head><body></body></html>`, nil)
	service := newTestService(Options{})

	record, err := service.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Empty(t, record.Text)
	assert.Equal(t, "Empty", record.Title)
}

func TestFetch_InvalidURL(t *testing.T) {
	service := newTestService(Options{})

	for _, raw := range []string{"not a url", "ftp://example.com/file", "http://", "://x"} {
		_, err := service.Fetch(context.Background(), raw)
		assert.True(t, coreerrors.IsFetch(err), raw)
	}
}

func TestFetch_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()
	service := newTestService(Options{})

	_, err := service.Fetch(context.Background(), server.URL)

	require.True(t, coreerrors.IsFetch(err))
	assert.Contains(t, err.Error(), "403")
}

func TestFetch_NonHTMLContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()
	service := newTestService(Options{})

	_, err := service.Fetch(context.Background(), server.URL)

	require.True(t, coreerrors.IsFetch(err))
	assert.Contains(t, err.Error(), "unsupported content type")
}

func TestFetch_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()
	service := newTestService(Options{})

	_, err := service.Fetch(context.Background(), url)

	assert.True(t, coreerrors.IsFetch(err))
}

func TestFetch_CachesByURL(t *testing.T) {
	var hits int32
	server := serveHTML(t, articleHTML, &hits)
	cache := newMockCache()
	service := newTestService(Options{Cache: cache})

	first, err := service.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	second, err := service.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Equal(t, first, second)
	assert.Contains(t, cache.data, "article:"+server.URL)
}

func TestFetch_CacheFlagDisabled(t *testing.T) {
	var hits int32
	server := serveHTML(t, articleHTML, &hits)
	cache := newMockCache()
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{featureflags.CacheEnabled: false})
	service := newTestService(Options{Cache: cache, Flags: flags})

	for i := 0; i < 2; i++ {
		_, err := service.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
	assert.Equal(t, 0, cache.gets)
	assert.Equal(t, 0, cache.sets)
}

func TestFetch_CorruptCacheEntryRefetches(t *testing.T) {
	var hits int32
	server := serveHTML(t, articleHTML, &hits)
	cache := newMockCache()
	cache.data["article:"+server.URL] = []byte("{not json")
	service := newTestService(Options{Cache: cache})

	record, err := service.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.NotEmpty(t, record.Text)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestSplitByline(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"By Jane Doe", []string{"Jane Doe"}},
		{"Jane Doe and John Roe", []string{"Jane Doe", "John Roe"}},
		{"Ann Anderson, Bo Li & Cy Wu", []string{"Ann Anderson", "Bo Li", "Cy Wu"}},
		{"https://example.com/staff/jane", nil},
		{"   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, splitByline(tt.in))
		})
	}
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\n\nb", cleanText("  a  \r\n\n\n\n\nb  "))
}
