package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm601990/syntheticwisdom/pkg/config"
	"github.com/dm601990/syntheticwisdom/pkg/domain"
)

const rssFeedA = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Feed A</title>
  <link>https://a.example.com</link>
  <item>
    <title>Machine learning beats humans at chess again</title>
    <link>https://a.example.com/1</link>
    <description>A &lt;b&gt;new&lt;/b&gt; result</description>
    <pubDate>Tue, 01 Apr 2025 10:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Gardening tips for spring</title>
    <link>https://a.example.com/2</link>
    <description>Plant your tulips</description>
    <pubDate>Tue, 01 Apr 2025 11:00:00 GMT</pubDate>
  </item>
</channel>
</rss>`

const rssFeedB = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Feed B</title>
  <link>https://b.example.com</link>
  <item>
    <title>Deep learning in medicine</title>
    <link>https://b.example.com/1</link>
    <description>Hospitals adopt deep learning</description>
    <pubDate>Tue, 01 Apr 2025 12:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Old news on machine learning</title>
    <link>https://b.example.com/2</link>
    <description>From last year</description>
    <pubDate>Mon, 01 Apr 2024 12:00:00 GMT</pubDate>
  </item>
</channel>
</rss>`

func newFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/a.xml":
			w.Header().Set("Content-Type", "application/rss+xml")
			_, _ = w.Write([]byte(rssFeedA))
		case "/b.xml":
			w.Header().Set("Content-Type", "application/rss+xml")
			_, _ = w.Write([]byte(rssFeedB))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestRSS_Search(t *testing.T) {
	ts := newFeedServer(t)
	defer ts.Close()

	src := NewRSS(config.NewsConfig{Timeout: time.Second, Feeds: []domain.Feed{
		{URL: ts.URL + "/a.xml", Name: "Alpha"},
		{URL: ts.URL + "/b.xml"},
	}})

	res, err := src.Search(context.Background(), "machine learning OR deep learning", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalResults)
	require.Len(t, res.Articles, 2)
	assert.Equal(t, "Deep learning in medicine", res.Articles[0].Title, "newest first")
	assert.Equal(t, "Feed B", res.Articles[0].SourceName, "feed title used when name is empty")
	assert.Equal(t, "Machine learning beats humans at chess again", res.Articles[1].Title)
	assert.Equal(t, "Alpha", res.Articles[1].SourceName)
	assert.Equal(t, "https://a.example.com/1", res.Articles[1].URL)

	res, err = src.Search(context.Background(), "machine learning OR deep learning", 2, 2)
	require.NoError(t, err)
	require.Len(t, res.Articles, 1)
	assert.Equal(t, "Old news on machine learning", res.Articles[0].Title)

	res, err = src.Search(context.Background(), "machine learning OR deep learning", 5, 2)
	require.NoError(t, err)
	assert.Empty(t, res.Articles, "page past the end")
	assert.Equal(t, 3, res.TotalResults)
}

func TestRSS_SearchConcurrent(t *testing.T) {
	ts := newFeedServer(t)
	defer ts.Close()

	src := NewRSS(config.NewsConfig{Timeout: time.Second, Feeds: []domain.Feed{
		{URL: ts.URL + "/a.xml"}, {URL: ts.URL + "/b.xml"},
	}})

	var wg sync.WaitGroup
	totals := make([]int, 4)
	errs := make([]error, 4)
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := src.Search(context.Background(), "machine learning", 1, 10)
			errs[i] = err
			if err == nil {
				totals[i] = res.TotalResults
			}
		}()
	}
	wg.Wait()

	for i := range 4 {
		require.NoError(t, errs[i])
		assert.Equal(t, 2, totals[i])
	}
}

func TestRSS_SearchFailures(t *testing.T) {
	ts := newFeedServer(t)
	defer ts.Close()

	t.Run("failed feed skipped", func(t *testing.T) {
		src := NewRSS(config.NewsConfig{Timeout: time.Second, Feeds: []domain.Feed{
			{URL: ts.URL + "/a.xml"}, {URL: ts.URL + "/missing.xml"},
		}})
		res, err := src.Search(context.Background(), "gardening", 1, 10)
		require.NoError(t, err)
		require.Len(t, res.Articles, 1)
		assert.Equal(t, "Gardening tips for spring", res.Articles[0].Title)
	})

	t.Run("all feeds failed", func(t *testing.T) {
		src := NewRSS(config.NewsConfig{Timeout: time.Second, Feeds: []domain.Feed{{URL: ts.URL + "/missing.xml"}}})
		_, err := src.Search(context.Background(), "ai", 1, 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "all 1 feeds failed")
	})
}

func TestQueryTerms(t *testing.T) {
	assert.Equal(t, []string{"ai robotics", "autonomous robots"}, queryTerms("AI robotics OR autonomous robots"))
	assert.Equal(t, []string{"artificial intelligence"}, queryTerms("artificial intelligence"))
	assert.Empty(t, queryTerms(""))
	assert.True(t, matchesAny("anything", nil))
	assert.False(t, matchesAny("nothing here", []string{"robots"}))
}
