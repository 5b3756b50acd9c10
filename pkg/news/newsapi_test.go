package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm601990/syntheticwisdom/pkg/config"
)

const newsAPIOK = `{
  "status": "ok",
  "totalResults": 57,
  "articles": [
    {
      "source": {"id": "techcrunch", "name": "TechCrunch"},
      "author": "Jane Doe",
      "title": "OpenAI launches new model",
      "description": "The new model is faster.",
      "url": "https://techcrunch.com/a",
      "urlToImage": "https://techcrunch.com/a.jpg",
      "publishedAt": "2025-04-01T10:00:00Z",
      "content": "Full content [+1200 chars]"
    },
    {
      "source": {"id": null, "name": "Blog"},
      "author": null,
      "title": "Robots everywhere",
      "description": null,
      "url": "https://blog.example.com/b",
      "urlToImage": null,
      "publishedAt": "not a date",
      "content": "Robot content"
    }
  ]
}`

func TestNewsAPI_Search(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/everything", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		q := r.URL.Query()
		assert.Equal(t, "machine learning OR deep learning", q.Get("q"))
		assert.Equal(t, "en", q.Get("language"))
		assert.Equal(t, "publishedAt", q.Get("sortBy"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("pageSize"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(newsAPIOK))
	}))
	defer ts.Close()

	src, err := NewNewsAPI(config.NewsConfig{APIKey: "test-key", Endpoint: ts.URL + "/v2/", Language: "en", Timeout: time.Second})
	require.NoError(t, err)

	res, err := src.Search(context.Background(), "machine learning OR deep learning", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 57, res.TotalResults)
	require.Len(t, res.Articles, 2)

	a := res.Articles[0]
	assert.Equal(t, "techcrunch", a.SourceID)
	assert.Equal(t, "TechCrunch", a.SourceName)
	assert.Equal(t, "Jane Doe", a.Author)
	assert.Equal(t, "OpenAI launches new model", a.Title)
	assert.Equal(t, "The new model is faster.", a.Description)
	assert.Equal(t, "https://techcrunch.com/a.jpg", a.ImageURL)
	assert.Equal(t, time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC), a.PublishedAt.UTC())

	b := res.Articles[1]
	assert.Empty(t, b.SourceID, "null id decodes to empty")
	assert.Empty(t, b.Description)
	assert.True(t, b.PublishedAt.IsZero(), "bad date left zero")
	assert.Equal(t, "Robot content", b.Snippet())
}

func TestNewsAPI_Errors(t *testing.T) {
	t.Run("no api key", func(t *testing.T) {
		_, err := NewNewsAPI(config.NewsConfig{Endpoint: "http://localhost"})
		require.ErrorIs(t, err, ErrNoAPIKey)
	})

	t.Run("upstream message reported", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid"}`))
		}))
		defer ts.Close()

		src, err := NewNewsAPI(config.NewsConfig{APIKey: "bad", Endpoint: ts.URL, Timeout: time.Second})
		require.NoError(t, err)
		_, err = src.Search(context.Background(), "ai", 1, 20)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
		assert.Contains(t, err.Error(), "Your API key is invalid")
	})

	t.Run("server error without retries", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`oops`))
		}))
		defer ts.Close()

		src, err := NewNewsAPI(config.NewsConfig{APIKey: "k", Endpoint: ts.URL, Timeout: time.Second, Retries: 0})
		require.NoError(t, err)
		_, err = src.Search(context.Background(), "ai", 1, 20)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("transient error retried", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(newsAPIOK))
		}))
		defer ts.Close()

		src, err := NewNewsAPI(config.NewsConfig{APIKey: "k", Endpoint: ts.URL, Timeout: time.Second, Retries: 2})
		require.NoError(t, err)
		res, err := src.Search(context.Background(), "ai", 1, 20)
		require.NoError(t, err)
		assert.Len(t, res.Articles, 2)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("bad json", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}))
		defer ts.Close()

		src, err := NewNewsAPI(config.NewsConfig{APIKey: "k", Endpoint: ts.URL, Timeout: time.Second})
		require.NoError(t, err)
		_, err = src.Search(context.Background(), "ai", 1, 20)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode news response")
	})
}
