package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm601990/syntheticwisdom/pkg/cache"
	"github.com/dm601990/syntheticwisdom/pkg/domain"
	"github.com/dm601990/syntheticwisdom/pkg/news/mocks"
)

type serviceFixture struct {
	svc      *Service
	store    *cache.Store
	source   *mocks.SourceMock
	analyzer *mocks.AnalyzerMock
	now      time.Time
}

func newServiceFixture(t *testing.T, result *domain.SearchResult, err error) *serviceFixture {
	t.Helper()
	f := &serviceFixture{now: testNow}
	clock := func() time.Time { return f.now }
	f.store = cache.New(cache.Options{MaxItems: 100, Now: clock})
	f.source = &mocks.SourceMock{
		SearchFunc: func(context.Context, string, int, int) (*domain.SearchResult, error) {
			return result, err
		},
	}
	f.analyzer = newAnalyzerMock()
	enricher := NewEnricher(EnricherParams{Analyzer: f.analyzer, Store: f.store, AITTL: 24 * time.Hour, Now: clock})
	f.svc = NewService(ServiceParams{Source: f.source, Enricher: enricher, Store: f.store,
		Policy: cache.DefaultTTLPolicy(), DefaultPageSize: 20})
	return f
}

func TestService_GetNews(t *testing.T) {
	f := newServiceFixture(t, &domain.SearchResult{Articles: testArticles(), TotalResults: 45}, nil)

	resp, err := f.svc.GetNews(context.Background(), Request{Topic: "ml", Page: 2, PageSize: 10})
	require.NoError(t, err)

	require.Len(t, f.source.SearchCalls(), 1)
	call := f.source.SearchCalls()[0]
	assert.Equal(t, "machine learning OR deep learning", call.Query)
	assert.Equal(t, 2, call.Page)
	assert.Equal(t, 10, call.PageSize)

	assert.Equal(t, "ml", resp.Topic)
	assert.Equal(t, domain.Pagination{CurrentPage: 2, PageSize: 10, TotalResults: 45, TotalPages: 5}, resp.Pagination)
	require.Len(t, resp.Articles, 3)
	for _, a := range resp.Articles {
		assert.NotEmpty(t, a.SentimentLabel)
		assert.NotNil(t, a.Entities)
	}
	assert.Equal(t, int64(4), resp.CacheStats.Misses, "one page miss and three enrichment misses")
	assert.InDelta(t, 0, float64(resp.CacheStats.HitRate), 0.001)

	again, err := f.svc.GetNews(context.Background(), Request{Topic: "ml", Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, f.source.SearchCalls(), 1, "served from cache")
	assert.Len(t, f.analyzer.ExtractEntitiesCalls(), 3, "enrichment not repeated")
	assert.Equal(t, resp.NewsPage, again.NewsPage)
	assert.Greater(t, float64(again.CacheStats.HitRate), float64(resp.CacheStats.HitRate))
	assert.InDelta(t, 50, float64(again.CacheStats.NewsAPIHitRate), 0.001, "news layer hit recorded")

	_, err = f.svc.GetNews(context.Background(), Request{Topic: "ml", Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, f.source.SearchCalls(), 2, "other page is a separate key")
	assert.Len(t, f.analyzer.ExtractEntitiesCalls(), 3, "same articles reuse cached enrichment")
}

func TestService_PageTTLFollowsFreshestArticle(t *testing.T) {
	f := newServiceFixture(t, &domain.SearchResult{Articles: testArticles(), TotalResults: 3}, nil)

	_, err := f.svc.GetNews(context.Background(), Request{})
	require.NoError(t, err)

	f.now = testNow.Add(10 * time.Minute)
	_, err = f.svc.GetNews(context.Background(), Request{})
	require.NoError(t, err)
	assert.Len(t, f.source.SearchCalls(), 1, "still valid at expiry instant")

	f.now = testNow.Add(10*time.Minute + time.Second)
	_, err = f.svc.GetNews(context.Background(), Request{})
	require.NoError(t, err)
	assert.Len(t, f.source.SearchCalls(), 2, "freshest article is 2h old, page lives 10 minutes")
}

func TestService_Defaults(t *testing.T) {
	f := newServiceFixture(t, &domain.SearchResult{}, nil)

	resp, err := f.svc.GetNews(context.Background(), Request{Topic: "no-such-topic", Page: -3, PageSize: 500})
	require.NoError(t, err)

	call := f.source.SearchCalls()[0]
	assert.Equal(t, "artificial intelligence", call.Query, "unknown topic resolves to general")
	assert.Equal(t, 1, call.Page)
	assert.Equal(t, 100, call.PageSize, "page size capped")

	assert.Equal(t, "no-such-topic", resp.Topic, "requested topic echoed")
	assert.NotNil(t, resp.Articles)
	assert.Empty(t, resp.Articles)
	assert.Equal(t, domain.Pagination{CurrentPage: 1, PageSize: 100, TotalResults: 0, TotalPages: 1}, resp.Pagination)

	general, err := f.svc.GetNews(context.Background(), Request{Topic: " General ", PageSize: 100})
	require.NoError(t, err)
	assert.Len(t, f.source.SearchCalls(), 1, "same query served from cache")
	assert.Equal(t, "general", general.Topic, "cached page reports the topic of this request")

	_, err = f.svc.GetNews(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, 20, f.source.SearchCalls()[1].PageSize, "configured default page size")
}

func TestService_DegradedPageNotCached(t *testing.T) {
	f := newServiceFixture(t, &domain.SearchResult{Articles: testArticles(), TotalResults: 3}, nil)
	failing := true
	f.analyzer.AnalyzeSentimentFunc = func(context.Context, string) (domain.Sentiment, error) {
		if failing {
			return domain.Sentiment{}, errors.New("provider unavailable")
		}
		return domain.Sentiment{Score: 0.8, Label: domain.SentimentPositive}, nil
	}

	resp, err := f.svc.GetNews(context.Background(), Request{Topic: "ml"})
	require.NoError(t, err)
	require.Len(t, resp.Articles, 3)
	assert.Equal(t, domain.SentimentNeutral, resp.Articles[0].SentimentLabel, "degraded to neutral")
	assert.Len(t, f.analyzer.AnalyzeSentimentCalls(), 3)

	failing = false
	f.now = testNow.Add(5 * time.Minute)
	resp, err = f.svc.GetNews(context.Background(), Request{Topic: "ml"})
	require.NoError(t, err)
	assert.Len(t, f.source.SearchCalls(), 2, "degraded page was not cached")
	assert.Len(t, f.analyzer.AnalyzeSentimentCalls(), 6, "failed articles retried")
	require.Len(t, resp.Articles, 3)
	assert.Equal(t, domain.SentimentPositive, resp.Articles[0].SentimentLabel)

	_, err = f.svc.GetNews(context.Background(), Request{Topic: "ml"})
	require.NoError(t, err)
	assert.Len(t, f.source.SearchCalls(), 2, "recovered page cached")
}

func TestService_TotalFallsBackToArticleCount(t *testing.T) {
	f := newServiceFixture(t, &domain.SearchResult{Articles: testArticles()}, nil)
	resp, err := f.svc.GetNews(context.Background(), Request{PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Pagination.TotalResults)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}

func TestService_Errors(t *testing.T) {
	t.Run("no source", func(t *testing.T) {
		store := cache.New(cache.Options{})
		svc := NewService(ServiceParams{Store: store, Enricher: NewEnricher(EnricherParams{Store: store})})
		_, err := svc.GetNews(context.Background(), Request{})
		require.ErrorIs(t, err, ErrNoAPIKey)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("source failure not cached", func(t *testing.T) {
		f := newServiceFixture(t, nil, errors.New("upstream down"))
		_, err := f.svc.GetNews(context.Background(), Request{Topic: "llm"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `fetch news for "llm"`)
		assert.Contains(t, err.Error(), "upstream down")

		_, err = f.svc.GetNews(context.Background(), Request{Topic: "llm"})
		require.Error(t, err)
		assert.Len(t, f.source.SearchCalls(), 2)
		assert.Equal(t, 0, f.store.Len())
	})
}
