package news

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/dm601990/syntheticwisdom/pkg/cache"
	"github.com/dm601990/syntheticwisdom/pkg/domain"
)

// maxPageSize is the largest page the upstream accepts
const maxPageSize = 100

// ServiceParams defines dependencies of Service
type ServiceParams struct {
	Source          Source // nil if the news source is not configured
	Enricher        *Enricher
	Store           *cache.Store
	Policy          cache.TTLPolicy
	Topics          Topics
	DefaultPageSize int
}

// Service serves enriched, cached pages of news per topic
type Service struct {
	source          Source
	enricher        *Enricher
	store           *cache.Store
	pages           *cache.Bucket[domain.NewsPage]
	policy          cache.TTLPolicy
	topics          Topics
	defaultPageSize int
}

// Request selects a news page. Zero values take defaults: general topic, page 1, configured page size.
type Request struct {
	Topic    string
	Page     int
	PageSize int
}

// Response is a news page with a snapshot of cache stats taken after serving it
type Response struct {
	domain.NewsPage
	CacheStats cache.Stats `json:"cacheStats"`
}

// NewService makes a news Service
func NewService(p ServiceParams) *Service {
	if p.DefaultPageSize <= 0 {
		p.DefaultPageSize = 20
	}
	if p.Topics == nil {
		p.Topics = NewTopics(nil)
	}
	return &Service{
		source:          p.Source,
		enricher:        p.Enricher,
		store:           p.Store,
		pages:           cache.NewBucket[domain.NewsPage](p.Store, cache.KindNewsAPI),
		policy:          p.Policy,
		topics:          p.Topics,
		defaultPageSize: p.DefaultPageSize,
	}
}

// GetNews returns the requested page from cache, or fetches, enriches and caches it.
// The page lifetime follows the freshest article on it; an empty page is cached with the shortest lifetime.
// A page with degraded enrichment is not cached, the next request retries the failed articles.
// The response echoes the requested topic, unknown topics are searched with the general query.
func (s *Service) GetNews(ctx context.Context, req Request) (*Response, error) {
	if s.source == nil {
		return nil, ErrNoAPIKey
	}

	topic, query := s.topics.Resolve(req.Topic)
	if name := strings.ToLower(strings.TrimSpace(req.Topic)); name != "" {
		topic = name
	}
	page := max(req.Page, 1)
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	pageSize = min(pageSize, maxPageSize)

	key := cache.NewsKey(query, page, pageSize)
	if cached, ok := s.pages.Get(key); ok {
		lgr.Printf("[DEBUG] news cache hit for %s", key)
		cached.Topic = topic // pages are shared by topics with the same query
		return &Response{NewsPage: cached, CacheStats: s.store.Stats()}, nil
	}

	lgr.Printf("[DEBUG] news cache miss for %s, fetching", key)
	result, err := s.source.Search(ctx, query, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("fetch news for %q: %w", topic, err)
	}

	records, degraded := s.enricher.Enrich(ctx, result.Articles)
	total := result.TotalResults
	if total <= 0 {
		total = len(records)
	}
	totalPages := 1
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	newsPage := domain.NewsPage{
		Articles:   records,
		Pagination: domain.Pagination{CurrentPage: page, PageSize: pageSize, TotalResults: total, TotalPages: totalPages},
		Topic:      topic,
	}

	if degraded > 0 {
		lgr.Printf("[WARN] enrichment degraded for %d of %d articles, topic %s page %d not cached", degraded, len(records), topic, page)
		return &Response{NewsPage: newsPage, CacheStats: s.store.Stats()}, nil
	}

	hours := make([]int, len(records))
	for i, r := range records {
		hours[i] = r.HoursSincePublication
	}
	ttl := s.policy.PageTTL(hours)
	s.pages.Set(key, newsPage, ttl)
	lgr.Printf("[INFO] cached %d articles for topic %s page %d, ttl %v", len(records), topic, page, ttl)

	return &Response{NewsPage: newsPage, CacheStats: s.store.Stats()}, nil
}
