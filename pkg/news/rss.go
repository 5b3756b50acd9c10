package news

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/dm601990/syntheticwisdom/pkg/config"
	"github.com/dm601990/syntheticwisdom/pkg/domain"
)

// RSS searches a fixed set of RSS/Atom feeds. Every search fetches all feeds, keeps items matching
// any OR-term of the query and pages through them newest first.
type RSS struct {
	feeds   []domain.Feed
	client  *http.Client
	timeout time.Duration
}

// NewRSS makes an RSS source for the configured feeds
func NewRSS(cfg config.NewsConfig) *RSS {
	return &RSS{feeds: cfg.Feeds, client: newHTTPClient(cfg.Timeout, cfg.Retries).StandardClient(), timeout: cfg.Timeout}
}

// Search returns one page of feed items matching query
func (r *RSS) Search(ctx context.Context, query string, page, pageSize int) (*domain.SearchResult, error) {
	var mu sync.Mutex
	var all []domain.Article
	failed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(5)
	for _, f := range r.feeds {
		g.Go(func() error {
			items, err := r.fetch(gctx, f)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				lgr.Printf("[WARN] failed to fetch feed %s: %v", f.URL, err)
				failed++
				return nil
			}
			all = append(all, items...)
			return nil
		})
	}
	_ = g.Wait()

	if len(r.feeds) > 0 && failed == len(r.feeds) {
		return nil, fmt.Errorf("all %d feeds failed", failed)
	}

	terms := queryTerms(query)
	matched := make([]domain.Article, 0, len(all))
	for _, a := range all {
		if matchesAny(a.Title+" "+a.Description+" "+a.Content, terms) {
			matched = append(matched, a)
		}
	}
	slices.SortStableFunc(matched, func(a, b domain.Article) int { return b.PublishedAt.Compare(a.PublishedAt) })

	res := &domain.SearchResult{TotalResults: len(matched), Articles: []domain.Article{}}
	start := (page - 1) * pageSize
	if start < len(matched) {
		res.Articles = matched[start:min(start+pageSize, len(matched))]
	}
	return res, nil
}

func (r *RSS) fetch(ctx context.Context, f domain.Feed) ([]domain.Article, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	// parser keeps lazily built translators, one per fetch
	parser := gofeed.NewParser()
	parser.Client = r.client
	feed, err := parser.ParseURLWithContext(f.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", f.URL, err)
	}

	sourceName := f.Name
	if sourceName == "" {
		sourceName = feed.Title
	}

	items := make([]domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		a := domain.Article{
			SourceName:  sourceName,
			Title:       item.Title,
			Description: item.Description,
			Content:     item.Content,
			URL:         item.Link,
		}
		if item.Author != nil {
			a.Author = item.Author.Name
		}
		if item.Image != nil {
			a.ImageURL = item.Image.URL
		}
		switch {
		case item.PublishedParsed != nil:
			a.PublishedAt = *item.PublishedParsed
		case item.UpdatedParsed != nil:
			a.PublishedAt = *item.UpdatedParsed
		}
		items = append(items, a)
	}
	return items, nil
}

// queryTerms splits "a OR b" into lowercase terms
func queryTerms(query string) []string {
	var res []string
	for _, t := range strings.Split(query, " OR ") {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			res = append(res, t)
		}
	}
	return res
}

// matchesAny reports whether text contains any of the terms, an empty term list matches everything
func matchesAny(text string, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	text = strings.ToLower(text)
	return slices.ContainsFunc(terms, func(t string) bool { return strings.Contains(text, t) })
}
