package cache

import (
	"fmt"
	"slices"
	"time"
)

// TTLPolicy maps article age to the lifetime of a cached news page
type TTLPolicy struct {
	Short    time.Duration // under 6 hours old
	Medium   time.Duration // under 24 hours old
	Long     time.Duration // under 72 hours old
	Extended time.Duration // everything older
}

// DefaultTTLPolicy returns the standard bands: 10m, 1h, 6h and 24h
func DefaultTTLPolicy() TTLPolicy {
	return TTLPolicy{
		Short:    10 * time.Minute,
		Medium:   time.Hour,
		Long:     6 * time.Hour,
		Extended: 24 * time.Hour,
	}
}

// TTL returns the band for an article published hours ago. Band boundaries belong to the next band.
func (p TTLPolicy) TTL(hours int) time.Duration {
	switch {
	case hours < 6:
		return p.Short
	case hours < 24:
		return p.Medium
	case hours < 72:
		return p.Long
	default:
		return p.Extended
	}
}

// PageTTL returns the TTL for a page of articles with the given ages.
// The freshest article governs the page; an empty page is treated as age 0.
func (p TTLPolicy) PageTTL(hours []int) time.Duration {
	if len(hours) == 0 {
		return p.TTL(0)
	}
	return p.TTL(slices.Min(hours))
}

// NewsKey makes the cache key of a news page
func NewsKey(query string, page, pageSize int) string {
	return fmt.Sprintf("news_api:%s:page%d:size%d", query, page, pageSize)
}

// ArticleKey makes the cache key of an article's AI enrichment, url first, title if url is empty
func ArticleKey(url, title string) string {
	if url != "" {
		return "article:" + url
	}
	return "article:" + title
}
