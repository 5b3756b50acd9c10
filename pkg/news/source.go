// Package news fetches articles from upstream news sources, enriches them with AI signals and
// serves cached pages of enriched articles per topic.
package news

import (
	"context"
	"errors"
	"maps"
	"strings"

	"github.com/dm601990/syntheticwisdom/pkg/domain"
)

//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source

// ErrNoAPIKey is returned when the news source requires an API key and none is configured
var ErrNoAPIKey = errors.New("news api key not configured")

// Source searches an upstream news provider
type Source interface {
	Search(ctx context.Context, query string, page, pageSize int) (*domain.SearchResult, error)
}

// DefaultTopic is used when the request names no topic or an unknown one
const DefaultTopic = "general"

// DefaultTopics maps topics to upstream search queries
var DefaultTopics = map[string]string{
	"general":  "artificial intelligence",
	"llm":      "large language models OR chatgpt OR claude OR gemini",
	"robotics": "AI robotics OR autonomous robots",
	"ml":       "machine learning OR deep learning",
	"business": "AI business applications OR AI startups",
	"ethics":   "AI ethics OR responsible AI",
}

// Topics resolves topic names to search queries
type Topics map[string]string

// NewTopics returns the default topics with custom entries merged over them
func NewTopics(custom map[string]string) Topics {
	res := maps.Clone(DefaultTopics)
	for k, v := range custom {
		res[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return res
}

// Resolve returns the normalized topic and its query. Empty and unknown topics resolve to the general one.
func (t Topics) Resolve(topic string) (name, query string) {
	name = strings.ToLower(strings.TrimSpace(topic))
	if q, ok := t[name]; ok && name != "" {
		return name, q
	}
	return DefaultTopic, t[DefaultTopic]
}
