// Package analysis synthesizes a cross-article analysis of a topic with the generative provider.
// Results are kept in the shared cache store, keyed by topic and the set of article ids.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/dm601990/syntheticwisdom/pkg/cache"
	"github.com/dm601990/syntheticwisdom/pkg/llm"
)

const (
	minArticles  = 2
	defaultTopic = "general"
)

// errors reported by Analyze, each maps to a distinct client response
var (
	ErrTooFewArticles = errors.New("at least 2 articles are required for cross-article analysis")
	ErrNoJSON         = errors.New("ai response did not contain valid json")
	ErrBadJSON        = errors.New("failed to parse ai analysis")
)

// Article is the part of an enriched article used for analysis, as posted by the client
type Article struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Summary         string   `json:"summary"`
	Description     string   `json:"description,omitempty"`
	PublicationDate string   `json:"publicationDate"`
	SourceName      string   `json:"sourceName"`
	Entities        []string `json:"entities"`
	SentimentLabel  string   `json:"sentimentLabel"`
}

// Request asks for an analysis of articles about topic
type Request struct {
	Articles []Article `json:"articles"`
	Topic    string    `json:"topic"`
}

// Analysis is the provider's synthesis of the articles
type Analysis struct {
	SynthesizedSummary string   `json:"synthesizedSummary"`
	Trends             []string `json:"trends"`
	Contradictions     []string `json:"contradictions"`
	KeyEntities        []string `json:"keyEntities"`
	OverallSentiment   string   `json:"overallSentiment"`
	ConfidenceScore    float64  `json:"confidenceScore"`
}

// Meta describes the analyzed set
type Meta struct {
	ArticleCount int       `json:"articleCount"`
	Topic        string    `json:"topic"`
	GeneratedAt  time.Time `json:"generatedAt"`
	Sources      []string  `json:"sources"`
}

// Response is an analysis with its metadata
type Response struct {
	Analysis Analysis `json:"analysis"`
	Meta     Meta     `json:"meta"`
}

// digest is what the provider sees of each article
type digest struct {
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Date      string   `json:"date"`
	Source    string   `json:"source"`
	Entities  []string `json:"entities"`
	Sentiment string   `json:"sentiment"`
}

// Params defines dependencies of Analyzer
type Params struct {
	Provider llm.Provider // nil if no provider is configured
	Store    *cache.Store
	TTL      time.Duration    // lifetime of cached analyses, 24h if zero
	Now      func() time.Time // clock, time.Now if nil
}

// Analyzer runs and caches topic analyses
type Analyzer struct {
	provider llm.Provider
	results  *cache.Bucket[Response]
	ttl      time.Duration
	now      func() time.Time
}

// New makes an Analyzer
func New(p Params) *Analyzer {
	if p.TTL <= 0 {
		p.TTL = 24 * time.Hour
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	return &Analyzer{provider: p.Provider, results: cache.NewBucket[Response](p.Store, cache.KindGeneric), ttl: p.TTL, now: p.Now}
}

// Analyze returns the cached analysis of the request's articles or asks the provider for one.
// Returns ErrTooFewArticles for less than two articles and llm.ErrNotConfigured without a provider.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Response, error) {
	if len(req.Articles) < minArticles {
		return nil, ErrTooFewArticles
	}
	if a.provider == nil {
		return nil, llm.ErrNotConfigured
	}

	key := Key(req.Topic, req.Articles)
	if cached, ok := a.results.Get(key); ok {
		lgr.Printf("[DEBUG] topic analysis cache hit for %s", key)
		return &cached, nil
	}

	digests := make([]digest, 0, len(req.Articles))
	for _, art := range req.Articles {
		d := digest{Title: art.Title, Summary: art.Summary, Date: art.PublicationDate, Source: art.SourceName,
			Entities: art.Entities, Sentiment: art.SentimentLabel}
		if d.Summary == "" {
			d.Summary = art.Description
		}
		if d.Entities == nil {
			d.Entities = []string{}
		}
		if d.Sentiment == "" {
			d.Sentiment = "neutral"
		}
		digests = append(digests, d)
	}
	articlesJSON, err := json.MarshalIndent(digests, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal articles: %w", err)
	}

	lgr.Printf("[INFO] generating topic analysis of %d articles for %q", len(req.Articles), topicOrDefault(req.Topic))
	text, err := a.provider.Generate(ctx, llm.TopicAnalysisPrompt(req.Topic, len(req.Articles), string(articlesJSON)))
	if err != nil {
		return nil, fmt.Errorf("generate topic analysis: %w", err)
	}

	raw, ok := llm.ExtractJSON(strings.TrimSpace(text), '{', '}')
	if !ok {
		return nil, ErrNoJSON
	}
	var res Response
	if err := json.Unmarshal([]byte(raw), &res.Analysis); err != nil {
		lgr.Printf("[WARN] can't parse topic analysis: %v", err)
		return nil, ErrBadJSON
	}

	res.Meta = Meta{
		ArticleCount: len(req.Articles),
		Topic:        topicOrDefault(req.Topic),
		GeneratedAt:  a.now().UTC(),
		Sources:      uniqueSources(req.Articles),
	}
	a.results.Set(key, res, a.ttl)
	return &res, nil
}

// Key makes the cache key of an analysis, independent of article order
func Key(topic string, articles []Article) string {
	ids := make([]string, 0, len(articles))
	for _, art := range articles {
		ids = append(ids, art.ID)
	}
	slices.Sort(ids)
	return fmt.Sprintf("topic_analysis:%s:%s", topicOrDefault(topic), strings.Join(ids, "-"))
}

func topicOrDefault(topic string) string {
	if strings.TrimSpace(topic) == "" {
		return defaultTopic
	}
	return topic
}

// uniqueSources lists source names in first-seen order
func uniqueSources(articles []Article) []string {
	res := make([]string, 0, len(articles))
	for _, art := range articles {
		if !slices.Contains(res, art.SourceName) {
			res = append(res, art.SourceName)
		}
	}
	return res
}
