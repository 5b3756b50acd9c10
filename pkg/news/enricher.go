package news

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/dm601990/syntheticwisdom/pkg/cache"
	"github.com/dm601990/syntheticwisdom/pkg/classify"
	"github.com/dm601990/syntheticwisdom/pkg/domain"
)

//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . Analyzer

// record defaults for missing upstream fields
const (
	defaultTitle      = "No Title Provided"
	defaultSummary    = "No summary available."
	defaultSourceName = "Unknown Source"
	defaultSourceID   = "src"

	minAnalysisInput = 30 // shorter "Title: ...\nSnippet: ..." inputs are not sent to the provider
	wordsPerMinute   = 200
	snippetToFull    = 3 // snippets are roughly a third of the full article
)

// Analyzer extracts AI signals of an article text
type Analyzer interface {
	ExtractEntities(ctx context.Context, text string) ([]string, error)
	AnalyzeSentiment(ctx context.Context, text string) (domain.Sentiment, error)
}

// EnricherParams defines dependencies of Enricher
type EnricherParams struct {
	Analyzer    Analyzer         // nil disables AI enrichment
	Store       *cache.Store     // shared cache, enrichment is kept under the ai kind
	AITTL       time.Duration    // lifetime of cached enrichment
	Concurrency int              // max articles enriched at once, 10 if zero
	Now         func() time.Time // clock, time.Now if nil
}

// Enricher turns raw articles into ArticleRecords with entities, sentiment, category, read time and freshness
type Enricher struct {
	analyzer     Analyzer
	ai           *cache.Bucket[domain.Enrichment]
	aiTTL        time.Duration
	concurrency  int
	now          func() time.Time
	degradedOnce sync.Once
}

// NewEnricher makes an Enricher
func NewEnricher(p EnricherParams) *Enricher {
	if p.Concurrency <= 0 {
		p.Concurrency = 10
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	if p.AITTL <= 0 {
		p.AITTL = 7 * 24 * time.Hour
	}
	return &Enricher{
		analyzer:    p.Analyzer,
		ai:          cache.NewBucket[domain.Enrichment](p.Store, cache.KindAI),
		aiTTL:       p.AITTL,
		concurrency: p.Concurrency,
		now:         p.Now,
	}
}

// Enrich processes all articles concurrently and returns records in the input order with the number of
// articles whose AI fields degraded to defaults because a provider call failed.
// Failures of a single article never affect siblings.
func (e *Enricher) Enrich(ctx context.Context, articles []domain.Article) (records []domain.ArticleRecord, degraded int) {
	records = make([]domain.ArticleRecord, len(articles))
	failed := make([]bool, len(articles))
	now := e.now()

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, a := range articles {
		g.Go(func() error {
			records[i], failed[i] = e.record(ctx, a, i, now)
			return nil
		})
	}
	_ = g.Wait()

	for _, f := range failed {
		if f {
			degraded++
		}
	}
	return records, degraded
}

func (e *Enricher) record(ctx context.Context, a domain.Article, index int, now time.Time) (domain.ArticleRecord, bool) {
	published := a.PublishedAt
	if published.IsZero() {
		published = now
	}
	hours := max(0, int(math.Floor(now.Sub(published).Hours())))

	title := CleanText(a.Title)
	snippet := CleanText(a.Snippet())
	enrichment, failed := e.enrichment(ctx, a, title, snippet)

	rec := domain.ArticleRecord{
		ID:                    fmt.Sprintf("%s-%d-%d", valueOr(a.SourceID, defaultSourceID), published.UnixMilli(), index),
		Title:                 valueOr(title, defaultTitle),
		Summary:               valueOr(snippet, defaultSummary),
		PublicationDate:       published.UTC().Format(time.RFC3339),
		SourceName:            valueOr(a.SourceName, defaultSourceName),
		URL:                   a.URL,
		ImageURL:              a.ImageURL,
		ReadTime:              ReadTime(snippet),
		Freshness:             domain.FreshnessFor(hours),
		HoursSincePublication: hours,
		Entities:              enrichment.Entities,
		SentimentScore:        enrichment.Sentiment.Score,
		SentimentLabel:        enrichment.Sentiment.Label,
		Keywords:              []string{},
	}
	if c, ok := classify.Classify(title, snippet); ok {
		category := string(c)
		rec.Category = &category
	}
	return rec, failed
}

// enrichment returns cached AI signals or asks the analyzer for them, failed is set if a provider call failed.
// Results are cached only if no provider call failed, so a transient failure doesn't pin defaults for days.
func (e *Enricher) enrichment(ctx context.Context, a domain.Article, title, snippet string) (res domain.Enrichment, failed bool) {
	key := cache.ArticleKey(a.URL, a.Title)
	if cached, ok := e.ai.Get(key); ok {
		return cached, false
	}

	res = domain.Enrichment{Entities: []string{}, Sentiment: domain.NeutralSentiment, CreatedAt: e.now()}
	if e.analyzer == nil {
		e.degradedOnce.Do(func() { lgr.Printf("[WARN] ai provider is not configured, articles are served without enrichment") })
		return res, false
	}

	input := fmt.Sprintf("Title: %s\nSnippet: %s", title, snippet)
	if len(input) <= minAnalysisInput {
		e.ai.Set(key, res, e.aiTTL)
		return res, false
	}

	var entitiesErr, sentimentErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		var entities []string
		if entities, entitiesErr = e.analyzer.ExtractEntities(ctx, input); entitiesErr == nil {
			res.Entities = entities
		}
	}()
	go func() {
		defer wg.Done()
		var sentiment domain.Sentiment
		if sentiment, sentimentErr = e.analyzer.AnalyzeSentiment(ctx, input); sentimentErr == nil {
			res.Sentiment = sentiment
		}
	}()
	wg.Wait()

	if entitiesErr != nil || sentimentErr != nil {
		lgr.Printf("[WARN] ai enrichment of %q degraded, entities: %v, sentiment: %v", a.Title, entitiesErr, sentimentErr)
		return res, true
	}
	e.ai.Set(key, res, e.aiTTL)
	return res, false
}

// ReadTime estimates minutes to read the full article from its snippet, at least 1
func ReadTime(snippet string) int {
	words := len(strings.Fields(snippet))
	return max(1, int(math.Ceil(float64(words*snippetToFull)/wordsPerMinute)))
}

func valueOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
