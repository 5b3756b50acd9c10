// Package scheduler periodically refreshes first pages of topics so that readers hit a warm cache.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/dm601990/syntheticwisdom/pkg/news"
)

//go:generate moq -out mocks/news.go -pkg mocks -skip-ensure -fmt goimports . NewsService

// NewsService serves news pages, cached pages are returned without upstream calls
type NewsService interface {
	GetNews(ctx context.Context, req news.Request) (*news.Response, error)
}

// Config holds scheduler configuration
type Config struct {
	Interval   time.Duration
	Topics     []string
	MaxWorkers int
}

// Scheduler requests the first page of every topic on each tick. Pages still in cache are served from it,
// expired ones are fetched and enriched again, so only stale topics cost upstream calls.
type Scheduler struct {
	news       NewsService
	topics     []string
	interval   time.Duration
	maxWorkers int
	wg         sync.WaitGroup
	cancel     context.CancelFunc
}

// NewScheduler creates a new scheduler instance
func NewScheduler(svc NewsService, cfg Config) *Scheduler {
	if cfg.Interval == 0 {
		cfg.Interval = 30 * time.Minute
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 2
	}

	return &Scheduler{
		news:       svc,
		topics:     cfg.Topics,
		interval:   cfg.Interval,
		maxWorkers: cfg.MaxWorkers,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.warmWorker(ctx)

	lgr.Printf("[INFO] scheduler started for %d topics with interval %v", len(s.topics), s.interval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// warmWorker periodically refreshes all topics
func (s *Scheduler) warmWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// run immediately on start
	s.warmAll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.warmAll(ctx)
		}
	}
}

// warmAll requests first pages of all topics and returns the number of topics served successfully
func (s *Scheduler) warmAll(ctx context.Context) int {
	sem := make(chan struct{}, s.maxWorkers)
	var wg sync.WaitGroup
	var ok atomic.Int32

	for _, topic := range s.topics {
		wg.Add(1)
		go func(topic string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			if ctx.Err() != nil {
				return
			}
			if _, err := s.news.GetNews(ctx, news.Request{Topic: topic}); err != nil {
				lgr.Printf("[WARN] failed to warm topic %q: %v", topic, err)
				return
			}
			ok.Add(1)
		}(topic)
	}

	wg.Wait()
	lgr.Printf("[DEBUG] warmed %d of %d topics", ok.Load(), len(s.topics))
	return int(ok.Load())
}
