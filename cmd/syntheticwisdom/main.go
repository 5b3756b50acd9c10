package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"maps"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/dm601990/syntheticwisdom/pkg/analysis"
	"github.com/dm601990/syntheticwisdom/pkg/cache"
	"github.com/dm601990/syntheticwisdom/pkg/config"
	"github.com/dm601990/syntheticwisdom/pkg/llm"
	"github.com/dm601990/syntheticwisdom/pkg/news"
	"github.com/dm601990/syntheticwisdom/pkg/scheduler"
	"github.com/dm601990/syntheticwisdom/pkg/stream"
	"github.com/dm601990/syntheticwisdom/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	log.Printf("[INFO] starting syntheticwisdom version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run loads configuration, wires all services and serves until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	// hide secrets from logs
	setupLog(opts.Debug, secrets(cfg)...)

	store := cache.New(cache.Options{MaxItems: cfg.Cache.MaxItems})
	store.Start(ctx, cfg.Cache.CleanupInterval)
	defer store.Stop()

	provider, err := llm.New(ctx, cfg.LLM)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		lgr.Printf("[WARN] %s api key is not set, AI features are disabled", cfg.LLM.Provider)
		provider = nil
	case err != nil:
		return fmt.Errorf("failed to initialize AI provider: %w", err)
	}

	source, err := newsSource(cfg.News)
	if err != nil {
		return fmt.Errorf("failed to initialize news source: %w", err)
	}

	enricherParams := news.EnricherParams{Store: store, AITTL: cfg.Cache.AITTL}
	if provider != nil {
		enricherParams.Analyzer = &llm.Analyzer{Provider: provider}
	}

	topics := news.NewTopics(cfg.News.Topics)
	newsSvc := news.NewService(news.ServiceParams{
		Source:   source,
		Enricher: news.NewEnricher(enricherParams),
		Store:    store,
		Policy: cache.TTLPolicy{
			Short:    cfg.Cache.TTL.Short,
			Medium:   cfg.Cache.TTL.Medium,
			Long:     cfg.Cache.TTL.Long,
			Extended: cfg.Cache.TTL.Extended,
		},
		Topics:          topics,
		DefaultPageSize: cfg.News.DefaultPageSize,
	})

	if source != nil && cfg.News.Warm.Interval > 0 {
		warmTopics := cfg.News.Warm.Topics
		if len(warmTopics) == 0 {
			warmTopics = slices.Sorted(maps.Keys(topics))
		}
		sched := scheduler.NewScheduler(newsSvc, scheduler.Config{
			Interval: cfg.News.Warm.Interval, Topics: warmTopics, MaxWorkers: cfg.News.Warm.MaxWorkers})
		sched.Start(ctx)
		defer sched.Stop()
	}

	srv := server.New(server.Params{
		Config:     cfg,
		News:       newsSvc,
		Summarizer: stream.New(stream.Params{Provider: provider, ThinkingDelay: cfg.Stream.ThinkingDelay, SettleDelay: cfg.Stream.SettleDelay}),
		Analyzer:   analysis.New(analysis.Params{Provider: provider, Store: store, TTL: cfg.Cache.AnalysisTTL}),
		Cache:      store,
		Version:    revision,
		Debug:      opts.Debug,
	})

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// newsSource makes the configured upstream source. A missing NewsAPI key is not fatal,
// the source stays nil and news requests are answered with a configuration error.
func newsSource(cfg config.NewsConfig) (news.Source, error) {
	if cfg.Provider == config.NewsProviderRSS {
		lgr.Printf("[INFO] using %d rss feeds as news source", len(cfg.Feeds))
		return news.NewRSS(cfg), nil
	}

	src, err := news.NewNewsAPI(cfg)
	if errors.Is(err, news.ErrNoAPIKey) {
		lgr.Printf("[WARN] news api key is not set, news endpoints are disabled")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

// secrets returns configured secret values to be masked in logs
func secrets(cfg *config.Config) []string {
	var res []string
	for _, s := range []string{cfg.News.APIKey, cfg.LLM.APIKey, cfg.Server.AdminKey} {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

