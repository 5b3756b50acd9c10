package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/dm601990/syntheticwisdom/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// supported upstream providers
const (
	NewsProviderNewsAPI = "newsapi"
	NewsProviderRSS     = "rss"
	LLMProviderGemini   = "gemini"
	LLMProviderOpenAI   = "openai"
)

// Config holds the application configuration
type Config struct {
	Server ServerConfig `yaml:"server" json:"server" jsonschema:"description=HTTP server configuration"`
	News   NewsConfig   `yaml:"news" json:"news" jsonschema:"description=Upstream news source configuration"`
	LLM    LLMConfig    `yaml:"llm" json:"llm" jsonschema:"description=Generative AI provider configuration"`
	Cache  CacheConfig  `yaml:"cache" json:"cache" jsonschema:"description=In-memory cache configuration"`
	Stream StreamConfig `yaml:"stream" json:"stream" jsonschema:"description=Streaming summary configuration"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen      string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	ReadTimeout time.Duration `yaml:"read_timeout" json:"read_timeout" jsonschema:"default=30s,description=HTTP request read timeout"`
	BaseURL     string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used in RSS links"`
	AdminKey    string        `yaml:"admin_key" json:"admin_key" jsonschema:"description=Secret required to clear the cache, clearing is disabled if empty"`
	Throttle    int           `yaml:"throttle" json:"throttle" jsonschema:"default=100,minimum=0,description=Maximum concurrent requests, 0 disables"`
}

// NewsConfig holds upstream news source settings
type NewsConfig struct {
	Provider        string            `yaml:"provider" json:"provider" jsonschema:"default=newsapi,enum=newsapi,enum=rss,description=News source type"`
	APIKey          string            `yaml:"api_key" json:"api_key" jsonschema:"description=NewsAPI key (can use environment variable)"`
	Endpoint        string            `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://newsapi.org/v2,description=NewsAPI base URL"`
	Language        string            `yaml:"language" json:"language" jsonschema:"default=en,description=Article language"`
	Timeout         time.Duration     `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Upstream request timeout"`
	Retries         int               `yaml:"retries" json:"retries" jsonschema:"default=2,minimum=0,description=Transport retries for upstream requests, 0 disables"`
	DefaultPageSize int               `yaml:"default_page_size" json:"default_page_size" jsonschema:"default=20,minimum=1,maximum=100,description=Page size used when the request has none"`
	Feeds           []domain.Feed     `yaml:"feeds" json:"feeds" jsonschema:"description=Feeds used by the rss provider"`
	Topics          map[string]string `yaml:"topics" json:"topics" jsonschema:"description=Topic to search query map, merged over the built-in topics"`
	Warm            WarmConfig        `yaml:"warm" json:"warm" jsonschema:"description=Periodic refresh of first topic pages"`
}

// WarmConfig holds settings of the topic pages warmer
type WarmConfig struct {
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"description=Refresh interval, 0 disables warming"`
	Topics     []string      `yaml:"topics" json:"topics" jsonschema:"description=Topics to keep warm, all known topics if empty"`
	MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=2,minimum=1,description=Topics refreshed at once"`
}

// LLMConfig holds generative AI provider settings
type LLMConfig struct {
	Provider    string        `yaml:"provider" json:"provider" jsonschema:"default=gemini,enum=gemini,enum=openai,description=Generative AI provider"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key, AI features are disabled if empty"`
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=Custom API base URL (optional)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"default=gemini-1.5-pro-latest,description=Model name"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,minimum=0,maximum=2,description=Sampling temperature"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=1024,minimum=1,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Single-shot request timeout"`
	Retries     int           `yaml:"retries" json:"retries" jsonschema:"default=2,minimum=0,description=Retries of failed single-shot requests"`
}

// CacheConfig holds cache capacity and lifetimes
type CacheConfig struct {
	MaxItems        int            `yaml:"max_items" json:"max_items" jsonschema:"default=500,minimum=1,description=Maximum number of cached items"`
	CleanupInterval time.Duration  `yaml:"cleanup_interval" json:"cleanup_interval" jsonschema:"default=1h,description=Interval of expired items sweep"`
	AITTL           time.Duration  `yaml:"ai_ttl" json:"ai_ttl" jsonschema:"default=168h,description=Lifetime of cached article enrichment"`
	AnalysisTTL     time.Duration  `yaml:"analysis_ttl" json:"analysis_ttl" jsonschema:"default=24h,description=Lifetime of cached topic analysis"`
	TTL             TTLBandsConfig `yaml:"ttl" json:"ttl" jsonschema:"description=News page lifetimes by freshest article age"`
}

// TTLBandsConfig holds news page lifetimes per freshness band
type TTLBandsConfig struct {
	Short    time.Duration `yaml:"short" json:"short" jsonschema:"default=10m,description=Freshest article under 6 hours old"`
	Medium   time.Duration `yaml:"medium" json:"medium" jsonschema:"default=1h,description=Freshest article under 24 hours old"`
	Long     time.Duration `yaml:"long" json:"long" jsonschema:"default=6h,description=Freshest article under 72 hours old"`
	Extended time.Duration `yaml:"extended" json:"extended" jsonschema:"default=24h,description=Older articles"`
}

// StreamConfig holds the cosmetic delays of the summary stream
type StreamConfig struct {
	ThinkingDelay time.Duration `yaml:"thinking_delay" json:"thinking_delay" jsonschema:"default=150ms,description=Delay before each thinking dot"`
	SettleDelay   time.Duration `yaml:"settle_delay" json:"settle_delay" jsonschema:"default=100ms,description=Delay after clearing thinking text"`
}

// Default returns configuration with all defaults set
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:      ":8080",
			ReadTimeout: 30 * time.Second,
			BaseURL:     "http://localhost:8080",
			Throttle:    100,
		},
		News: NewsConfig{
			Provider:        NewsProviderNewsAPI,
			Endpoint:        "https://newsapi.org/v2",
			Language:        "en",
			Timeout:         15 * time.Second,
			Retries:         2,
			DefaultPageSize: 20,
			Warm:            WarmConfig{MaxWorkers: 2},
		},
		LLM: LLMConfig{
			Provider:    LLMProviderGemini,
			Model:       "gemini-1.5-pro-latest",
			Temperature: 0.7,
			MaxTokens:   1024,
			Timeout:     60 * time.Second,
			Retries:     2,
		},
		Cache: CacheConfig{
			MaxItems:        500,
			CleanupInterval: time.Hour,
			AITTL:           7 * 24 * time.Hour,
			AnalysisTTL:     24 * time.Hour,
			TTL: TTLBandsConfig{
				Short:    10 * time.Minute,
				Medium:   time.Hour,
				Long:     6 * time.Hour,
				Extended: 24 * time.Hour,
			},
		},
		Stream: StreamConfig{
			ThinkingDelay: 150 * time.Millisecond,
			SettleDelay:   100 * time.Millisecond,
		},
	}
}

// Load reads configuration from a YAML file. Keys missing in the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// feed names default to url
	for i := range cfg.News.Feeds {
		if cfg.News.Feeds[i].Name == "" {
			cfg.News.Feeds[i].Name = cfg.News.Feeds[i].URL
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema validation is supplementary, warn only
	if err := VerifyAgainstEmbeddedSchema(cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.ReadTimeout < time.Second {
		return fmt.Errorf("server.read_timeout must be at least 1 second")
	}
	if cfg.Server.Throttle < 0 {
		return fmt.Errorf("server.throttle must be non-negative")
	}

	switch cfg.News.Provider {
	case NewsProviderNewsAPI:
		if cfg.News.Endpoint == "" {
			return fmt.Errorf("news.endpoint is required for newsapi provider")
		}
	case NewsProviderRSS:
		if len(cfg.News.Feeds) == 0 {
			return fmt.Errorf("news.feeds is required for rss provider")
		}
	default:
		return fmt.Errorf("unknown news.provider %q", cfg.News.Provider)
	}
	if cfg.News.Retries < 0 {
		return fmt.Errorf("news.retries must be non-negative")
	}
	if cfg.News.DefaultPageSize < 1 || cfg.News.DefaultPageSize > 100 {
		return fmt.Errorf("news.default_page_size must be between 1 and 100")
	}
	if cfg.News.Warm.Interval < 0 {
		return fmt.Errorf("news.warm.interval must be non-negative")
	}
	if cfg.News.Warm.Interval > 0 && cfg.News.Warm.MaxWorkers < 1 {
		return fmt.Errorf("news.warm.max_workers must be at least 1")
	}

	switch cfg.LLM.Provider {
	case LLMProviderGemini, LLMProviderOpenAI:
	default:
		return fmt.Errorf("unknown llm.provider %q", cfg.LLM.Provider)
	}
	if cfg.LLM.APIKey != "" && cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.Retries < 0 {
		return fmt.Errorf("llm.retries must be non-negative")
	}

	if cfg.Cache.MaxItems < 1 {
		return fmt.Errorf("cache.max_items must be at least 1")
	}
	ttls := map[string]time.Duration{
		"cache.cleanup_interval": cfg.Cache.CleanupInterval, "cache.ai_ttl": cfg.Cache.AITTL,
		"cache.analysis_ttl": cfg.Cache.AnalysisTTL, "cache.ttl.short": cfg.Cache.TTL.Short,
		"cache.ttl.medium": cfg.Cache.TTL.Medium, "cache.ttl.long": cfg.Cache.TTL.Long,
		"cache.ttl.extended": cfg.Cache.TTL.Extended,
	}
	for name, d := range ttls {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	if cfg.Stream.ThinkingDelay < 0 || cfg.Stream.SettleDelay < 0 {
		return fmt.Errorf("stream delays must be non-negative")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() ServerConfig {
	return c.Server
}

// GetNewsConfig returns news source configuration
func (c *Config) GetNewsConfig() NewsConfig {
	return c.News
}

// GetLLMConfig returns generative AI configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetCacheConfig returns cache configuration
func (c *Config) GetCacheConfig() CacheConfig {
	return c.Cache
}

// GetStreamConfig returns streaming configuration
func (c *Config) GetStreamConfig() StreamConfig {
	return c.Stream
}
