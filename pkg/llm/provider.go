// Package llm wraps generative AI providers used for article enrichment, detailed summaries and topic analysis.
// Two backends are supported, Google Gemini and any OpenAI-compatible API, both behind the same Provider interface.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/dm601990/syntheticwisdom/pkg/config"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider Stream

// ErrNotConfigured is returned when no provider can be made, i.e. the API key is missing
var ErrNotConfigured = errors.New("ai provider not configured")

// Provider generates text for a prompt, either at once or as a stream of chunks
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	GenerateStream(ctx context.Context, prompt string) (Stream, error)
}

// Stream is an in-flight streaming generation. Recv returns io.EOF after the last chunk.
type Stream interface {
	Recv(ctx context.Context) (string, error)
	Close() error
}

// New makes a provider for the configured backend. Single-shot calls are retried cfg.Retries times.
// Returns ErrNotConfigured if the API key is empty.
func New(ctx context.Context, cfg config.LLMConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	var p Provider
	var err error
	switch cfg.Provider {
	case config.LLMProviderGemini, "":
		p, err = NewGemini(ctx, cfg)
	case config.LLMProviderOpenAI:
		p = NewOpenAI(cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	lgr.Printf("[INFO] ai provider %s initialized, model %s", cfg.Provider, cfg.Model)
	if cfg.Retries <= 0 {
		return p, nil
	}
	return &Retrying{Provider: p, Attempts: cfg.Retries + 1}, nil
}

// Retrying repeats failed single-shot generations with backoff. Streams are not retried.
type Retrying struct {
	Provider
	Attempts int
	Delay    time.Duration // initial backoff delay, 100ms if zero
}

// Generate calls the wrapped provider until it succeeds, attempts run out or ctx is done
func (r *Retrying) Generate(ctx context.Context, prompt string) (string, error) {
	delay := r.Delay
	if delay == 0 {
		delay = 100 * time.Millisecond
	}

	var res string
	attempt := 0
	err := repeater.NewBackoff(r.Attempts, delay, repeater.WithMaxDelay(5*time.Second)).Do(ctx, func() error {
		attempt++
		out, err := r.Provider.Generate(ctx, prompt)
		if err != nil {
			lgr.Printf("[DEBUG] ai generate attempt %d failed: %v", attempt, err)
			return err
		}
		res = out
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("generate after %d attempts: %w", attempt, err)
	}
	return res, nil
}
