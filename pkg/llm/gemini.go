package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/dm601990/syntheticwisdom/pkg/config"
)

// Gemini is a provider backed by the Google Gemini API
type Gemini struct {
	models    geminiModels
	model     string
	genConfig *genai.GenerateContentConfig
	cfg       config.LLMConfig
}

// geminiModels is the subset of genai.Models used by the provider
type geminiModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateContentStream(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]
}

// NewGemini makes a Gemini provider from config
func NewGemini(ctx context.Context, cfg config.LLMConfig) (*Gemini, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Endpoint != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.Endpoint}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("new gemini client: %w", err)
	}
	if client == nil || client.Models == nil {
		return nil, fmt.Errorf("new gemini client: models client is nil")
	}
	return newGemini(client.Models, cfg), nil
}

func newGemini(models geminiModels, cfg config.LLMConfig) *Gemini {
	genConfig := &genai.GenerateContentConfig{Temperature: genai.Ptr(float32(cfg.Temperature))}
	if cfg.MaxTokens > 0 {
		genConfig.MaxOutputTokens = int32(cfg.MaxTokens) //nolint:gosec // validated positive, small
	}
	return &Gemini{models: models, model: cfg.Model, genConfig: genConfig, cfg: cfg}
}

// Generate returns the full response text for prompt
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	resp, err := g.models.GenerateContent(ctx, g.model, userContent(prompt), g.genConfig)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini generate: empty response")
	}
	return text, nil
}

// GenerateStream starts a streaming generation, the caller's context is the only deadline
func (g *Gemini) GenerateStream(ctx context.Context, prompt string) (Stream, error) {
	seq := g.models.GenerateContentStream(ctx, g.model, userContent(prompt), g.genConfig)
	if seq == nil {
		return nil, fmt.Errorf("gemini generate stream: stream is nil")
	}
	next, stop := iter.Pull2(seq)
	return &geminiStream{next: next, stop: stop}, nil
}

func userContent(prompt string) []*genai.Content {
	return []*genai.Content{{Role: string(genai.RoleUser), Parts: []*genai.Part{{Text: prompt}}}}
}

// responseText joins text parts of the first candidate, skipping thoughts
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

type geminiStream struct {
	mu     sync.Mutex
	next   func() (*genai.GenerateContentResponse, error, bool)
	stop   func()
	closed bool
}

// Recv returns the next non-empty text chunk, io.EOF when the stream is done
func (s *geminiStream) Recv(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			_ = s.Close()
			return "", fmt.Errorf("gemini stream recv: %w", err)
		}

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return "", io.EOF
		}
		next := s.next
		s.mu.Unlock()

		resp, err, ok := next()
		if !ok {
			_ = s.Close()
			return "", io.EOF
		}
		if err != nil {
			_ = s.Close()
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return "", fmt.Errorf("gemini stream canceled: %w", err)
			}
			return "", fmt.Errorf("gemini stream next: %w", err)
		}
		if text := responseText(resp); text != "" {
			return text, nil
		}
	}
}

// Close stops the underlying iterator, safe to call more than once
func (s *geminiStream) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	stop := s.stop
	s.mu.Unlock()

	stop()
	return nil
}
