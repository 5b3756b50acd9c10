package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/dm601990/syntheticwisdom/pkg/domain"
)

// Analyzer extracts entities and sentiment of article text with a generative provider.
// Provider failures are returned as errors, unparseable responses give defaults with no error.
type Analyzer struct {
	Provider Provider
}

// ExtractEntities returns the main entities mentioned in text, empty if the response can't be parsed
func (a *Analyzer) ExtractEntities(ctx context.Context, text string) ([]string, error) {
	resp, err := a.Provider.Generate(ctx, EntityPrompt(text))
	if err != nil {
		return []string{}, fmt.Errorf("extract entities: %w", err)
	}

	raw, ok := ExtractJSON(resp, '[', ']')
	if !ok {
		lgr.Printf("[DEBUG] no json array in entities response: %q", truncate(resp, 200))
		return []string{}, nil
	}

	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		lgr.Printf("[DEBUG] can't parse entities response: %v", err)
		return []string{}, nil
	}

	entities := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			entities = append(entities, strings.TrimSpace(s))
		}
	}
	return entities, nil
}

// AnalyzeSentiment returns score and label of text. The provider label is trusted as is, normalized
// to a known label; the score is clamped to [0,1] and defaults to 0.5 if missing.
func (a *Analyzer) AnalyzeSentiment(ctx context.Context, text string) (domain.Sentiment, error) {
	resp, err := a.Provider.Generate(ctx, SentimentPrompt(text))
	if err != nil {
		return domain.NeutralSentiment, fmt.Errorf("analyze sentiment: %w", err)
	}

	raw, ok := ExtractJSON(resp, '{', '}')
	if !ok {
		lgr.Printf("[DEBUG] no json object in sentiment response: %q", truncate(resp, 200))
		return domain.NeutralSentiment, nil
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		lgr.Printf("[DEBUG] can't parse sentiment response: %v", err)
		return domain.NeutralSentiment, nil
	}

	res := domain.NeutralSentiment
	if score, ok := parsed["score"].(float64); ok {
		res.Score = min(max(score, 0), 1)
	}
	if label, ok := parsed["label"].(string); ok {
		res.Label = domain.ParseSentimentLabel(label)
	}
	return res, nil
}

// ExtractJSON returns the substring of s from the first open to the last close delimiter.
// Providers often wrap JSON in prose or code fences, this finds the payload regardless.
func ExtractJSON(s string, open, closing byte) (string, bool) {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, closing)
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
