package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm601990/syntheticwisdom/pkg/config"
)

func TestNew(t *testing.T) {
	t.Run("no api key", func(t *testing.T) {
		p, err := New(context.Background(), config.LLMConfig{Provider: config.LLMProviderGemini, Model: "m"})
		require.ErrorIs(t, err, ErrNotConfigured)
		assert.Nil(t, p)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := New(context.Background(), config.LLMConfig{Provider: "other", APIKey: "k"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown llm provider")
	})

	t.Run("openai with retries", func(t *testing.T) {
		p, err := New(context.Background(), config.LLMConfig{Provider: config.LLMProviderOpenAI, APIKey: "k", Model: "m", Retries: 2})
		require.NoError(t, err)
		r, ok := p.(*Retrying)
		require.True(t, ok)
		assert.Equal(t, 3, r.Attempts)
		assert.IsType(t, &OpenAI{}, r.Provider)
	})

	t.Run("gemini without retries", func(t *testing.T) {
		p, err := New(context.Background(), config.LLMConfig{Provider: config.LLMProviderGemini, APIKey: "k", Model: "m"})
		require.NoError(t, err)
		assert.IsType(t, &Gemini{}, p)
	})
}

// flakyProvider fails the first failures calls
type flakyProvider struct {
	fakeProvider
	failures int
	calls    int
}

func (f *flakyProvider) Generate(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("temporary failure")
	}
	return "ok", nil
}

func TestRetrying_Generate(t *testing.T) {
	t.Run("recovers after failures", func(t *testing.T) {
		fp := &flakyProvider{failures: 2}
		r := &Retrying{Provider: fp, Attempts: 3, Delay: time.Millisecond}
		got, err := r.Generate(context.Background(), "p")
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 3, fp.calls)
	})

	t.Run("gives up", func(t *testing.T) {
		fp := &flakyProvider{failures: 10}
		r := &Retrying{Provider: fp, Attempts: 2, Delay: time.Millisecond}
		_, err := r.Generate(context.Background(), "p")
		require.Error(t, err)
		assert.Equal(t, 2, fp.calls)
	})

	t.Run("stream not retried", func(t *testing.T) {
		r := &Retrying{Provider: &fakeProvider{}, Attempts: 5}
		_, err := r.GenerateStream(context.Background(), "p")
		require.Error(t, err)
	})
}
