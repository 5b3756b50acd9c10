package llm

import (
	"context"
	"errors"
	"io"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/dm601990/syntheticwisdom/pkg/config"
)

type modelsStub struct {
	resp    *genai.GenerateContentResponse
	err     error
	steps   []streamStep
	models  []string
	prompts []string
	configs []*genai.GenerateContentConfig
}

type streamStep struct {
	response *genai.GenerateContentResponse
	err      error
}

func (s *modelsStub) record(model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) {
	s.models = append(s.models, model)
	s.configs = append(s.configs, cfg)
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		s.prompts = append(s.prompts, contents[0].Parts[0].Text)
	}
}

func (s *modelsStub) GenerateContent(_ context.Context, model string, contents []*genai.Content,
	cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	s.record(model, contents, cfg)
	return s.resp, s.err
}

func (s *modelsStub) GenerateContentStream(_ context.Context, model string, contents []*genai.Content,
	cfg *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error] {
	s.record(model, contents, cfg)
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for _, step := range s.steps {
			if !yield(step.response, step.err) {
				return
			}
		}
	}
}

func textResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}}}
}

func TestGemini_Generate(t *testing.T) {
	stub := &modelsStub{resp: textResponse(&genai.Part{Text: "thinking...", Thought: true},
		&genai.Part{Text: `{"score": 0.7, `}, &genai.Part{Text: `"label": "Positive"}`})}
	g := newGemini(stub, config.LLMConfig{Model: "gemini-1.5-pro-latest", Temperature: 0.4, MaxTokens: 256})

	got, err := g.Generate(context.Background(), "prompt text")
	require.NoError(t, err)
	assert.Equal(t, `{"score": 0.7, "label": "Positive"}`, got, "text parts joined, thoughts skipped")

	require.Len(t, stub.models, 1)
	assert.Equal(t, "gemini-1.5-pro-latest", stub.models[0])
	assert.Equal(t, []string{"prompt text"}, stub.prompts)
	require.NotNil(t, stub.configs[0].Temperature)
	assert.InDelta(t, 0.4, *stub.configs[0].Temperature, 0.0001)
	assert.Equal(t, int32(256), stub.configs[0].MaxOutputTokens)
}

func TestGemini_GenerateErrors(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		g := newGemini(&modelsStub{err: errors.New("permission denied")}, config.LLMConfig{Model: "m"})
		_, err := g.Generate(context.Background(), "p")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("empty response", func(t *testing.T) {
		g := newGemini(&modelsStub{resp: &genai.GenerateContentResponse{}}, config.LLMConfig{Model: "m"})
		_, err := g.Generate(context.Background(), "p")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty response")
	})
}

func TestGemini_GenerateStream(t *testing.T) {
	t.Run("chunks in order", func(t *testing.T) {
		stub := &modelsStub{steps: []streamStep{
			{response: textResponse(&genai.Part{Text: "One "})},
			{response: &genai.GenerateContentResponse{}},
			{response: textResponse(&genai.Part{Text: "two "}, &genai.Part{Text: "three"})},
		}}
		g := newGemini(stub, config.LLMConfig{Model: "m"})

		stream, err := g.GenerateStream(context.Background(), "summarize")
		require.NoError(t, err)
		defer stream.Close()

		var got []string
		for {
			chunk, err := stream.Recv(context.Background())
			if errors.Is(err, io.EOF) {
				break
			}
			require.NoError(t, err)
			got = append(got, chunk)
		}
		assert.Equal(t, []string{"One ", "two three"}, got)
		assert.Equal(t, []string{"summarize"}, stub.prompts)
	})

	t.Run("mid-stream failure", func(t *testing.T) {
		stub := &modelsStub{steps: []streamStep{
			{response: textResponse(&genai.Part{Text: "partial"})},
			{err: errors.New("backend unavailable")},
		}}
		g := newGemini(stub, config.LLMConfig{Model: "m"})

		stream, err := g.GenerateStream(context.Background(), "p")
		require.NoError(t, err)

		chunk, err := stream.Recv(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "partial", chunk)

		_, err = stream.Recv(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "backend unavailable")

		_, err = stream.Recv(context.Background())
		assert.ErrorIs(t, err, io.EOF, "closed after failure")
		require.NoError(t, stream.Close())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		g := newGemini(&modelsStub{}, config.LLMConfig{Model: "m"})
		stream, err := g.GenerateStream(context.Background(), "p")
		require.NoError(t, err)
		require.NoError(t, stream.Close())
		require.NoError(t, stream.Close())
		_, err = stream.Recv(context.Background())
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("canceled context", func(t *testing.T) {
		stub := &modelsStub{steps: []streamStep{{response: textResponse(&genai.Part{Text: "x"})}}}
		g := newGemini(stub, config.LLMConfig{Model: "m"})
		stream, err := g.GenerateStream(context.Background(), "p")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = stream.Recv(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
