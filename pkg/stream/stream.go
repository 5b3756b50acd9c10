package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/dm601990/syntheticwisdom/pkg/llm"
)

const thinkingDots = 3

// Article identifies the article to summarize
type Article struct {
	URL     string
	Title   string
	Summary string
}

// Valid reports whether all fields needed for a summary are present
func (a Article) Valid() bool {
	return strings.TrimSpace(a.URL) != "" && strings.TrimSpace(a.Title) != "" && strings.TrimSpace(a.Summary) != ""
}

// Params defines dependencies of Streamer
type Params struct {
	Provider      llm.Provider  // nil if no provider is configured
	ThinkingDelay time.Duration // pause before each thinking dot
	SettleDelay   time.Duration // pause after clearing the thinking text
}

// Streamer runs summary sessions against the generative provider
type Streamer struct {
	provider      llm.Provider
	thinkingDelay time.Duration
	settleDelay   time.Duration
}

// Session is the outcome of one summary stream
type Session struct {
	ID       string
	Article  Article
	Phase    Phase  // last phase sent
	Text     string // real content sent to the client, fallback included
	Fallback bool   // provider failed and the fallback paragraph was sent
	Broken   bool   // client went away, remaining events were dropped
}

// New makes a Streamer
func New(p Params) *Streamer {
	return &Streamer{provider: p.Provider, thinkingDelay: p.ThinkingDelay, settleDelay: p.SettleDelay}
}

// Available reports whether a provider is configured
func (s *Streamer) Available() bool {
	return s.provider != nil
}

// FallbackText is the summary sent when the provider can't produce one
func FallbackText(title string) string {
	return "Unable to generate a detailed summary for this article due to technical limitations. \n\n" +
		fmt.Sprintf("The article titled \"%s\" appears to cover important topics related to AI development and research. ", title) +
		"For more information, please read the full article at the original source."
}

// Serve streams the summary of the article to w until completion or until the client goes away.
// Write failures are not reported as errors, they end the session and cancel the upstream call.
func (s *Streamer) Serve(ctx context.Context, w http.ResponseWriter, a Article) (sess Session) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sess = Session{ID: uuid.NewString(), Article: a}
	var text strings.Builder
	defer func() { sess.Text = text.String() }()

	ew := newEventWriter(w)
	send := func(ev Event) bool {
		if sess.Broken {
			return false
		}
		if err := ew.event(ev); err != nil {
			lgr.Printf("[DEBUG] stream %s closed by client: %v", sess.ID, err)
			sess.Broken = true
			cancel()
			return false
		}
		if ev.Phase != "" {
			sess.Phase = ev.Phase
		}
		return true
	}

	setHeaders(w)
	w.WriteHeader(http.StatusOK)
	if err := ew.comment("keepalive"); err != nil {
		sess.Broken = true
		return sess
	}
	lgr.Printf("[DEBUG] stream %s started for %s", sess.ID, a.URL)

	if !send(Event{Chunk: "Analyzing...", Phase: PhaseThinking}) {
		return sess
	}
	for range thinkingDots {
		if !sleep(ctx, s.thinkingDelay) || !send(Event{Chunk: ".", Phase: PhaseThinking}) {
			return sess
		}
	}
	if !send(Event{Action: ActionClearAll, Phase: PhaseContentStart}) || !sleep(ctx, s.settleDelay) {
		return sess
	}

	if err := s.relay(ctx, a, func(chunk string) bool {
		if !send(Event{Chunk: chunk, Phase: PhaseRealContent}) {
			return false
		}
		text.WriteString(chunk)
		return true
	}); err != nil {
		if sess.Broken {
			return sess
		}
		lgr.Printf("[WARN] stream %s summary of %q failed, sending fallback: %v", sess.ID, a.Title, err)
		fallback := FallbackText(a.Title)
		if !send(Event{Chunk: fallback, Phase: PhaseRealContent}) {
			return sess
		}
		text.WriteString(fallback)
		sess.Fallback = true
	}

	send(Event{Phase: PhaseContentComplete, Done: true})
	lgr.Printf("[DEBUG] stream %s completed, %d chars, fallback %v", sess.ID, text.Len(), sess.Fallback)
	return sess
}

// errEmptySummary is returned by relay if the provider finished without producing any text
var errEmptySummary = errors.New("empty summary")

// relay forwards provider chunks to emit in arrival order. It stops early if emit returns false.
func (s *Streamer) relay(ctx context.Context, a Article, emit func(string) bool) error {
	if s.provider == nil {
		return llm.ErrNotConfigured
	}

	st, err := s.provider.GenerateStream(ctx, llm.SummaryPrompt(a.Title, a.Summary))
	if err != nil {
		return fmt.Errorf("start summary stream: %w", err)
	}
	defer func() { _ = st.Close() }()

	received := 0
	for {
		chunk, err := st.Recv(ctx)
		if errors.Is(err, io.EOF) {
			if received == 0 {
				return errEmptySummary
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("receive summary chunk %d: %w", received+1, err)
		}
		if chunk == "" {
			continue
		}
		received++
		if !emit(chunk) {
			return fmt.Errorf("client gone after chunk %d", received)
		}
	}
}

// sleep waits for d or until ctx is done, false if ctx ended first
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
