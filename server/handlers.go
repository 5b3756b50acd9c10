package server

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/dm601990/syntheticwisdom/pkg/analysis"
	"github.com/dm601990/syntheticwisdom/pkg/cache"
	"github.com/dm601990/syntheticwisdom/pkg/classify"
	"github.com/dm601990/syntheticwisdom/pkg/llm"
	"github.com/dm601990/syntheticwisdom/pkg/news"
	"github.com/dm601990/syntheticwisdom/pkg/stream"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	st := s.cache.Stats()
	status := map[string]any{
		"status":     "ok",
		"version":    s.version,
		"time":       time.Now().UTC(),
		"ai":         s.summarizer.Available(),
		"cache":      cache.CheckHealth(st).Status,
		"categories": classify.AllCategories(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// newsHandler serves an enriched page of news, GET /api/news?topic=&page=&pageSize=
func (s *Server) newsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		renderError(w, r, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	q := r.URL.Query()
	req := news.Request{Topic: q.Get("topic"), Page: intParam(q.Get("page")), PageSize: intParam(q.Get("pageSize"))}

	resp, err := s.news.GetNews(r.Context(), req)
	if err != nil {
		if errors.Is(err, news.ErrNoAPIKey) {
			lgr.Printf("[ERROR] news api key is not configured")
			renderError(w, r, http.StatusInternalServerError, "API key not configured.", "")
			return
		}
		lgr.Printf("[ERROR] failed to get news for topic %q: %v", req.Topic, err)
		st := s.cache.Stats()
		renderJSON(w, r, http.StatusInternalServerError, errorResponse{
			Error: "Failed to fetch or process news data.", Details: err.Error(), CacheStats: &st})
		return
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// detailsHandler streams a detailed summary of an article, GET /api/getDetails?url=&title=&summary=
func (s *Server) detailsHandler(w http.ResponseWriter, r *http.Request) {
	if !s.summarizer.Available() {
		stream.WriteError(w, http.StatusServiceUnavailable, "AI Service not available.", "Model initialization failed")
		return
	}

	q := r.URL.Query()
	article := stream.Article{URL: q.Get("url"), Title: q.Get("title"), Summary: q.Get("summary")}
	if !article.Valid() {
		stream.WriteError(w, http.StatusBadRequest, "Missing required article data.", "URL, title, or summary is missing")
		return
	}

	sess := s.summarizer.Serve(r.Context(), w, article)
	if sess.Broken {
		lgr.Printf("[DEBUG] summary stream %s for %s ended by client", sess.ID, article.URL)
	}
}

// cacheStatsHandler reports cache stats on GET and clears the cache on authorized DELETE.
// GET with keys=1 also lists cached keys in recency order, it needs the admin key.
func (s *Server) cacheStatsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		resp := map[string]any{}
		if r.URL.Query().Get("keys") == "1" {
			if ok, reason := s.authorized(r); !ok {
				lgr.Printf("[WARN] cache keys rejected from %s: %s", r.RemoteAddr, reason)
				renderError(w, r, http.StatusUnauthorized, "Unauthorized", reason)
				return
			}
			resp["keys"] = s.cache.Keys()
		}
		st := s.cache.Stats()
		resp["stats"] = st
		resp["cacheHealth"] = cache.CheckHealth(st)
		resp["timestamp"] = time.Now().UTC()
		renderJSON(w, r, http.StatusOK, resp)
	case http.MethodDelete:
		if ok, reason := s.authorized(r); !ok {
			lgr.Printf("[WARN] cache clear rejected from %s: %s", r.RemoteAddr, reason)
			renderError(w, r, http.StatusUnauthorized, "Unauthorized", reason)
			return
		}
		prev := s.cache.Stats()
		removed := s.cache.Clear()
		lgr.Printf("[INFO] cache cleared by admin, %d items removed", removed)
		renderJSON(w, r, http.StatusOK, map[string]any{
			"message":       "Cache cleared successfully",
			"previousStats": prev,
		})
	default:
		w.Header().Set("Allow", "GET, DELETE")
		renderError(w, r, http.StatusMethodNotAllowed, "Method not allowed", "")
	}
}

// authorized checks the admin key from x-admin-key header or key query param.
// Admin requests are disabled if no admin key is configured.
func (s *Server) authorized(r *http.Request) (ok bool, reason string) {
	secret := s.config.GetServerConfig().AdminKey
	if secret == "" {
		return false, "cache clearing is disabled"
	}
	key := r.Header.Get("x-admin-key")
	if key == "" {
		key = r.URL.Query().Get("key")
	}
	if key == "" {
		return false, "admin key is missing"
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
		return false, "invalid admin key"
	}
	return true, ""
}

// topicAnalysisHandler analyzes a set of articles, POST /api/topicAnalysis with {articles, topic}
func (s *Server) topicAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		renderError(w, r, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	var req analysis.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := s.analyzer.Analyze(r.Context(), req)
	switch {
	case err == nil:
		renderJSON(w, r, http.StatusOK, resp)
	case errors.Is(err, analysis.ErrTooFewArticles):
		renderError(w, r, http.StatusBadRequest, "At least 2 articles are required for cross-article analysis", "")
	case errors.Is(err, llm.ErrNotConfigured):
		renderError(w, r, http.StatusServiceUnavailable, "AI model not available", "")
	case errors.Is(err, analysis.ErrBadJSON):
		renderError(w, r, http.StatusInternalServerError, "Failed to parse AI analysis", "")
	case errors.Is(err, analysis.ErrNoJSON):
		renderError(w, r, http.StatusInternalServerError, "AI response did not contain valid JSON", "")
	default:
		lgr.Printf("[ERROR] topic analysis failed: %v", err)
		renderError(w, r, http.StatusInternalServerError, "Failed to generate topic analysis", err.Error())
	}
}

// rssHandler serves the first page of a topic as RSS, supports both /rss/{topic} and /rss?topic=...
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	topic := r.PathValue("topic")
	if topic == "" {
		topic = r.URL.Query().Get("topic")
	}

	resp, err := s.news.GetNews(r.Context(), news.Request{Topic: topic})
	if err != nil {
		lgr.Printf("[ERROR] failed to get news for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := s.generator.GenerateRSS(resp.NewsPage)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// opmlHandler lists the configured rss sources as OPML
func (s *Server) opmlHandler(w http.ResponseWriter, _ *http.Request) {
	opml, err := s.generator.GenerateOPML(s.config.GetNewsConfig().Feeds)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate OPML: %v", err)
		http.Error(w, "Failed to generate OPML", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/x-opml; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\"syntheticwisdom-feeds.opml\"")
	if _, err := w.Write([]byte(opml)); err != nil {
		lgr.Printf("[ERROR] failed to write OPML response: %v", err)
	}
}

// intParam parses a positive integer query param, zero if missing or invalid
func intParam(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
