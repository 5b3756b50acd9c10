package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/dm601990/syntheticwisdom/pkg/config"
	"github.com/dm601990/syntheticwisdom/pkg/domain"
)

// NewsAPI searches newsapi.org style "everything" endpoint
type NewsAPI struct {
	client   *retryablehttp.Client
	endpoint string
	apiKey   string
	language string
}

// NewNewsAPI makes a NewsAPI source, ErrNoAPIKey if the key is not set
func NewNewsAPI(cfg config.NewsConfig) (*NewsAPI, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	return &NewsAPI{
		client:   newHTTPClient(cfg.Timeout, cfg.Retries),
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:   cfg.APIKey,
		language: cfg.Language,
	}, nil
}

// newHTTPClient makes a retrying client, retries of 0 disables retrying
func newHTTPClient(timeout time.Duration, retries int) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = retries
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = timeout
	client.Logger = retryLogger{}
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler // keep the last response to report upstream message
	return client
}

// retryLogger routes retryablehttp messages to lgr at debug level
type retryLogger struct{}

func (retryLogger) Printf(format string, args ...any) {
	format = strings.TrimPrefix(strings.TrimPrefix(format, "[DEBUG] "), "[ERR] ")
	lgr.Printf("[DEBUG] upstream http: "+format, args...)
}

type newsAPIResponse struct {
	Status       string `json:"status"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"source"`
		Author      string `json:"author"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
		Content     string `json:"content"`
	} `json:"articles"`
}

// Search returns one page of articles for query, newest first
func (n *NewsAPI) Search(ctx context.Context, query string, page, pageSize int) (*domain.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", n.language)
	params.Set("sortBy", "publishedAt")
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, n.endpoint+"/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("make news request: %w", err)
	}
	req.Header.Set("X-Api-Key", n.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return nil, fmt.Errorf("news request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read news response: %w", err)
	}

	var data newsAPIResponse
	if err := json.Unmarshal(body, &data); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("news api status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("decode news response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || data.Status == "error" {
		msg := data.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("news api status %d: %s", resp.StatusCode, msg)
	}

	res := &domain.SearchResult{TotalResults: data.TotalResults, Articles: make([]domain.Article, 0, len(data.Articles))}
	for _, a := range data.Articles {
		article := domain.Article{
			SourceID:    a.Source.ID,
			SourceName:  a.Source.Name,
			Author:      a.Author,
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
		}
		if a.PublishedAt != "" {
			if ts, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
				article.PublishedAt = ts
			} else {
				lgr.Printf("[DEBUG] can't parse publishedAt %q of %s: %v", a.PublishedAt, a.URL, err)
			}
		}
		res.Articles = append(res.Articles, article)
	}
	lgr.Printf("[DEBUG] news api returned %d of %d articles for %q page %d", len(res.Articles), res.TotalResults, query, page)
	return res, nil
}
