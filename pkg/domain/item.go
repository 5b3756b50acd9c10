package domain

import "time"

// Article is a raw news item as returned by an upstream news source
type Article struct {
	SourceID    string
	SourceName  string
	Author      string
	Title       string
	Description string
	Content     string
	URL         string
	ImageURL    string
	PublishedAt time.Time // zero if the source did not provide a date
}

// Snippet returns the best available short text of the article, description first
func (a Article) Snippet() string {
	if a.Description != "" {
		return a.Description
	}
	return a.Content
}

// SearchResult is one page of articles from a news source
type SearchResult struct {
	Articles     []Article
	TotalResults int
}
