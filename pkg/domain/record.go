package domain

import (
	"strings"
	"time"
)

// Freshness is a coarse age band of an article
type Freshness string

// freshness bands, by hours since publication
const (
	FreshnessVeryRecent Freshness = "very-recent" // under 6 hours
	FreshnessRecent     Freshness = "recent"      // under 24 hours
	FreshnessNew        Freshness = "new"         // under 3 days
	FreshnessOlder      Freshness = "older"
)

// SentimentLabel is the sentiment class reported by the AI provider
type SentimentLabel string

// sentiment labels
const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNegative SentimentLabel = "Negative"
	SentimentNeutral  SentimentLabel = "Neutral"
)

// ParseSentimentLabel maps a provider label to a known label, case-insensitively.
// Unknown or empty labels map to Neutral.
func ParseSentimentLabel(s string) SentimentLabel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive":
		return SentimentPositive
	case "negative":
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// Sentiment is a score in [0,1] with its label
type Sentiment struct {
	Score float64        `json:"score"`
	Label SentimentLabel `json:"label"`
}

// NeutralSentiment is used whenever sentiment can't be determined
var NeutralSentiment = Sentiment{Score: 0.5, Label: SentimentNeutral}

// Enrichment holds AI-derived signals for one article, cached by article identity
type Enrichment struct {
	Entities  []string  `json:"entities"`
	Sentiment Sentiment `json:"sentiment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ArticleRecord is an enriched article as served to clients
type ArticleRecord struct {
	ID                    string         `json:"id"`
	Title                 string         `json:"title"`
	Summary               string         `json:"summary"`
	Category              *string        `json:"category"`
	PublicationDate       string         `json:"publicationDate"`
	SourceName            string         `json:"sourceName"`
	URL                   string         `json:"url"`
	ImageURL              string         `json:"imageUrl,omitempty"`
	ReadTime              int            `json:"readTime"`
	Freshness             Freshness      `json:"freshness"`
	HoursSincePublication int            `json:"hoursSincePublication"`
	Entities              []string       `json:"entities"`
	SentimentScore        float64        `json:"sentimentScore"`
	SentimentLabel        SentimentLabel `json:"sentimentLabel"`
	AISummary             *string        `json:"aiSummary"` // filled later by the streaming endpoint
	Keywords              []string       `json:"keywords"`
}

// FreshnessFor returns the freshness band for the given age in hours
func FreshnessFor(hours int) Freshness {
	switch {
	case hours < 6:
		return FreshnessVeryRecent
	case hours < 24:
		return FreshnessRecent
	case hours < 72:
		return FreshnessNew
	default:
		return FreshnessOlder
	}
}
