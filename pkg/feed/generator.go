package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/dm601990/syntheticwisdom/pkg/domain"
)

// maxRelated limits related links listed per item
const maxRelated = 3

// Generator creates RSS feeds from enriched news pages
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 feed from a news page of a topic
func (g *Generator) GenerateRSS(page domain.NewsPage) (string, error) {
	topic := page.Topic
	if topic == "" {
		topic = "general"
	}

	rssItems := make([]*RSSItem, 0, len(page.Articles))
	for _, a := range page.Articles {
		rssItems = append(rssItems, g.convertToRSSItem(a, domain.RelatedArticles(a, page.Articles)))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         fmt.Sprintf("Synthetic Wisdom - %s", topic),
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("AI-enriched news about %s", topic),
			AtomLink:      &AtomLink{Href: fmt.Sprintf("%s/rss/%s", g.baseURL, topic), Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

// convertToRSSItem converts an enriched article to an RSS item, listing related articles in the description
func (g *Generator) convertToRSSItem(a domain.ArticleRecord, related []domain.ArticleRecord) *RSSItem {
	desc := fmt.Sprintf("Sentiment: %s (%.2f)", a.SentimentLabel, a.SentimentScore)
	var categories []string
	if a.Category != nil {
		desc += " | Category: " + *a.Category
		categories = append(categories, *a.Category)
	}
	if len(a.Entities) > 0 {
		desc += "\nEntities: " + strings.Join(a.Entities, ", ")
	}
	desc += fmt.Sprintf("\nRead time: %d min", a.ReadTime)
	desc += "\n\n" + a.Summary

	if len(related) > 0 {
		desc += "\n\nRelated:"
		for _, r := range related[:min(len(related), maxRelated)] {
			desc += fmt.Sprintf("\n- %s (%s)", r.Title, r.URL)
		}
	}

	pubDate := a.PublicationDate
	if t, err := time.Parse(time.RFC3339, a.PublicationDate); err == nil {
		pubDate = t.Format(time.RFC1123Z)
	}

	item := &RSSItem{
		Title:       a.Title,
		Link:        a.URL,
		GUID:        a.ID,
		Description: desc,
		PubDate:     pubDate,
		Categories:  categories,
	}
	if a.ImageURL != "" {
		item.Enclosure = &Enclosure{URL: a.ImageURL, Type: imageType(a.ImageURL)}
	}
	return item
}

// imageType guesses the mime type of an image by its extension, jpeg if unknown
func imageType(url string) string {
	path, _, _ := strings.Cut(strings.ToLower(url), "?")
	switch {
	case strings.HasSuffix(path, ".png"):
		return "image/png"
	case strings.HasSuffix(path, ".gif"):
		return "image/gif"
	case strings.HasSuffix(path, ".webp"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// GenerateOPML creates an OPML file with the configured feed subscriptions
func (g *Generator) GenerateOPML(feeds []domain.Feed) (string, error) {
	type outline struct {
		XMLName xml.Name `xml:"outline"`
		Text    string   `xml:"text,attr"`
		Title   string   `xml:"title,attr"`
		Type    string   `xml:"type,attr"`
		XMLUrl  string   `xml:"xmlUrl,attr"`
	}

	type body struct {
		XMLName  xml.Name  `xml:"body"`
		Outlines []outline `xml:"outline"`
	}

	type head struct {
		XMLName     xml.Name `xml:"head"`
		Title       string   `xml:"title"`
		DateCreated string   `xml:"dateCreated"`
	}

	type opml struct {
		XMLName xml.Name `xml:"opml"`
		Version string   `xml:"version,attr"`
		Head    head     `xml:"head"`
		Body    body     `xml:"body"`
	}

	outlines := make([]outline, 0, len(feeds))
	for _, f := range feeds {
		name := f.Name
		if name == "" {
			name = f.URL
		}
		outlines = append(outlines, outline{Text: name, Title: name, Type: "rss", XMLUrl: f.URL})
	}

	doc := opml{
		Version: "2.0",
		Head:    head{Title: "Synthetic Wisdom Feed Sources", DateCreated: g.now().Format(time.RFC1123Z)},
		Body:    body{Outlines: outlines},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal OPML: %w", err)
	}
	return xml.Header + string(output), nil
}
