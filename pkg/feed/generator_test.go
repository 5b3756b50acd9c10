package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm601990/syntheticwisdom/pkg/domain"
)

func strPtr(s string) *string { return &s }

func testPage() domain.NewsPage {
	return domain.NewsPage{
		Topic: "llm",
		Articles: []domain.ArticleRecord{
			{
				ID: "tc-1", Title: "OpenAI ships agents", Summary: "Agents are here.", URL: "https://tc.example.com/1",
				PublicationDate: "2024-01-01T12:00:00Z", Category: strPtr("Applications & Tools"), ReadTime: 2,
				Entities: []string{"OpenAI", "agents"}, SentimentLabel: domain.SentimentPositive, SentimentScore: 0.8,
				ImageURL: "https://tc.example.com/1.png?w=800",
			},
			{
				ID: "rt-2", Title: "Regulators look at OpenAI", Summary: "EU drafts rules.", URL: "https://rt.example.com/2",
				PublicationDate: "2024-01-01T14:00:00Z", ReadTime: 1, Entities: []string{"OpenAI", "EU"},
				SentimentLabel: domain.SentimentNeutral, SentimentScore: 0.5,
			},
			{
				ID: "bl-3", Title: "Unrelated", Summary: "Nothing in common.", URL: "https://bl.example.com/3",
				PublicationDate: "bad date", ReadTime: 1, SentimentLabel: domain.SentimentNegative, SentimentScore: 0.2,
			},
		},
	}
}

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://example.com")
	generator.now = func() time.Time { return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) }

	t.Run("topic page", func(t *testing.T) {
		rss, err := generator.GenerateRSS(testPage())
		require.NoError(t, err)

		assert.Contains(t, rss, `<?xml version="1.0" encoding="UTF-8"?>`)
		assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
		assert.Contains(t, rss, `<title>Synthetic Wisdom - llm</title>`)
		assert.Contains(t, rss, `<link>https://example.com/</link>`)
		assert.Contains(t, rss, `<description>AI-enriched news about llm</description>`)
		assert.Contains(t, rss, `<link xmlns="http://www.w3.org/2005/Atom" href="https://example.com/rss/llm" rel="self" type="application/rss+xml"></link>`)
		assert.Contains(t, rss, `<lastBuildDate>Tue, 02 Jan 2024 00:00:00 +0000</lastBuildDate>`)

		assert.Contains(t, rss, `<title>OpenAI ships agents</title>`)
		assert.Contains(t, rss, `<guid>tc-1</guid>`)
		assert.Contains(t, rss, `<pubDate>Mon, 01 Jan 2024 12:00:00 +0000</pubDate>`)
		assert.Contains(t, rss, `<category>Applications &amp; Tools</category>`)
		assert.Contains(t, rss, `<enclosure url="https://tc.example.com/1.png?w=800" type="image/png" length="0"></enclosure>`)
		assert.Contains(t, rss, `<pubDate>bad date</pubDate>`, "unparsable date passed as is")
	})

	t.Run("empty page", func(t *testing.T) {
		rss, err := generator.GenerateRSS(domain.NewsPage{})
		require.NoError(t, err)
		assert.Contains(t, rss, `<channel>`)
		assert.Contains(t, rss, `<title>Synthetic Wisdom - general</title>`)
		assert.NotContains(t, rss, `<item>`)
	})

	t.Run("trailing slash in base URL", func(t *testing.T) {
		gen := NewGenerator("https://example.com/")
		rss, err := gen.GenerateRSS(testPage())
		require.NoError(t, err)
		assert.Contains(t, rss, `href="https://example.com/rss/llm"`)
		assert.NotContains(t, rss, `https://example.com//`)
	})
}

func TestGenerator_convertToRSSItem(t *testing.T) {
	generator := NewGenerator("https://example.com")
	page := testPage()

	item := generator.convertToRSSItem(page.Articles[0], domain.RelatedArticles(page.Articles[0], page.Articles))
	assert.Equal(t, "OpenAI ships agents", item.Title)
	assert.Equal(t, "https://tc.example.com/1", item.Link)
	assert.Equal(t, []string{"Applications & Tools"}, item.Categories)
	assert.Equal(t, "Sentiment: Positive (0.80) | Category: Applications & Tools\nEntities: OpenAI, agents\nRead time: 2 min\n\n"+
		"Agents are here.\n\nRelated:\n- Regulators look at OpenAI (https://rt.example.com/2)", item.Description)
	require.NotNil(t, item.Enclosure)
	assert.Equal(t, "image/png", item.Enclosure.Type)

	item = generator.convertToRSSItem(page.Articles[2], nil)
	assert.Nil(t, item.Categories, "uncategorized article")
	assert.Nil(t, item.Enclosure)
	assert.Equal(t, "Sentiment: Negative (0.20)\nRead time: 1 min\n\nNothing in common.", item.Description)
}

func TestImageType(t *testing.T) {
	assert.Equal(t, "image/png", imageType("https://x/a.PNG"))
	assert.Equal(t, "image/gif", imageType("https://x/a.gif?x=1"))
	assert.Equal(t, "image/webp", imageType("https://x/a.webp"))
	assert.Equal(t, "image/jpeg", imageType("https://x/a"))
}

func TestGenerator_GenerateOPML(t *testing.T) {
	generator := NewGenerator("https://example.com")

	opml, err := generator.GenerateOPML([]domain.Feed{
		{URL: "https://technews.com/feed.xml", Name: "Tech News"},
		{URL: "https://sciencedaily.com/rss"},
	})
	require.NoError(t, err)

	assert.Contains(t, opml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, opml, `<opml version="2.0">`)
	assert.Contains(t, opml, `<title>Synthetic Wisdom Feed Sources</title>`)
	assert.Contains(t, opml, `text="Tech News"`)
	assert.Contains(t, opml, `xmlUrl="https://technews.com/feed.xml"`)
	assert.Contains(t, opml, `text="https://sciencedaily.com/rss"`, "url used when name is empty")
}

func TestRSSXMLStructure(t *testing.T) {
	generator := NewGenerator("https://example.com")

	page := domain.NewsPage{Articles: []domain.ArticleRecord{{
		ID: "x-1", Title: "Test & Article <with> Special Characters", Summary: "Summary with <html> tags",
		PublicationDate: "2024-01-01T12:00:00Z", Category: strPtr("Impact & Industry"),
	}}}

	rss, err := generator.GenerateRSS(page)
	require.NoError(t, err)

	assert.Contains(t, rss, "Test &amp; Article &lt;with&gt; Special Characters")
	assert.Contains(t, rss, "Summary with &lt;html&gt; tags")
	assert.Contains(t, rss, "Impact &amp; Industry")
	assert.Regexp(t, `(?s)<rss[^>]*>.*<channel>.*</channel>.*</rss>`, rss)
}
