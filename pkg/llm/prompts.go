package llm

import (
	"fmt"
	"strings"
)

// EntityPrompt asks for the main entities of text as a bare JSON array of strings
func EntityPrompt(text string) string {
	return `Extract the main entities (people, organizations, technologies, key concepts) from the following text.
Return ONLY a JSON array of strings with no explanation, commentary, or other text.
Example response format: ["OpenAI", "Microsoft", "GPT-4", "Artificial Intelligence"]

Input Text:
"` + text + `"`
}

// SentimentPrompt asks for a sentiment score and label of text as a bare JSON object
func SentimentPrompt(text string) string {
	return `Analyze the sentiment of the following text. Provide:
1. A sentiment score from 0.0 (extremely negative) to 1.0 (extremely positive), where 0.5 is neutral
2. A sentiment label: "Positive", "Negative", or "Neutral"

Return ONLY a JSON object with these properties and no other text.
Example: {"score": 0.8, "label": "Positive"}

Input Text:
"` + text + `"`
}

// SummaryPrompt asks for a multi-paragraph summary grounded only in the title and snippet
func SummaryPrompt(title, snippet string) string {
	return fmt.Sprintf(`Act as a sharp, insightful commentator for "Synthetic Wisdom".
Based ONLY on the following title and snippet, write a well-structured and detailed summary `+
		`(approx 4-5 paragraphs, aiming for 250-300 words) in an engaging tone. `+
		`Inject personality only if appropriate. Ground all statements firmly in the provided text.

Input Text:
Title: "%s"
Snippet: "%s"

Detailed Summary:`, title, snippet)
}

// TopicAnalysisPrompt asks for a cross-article analysis as a JSON object.
// articlesJSON is the indented JSON of the article digests.
func TopicAnalysisPrompt(topic string, count int, articlesJSON string) string {
	if strings.TrimSpace(topic) == "" {
		topic = "AI technology"
	}
	return fmt.Sprintf(`Analyze these %d articles about "%s" and provide:

1. A synthesized summary (2-3 paragraphs) that combines key information from all articles
2. Main trends or patterns observed across articles
3. Any notable disagreements or contradictions between sources
4. Key entities/organizations mentioned across multiple articles
5. Overall sentiment analysis of the topic based on all articles

Return your analysis as a JSON object with these fields:
{
  "synthesizedSummary": "...",
  "trends": ["trend1", "trend2", ...],
  "contradictions": ["contradiction1", "contradiction2", ...],
  "keyEntities": ["entity1", "entity2", ...],
  "overallSentiment": "positive/negative/neutral",
  "confidenceScore": 0.85
}

Here are the articles:
%s`, count, topic, articlesJSON)
}
