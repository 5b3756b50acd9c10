// Package classify assigns a display category to an article by keyword rules over its title and snippet.
// Classification is pure and deterministic, the same title and snippet always give the same category.
package classify

import (
	"regexp"
	"strings"
)

// Category is a display category of an article
type Category string

// known categories, in evaluation order after the humor check
const (
	TechnologyResearch Category = "Technology & Research"
	ImpactIndustry     Category = "Impact & Industry"
	ApplicationsTools  Category = "Applications & Tools"
	Humor              Category = "Simulated Silliness"
)

var (
	reHumor = regexp.MustCompile(`(?i)\b(satire|satirical|parody|spoof|fiction|fictional|humou?r|comedy|jokes?|silly|absurd)\b`)

	reAI = regexp.MustCompile(`(?i)\b(ai|artificial intelligence|machine learning|deep learning|neural networks?|llms?|` +
		`large language models?|generative ai|gpt[-\w.]*|chatgpt|openai|anthropic|claude|gemini|deepmind|transformers?)\b`)

	rules = []struct {
		category Category
		re       *regexp.Regexp
	}{
		{TechnologyResearch, regexp.MustCompile(`(?i)\b(research|researchers?|study|studies|paper|benchmark|model|models|` +
			`algorithm|algorithms|breakthrough|lab|laboratory|scientists?|training|architecture|open[- ]source|dataset)\b`)},
		{ImpactIndustry, regexp.MustCompile(`(?i)\b(business|industry|market|markets|jobs?|workforce|economy|economic|` +
			`regulation|regulators?|law|policy|ethics|ethical|investment|investors?|funding|startups?|billion|layoffs?|` +
			`society|impact|government|lawsuit)\b`)},
		{ApplicationsTools, regexp.MustCompile(`(?i)\b(app|apps|tool|tools|feature|features|launch(es|ed)?|release[sd]?|` +
			`product|products|assistant|chatbot|plugin|api|platform|update|users?|integration|device|devices|robot|robots)\b`)},
	}
)

// Classify returns the category of an article, false if the article is not recognizably about AI.
// Humor markers win over everything else. Otherwise an AI mention is required and categories are
// checked in order, first for AI and category terms both in the title, then over title and snippet together.
func Classify(title, snippet string) (Category, bool) {
	text := title + " " + snippet
	if reHumor.MatchString(text) || strings.Contains(strings.ToLower(title), strings.ToLower(string(Humor))) {
		return Humor, true
	}

	if !reAI.MatchString(text) {
		return "", false
	}

	if reAI.MatchString(title) {
		for _, r := range rules {
			if r.re.MatchString(title) {
				return r.category, true
			}
		}
	}

	for _, r := range rules {
		if r.re.MatchString(text) {
			return r.category, true
		}
	}
	return "", false
}

// AllCategories lists the known categories in display order
func AllCategories() []Category {
	return []Category{TechnologyResearch, ImpactIndustry, ApplicationsTools, Humor}
}
