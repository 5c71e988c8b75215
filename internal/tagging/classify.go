// Package tagging classifies headline text into the dashboard's content
// buckets (Trump, sports, AI) by case-insensitive keyword match. Feed
// fetching happens elsewhere; this package only looks at the text it is
// given.
package tagging

import "strings"

var trumpKeywords = []string{
	"trump", "donald trump", "potus", "president trump",
	"mar-a-lago", "maga", "make america great",
}

var sportsKeywords = []string{
	"football", "soccer", "cricket", "rugby", "tennis", "basketball",
	"baseball", "golf", "boxing", "formula 1", "f1", "nfl", "nba",
	"premier league", "champions league", "world cup", "olympics",
	"match", "tournament", "championship", "league", "goal", "score",
	"player", "team", "coach", "stadium", "fixture", "playoff",
}

var aiKeywords = []string{
	"artificial intelligence", " ai ", "openai", "chatgpt", "anthropic",
	"claude", "gemini", "machine learning", "neural network", "llm",
	"deep learning", "generative ai",
}

var anthropicKeywords = []string{"anthropic", "claude"}

// Tags is the classification result for one piece of text.
type Tags struct {
	Trump     bool `json:"isTrump"`
	Sports    bool `json:"isSports"`
	AI        bool `json:"isAI"`
	Anthropic bool `json:"isAnthropic"`
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Classify tags a single text. Empty text carries no tags.
func Classify(text string) Tags {
	if text == "" {
		return Tags{}
	}
	// pad so word-boundary keywords like " ai " can match at the edges
	lower := " " + strings.ToLower(text) + " "

	return Tags{
		Trump:     containsAny(lower, trumpKeywords),
		Sports:    containsAny(lower, sportsKeywords),
		AI:        containsAny(lower, aiKeywords),
		Anthropic: containsAny(lower, anthropicKeywords),
	}
}

// ClassifyAll tags title and description together, the way articles are
// bucketed on the dashboard: a hit in either field tags the article.
func ClassifyAll(title, description string) Tags {
	t := Classify(title)
	d := Classify(description)
	return Tags{
		Trump:     t.Trump || d.Trump,
		Sports:    t.Sports || d.Sports,
		AI:        t.AI || d.AI,
		Anthropic: t.Anthropic || d.Anthropic,
	}
}
