package analyzer

import "strings"

// Sentiment is the coarse label derived from keyword presence
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

var (
	positiveKeywords = []string{"good", "great", "excellent", "amazing", "love", "wonderful", "fantastic"}
	negativeKeywords = []string{"bad", "terrible", "awful", "hate", "horrible", "disgusting"}
)

// ClassifySentiment labels text by counting which keywords occur in it.
// Matching is by substring, so "badge" counts towards negative.
func ClassifySentiment(text string) Sentiment {
	lower := strings.ToLower(text)

	positive := countKeywords(lower, positiveKeywords)
	negative := countKeywords(lower, negativeKeywords)

	switch {
	case positive > negative:
		return SentimentPositive
	case negative > positive:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// countKeywords counts each keyword at most once
func countKeywords(text string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			count++
		}
	}
	return count
}
