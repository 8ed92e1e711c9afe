package analyzer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Result holds the metrics computed for a single text
type Result struct {
	OriginalText           string    `json:"original_text" yaml:"original_text"`
	WordCount              int       `json:"word_count" yaml:"word_count"`
	CharacterCount         int       `json:"character_count" yaml:"character_count"`
	CharacterCountNoSpaces int       `json:"character_count_no_spaces" yaml:"character_count_no_spaces"`
	SentenceCount          int       `json:"sentence_count" yaml:"sentence_count"`
	ParagraphCount         int       `json:"paragraph_count" yaml:"paragraph_count"`
	AvgWordLength          float64   `json:"avg_word_length" yaml:"avg_word_length"`
	SentimentScore         Sentiment `json:"sentiment_score" yaml:"sentiment_score"`
}

const (
	paragraphSeparator = "\n\n"
	wordPunctuation    = ".,!?;:"
)

// Analyze validates text and computes its metrics.
// It returns a *ValidationError when text is empty or whitespace only.
func Analyze(text string) (Result, error) {
	if strings.TrimFunc(text, isSpace) == "" {
		return Result{}, &ValidationError{Message: EmptyTextMessage}
	}

	words := strings.FieldsFunc(text, isSpace)

	return Result{
		OriginalText:           text,
		WordCount:              len(words),
		CharacterCount:         utf8.RuneCountInString(text),
		CharacterCountNoSpaces: utf8.RuneCountInString(strings.ReplaceAll(text, " ", "")),
		SentenceCount:          countSentences(text),
		ParagraphCount:         countParagraphs(text),
		AvgWordLength:          averageWordLength(words),
		SentimentScore:         ClassifySentiment(text),
	}, nil
}

// isSpace matches the characters str.split() treats as separators, which
// include the ASCII file/group/record/unit separators unicode.IsSpace skips.
func isSpace(r rune) bool {
	if r >= 0x1c && r <= 0x1f {
		return true
	}
	return unicode.IsSpace(r)
}

func isSentenceBoundary(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// countSentences counts non-blank segments between runs of . ! ?
func countSentences(text string) int {
	count := 0
	for _, segment := range strings.FieldsFunc(strings.TrimFunc(text, isSpace), isSentenceBoundary) {
		if strings.TrimFunc(segment, isSpace) != "" {
			count++
		}
	}
	return count
}

func countParagraphs(text string) int {
	count := 0
	for _, paragraph := range strings.Split(text, paragraphSeparator) {
		if strings.TrimFunc(paragraph, isSpace) != "" {
			count++
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

func averageWordLength(words []string) float64 {
	if len(words) == 0 {
		return 0
	}

	total := 0
	for _, word := range words {
		total += utf8.RuneCountInString(strings.Trim(word, wordPunctuation))
	}

	return round2(float64(total) / float64(len(words)))
}

// round2 rounds to two decimal places. strconv rounds the exact binary value
// and breaks exact ties to even, so 4.125 becomes 4.12.
func round2(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
