// Package textproc normalizes query and content text.
package textproc

import (
	"sort"
	"strings"

	"github.com/orsinium-labs/stopwords"
)

// fillerWords are removed from queries before keyword extraction.
// Removal is literal " word " substring replacement in this exact order,
// not a tokenizer pass; the order is part of the contract.
var fillerWords = []string{
	"what", "is", "are", "who", "where", "when", "how", "about", "the",
	"a", "an", "do", "you", "tell", "me", "give", "names", "of", "you know",
}

const maxKeywords = 5

// ExtractKeywords returns the main keywords of a query: lowercased,
// filler words removed, whitespace-split, tokens longer than two
// characters, capped at five, original order preserved. Deterministic
// for a given input.
func ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}
	// Padding lets fillers at the very start or end of the query match.
	lower := " " + strings.ToLower(text) + " "
	for _, word := range fillerWords {
		lower = strings.ReplaceAll(lower, " "+word+" ", " ")
	}

	var keywords []string
	for _, w := range strings.Fields(lower) {
		w = strings.TrimSpace(w)
		if len(w) > 2 {
			keywords = append(keywords, w)
		}
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// TopicLabel joins extracted keywords into a title-cased topic label.
// Returns "" when the text yields no keywords. The chat layer tracks
// topics from response titles instead; this derivation remains for
// callers working from raw text.
func TopicLabel(text string) string {
	keywords := ExtractKeywords(text)
	if len(keywords) == 0 {
		return ""
	}
	return TitleCase(strings.Join(keywords, " "))
}

// TitleCase upper-cases the first letter of each whitespace-separated
// word and lower-cases the rest.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// Clip truncates s to at most n runes.
func Clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

var englishStopwords = stopwords.MustGet("en")

// ContentKeywords derives a short keyword string for a stored content
// item: the most frequent non-stopword tokens of the text, joined with
// spaces. Unlike ExtractKeywords this is meant for long document bodies,
// so it uses a full English stopword list and frequency ranking.
func ContentKeywords(text string, limit int) string {
	if text == "" || limit <= 0 {
		return ""
	}

	counts := make(map[string]int)
	first := make(map[string]int)
	pos := 0
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,;:!?\"'()[]")
		if len(w) <= 2 || englishStopwords.Contains(w) {
			continue
		}
		if _, seen := counts[w]; !seen {
			first[w] = pos
		}
		counts[w]++
		pos++
	}

	tokens := make([]string, 0, len(counts))
	for w := range counts {
		tokens = append(tokens, w)
	}
	// Most frequent first; first appearance breaks ties so the result is
	// deterministic.
	sort.Slice(tokens, func(i, j int) bool {
		if counts[tokens[i]] != counts[tokens[j]] {
			return counts[tokens[i]] > counts[tokens[j]]
		}
		return first[tokens[i]] < first[tokens[j]]
	})

	if len(tokens) > limit {
		tokens = tokens[:limit]
	}
	return strings.Join(tokens, " ")
}
