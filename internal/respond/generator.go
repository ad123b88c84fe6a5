// Package respond renders natural-language replies from search results,
// the detected intent, and the follow-up state.
package respond

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sankofa-labs/sankofa/internal/intent"
	"github.com/sankofa-labs/sankofa/internal/search"
	"github.com/sankofa-labs/sankofa/internal/textproc"
)

const (
	sectionClip  = 600
	responseClip = 800
	minSection   = 100
	maxSentences = 5
)

// sectionPatterns maps semantic section names to the trigger words that
// select them and that a "== Header ==" heading must contain. Order
// matters: the first section whose triggers hit the query wins.
var sectionPatterns = []struct {
	name     string
	triggers []string
}{
	{"education", []string{"education", "school", "university", "study", "degree", "college", "learning"}},
	{"museum", []string{"museum", "memorial", "foundation", "centre of memory", "exhibit"}},
	{"family", []string{"family", "wife", "children", "marriage", "married", "son", "daughter"}},
	{"death", []string{"death", "died", "funeral", "passed away", "illness"}},
	{"prison", []string{"prison", "imprisonment", "robben island", "jail", "incarcerated"}},
	{"childhood", []string{"childhood", "born", "early life", "youth", "growing up"}},
	{"legacy", []string{"legacy", "honours", "awards", "recognition", "impact"}},
	{"presidency", []string{"president", "presidency", "administration", "government"}},
}

// fallbackSuggestions offers starter topics when nothing matches.
var fallbackSuggestions = map[intent.Intent][]string{
	intent.Recipe:     {"Jollof rice", "Fufu", "Egusi soup", "Suya"},
	intent.History:    {"Kwame Nkrumah", "Mansa Musa", "Queen Nzinga", "Thomas Sankara"},
	intent.Comparison: {"Ghana vs Nigeria Jollof", "Highlife vs Afrobeats"},
}

var defaultSuggestions = []string{"Adinkra symbols", "Amapiano", "Kente cloth", "Ubuntu", "Fela Kuti"}

// sectionHeaderRe matches "== Header ==" style headings on their own line.
var sectionHeaderRe = regexp.MustCompile(`\n==+[ \t]*(.*?)[ \t]*==+\n`)

// Generate renders a reply for the best search result. The orchestrator
// selects the branch: followUp with a non-empty currentTopic takes the
// topic-drilling path, anything else renders a fresh-topic template.
func Generate(query string, results []search.Result, in intent.Intent, followUp bool, currentTopic string) string {
	if len(results) == 0 {
		return Fallback(query, in)
	}

	best := results[0]
	title, content := best.Title, best.Body

	if followUp && currentTopic != "" {
		queryKeywords := textproc.ExtractKeywords(query)
		if section := relevantSection(content, queryKeywords, query); section != "" {
			return fmt.Sprintf("About **%s**'s %s...\n\n%s\n\nWant to know more about %s?",
				currentTopic, strings.Join(queryKeywords, " "), section, currentTopic)
		}
		return contextualFollowUp(query, content, currentTopic)
	}

	prefix := fmt.Sprintf("**%s**\n\n", title)

	switch in {
	case intent.Recipe:
		body := orClip(extractSection(content, []string{"ingredient", "prepare", "cook", "make", "steps", "recipe"}), content)
		return fmt.Sprintf("%s**%s Recipe**\n\n%s\n\nNeed variations or tips?", prefix, title, body)
	case intent.History:
		body := orClip(extractSection(content, []string{"history", "origin", "century", "ancient", "evolution"}), content)
		return fmt.Sprintf("%s**History of %s**\n\n%s\n\nInterested in modern impact?", prefix, title, body)
	case intent.Definition:
		return fmt.Sprintf("%s%s...\n\nWant the full meaning or usage?", prefix, textproc.Clip(content, responseClip))
	case intent.Comparison:
		body := orClip(extractSection(content, []string{"difference", "compare", "vs", "variations", "types"}), content)
		return fmt.Sprintf("%s**Comparing %s**\n\n%s\n\nWhich one do you prefer?", prefix, title, body)
	case intent.Cultural:
		body := orClip(extractSection(content, []string{"cultural", "significance", "tradition", "importance", "symbol"}), content)
		return fmt.Sprintf("%s**Cultural Significance of %s**\n\n%s\n\nHow is it used today?", prefix, title, body)
	default:
		return fmt.Sprintf("%s%s...\n\nWhat else would you like to know?", prefix, textproc.Clip(content, responseClip))
	}
}

// Fallback is the "still learning" reply used when search produces
// nothing usable.
func Fallback(query string, in intent.Intent) string {
	suggestions, ok := fallbackSuggestions[in]
	if !ok {
		suggestions = defaultSuggestions
	}
	var b strings.Builder
	fmt.Fprintf(&b, "I'm still learning about '%s'. Try asking about:\n\n", query)
	for i, s := range suggestions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• " + s)
	}
	return b.String()
}

// relevantSection finds the part of content that answers a follow-up
// question. It first maps the query onto a semantic section name, then
// looks for a "== Header ==" block whose heading carries one of that
// section's trigger words. Returns "" when nothing specific is found.
func relevantSection(content string, keywords []string, query string) string {
	queryLower := strings.ToLower(query)

	var triggers []string
	for _, sp := range sectionPatterns {
		if containsAny(queryLower, sp.triggers) {
			triggers = sp.triggers
			break
		}
	}
	if triggers == nil {
		return extractSection(content, keywords)
	}

	locs := sectionHeaderRe.FindAllStringSubmatchIndex(content, -1)
	for i, loc := range locs {
		header := strings.ToLower(content[loc[2]:loc[3]])
		if !containsAny(header, triggers) {
			continue
		}
		end := len(content)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		body := strings.TrimSpace(content[loc[1]:end])
		return textproc.Clip(body, sectionClip) + "..."
	}

	return extractSection(content, triggers)
}

// contextualFollowUp handles follow-ups with no matching section.
// Tiered: canned museum/foundation facts, a deeper raw slice of the
// content, a keyword-anchored extraction, then an aspect menu. The
// [800:1600] slice is an arbitrary offset inherited from the reference
// behavior, not content-aware.
func contextualFollowUp(query, content, topic string) string {
	queryLower := strings.ToLower(query)

	if strings.Contains(queryLower, "museum") || strings.Contains(queryLower, "foundation") {
		return "The **Nelson Mandela Museum** is located in Qunu, South Africa, and there's also the " +
			"**Nelson Mandela Foundation** and **Centre of Memory** in Johannesburg. These institutions " +
			"preserve his legacy and continue his work. The Foundation focuses on social justice, memory, " +
			"and dialogue.\n\nWould you like to know about his other legacy projects?"
	}

	if strings.Contains(queryLower, "more") || strings.Contains(queryLower, "detail") {
		return fmt.Sprintf("Here's more about **%s**:\n\n%s...\n\nWhat specific aspect interests you?",
			topic, slice(content, responseClip, 2*responseClip))
	}

	if section := extractSection(content, textproc.ExtractKeywords(query)); section != "" {
		return fmt.Sprintf("Regarding **%s** and your question about '%s':\n\n%s\n\nAnything else you'd like to explore?",
			topic, query, section)
	}

	return fmt.Sprintf("I have comprehensive information about **%s**, but I need more specifics. Are you interested in:\n\n"+
		"• Early life and education\n• Political activism\n• Prison years\n• Presidency\n• Legacy and honours\n\n"+
		"What would you like to explore?", topic)
}

// extractSection pulls sentences containing any of the keywords,
// stopping after five. Results under a hundred characters are treated
// as not found; results over eight hundred are truncated with an
// ellipsis.
func extractSection(text string, keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}

	var extracted []string
	for _, sent := range splitSentences(text) {
		if containsAny(strings.ToLower(sent), lowered(keywords)) {
			extracted = append(extracted, sent)
			if len(extracted) >= maxSentences {
				break
			}
		}
	}

	result := strings.Join(extracted, " ")
	if len([]rune(result)) < minSection {
		return ""
	}
	if len([]rune(result)) > responseClip {
		result = textproc.Clip(result, responseClip) + "..."
	}
	return result
}

// splitSentences splits on end-of-sentence punctuation followed by
// whitespace, keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i+1 < len(text); i++ {
		c := text[i]
		if (c == '.' || c == '!' || c == '?') && isSpace(text[i+1]) {
			sentences = append(sentences, text[start:i+1])
			j := i + 1
			for j < len(text) && isSpace(text[j]) {
				j++
			}
			start = j
			i = j - 1
		}
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// orClip falls back to a clipped prefix of content when the extraction
// came back empty.
func orClip(section, content string) string {
	if section != "" {
		return section
	}
	return textproc.Clip(content, responseClip)
}

// slice returns the rune range [from:to) of s, clamped to its length.
func slice(s string, from, to int) string {
	runes := []rune(s)
	if from >= len(runes) {
		return ""
	}
	if to > len(runes) {
		to = len(runes)
	}
	return string(runes[from:to])
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func lowered(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
