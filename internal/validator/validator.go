// Package validator classifies free text as African/Black heritage
// content by scanning it against static keyword gazetteers.
package validator

import (
	"fmt"
	"strings"

	"github.com/coregx/ahocorasick"
)

// Validator matches text against the gazetteers using a single
// Aho-Corasick automaton compiled once at construction. Matching is raw
// substring containment with no word-boundary enforcement: a short term
// can match inside a longer unrelated word. That mirrors the reference
// behavior and must not be "fixed" silently.
type Validator struct {
	ac *ahocorasick.Automaton

	// patternCategories maps a pattern index to the category labels the
	// term belongs to. Terms that only establish domain membership
	// (cities, ethnic groups, general terms) carry no labels.
	patternCategories [][]string
}

// gazetteer pairs a term list with its category label ("" for
// domain-only sets). Order fixes the label order Categorize returns.
var gazetteers = []struct {
	category string
	terms    []string
}{
	{CategoryCountry, countries},
	{CategoryMusic, musicGenres},
	{CategoryFood, foods},
	{CategoryClothing, clothing},
	{CategoryInstrument, instruments},
	{CategoryPeople, figures},
	{CategoryCulture, concepts},
	{CategoryHistory, historicalTerms},
	{"", cities},
	{"", ethnicGroups},
	{"", generalTerms},
}

// New compiles the gazetteers into a Validator.
func New() (*Validator, error) {
	patternIndex := make(map[string]int)
	var patterns []string
	var patternCategories [][]string

	for _, g := range gazetteers {
		for _, term := range g.terms {
			key := strings.ToLower(term)
			idx, ok := patternIndex[key]
			if !ok {
				idx = len(patterns)
				patterns = append(patterns, key)
				patternCategories = append(patternCategories, nil)
				patternIndex[key] = idx
			}
			if g.category != "" && !containsString(patternCategories[idx], g.category) {
				patternCategories[idx] = append(patternCategories[idx], g.category)
			}
		}
	}

	ac, err := ahocorasick.NewBuilder().
		AddStrings(patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, fmt.Errorf("compiling gazetteer automaton: %w", err)
	}

	return &Validator{ac: ac, patternCategories: patternCategories}, nil
}

// IsInDomain reports whether any gazetteer term appears as a
// case-insensitive substring of text.
func (v *Validator) IsInDomain(text string) bool {
	if text == "" {
		return false
	}
	matches := v.ac.FindAllOverlapping([]byte(strings.ToLower(text)))
	return len(matches) > 0
}

// Categorize returns every gazetteer category with at least one substring
// hit in text, in fixed category order. Texts with no categorized hit
// yield ["general"].
func (v *Validator) Categorize(text string) []string {
	hit := make(map[string]bool)
	for _, m := range v.ac.FindAllOverlapping([]byte(strings.ToLower(text))) {
		for _, cat := range v.patternCategories[m.PatternID] {
			hit[cat] = true
		}
	}

	var categories []string
	for _, g := range gazetteers {
		if g.category != "" && hit[g.category] {
			categories = append(categories, g.category)
		}
	}
	if len(categories) == 0 {
		return []string{CategoryGeneral}
	}
	return categories
}

func containsString(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
