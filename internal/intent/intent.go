// Package intent maps user queries to a small fixed set of intents via
// substring trigger rules.
package intent

import "strings"

// Intent is a coarse query intent label.
type Intent string

const (
	Recipe     Intent = "recipe"
	History    Intent = "history"
	Definition Intent = "definition"
	Cultural   Intent = "cultural"
	Comparison Intent = "comparison"
	General    Intent = "general"
)

// rules is an ordered cascade: the first category with a trigger hit
// wins. The ordering is a deliberate tie-break (recipe beats history
// beats definition, and so on) and must not be reordered.
var rules = []struct {
	intent   Intent
	triggers []string
}{
	{Recipe, []string{"recipe", "cook", "prepare", "make", "ingredients", "how to"}},
	{History, []string{"history", "origin", "started", "began"}},
	{Definition, []string{"what is", "define", "meaning", "symbolize", "represent", "stand for"}},
	{Cultural, []string{"significance", "important", "why", "cultural", "tradition"}},
	{Comparison, []string{"difference", "compare", "vs", "versus", "which country", "best"}},
}

// Detect returns the intent of a query. Matching is case-insensitive
// substring containment; queries with no trigger hit are General.
func Detect(query string) Intent {
	q := strings.ToLower(query)
	for _, r := range rules {
		for _, trigger := range r.triggers {
			if strings.Contains(q, trigger) {
				return r.intent
			}
		}
	}
	return General
}
