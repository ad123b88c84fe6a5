// Package search maintains an in-memory index over stored content and
// scores items against queries with a fixed heuristic.
package search

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/sankofa-labs/sankofa/internal/intent"
	"github.com/sankofa-labs/sankofa/internal/storage"
	"github.com/sankofa-labs/sankofa/internal/textproc"
)

// ContentStore is the slice of the storage layer the engine needs.
type ContentStore interface {
	AllContent() ([]storage.Content, error)
	IncrementSearchCount(id int64) error
}

// entry is a denormalized projection of one content item, precomputed
// for scoring. Entries live only inside an index snapshot.
type entry struct {
	id            int64
	title         string
	body          string
	titleLower    string
	fullTextLower string
	keywordsLower string
}

// Result is a scored content item.
type Result struct {
	ID    int64
	Title string
	Body  string
	Score float64
}

// Engine scores stored content against queries. The index is an
// immutable snapshot rebuilt in full on demand and swapped in
// atomically, so concurrent readers always see either the previous or
// the fully rebuilt index, never a partial one.
type Engine struct {
	store    ContentStore
	snapshot atomic.Pointer[[]entry]
}

// New creates an Engine over the given content store. The index is
// built lazily on first search; call Rebuild to populate it eagerly.
func New(store ContentStore) *Engine {
	return &Engine{store: store}
}

// Rebuild replaces the index with a fresh snapshot of the full content
// store. Call after every content mutation.
func (e *Engine) Rebuild() error {
	contents, err := e.store.AllContent()
	if err != nil {
		return fmt.Errorf("loading content for index: %w", err)
	}

	entries := make([]entry, len(contents))
	for i, c := range contents {
		entries[i] = entry{
			id:            c.ID,
			title:         c.Title,
			body:          c.Body,
			titleLower:    strings.ToLower(c.Title),
			fullTextLower: strings.ToLower(c.Title + " " + c.Body + " " + c.SourceDocText),
			keywordsLower: strings.ToLower(c.Keywords),
		}
	}
	e.snapshot.Store(&entries)
	slog.Info("search index rebuilt", "items", len(entries))
	return nil
}

// Search scores every indexed item against the query and returns up to
// limit results sorted by descending score. Items scoring 10 or less
// are discarded outright. Ties keep original content order. The
// top-ranked item has its usage counter incremented once per call that
// yields any result. An empty content store yields empty results.
func (e *Engine) Search(query string, in intent.Intent, limit int) ([]Result, error) {
	snap := e.snapshot.Load()
	if snap == nil || len(*snap) == 0 {
		if err := e.Rebuild(); err != nil {
			return nil, err
		}
		snap = e.snapshot.Load()
	}

	queryLower := strings.ToLower(query)
	keywords := textproc.ExtractKeywords(query)

	var results []Result
	for _, it := range *snap {
		score := scoreEntry(it, queryLower, keywords, in)
		if score > 10 {
			results = append(results, Result{ID: it.id, Title: it.title, Body: it.body, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > 0 {
		if err := e.store.IncrementSearchCount(results[0].ID); err != nil {
			return nil, fmt.Errorf("incrementing search count for %d: %w", results[0].ID, err)
		}
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

var comparisonMarkers = []string{"vs", "compare", "difference"}

func scoreEntry(it entry, queryLower string, keywords []string, in intent.Intent) float64 {
	var score float64

	// Symmetric title containment is the strongest signal.
	if strings.Contains(it.titleLower, queryLower) || strings.Contains(queryLower, it.titleLower) {
		score += 50
	}
	for _, kw := range keywords {
		if strings.Contains(it.titleLower, kw) {
			score += 20
		}
	}
	for _, kw := range keywords {
		if strings.Contains(it.fullTextLower, kw) {
			score += 2
		}
	}

	if in == intent.Recipe && strings.Contains(it.fullTextLower, "recipe") {
		score += 15
	}
	if in == intent.Comparison {
		for _, marker := range comparisonMarkers {
			if strings.Contains(it.fullTextLower, marker) {
				score += 15
				break
			}
		}
	}

	return score
}
