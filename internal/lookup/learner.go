package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sankofa-labs/sankofa/internal/storage"
	"github.com/sankofa-labs/sankofa/internal/textproc"
	"github.com/sankofa-labs/sankofa/internal/validator"
)

const (
	maxCandidates      = 10
	maxDisambigOptions = 3
	summaryClip        = 1800
	maxSuggestions     = 5
	contentKeywordCap  = 10
)

// MaxArticleRunes caps a stored article body so a single page cannot
// dominate the database.
const MaxArticleRunes = 100_000

// ContentStore is the slice of storage the learner needs.
type ContentStore interface {
	SaveContent(*storage.Content) error
	GetContentByTitle(string) (storage.Content, error)
}

// Indexer is rebuilt after new content lands.
type Indexer interface {
	Rebuild() error
}

// Result is a learned answer ready for the chat surface.
type Result struct {
	Response    string
	Source      string
	Suggestions []string
}

// Learner searches the encyclopedia for a query, keeps the first
// in-domain article it finds, and stores it so later questions hit the
// local index.
type Learner struct {
	client    *Client
	store     ContentStore
	index     Indexer
	validator *validator.Validator
	online    func() bool
}

// NewLearner wires a Learner. The online probe is injectable so tests
// and offline deployments can short-circuit it.
func NewLearner(client *Client, store ContentStore, index Indexer, v *validator.Validator, online func() bool) *Learner {
	return &Learner{client: client, store: store, index: index, validator: v, online: online}
}

// Learn walks up to ten search candidates and returns the first one
// that is in-domain and not already stored. Returns (nil, nil) when
// offline or when no candidate qualifies; per-candidate failures are
// logged and skipped rather than aborting the walk.
func (l *Learner) Learn(ctx context.Context, query string) (*Result, error) {
	if !l.online() {
		return nil, nil
	}

	titles, err := l.client.Search(ctx, query, maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("searching encyclopedia: %w", err)
	}

	for _, title := range titles {
		page, err := l.client.Fetch(ctx, title)
		if err != nil {
			slog.Warn("skipping candidate", "title", title, "error", err)
			continue
		}

		if page.Disambiguation {
			if res, err := l.learnFromDisambiguation(ctx, page.Title); err != nil {
				return nil, err
			} else if res != nil {
				return res, nil
			}
			continue
		}

		full := page.Title + " " + page.Content
		if !l.validator.IsInDomain(full) {
			continue
		}

		stored, err := l.ingest(page, categoryOf(l.validator.Categorize(full)), textproc.ContentKeywords(full, contentKeywordCap))
		if err != nil {
			return nil, err
		}
		if !stored {
			continue
		}

		return &Result{
			Response: fmt.Sprintf("**%s**\n\n%s...\n\n(Full details learned for deeper questions)",
				page.Title, textproc.Clip(page.Summary, summaryClip)),
			Source:      "Wikipedia (newly learned - full)",
			Suggestions: window(titles, 1, 1+maxSuggestions),
		}, nil
	}
	return nil, nil
}

// learnFromDisambiguation tries the first three linked articles of a
// disambiguation page, keeping the first in-domain one.
func (l *Learner) learnFromDisambiguation(ctx context.Context, title string) (*Result, error) {
	options, err := l.client.DisambiguationOptions(ctx, title, maxCandidates)
	if err != nil {
		slog.Warn("listing disambiguation options failed", "title", title, "error", err)
		return nil, nil
	}

	tried := options
	if len(tried) > maxDisambigOptions {
		tried = tried[:maxDisambigOptions]
	}
	for _, opt := range tried {
		if !l.validator.IsInDomain(opt) {
			continue
		}
		page, err := l.client.Fetch(ctx, opt)
		if err != nil {
			slog.Warn("skipping disambiguation option", "title", opt, "error", err)
			continue
		}
		if page.Disambiguation {
			continue
		}

		stored, err := l.ingest(page, validator.CategoryGeneral, strings.ToLower(opt))
		if err != nil {
			return nil, err
		}
		if !stored {
			continue
		}

		return &Result{
			Response:    fmt.Sprintf("**%s**\n\n%s...", page.Title, textproc.Clip(page.Summary, summaryClip)),
			Source:      "Wikipedia",
			Suggestions: window(options, 1, 1+maxSuggestions),
		}, nil
	}
	return nil, nil
}

// ingest stores a page unless one with the same title already exists.
// The body is capped so a single article cannot dominate the database.
func (l *Learner) ingest(page Page, category, keywords string) (bool, error) {
	if _, err := l.store.GetContentByTitle(page.Title); err == nil {
		return false, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return false, fmt.Errorf("checking for existing content: %w", err)
	}

	c := &storage.Content{
		Title:    page.Title,
		Body:     textproc.Clip(page.Content, MaxArticleRunes),
		Category: category,
		Keywords: keywords,
	}
	if err := l.store.SaveContent(c); err != nil {
		return false, fmt.Errorf("saving learned content: %w", err)
	}
	if err := l.index.Rebuild(); err != nil {
		slog.Warn("rebuilding index after learning failed", "error", err)
	}
	slog.Info("learned new content", "title", page.Title, "category", category)
	return true, nil
}

func categoryOf(categories []string) string {
	if len(categories) > 0 {
		return categories[0]
	}
	return validator.CategoryGeneral
}

func window(items []string, from, to int) []string {
	if from >= len(items) {
		return nil
	}
	if to > len(items) {
		to = len(items)
	}
	return items[from:to]
}
