// Package seed loads a starter set of heritage topics into an empty
// database so first conversations have something to hit.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sankofa-labs/sankofa/internal/lookup"
	"github.com/sankofa-labs/sankofa/internal/storage"
	"github.com/sankofa-labs/sankofa/internal/textproc"
	"github.com/sankofa-labs/sankofa/internal/validator"
)

// Topics are the starter articles fetched on first boot.
var Topics = []string{
	"Amapiano", "Jollof rice", "Kente cloth", "Kwame Nkrumah", "Fela Kuti",
	"Adinkra symbols", "Fufu", "Highlife", "Thomas Sankara",
}

// Fetcher retrieves one encyclopedia page. *lookup.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, title string) (lookup.Page, error)
}

// ContentStore is the slice of storage the seeder needs.
type ContentStore interface {
	SaveContent(*storage.Content) error
	ContentCount() (int, error)
}

// Indexer is rebuilt once after all seeds land.
type Indexer interface {
	Rebuild() error
}

// Seeder fills an empty store with the starter topics.
type Seeder struct {
	fetch Fetcher
	store ContentStore
	index Indexer
}

func New(fetch Fetcher, store ContentStore, index Indexer) *Seeder {
	return &Seeder{fetch: fetch, store: store, index: index}
}

// Run seeds the starter topics when the store is empty, fetching
// concurrently. A topic that fails to fetch or save is logged and
// skipped; the remaining topics still land. The index is rebuilt once
// at the end.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.store.ContentCount()
	if err != nil {
		return fmt.Errorf("counting content: %w", err)
	}
	if count > 0 {
		return nil
	}

	slog.Info("seeding starter topics", "count", len(Topics))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4) // Bound concurrency to stay polite to the encyclopedia.

	for _, topic := range Topics {
		topic := topic
		g.Go(func() error {
			page, err := s.fetch.Fetch(gCtx, topic)
			if err != nil {
				slog.Warn("seed topic fetch failed", "topic", topic, "error", err)
				return nil
			}
			c := &storage.Content{
				Title:    page.Title,
				Body:     textproc.Clip(page.Content, lookup.MaxArticleRunes),
				Category: validator.CategoryGeneral,
				Keywords: strings.ToLower(topic),
			}
			if err := s.store.SaveContent(c); err != nil {
				slog.Warn("seed topic save failed", "topic", topic, "error", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := s.index.Rebuild(); err != nil {
		return fmt.Errorf("rebuilding index after seeding: %w", err)
	}
	return nil
}
