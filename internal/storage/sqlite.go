package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store wraps a SQLite database with methods for content items,
// conversation turns, and feedback records.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database in dataDir and runs pending
// migrations. Pass ":memory:" as dataDir for an in-memory database (used
// by tests).
func Open(dataDir string) (*Store, error) {
	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "sankofa.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Limit to single connection to avoid "database is locked" errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping reports whether the database connection is alive.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// migrate reads embedded SQL migration files and applies any that haven't
// been run yet.
func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, err := parseMigrationVersion(entry.Name())
		if err != nil {
			return err
		}

		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction for migration %d: %w", version, err)
		}

		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
	}

	return nil
}

func parseMigrationVersion(filename string) (int, error) {
	var version int
	if _, err := fmt.Sscanf(filename, "%d_", &version); err != nil {
		return 0, fmt.Errorf("parsing migration version from %q: %w", filename, err)
	}
	return version, nil
}

// AppliedMigrations returns the list of applied migration versions in
// ascending order.
func (s *Store) AppliedMigrations() ([]int, error) {
	rows, err := s.db.Query("SELECT version FROM schema_version ORDER BY version ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// --- Content ---

const contentColumns = "id, title, body, category, source_filename, source_doc_text, keywords, search_count, created_at, updated_at"

// SaveContent inserts a content item, or replaces the body/category/
// source text/keywords of an existing item with the same title
// (re-upload). The search counter is preserved on replace. The assigned
// ID is written back into c.
func (s *Store) SaveContent(c *Content) error {
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	_, err := s.db.Exec(`
		INSERT INTO content (title, body, category, source_filename, source_doc_text, keywords, search_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET
			body = excluded.body,
			category = excluded.category,
			source_filename = excluded.source_filename,
			source_doc_text = excluded.source_doc_text,
			keywords = excluded.keywords,
			updated_at = excluded.updated_at`,
		c.Title, c.Body, c.Category, c.SourceFilename, c.SourceDocText, c.Keywords,
		c.SearchCount, c.CreatedAt.Format(time.RFC3339), c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	return s.db.QueryRow("SELECT id FROM content WHERE title = ?", c.Title).Scan(&c.ID)
}

// GetContent returns a content item by ID.
func (s *Store) GetContent(id int64) (Content, error) {
	row := s.db.QueryRow("SELECT "+contentColumns+" FROM content WHERE id = ?", id)
	return scanContent(row)
}

// GetContentByTitle returns a content item by its unique title.
func (s *Store) GetContentByTitle(title string) (Content, error) {
	row := s.db.QueryRow("SELECT "+contentColumns+" FROM content WHERE title = ?", title)
	return scanContent(row)
}

// AllContent returns every content item in insertion order. Used for
// full index rebuilds; insertion order is what makes tie-broken search
// results stable.
func (s *Store) AllContent() ([]Content, error) {
	return s.queryContent("SELECT " + contentColumns + " FROM content ORDER BY id ASC")
}

// ListContentByRecency returns all content items, newest first.
func (s *Store) ListContentByRecency() ([]Content, error) {
	return s.queryContent("SELECT " + contentColumns + " FROM content ORDER BY created_at DESC, id DESC")
}

// ContentCount returns the number of stored content items.
func (s *Store) ContentCount() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM content").Scan(&n)
	return n, err
}

// IncrementSearchCount bumps the usage counter of a content item by one.
func (s *Store) IncrementSearchCount(id int64) error {
	res, err := s.db.Exec("UPDATE content SET search_count = search_count + 1 WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) queryContent(query string, args ...any) ([]Content, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContent(sc rowScanner) (Content, error) {
	var c Content
	var createdAt, updatedAt string
	err := sc.Scan(&c.ID, &c.Title, &c.Body, &c.Category, &c.SourceFilename,
		&c.SourceDocText, &c.Keywords, &c.SearchCount, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return Content{}, ErrNotFound
	}
	if err != nil {
		return Content{}, err
	}
	if c.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return Content{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return Content{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return c, nil
}

// --- Conversation turns ---

// SaveTurn appends a conversation turn and commits immediately.
func (s *Store) SaveTurn(t *ConversationTurn) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.Exec(`
		INSERT INTO conversations (session_id, user_query, bot_response, topic, intent, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.SessionID, t.UserQuery, t.BotResponse, t.Topic, t.Intent,
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return err
	}
	t.ID, err = res.LastInsertId()
	return err
}

// RecentTurns returns up to limit turns for a session, newest first.
func (s *Store) RecentTurns(sessionID string, limit int) ([]ConversationTurn, error) {
	rows, err := s.db.Query(`
		SELECT id, session_id, user_query, bot_response, topic, intent, created_at
		FROM conversations WHERE session_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ConversationTurn
	for rows.Next() {
		var t ConversationTurn
		var createdAt string
		if err := rows.Scan(&t.ID, &t.SessionID, &t.UserQuery, &t.BotResponse, &t.Topic, &t.Intent, &createdAt); err != nil {
			return nil, err
		}
		if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

// --- Feedback ---

// SaveFeedback records a helpful/unhelpful vote for a query.
func (s *Store) SaveFeedback(f Feedback) error {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	var contentID any
	if f.ContentID != 0 {
		contentID = f.ContentID
	}
	_, err := s.db.Exec(`
		INSERT INTO feedback (id, query, content_id, helpful, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		f.ID, f.Query, contentID, f.Helpful, f.CreatedAt.Format(time.RFC3339),
	)
	return err
}
