package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Content is a stored knowledge item. Title is unique across the store.
// Items are created by manual upload or online learning and are never
// deleted by the core; the only routine mutation is the search counter.
type Content struct {
	ID             int64
	Title          string
	Body           string
	Category       string
	SourceFilename string
	SourceDocText  string // text extracted from an uploaded file, if any
	Keywords       string
	SearchCount    int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ConversationTurn is one user/bot exchange. Append-only, ordered by
// creation time within a session.
type ConversationTurn struct {
	ID          int64
	SessionID   string
	UserQuery   string
	BotResponse string
	Topic       string
	Intent      string
	CreatedAt   time.Time
}

// Feedback records whether a response was helpful for a given query.
type Feedback struct {
	ID        string
	Query     string
	ContentID int64
	Helpful   bool
	CreatedAt time.Time
}
