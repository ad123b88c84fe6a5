// Package conversation tracks per-session exchange history and decides
// whether a query continues the previous topic.
package conversation

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/sankofa-labs/sankofa/internal/intent"
	"github.com/sankofa-labs/sankofa/internal/storage"
)

// DefaultContextLimit is how many recent turns inform follow-up
// resolution.
const DefaultContextLimit = 7

// followUpIndicators mark a query as anaphoric or continuing. Matching
// is substring containment over the lowercased query.
var followUpIndicators = []string{
	"it", "that", "this", "them", "they", "he", "she", "him", "her",
	"also", "too", "more about", "tell me more", "what else", "and",
	"yes", "yeah", "exactly", "continue", "another", "next",
}

// maxFollowUpTokens caps how long a query can be and still count as
// follow-up phrasing.
const maxFollowUpTokens = 12

// TurnStore is the slice of the storage layer the manager needs.
type TurnStore interface {
	SaveTurn(t *storage.ConversationTurn) error
	RecentTurns(sessionID string, limit int) ([]storage.ConversationTurn, error)
}

// Manager resolves session context and records exchanges.
type Manager struct {
	store TurnStore
}

// NewManager creates a Manager over the given turn store.
func NewManager(store TurnStore) *Manager {
	return &Manager{store: store}
}

// NewSessionID derives a fresh session identifier from the current
// wall-clock time. It is a correlation token, not a credential:
// uniqueness is probabilistic and there is no secrecy guarantee.
func NewSessionID() string {
	sum := md5.Sum([]byte(time.Now().UTC().String()))
	return hex.EncodeToString(sum[:])
}

// RecentContext returns up to limit turns for the session, oldest
// first.
func (m *Manager) RecentContext(sessionID string, limit int) ([]storage.ConversationTurn, error) {
	turns, err := m.store.RecentTurns(sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("loading recent turns: %w", err)
	}
	// Storage returns newest first; callers want chronological order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

// IsFollowUpPhrasing reports whether the query reads like a follow-up:
// it contains a continuation marker AND is at most twelve tokens long.
// Both conditions are required.
func IsFollowUpPhrasing(query string) bool {
	q := strings.ToLower(query)
	if len(strings.Fields(q)) > maxFollowUpTokens {
		return false
	}
	for _, ind := range followUpIndicators {
		if strings.Contains(q, ind) {
			return true
		}
	}
	return false
}

// IsFollowUp reports whether the query continues the previous exchange:
// the prior turn's topic shares a word with the query, or the query
// uses follow-up phrasing. Returns false with no prior context. The
// chat orchestrator applies its own topic-carry rules and only calls
// IsFollowUpPhrasing; this combined check remains for callers that
// have turn history but no tracked topic.
func IsFollowUp(query string, recentContext []storage.ConversationTurn) bool {
	if len(recentContext) == 0 {
		return false
	}
	queryLower := strings.ToLower(query)
	lastTopic := strings.ToLower(recentContext[len(recentContext)-1].Topic)
	for _, word := range strings.Fields(lastTopic) {
		if strings.Contains(queryLower, word) {
			return true
		}
	}
	return IsFollowUpPhrasing(query)
}

// RecordExchange appends a turn for the session, deriving the intent
// from the query, and commits before returning.
func (m *Manager) RecordExchange(sessionID, query, response, topic string) error {
	turn := storage.ConversationTurn{
		SessionID:   sessionID,
		UserQuery:   query,
		BotResponse: response,
		Topic:       topic,
		Intent:      string(intent.Detect(query)),
	}
	if err := m.store.SaveTurn(&turn); err != nil {
		return fmt.Errorf("recording exchange: %w", err)
	}
	return nil
}
