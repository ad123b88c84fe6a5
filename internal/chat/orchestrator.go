// Package chat orchestrates one conversational turn: topic tracking,
// domain validation, local search, online fallback, and persistence.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sankofa-labs/sankofa/internal/conversation"
	"github.com/sankofa-labs/sankofa/internal/intent"
	"github.com/sankofa-labs/sankofa/internal/lookup"
	"github.com/sankofa-labs/sankofa/internal/respond"
	"github.com/sankofa-labs/sankofa/internal/search"
	"github.com/sankofa-labs/sankofa/internal/textproc"
	"github.com/sankofa-labs/sankofa/internal/validator"
)

const (
	generalTopic  = "General"
	searchLimit   = 8
	minConfidence = 12
)

const refusalMessage = "I'm your African heritage guide — ask me about music, food, symbols, history, legends, or anything Black excellence!"

// ErrEmptyQuery is returned when the query is blank after trimming.
var ErrEmptyQuery = errors.New("empty query")

// topicRemovals strip descriptive wrapping from an extracted title so
// "History of Jollof Rice" tracks as "Jollof Rice".
var topicRemovals = []string{
	"death and state funeral of ", "history of ", "biography of ",
	"origin of ", "story of ", "life of ", "legacy of ",
	" recipe", " history", " biography",
}

// topicFollowUpMarkers decide whether the previous topic carries over
// to this turn. Broader than the phrasing check used for query
// rewriting: short queries carry the topic over even without a marker.
var topicFollowUpMarkers = []string{
	"tell me more", "more", "detail", "story", "biography", "yes", "yeah",
	"exactly", "continue", "another", "next", "also", "too", "what else",
	"and ", "so ", "but ", "that", "this", "he ", "she ", "it ",
	"his ", "her ", "their ", "him ", "them ", "education", "life",
	"childhood", "early life", "career", "achievements",
}

const maxTopicCarryTokens = 10

// Searcher is the local search surface the orchestrator drives.
type Searcher interface {
	Search(query string, in intent.Intent, limit int) ([]search.Result, error)
}

// Learner fetches and stores new content when local search misses.
type Learner interface {
	Learn(ctx context.Context, query string) (*lookup.Result, error)
}

// Reply is one answered turn.
type Reply struct {
	Response    string   `json:"response"`
	Source      string   `json:"source,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Topic       string   `json:"debug_topic,omitempty"`
}

// Orchestrator wires the conversational pipeline together.
type Orchestrator struct {
	validator *validator.Validator
	searcher  Searcher
	conv      *conversation.Manager
	learner   Learner
	online    func() bool
}

func New(v *validator.Validator, s Searcher, conv *conversation.Manager, l Learner, online func() bool) *Orchestrator {
	return &Orchestrator{validator: v, searcher: s, conv: conv, learner: l, online: online}
}

// Ask answers one user turn for the given session and records the
// exchange. An off-domain query gets a fixed refusal, recorded under
// the General topic so it never pollutes topic tracking.
func (o *Orchestrator) Ask(ctx context.Context, sessionID, query string) (*Reply, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	recent, err := o.conv.RecentContext(sessionID, conversation.DefaultContextLimit)
	if err != nil {
		return nil, fmt.Errorf("loading context: %w", err)
	}

	queryLower := strings.ToLower(query)
	in := intent.Detect(query)

	// Topic carried over from the previous exchange, if this turn reads
	// like a continuation. The bold title in the last bot response wins
	// over the stored topic because it names what was actually answered.
	currentTopic := ""
	if len(recent) > 0 {
		last := recent[len(recent)-1]
		lastTopic := last.Topic
		if t := titleFromResponse(last.BotResponse); t != "" {
			lastTopic = t
		}
		if carriesTopic(queryLower) {
			currentTopic = lastTopic
		}
	}
	if currentTopic == "" {
		currentTopic = generalTopic
	}

	searchQuery := query
	if conversation.IsFollowUpPhrasing(query) && currentTopic != generalTopic {
		searchQuery = currentTopic + " " + query
	}

	// The raw query, the rewritten query, or the tracked topic: any of
	// the three keeps the turn in-domain, so follow-ups like "where was
	// he born" survive validation.
	valid := o.validator.IsInDomain(query) ||
		o.validator.IsInDomain(searchQuery) ||
		(currentTopic != generalTopic && o.validator.IsInDomain(currentTopic))
	if !valid {
		if err := o.conv.RecordExchange(sessionID, query, refusalMessage, generalTopic); err != nil {
			return nil, fmt.Errorf("recording refusal: %w", err)
		}
		return &Reply{Response: refusalMessage}, nil
	}

	results, err := o.searcher.Search(searchQuery, in, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	var responseText, finalTopic string
	switch {
	case len(results) > 0 && results[0].Score > minConfidence:
		topic := currentTopic
		if topic == generalTopic {
			topic = ""
		}
		responseText = respond.Generate(query, results, in, len(recent) > 0, topic)
		finalTopic = currentTopic
		if currentTopic == generalTopic {
			finalTopic = results[0].Title
		}

	case o.online():
		wikiQuery := currentTopic
		if currentTopic == generalTopic {
			wikiQuery = query
		}
		slog.Info("falling back to online lookup", "query", wikiQuery)

		learned, err := o.learner.Learn(ctx, wikiQuery)
		if err != nil {
			slog.Warn("online lookup failed", "query", wikiQuery, "error", err)
			learned = nil
		}
		if learned != nil {
			responseText = learned.Response
			finalTopic = currentTopic
			if currentTopic == generalTopic {
				finalTopic = wikiQuery
			}
		} else {
			responseText = respond.Fallback(query, in)
			finalTopic = currentTopic
		}

	default:
		responseText = respond.Fallback(query, in)
		finalTopic = currentTopic
	}

	if err := o.conv.RecordExchange(sessionID, query, responseText, finalTopic); err != nil {
		return nil, fmt.Errorf("recording exchange: %w", err)
	}

	reply := &Reply{Response: responseText, Source: "Sankofa AI", Topic: finalTopic}
	if len(results) > 0 {
		reply.Source = results[0].Title
		for _, r := range results[1:] {
			reply.Suggestions = append(reply.Suggestions, r.Title)
			if len(reply.Suggestions) == 5 {
				break
			}
		}
	}
	return reply, nil
}

// titleFromResponse pulls the first bold span out of a bot response and
// strips descriptive wrapping. Returns "" when there is no usable
// title.
func titleFromResponse(response string) string {
	if !strings.Contains(response, "**") {
		return ""
	}
	parts := strings.SplitN(response, "**", 3)
	if len(parts) < 2 {
		return ""
	}
	extracted := strings.TrimSpace(parts[1])
	if len(extracted) <= 2 {
		return ""
	}
	for _, removal := range topicRemovals {
		extracted = strings.TrimSpace(strings.ReplaceAll(strings.ToLower(extracted), removal, ""))
	}
	return textproc.TitleCase(extracted)
}

func carriesTopic(queryLower string) bool {
	for _, marker := range topicFollowUpMarkers {
		if strings.Contains(queryLower, marker) {
			return true
		}
	}
	return len(strings.Fields(queryLower)) <= maxTopicCarryTokens
}
