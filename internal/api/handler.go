// Package api is the HTTP surface: the chat endpoint, the library and
// upload pages, feedback, and health.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sankofa-labs/sankofa/internal/chat"
	"github.com/sankofa-labs/sankofa/internal/storage"
	"github.com/sankofa-labs/sankofa/internal/validator"
)

const maxRequestBodySize = 1 << 20 // 1MB

// Asker answers one conversational turn.
type Asker interface {
	Ask(ctx context.Context, sessionID, query string) (*chat.Reply, error)
}

// Indexer is rebuilt after uploads land.
type Indexer interface {
	Rebuild() error
}

// Deps holds everything the HTTP handlers need.
type Deps struct {
	Store          *storage.Store
	Chat           Asker
	Validator      *validator.Validator
	Index          Indexer
	UploadDir      string
	MaxUploadBytes int64
}

// NewHandler builds the full router. Every request runs through the
// panic recoverer and the session cookie middleware.
func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(recoverer)
	r.Use(sessionMiddleware)

	r.Get("/health", handleHealth(deps))
	r.Get("/", handleIndex())
	r.Get("/library", handleLibrary(deps))
	r.Get("/upload", handleUploadForm())
	r.Post("/upload", handleUpload(deps))
	r.Post("/api/chat", handleChat(deps))
	r.Post("/api/feedback", handleFeedback(deps))

	return r
}

type chatRequest struct {
	Query string `json:"query"`
}

func handleChat(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid request body: %v", err)
			return
		}

		reply, err := deps.Chat.Ask(r.Context(), sessionID(r), req.Query)
		if errors.Is(err, chat.ErrEmptyQuery) {
			httpError(w, http.StatusBadRequest, "Ask me anything!")
			return
		}
		if err != nil {
			slog.Error("chat turn failed", "error", err)
			httpError(w, http.StatusInternalServerError, "Something went wrong. Try again!")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reply)
	}
}

func handleHealth(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dbOK := deps.Store.Ping() == nil

		code := http.StatusOK
		if !dbOK {
			code = http.StatusInternalServerError
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]any{
			"status": "ok",
			"db":     dbOK,
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

type feedbackRequest struct {
	Query     string `json:"query"`
	ContentID int64  `json:"content_id"`
	Helpful   bool   `json:"helpful"`
}

func handleFeedback(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req feedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid request body: %v", err)
			return
		}
		if req.Query == "" {
			httpError(w, http.StatusBadRequest, "query is required")
			return
		}

		f := storage.Feedback{
			ID:        uuid.NewString(),
			Query:     req.Query,
			ContentID: req.ContentID,
			Helpful:   req.Helpful,
		}
		if err := deps.Store.SaveFeedback(f); err != nil {
			slog.Error("saving feedback failed", "error", err)
			httpError(w, http.StatusInternalServerError, "failed to save feedback")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "saved"})
	}
}

func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic serving request", "path", r.URL.Path, "panic", rec)
				httpError(w, http.StatusInternalServerError, "Something went wrong. Try again!")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func httpError(w http.ResponseWriter, code int, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error": fmt.Sprintf(format, args...),
	})
}
