package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sankofa-labs/sankofa/internal/chat"
	"github.com/sankofa-labs/sankofa/internal/storage"
	"github.com/sankofa-labs/sankofa/internal/validator"
)

type fakeAsker struct {
	reply    *chat.Reply
	err      error
	queries  []string
	sessions []string
}

func (f *fakeAsker) Ask(_ context.Context, sessionID, query string) (*chat.Reply, error) {
	if strings.TrimSpace(query) == "" {
		return nil, chat.ErrEmptyQuery
	}
	f.queries = append(f.queries, query)
	f.sessions = append(f.sessions, sessionID)
	return f.reply, f.err
}

type fakeIndexer struct{ rebuilds int }

func (f *fakeIndexer) Rebuild() error {
	f.rebuilds++
	return nil
}

func newTestValidator(t *testing.T) *validator.Validator {
	t.Helper()
	v, err := validator.New()
	if err != nil {
		t.Fatalf("building validator: %v", err)
	}
	return v
}

func newTestDeps(t *testing.T, asker Asker) (Deps, *fakeIndexer) {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	idx := &fakeIndexer{}
	return Deps{
		Store:          store,
		Chat:           asker,
		Validator:      newTestValidator(t),
		Index:          idx,
		UploadDir:      t.TempDir(),
		MaxUploadBytes: 16 << 20,
	}, idx
}

func TestChatEndpoint(t *testing.T) {
	asker := &fakeAsker{reply: &chat.Reply{
		Response: "**Sankofa**\n\nGo back and get it.",
		Source:   "Sankofa",
		Topic:    "Sankofa",
	}}
	deps, _ := newTestDeps(t, asker)
	h := NewHandler(deps)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"query":"what is sankofa"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body)
	}
	var reply chat.Reply
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decoding reply: %v", err)
	}
	if reply.Response != asker.reply.Response {
		t.Errorf("response: got %q", reply.Response)
	}

	// First contact mints a session cookie and the asker sees that ID.
	var cookie string
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			cookie = c.Value
		}
	}
	if cookie == "" {
		t.Fatal("expected a session cookie")
	}
	if len(asker.sessions) != 1 || asker.sessions[0] != cookie {
		t.Errorf("asker session %v does not match cookie %q", asker.sessions, cookie)
	}
}

func TestChatEmptyQuery(t *testing.T) {
	deps, _ := newTestDeps(t, &fakeAsker{})
	h := NewHandler(deps)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"query":"  "}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Ask me anything!") {
		t.Errorf("body: got %s", rec.Body)
	}
}

func TestChatReusesSessionCookie(t *testing.T) {
	asker := &fakeAsker{reply: &chat.Reply{Response: "ok"}}
	deps, _ := newTestDeps(t, asker)
	h := NewHandler(deps)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"query":"fufu"}`))
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "existing-session"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if len(asker.sessions) != 1 || asker.sessions[0] != "existing-session" {
		t.Errorf("asker sessions: got %v", asker.sessions)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			t.Error("existing session should not be re-issued")
		}
	}
}

func TestHealth(t *testing.T) {
	deps, _ := newTestDeps(t, &fakeAsker{})
	h := NewHandler(deps)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var body struct {
		Status string `json:"status"`
		DB     bool   `json:"db"`
		Time   string `json:"time"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Status != "ok" || !body.DB || body.Time == "" {
		t.Errorf("unexpected health body: %+v", body)
	}
}

func TestFeedback(t *testing.T) {
	deps, _ := newTestDeps(t, &fakeAsker{})
	h := NewHandler(deps)

	req := httptest.NewRequest(http.MethodPost, "/api/feedback",
		strings.NewReader(`{"query":"jollof","content_id":1,"helpful":true}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), `"saved"`) {
		t.Errorf("body: got %s", rec.Body)
	}
}

// Each vote gets its own row; a second vote must not collide with the
// first one's primary key.
func TestFeedbackRepeated(t *testing.T) {
	deps, _ := newTestDeps(t, &fakeAsker{})
	h := NewHandler(deps)

	bodies := []string{
		`{"query":"jollof","content_id":1,"helpful":true}`,
		`{"query":"jollof","content_id":1,"helpful":false}`,
	}
	for i, body := range bodies {
		req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("vote %d: status %d, body %s", i+1, rec.Code, rec.Body)
		}
	}
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func TestUploadStoresContent(t *testing.T) {
	deps, idx := newTestDeps(t, &fakeAsker{})
	h := NewHandler(deps)

	body, contentType := multipartBody(t, map[string]string{
		"title":   "Kente cloth",
		"content": "Kente is a woven cloth from Ghana with deep cultural meaning.",
	})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body)
	}
	if loc := rec.Header().Get("Location"); loc != "/library" {
		t.Errorf("redirect: got %q", loc)
	}

	saved, err := deps.Store.GetContentByTitle("Kente cloth")
	if err != nil {
		t.Fatalf("saved content not found: %v", err)
	}
	if saved.Keywords == "" {
		t.Error("saved content should carry keywords")
	}
	if idx.rebuilds != 1 {
		t.Errorf("index rebuilds: got %d, want 1", idx.rebuilds)
	}
}

func TestUploadRejectsOffDomain(t *testing.T) {
	deps, idx := newTestDeps(t, &fakeAsker{})
	h := NewHandler(deps)

	body, contentType := multipartBody(t, map[string]string{
		"title":   "Generic",
		"content": "Completely unrelated text.",
	})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Must be African/Black culture content") {
		t.Errorf("body: got %s", rec.Body)
	}
	if idx.rebuilds != 0 {
		t.Errorf("index should not be rebuilt, got %d", idx.rebuilds)
	}
}

func TestLibraryPage(t *testing.T) {
	deps, _ := newTestDeps(t, &fakeAsker{})
	if err := deps.Store.SaveContent(&storage.Content{
		Title:    "Highlife",
		Body:     "Highlife blends Akan rhythms with Western instruments.",
		Category: "music",
	}); err != nil {
		t.Fatal(err)
	}
	h := NewHandler(deps)

	req := httptest.NewRequest(http.MethodGet, "/library", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Highlife") {
		t.Errorf("library page missing content title")
	}
}

func TestIndexPage(t *testing.T) {
	deps, _ := newTestDeps(t, &fakeAsker{})
	h := NewHandler(deps)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Sankofa") {
		t.Error("chat page missing branding")
	}
}

func TestRecovererCatchesPanic(t *testing.T) {
	h := recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Something went wrong. Try again!") {
		t.Errorf("body: got %s", rec.Body)
	}
}
