package api

import (
	"embed"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sankofa-labs/sankofa/internal/extract"
	"github.com/sankofa-labs/sankofa/internal/storage"
	"github.com/sankofa-labs/sankofa/internal/textproc"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// maxDocTextBytes caps how much text is pulled out of one uploaded
// document.
const maxDocTextBytes = 1 << 20

func handleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, http.StatusOK, "chat.html", nil)
	}
}

type libraryEntry struct {
	ID          int64
	Title       string
	Category    string
	Excerpt     string
	SearchCount int
	CreatedAt   time.Time
}

func handleLibrary(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contents, err := deps.Store.ListContentByRecency()
		if err != nil {
			slog.Error("listing library failed", "error", err)
			httpError(w, http.StatusInternalServerError, "failed to load library")
			return
		}

		entries := make([]libraryEntry, len(contents))
		for i, c := range contents {
			entries[i] = libraryEntry{
				ID:          c.ID,
				Title:       c.Title,
				Category:    c.Category,
				Excerpt:     textproc.Clip(c.Body, 200),
				SearchCount: c.SearchCount,
				CreatedAt:   c.CreatedAt,
			}
		}
		renderPage(w, http.StatusOK, "library.html", map[string]any{"Entries": entries})
	}
}

func handleUploadForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, http.StatusOK, "upload.html", map[string]any{})
	}
}

func handleUpload(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, deps.MaxUploadBytes)
		if err := r.ParseMultipartForm(deps.MaxUploadBytes); err != nil {
			renderPage(w, http.StatusBadRequest, "upload.html", map[string]any{
				"Error": "Upload is too large or malformed.",
			})
			return
		}

		title := strings.TrimSpace(r.FormValue("title"))
		if title == "" {
			title = "Document"
		}
		body := r.FormValue("content")

		var docText, storedName string
		if file, header, err := r.FormFile("document"); err == nil {
			defer file.Close()
			docText, storedName = saveAndExtract(deps.UploadDir, file, header.Filename)
		}

		full := title + " " + body + " " + docText
		if !deps.Validator.IsInDomain(full) {
			renderPage(w, http.StatusBadRequest, "upload.html", map[string]any{
				"Error": "Must be African/Black culture content",
			})
			return
		}

		content := &storage.Content{
			Title:          title,
			Body:           body,
			Category:       deps.Validator.Categorize(full)[0],
			SourceFilename: storedName,
			SourceDocText:  docText,
			Keywords:       textproc.ContentKeywords(full, 10),
		}
		if content.Body == "" {
			content.Body = docText
		}
		if err := deps.Store.SaveContent(content); err != nil {
			slog.Error("saving upload failed", "title", title, "error", err)
			httpError(w, http.StatusInternalServerError, "failed to save content")
			return
		}
		if err := deps.Index.Rebuild(); err != nil {
			slog.Warn("rebuilding index after upload failed", "error", err)
		}

		http.Redirect(w, r, "/library", http.StatusSeeOther)
	}
}

// saveAndExtract persists the uploaded file under a fresh name and
// pulls plain text out of it by extension. Extraction failures degrade
// to an empty document text rather than failing the upload.
func saveAndExtract(uploadDir string, file io.Reader, originalName string) (docText, storedName string) {
	ext := strings.ToLower(filepath.Ext(originalName))
	storedName = uuid.New().String() + ext
	path := filepath.Join(uploadDir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		slog.Warn("storing upload failed", "file", originalName, "error", err)
		return "", ""
	}
	_, copyErr := io.Copy(dst, file)
	dst.Close()
	if copyErr != nil {
		slog.Warn("writing upload failed", "file", originalName, "error", copyErr)
		return "", storedName
	}

	switch ext {
	case ".pdf":
		text, err := extract.PDFText(path, maxDocTextBytes)
		if err != nil {
			slog.Warn("pdf extraction failed", "file", originalName, "error", err)
			return "", storedName
		}
		return text, storedName
	case ".html", ".htm":
		f, err := os.Open(path)
		if err != nil {
			return "", storedName
		}
		defer f.Close()
		text, err := extract.HTMLText(f)
		if err != nil {
			slog.Warn("html extraction failed", "file", originalName, "error", err)
			return "", storedName
		}
		return text, storedName
	default:
		b, err := os.ReadFile(path)
		if err != nil {
			return "", storedName
		}
		return textproc.Clip(string(b), maxDocTextBytes), storedName
	}
}

func renderPage(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("rendering template failed", "template", name, "error", err)
	}
}
