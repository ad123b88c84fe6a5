package main

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sankofa-labs/sankofa/internal/config"
	"github.com/sankofa-labs/sankofa/internal/lookup"
	"github.com/sankofa-labs/sankofa/internal/search"
	"github.com/sankofa-labs/sankofa/internal/seed"
	"github.com/sankofa-labs/sankofa/internal/storage"
)

// --- ask ---

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the heritage guide a question",
	Long: `Ask the heritage guide a question.

Examples:
  sankofa ask what is jollof rice
  sankofa ask --session kitchen tell me more`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		session, _ := cmd.Flags().GetString("session")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.post(cmd.Context(), "/api/chat", map[string]string{"query": query}, session)
		if err != nil {
			return err
		}

		var reply struct {
			Response    string   `json:"response"`
			Source      string   `json:"source"`
			Suggestions []string `json:"suggestions"`
		}
		if err := decodeJSON(resp, &reply); err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, reply.Response)
		if reply.Source != "" {
			printStatus("Source", "%s", reply.Source)
		}
		for _, s := range reply.Suggestions {
			printStep("try: %s", s)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().String("session", "", "session ID for conversational follow-ups")
}

// --- upload ---

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a document into the library",
	Long: `Upload a document into the library.

PDF and HTML files have their text extracted; anything else is read as
plain text. The document must be on-topic or the server rejects it.

Examples:
  sankofa upload ./highlife.pdf --title "History of Highlife"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		title, _ := cmd.Flags().GetString("title")
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening file: %w", err)
		}
		defer f.Close()

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		if err := w.WriteField("title", title); err != nil {
			return err
		}
		part, err := w.CreateFormFile("document", filepath.Base(path))
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f); err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		if err := w.Close(); err != nil {
			return err
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.postRaw(cmd.Context(), "/upload", w.FormDataContentType(), &buf)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			if resp.StatusCode == 400 {
				return fmt.Errorf("rejected: document is not African/Black heritage content")
			}
			return fmt.Errorf("server returned %d", resp.StatusCode)
		}

		printSuccess("Uploaded %q", title)
		return nil
	},
}

func init() {
	uploadCmd.Flags().String("title", "", "title for the document (defaults to the file name)")
}

// --- seed ---

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fetch starter topics into an empty library",
	Long: `Fetch starter topics into an empty library.

Downloads a small set of heritage articles from the online encyclopedia
so first conversations have something to hit. Does nothing when the
library already has content. Run this while the server is stopped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if !lookup.Online(3 * time.Second) {
			printError("no internet connection")
			return fmt.Errorf("seeding requires an internet connection")
		}

		store, err := storage.Open(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("opening storage: %w", err)
		}
		defer store.Close()

		wiki := lookup.NewClient(cfg.LookupBaseURL, cfg.LookupTimeout)
		engine := search.New(store)

		printStep("fetching %d starter topics", len(seed.Topics))
		if err := seed.New(wiki, store, engine).Run(cmd.Context()); err != nil {
			return err
		}

		count, err := store.ContentCount()
		if err != nil {
			return err
		}
		printSuccess("Library holds %d articles", count)
		return nil
	},
}
