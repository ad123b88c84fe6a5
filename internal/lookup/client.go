// Package lookup learns new heritage content from an online encyclopedia
// when local search comes up empty.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to a MediaWiki Action API endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client targeting the given api.php base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Page is a fetched article: full plain-text body plus the lead section
// as a summary. Disambiguation marks index pages that list several
// articles instead of describing one subject.
type Page struct {
	Title          string
	Summary        string
	Content        string
	Disambiguation bool
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type pagesResponse struct {
	Query struct {
		Pages map[string]struct {
			Title     string            `json:"title"`
			Extract   string            `json:"extract"`
			Missing   *string           `json:"missing"`
			PageProps map[string]string `json:"pageprops"`
			Links     []struct {
				Title string `json:"title"`
			} `json:"links"`
		} `json:"pages"`
	} `json:"query"`
}

// Search returns up to limit article titles matching the query, best
// match first.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("format", "json")

	var res searchResponse
	if err := c.get(ctx, params, &res); err != nil {
		return nil, fmt.Errorf("searching for %q: %w", query, err)
	}

	titles := make([]string, len(res.Query.Search))
	for i, s := range res.Query.Search {
		titles[i] = s.Title
	}
	return titles, nil
}

// Fetch retrieves the plain-text extract of one article, following
// redirects. The summary is the text before the first section heading.
func (c *Client) Fetch(ctx context.Context, title string) (Page, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts|pageprops")
	params.Set("explaintext", "1")
	params.Set("redirects", "1")
	params.Set("ppprop", "disambiguation")
	params.Set("titles", title)
	params.Set("format", "json")

	var res pagesResponse
	if err := c.get(ctx, params, &res); err != nil {
		return Page{}, fmt.Errorf("fetching %q: %w", title, err)
	}

	for _, p := range res.Query.Pages {
		if p.Missing != nil {
			return Page{}, fmt.Errorf("page %q not found", title)
		}
		_, disambig := p.PageProps["disambiguation"]
		return Page{
			Title:          p.Title,
			Summary:        leadSection(p.Extract),
			Content:        p.Extract,
			Disambiguation: disambig,
		}, nil
	}
	return Page{}, fmt.Errorf("page %q not found", title)
}

// DisambiguationOptions lists the articles a disambiguation page links
// to, main namespace only.
func (c *Client) DisambiguationOptions(ctx context.Context, title string, limit int) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "links")
	params.Set("plnamespace", "0")
	params.Set("pllimit", strconv.Itoa(limit))
	params.Set("titles", title)
	params.Set("format", "json")

	var res pagesResponse
	if err := c.get(ctx, params, &res); err != nil {
		return nil, fmt.Errorf("listing options for %q: %w", title, err)
	}

	var options []string
	for _, p := range res.Query.Pages {
		for _, l := range p.Links {
			options = append(options, l.Title)
		}
	}
	return options, nil
}

func (c *Client) get(ctx context.Context, params url.Values, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// leadSection returns the text before the first "== Heading ==" line.
func leadSection(extract string) string {
	if i := strings.Index(extract, "\n=="); i >= 0 {
		return strings.TrimSpace(extract[:i])
	}
	return strings.TrimSpace(extract)
}
