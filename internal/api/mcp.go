package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sankofa-labs/sankofa/internal/chat"
	"github.com/sankofa-labs/sankofa/internal/intent"
	"github.com/sankofa-labs/sankofa/internal/search"
	"github.com/sankofa-labs/sankofa/internal/textproc"
)

// MCPSearcher abstracts library search for the MCP layer.
type MCPSearcher interface {
	Search(query string, in intent.Intent, limit int) ([]search.Result, error)
}

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Chat     Asker
	Searcher MCPSearcher
}

// NewMCPServer creates an MCP server exposing the heritage guide as
// tools.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"sankofa",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("Sankofa — conversational guide to African and Black heritage: music, food, history, figures, and culture."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("ask_heritage",
			mcp.WithDescription("Ask the heritage guide a question. Conversational context is kept per session, so follow-up questions work."),
			mcp.WithString("query", mcp.Description("The question to ask"), mcp.Required()),
			mcp.WithString("session", mcp.Description("Session identifier for follow-up context (default \"mcp\")")),
		),
		mcpAskHeritage(deps),
	)

	s.AddTool(
		mcp.NewTool("search_library",
			mcp.WithDescription("Search the local knowledge library and return scored matches."),
			mcp.WithString("query", mcp.Description("Search query"), mcp.Required()),
			mcp.WithNumber("limit", mcp.Description("Maximum number of results (default 5)")),
		),
		mcpSearchLibrary(deps),
	)

	return s
}

func mcpAskHeritage(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcpError("query is required"), nil
		}
		session := req.GetString("session", "mcp")

		reply, err := deps.Chat.Ask(ctx, session, query)
		if errors.Is(err, chat.ErrEmptyQuery) {
			return mcpError("query is required"), nil
		}
		if err != nil {
			return mcpError(fmt.Sprintf("chat failed: %v", err)), nil
		}

		b, err := json.Marshal(reply)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal reply: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpSearchLibrary(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcpError("query is required"), nil
		}

		limit := req.GetInt("limit", 5)
		if limit <= 0 {
			limit = 5
		}
		if limit > 50 {
			limit = 50
		}

		results, err := deps.Searcher.Search(query, intent.Detect(query), limit)
		if err != nil {
			return mcpError(fmt.Sprintf("search failed: %v", err)), nil
		}
		if len(results) == 0 {
			return mcpText("[]"), nil
		}

		type match struct {
			ID      int64   `json:"id"`
			Title   string  `json:"title"`
			Score   float64 `json:"score"`
			Snippet string  `json:"snippet"`
		}
		matches := make([]match, len(results))
		for i, r := range results {
			matches[i] = match{
				ID:      r.ID,
				Title:   r.Title,
				Score:   r.Score,
				Snippet: textproc.Clip(r.Body, 300),
			}
		}

		b, err := json.Marshal(matches)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
