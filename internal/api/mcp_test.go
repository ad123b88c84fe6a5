package api

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sankofa-labs/sankofa/internal/chat"
	"github.com/sankofa-labs/sankofa/internal/intent"
	"github.com/sankofa-labs/sankofa/internal/search"
)

type fakeMCPSearcher struct {
	results []search.Result
}

func (f *fakeMCPSearcher) Search(_ string, _ intent.Intent, _ int) ([]search.Result, error) {
	return f.results, nil
}

func makeCallToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("no content in result")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return tc.Text
}

func TestAskHeritageTool(t *testing.T) {
	asker := &fakeAsker{reply: &chat.Reply{
		Response: "**Fufu**\n\nFufu is a staple food.",
		Source:   "Fufu",
		Topic:    "Fufu",
	}}
	handler := mcpAskHeritage(MCPDeps{Chat: asker, Searcher: &fakeMCPSearcher{}})

	res, err := handler(context.Background(), makeCallToolRequest("ask_heritage", map[string]any{
		"query": "what is fufu",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", toolText(t, res))
	}

	var reply chat.Reply
	if err := json.Unmarshal([]byte(toolText(t, res)), &reply); err != nil {
		t.Fatalf("decoding reply: %v", err)
	}
	if reply.Response != asker.reply.Response {
		t.Errorf("response: got %q", reply.Response)
	}
	// The default session keeps MCP follow-ups conversational.
	if len(asker.sessions) != 1 || asker.sessions[0] != "mcp" {
		t.Errorf("sessions: got %v", asker.sessions)
	}
}

func TestAskHeritageToolRequiresQuery(t *testing.T) {
	handler := mcpAskHeritage(MCPDeps{Chat: &fakeAsker{}, Searcher: &fakeMCPSearcher{}})

	res, err := handler(context.Background(), makeCallToolRequest("ask_heritage", map[string]any{}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected a tool error for a missing query")
	}
}

func TestSearchLibraryTool(t *testing.T) {
	searcher := &fakeMCPSearcher{results: []search.Result{
		{ID: 1, Title: "Jollof Rice", Body: "A one-pot rice dish.", Score: 94},
	}}
	handler := mcpSearchLibrary(MCPDeps{Chat: &fakeAsker{}, Searcher: searcher})

	res, err := handler(context.Background(), makeCallToolRequest("search_library", map[string]any{
		"query": "jollof",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", toolText(t, res))
	}

	text := toolText(t, res)
	if !strings.Contains(text, `"Jollof Rice"`) || !strings.Contains(text, `"score":94`) {
		t.Errorf("unexpected matches payload: %s", text)
	}
}

func TestSearchLibraryToolEmpty(t *testing.T) {
	handler := mcpSearchLibrary(MCPDeps{Chat: &fakeAsker{}, Searcher: &fakeMCPSearcher{}})

	res, err := handler(context.Background(), makeCallToolRequest("search_library", map[string]any{
		"query": "anything",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if got := toolText(t, res); got != "[]" {
		t.Errorf("expected empty array, got %s", got)
	}
}
