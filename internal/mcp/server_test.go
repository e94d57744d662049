package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/horizonedu/starbot/internal/bot"
	"github.com/horizonedu/starbot/internal/llm"
	"github.com/horizonedu/starbot/internal/media"
)

// canned implements retriever.Retriever for testing.
type canned struct{ passages []string }

func (c canned) Initialize(context.Context) error { return nil }
func (c canned) Search(_ context.Context, _ string, k int) []string {
	if len(c.passages) > k {
		return c.passages[:k]
	}
	return c.passages
}

func newTestMCP(passages ...string) *Server {
	engine := bot.New(
		canned{passages: passages},
		llm.NewMockProvider(),
		media.NewMatcher(&media.Catalog{}, ""),
		3,
	)
	return NewServer(engine, canned{passages: passages})
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"ask_question", askQuestionTool, "ask_question"},
		{"search_content", searchContentTool, "search_content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestMCP()
	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.engine == nil {
		t.Error("engine not set correctly")
	}
}

func TestHandleAskQuestion(t *testing.T) {
	srv := newTestMCP("some page text")
	ctx := context.Background()

	t.Run("known question", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"question": "Where is Star College located?",
		}

		result, err := srv.handleAskQuestion(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
	})

	t.Run("missing question", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleAskQuestion(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Fatal("expected a tool error for a missing question")
		}
	})
}

func TestHandleSearchContent(t *testing.T) {
	srv := newTestMCP("first passage", "second passage", "third passage", "fourth passage")
	ctx := context.Background()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{
		"query": "passage",
		"limit": 2,
	}

	result, err := srv.handleSearchContent(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}

	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("expected text content")
	}
	if !strings.Contains(tc.Text, "first passage") || !strings.Contains(tc.Text, "second passage") {
		t.Errorf("text = %q", tc.Text)
	}
	if strings.Contains(tc.Text, "third passage") {
		t.Errorf("limit was not applied: %q", tc.Text)
	}
}
