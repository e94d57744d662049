package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleAskQuestion runs the full answer pipeline for one question.
func (s *Server) handleAskQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}

	answer, err := s.engine.Ask(ctx, question)
	if err != nil {
		if answer != nil && answer.Answer != "" {
			return mcp.NewToolResultText(answer.Answer), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("answering failed: %v", err)), nil
	}

	var b strings.Builder
	b.WriteString(answer.Answer)
	for _, img := range answer.Images {
		fmt.Fprintf(&b, "\n\n[image] %s (%s)", img.Caption, img.URL)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleSearchContent returns raw retrieved passages for a query.
func (s *Server) handleSearchContent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 3)
	if limit <= 0 {
		limit = 3
	}

	passages := s.retriever.Search(ctx, query, limit)

	var b strings.Builder
	for i, p := range passages {
		if i > 0 {
			b.WriteString("\n\n---\n\n")
		}
		b.WriteString(p)
	}
	return mcp.NewToolResultText(b.String()), nil
}
