// Package mcp exposes the question answering engine to MCP clients
// over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/horizonedu/starbot/internal/bot"
	"github.com/horizonedu/starbot/internal/retriever"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes chatbot tools.
type Server struct {
	engine    *bot.Engine
	retriever retriever.Retriever
	mcp       *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(engine *bot.Engine, r retriever.Retriever) *Server {
	s := &Server{engine: engine, retriever: r}

	s.mcp = server.NewMCPServer(
		"starbot",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(askQuestionTool, s.handleAskQuestion)
	s.mcp.AddTool(searchContentTool, s.handleSearchContent)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
