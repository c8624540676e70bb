// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes apidrift's comparison engine as an MCP tool over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apidrift/apidrift"
)

const serverInstructions = `apidrift MCP server — compares two versions of an OpenAPI specification and classifies every difference by severity (breaking, warning, change).

Provide the base and current documents as file paths. The compare tool reports per-schema and per-route results; use breaking_only=true to focus on changes that threaten existing consumers.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := NewServer()
	return server.Run(ctx, &mcp.StdioTransport{})
}

// NewServer builds the MCP server with all tools registered.
func NewServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "apidrift", Version: apidrift.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare",
		Description: "Compare two versions of an OpenAPI specification document and report drift. Detects schema differences (type, required-ness, nullability, format, enum values, property sets, descriptions) and route differences (added/removed operations, parameters, response statuses, referenced schemas), each classified as breaking, warning, or change. Use breaking_only=true to show only breaking violations.",
	}, handleCompare)
	return server
}

// errResult renders an error as a failed tool call rather than a protocol
// error, so clients see the message inline.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
