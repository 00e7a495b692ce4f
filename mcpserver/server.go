// Package mcpserver is the thin MCP plumbing around the fakesmith engine:
// tool definitions, call handling, and the success/failure envelopes. All
// generation behavior lives in the root package.
package mcpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fakesmith/fakesmith"
)

// New builds the MCP server exposing the three generation tools. The input
// schemas advertised to hosts are the same reflected schemas the engine
// validates against.
func New(engine *fakesmith.Engine, logger *slog.Logger) *server.MCPServer {
	if logger == nil {
		logger = slog.Default()
	}
	s := server.NewMCPServer("fakesmith", fakesmith.Version,
		server.WithToolCapabilities(false),
	)
	h := &handler{engine: engine, logger: logger}

	s.AddTool(mcp.NewToolWithRawSchema(
		fakesmith.ToolCustomData,
		"Generate fake structured data from a list of named, typed fields. Supported type tags: "+
			strings.Join(engine.Tags(), ", "),
		engine.CustomSchema(),
	), h.call)

	s.AddTool(mcp.NewToolWithRawSchema(
		fakesmith.ToolPerson,
		"Generate a fake person record. Available fields: "+
			strings.Join(fakesmith.PersonFields, ", ")+
			". The address field expands to a nested record.",
		engine.PersonSchema(),
	), h.call)

	s.AddTool(mcp.NewToolWithRawSchema(
		fakesmith.ToolCompany,
		"Generate a fake company record. Available fields: "+
			strings.Join(fakesmith.CompanyFields, ", ")+
			". The address field expands to a nested record.",
		engine.CompanySchema(),
	), h.call)

	return s
}

// handler routes every tool call through the engine. A single handler
// serves all three tools; the engine selects the request shape by name.
type handler struct {
	engine *fakesmith.Engine
	logger *slog.Logger
}

func (h *handler) call(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.Params.Name
	rec, err := h.engine.Route(name, req.GetArguments())
	if err != nil {
		h.logger.Error("request failed", "tool", name, "error", err)
		return failureResult(err), nil
	}
	body, err := rec.Indent()
	if err != nil {
		h.logger.Error("response serialization failed", "tool", name, "error", err)
		return failureResult(err), nil
	}
	return mcp.NewToolResultText(string(body)), nil
}

// failureResult builds the failure envelope: a text content block holding
// {"error": ..., "status": "failed"} plus the protocol-level error flag.
func failureResult(callErr error) *mcp.CallToolResult {
	body, err := json.MarshalIndent(map[string]string{
		"error":  callErr.Error(),
		"status": "failed",
	}, "", "  ")
	if err != nil {
		body = []byte(`{"error": "internal serialization failure", "status": "failed"}`)
	}
	res := mcp.NewToolResultText(string(body))
	res.IsError = true
	return res
}
