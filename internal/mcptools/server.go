// Package mcptools exposes the scoring engine and catalog as MCP tools so
// assistants can run the navigator over stdio.
package mcptools

import (
	"encoding/json"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with every navigator tool registered.
func NewServer(version string) *server.MCPServer {
	s := server.NewMCPServer(
		"ai-navigator",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Compare the customer-facing and internal AI pilots with compute_recommendation, "+
			"look up slider severities with classify_severity and fetch the implementation plan with get_roadmap."),
	)

	rec := NewRecommendationTool()
	s.AddTool(rec.Definition(), rec.Handle)

	sev := NewSeverityTool()
	s.AddTool(sev.Definition(), sev.Handle)

	roadmap := NewRoadmapTool()
	s.AddTool(roadmap.Definition(), roadmap.Handle)

	return s
}

// intArg returns an integer argument. ok is false when the argument is
// present but not a whole number.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) (val int, ok bool) {
	raw, present := req.GetArguments()[key]
	if !present || raw == nil {
		return defaultVal, true
	}
	f, isNum := raw.(float64)
	if !isNum || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(out)), nil
}
