package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sells-group/ai-navigator/internal/model"
	"github.com/sells-group/ai-navigator/internal/scorer"
)

// SeverityTool handles the classify_severity MCP tool.
type SeverityTool struct{}

// NewSeverityTool creates a SeverityTool.
func NewSeverityTool() *SeverityTool {
	return &SeverityTool{}
}

func categoryNames() []string {
	cats := model.Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

// Definition returns the MCP tool definition.
func (t *SeverityTool) Definition() mcp.Tool {
	return mcp.NewTool("classify_severity",
		mcp.WithDescription(
			"Map a 1-10 risk slider value to Low, Medium or High. "+
				"With a category, also returns the risk summary shown on the dashboard.",
		),
		mcp.WithNumber("value",
			mcp.Required(),
			mcp.Description("Risk slider value, 1-10"),
		),
		mcp.WithString("category",
			mcp.Description("Risk category"),
			mcp.Enum(categoryNames()...),
		),
		mcp.WithString("base_summary",
			mcp.Description("Base summary text to prefix; used for categories without a fixed message"),
		),
	)
}

type severityResult struct {
	Value    int            `json:"value"`
	Severity model.Severity `json:"severity"`
	Category model.Category `json:"category,omitempty"`
	Summary  string         `json:"summary,omitempty"`
}

// Handle processes the classify_severity tool call.
func (t *SeverityTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, present := req.GetArguments()["value"]; !present {
		return mcp.NewToolResultError("'value' is required"), nil
	}
	value, ok := intArg(req, "value", 0)
	if !ok {
		return mcp.NewToolResultError("'value' must be a whole number"), nil
	}
	if value < 1 || value > 10 {
		return mcp.NewToolResultError(fmt.Sprintf("'value' must be between 1 and 10, got %d", value)), nil
	}

	out := severityResult{Value: value, Severity: scorer.ClassifySeverity(value)}
	if c := req.GetString("category", ""); c != "" {
		cat := model.Category(c)
		if !cat.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unknown category %q", c)), nil
		}
		out.Category = cat
		out.Summary = scorer.Summarize(cat, out.Severity, req.GetString("base_summary", ""))
	}
	return jsonResult(out)
}
