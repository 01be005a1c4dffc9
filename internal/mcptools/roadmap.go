package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sells-group/ai-navigator/internal/catalog"
	"github.com/sells-group/ai-navigator/internal/model"
	"github.com/sells-group/ai-navigator/internal/scorer"
)

// RoadmapTool handles the get_roadmap MCP tool.
type RoadmapTool struct{}

// NewRoadmapTool creates a RoadmapTool.
func NewRoadmapTool() *RoadmapTool {
	return &RoadmapTool{}
}

// Definition returns the MCP tool definition.
func (t *RoadmapTool) Definition() mcp.Tool {
	return mcp.NewTool("get_roadmap",
		mcp.WithDescription(
			"Return the phased implementation roadmap with actions and KPIs. "+
				"With a tier, also returns that tier's budget, timeline and next steps.",
		),
		mcp.WithString("tier",
			mcp.Description("Investment tier"),
			mcp.Enum(string(model.TierExploratory), string(model.TierStrategic), string(model.TierAccelerated)),
		),
	)
}

type roadmapResult struct {
	Roadmap   catalog.Roadmap       `json:"roadmap"`
	Tier      *model.TierDescriptor `json:"tier,omitempty"`
	NextSteps []string              `json:"next_steps,omitempty"`
}

// Handle processes the get_roadmap tool call.
func (t *RoadmapTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := catalog.LoadRoadmap()
	if err != nil {
		return nil, err
	}
	out := roadmapResult{Roadmap: r}

	if name := req.GetString("tier", ""); name != "" {
		tier := model.Tier(name)
		if tier.Level() == 0 {
			return mcp.NewToolResultError(fmt.Sprintf("unknown tier %q", name)), nil
		}
		desc := scorer.DescribeTier(tier)
		out.Tier = &desc
		out.NextSteps = catalog.NextSteps(tier)
	}
	return jsonResult(out)
}
