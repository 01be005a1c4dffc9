package mcptools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sells-group/ai-navigator/internal/model"
	"github.com/sells-group/ai-navigator/internal/scorer"
)

// RecommendationTool handles the compute_recommendation MCP tool.
type RecommendationTool struct{}

// NewRecommendationTool creates a RecommendationTool.
func NewRecommendationTool() *RecommendationTool {
	return &RecommendationTool{}
}

// argName is the tool argument for one driver, e.g. "customer_new_revenue".
func argName(id model.OptionID, key string) string {
	return string(id) + "_" + key
}

// Definition returns the MCP tool definition. One numeric argument is
// declared per driver; omitted drivers take their catalog default.
func (t *RecommendationTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Score the customer-facing chatbot against the internal advisor-assist tool. " +
				"Each driver is an integer slider; omitted drivers use their defaults. " +
				"Returns the winner, composite scores, tier and risk profile as JSON.",
		),
	}
	for _, spec := range scorer.Options() {
		for _, d := range spec.Drivers {
			opts = append(opts, mcp.WithNumber(argName(spec.ID, d.Key),
				mcp.Description(fmt.Sprintf("%s: %s (%d-%d, default %d)", spec.Label, d.Label, d.Min, d.Max, d.Default)),
				mcp.Min(float64(d.Min)),
				mcp.Max(float64(d.Max)),
			))
		}
	}
	return mcp.NewTool("compute_recommendation", opts...)
}

// Handle processes the compute_recommendation tool call.
func (t *RecommendationTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputs := make([]model.OptionInput, 0, 2)
	var bad []string
	for _, spec := range scorer.Options() {
		in := spec.Defaults()
		for _, d := range spec.Drivers {
			name := argName(spec.ID, d.Key)
			v, ok := intArg(req, name, d.Default)
			if !ok {
				bad = append(bad, name)
				continue
			}
			in.Drivers[d.Key] = v
		}
		inputs = append(inputs, in)
	}
	if len(bad) > 0 {
		return mcp.NewToolResultError("these arguments must be whole numbers: " + strings.Join(bad, ", ")), nil
	}

	rec, err := scorer.ComputeRecommendation(inputs[0], inputs[1])
	if err != nil {
		var ve *scorer.ValidationError
		if errors.As(err, &ve) {
			return mcp.NewToolResultError("invalid input: " + strings.Join(ve.Problems, "; ")), nil
		}
		return nil, err
	}
	return jsonResult(rec)
}
