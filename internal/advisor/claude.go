package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/sells-group/ai-navigator/internal/config"
	"github.com/sells-group/ai-navigator/internal/resilience"
	"github.com/sells-group/ai-navigator/pkg/anthropic"
)

// Claude is the Anthropic-backed Advisor.
type Claude struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	policy    *resilience.Policy

	// roles collapses identical concurrent landscape lookups.
	roles singleflight.Group
}

// NewClaude wires client behind the configured rate limit, breaker and retries.
func NewClaude(client anthropic.Client, ac config.AnthropicConfig, cfg config.AdvisorConfig) *Claude {
	return &Claude{
		client:    client,
		model:     ac.Model,
		maxTokens: ac.MaxTokens,
		timeout:   cfg.Timeout(),
		policy: resilience.NewPolicy(resilience.PolicyConfig{
			Name:             "anthropic",
			RequestsPerSec:   cfg.RequestsPerSec,
			Burst:            cfg.Burst,
			MaxAttempts:      cfg.MaxAttempts,
			BreakerThreshold: cfg.BreakerThreshold,
			BreakerReset:     time.Duration(cfg.BreakerResetSecs) * time.Second,
			Retryable:        upstreamRetryable,
		}),
	}
}

func upstreamRetryable(err error) bool {
	return anthropic.IsRetryable(err) || resilience.IsTransient(err)
}

// RecommendTools suggests AI tools for a role.
func (c *Claude) RecommendTools(ctx context.Context, role string) ([]string, error) {
	if err := ValidateRole(role); err != nil {
		return nil, err
	}
	role = strings.TrimSpace(role)

	// The shared call outlives any one caller; complete bounds it by c.timeout.
	callCtx := context.WithoutCancel(ctx)
	ch := c.roles.DoChan(strings.ToLower(role), func() (any, error) {
		var out struct {
			Tools []string `json:"tools"`
		}
		if err := c.complete(callCtx, OpRecommendTools, fmt.Sprintf(toolsPrompt, role), &out); err != nil {
			return nil, err
		}
		return normalizeTools(out.Tools), nil
	})

	select {
	case <-ctx.Done():
		return nil, newError(OpRecommendTools, ctx.Err(), true)
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			zap.L().Debug("advisor: shared landscape lookup", zap.String("role", role))
		}
		return slices.Clone(res.Val.([]string)), nil
	}
}

// BreakerState reports the upstream circuit breaker state.
func (c *Claude) BreakerState() resilience.BreakerState {
	return c.policy.Breaker().State()
}

// AnalyzeROI asks the model for an ROI assessment with risk and opportunity
// scores, clamped to 0-100.
func (c *Claude) AnalyzeROI(ctx context.Context, req ROIRequest) (*ROIAnalysis, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(roiPrompt, req.ToolName, req.Description, req.Benefits, req.Costs)
	var out ROIAnalysis
	if err := c.complete(ctx, OpAnalyzeROI, prompt, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.Assessment) == "" {
		return nil, newError(OpAnalyzeROI, eris.New("empty roi_assessment"), true)
	}
	out.clamp()
	return &out, nil
}

// AssessRisk produces a markdown risk narrative for a tool and its ROI text.
func (c *Claude) AssessRisk(ctx context.Context, tool, roiText string) (string, error) {
	if err := validateRisk(tool, roiText); err != nil {
		return "", err
	}

	var out struct {
		RiskAssessment string `json:"risk_assessment"`
	}
	if err := c.complete(ctx, OpAssessRisk, fmt.Sprintf(riskPrompt, tool, roiText), &out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.RiskAssessment) == "" {
		return "", newError(OpAssessRisk, eris.New("empty risk_assessment"), true)
	}
	return out.RiskAssessment, nil
}

// complete sends one prompt through the resilience policy and decodes the
// JSON object in the reply into out.
func (c *Claude) complete(ctx context.Context, op, prompt string, out any) error {
	log := zap.L().With(zap.String("operation", op))

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	temp := 0.2
	req := anthropic.MessageRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		System:      anthropic.CachedSystem(systemPrompt),
		Messages:    []anthropic.Message{{Role: "user", Content: prompt}},
		Temperature: &temp,
	}

	resp, err := resilience.Call(ctx, c.policy, func(ctx context.Context) (*anthropic.MessageResponse, error) {
		return c.client.CreateMessage(ctx, req)
	})
	if err != nil {
		log.Warn("advisor: model call failed", zap.Error(err))
		return newError(op, err, isRetryable(err))
	}
	resp.Usage.LogCost(c.model, op)

	if err := json.Unmarshal([]byte(cleanJSON(resp.Text())), out); err != nil {
		log.Warn("advisor: failed to parse model json", zap.Error(err))
		return newError(op, eris.Wrap(err, "parse model json"), true)
	}
	return nil
}

func isRetryable(err error) bool {
	return upstreamRetryable(err) ||
		errors.Is(err, resilience.ErrBreakerOpen) ||
		errors.Is(err, context.DeadlineExceeded)
}

func normalizeTools(tools []string) []string {
	out := make([]string, 0, len(tools))
	seen := make(map[string]bool, len(tools))
	for _, t := range tools {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}
