// Package advisor provides the text-generation collaborator behind the
// landscape, ROI and risk-narrative screens. Its answers are advisory: they
// never feed the scoring engine.
package advisor

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"

	"github.com/sells-group/ai-navigator/internal/config"
	"github.com/sells-group/ai-navigator/internal/resilience"
	"github.com/sells-group/ai-navigator/pkg/anthropic"
)

// Operation names used in errors and logs.
const (
	OpRecommendTools = "recommend_tools"
	OpAnalyzeROI     = "analyze_roi"
	OpAssessRisk     = "assess_risk"
)

// HealthReporter is implemented by advisors that guard their upstream with a
// circuit breaker.
type HealthReporter interface {
	BreakerState() resilience.BreakerState
}

// Advisor generates tool suggestions, ROI assessments and risk narratives.
type Advisor interface {
	RecommendTools(ctx context.Context, role string) ([]string, error)
	AnalyzeROI(ctx context.Context, req ROIRequest) (*ROIAnalysis, error)
	AssessRisk(ctx context.Context, tool, roiText string) (string, error)
}

// ROIRequest describes a pilot project for ROI analysis.
type ROIRequest struct {
	ToolName    string `json:"tool_name"`
	Description string `json:"project_description"`
	Benefits    string `json:"projected_benefits"`
	Costs       string `json:"estimated_costs"`
}

// ROIAnalysis is the advisor's ROI verdict. Scores are 0-100.
type ROIAnalysis struct {
	Assessment       string `json:"roi_assessment" yaml:"roi_assessment"`
	RiskScore        int    `json:"risk_score" yaml:"risk_score"`
	OpportunityScore int    `json:"opportunity_score" yaml:"opportunity_score"`
}

func (a *ROIAnalysis) clamp() {
	a.RiskScore = max(0, min(100, a.RiskScore))
	a.OpportunityScore = max(0, min(100, a.OpportunityScore))
}

// Error is returned when the upstream model fails. Message is safe to show
// to an end user.
type Error struct {
	Op        string
	Message   string
	Retryable bool
	Err       error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("advisor: %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("advisor: %s: %s: %v", e.Op, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var userMessages = map[string]string{
	OpRecommendTools: "Could not fetch AI tool recommendations. Please try again.",
	OpAnalyzeROI:     "Could not analyze the project. Please try again.",
	OpAssessRisk:     "Could not generate the risk assessment. Please try again.",
}

func newError(op string, err error, retryable bool) *Error {
	return &Error{Op: op, Message: userMessages[op], Retryable: retryable, Err: err}
}

// InputError lists every problem with a request before any model call is made.
type InputError struct {
	Problems []string
}

func (e *InputError) Error() string {
	return "advisor: invalid input: " + strings.Join(e.Problems, "; ")
}

func minLength(field, value string, n int, problems []string) []string {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < n {
		problems = append(problems, fmt.Sprintf("%s must be at least %d characters", field, n))
	}
	return problems
}

// ValidateRole checks a landscape role.
func ValidateRole(role string) error {
	if p := minLength("role", role, 2, nil); len(p) > 0 {
		return &InputError{Problems: p}
	}
	return nil
}

// Validate checks an ROI request.
func (r ROIRequest) Validate() error {
	var p []string
	if strings.TrimSpace(r.ToolName) == "" {
		p = append(p, "tool_name is required")
	}
	p = minLength("project_description", r.Description, 10, p)
	p = minLength("projected_benefits", r.Benefits, 10, p)
	p = minLength("estimated_costs", r.Costs, 2, p)
	if len(p) > 0 {
		return &InputError{Problems: p}
	}
	return nil
}

func validateRisk(tool, roiText string) error {
	var p []string
	if strings.TrimSpace(tool) == "" {
		p = append(p, "tool is required")
	}
	if strings.TrimSpace(roiText) == "" {
		p = append(p, "roi_analysis is required")
	}
	if len(p) > 0 {
		return &InputError{Problems: p}
	}
	return nil
}

// New builds the advisor selected by cfg.Advisor.Provider.
func New(cfg *config.Config) (Advisor, error) {
	switch cfg.Advisor.Provider {
	case "stub":
		return NewStub(), nil
	case "anthropic", "":
		if cfg.Anthropic.Key == "" {
			return nil, eris.New("advisor: anthropic.key is required for the anthropic provider")
		}
		return NewClaude(anthropic.NewClient(cfg.Anthropic.Key), cfg.Anthropic, cfg.Advisor), nil
	default:
		return nil, eris.Errorf("advisor: unknown provider %q", cfg.Advisor.Provider)
	}
}
