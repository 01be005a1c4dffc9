package advisor

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
)

// Stub answers deterministically without a network call. It backs the
// "stub" provider for offline demos and tests.
type Stub struct{}

// NewStub returns a Stub advisor.
func NewStub() *Stub {
	return &Stub{}
}

var stubTools = map[string][]string{
	"advisor":    {"Portfolio Rebalancing Copilot", "Client Meeting Summarizer", "Next-Best-Action Engine"},
	"compliance": {"Regulatory Change Tracker", "Communications Surveillance Assistant", "KYC Document Reviewer"},
	"service":    {"Customer Service Chatbot", "Call Transcript Summarizer", "Sentiment Triage Router"},
	"operations": {"Document Intake Classifier", "Reconciliation Exception Assistant", "Process Mining Dashboard"},
}

var defaultStubTools = []string{"Enterprise Knowledge Search", "Meeting Summarizer", "Email Drafting Assistant"}

// RecommendTools picks a fixed list by keyword in the role.
func (s *Stub) RecommendTools(_ context.Context, role string) ([]string, error) {
	if err := ValidateRole(role); err != nil {
		return nil, err
	}
	lower := strings.ToLower(role)
	for _, key := range []string{"advisor", "compliance", "service", "operations"} {
		if strings.Contains(lower, key) {
			return append([]string(nil), stubTools[key]...), nil
		}
	}
	return append([]string(nil), defaultStubTools...), nil
}

// AnalyzeROI derives stable scores from a hash of the request.
func (s *Stub) AnalyzeROI(_ context.Context, req ROIRequest) (*ROIAnalysis, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(req.ToolName + "|" + req.Description + "|" + req.Benefits + "|" + req.Costs))
	sum := h.Sum32()

	a := &ROIAnalysis{
		Assessment: fmt.Sprintf("**%s** shows a plausible return. Benefits (%s) should be weighed against costs of %s.",
			req.ToolName, req.Benefits, req.Costs),
		RiskScore:        20 + int(sum%50),
		OpportunityScore: 40 + int((sum>>8)%55),
	}
	a.clamp()
	return a, nil
}

// AssessRisk returns a templated markdown narrative.
func (s *Stub) AssessRisk(_ context.Context, tool, roiText string) (string, error) {
	if err := validateRisk(tool, roiText); err != nil {
		return "", err
	}
	return fmt.Sprintf("## Risk assessment: %s\n\n"+
		"- **Model risk**: validate outputs against a human-reviewed sample before launch.\n"+
		"- **Data security**: restrict the tool to approved data classifications.\n"+
		"- **Adoption**: pair rollout with training and a feedback channel.\n", tool), nil
}
