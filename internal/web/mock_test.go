package web

import (
	"context"

	"github.com/sells-group/ai-navigator/internal/advisor"
	"github.com/sells-group/ai-navigator/internal/resilience"
)

// fakeAdvisor delegates to the stub unless a failure is configured.
type fakeAdvisor struct {
	stub     *advisor.Stub
	fail     error
	roiCalls int
}

func newFakeAdvisor() *fakeAdvisor {
	return &fakeAdvisor{stub: advisor.NewStub()}
}

func (f *fakeAdvisor) RecommendTools(ctx context.Context, role string) ([]string, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return f.stub.RecommendTools(ctx, role)
}

func (f *fakeAdvisor) AnalyzeROI(ctx context.Context, req advisor.ROIRequest) (*advisor.ROIAnalysis, error) {
	f.roiCalls++
	if f.fail != nil {
		return nil, f.fail
	}
	return &advisor.ROIAnalysis{
		Assessment:       "**Strong** case for " + req.ToolName,
		RiskScore:        40,
		OpportunityScore: 80,
	}, nil
}

func (f *fakeAdvisor) AssessRisk(ctx context.Context, tool, roiText string) (string, error) {
	if f.fail != nil {
		return "", f.fail
	}
	return f.stub.AssessRisk(ctx, tool, roiText)
}

// breakerAdvisor reports a fixed breaker state on top of fakeAdvisor.
type breakerAdvisor struct {
	*fakeAdvisor
	state resilience.BreakerState
}

func (b *breakerAdvisor) BreakerState() resilience.BreakerState {
	return b.state
}
