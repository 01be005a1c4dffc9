package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/ai-navigator/internal/config"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{Advisor: config.AdvisorConfig{Provider: "stub"}}
	a, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &Stub{}, a)

	cfg.Advisor.Provider = "anthropic"
	_, err = New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic.key is required")

	cfg.Anthropic.Key = "sk-test"
	a, err = New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &Claude{}, a)

	cfg.Advisor.Provider = "openai"
	_, err = New(cfg)
	assert.EqualError(t, err, `advisor: unknown provider "openai"`)
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("503")
	err := newError(OpAnalyzeROI, inner, true)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "advisor: analyze_roi: Could not analyze the project. Please try again.: 503", err.Error())
	assert.Equal(t, "advisor: analyze_roi: Could not analyze the project. Please try again.",
		(&Error{Op: OpAnalyzeROI, Message: userMessages[OpAnalyzeROI]}).Error())
}

func TestStub_IsDeterministic(t *testing.T) {
	s := NewStub()
	req := ROIRequest{
		ToolName:    "Meeting Summarizer",
		Description: "Summarize client meetings",
		Benefits:    "Two hours saved weekly",
		Costs:       "$50K",
	}
	a, err := s.AnalyzeROI(context.Background(), req)
	require.NoError(t, err)
	b, err := s.AnalyzeROI(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a.RiskScore, 0)
	assert.LessOrEqual(t, a.OpportunityScore, 100)
}

func TestStub_RecommendTools(t *testing.T) {
	s := NewStub()
	tools, err := s.RecommendTools(context.Background(), "Compliance Officer")
	require.NoError(t, err)
	assert.Contains(t, tools, "KYC Document Reviewer")

	tools, err = s.RecommendTools(context.Background(), "Teller")
	require.NoError(t, err)
	assert.Equal(t, defaultStubTools, tools)

	_, err = s.RecommendTools(context.Background(), " ")
	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestStub_AssessRisk(t *testing.T) {
	s := NewStub()
	text, err := s.AssessRisk(context.Background(), "Chatbot", "ROI ok")
	require.NoError(t, err)
	assert.Contains(t, text, "Risk assessment: Chatbot")

	_, err = s.AssessRisk(context.Background(), "", "")
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Len(t, inputErr.Problems, 2)
}
