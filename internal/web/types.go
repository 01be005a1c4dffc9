package web

import (
	"github.com/sells-group/ai-navigator/internal/advisor"
	"github.com/sells-group/ai-navigator/internal/model"
	"github.com/sells-group/ai-navigator/internal/session"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Problems  []string `json:"problems,omitempty"`
	Retryable bool     `json:"retryable,omitempty"`
}

// SessionResponse is a session snapshot plus which screens are reachable.
type SessionResponse struct {
	*session.Session
	Views map[session.View]bool `json:"views"`
}

func snapshot(s *session.Session) SessionResponse {
	views := make(map[session.View]bool, 4)
	for _, v := range session.Views() {
		views[v] = s.CanEnter(v)
	}
	return SessionResponse{Session: s, Views: views}
}

// RecommendationRequest is the body of the stateless engine call.
type RecommendationRequest struct {
	A model.OptionInput `json:"a"`
	B model.OptionInput `json:"b"`
}

// NavigateRequest selects a screen.
type NavigateRequest struct {
	View session.View `json:"view"`
}

// LandscapeRequest asks for tool suggestions for a role.
type LandscapeRequest struct {
	Role string `json:"role"`
}

// LandscapeResponse lists the suggested tools.
type LandscapeResponse struct {
	Role  string   `json:"role"`
	Tools []string `json:"tools"`
}

// ToolRequest selects the tool to evaluate.
type ToolRequest struct {
	Tool string `json:"tool"`
}

// ROIRequest describes the pilot for the selected tool.
type ROIRequest struct {
	Description string `json:"project_description"`
	Benefits    string `json:"projected_benefits"`
	Costs       string `json:"estimated_costs"`
}

// ROIResponse is the advisor's analysis with the assessment rendered to HTML.
type ROIResponse struct {
	advisor.ROIAnalysis
	AssessmentHTML  string `json:"roi_assessment_html"`
	OverallROIScore int    `json:"overall_roi_score"`
}

// OptionsRequest carries partial slider updates keyed by option id.
type OptionsRequest map[model.OptionID]map[string]int

// RisksResponse is the risk dashboard.
type RisksResponse struct {
	Winner      model.OptionID `json:"winner"`
	WinnerLabel string         `json:"winner_label"`
	Risks       []model.Risk   `json:"risks"`
}

// RiskAssessmentResponse is the advisor's risk narrative.
type RiskAssessmentResponse struct {
	Tool     string `json:"tool"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// HealthResponse reports liveness. AdvisorBreaker is set when the advisor
// tracks upstream health.
type HealthResponse struct {
	Status         string `json:"status"`
	AdvisorBreaker string `json:"advisor_breaker,omitempty"`
}
