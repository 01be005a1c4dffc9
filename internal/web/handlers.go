package web

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rotisserie/eris"

	"github.com/sells-group/ai-navigator/internal/advisor"
	"github.com/sells-group/ai-navigator/internal/report"
	"github.com/sells-group/ai-navigator/internal/scorer"
	"github.com/sells-group/ai-navigator/internal/session"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handlers holds the HTTP handler methods for the API.
type Handlers struct {
	store   session.Store
	advisor advisor.Advisor
}

// NewHandlers creates Handlers backed by store and adv.
func NewHandlers(store session.Store, adv advisor.Advisor) *Handlers {
	return &Handlers{store: store, advisor: adv}
}

// HandleHealth returns a liveness response with the advisor breaker state.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := HealthResponse{Status: "ok"}
	if hr, ok := h.advisor.(advisor.HealthReporter); ok {
		resp.AdvisorBreaker = hr.BreakerState().String()
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleOptions returns the driver catalog for both options.
func (h *Handlers) HandleOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, scorer.Options())
}

// HandleRecommendation runs the engine on the request body without a session.
func (h *Handlers) HandleRecommendation(w http.ResponseWriter, r *http.Request) {
	var req RecommendationRequest
	if !decode(w, r, &req) {
		return
	}
	rec, err := scorer.ComputeRecommendation(req.A, req.B)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// HandleCreateSession starts a new walkthrough.
func (h *Handlers) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.Create(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, snapshot(s))
}

// HandleGetSession returns the session snapshot.
func (h *Handlers) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	h.view(w, r, func(s *session.Session) (any, error) {
		return snapshot(s), nil
	})
}

// HandleResetSession clears the session back to defaults.
func (h *Handlers) HandleResetSession(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, func(_ context.Context, s *session.Session) (any, error) {
		s.Reset()
		return snapshot(s), nil
	})
}

// HandleNavigate changes the active screen, subject to gating.
func (h *Handlers) HandleNavigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if !decode(w, r, &req) {
		return
	}
	h.update(w, r, func(_ context.Context, s *session.Session) (any, error) {
		if err := s.Navigate(req.View); err != nil {
			return nil, err
		}
		return snapshot(s), nil
	})
}

// HandleLandscape asks the advisor for tools suited to a role.
func (h *Handlers) HandleLandscape(w http.ResponseWriter, r *http.Request) {
	var req LandscapeRequest
	if !decode(w, r, &req) {
		return
	}
	h.update(w, r, func(ctx context.Context, s *session.Session) (any, error) {
		tools, err := h.advisor.RecommendTools(ctx, req.Role)
		if err != nil {
			return nil, err
		}
		s.SetRole(req.Role, tools)
		return LandscapeResponse{Role: s.Role, Tools: s.RecommendedTools}, nil
	})
}

// HandleSelectTool picks the tool to evaluate.
func (h *Handlers) HandleSelectTool(w http.ResponseWriter, r *http.Request) {
	var req ToolRequest
	if !decode(w, r, &req) {
		return
	}
	h.update(w, r, func(_ context.Context, s *session.Session) (any, error) {
		if err := s.SelectTool(req.Tool); err != nil {
			return nil, err
		}
		return snapshot(s), nil
	})
}

// HandleROI runs the ROI analysis for the selected tool.
func (h *Handlers) HandleROI(w http.ResponseWriter, r *http.Request) {
	var req ROIRequest
	if !decode(w, r, &req) {
		return
	}
	h.update(w, r, func(ctx context.Context, s *session.Session) (any, error) {
		if s.SelectedTool == "" {
			return nil, &session.GateError{Action: "analyze ROI", Reason: "select a tool first"}
		}
		analysis, err := h.advisor.AnalyzeROI(ctx, advisor.ROIRequest{
			ToolName:    s.SelectedTool,
			Description: req.Description,
			Benefits:    req.Benefits,
			Costs:       req.Costs,
		})
		if err != nil {
			return nil, err
		}
		if err := s.SetROI(analysis); err != nil {
			return nil, err
		}
		html, err := report.MarkdownToHTML(analysis.Assessment)
		if err != nil {
			return nil, err
		}
		return ROIResponse{
			ROIAnalysis:     *analysis,
			AssessmentHTML:  html,
			OverallROIScore: scorer.OverallROIScore(analysis.OpportunityScore, analysis.RiskScore),
		}, nil
	})
}

// HandleUpdateOptions applies slider changes.
func (h *Handlers) HandleUpdateOptions(w http.ResponseWriter, r *http.Request) {
	var req OptionsRequest
	if !decode(w, r, &req) {
		return
	}
	h.update(w, r, func(_ context.Context, s *session.Session) (any, error) {
		if err := s.SetInputs(req); err != nil {
			return nil, err
		}
		return snapshot(s), nil
	})
}

// HandleCalculate runs the engine on the session inputs.
func (h *Handlers) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, func(_ context.Context, s *session.Session) (any, error) {
		return s.Calculate()
	})
}

// HandleRecalibrate unlocks the inputs.
func (h *Handlers) HandleRecalibrate(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, func(_ context.Context, s *session.Session) (any, error) {
		s.Recalibrate()
		return snapshot(s), nil
	})
}

// HandleRisks returns the risk dashboard of the last recommendation.
func (h *Handlers) HandleRisks(w http.ResponseWriter, r *http.Request) {
	h.view(w, r, func(s *session.Session) (any, error) {
		if err := requireCalculated(s, "open risk"); err != nil {
			return nil, err
		}
		return RisksResponse{
			Winner:      s.Recommendation.Winner,
			WinnerLabel: s.Recommendation.WinnerLabel,
			Risks:       s.Recommendation.RiskProfile,
		}, nil
	})
}

// HandleRiskAssessment asks the advisor for a risk narrative about the
// selected tool, or the winning pilot when no tool was chosen.
func (h *Handlers) HandleRiskAssessment(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, func(ctx context.Context, s *session.Session) (any, error) {
		if err := requireCalculated(s, "assess risk"); err != nil {
			return nil, err
		}
		tool, roiText := riskSubject(s)
		text, err := h.advisor.AssessRisk(ctx, tool, roiText)
		if err != nil {
			return nil, err
		}
		if err := s.SetRiskAssessment(text); err != nil {
			return nil, err
		}
		html, err := report.MarkdownToHTML(text)
		if err != nil {
			return nil, err
		}
		return RiskAssessmentResponse{Tool: tool, Markdown: text, HTML: html}, nil
	})
}

func riskSubject(s *session.Session) (tool, roiText string) {
	rec := s.Recommendation
	tool = s.SelectedTool
	if tool == "" {
		tool = rec.WinnerLabel
	}
	if s.ROI != nil {
		return tool, s.ROI.Assessment
	}
	sc := rec.Scores[rec.Winner]
	return tool, fmt.Sprintf("%s. %s. Financial impact %s, implementation risk %s, priority score %s.",
		rec.RecommendationText, rec.TierJustification,
		report.Score(sc.FinancialImpact), report.Score(sc.ImplementationRisk), report.Priority(sc.PriorityScore))
}

// HandleVerdict returns the tier, justification, roadmap and next steps.
func (h *Handlers) HandleVerdict(w http.ResponseWriter, r *http.Request) {
	h.view(w, r, func(s *session.Session) (any, error) {
		if err := requireCalculated(s, "open verdict"); err != nil {
			return nil, err
		}
		return report.BuildVerdict(s.Recommendation, s.ROI)
	})
}

// HandleVerdictXLSX exports the verdict as a spreadsheet.
func (h *Handlers) HandleVerdictXLSX(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := requireCalculated(s, "export verdict"); err != nil {
		writeError(w, r, err)
		return
	}
	v, err := report.BuildVerdict(s.Recommendation, s.ROI)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, v); err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="verdict.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}

func requireCalculated(s *session.Session, action string) error {
	if !s.Calculated() {
		return &session.GateError{Action: action, Reason: "run the prioritizer calculation first"}
	}
	return nil
}

// view loads the session and writes fn's result without saving.
func (h *Handlers) view(w http.ResponseWriter, r *http.Request, fn func(*session.Session) (any, error)) {
	s, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	out, err := fn(s)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// update loads the session, applies fn and saves it. Nothing is saved when
// fn fails, so advisor errors leave the session untouched.
func (h *Handlers) update(w http.ResponseWriter, r *http.Request, fn func(context.Context, *session.Session) (any, error)) {
	ctx := r.Context()
	s, err := h.store.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	out, err := fn(ctx, s)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.store.Save(ctx, s); err != nil {
		writeError(w, r, eris.Wrap(err, "web: save session"))
		return
	}
	writeJSON(w, http.StatusOK, out)
}
