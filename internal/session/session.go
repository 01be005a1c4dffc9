// Package session holds the per-user walkthrough state: the active screen,
// landscape and ROI answers, slider inputs and the last recommendation.
package session

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/ai-navigator/internal/advisor"
	"github.com/sells-group/ai-navigator/internal/model"
	"github.com/sells-group/ai-navigator/internal/scorer"
)

// View is one of the four walkthrough screens.
type View string

// Views in navigation order.
const (
	ViewLandscape   View = "landscape"
	ViewPrioritizer View = "prioritizer"
	ViewRisk        View = "risk"
	ViewVerdict     View = "verdict"
)

// Views returns every screen in navigation order.
func Views() []View {
	return []View{ViewLandscape, ViewPrioritizer, ViewRisk, ViewVerdict}
}

// Valid reports whether v names a known screen.
func (v View) Valid() bool {
	switch v {
	case ViewLandscape, ViewPrioritizer, ViewRisk, ViewVerdict:
		return true
	}
	return false
}

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = eris.New("session: not found")

// ErrUnknownView is returned when navigating to a screen that does not exist.
var ErrUnknownView = eris.New("session: unknown view")

// GateError reports an action that the current state does not allow.
type GateError struct {
	Action string
	Reason string
}

func (e *GateError) Error() string {
	return fmt.Sprintf("session: cannot %s: %s", e.Action, e.Reason)
}

// Session is the mutable state of one walkthrough.
type Session struct {
	ID   string `json:"id"`
	View View   `json:"view"`

	Role             string               `json:"role,omitempty"`
	RecommendedTools []string             `json:"recommended_tools,omitempty"`
	SelectedTool     string               `json:"selected_tool,omitempty"`
	ROI              *advisor.ROIAnalysis `json:"roi,omitempty"`

	Customer model.OptionInput `json:"customer"`
	Internal model.OptionInput `json:"internal"`
	// Locked is set by Calculate and cleared by Recalibrate.
	Locked bool `json:"locked"`

	Recommendation *model.Recommendation `json:"recommendation,omitempty"`
	RiskAssessment string                `json:"risk_assessment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// New returns a session on the landscape screen with catalog default inputs.
func New(id string, now time.Time, ttl time.Duration) *Session {
	s := &Session{ID: id, CreatedAt: now}
	s.Reset()
	s.Touch(now, ttl)
	return s
}

// Touch records activity and pushes the expiry out by ttl.
func (s *Session) Touch(now time.Time, ttl time.Duration) {
	s.UpdatedAt = now
	s.ExpiresAt = now.Add(ttl)
}

// Calculated reports whether a recommendation is available.
func (s *Session) Calculated() bool {
	return s.Recommendation != nil
}

// CanEnter reports whether v is reachable. Risk and verdict need a
// completed calculation.
func (s *Session) CanEnter(v View) bool {
	switch v {
	case ViewLandscape, ViewPrioritizer:
		return true
	case ViewRisk, ViewVerdict:
		return s.Calculated()
	}
	return false
}

// Navigate moves to v if it is reachable.
func (s *Session) Navigate(v View) error {
	if !v.Valid() {
		return eris.Wrapf(ErrUnknownView, "%q", string(v))
	}
	if !s.CanEnter(v) {
		return &GateError{Action: "open " + string(v), Reason: "run the prioritizer calculation first"}
	}
	s.View = v
	return nil
}

// SetRole stores the landscape role and the tools suggested for it. A new
// role clears the previous tool selection.
func (s *Session) SetRole(role string, tools []string) {
	role = strings.TrimSpace(role)
	if role != s.Role {
		s.SelectedTool = ""
		s.ROI = nil
	}
	s.Role = role
	s.RecommendedTools = append([]string(nil), tools...)
}

// SelectTool picks the tool to evaluate and moves to the prioritizer.
func (s *Session) SelectTool(tool string) error {
	tool = strings.TrimSpace(tool)
	if tool == "" {
		return &scorer.ValidationError{Problems: []string{"tool is required"}}
	}
	if tool != s.SelectedTool {
		s.ROI = nil
	}
	s.SelectedTool = tool
	s.View = ViewPrioritizer
	return nil
}

// SetROI stores the ROI analysis for the selected tool.
func (s *Session) SetROI(a *advisor.ROIAnalysis) error {
	if s.SelectedTool == "" {
		return &GateError{Action: "store an ROI analysis", Reason: "select a tool first"}
	}
	s.ROI = a
	return nil
}

// SetInputs merges driver updates onto the current slider values. Updates
// for either option may be partial. Nothing changes if the merged inputs are
// invalid or the inputs are locked.
func (s *Session) SetInputs(updates map[model.OptionID]map[string]int) error {
	if s.Locked {
		return &GateError{Action: "change inputs", Reason: "inputs are locked after calculation; recalibrate first"}
	}

	next := map[model.OptionID]model.OptionInput{
		model.OptionCustomer: s.Customer.Clone(),
		model.OptionInternal: s.Internal.Clone(),
	}
	var problems []string
	for id, drivers := range updates {
		in, ok := next[id]
		if !ok {
			problems = append(problems, fmt.Sprintf("unknown option %q", id))
			continue
		}
		maps.Copy(in.Drivers, drivers)
	}
	for _, id := range []model.OptionID{model.OptionCustomer, model.OptionInternal} {
		var ve *scorer.ValidationError
		if err := scorer.ValidateInput(next[id]); errors.As(err, &ve) {
			problems = append(problems, ve.Problems...)
		}
	}
	if len(problems) > 0 {
		return &scorer.ValidationError{Problems: problems}
	}

	s.Customer = next[model.OptionCustomer]
	s.Internal = next[model.OptionInternal]
	return nil
}

// Calculate runs the scoring engine on the current inputs, stores the result
// and locks the inputs. Any earlier risk narrative is discarded.
func (s *Session) Calculate() (*model.Recommendation, error) {
	if s.Locked {
		return nil, &GateError{Action: "calculate", Reason: "already calculated; recalibrate to change inputs"}
	}
	rec, err := scorer.ComputeRecommendation(s.Customer, s.Internal)
	if err != nil {
		return nil, err
	}
	s.Recommendation = rec
	s.RiskAssessment = ""
	s.Locked = true
	return rec, nil
}

// Recalibrate unlocks the inputs and returns to the prioritizer. The last
// recommendation stays available until the next Calculate.
func (s *Session) Recalibrate() {
	s.Locked = false
	s.View = ViewPrioritizer
}

// SetRiskAssessment stores the advisor's risk narrative.
func (s *Session) SetRiskAssessment(text string) error {
	if !s.Calculated() {
		return &GateError{Action: "store a risk assessment", Reason: "run the prioritizer calculation first"}
	}
	s.RiskAssessment = text
	return nil
}

// Reset returns everything except identity and timestamps to defaults.
func (s *Session) Reset() {
	customer, internal := scorer.DefaultInputs()
	*s = Session{
		ID:        s.ID,
		View:      ViewLandscape,
		Customer:  customer,
		Internal:  internal,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}
