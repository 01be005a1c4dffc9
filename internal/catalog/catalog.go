// Package catalog holds the display-only content of the navigator: the
// implementation roadmap, verdict justifications and next steps.
package catalog

import (
	_ "embed"
	"sync"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/ai-navigator/internal/model"
)

//go:embed roadmap.yaml
var roadmapYAML []byte

// Phase is one step of the implementation roadmap.
type Phase struct {
	Phase    string   `json:"phase" yaml:"phase"`
	Timeline string   `json:"timeline" yaml:"timeline"`
	Icon     string   `json:"icon" yaml:"icon"`
	Actions  []string `json:"actions" yaml:"actions"`
	KPIs     []string `json:"kpis" yaml:"kpis"`
}

// Roadmap is the phased implementation plan shown on the verdict screen.
type Roadmap struct {
	Title  string  `json:"title" yaml:"title"`
	Phases []Phase `json:"phases" yaml:"phases"`
}

// Justification is a card on the verdict screen.
type Justification struct {
	Icon  string `json:"icon" yaml:"icon"`
	Title string `json:"title" yaml:"title"`
	Text  string `json:"text" yaml:"text"`
}

var (
	roadmapOnce sync.Once
	roadmap     Roadmap
	roadmapErr  error
)

// LoadRoadmap parses the embedded roadmap. The result is cached.
func LoadRoadmap() (Roadmap, error) {
	roadmapOnce.Do(func() {
		roadmap, roadmapErr = ParseRoadmap(roadmapYAML)
	})
	return roadmap, roadmapErr
}

// ParseRoadmap decodes and checks a roadmap document.
func ParseRoadmap(data []byte) (Roadmap, error) {
	var r Roadmap
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Roadmap{}, eris.Wrap(err, "catalog: parse roadmap")
	}
	if len(r.Phases) == 0 {
		return Roadmap{}, eris.New("catalog: roadmap has no phases")
	}
	for i, p := range r.Phases {
		if p.Phase == "" || len(p.Actions) == 0 {
			return Roadmap{}, eris.Errorf("catalog: roadmap phase %d is incomplete", i+1)
		}
	}
	return r, nil
}

var justifications = map[model.OptionID][]Justification{
	model.OptionInternal: {
		{Icon: "flask", Title: "De-Risk the Technology", Text: `Provides a "safe sandbox" to master AI performance, bias, and hallucinations before any public exposure.`},
		{Icon: "users", Title: "Solve the Human Factor", Text: "Allows us to focus on employee training and adoption, turning our advisors into our biggest AI advocates."},
		{Icon: "castle", Title: "Build a Defensible Asset", Text: "Enables us to build a proprietary, fine-tuned AI model based on our own data and expert feedback."},
	},
	model.OptionCustomer: {
		{Icon: "trending-up", Title: "Capture Revenue Early", Text: "Puts AI directly in front of customers, opening new cross-sell and retention opportunities ahead of competitors."},
		{Icon: "sparkles", Title: "Differentiate the Brand", Text: "Positions OmniBank as a visible innovator in digital banking."},
		{Icon: "shield-check", Title: "Invest in Guardrails", Text: "Forces early investment in moderation, privacy and bias controls that every later AI product will reuse."},
	},
}

// Justifications returns the verdict cards for the winning option.
func Justifications(winner model.OptionID) []Justification {
	return append([]Justification(nil), justifications[winner]...)
}

var nextSteps = map[model.Tier][]string{
	model.TierExploratory: {
		"Approve a sandboxed lab budget with a fixed six-month horizon.",
		"Assign a small cross-functional team to build a proof of concept.",
		"Define the evidence required to move to a Strategic Pilot.",
	},
	model.TierStrategic: {
		"Secure Board approval for the $2.5M pilot budget.",
		"Form a cross-functional AI Governance task force.",
		"Initiate vendor contract negotiations and technical due diligence.",
	},
	model.TierAccelerated: {
		"Secure Board approval for the full rollout budget.",
		"Stand up the production governance and monitoring function.",
		"Schedule the bank-wide launch and training waves.",
	},
}

// NextSteps returns the proposed next steps for a tier.
func NextSteps(t model.Tier) []string {
	return append([]string(nil), nextSteps[t]...)
}
