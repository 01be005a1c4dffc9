// Package scorer implements the pilot-comparison scoring engine: weighted
// composite scores, the risk-adjusted priority formula, tier derivation and
// the severity-annotated risk profile of the winning option.
package scorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/ai-navigator/internal/model"
)

// weightTolerance bounds the drift allowed when summing a group's weights.
const weightTolerance = 1e-9

var customerOption = model.OptionSpec{
	ID:                 model.OptionCustomer,
	Label:              "Customer-Facing Bot",
	Tagline:            "High-risk, high-reward public launch.",
	RecommendationName: "Customer-Facing Chatbot",
	Drivers: []model.DriverSpec{
		{Key: "new_revenue", Label: "New Revenue & Cross-Sell Lift", Group: model.GroupImpact, Min: 0, Max: 20, Weight: 0.4, Default: 10, Unit: "%"},
		{Key: "retention", Label: "Customer Retention Boost", Group: model.GroupImpact, Min: 0, Max: 15, Weight: 0.4, Default: 5, Unit: "%"},
		{Key: "brand", Label: "Brand Enhancement Value", Group: model.GroupImpact, Min: 1, Max: 10, Weight: 0.2, Default: 5},
		{Key: "model", Label: "Model Risk & Bias", Group: model.GroupRisk, Min: 1, Max: 10, Weight: 0.5, Default: 8},
		{Key: "security", Label: "Data Privacy & Security Risk", Group: model.GroupRisk, Min: 1, Max: 10, Weight: 0.3, Default: 9},
		{Key: "reputation", Label: "Reputational & Trust Risk", Group: model.GroupRisk, Min: 1, Max: 10, Weight: 0.2, Default: 7},
	},
}

var internalOption = model.OptionSpec{
	ID:                 model.OptionInternal,
	Label:              "Internal Advisor-Assist",
	Tagline:            "Low-risk, high-impact internal launch.",
	RecommendationName: "Internal Advisor-Assist Tool",
	Drivers: []model.DriverSpec{
		{Key: "efficiency", Label: "Efficiency Gains & Cost Savings", Group: model.GroupImpact, Min: 0, Max: 20, Weight: 0.5, Default: 5, Unit: "%"},
		{Key: "compliance", Label: "Compliance Improvement", Group: model.GroupImpact, Min: 0, Max: 15, Weight: 0.3, Default: 10, Unit: "%"},
		{Key: "capability", Label: "Capability Building", Group: model.GroupImpact, Min: 1, Max: 10, Weight: 0.2, Default: 3},
		{Key: "model", Label: "Model Risk", Group: model.GroupRisk, Min: 1, Max: 10, Weight: 0.2, Default: 5},
		{Key: "adoption", Label: "Implementation & Adoption Risk", Group: model.GroupRisk, Min: 1, Max: 10, Weight: 0.6, Default: 7},
		{Key: "data", Label: "Data Governance & Security Risk", Group: model.GroupRisk, Min: 1, Max: 10, Weight: 0.2, Default: 4},
	},
}

// Options returns the option catalog in presentation order (A, then B).
func Options() []model.OptionSpec {
	return []model.OptionSpec{customerOption, internalOption}
}

// Option returns the spec for id.
func Option(id model.OptionID) (model.OptionSpec, bool) {
	switch id {
	case model.OptionCustomer:
		return customerOption, true
	case model.OptionInternal:
		return internalOption, true
	default:
		return model.OptionSpec{}, false
	}
}

// DefaultInputs returns both options populated with their default slider values.
func DefaultInputs() (a, b model.OptionInput) {
	return customerOption.Defaults(), internalOption.Defaults()
}

// ValidateOptions checks that an option catalog is internally consistent:
// each group's weights sum to 1, ranges are non-empty and defaults lie in range.
func ValidateOptions(specs []model.OptionSpec) error {
	var errs []string

	for _, o := range specs {
		if !o.ID.Valid() {
			errs = append(errs, fmt.Sprintf("unknown option id %q", o.ID))
		}
		seen := make(map[string]bool, len(o.Drivers))
		for _, d := range o.Drivers {
			if seen[d.Key] {
				errs = append(errs, fmt.Sprintf("%s.%s declared twice", o.ID, d.Key))
			}
			seen[d.Key] = true
			if d.Weight < 0 {
				errs = append(errs, fmt.Sprintf("%s.%s weight must be >= 0", o.ID, d.Key))
			}
			if d.Max < d.Min {
				errs = append(errs, fmt.Sprintf("%s.%s max must be >= min", o.ID, d.Key))
			}
			if !d.InRange(d.Default) {
				errs = append(errs, fmt.Sprintf("%s.%s default %d outside [%d,%d]", o.ID, d.Key, d.Default, d.Min, d.Max))
			}
		}
		for _, g := range []model.DriverGroup{model.GroupImpact, model.GroupRisk} {
			sum := WeightSum(o.Group(g))
			if math.Abs(sum-1) > weightTolerance {
				errs = append(errs, fmt.Sprintf("%s %s weights should sum to 1, got %.4f", o.ID, g, sum))
			}
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: option catalog validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// WeightSum returns the sum of the drivers' weights.
func WeightSum(drivers []model.DriverSpec) float64 {
	var sum float64
	for _, d := range drivers {
		sum += d.Weight
	}
	return sum
}
