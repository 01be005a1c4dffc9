package scorer

import "github.com/sells-group/ai-navigator/internal/model"

// Tier boundaries on the winner's composite scores.
const (
	exploratoryRiskAbove   = 7.0
	exploratoryImpactBelow = 4.0
	strategicRiskAbove     = 4.0
)

var tierDescriptors = map[model.Tier]model.TierDescriptor{
	model.TierExploratory: {
		Tier:          model.TierExploratory,
		Label:         "Tier 1: Exploratory Lab",
		Justification: "The leading option carries high implementation risk or a modest financial case. Contain it in a sandboxed lab to prove the technology and gather evidence before committing significant capital.",
		Budget:        "$500K",
		Timeline:      "6 months",
		Scope:         "Sandboxed proof of concept run by a small cross-functional team.",
	},
	model.TierStrategic: {
		Tier:          model.TierStrategic,
		Label:         "Tier 2: Strategic Pilot",
		Justification: "Risk is material but manageable and the financial case is solid. Run a governed, phased pilot that de-risks the technology and builds adoption before any scale-up decision.",
		Budget:        "$2.5M",
		Timeline:      "24 months",
		Scope:         "Phased pilot starting with 50 AI Champion advisors and scaling to 500.",
	},
	model.TierAccelerated: {
		Tier:          model.TierAccelerated,
		Label:         "Tier 3: Accelerated Launch",
		Justification: "Implementation risk is low and the financial case is strong. Move quickly to a broad rollout under standard governance to capture the value early.",
		Budget:        "$5M+",
		Timeline:      "12 months",
		Scope:         "Bank-wide rollout with standard model governance.",
	},
}

// DeriveTier classifies the winner by its composite risk and impact.
func DeriveTier(implementationRisk, financialImpact float64) model.Tier {
	switch {
	case implementationRisk > exploratoryRiskAbove || financialImpact < exploratoryImpactBelow:
		return model.TierExploratory
	case implementationRisk > strategicRiskAbove:
		return model.TierStrategic
	default:
		return model.TierAccelerated
	}
}

// DescribeTier returns the fixed descriptor for t.
func DescribeTier(t model.Tier) model.TierDescriptor {
	return tierDescriptors[t]
}
