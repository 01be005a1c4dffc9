package model

// Tier is the investment-scale category assigned to the winning option.
type Tier string

const (
	TierExploratory Tier = "exploratory" // Tier 1
	TierStrategic   Tier = "strategic"   // Tier 2
	TierAccelerated Tier = "accelerated" // Tier 3
)

// Level returns the numeric tier (1..3), or 0 for an unknown tier.
func (t Tier) Level() int {
	switch t {
	case TierExploratory:
		return 1
	case TierStrategic:
		return 2
	case TierAccelerated:
		return 3
	default:
		return 0
	}
}

// TierDescriptor is the fixed, display-only description of a tier.
type TierDescriptor struct {
	Tier          Tier   `json:"tier" yaml:"tier"`
	Label         string `json:"label" yaml:"label"`
	Justification string `json:"justification" yaml:"justification"`
	Budget        string `json:"budget" yaml:"budget"`
	Timeline      string `json:"timeline" yaml:"timeline"`
	Scope         string `json:"scope" yaml:"scope"`
}

// CompositeScores holds the derived scores of one option.
type CompositeScores struct {
	FinancialImpact    float64 `json:"financial_impact" yaml:"financial_impact"`
	ImplementationRisk float64 `json:"implementation_risk" yaml:"implementation_risk"`
	PriorityScore      float64 `json:"priority_score" yaml:"priority_score"`
}

// Recommendation is the full output of one calculation.
type Recommendation struct {
	Winner             OptionID                     `json:"winner" yaml:"winner"`
	WinnerLabel        string                       `json:"winner_label" yaml:"winner_label"`
	RecommendationText string                       `json:"recommendation_text" yaml:"recommendation_text"`
	Scores             map[OptionID]CompositeScores `json:"scores" yaml:"scores"`
	Tier               Tier                         `json:"tier" yaml:"tier"`
	TierLabel          string                       `json:"tier_label" yaml:"tier_label"`
	TierJustification  string                       `json:"tier_justification" yaml:"tier_justification"`
	TierDetails        TierDescriptor               `json:"tier_details" yaml:"tier_details"`
	RiskProfile        []Risk                       `json:"risk_profile" yaml:"risk_profile"`
}
