package scorer

import (
	"math"

	"github.com/sells-group/ai-navigator/internal/model"
)

// roundComposite trims floating-point noise from weighted sums so that the
// tier boundaries compare against exact values.
func roundComposite(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

// PriorityScore is impact divided by risk squared. A zero risk falls back to
// the impact itself.
func PriorityScore(financialImpact, implementationRisk float64) float64 {
	if implementationRisk == 0 {
		return financialImpact
	}
	return financialImpact / (implementationRisk * implementationRisk)
}

// Composite computes the weighted impact, risk and priority of a validated input.
func Composite(spec model.OptionSpec, in model.OptionInput) model.CompositeScores {
	var impact, risk float64
	for _, d := range spec.Drivers {
		contribution := float64(in.Drivers[d.Key]) * d.Weight
		switch d.Group {
		case model.GroupImpact:
			impact += contribution
		case model.GroupRisk:
			risk += contribution
		}
	}
	impact = roundComposite(impact)
	risk = roundComposite(risk)
	return model.CompositeScores{
		FinancialImpact:    impact,
		ImplementationRisk: risk,
		PriorityScore:      PriorityScore(impact, risk),
	}
}

// ComputeRecommendation ranks the two options and builds the recommendation
// for the winner. When the priority scores tie, b wins.
func ComputeRecommendation(a, b model.OptionInput) (*model.Recommendation, error) {
	if err := validatePair(a, b); err != nil {
		return nil, err
	}

	specA, _ := Option(a.ID)
	specB, _ := Option(b.ID)
	scoresA := Composite(specA, a)
	scoresB := Composite(specB, b)

	winnerSpec, winnerIn, winnerScores := specA, a, scoresA
	if scoresB.PriorityScore >= scoresA.PriorityScore {
		winnerSpec, winnerIn, winnerScores = specB, b, scoresB
	}

	tier := DeriveTier(winnerScores.ImplementationRisk, winnerScores.FinancialImpact)
	desc := DescribeTier(tier)

	return &model.Recommendation{
		Winner:             winnerSpec.ID,
		WinnerLabel:        winnerSpec.Label,
		RecommendationText: "Recommended Pilot: " + winnerSpec.RecommendationName,
		Scores: map[model.OptionID]model.CompositeScores{
			specA.ID: scoresA,
			specB.ID: scoresB,
		},
		Tier:              tier,
		TierLabel:         desc.Label,
		TierJustification: desc.Justification,
		TierDetails:       desc,
		RiskProfile:       BuildRiskProfile(winnerIn),
	}, nil
}
