package scorer

import "math"

// OverallROIScore blends an ROI analysis into a single 0-100 figure:
// 70% opportunity and 30% inverted risk. Inputs are clamped to 0-100.
func OverallROIScore(opportunityScore, riskScore int) int {
	opp := float64(clampPercent(opportunityScore))
	risk := float64(clampPercent(riskScore))
	return int(math.Round(opp*0.7 + (100-risk)*0.3))
}

func clampPercent(v int) int {
	return max(0, min(100, v))
}
