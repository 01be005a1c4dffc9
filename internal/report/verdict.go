// Package report renders recommendations and verdicts for terminals, APIs
// and spreadsheet export.
package report

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/ai-navigator/internal/advisor"
	"github.com/sells-group/ai-navigator/internal/catalog"
	"github.com/sells-group/ai-navigator/internal/model"
	"github.com/sells-group/ai-navigator/internal/scorer"
)

// Verdict is everything shown on the final screen.
type Verdict struct {
	RecommendationText string                                   `json:"recommendation_text" yaml:"recommendation_text"`
	Winner             model.OptionID                           `json:"winner" yaml:"winner"`
	WinnerLabel        string                                   `json:"winner_label" yaml:"winner_label"`
	Tier               model.TierDescriptor                     `json:"tier" yaml:"tier"`
	Scores             map[model.OptionID]model.CompositeScores `json:"scores" yaml:"scores"`
	Justifications     []catalog.Justification                  `json:"justifications" yaml:"justifications"`
	Roadmap            catalog.Roadmap                          `json:"roadmap" yaml:"roadmap"`
	NextSteps          []string                                 `json:"next_steps" yaml:"next_steps"`
	RiskProfile        []model.Risk                             `json:"risk_profile" yaml:"risk_profile"`
	ROI                *advisor.ROIAnalysis                     `json:"roi,omitempty" yaml:"roi,omitempty"`
	// OverallROIScore is set only when an ROI analysis exists.
	OverallROIScore *int `json:"overall_roi_score,omitempty" yaml:"overall_roi_score,omitempty"`
}

// BuildVerdict assembles the verdict for rec. roi may be nil.
func BuildVerdict(rec *model.Recommendation, roi *advisor.ROIAnalysis) (*Verdict, error) {
	if rec == nil {
		return nil, eris.New("report: no recommendation to build a verdict from")
	}
	roadmap, err := catalog.LoadRoadmap()
	if err != nil {
		return nil, eris.Wrap(err, "report: load roadmap")
	}

	v := &Verdict{
		RecommendationText: rec.RecommendationText,
		Winner:             rec.Winner,
		WinnerLabel:        rec.WinnerLabel,
		Tier:               rec.TierDetails,
		Scores:             rec.Scores,
		Justifications:     catalog.Justifications(rec.Winner),
		Roadmap:            roadmap,
		NextSteps:          catalog.NextSteps(rec.Tier),
		RiskProfile:        rec.RiskProfile,
		ROI:                roi,
	}
	if roi != nil {
		score := scorer.OverallROIScore(roi.OpportunityScore, roi.RiskScore)
		v.OverallROIScore = &score
	}
	return v, nil
}
