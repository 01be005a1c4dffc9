package report

import (
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/ai-navigator/internal/scorer"
)

// Sheet names of the verdict workbook.
const (
	SheetSummary = "Summary"
	SheetRisks   = "Risks"
	SheetRoadmap = "Roadmap"
)

// WriteXLSX exports the verdict as a workbook with Summary, Risks and
// Roadmap sheets.
func WriteXLSX(w io.Writer, v *Verdict) error {
	f := xlsx.NewFile()

	summary, err := f.AddSheet(SheetSummary)
	if err != nil {
		return eris.Wrap(err, "report: add summary sheet")
	}
	addRow(summary, "Recommendation", v.RecommendationText)
	addRow(summary, "Tier", v.Tier.Label)
	addRow(summary, "Justification", v.Tier.Justification)
	addRow(summary, "Budget", v.Tier.Budget)
	addRow(summary, "Timeline", v.Tier.Timeline)
	addRow(summary, "Scope", v.Tier.Scope)
	if v.OverallROIScore != nil {
		row := summary.AddRow()
		row.AddCell().SetString("Overall ROI Score")
		row.AddCell().SetInt(*v.OverallROIScore)
	}
	summary.AddRow()
	addRow(summary, "Option", "Financial Impact", "Implementation Risk", "Priority Score")
	for _, spec := range scorer.Options() {
		sc, ok := v.Scores[spec.ID]
		if !ok {
			continue
		}
		row := summary.AddRow()
		row.AddCell().SetString(spec.Label)
		row.AddCell().SetFloat(sc.FinancialImpact)
		row.AddCell().SetFloat(sc.ImplementationRisk)
		row.AddCell().SetFloat(sc.PriorityScore)
	}
	summary.AddRow()
	addRow(summary, "Next Steps")
	for _, s := range v.NextSteps {
		addRow(summary, "", s)
	}

	risks, err := f.AddSheet(SheetRisks)
	if err != nil {
		return eris.Wrap(err, "report: add risks sheet")
	}
	addRow(risks, "ID", "Title", "Category", "Severity", "Summary", "Mitigations")
	for _, r := range v.RiskProfile {
		addRow(risks, r.ID, r.Title, string(r.Category), string(r.Severity), r.Summary, strings.Join(r.Mitigations, "\n"))
	}

	roadmap, err := f.AddSheet(SheetRoadmap)
	if err != nil {
		return eris.Wrap(err, "report: add roadmap sheet")
	}
	addRow(roadmap, "Phase", "Timeline", "Kind", "Item")
	for _, p := range v.Roadmap.Phases {
		for _, a := range p.Actions {
			addRow(roadmap, p.Phase, p.Timeline, "Action", a)
		}
		for _, k := range p.KPIs {
			addRow(roadmap, p.Phase, p.Timeline, "KPI", k)
		}
	}

	return eris.Wrap(f.Write(w), "report: write xlsx")
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
