package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/ai-navigator/internal/catalog"
	"github.com/sells-group/ai-navigator/internal/model"
	"github.com/sells-group/ai-navigator/internal/scorer"
)

// Output formats.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Render writes rec in the given format. Unknown formats are an error.
func Render(w io.Writer, rec *model.Recommendation, format string) error {
	return render(w, rec, format, func() { humanRecommendation(w, rec) })
}

// RenderVerdict writes the full verdict in the given format.
func RenderVerdict(w io.Writer, v *Verdict, format string) error {
	return render(w, v, format, func() { humanVerdict(w, v) })
}

// RenderRoadmap writes the roadmap in the given format.
func RenderRoadmap(w io.Writer, r catalog.Roadmap, format string) error {
	return render(w, r, format, func() { humanRoadmap(w, r) })
}

func render(w io.Writer, v any, format string, human func()) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(v), "report: encode json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return eris.Wrap(err, "report: encode yaml")
		}
		return eris.Wrap(enc.Close(), "report: close yaml encoder")
	case FormatHuman, "":
		human()
		return nil
	default:
		return eris.Errorf("report: unknown format %q (want human, json or yaml)", format)
	}
}

var (
	heading = color.New(color.FgCyan, color.Bold)
	winner  = color.New(color.FgGreen, color.Bold)
	subtle  = color.New(color.FgHiBlack)
)

func severityColor(s model.Severity) *color.Color {
	switch s {
	case model.SeverityHigh:
		return color.New(color.FgRed, color.Bold)
	case model.SeverityMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func severityIcon(s model.Severity) string {
	switch s {
	case model.SeverityHigh:
		return "🔴"
	case model.SeverityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

func humanRecommendation(w io.Writer, rec *model.Recommendation) {
	fmt.Fprintln(w)
	winner.Fprintf(w, "🏆 %s\n\n", rec.RecommendationText)

	heading.Fprintln(w, "📊 SCORES:")
	for _, spec := range scorer.Options() {
		sc, ok := rec.Scores[spec.ID]
		if !ok {
			continue
		}
		marker := "  "
		if spec.ID == rec.Winner {
			marker = "★ "
		}
		fmt.Fprintf(w, "   %s%-26s impact %s  risk %s  priority %s\n",
			marker, spec.Label, Score(sc.FinancialImpact), Score(sc.ImplementationRisk), Priority(sc.PriorityScore))
	}
	fmt.Fprintln(w)

	heading.Fprintf(w, "🧭 TIER: %s\n", rec.TierLabel)
	fmt.Fprintf(w, "   %s\n", rec.TierJustification)
	fmt.Fprintf(w, "   Budget: %s   Timeline: %s\n", rec.TierDetails.Budget, rec.TierDetails.Timeline)
	fmt.Fprintln(w)

	heading.Fprintln(w, "⚠️  RISK PROFILE:")
	for i, r := range rec.RiskProfile {
		sev := severityColor(r.Severity)
		fmt.Fprintf(w, "   %d. %s %s ", i+1, severityIcon(r.Severity), r.Title)
		sev.Fprintf(w, "[%s]\n", strings.ToUpper(string(r.Severity)))
		fmt.Fprintf(w, "      %s\n", r.Summary)
		for _, m := range r.Mitigations {
			subtle.Fprintf(w, "      - %s\n", m)
		}
	}
	fmt.Fprintln(w, strings.Repeat("─", 80))
	subtle.Fprintln(w, "Run with --format json or --format yaml for machine-readable output")
}

func humanVerdict(w io.Writer, v *Verdict) {
	fmt.Fprintln(w)
	winner.Fprintf(w, "⚖️  THE VERDICT: %s\n", v.RecommendationText)
	heading.Fprintf(w, "   %s  (%s, %s)\n", v.Tier.Label, v.Tier.Budget, v.Tier.Timeline)
	fmt.Fprintf(w, "   %s\n\n", v.Tier.Justification)

	if v.OverallROIScore != nil {
		heading.Fprintf(w, "💰 OVERALL ROI SCORE: %s\n", Percent(*v.OverallROIScore))
		fmt.Fprintf(w, "   opportunity %s, risk %s\n\n", Percent(v.ROI.OpportunityScore), Percent(v.ROI.RiskScore))
	}

	heading.Fprintln(w, "✅ WHY THIS PILOT:")
	for _, j := range v.Justifications {
		fmt.Fprintf(w, "   • %s: %s\n", j.Title, j.Text)
	}
	fmt.Fprintln(w)

	humanRoadmap(w, v.Roadmap)

	heading.Fprintln(w, "➡️  NEXT STEPS:")
	for i, s := range v.NextSteps {
		fmt.Fprintf(w, "   %d. %s\n", i+1, s)
	}
}

func humanRoadmap(w io.Writer, r catalog.Roadmap) {
	heading.Fprintf(w, "🗺️  %s\n", strings.ToUpper(r.Title))
	for _, p := range r.Phases {
		winner.Fprintf(w, "   %s", p.Phase)
		subtle.Fprintf(w, " (%s)\n", p.Timeline)
		for _, a := range p.Actions {
			fmt.Fprintf(w, "     - %s\n", a)
		}
		if len(p.KPIs) > 0 {
			fmt.Fprintln(w, "     KPIs:")
			for _, k := range p.KPIs {
				fmt.Fprintf(w, "       · %s\n", k)
			}
		}
	}
	fmt.Fprintln(w)
}
