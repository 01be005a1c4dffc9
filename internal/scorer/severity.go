package scorer

import "github.com/sells-group/ai-navigator/internal/model"

// Severity thresholds on the 1-10 risk slider.
const (
	lowMax    = 3
	mediumMax = 7
)

// ClassifySeverity maps a risk driver value to Low (<=3), Medium (4-7) or
// High (>=8). Values outside 1-10 are clamped, so the function is total;
// range enforcement belongs to ValidateInput.
func ClassifySeverity(value int) model.Severity {
	switch {
	case value <= lowMax:
		return model.SeverityLow
	case value <= mediumMax:
		return model.SeverityMedium
	default:
		return model.SeverityHigh
	}
}

const (
	adoptionCritical = "CRITICAL RISK: Our model shows employee resistance is very high, jeopardizing the entire project."
	adoptionModerate = "MODERATE RISK: Employee adoption will be a significant challenge requiring a dedicated change management plan."
	criticalPrefix   = "CRITICAL RISK: "
)

var severityPrefix = map[model.Severity]string{
	model.SeverityLow:    "LOW RISK: ",
	model.SeverityMedium: "MODERATE RISK: ",
	model.SeverityHigh:   "HIGH RISK: ",
}

// summaryRule decides the dashboard text for a category at a severity. It
// returns ok=false to fall through to the generic severity prefix.
type summaryRule func(sev model.Severity, base string) (string, bool)

func adoptionRule(sev model.Severity, _ string) (string, bool) {
	switch sev {
	case model.SeverityHigh:
		return adoptionCritical, true
	case model.SeverityMedium:
		return adoptionModerate, true
	}
	return "", false
}

func criticalWhenHigh(sev model.Severity, base string) (string, bool) {
	if sev == model.SeverityHigh {
		return criticalPrefix + base, true
	}
	return "", false
}

func genericRule(model.Severity, string) (string, bool) { return "", false }

// categoryRules must hold an entry for every model.Category.
var categoryRules = map[model.Category]summaryRule{
	model.CategoryModel:        genericRule,
	model.CategoryAdoption:     adoptionRule,
	model.CategoryDataSecurity: genericRule,
	model.CategoryModelBias:    criticalWhenHigh,
	model.CategorySecurity:     criticalWhenHigh,
	model.CategoryReputation:   criticalWhenHigh,
}

// Summarize selects the dashboard summary for a risk of the given category
// and severity.
func Summarize(category model.Category, severity model.Severity, baseSummary string) string {
	if rule, ok := categoryRules[category]; ok {
		if s, ok := rule(severity, baseSummary); ok {
			return s
		}
	}
	return severityPrefix[severity] + baseSummary
}
