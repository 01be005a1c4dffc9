package scorer

import "github.com/sells-group/ai-navigator/internal/model"

// categoryIcons must hold an entry for every model.Category.
var categoryIcons = map[model.Category]string{
	model.CategoryModel:        "brain",
	model.CategoryAdoption:     "people",
	model.CategoryDataSecurity: "shield",
	model.CategoryModelBias:    "brain",
	model.CategorySecurity:     "shield",
	model.CategoryReputation:   "megaphone",
}

// Icon returns the display icon tag for a category.
func Icon(c model.Category) string {
	return categoryIcons[c]
}

// riskTemplate is a static dashboard entry. DriverKey names the risk driver
// whose value sets the severity; empty means the entry has no driver.
type riskTemplate struct {
	ID          string
	Title       string
	Category    model.Category
	DriverKey   string
	Summary     string
	Mitigations []string
}

// unmappedDriverValue is the slider value assumed for entries without a driver.
const unmappedDriverValue = 5

var riskTemplates = map[model.OptionID][]riskTemplate{
	model.OptionInternal: {
		{
			ID:        "model_risk",
			Title:     "Model Risk",
			Category:  model.CategoryModel,
			DriverKey: "model",
			Summary:   "Risk of inaccurate or biased AI predictions that could mislead our internal advisors.",
			Mitigations: []string{
				"Human advisors act as a final validation layer.",
				"Continuously monitor model performance on internal data.",
				"Develop an internal 'AI Explainability' dashboard.",
			},
		},
		{
			ID:        "adoption_risk",
			Title:     "Implementation & Adoption Risk",
			Category:  model.CategoryAdoption,
			DriverKey: "adoption",
			Summary:   "The primary risk: our financial advisors may resist the tool, fearing job displacement.",
			Mitigations: []string{
				"Launch an 'AI Champion' program with early adopters.",
				"Develop a robust training and change management plan.",
				"Clearly communicate that the tool is for augmentation, not replacement.",
			},
		},
		{
			ID:        "data_security_risk",
			Title:     "Data Governance & Security Risk",
			Category:  model.CategoryDataSecurity,
			DriverKey: "data",
			Summary:   "Risk of internal data misuse. Less severe than a public breach but still significant.",
			Mitigations: []string{
				"Enforce strict role-based access controls within the bank.",
				"Audit all data access logs.",
				"All data remains within OmniBank's secure infrastructure.",
			},
		},
	},
	model.OptionCustomer: {
		{
			ID:        "model_bias",
			Title:     "Model Risk & Bias",
			Category:  model.CategoryModelBias,
			DriverKey: "model",
			Summary:   "CATASTROPHIC RISK of biased advice causing direct customer harm and regulatory fines.",
			Mitigations: []string{
				"Requires third-party ethical AI audits before launch.",
				"Implement complex bias detection algorithms.",
				"Extensive 'red team' testing for harmful outputs.",
			},
		},
		{
			ID:        "security_risk",
			Title:     "Data Privacy & Security Risk",
			Category:  model.CategorySecurity,
			DriverKey: "security",
			Summary:   "Massive risk of a public data breach of sensitive customer financial data, leading to lawsuits.",
			Mitigations: []string{
				"Requires end-to-end post-quantum cryptography.",
				"Full compliance with GDPR, CCPA, and the AI Act.",
				"Significant investment in cybersecurity infrastructure.",
			},
		},
		{
			ID:        "reputation_risk",
			Title:     "Reputational & Trust Risk",
			Category:  model.CategoryReputation,
			DriverKey: "reputation",
			Summary:   "A single instance of a 'hallucinated' or harmful answer going viral could destroy customer trust.",
			Mitigations: []string{
				"Implement a multi-layered content moderation system.",
				"Extensive PR and crisis communication plan required.",
				"Limit initial launch to a small, opt-in beta group.",
			},
		},
	},
}

// BuildRiskProfile applies the winner's driver values to its risk template.
// Mapped entries get a classified severity and summary; entries without a
// driver are pinned to a mid-range value and keep their base summary.
func BuildRiskProfile(in model.OptionInput) []model.Risk {
	tmpl := riskTemplates[in.ID]
	out := make([]model.Risk, 0, len(tmpl))
	for _, t := range tmpl {
		r := model.Risk{
			ID:          t.ID,
			Title:       t.Title,
			Icon:        Icon(t.Category),
			Category:    t.Category,
			Mitigations: append([]string(nil), t.Mitigations...),
		}
		value, mapped := in.Drivers[t.DriverKey]
		if t.DriverKey == "" || !mapped {
			r.Severity = ClassifySeverity(unmappedDriverValue)
			r.Summary = t.Summary
		} else {
			r.Severity = ClassifySeverity(value)
			r.Summary = Summarize(t.Category, r.Severity, t.Summary)
		}
		out = append(out, r)
	}
	return out
}

// RiskDriverKeys returns, in template order, the driver keys that feed the
// risk profile of option id.
func RiskDriverKeys(id model.OptionID) []string {
	var keys []string
	for _, t := range riskTemplates[id] {
		keys = append(keys, t.DriverKey)
	}
	return keys
}
