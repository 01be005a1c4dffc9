package model

// Severity is the qualitative Low/Medium/High classification of a risk driver.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// Rank orders severities: Low=1, Medium=2, High=3. Unknown values rank 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	default:
		return 0
	}
}

// Category is the closed set of risk kinds that appear in the risk templates.
type Category string

const (
	CategoryModel        Category = "model"
	CategoryAdoption     Category = "adoption"
	CategoryDataSecurity Category = "data_security"
	CategoryModelBias    Category = "model_bias"
	CategorySecurity     Category = "security"
	CategoryReputation   Category = "reputation"
)

// Categories lists every category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryModel,
		CategoryAdoption,
		CategoryDataSecurity,
		CategoryModelBias,
		CategorySecurity,
		CategoryReputation,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Risk is a single entry on the risk dashboard.
type Risk struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Icon        string   `json:"icon" yaml:"icon"`
	Category    Category `json:"category" yaml:"category"`
	Severity    Severity `json:"severity" yaml:"severity"`
	Summary     string   `json:"summary" yaml:"summary"`
	Mitigations []string `json:"mitigations" yaml:"mitigations"`
}
