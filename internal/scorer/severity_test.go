package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/ai-navigator/internal/model"
)

func TestClassifySeverity_Partition(t *testing.T) {
	want := map[int]model.Severity{
		1: model.SeverityLow, 2: model.SeverityLow, 3: model.SeverityLow,
		4: model.SeverityMedium, 5: model.SeverityMedium, 6: model.SeverityMedium, 7: model.SeverityMedium,
		8: model.SeverityHigh, 9: model.SeverityHigh, 10: model.SeverityHigh,
	}
	for v, sev := range want {
		assert.Equal(t, sev, ClassifySeverity(v), "value %d", v)
	}
}

func TestClassifySeverity_Monotonic(t *testing.T) {
	prev := ClassifySeverity(1)
	for v := 2; v <= 10; v++ {
		cur := ClassifySeverity(v)
		assert.GreaterOrEqual(t, cur.Rank(), prev.Rank(), "value %d", v)
		prev = cur
	}
}

func TestClassifySeverity_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, model.SeverityLow, ClassifySeverity(0))
	assert.Equal(t, model.SeverityLow, ClassifySeverity(-4))
	assert.Equal(t, model.SeverityHigh, ClassifySeverity(11))
}

func TestSummarize(t *testing.T) {
	const base = "Base summary."
	tests := []struct {
		name     string
		category model.Category
		severity model.Severity
		want     string
	}{
		{"adoption high", model.CategoryAdoption, model.SeverityHigh,
			"CRITICAL RISK: Our model shows employee resistance is very high, jeopardizing the entire project."},
		{"adoption medium", model.CategoryAdoption, model.SeverityMedium,
			"MODERATE RISK: Employee adoption will be a significant challenge requiring a dedicated change management plan."},
		{"adoption low", model.CategoryAdoption, model.SeverityLow, "LOW RISK: " + base},
		{"reputation high", model.CategoryReputation, model.SeverityHigh, "CRITICAL RISK: " + base},
		{"model bias high", model.CategoryModelBias, model.SeverityHigh, "CRITICAL RISK: " + base},
		{"security high", model.CategorySecurity, model.SeverityHigh, "CRITICAL RISK: " + base},
		{"security medium", model.CategorySecurity, model.SeverityMedium, "MODERATE RISK: " + base},
		{"model high", model.CategoryModel, model.SeverityHigh, "HIGH RISK: " + base},
		{"data security high", model.CategoryDataSecurity, model.SeverityHigh, "HIGH RISK: " + base},
		{"data security low", model.CategoryDataSecurity, model.SeverityLow, "LOW RISK: " + base},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.category, tt.severity, base))
		})
	}
}

func TestEveryCategoryHasRuleAndIcon(t *testing.T) {
	for _, c := range model.Categories() {
		assert.Contains(t, categoryRules, c, "summary rule for %s", c)
		assert.NotEmpty(t, Icon(c), "icon for %s", c)
	}
	assert.Len(t, categoryRules, len(model.Categories()))
	assert.Len(t, categoryIcons, len(model.Categories()))
}
