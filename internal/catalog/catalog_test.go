package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/ai-navigator/internal/model"
)

func TestLoadRoadmap(t *testing.T) {
	r, err := LoadRoadmap()
	require.NoError(t, err)

	assert.Equal(t, "Strategic Pilot: Implementation Roadmap", r.Title)
	require.Len(t, r.Phases, 3)
	assert.Equal(t, "Phase 1: Foundation", r.Phases[0].Phase)
	assert.Equal(t, "First 6 Months", r.Phases[0].Timeline)
	assert.Len(t, r.Phases[0].Actions, 4)
	assert.Len(t, r.Phases[2].KPIs, 3)
	assert.Contains(t, r.Phases[0].Actions[2], `"AI Champion"`)
}

func TestParseRoadmap_Errors(t *testing.T) {
	_, err := ParseRoadmap([]byte("phases: ["))
	assert.Error(t, err)

	_, err = ParseRoadmap([]byte("title: empty\nphases: []\n"))
	assert.ErrorContains(t, err, "no phases")

	_, err = ParseRoadmap([]byte("phases:\n  - phase: One\n"))
	assert.ErrorContains(t, err, "phase 1 is incomplete")
}

func TestJustificationsAndNextSteps(t *testing.T) {
	for _, id := range []model.OptionID{model.OptionCustomer, model.OptionInternal} {
		assert.Len(t, Justifications(id), 3, string(id))
	}
	for _, tier := range []model.Tier{model.TierExploratory, model.TierStrategic, model.TierAccelerated} {
		assert.NotEmpty(t, NextSteps(tier), string(tier))
	}
	assert.Equal(t, "Secure Board approval for the $2.5M pilot budget.", NextSteps(model.TierStrategic)[0])

	steps := NextSteps(model.TierStrategic)
	steps[0] = "mutated"
	assert.NotEqual(t, "mutated", NextSteps(model.TierStrategic)[0])
}
