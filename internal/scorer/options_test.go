package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/ai-navigator/internal/model"
)

func TestValidateOptions_Catalog(t *testing.T) {
	require.NoError(t, ValidateOptions(Options()))
}

func TestValidateOptions_Broken(t *testing.T) {
	spec, _ := Option(model.OptionCustomer)
	spec.Drivers = append([]model.DriverSpec(nil), spec.Drivers...)
	spec.Drivers[0].Weight = 0.9
	spec.Drivers[1].Default = 99

	err := ValidateOptions([]model.OptionSpec{spec})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer impact weights should sum to 1")
	assert.Contains(t, err.Error(), "customer.retention default 99 outside [0,15]")
}

func TestDefaultInputsAreValid(t *testing.T) {
	a, b := DefaultInputs()
	assert.NoError(t, ValidateInput(a))
	assert.NoError(t, ValidateInput(b))
	assert.Equal(t, 10, a.Drivers["new_revenue"])
	assert.Equal(t, 7, b.Drivers["adoption"])
}

func TestOptionLookup(t *testing.T) {
	_, ok := Option("nope")
	assert.False(t, ok)

	spec, ok := Option(model.OptionInternal)
	require.True(t, ok)
	assert.Len(t, spec.Group(model.GroupImpact), 3)
	assert.Len(t, spec.Group(model.GroupRisk), 3)
	assert.InDelta(t, 1.0, WeightSum(spec.Group(model.GroupRisk)), 1e-9)
}
