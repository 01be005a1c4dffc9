package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverallROIScore(t *testing.T) {
	assert.Equal(t, 100, OverallROIScore(100, 0))
	assert.Equal(t, 0, OverallROIScore(0, 100))
	assert.Equal(t, 65, OverallROIScore(80, 70)) // 56 + 9
	assert.Equal(t, 100, OverallROIScore(250, -10), "inputs clamp to 0-100")
}
