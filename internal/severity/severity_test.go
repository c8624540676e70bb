package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected string
	}{
		{"change level", LevelChange, "change"},
		{"warning level", LevelWarning, "warning"},
		{"breaking level", LevelBreaking, "breaking"},

		// Edge cases: invalid level values
		{"unknown negative", Level(-1), "unknown"},
		{"unknown large value", Level(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	// Breaking > Warning > Change must hold for aggregation to work
	assert.Greater(t, LevelBreaking, LevelWarning)
	assert.Greater(t, LevelWarning, LevelChange)
}

func TestMax(t *testing.T) {
	assert.Equal(t, LevelBreaking, Max(LevelChange, LevelBreaking))
	assert.Equal(t, LevelBreaking, Max(LevelBreaking, LevelWarning))
	assert.Equal(t, LevelWarning, Max(LevelWarning, LevelChange))
	assert.Equal(t, LevelChange, Max(LevelChange, LevelChange))
}
