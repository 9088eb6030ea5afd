package core

import (
	"testing"

	"github.com/seolens/seolens/schema"
	"github.com/stretchr/testify/assert"
)

// TestNormalizeScore pins the shared bucket table every scorer depends on.
func TestNormalizeScore(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		expected int
	}{
		{"top bucket", 95, 10},
		{"top boundary", 90, 10},
		{"just below top", 89.99, 9},
		{"eighty", 80, 9},
		{"seventy", 70, 8},
		{"sixty", 60, 7},
		{"fifty", 50, 6},
		{"forty", 40, 5},
		{"thirty", 30, 4},
		{"twenty", 20, 3},
		{"ten", 10, 2},
		{"just below ten", 9.99, 1},
		{"zero", 0, 1},
		{"negative maps to floor", -25, 1},
		{"above hundred", 150, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeScore(tt.raw))
		})
	}
}

// TestApplyPenalties validates rounding, flooring and absence semantics.
func TestApplyPenalties(t *testing.T) {
	flag := func(penalty float64) schema.RedFlag {
		return schema.RedFlag{Type: schema.FlagSevereLinkDeficit, Severity: schema.SeverityCritical, ScorePenalty: penalty}
	}

	t.Run("no flags means no adjustment", func(t *testing.T) {
		assert.Nil(t, applyPenalties(7, nil))
	})

	t.Run("single penalty", func(t *testing.T) {
		adjusted := applyPenalties(7, []schema.RedFlag{flag(-2)})
		if assert.NotNil(t, adjusted) {
			assert.Equal(t, 5, *adjusted)
		}
	})

	t.Run("half penalties round to nearest", func(t *testing.T) {
		adjusted := applyPenalties(10, []schema.RedFlag{flag(-1.5), flag(-1)})
		if assert.NotNil(t, adjusted) {
			// 10 - 2.5 rounds to 8.
			assert.Equal(t, 8, *adjusted)
		}
	})

	t.Run("floor at one", func(t *testing.T) {
		adjusted := applyPenalties(2, []schema.RedFlag{flag(-2), flag(-2), flag(-1.5)})
		if assert.NotNil(t, adjusted) {
			assert.Equal(t, 1, *adjusted)
		}
	})
}

// TestTrailingVsPreceding validates the monthly-series split.
func TestTrailingVsPreceding(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		_, _, ok := trailingVsPreceding([]int{1, 2, 3, 4, 5})
		assert.False(t, ok)
	})

	t.Run("exact six", func(t *testing.T) {
		trailing, preceding, ok := trailingVsPreceding([]int{6, 6, 6, 1, 2, 3})
		assert.True(t, ok)
		assert.InDelta(t, 2.0, trailing, 0.001)
		assert.InDelta(t, 6.0, preceding, 0.001)
	})

	t.Run("longer series uses last six", func(t *testing.T) {
		trailing, preceding, ok := trailingVsPreceding([]int{100, 100, 9, 9, 9, 3, 3, 3})
		assert.True(t, ok)
		assert.InDelta(t, 3.0, trailing, 0.001)
		assert.InDelta(t, 9.0, preceding, 0.001)
	})
}
