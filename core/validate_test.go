package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateScoreInputs covers the input gate.
func TestValidateScoreInputs(t *testing.T) {
	p := NewDefaultPolicy()

	t.Run("qualifying engagement passes", func(t *testing.T) {
		assert.NoError(t, p.ValidateScoreInputs(1000, 6))
	})

	t.Run("low spend only", func(t *testing.T) {
		err := p.ValidateScoreInputs(500, 8)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Errors, 1)
		assert.Equal(t, MsgMinimumSpend, verr.Errors[0])
	})

	t.Run("short duration only", func(t *testing.T) {
		err := p.ValidateScoreInputs(2000, 3)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Errors, 1)
		assert.Equal(t, MsgMinimumDuration, verr.Errors[0])
	})

	t.Run("both checks run independently", func(t *testing.T) {
		err := p.ValidateScoreInputs(500, 3)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Errors, 2)
	})

	t.Run("overridden minimums", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MinMonthlySpend = 250
		cfg.MinInvestmentMonths = 2
		relaxed := NewPolicy(cfg)
		assert.NoError(t, relaxed.ValidateScoreInputs(300, 2))
	})
}
