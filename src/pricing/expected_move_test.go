package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOneSigmaMove(t *testing.T) {
	assert.InDelta(t, 20.0, OneSigmaMove(100, 0.20, 365), 1e-9)
	assert.InDelta(t, 20.0, OneSigmaMove(100, 20.0, 365), 1e-9)
	assert.Equal(t, 0.0, OneSigmaMove(100, 0.20, 0))
	assert.Equal(t, 0.0, OneSigmaMove(100, 0, 30))
	assert.Equal(t, 0.0, OneSigmaMove(0, 0.20, 30))
}

func TestCushion(t *testing.T) {
	t.Run("below", func(t *testing.T) {
		cushion := CushionBelow(100, 90, 0.20, 365)
		assert.NotNil(t, cushion)
		assert.InDelta(t, 0.5, *cushion, 1e-9)
	})

	t.Run("above", func(t *testing.T) {
		cushion := CushionAbove(100, 110, 0.20, 365)
		assert.NotNil(t, cushion)
		assert.InDelta(t, 0.5, *cushion, 1e-9)
	})

	t.Run("in the money strike gives negative cushion", func(t *testing.T) {
		cushion := CushionBelow(100, 110, 0.20, 365)
		assert.NotNil(t, cushion)
		assert.True(t, *cushion < 0)
	})

	t.Run("degenerate move yields nil", func(t *testing.T) {
		assert.Nil(t, CushionBelow(100, 90, 0, 30))
		assert.Nil(t, CushionAbove(100, 110, 0.2, 0))
	})
}
