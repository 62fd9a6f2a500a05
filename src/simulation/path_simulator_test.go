package simulation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPathSimulator(t *testing.T) {
	t.Run("requires a random source", func(t *testing.T) {
		sim, err := NewPathSimulator(nil)
		assert.Nil(t, sim)
		assert.NotNil(t, err)
	})
}

func TestTerminalPrices(t *testing.T) {
	t.Run("invalid inputs", func(t *testing.T) {
		sim, err := NewPathSimulator(rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		_, err = sim.TerminalPrices(0, 0.05, 0.2, 1, 100)
		assert.NotNil(t, err)

		_, err = sim.TerminalPrices(100, 0.05, 0.2, 1, 0)
		assert.NotNil(t, err)
	})

	t.Run("zero horizon collapses to spot", func(t *testing.T) {
		sim, err := NewPathSimulator(rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		prices, err := sim.TerminalPrices(100, 0.05, 0.2, 0, 500)
		require.NoError(t, err)
		require.Len(t, prices, 500)

		for _, p := range prices {
			assert.Equal(t, 100.0, p)
		}
	})

	t.Run("zero vol is deterministic drift", func(t *testing.T) {
		sim, err := NewPathSimulator(rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		prices, err := sim.TerminalPrices(100, 0.05, 0, 1, 100)
		require.NoError(t, err)

		for _, p := range prices {
			assert.InDelta(t, 105.127, p, 1e-3)
		}
	})

	t.Run("same seed reproduces bit-identical prices", func(t *testing.T) {
		sim1, err := NewPathSimulator(rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		sim2, err := NewPathSimulator(rand.New(rand.NewSource(42)))
		require.NoError(t, err)

		prices1, err := sim1.TerminalPrices(100, 0.05, 0.3, 0.25, 1000)
		require.NoError(t, err)
		prices2, err := sim2.TerminalPrices(100, 0.05, 0.3, 0.25, 1000)
		require.NoError(t, err)

		assert.Equal(t, prices1, prices2)
	})

	t.Run("percentage point vol matches decimal vol", func(t *testing.T) {
		sim1, err := NewPathSimulator(rand.New(rand.NewSource(7)))
		require.NoError(t, err)
		sim2, err := NewPathSimulator(rand.New(rand.NewSource(7)))
		require.NoError(t, err)

		prices1, err := sim1.TerminalPrices(100, 0.05, 0.3, 0.5, 200)
		require.NoError(t, err)
		prices2, err := sim2.TerminalPrices(100, 0.05, 30.0, 0.5, 200)
		require.NoError(t, err)

		assert.Equal(t, prices1, prices2)
	})

	t.Run("all prices positive", func(t *testing.T) {
		sim, err := NewPathSimulator(rand.New(rand.NewSource(9)))
		require.NoError(t, err)

		prices, err := sim.TerminalPrices(100, 0, 1.5, 2, 5000)
		require.NoError(t, err)

		for _, p := range prices {
			assert.True(t, p > 0)
		}
	})
}
