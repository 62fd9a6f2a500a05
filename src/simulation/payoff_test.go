package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"option-scanner/src/models"
)

var payoffSnapshot = models.MarketSnapshot{
	Spot:              100,
	DaysToExpiration:  30,
	ImpliedVolatility: 0.20,
	RiskFreeRate:      0, // zero rate keeps CSP carry out of the arithmetic below
	DividendYield:     0,
}

func TestEvaluatePayoff(t *testing.T) {
	terminal := []float64{70, 85, 90, 95, 100, 105, 110, 115, 130}

	t.Run("unknown strategy type fails fast", func(t *testing.T) {
		_, _, err := EvaluatePayoff(nil, payoffSnapshot, terminal)
		assert.NotNil(t, err)
	})

	t.Run("cash secured put", func(t *testing.T) {
		params := models.CashSecuredPutParams{Strike: 90, Premium: 1.10}

		pnl, capital, err := EvaluatePayoff(params, payoffSnapshot, terminal)
		require.NoError(t, err)
		assert.Equal(t, 90.0, capital)

		// Assigned at 70: 1.10 - 20 = -18.90; worthless at 100: keep premium.
		assert.InDelta(t, -18.90, pnl[0], 1e-9)
		assert.InDelta(t, 1.10, pnl[4], 1e-9)
		assert.InDelta(t, 1.10, pnl[8], 1e-9)
	})

	t.Run("cash secured put earns carry on collateral", func(t *testing.T) {
		snap := payoffSnapshot
		snap.RiskFreeRate = 0.05
		params := models.CashSecuredPutParams{Strike: 90, Premium: 1.10}

		pnl, _, err := EvaluatePayoff(params, snap, []float64{100})
		require.NoError(t, err)
		assert.InDelta(t, 1.10+90*0.05*30.0/365.0, pnl[0], 1e-9)
	})

	t.Run("covered call", func(t *testing.T) {
		params := models.CoveredCallParams{Strike: 105, Premium: 2.0, Dividend: 0.5}

		pnl, capital, err := EvaluatePayoff(params, payoffSnapshot, terminal)
		require.NoError(t, err)
		assert.Equal(t, 100.0, capital)

		// Called away at 130: capped at (105-100) + 2 + 0.5.
		assert.InDelta(t, 7.5, pnl[8], 1e-9)
		// Down at 85: -15 + 2 + 0.5.
		assert.InDelta(t, -12.5, pnl[1], 1e-9)
	})

	t.Run("collar", func(t *testing.T) {
		params := models.CollarParams{
			CallStrike:  105,
			CallPremium: 2.0,
			PutStrike:   95,
			PutCost:     1.5,
			Dividend:    0,
		}

		pnl, capital, err := EvaluatePayoff(params, payoffSnapshot, terminal)
		require.NoError(t, err)
		assert.Equal(t, 100.0, capital)

		// Floor: (70-100) + 2 - 1.5 + (95-70) = -4.5 at any price below 95.
		assert.InDelta(t, -4.5, pnl[0], 1e-9)
		assert.InDelta(t, -4.5, pnl[1], 1e-9)
		// Cap: (130-100) + 2 - 1.5 - (130-105) = 5.5 at any price above 105.
		assert.InDelta(t, 5.5, pnl[8], 1e-9)
		assert.InDelta(t, 5.5, pnl[6], 1e-9)
	})

	t.Run("bull put spread capital matches closed form", func(t *testing.T) {
		params := models.BullPutSpreadParams{ShortStrike: 95, LongStrike: 90, NetCredit: 1.5}

		pnl, capital, err := EvaluatePayoff(params, payoffSnapshot, terminal)
		require.NoError(t, err)
		assert.Equal(t, params.Width()-params.NetCredit, capital)
		assert.Equal(t, 3.5, capital)

		// Max loss below the long strike, max profit above the short strike.
		assert.InDelta(t, -3.5, pnl[0], 1e-9)
		assert.InDelta(t, 1.5, pnl[4], 1e-9)
	})

	t.Run("bear call spread", func(t *testing.T) {
		params := models.BearCallSpreadParams{ShortStrike: 105, LongStrike: 110, NetCredit: 1.2}

		pnl, capital, err := EvaluatePayoff(params, payoffSnapshot, terminal)
		require.NoError(t, err)
		assert.InDelta(t, 3.8, capital, 1e-9)

		assert.InDelta(t, 1.2, pnl[0], 1e-9)
		assert.InDelta(t, -3.8, pnl[8], 1e-9)
	})

	t.Run("iron condor", func(t *testing.T) {
		params := models.IronCondorParams{
			PutLongStrike:   90,
			PutShortStrike:  95,
			CallShortStrike: 105,
			CallLongStrike:  110,
			NetCredit:       1.5,
		}

		pnl, capital, err := EvaluatePayoff(params, payoffSnapshot, terminal)
		require.NoError(t, err)
		assert.Equal(t, 3.5, capital)

		// Full credit between the short strikes, max loss beyond either wing.
		assert.InDelta(t, 1.5, pnl[4], 1e-9)
		assert.InDelta(t, -3.5, pnl[0], 1e-9)
		assert.InDelta(t, -3.5, pnl[8], 1e-9)
	})

	t.Run("defined risk payoffs are bounded", func(t *testing.T) {
		condor := models.IronCondorParams{
			PutLongStrike:   90,
			PutShortStrike:  95,
			CallShortStrike: 105,
			CallLongStrike:  110,
			NetCredit:       1.5,
		}

		wide := make([]float64, 0, 400)
		for s := 1.0; s <= 400; s++ {
			wide = append(wide, s)
		}

		pnl, _, err := EvaluatePayoff(condor, payoffSnapshot, wide)
		require.NoError(t, err)

		for _, v := range pnl {
			assert.GreaterOrEqual(t, v, -3.5-1e-9)
			assert.LessOrEqual(t, v, 1.5+1e-9)
		}
	})

	t.Run("poor mans covered call", func(t *testing.T) {
		params := models.PoorMansCoveredCallParams{
			LongStrike:           80,
			LongPremium:          22.0,
			LongDaysToExpiration: 365,
			ShortStrike:          105,
			ShortPremium:         2.0,
		}

		pnl, capital, err := EvaluatePayoff(params, payoffSnapshot, terminal)
		require.NoError(t, err)
		assert.Equal(t, 20.0, capital)

		// The long leg keeps at least intrinsic value, so a deep rally
		// cannot lose more than the net debit on the long side while
		// the short call loss is offset one-for-one above the strike.
		for _, v := range pnl {
			assert.GreaterOrEqual(t, v, -capital-1e-9)
		}

		// Deep selloff: long leg worthless-ish, short premium kept.
		assert.True(t, pnl[0] < 0)
		// Rally: short assigned but long leg gains more.
		assert.True(t, pnl[8] > 0)
	})

	t.Run("synthetic collar", func(t *testing.T) {
		params := models.SyntheticCollarParams{
			LongStrike:           80,
			LongPremium:          22.0,
			LongDaysToExpiration: 365,
			ShortCallStrike:      105,
			ShortCallPremium:     2.0,
			PutStrike:            95,
			PutCost:              1.5,
		}

		pnl, capital, err := EvaluatePayoff(params, payoffSnapshot, terminal)
		require.NoError(t, err)
		assert.InDelta(t, 21.5, capital, 1e-9)

		// The protective put kicks in below 95, flattening the downside
		// relative to the bare diagonal.
		bare := models.PoorMansCoveredCallParams{
			LongStrike:           80,
			LongPremium:          22.0,
			LongDaysToExpiration: 365,
			ShortStrike:          105,
			ShortPremium:         2.0,
		}
		barePnl, _, err := EvaluatePayoff(bare, payoffSnapshot, terminal)
		require.NoError(t, err)

		assert.True(t, pnl[0] > barePnl[0])
	})
}
