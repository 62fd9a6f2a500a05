package scanner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"option-scanner/src/models"
)

func testChain(now time.Time) (*models.StockTick, []models.OptionQuote) {
	tick := &models.StockTick{
		Symbol:           "ACME",
		Bid:              99.90,
		Ask:              100.10,
		Last:             100.00,
		DividendPerShare: 1.20,
		DividendYield:    0.012,
	}

	nearExp := now.AddDate(0, 0, 30).Add(12 * time.Hour)
	farExp := now.AddDate(1, 0, 0).Add(12 * time.Hour)

	quote := func(side models.OptionSide, strike, bid, ask float64, exp time.Time) models.OptionQuote {
		return models.OptionQuote{
			Underlying:        "ACME",
			Side:              side,
			Strike:            strike,
			Bid:               bid,
			Ask:               ask,
			ImpliedVolatility: 0.25,
			OpenInterest:      500,
			Volume:            40,
			ExpirationDate:    exp,
		}
	}

	chain := []models.OptionQuote{
		quote(models.PutSide, 95, 1.40, 1.60, nearExp),
		quote(models.PutSide, 90, 0.70, 0.90, nearExp),
		quote(models.CallSide, 105, 1.10, 1.30, nearExp),
		quote(models.CallSide, 110, 0.50, 0.70, nearExp),
		// Deep ITM long leg for diagonals.
		quote(models.CallSide, 80, 23.80, 24.20, farExp),
	}

	return tick, chain
}

func TestBuildCandidates(t *testing.T) {
	now := time.Date(2026, 8, 3, 15, 0, 0, 0, time.UTC)

	t.Run("builds every strategy kind from a full chain", func(t *testing.T) {
		tick, chain := testChain(now)

		candidates := BuildCandidates(tick, chain, 0.05, now)
		require.Len(t, candidates, 8)

		kinds := make(map[models.StrategyKind]bool)
		for _, c := range candidates {
			kinds[c.Strategy.Kind()] = true

			assert.Equal(t, models.StockSymbol("ACME"), c.Symbol)
			assert.Equal(t, now.AddDate(0, 0, 30).Format("2006-01-02"), c.Bucket)
			assert.NotEmpty(t, c.Description)
			assert.Equal(t, 30, c.Snapshot.DaysToExpiration)
			assert.InDelta(t, 100.0, c.Snapshot.Spot, 1e-9)
			require.NoError(t, c.Strategy.Validate())
			require.NotNil(t, c.StaticAnnualizedROI)
			assert.True(t, *c.StaticAnnualizedROI > 0)
			require.NotNil(t, c.SpreadPercent)
			require.NotNil(t, c.CushionSigmas)
		}

		for _, kind := range models.AllStrategyKinds() {
			assert.True(t, kinds[kind], "missing %s", kind)
		}
	})

	t.Run("no diagonal structures without a deep ITM leg", func(t *testing.T) {
		tick, chain := testChain(now)
		chain = chain[:4]

		candidates := BuildCandidates(tick, chain, 0.05, now)
		require.Len(t, candidates, 6)

		for _, c := range candidates {
			assert.NotEqual(t, models.PoorMansCovered, c.Strategy.Kind())
			assert.NotEqual(t, models.SyntheticCollar, c.Strategy.Kind())
		}
	})

	t.Run("expired quotes are dropped", func(t *testing.T) {
		tick, chain := testChain(now)
		for i := range chain {
			chain[i].ExpirationDate = now.Add(-time.Hour)
		}

		assert.Empty(t, BuildCandidates(tick, chain, 0.05, now))
	})

	t.Run("zero spot yields nothing", func(t *testing.T) {
		_, chain := testChain(now)
		assert.Empty(t, BuildCandidates(&models.StockTick{Symbol: "ACME"}, chain, 0.05, now))
	})

	t.Run("one-sided quotes are excluded", func(t *testing.T) {
		tick, chain := testChain(now)
		for i := range chain {
			chain[i].Bid = 0
			chain[i].Ask = 0
			chain[i].Last = 0
		}

		assert.Empty(t, BuildCandidates(tick, chain, 0.05, now))
	})
}

func TestSplitOTM(t *testing.T) {
	now := time.Date(2026, 8, 3, 15, 0, 0, 0, time.UTC)
	_, chain := testChain(now)

	puts, calls := splitOTM(chain, 100)

	require.Len(t, puts, 2)
	assert.Equal(t, 95.0, puts[0].Strike)
	assert.Equal(t, 90.0, puts[1].Strike)

	// The deep ITM 80 call is not OTM and stays out.
	require.Len(t, calls, 2)
	assert.Equal(t, 105.0, calls[0].Strike)
	assert.Equal(t, 110.0, calls[1].Strike)
}

func TestFindDiagonalLongLeg(t *testing.T) {
	now := time.Date(2026, 8, 3, 15, 0, 0, 0, time.UTC)
	_, chain := testChain(now)

	leg, days := findDiagonalLongLeg(chain, 100, now)
	require.NotNil(t, leg)
	assert.Equal(t, 80.0, leg.Strike)
	assert.Equal(t, 365, days)
}
